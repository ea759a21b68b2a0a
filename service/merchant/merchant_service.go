package merchant

import (
	"context"

	"rwrd/core"

	"github.com/fox-one/pkg/logger"
)

type merchantService struct {
	merchants core.IMerchantStore
}

// New new merchant service backed by the local registry store
func New(merchants core.IMerchantStore) core.IMerchantService {
	return &merchantService{merchants: merchants}
}

func (s *merchantService) Find(ctx context.Context, merchantID string) (*core.Merchant, error) {
	return s.merchants.Find(ctx, merchantID)
}

func (s *merchantService) IsVerified(ctx context.Context, merchantID string) (bool, error) {
	merchant, err := s.merchants.Find(ctx, merchantID)
	if err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("merchants.Find")
		return false, err
	}

	return merchant.ID > 0 && merchant.Verified, nil
}
