package merchant

import (
	"context"
	"fmt"
	"time"

	"rwrd/core"

	"github.com/fox-one/pkg/logger"
	"github.com/go-resty/resty/v2"
)

// RegistryConfig remote merchant registry config
type RegistryConfig struct {
	Endpoint string `json:"endpoint" valid:"url"`
}

type registryClient struct {
	client *resty.Client
}

// NewRegistry new merchant service backed by a remote registry api. Used when
// the registry runs as its own service instead of sharing this database.
func NewRegistry(cfg RegistryConfig) core.IMerchantService {
	client := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &registryClient{client: client}
}

func (s *registryClient) Find(ctx context.Context, merchantID string) (*core.Merchant, error) {
	var body struct {
		Data core.Merchant `json:"data"`
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get(fmt.Sprintf("/merchants/%s", merchantID))
	if err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("registry request failed")
		return nil, err
	}

	if resp.StatusCode() == 404 {
		return &core.Merchant{}, nil
	}

	if resp.IsError() {
		return nil, fmt.Errorf("registry responded %d", resp.StatusCode())
	}

	return &body.Data, nil
}

func (s *registryClient) IsVerified(ctx context.Context, merchantID string) (bool, error) {
	merchant, err := s.Find(ctx, merchantID)
	if err != nil {
		return false, err
	}

	return merchant.ID > 0 && merchant.Verified, nil
}
