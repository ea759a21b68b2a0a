package merchant

import (
	"context"
	"fmt"
	"time"

	"rwrd/core"

	"github.com/bluele/gcache"
	"golang.org/x/sync/singleflight"
)

// Cache wraps a merchant store with a read-through LRU. Verification lookups
// run once per borrow, so staleness is bounded by exp.
func Cache(store core.IMerchantStore, exp time.Duration) core.IMerchantStore {
	return &cacheMerchantStore{
		IMerchantStore: store,
		cache:          gcache.New(1024).LRU().Expiration(exp).Build(),
		sf:             &singleflight.Group{},
	}
}

type cacheMerchantStore struct {
	core.IMerchantStore
	cache gcache.Cache
	sf    *singleflight.Group
}

func (s *cacheMerchantStore) Save(ctx context.Context, merchant *core.Merchant) error {
	if err := s.IMerchantStore.Save(ctx, merchant); err != nil {
		return err
	}

	s.cache.Set(s.merchantKey(merchant.MerchantID), merchant)
	return nil
}

func (s *cacheMerchantStore) Find(ctx context.Context, merchantID string) (*core.Merchant, error) {
	key := s.merchantKey(merchantID)

	if v, err := s.cache.Get(key); err == nil {
		if merchant, ok := v.(*core.Merchant); ok {
			return merchant, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		merchant, err := s.IMerchantStore.Find(ctx, merchantID)
		if err != nil {
			return nil, err
		}

		if merchant.ID > 0 {
			s.cache.Set(key, merchant)
		}

		return merchant, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*core.Merchant), nil
}

func (s *cacheMerchantStore) merchantKey(merchantID string) string {
	return fmt.Sprintf("merchant:id:%s", merchantID)
}
