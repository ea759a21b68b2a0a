package loan

import (
	"context"
	"testing"
	"time"

	"rwrd/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoolStore struct {
	pools map[string]*core.Pool
}

func (s *fakePoolStore) Save(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	s.pools[pool.AssetID] = pool
	return nil
}

func (s *fakePoolStore) Find(ctx context.Context, assetID string) (*core.Pool, error) {
	if p, ok := s.pools[assetID]; ok {
		return p, nil
	}

	return &core.Pool{}, nil
}

func (s *fakePoolStore) All(ctx context.Context) ([]*core.Pool, error) {
	pools := make([]*core.Pool, 0, len(s.pools))
	for _, p := range s.pools {
		pools = append(pools, p)
	}

	return pools, nil
}

func (s *fakePoolStore) Update(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	s.pools[pool.AssetID] = pool
	return nil
}

type fakeLoanStore struct {
	loans map[string]*core.Loan
}

func (s *fakeLoanStore) key(merchantID, assetID string) string {
	return merchantID + "/" + assetID
}

func (s *fakeLoanStore) Create(ctx context.Context, tx *db.DB, loan *core.Loan) error {
	loan.ID = uint64(len(s.loans) + 1)
	s.loans[s.key(loan.MerchantID, loan.AssetID)] = loan
	return nil
}

func (s *fakeLoanStore) Find(ctx context.Context, merchantID, assetID string) (*core.Loan, error) {
	if l, ok := s.loans[s.key(merchantID, assetID)]; ok {
		return l, nil
	}

	return &core.Loan{}, nil
}

func (s *fakeLoanStore) FindByMerchant(ctx context.Context, merchantID string) ([]*core.Loan, error) {
	var loans []*core.Loan
	for _, l := range s.loans {
		if l.MerchantID == merchantID {
			loans = append(loans, l)
		}
	}

	return loans, nil
}

func (s *fakeLoanStore) Update(ctx context.Context, tx *db.DB, loan *core.Loan) error {
	s.loans[s.key(loan.MerchantID, loan.AssetID)] = loan
	return nil
}

type fakeMerchantService struct {
	merchants map[string]*core.Merchant
}

func (s *fakeMerchantService) Find(ctx context.Context, merchantID string) (*core.Merchant, error) {
	if m, ok := s.merchants[merchantID]; ok {
		return m, nil
	}

	return &core.Merchant{}, nil
}

func (s *fakeMerchantService) IsVerified(ctx context.Context, merchantID string) (bool, error) {
	m, _ := s.Find(ctx, merchantID)
	return m.ID > 0 && m.Verified, nil
}

type fakeWalletService struct {
	requests []*core.TransferRequest
}

func (s *fakeWalletService) Transfer(ctx context.Context, tx *db.DB, req *core.TransferRequest) (*core.Transfer, error) {
	s.requests = append(s.requests, req)
	return &core.Transfer{
		TraceID:    req.TraceID,
		AssetID:    req.AssetID,
		FromID:     req.FromID,
		ToID:       req.ToID,
		Authorizer: req.Authorizer,
		Amount:     req.Amount,
		Memo:       req.Memo,
	}, nil
}

type fakeEventStore struct {
	events []*core.Event
}

func (s *fakeEventStore) Create(ctx context.Context, tx *db.DB, event *core.Event) error {
	event.ID = int64(len(s.events) + 1)
	s.events = append(s.events, event)
	return nil
}

func (s *fakeEventStore) List(ctx context.Context, fromID int64, limit int) ([]*core.Event, error) {
	return s.events, nil
}

func (s *fakeEventStore) DeleteBefore(ctx context.Context, t time.Time) error {
	return nil
}

const (
	testAsset    = "965e5c6e-434c-3fa9-b780-c50f43cd955c"
	testMerchant = "coffee-shop"
	testVault    = "pool-vault"
)

func testPool() *core.Pool {
	return &core.Pool{
		ID:               1,
		AssetID:          testAsset,
		TotalDeposited:   1_000_000,
		BaseRate:         200,
		UtilizationSlope: 1000,
	}
}

func newTestService(pool *core.Pool, merchants map[string]*core.Merchant) (core.ILoanService, *fakePoolStore, *fakeLoanStore, *fakeWalletService, *fakeEventStore) {
	pools := &fakePoolStore{pools: map[string]*core.Pool{pool.AssetID: pool}}
	loans := &fakeLoanStore{loans: make(map[string]*core.Loan)}
	merchantz := &fakeMerchantService{merchants: merchants}
	walletz := &fakeWalletService{}
	events := &fakeEventStore{}

	system := &core.System{Authority: "pool-authority", VaultID: testVault}
	service := New(nil, system, pools, loans, merchantz, walletz, events)

	return service, pools, loans, walletz, events
}

func TestBorrowUnverifiedMerchant(t *testing.T) {
	ctx := context.Background()

	pool := testPool()
	service, pools, loans, walletz, events := newTestService(pool, map[string]*core.Merchant{
		testMerchant: {ID: 1, MerchantID: testMerchant, Name: "Coffee Shop"},
	})

	_, err := service.Borrow(ctx, testMerchant, testAsset, 10_000)
	assert.Equal(t, core.ErrMerchantNotVerified, err)

	// an unknown merchant gets the same refusal
	_, err = service.Borrow(ctx, "ghost", testAsset, 10_000)
	assert.Equal(t, core.ErrMerchantNotVerified, err)

	// a refused borrow leaves no trace anywhere
	stored, _ := pools.Find(ctx, testAsset)
	assert.Equal(t, uint64(0), stored.TotalBorrowed)
	assert.Len(t, loans.loans, 0)
	assert.Len(t, walletz.requests, 0)
	assert.Len(t, events.events, 0)
}

func TestRepayOverpayment(t *testing.T) {
	ctx := context.Background()
	now := time.Now().Unix()

	pool := testPool()
	pool.TotalBorrowed = 100_000

	service, _, loans, walletz, events := newTestService(pool, map[string]*core.Merchant{
		testMerchant: {ID: 1, MerchantID: testMerchant, Verified: true},
	})

	loan := &core.Loan{
		ID:                1,
		MerchantID:        testMerchant,
		AssetID:           testAsset,
		Principal:         100_000,
		IssueDate:         now - 3600,
		LastRepaymentDate: now - 3600,
		Status:            core.LoanStatusActive,
	}
	loans.loans[loans.key(testMerchant, testAsset)] = loan

	svc := service.(*loanService)
	err := svc.settleRepayment(ctx, nil, pool, loan, 100_500, now, "3c5ad51e-3acd-4f24-9a43-34b722b42b14")
	require.Nil(t, err)

	// the full nominal amount leaves the merchant's wallet, extra included
	require.Len(t, walletz.requests, 1)
	leg := walletz.requests[0]
	assert.Equal(t, testMerchant, leg.FromID)
	assert.Equal(t, testVault, leg.ToID)
	assert.Equal(t, uint64(100_500), leg.Amount)

	// while the ledger credit is capped at principal plus accrued interest
	assert.Equal(t, uint64(0), loan.Principal)
	assert.Equal(t, core.LoanStatusRepaid, loan.Status)
	assert.Equal(t, uint64(0), pool.TotalBorrowed)

	require.Len(t, events.events, 1)
	event := events.events[0]
	assert.Equal(t, core.ActionTypeRepay, event.Action)
	assert.Equal(t, uint64(100_000), event.Amount)
}
