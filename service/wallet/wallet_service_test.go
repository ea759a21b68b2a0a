package wallet

import (
	"context"
	"testing"

	"rwrd/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWalletStore struct {
	wallets map[string]*core.Wallet
}

func (s *fakeWalletStore) key(userID, assetID string) string {
	return userID + "/" + assetID
}

func (s *fakeWalletStore) Create(ctx context.Context, tx *db.DB, wallet *core.Wallet) error {
	wallet.ID = uint64(len(s.wallets) + 1)
	s.wallets[s.key(wallet.UserID, wallet.AssetID)] = wallet
	return nil
}

func (s *fakeWalletStore) Find(ctx context.Context, userID, assetID string) (*core.Wallet, error) {
	if w, ok := s.wallets[s.key(userID, assetID)]; ok {
		return w, nil
	}

	return &core.Wallet{}, nil
}

func (s *fakeWalletStore) Update(ctx context.Context, tx *db.DB, wallet *core.Wallet) error {
	s.wallets[s.key(wallet.UserID, wallet.AssetID)] = wallet
	return nil
}

type fakeTransferStore struct {
	transfers []*core.Transfer
}

func (s *fakeTransferStore) Create(ctx context.Context, tx *db.DB, transfer *core.Transfer) error {
	s.transfers = append(s.transfers, transfer)
	return nil
}

func (s *fakeTransferStore) Top(ctx context.Context, limit int) ([]*core.Transfer, error) {
	return s.transfers, nil
}

const (
	testAsset     = "965e5c6e-434c-3fa9-b780-c50f43cd955c"
	testAuthority = "pool-authority"
	testVault     = "pool-vault"
)

func newTestService(balances map[string]uint64) (core.IWalletService, *fakeWalletStore, *fakeTransferStore) {
	wallets := &fakeWalletStore{wallets: make(map[string]*core.Wallet)}

	id := uint64(0)
	for user, balance := range balances {
		id++
		wallets.wallets[wallets.key(user, testAsset)] = &core.Wallet{
			ID:      id,
			UserID:  user,
			AssetID: testAsset,
			Balance: balance,
		}
	}

	transfers := &fakeTransferStore{}
	service := New(wallets, transfers, Config{
		Authority: testAuthority,
		VaultID:   testVault,
	})

	return service, wallets, transfers
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()

	service, wallets, transfers := newTestService(map[string]uint64{
		"alice": 1000,
	})

	transfer, err := service.Transfer(ctx, nil, &core.TransferRequest{
		AssetID:    testAsset,
		FromID:     "alice",
		ToID:       "bob",
		Authorizer: "alice",
		Amount:     400,
	})
	require.Nil(t, err)
	assert.NotEmpty(t, transfer.TraceID)

	alice, _ := wallets.Find(ctx, "alice", testAsset)
	bob, _ := wallets.Find(ctx, "bob", testAsset)
	assert.Equal(t, uint64(600), alice.Balance)
	assert.Equal(t, uint64(400), bob.Balance)
	assert.Len(t, transfers.transfers, 1)
}

func TestTransferZeroAmount(t *testing.T) {
	service, _, _ := newTestService(map[string]uint64{"alice": 1000})

	_, err := service.Transfer(context.Background(), nil, &core.TransferRequest{
		AssetID:    testAsset,
		FromID:     "alice",
		ToID:       "bob",
		Authorizer: "alice",
	})
	assert.Equal(t, core.ErrInvalidAmount, err)
}

func TestTransferUnauthorized(t *testing.T) {
	service, _, _ := newTestService(map[string]uint64{
		"alice":   1000,
		testVault: 1000,
	})

	// a third party cannot spend alice's funds
	_, err := service.Transfer(context.Background(), nil, &core.TransferRequest{
		AssetID:    testAsset,
		FromID:     "alice",
		ToID:       "bob",
		Authorizer: "mallory",
		Amount:     10,
	})
	assert.Equal(t, core.ErrUnauthorized, err)

	// nor can anyone but the authority spend from the vault
	_, err = service.Transfer(context.Background(), nil, &core.TransferRequest{
		AssetID:    testAsset,
		FromID:     testVault,
		ToID:       "bob",
		Authorizer: "alice",
		Amount:     10,
	})
	assert.Equal(t, core.ErrUnauthorized, err)
}

func TestTransferFromVault(t *testing.T) {
	ctx := context.Background()

	service, wallets, _ := newTestService(map[string]uint64{
		testVault: 500,
	})

	_, err := service.Transfer(ctx, nil, &core.TransferRequest{
		AssetID:    testAsset,
		FromID:     testVault,
		ToID:       "merchant",
		Authorizer: testAuthority,
		Amount:     500,
	})
	require.Nil(t, err)

	vault, _ := wallets.Find(ctx, testVault, testAsset)
	assert.Equal(t, uint64(0), vault.Balance)
}

func TestTransferInsufficientFunds(t *testing.T) {
	service, _, _ := newTestService(map[string]uint64{"alice": 100})

	_, err := service.Transfer(context.Background(), nil, &core.TransferRequest{
		AssetID:    testAsset,
		FromID:     "alice",
		ToID:       "bob",
		Authorizer: "alice",
		Amount:     101,
	})
	assert.Equal(t, core.ErrInsufficientFunds, err)

	// unknown account reads as empty, not as an error
	_, err = service.Transfer(context.Background(), nil, &core.TransferRequest{
		AssetID:    testAsset,
		FromID:     "carol",
		ToID:       "bob",
		Authorizer: "carol",
		Amount:     1,
	})
	assert.Equal(t, core.ErrInsufficientFunds, err)
}

func TestTransferKeepsTraceID(t *testing.T) {
	service, _, transfers := newTestService(map[string]uint64{"alice": 100})

	_, err := service.Transfer(context.Background(), nil, &core.TransferRequest{
		TraceID:    "5cb13f8c-58b7-4b2a-9e46-3c6a0e6a1c3a",
		AssetID:    testAsset,
		FromID:     "alice",
		ToID:       "bob",
		Authorizer: "alice",
		Amount:     100,
	})
	require.Nil(t, err)
	assert.Equal(t, "5cb13f8c-58b7-4b2a-9e46-3c6a0e6a1c3a", transfers.transfers[0].TraceID)
}
