package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/fiberops/subcore/internal/domain/account"
	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/domain/network"
	"github.com/fiberops/subcore/internal/domain/onboarding"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/testutil"
	"github.com/fiberops/subcore/internal/infrastructure/repository"
	"github.com/fiberops/subcore/internal/shared/db"
	"github.com/fiberops/subcore/internal/shared/logger"
)

var testSettings = staticSettings{Scheme: "https", Host: "aaa.test", Port: 8443, Username: "admin", Password: "pw"}

type provisioningFixture struct {
	deps      Dependencies
	customers   onboarding.CustomerRepository
	network     *mockNetworkClient
	credentials *mockCredentialFiller
	locker      *keyLocker
	publisher   *channelPublisher
}

func newProvisioningFixture(t *testing.T) *provisioningFixture {
	t.Helper()
	gdb := testutil.NewTestDB(t)
	log := logger.NewNopLogger()

	f := &provisioningFixture{
		customers:   repository.NewCustomerRepository(gdb, log),
		network:     &mockNetworkClient{},
		credentials: &mockCredentialFiller{},
		locker:      newKeyLocker(),
		publisher:   newChannelPublisher(),
	}
	f.deps = Dependencies{
		Accounts:    repository.NewSubscriberAccountRepository(gdb, log),
		Identities:  repository.NewNetworkIdentityRepository(gdb, log),
		Customers:   f.customers,
		Events:      repository.NewConnectivityEventRepository(gdb, log),
		Publisher:   f.publisher,
		Network:     f.network,
		Settings:    testSettings,
		Credentials: f.credentials,
		Locker:      f.locker,
		TxMgr:       db.NewTransactionManager(gdb),
		Logger:      log,
	}
	t.Cleanup(func() {
		f.network.AssertExpectations(t)
		f.credentials.AssertExpectations(t)
	})
	return f
}

type seedAccount struct {
	accountNo string
	balance   int64
	plan      string
	status    account.ConnectivityStatus
	username  string
	secret    string
	location  network.Location
}

func (f *provisioningFixture) seed(t *testing.T, s seedAccount) {
	t.Helper()
	ctx := context.Background()

	customer := &onboarding.Customer{FirstName: "Juan", LastName: "Dela Cruz", Mobile: "09171234567"}
	require.NoError(t, f.customers.Create(ctx, customer))

	acc, err := account.NewSubscriberAccount(s.accountNo, customer.ID, nil, s.plan, decimal.NewFromInt(s.balance))
	require.NoError(t, err)
	require.NoError(t, f.deps.Accounts.Create(ctx, acc))
	if s.status != "" && s.status != account.StatusActive {
		require.NoError(t, f.deps.Accounts.UpdateConnectivityStatus(ctx, s.accountNo, s.status))
	}

	if s.username == "" && s.secret == "" {
		return
	}
	identity, err := network.NewIdentity(s.accountNo, s.username, s.secret, s.location)
	require.NoError(t, err)
	require.NoError(t, f.deps.Identities.Create(ctx, identity))
}

func (f *provisioningFixture) status(t *testing.T, accountNo string) account.ConnectivityStatus {
	t.Helper()
	acc, err := f.deps.Accounts.GetByAccountNo(context.Background(), accountNo)
	require.NoError(t, err)
	require.NotNil(t, acc)
	return acc.ConnectivityStatus()
}

func (f *provisioningFixture) identity(t *testing.T, accountNo string) *network.Identity {
	t.Helper()
	identity, err := f.deps.Identities.GetByAccountNo(context.Background(), accountNo)
	require.NoError(t, err)
	require.NotNil(t, identity)
	return identity
}

func (f *provisioningFixture) events(t *testing.T, accountNo string) []*connectivity.Event {
	t.Helper()
	events, err := f.deps.Events.ListByAccountNo(context.Background(), accountNo, 0)
	require.NoError(t, err)
	return events
}

func (f *provisioningFixture) published(t *testing.T) *connectivity.Event {
	t.Helper()
	select {
	case e := <-f.publisher.events:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("no event published")
		return nil
	}
}
