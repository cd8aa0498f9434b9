package wallet

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"
)

// Manager owns the wallet session and keeps it in step with the wallet.
type Manager struct {
	logs    *zap.SugaredLogger
	wallet  Capability
	session *Session
	// resume is set when the wallet itself dropped the last account, so the
	// next announced account reconnects. An explicit Disconnect clears it.
	resume atomic.Bool

	handlersMu sync.RWMutex
	handlers   []func(View)

	startOnce sync.Once
	stop      context.CancelFunc
	sub       event.Subscription
	wg        sync.WaitGroup
}

// NewManager builds a manager around wallet. A nil wallet means none is
// installed; every connect attempt then fails with ErrNoWalletInstalled.
func NewManager(logger *zap.SugaredLogger, wallet Capability) *Manager {
	return &Manager{
		logs:    logger,
		wallet:  wallet,
		session: NewSession(),
	}
}

func (m *Manager) Installed() bool {
	return m.wallet != nil
}

func (m *Manager) Session() *Session {
	return m.session
}

func (m *Manager) View() View {
	return m.session.View()
}

// OnAccountsChanged registers a handler run after every account transition.
// Handlers run synchronously on the goroutine that made the transition.
func (m *Manager) OnAccountsChanged(handler func(View)) {
	m.handlersMu.Lock()
	defer m.handlersMu.Unlock()
	m.handlers = append(m.handlers, handler)
}

func (m *Manager) Connect(ctx context.Context) (View, error) {
	return m.connect(ctx, common.Address{})
}

// Disconnect ends the session on the user's request. Later account
// announcements from the wallet are ignored until Connect is called.
func (m *Manager) Disconnect() {
	m.resume.Store(false)
	m.disconnect()
}

func (m *Manager) disconnect() bool {
	if !m.session.clear() {
		return false
	}
	m.logs.Infow("wallet disconnected")
	m.notify()
	return true
}

// RefreshBalance reads the balance of the active account. A failed read
// leaves the connection untouched.
func (m *Manager) RefreshBalance(ctx context.Context) (View, error) {
	account, epoch, ok := m.session.ActiveAccount()
	if !ok {
		return m.session.View(), ErrNotConnected
	}
	err := m.refreshBalance(ctx, epoch, account)
	return m.session.View(), err
}

// Start subscribes to wallet account changes. It is a no-op without a wallet.
func (m *Manager) Start(ctx context.Context) {
	if m.wallet == nil {
		return
	}
	m.startOnce.Do(func() {
		ctx, m.stop = context.WithCancel(ctx)
		accounts := make(chan []common.Address, 8)
		m.sub = m.wallet.SubscribeAccounts(accounts)

		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			m.watch(ctx, accounts)
		}()
	})
}

func (m *Manager) Close() {
	if m.stop == nil {
		return
	}
	m.stop()
	m.sub.Unsubscribe()
	m.wg.Wait()
}

func (m *Manager) watch(ctx context.Context, accounts <-chan []common.Address) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-m.sub.Err():
			if ok && err != nil {
				m.logs.Errorw("wallet subscription failed", "error", err)
			}
			return
		case list := <-accounts:
			m.accountsChanged(ctx, list)
		}
	}
}

func (m *Manager) accountsChanged(ctx context.Context, list []common.Address) {
	if len(list) == 0 {
		if m.disconnect() {
			m.resume.Store(true)
		}
		return
	}

	current := m.session.View()
	if current.State == Disconnected && !m.resume.Load() {
		m.logs.Debugw("ignoring account change while disconnected", "accounts", len(list))
		return
	}
	if current.State == Connected && current.Account == list[0] {
		_ = m.refreshBalance(ctx, current.Epoch, current.Account)
		return
	}

	m.logs.Infow("primary account changed", "account", list[0].Hex())
	if _, err := m.connect(ctx, list[0]); err != nil {
		m.logs.Warnw("reconnect after account change failed", "account", list[0].Hex(), "error", err)
	}
}

// connect runs the connect flow. A non-zero primary must be among the
// accounts the wallet grants.
func (m *Manager) connect(ctx context.Context, primary common.Address) (View, error) {
	if m.wallet == nil {
		return m.session.View(), ErrNoWalletInstalled
	}

	epoch := m.session.beginConnect()
	m.notify()

	accounts, err := m.wallet.RequestAccounts(ctx)
	if err == nil && len(accounts) == 0 {
		err = fmt.Errorf("no accounts offered: %w", ErrUserRejected)
	}
	if err == nil && primary != (common.Address{}) && !slices.Contains(accounts, primary) {
		err = fmt.Errorf("account %s not granted: %w", primary.Hex(), ErrUserRejected)
	}
	if err != nil {
		if m.session.failConnect(epoch) {
			m.notify()
		}
		if !errors.Is(err, ErrUserRejected) && !errors.Is(err, ErrNoWalletInstalled) {
			err = fmt.Errorf("request accounts: %w", err)
		}
		return m.session.View(), err
	}

	account := accounts[0]
	if primary != (common.Address{}) {
		account = primary
	}
	if !m.session.completeConnect(epoch, account) {
		return m.session.View(), fmt.Errorf("session changed during connect: %w", ErrNotConnected)
	}
	m.logs.Infow("wallet connected", "account", account.Hex())

	if err := m.refreshBalance(ctx, epoch, account); err != nil {
		m.logs.Warnw("balance read failed after connect", "account", account.Hex(), "error", err)
	}
	m.notify()
	return m.session.View(), nil
}

func (m *Manager) refreshBalance(ctx context.Context, epoch uint64, account common.Address) error {
	balance, err := m.wallet.Balance(ctx, account)
	if err != nil {
		m.session.setBalance(epoch, account, nil, false)
		return fmt.Errorf("balance of %s: %w: %w", account.Hex(), ErrBalanceUnavailable, err)
	}
	if !m.session.setBalance(epoch, account, balance, true) {
		m.logs.Debugw("discarding balance for previous session", "account", account.Hex())
	}
	return nil
}

func (m *Manager) notify() {
	view := m.session.View()

	m.handlersMu.RLock()
	handlers := slices.Clone(m.handlers)
	m.handlersMu.RUnlock()

	for _, handler := range handlers {
		handler(view)
	}
}
