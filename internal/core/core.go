package core

import (
	"context"
	"crowdsync/internal/ledger"
	"crowdsync/internal/transaction"
	"crowdsync/internal/wallet"
	tokenIssuer "crowdsync/pkg/jwt"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const tokenExpiration = 24 * time.Hour

var TimeNow = time.Now

type pendingAction struct {
	handle *transaction.Handle
	action *Action
}

// Crowdsync ties the wallet session, the ledger mirror and the submitter
// together. It owns the per target locks and reconciles the mirror after
// every confirmed transaction.
type Crowdsync struct {
	logs       *zap.SugaredLogger
	session    SessionManager
	mirror     LedgerMirror
	submitter  TransactionSubmitter
	jwtIssuer  JWTIssuer
	lateWindow time.Duration

	locks         *Locks
	notifications *NotificationLog
	changes       changeFeed

	pendingMu sync.RWMutex
	pending   map[uuid.UUID]*pendingAction

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCrowdsync is a constructor function for the Crowdsync type. lateWindow
// bounds how long a dropped transaction is still watched for.
func NewCrowdsync(
	logger *zap.SugaredLogger,
	session SessionManager,
	mirror LedgerMirror,
	submitter TransactionSubmitter,
	jwt JWTIssuer,
	lateWindow time.Duration,
) *Crowdsync {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Crowdsync{
		logs:          logger,
		session:       session,
		mirror:        mirror,
		submitter:     submitter,
		jwtIssuer:     jwt,
		lateWindow:    lateWindow,
		locks:         NewLocks(),
		notifications: NewNotificationLog(notificationLimit),
		pending:       make(map[uuid.UUID]*pendingAction),
		ctx:           ctx,
		cancel:        cancel,
	}
	session.OnAccountsChanged(c.accountsChanged)
	return c
}

func (c *Crowdsync) Installed() bool {
	return c.session.Installed()
}

func (c *Crowdsync) Session() wallet.View {
	return c.session.View()
}

// Connect connects the wallet, issues a session token and loads the first
// snapshot. A failed first load does not fail the connect.
func (c *Crowdsync) Connect(ctx context.Context) (Connection, error) {
	view, err := c.session.Connect(ctx)
	if err != nil {
		return Connection{Session: view}, fmt.Errorf("connect wallet: %w", err)
	}

	signed, err := c.jwtIssuer.Issue(tokenIssuer.TokenInfo{
		Account:    view.Account.Hex(),
		Epoch:      view.Epoch,
		Expiration: tokenExpiration,
	})
	if err != nil {
		return Connection{Session: view}, fmt.Errorf("signing token: %w", err)
	}

	if _, err := c.mirror.Refresh(ctx); err != nil && !errors.Is(err, ledger.ErrStale) {
		c.logs.Warnw("initial ledger refresh failed", "account", view.Account.Hex(), "error", err)
	}

	c.logs.Infow("session connected", "account", view.Account.Hex(), "epoch", view.Epoch)
	return Connection{Session: view, Token: signed}, nil
}

func (c *Crowdsync) Disconnect() {
	c.session.Disconnect()
}

// RefreshBalance re-reads the balance of the connected account.
func (c *Crowdsync) RefreshBalance(ctx context.Context) (wallet.View, error) {
	view, err := c.session.RefreshBalance(ctx)
	if err != nil {
		return view, fmt.Errorf("refresh balance: %w", err)
	}
	return view, nil
}

// Proposals returns the mirrored proposals, refreshing first when asked.
func (c *Crowdsync) Proposals(ctx context.Context, refresh bool) (ledger.Snapshot, error) {
	if !c.session.Installed() {
		return ledger.Snapshot{}, wallet.ErrNoWalletInstalled
	}
	if !c.session.View().Connected() {
		return ledger.Snapshot{}, wallet.ErrNotConnected
	}
	if !refresh {
		return c.mirror.Snapshot(), nil
	}

	snapshot, err := c.mirror.Refresh(ctx)
	if err != nil && !errors.Is(err, ledger.ErrStale) {
		return snapshot, fmt.Errorf("refresh proposals: %w", err)
	}
	return snapshot, nil
}

// Dispatch runs a user action on behalf of the session token holder. It
// returns once the transaction is broadcast; confirmation is tracked in
// the background.
func (c *Crowdsync) Dispatch(ctx context.Context, token string, req transaction.Request) (PendingTransaction, error) {
	if err := c.authorize(token); err != nil {
		return PendingTransaction{}, err
	}

	action := NewAction()
	c.transition(action, StateValidating)

	if err := c.validate(req); err != nil {
		c.transition(action, StateIdle)
		return PendingTransaction{}, err
	}

	key := req.LockKey()
	if !c.locks.TryAcquire(key) {
		c.transition(action, StateIdle)
		return PendingTransaction{}, fmt.Errorf("%s: %w", key, ErrActionInProgress)
	}

	c.transition(action, StateSigning)
	handle, err := c.submitter.Submit(ctx, req)
	if err != nil {
		c.locks.Release(key)
		c.transition(action, StateIdle)

		var reverted *transaction.RevertError
		if errors.As(err, &reverted) {
			c.notify(LevelError, string(req.Kind()), "Transaction would revert", reverted.Reason, nil)
		}
		return PendingTransaction{}, fmt.Errorf("submit %s: %w", req.Kind(), err)
	}
	c.transition(action, StateSubmitted)

	p := &pendingAction{handle: handle, action: action}
	c.pendingMu.Lock()
	c.pending[handle.LocalID] = p
	c.pendingMu.Unlock()

	c.wg.Add(1)
	go c.track(p)

	return p.view(), nil
}

// OnConfirmed refreshes the mirror once, then releases the lock of h and
// announces the change.
func (c *Crowdsync) OnConfirmed(ctx context.Context, h *transaction.Handle) {
	p := c.lookup(h.LocalID)
	if p != nil {
		c.transition(p.action, StateConfirmed)
	}

	snapshot, err := c.mirror.Refresh(ctx)
	if err != nil && !errors.Is(err, ledger.ErrStale) {
		c.logs.Warnw("refresh after confirmation failed", "local_id", h.LocalID, "error", err)
		snapshot = c.mirror.Snapshot()
	}

	if p != nil {
		c.transition(p.action, StateReconciled)
	}
	c.locks.Release(h.LockKey)

	id := h.LocalID
	c.notify(LevelInfo, string(h.Kind), confirmedMessage(h.Kind), "", &id)
	c.publish(ChangeEvent{
		Kind:          changeKind(h.Kind),
		TransactionID: h.LocalID,
		Hash:          h.Hash,
		ProposalID:    h.ProposalID,
		Snapshot:      snapshot,
	})

	if p != nil {
		c.transition(p.action, StateIdle)
	}
	c.remove(h.LocalID)
}

// OnFailed surfaces reason and releases the lock of h. A dropped
// transaction is still watched for a late confirmation.
func (c *Crowdsync) OnFailed(h *transaction.Handle, reason error) {
	state := StateReverted
	if errors.Is(reason, transaction.ErrTransactionDropped) {
		state = StateDropped
	}

	p := c.lookup(h.LocalID)
	if p != nil {
		c.transition(p.action, state)
	}
	c.locks.Release(h.LockKey)

	id := h.LocalID
	message, detail := "Transaction reverted", reason.Error()
	var reverted *transaction.RevertError
	if errors.As(reason, &reverted) {
		detail = reverted.Reason
	}
	if state == StateDropped {
		message = "Transaction not confirmed in time, please retry"
	}
	c.notify(LevelError, string(h.Kind), message, detail, &id)

	if p != nil {
		c.transition(p.action, StateIdle)
	}
	c.remove(h.LocalID)

	if state == StateDropped && c.lateWindow > 0 {
		c.wg.Add(1)
		go c.watchLate(h)
	}
}

func (c *Crowdsync) PendingTransactions() []PendingTransaction {
	c.pendingMu.RLock()
	defer c.pendingMu.RUnlock()

	views := make([]PendingTransaction, 0, len(c.pending))
	for _, p := range c.pending {
		views = append(views, p.view())
	}
	slices.SortFunc(views, func(a, b PendingTransaction) int {
		return a.SubmittedAt.Compare(b.SubmittedAt)
	})
	return views
}

func (c *Crowdsync) Notifications() []Notification {
	return c.notifications.List()
}

// SubscribeChanges delivers every ChangeEvent to ch. Delivery never waits:
// ch should be buffered, and a subscriber that lets it fill up is dropped
// with ErrSlowSubscriber. Close ends every subscription.
func (c *Crowdsync) SubscribeChanges(ch chan<- ChangeEvent) event.Subscription {
	return c.changes.subscribe(ch)
}

func (c *Crowdsync) publish(change ChangeEvent) {
	delivered := c.changes.send(change)
	c.logs.Debugw("change published", "kind", change.Kind, "local_id", change.TransactionID, "subscribers", delivered)
}

// Close abandons local tracking of every pending transaction and waits for
// the trackers to exit.
func (c *Crowdsync) Close() {
	c.cancel()
	c.wg.Wait()
	c.changes.closeAll()
}

func (c *Crowdsync) track(p *pendingAction) {
	defer c.wg.Done()

	if _, err := c.submitter.WaitForConfirmation(c.ctx, p.handle); err != nil {
		if c.ctx.Err() != nil {
			c.abandon(p.handle)
			return
		}
		c.OnFailed(p.handle, err)
		return
	}
	c.OnConfirmed(c.ctx, p.handle)
}

// abandon stops tracking h on shutdown. The transaction may still be
// mined; nothing is reported for it.
func (c *Crowdsync) abandon(h *transaction.Handle) {
	c.locks.Release(h.LockKey)
	c.remove(h.LocalID)
	c.logs.Infow("transaction tracking abandoned", "local_id", h.LocalID, "hash", h.Hash.Hex())
}

func (c *Crowdsync) watchLate(h *transaction.Handle) {
	defer c.wg.Done()

	ctx, cancel := context.WithTimeout(c.ctx, c.lateWindow)
	defer cancel()

	receipt, err := c.submitter.AwaitLate(ctx, h)
	if err != nil {
		c.logs.Debugw("no late confirmation", "local_id", h.LocalID, "hash", h.Hash.Hex(), "error", err)
		return
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		c.logs.Infow("dropped transaction mined as reverted", "local_id", h.LocalID, "hash", h.Hash.Hex())
		return
	}

	snapshot, err := c.mirror.Refresh(c.ctx)
	if err != nil && !errors.Is(err, ledger.ErrStale) {
		c.logs.Warnw("refresh after late confirmation failed", "local_id", h.LocalID, "error", err)
		snapshot = c.mirror.Snapshot()
	}

	id := h.LocalID
	c.notify(LevelInfo, string(h.Kind), "A transaction given up on was confirmed later", "", &id)
	c.publish(ChangeEvent{
		Kind:          ChangeLateConfirmation,
		TransactionID: h.LocalID,
		Hash:          h.Hash,
		ProposalID:    h.ProposalID,
		Snapshot:      snapshot,
	})
}

// authorize checks that token belongs to the account and epoch of the
// current session.
func (c *Crowdsync) authorize(token string) error {
	claims, err := c.jwtIssuer.Parse(token)
	if err != nil {
		return fmt.Errorf("validate jwt token: %w", err)
	}

	view := c.session.View()
	if !view.Connected() {
		return wallet.ErrNotConnected
	}

	if !strings.EqualFold(claims.Subject, view.Account.Hex()) || claims.Epoch != view.Epoch {
		return ErrSessionChanged
	}
	return nil
}

func (c *Crowdsync) validate(req transaction.Request) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %w", transaction.ErrInvalidInput, err)
	}

	contribute, ok := req.(transaction.Contribute)
	if !ok {
		return nil
	}
	proposal, found := c.mirror.Snapshot().Proposal(contribute.ProposalID)
	if found && proposal.Executed {
		return fmt.Errorf("%w: proposal %d is already executed", transaction.ErrInvalidInput, contribute.ProposalID)
	}
	return nil
}

func (c *Crowdsync) accountsChanged(view wallet.View) {
	c.logs.Infow("wallet session changed", "state", view.State.String(), "account", view.Account.Hex())
	c.mirror.Reset()
}

func (c *Crowdsync) transition(a *Action, to ActionState) {
	if err := a.Transition(to); err != nil {
		c.logs.Errorw("action transition rejected", "error", err)
	}
}

func (c *Crowdsync) notify(level Level, kind, message, reason string, transactionID *uuid.UUID) {
	c.notifications.Add(Notification{
		ID:            uuid.New(),
		Level:         level,
		Kind:          kind,
		Message:       message,
		Reason:        reason,
		TransactionID: transactionID,
		At:            TimeNow(),
	})
}

func (c *Crowdsync) lookup(id uuid.UUID) *pendingAction {
	c.pendingMu.RLock()
	defer c.pendingMu.RUnlock()
	return c.pending[id]
}

func (c *Crowdsync) remove(id uuid.UUID) {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	delete(c.pending, id)
}

func (p *pendingAction) view() PendingTransaction {
	return PendingTransaction{
		LocalID:     p.handle.LocalID,
		Kind:        p.handle.Kind,
		Hash:        p.handle.Hash,
		SubmittedAt: p.handle.SubmittedAt,
		Status:      p.handle.Status(),
		ProposalID:  p.handle.ProposalID,
		LockKey:     p.handle.LockKey,
		State:       p.action.State(),
	}
}

func confirmedMessage(kind transaction.Kind) string {
	switch kind {
	case transaction.KindCreateProposal:
		return "Proposal created"
	case transaction.KindWithdraw:
		return "Funds withdrawn"
	}
	return "Contribution confirmed"
}
