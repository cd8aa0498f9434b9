package transaction

import (
	"context"
	"crowdsync/internal/ethereum"
	"crowdsync/internal/wallet"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var TimeNow = time.Now

// Submitter validates, signs and broadcasts ledger calls, then follows them
// until they are mined or given up on.
type Submitter struct {
	logs      *zap.SugaredLogger
	session   Session
	wallet    Wallet
	encoder   CallEncoder
	confirmer Confirmer
	metrics   Metrics
	timeout   time.Duration
}

// NewSubmitter builds a submitter. A nil wallet makes every valid request
// fail with wallet.ErrNoWalletInstalled.
func NewSubmitter(
	logger *zap.SugaredLogger,
	session Session,
	wallet Wallet,
	encoder CallEncoder,
	confirmer Confirmer,
	metrics Metrics,
	confirmationTimeout time.Duration,
) *Submitter {
	return &Submitter{
		logs:      logger,
		session:   session,
		wallet:    wallet,
		encoder:   encoder,
		confirmer: confirmer,
		metrics:   metrics,
		timeout:   confirmationTimeout,
	}
}

// Submit validates req before any remote call and broadcasts it from the
// active account. The returned handle starts in StatusSubmitted.
func (s *Submitter) Submit(ctx context.Context, req Request) (*Handle, error) {
	started := TimeNow()
	handle, err := s.submit(ctx, req)
	s.metrics.ObserveSubmission(string(req.Kind()), err, started)
	return handle, err
}

func (s *Submitter) submit(ctx context.Context, req Request) (*Handle, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	c, err := req.call(s.encoder)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", req.Kind(), err)
	}

	if s.wallet == nil {
		return nil, wallet.ErrNoWalletInstalled
	}
	from, _, ok := s.session.ActiveAccount()
	if !ok {
		return nil, wallet.ErrNotConnected
	}

	tx, err := s.wallet.SendSignedCall(ctx, from, c.to, c.data, c.value)
	if err != nil {
		if reason, ok := ethereum.RevertReason(err); ok {
			return nil, fmt.Errorf("send %s: %w", req.Kind(), &RevertError{Reason: reason})
		}
		return nil, fmt.Errorf("send %s: %w", req.Kind(), err)
	}

	handle := &Handle{
		LocalID:     uuid.New(),
		Kind:        req.Kind(),
		Hash:        tx.Hash(),
		From:        from,
		To:          c.to,
		ProposalID:  c.proposalID,
		LockKey:     req.LockKey(),
		SubmittedAt: TimeNow(),
		tx:          tx,
		status:      StatusSubmitted,
	}
	s.logs.Infow("transaction submitted",
		"local_id", handle.LocalID,
		"kind", handle.Kind,
		"hash", handle.Hash.Hex(),
		"from", from.Hex(),
	)
	return handle, nil
}

// WaitForConfirmation blocks until the transaction is mined. It fails with
// a *RevertError when the receipt reports failure and with
// ErrTransactionDropped when no receipt shows up within the timeout.
func (s *Submitter) WaitForConfirmation(ctx context.Context, h *Handle) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	receipt, err := s.confirmer.WaitMined(waitCtx, h.Hash)
	if err != nil {
		dropped := fmt.Errorf("%w after %s: %w", ErrTransactionDropped, TimeNow().Sub(h.SubmittedAt).Round(time.Second), err)
		h.fail(dropped)
		s.metrics.ObserveConfirmation(string(h.Kind), "dropped", h.SubmittedAt)
		s.logs.Warnw("transaction dropped", "local_id", h.LocalID, "hash", h.Hash.Hex(), "error", err)
		return nil, dropped
	}

	if receipt.Status == types.ReceiptStatusFailed {
		reason, replayErr := s.confirmer.ReplayRevert(ctx, h.From, h.tx, receipt.BlockNumber)
		if replayErr != nil && !errors.Is(replayErr, ethereum.ErrNoRevertReason) {
			s.logs.Warnw("revert reason unavailable", "hash", h.Hash.Hex(), "error", replayErr)
		}
		reverted := &RevertError{Reason: reason}
		h.fail(reverted)
		s.metrics.ObserveConfirmation(string(h.Kind), "reverted", h.SubmittedAt)
		s.logs.Infow("transaction reverted", "local_id", h.LocalID, "hash", h.Hash.Hex(), "reason", reason)
		return receipt, reverted
	}

	h.confirm()
	s.metrics.ObserveConfirmation(string(h.Kind), "confirmed", h.SubmittedAt)
	s.logs.Infow("transaction confirmed", "local_id", h.LocalID, "hash", h.Hash.Hex(), "block", receipt.BlockNumber)
	return receipt, nil
}

// AwaitLate waits for the receipt of a transaction whose tracking was
// abandoned. The handle is left untouched.
func (s *Submitter) AwaitLate(ctx context.Context, h *Handle) (*types.Receipt, error) {
	receipt, err := s.confirmer.WaitMined(ctx, h.Hash)
	if err != nil {
		return nil, fmt.Errorf("late receipt %s: %w", h.Hash.Hex(), err)
	}
	return receipt, nil
}
