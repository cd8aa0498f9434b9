package transaction

import (
	"errors"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput       error = errors.New("invalid input")
	ErrTransactionDropped error = errors.New("transaction dropped")
)

// RevertError carries the contract's revert reason verbatim.
type RevertError struct {
	Reason string
}

func (e *RevertError) Error() string {
	if e.Reason == "" {
		return "transaction reverted"
	}
	return "transaction reverted: " + e.Reason
}

type Kind string

const (
	KindContribute     Kind = "contribute"
	KindCreateProposal Kind = "create-proposal"
	KindWithdraw       Kind = "withdraw"
)

type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Handle tracks one broadcast transaction.
type Handle struct {
	LocalID     uuid.UUID
	Kind        Kind
	Hash        common.Hash
	From        common.Address
	To          common.Address
	ProposalID  *uint64
	LockKey     string
	SubmittedAt time.Time

	tx *types.Transaction

	mu     sync.RWMutex
	status Status
	err    error
}

func (h *Handle) Status() Status {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// Err is the terminal failure, nil unless the status is StatusFailed.
func (h *Handle) Err() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.err
}

func (h *Handle) Transaction() *types.Transaction {
	return h.tx
}

func (h *Handle) confirm() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = StatusConfirmed
}

func (h *Handle) fail(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = StatusFailed
	h.err = err
}
