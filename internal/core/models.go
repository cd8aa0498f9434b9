package core

import (
	"crowdsync/internal/ledger"
	"crowdsync/internal/transaction"
	"crowdsync/internal/wallet"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

var (
	ErrActionInProgress error = errors.New("action already in progress")
	ErrSessionChanged   error = errors.New("session changed since the token was issued")
)

// Connection is the result of a successful connect.
type Connection struct {
	Session wallet.View
	Token   string
}

// PendingTransaction is a dispatched action that has not been reconciled yet.
type PendingTransaction struct {
	LocalID     uuid.UUID
	Kind        transaction.Kind
	Hash        common.Hash
	SubmittedAt time.Time
	Status      transaction.Status
	ProposalID  *uint64
	LockKey     string
	State       ActionState
}

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

type Notification struct {
	ID            uuid.UUID
	Level         Level
	Kind          string
	Message       string
	Reason        string
	TransactionID *uuid.UUID
	At            time.Time
}

type ChangeKind string

const (
	ChangeProposalCreated       ChangeKind = "proposal-created"
	ChangeContributionConfirmed ChangeKind = "contribution-confirmed"
	ChangeWithdrawalConfirmed   ChangeKind = "withdrawal-confirmed"
	ChangeLateConfirmation      ChangeKind = "late-confirmation"
)

// ChangeEvent is published after the mirror has been refreshed for a
// confirmed transaction.
type ChangeEvent struct {
	Kind          ChangeKind
	TransactionID uuid.UUID
	Hash          common.Hash
	ProposalID    *uint64
	Snapshot      ledger.Snapshot
}

func changeKind(kind transaction.Kind) ChangeKind {
	switch kind {
	case transaction.KindCreateProposal:
		return ChangeProposalCreated
	case transaction.KindWithdraw:
		return ChangeWithdrawalConfirmed
	}
	return ChangeContributionConfirmed
}
