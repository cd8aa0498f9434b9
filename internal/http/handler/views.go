package handler

import (
	"crowdsync/internal/core"
	"crowdsync/internal/ledger"
	"crowdsync/internal/wallet"
	"crowdsync/pkg/ether"
	"time"
)

type sessionView struct {
	State        wallet.State `json:"state"`
	Account      string       `json:"account,omitempty"`
	Balance      string       `json:"balance"`
	BalanceWei   string       `json:"balanceWei"`
	BalanceKnown bool         `json:"balanceKnown"`
}

type connectView struct {
	Session sessionView `json:"session"`
	Token   string      `json:"token"`
}

type proposalView struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	FundRequest    string `json:"fundRequest"`
	FundRequestWei string `json:"fundRequestWei"`
	Raised         string `json:"raised"`
	RaisedWei      string `json:"raisedWei"`
	Executed       bool   `json:"executed"`
	Funded         bool   `json:"funded"`
	Project        string `json:"project,omitempty"`
	ProjectLinked  bool   `json:"projectLinked"`
}

type snapshotView struct {
	Seq         uint64         `json:"seq"`
	RefreshedAt *time.Time     `json:"refreshedAt,omitempty"`
	Proposals   []proposalView `json:"proposals"`
}

type pendingView struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Hash        string    `json:"hash"`
	SubmittedAt time.Time `json:"submittedAt"`
	Status      string    `json:"status"`
	ProposalID  *uint64   `json:"proposalId,omitempty"`
	LockKey     string    `json:"lockKey"`
	State       string    `json:"state"`
}

type notificationView struct {
	ID            string    `json:"id"`
	Level         string    `json:"level"`
	Kind          string    `json:"kind"`
	Message       string    `json:"message"`
	Reason        string    `json:"reason,omitempty"`
	TransactionID string    `json:"transactionId,omitempty"`
	At            time.Time `json:"at"`
}

type changeView struct {
	Kind          string       `json:"kind"`
	TransactionID string       `json:"transactionId"`
	Hash          string       `json:"hash"`
	ProposalID    *uint64      `json:"proposalId,omitempty"`
	Snapshot      snapshotView `json:"snapshot"`
}

func toSessionView(v wallet.View) sessionView {
	view := sessionView{
		State:        v.State,
		Balance:      ether.FormatEther(v.Balance),
		BalanceWei:   "0",
		BalanceKnown: v.BalanceKnown,
	}
	if v.Balance != nil {
		view.BalanceWei = v.Balance.String()
	}
	if v.Connected() {
		view.Account = v.Account.Hex()
	}
	return view
}

func toSnapshotView(s ledger.Snapshot) snapshotView {
	view := snapshotView{
		Seq:       s.Seq,
		Proposals: make([]proposalView, 0, len(s.Proposals)),
	}
	if !s.RefreshedAt.IsZero() {
		at := s.RefreshedAt
		view.RefreshedAt = &at
	}
	for _, p := range s.Proposals {
		pv := proposalView{
			ID:             p.ID,
			Name:           p.Name,
			Description:    p.Description,
			FundRequest:    ether.FormatEther(p.FundRequest),
			FundRequestWei: p.FundRequest.String(),
			Raised:         ether.FormatEther(p.Raised),
			RaisedWei:      p.Raised.String(),
			Executed:       p.Executed,
			Funded:         p.Funded(),
			ProjectLinked:  p.ProjectLinked(),
		}
		if p.ProjectLinked() {
			pv.Project = p.Project.Hex()
		}
		view.Proposals = append(view.Proposals, pv)
	}
	return view
}

func toPendingView(p core.PendingTransaction) pendingView {
	return pendingView{
		ID:          p.LocalID.String(),
		Kind:        string(p.Kind),
		Hash:        p.Hash.Hex(),
		SubmittedAt: p.SubmittedAt,
		Status:      string(p.Status),
		ProposalID:  p.ProposalID,
		LockKey:     p.LockKey,
		State:       string(p.State),
	}
}

func toNotificationView(n core.Notification) notificationView {
	view := notificationView{
		ID:      n.ID.String(),
		Level:   string(n.Level),
		Kind:    n.Kind,
		Message: n.Message,
		Reason:  n.Reason,
		At:      n.At,
	}
	if n.TransactionID != nil {
		view.TransactionID = n.TransactionID.String()
	}
	return view
}

func toChangeView(e core.ChangeEvent) changeView {
	return changeView{
		Kind:          string(e.Kind),
		TransactionID: e.TransactionID.String(),
		Hash:          e.Hash.Hex(),
		ProposalID:    e.ProposalID,
		Snapshot:      toSnapshotView(e.Snapshot),
	}
}
