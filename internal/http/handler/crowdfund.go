package handler

import (
	"crowdsync/internal/core"
	"crowdsync/internal/http/handler/middleware"
	"crowdsync/internal/http/payload"
	"crowdsync/internal/transaction"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

var (
	GetSession        = "GET /crowdfund/session"
	ConnectSession    = "POST /crowdfund/session/connect"
	DisconnectSession = "POST /crowdfund/session/disconnect"
	RefreshBalance    = "POST /crowdfund/session/balance"
	GetProposals      = "GET /crowdfund/proposals"
	CreateProposal    = "POST /crowdfund/proposals"
	Contribute        = "POST /crowdfund/proposals/{id}/contributions"
	Withdraw          = "POST /crowdfund/projects/{address}/withdrawals"
	GetTransactions   = "GET /crowdfund/transactions"
	GetNotifications  = "GET /crowdfund/notifications"
	GetEvents         = "GET /crowdfund/events"
)

const authTokenHeader = "AUTH_TOKEN"

type CrowdfundHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	crowdsync        CrowdfundService
}

func NewCrowdfundHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, service CrowdfundService) *CrowdfundHandler {
	return &CrowdfundHandler{
		logs:             logger,
		requestValidator: requestValidator,
		crowdsync:        service,
	}
}

func (h *CrowdfundHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	if !h.walletInstalled(w, GetSession, requestId) {
		return
	}

	h.respond(w, Response{Data: toSessionView(h.crowdsync.Session())}, http.StatusOK, requestId)
}

func (h *CrowdfundHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	if !h.walletInstalled(w, ConnectSession, requestId) {
		return
	}

	conn, err := h.crowdsync.Connect(r.Context())
	if err != nil {
		h.fail(w, "Could not connect wallet", err, ConnectSession, requestId)
		return
	}

	h.logs.Infow("wallet connected",
		"account", conn.Session.Account.Hex(),
		"handler", ConnectSession,
		"request_id", requestId)
	h.respond(w, Response{
		Message: "Wallet connected",
		Data: connectView{
			Session: toSessionView(conn.Session),
			Token:   conn.Token,
		},
	}, http.StatusOK, requestId)
}

func (h *CrowdfundHandler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	if !h.walletInstalled(w, DisconnectSession, requestId) {
		return
	}

	h.crowdsync.Disconnect()
	h.respond(w, Response{
		Message: "Wallet disconnected",
		Data:    toSessionView(h.crowdsync.Session()),
	}, http.StatusOK, requestId)
}

func (h *CrowdfundHandler) HandleRefreshBalance(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	if !h.walletInstalled(w, RefreshBalance, requestId) {
		return
	}

	view, err := h.crowdsync.RefreshBalance(r.Context())
	if err != nil {
		h.fail(w, "Could not refresh balance", err, RefreshBalance, requestId)
		return
	}

	h.respond(w, Response{Data: toSessionView(view)}, http.StatusOK, requestId)
}

func (h *CrowdfundHandler) HandleGetProposals(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	if !h.walletInstalled(w, GetProposals, requestId) {
		return
	}

	refresh := false
	if raw := r.URL.Query().Get("refresh"); raw != "" {
		var err error
		refresh, err = strconv.ParseBool(raw)
		if err != nil {
			h.respond(w, Response{
				Message: "Could not retrieve proposals",
				Error:   fmt.Errorf("parse refresh parameter: %w", err).Error(),
			}, http.StatusBadRequest,
				requestId)
			return
		}
	}

	snapshot, err := h.crowdsync.Proposals(r.Context(), refresh)
	if err != nil {
		h.fail(w, "Could not retrieve proposals", err, GetProposals, requestId)
		return
	}

	h.respond(w, Response{Data: toSnapshotView(snapshot)}, http.StatusOK, requestId)
}

func (h *CrowdfundHandler) HandleCreateProposal(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	if !h.walletInstalled(w, CreateProposal, requestId) {
		return
	}

	var body payload.CreateProposalRequest
	if err := h.decode(w, r, &body, CreateProposal, requestId); err != nil {
		return
	}

	h.dispatch(w, r, body.ToRequest(), CreateProposal, requestId)
}

func (h *CrowdfundHandler) HandleContribute(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	if !h.walletInstalled(w, Contribute, requestId) {
		return
	}

	proposalID, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respond(w, Response{
			Message: "Contribution failed",
			Error:   fmt.Errorf("%w: proposal id must be a non-negative integer", transaction.ErrInvalidInput).Error(),
		}, http.StatusBadRequest,
			requestId)
		return
	}

	var body payload.ContributionRequest
	if err := h.decode(w, r, &body, Contribute, requestId); err != nil {
		return
	}

	h.dispatch(w, r, body.ToRequest(proposalID), Contribute, requestId)
}

func (h *CrowdfundHandler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	if !h.walletInstalled(w, Withdraw, requestId) {
		return
	}

	h.dispatch(w, r, transaction.Withdraw{Project: r.PathValue("address")}, Withdraw, requestId)
}

func (h *CrowdfundHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	pending := h.crowdsync.PendingTransactions()
	views := make([]pendingView, 0, len(pending))
	for _, p := range pending {
		views = append(views, toPendingView(p))
	}

	h.respond(w, Response{Data: views}, http.StatusOK, requestId)
}

func (h *CrowdfundHandler) HandleGetNotifications(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	notifications := h.crowdsync.Notifications()
	views := make([]notificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, toNotificationView(n))
	}

	h.respond(w, Response{Data: views}, http.StatusOK, requestId)
}

// HandleEvents streams ledger change events as server-sent events until the
// client goes away.
func (h *CrowdfundHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.respond(w, Response{Error: "streaming unsupported"}, http.StatusInternalServerError, requestId)
		return
	}

	changes := make(chan core.ChangeEvent, 16)
	sub := h.crowdsync.SubscribeChanges(changes)
	defer sub.Unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case err := <-sub.Err():
			if err != nil {
				h.logs.Errorw("change subscription failed",
					"error", err,
					"handler", GetEvents,
					"request_id", requestId)
			}
			return
		case change := <-changes:
			data, err := json.Marshal(toChangeView(change))
			if err != nil {
				h.logs.Errorw("failed to encode change event",
					"error", err,
					"handler", GetEvents,
					"request_id", requestId)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", change.Kind, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (h *CrowdfundHandler) dispatch(w http.ResponseWriter, r *http.Request, req transaction.Request, handler, requestId string) {
	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Transaction not sent",
			Error:   "missing " + authTokenHeader + " header",
		}, http.StatusUnauthorized,
			requestId)
		return
	}

	pending, err := h.crowdsync.Dispatch(r.Context(), authToken, req)
	if err != nil {
		h.fail(w, "Transaction not sent", err, handler, requestId)
		return
	}

	h.logs.Infow("transaction submitted",
		"kind", pending.Kind,
		"tx_hash", pending.Hash.Hex(),
		"handler", handler,
		"request_id", requestId)
	h.respond(w, Response{
		Message: "Transaction submitted",
		Data:    toPendingView(pending),
	}, http.StatusAccepted, requestId)
}

func (h *CrowdfundHandler) decode(w http.ResponseWriter, r *http.Request, body interface{ Validate() error }, handler, requestId string) error {
	err := h.requestValidator.DecodeJSONPayload(r, body)
	if err == nil {
		err = body.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Transaction not sent",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", handler,
			"request_id", requestId)
	}
	return err
}

func (h *CrowdfundHandler) walletInstalled(w http.ResponseWriter, handler, requestId string) bool {
	if h.crowdsync.Installed() {
		return true
	}
	h.respond(w, Response{
		Message: installWalletErr,
		Error:   installWalletErr,
	}, http.StatusServiceUnavailable,
		requestId)
	h.logs.Warnw("no wallet installed",
		"handler", handler,
		"request_id", requestId)
	return false
}

func (h *CrowdfundHandler) fail(w http.ResponseWriter, message string, err error, handler, requestId string) {
	code, detail := errorStatus(err)
	h.respond(w, Response{
		Message: message,
		Error:   detail,
	}, code, requestId)

	if code >= http.StatusInternalServerError {
		h.logs.Errorw(message,
			"error", err,
			"handler", handler,
			"request_id", requestId)
		return
	}
	h.logs.Infow(message,
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *CrowdfundHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}
