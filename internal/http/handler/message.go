package handler

import (
	"crowdsync/internal/core"
	"crowdsync/internal/ledger"
	"crowdsync/internal/transaction"
	"crowdsync/internal/wallet"
	tokenIssuer "crowdsync/pkg/jwt"
	"errors"
	"net/http"
)

const (
	oopsErr          = "Oops! Something went wrong. Please try again later."
	installWalletErr = "Please install a wallet"
)

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

// errorStatus maps a service error to its HTTP status and the detail shown
// to the caller. Unknown errors are not echoed back.
func errorStatus(err error) (int, string) {
	var reverted *transaction.RevertError
	switch {
	case errors.Is(err, transaction.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, wallet.ErrUserRejected):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, wallet.ErrNotConnected),
		errors.Is(err, core.ErrSessionChanged),
		errors.Is(err, tokenIssuer.ErrTokenNotValid),
		errors.Is(err, tokenIssuer.ErrTokenExpired):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, core.ErrActionInProgress):
		return http.StatusConflict, err.Error()
	case errors.Is(err, wallet.ErrNoWalletInstalled):
		return http.StatusServiceUnavailable, installWalletErr
	case errors.Is(err, ledger.ErrLedgerUnreachable), errors.Is(err, wallet.ErrBalanceUnavailable):
		return http.StatusBadGateway, "ledger unavailable, please retry"
	case errors.As(err, &reverted):
		return http.StatusUnprocessableEntity, reverted.Error()
	}
	return http.StatusInternalServerError, oopsErr
}
