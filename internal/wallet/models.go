package wallet

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrNoWalletInstalled  error = errors.New("no wallet installed")
	ErrUserRejected       error = errors.New("user rejected the request")
	ErrBalanceUnavailable error = errors.New("balance unavailable")
	ErrNotConnected       error = errors.New("wallet not connected")
)

type State int

const (
	Disconnected State = iota
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	}
	return "unknown"
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// View is a copy of the session at one point in time.
type View struct {
	Account      common.Address
	Balance      *big.Int
	BalanceKnown bool
	State        State
	Epoch        uint64
}

func (v View) Connected() bool {
	return v.State == Connected
}
