package wallet

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Session holds the active account. The account is set only while the
// session is Connected. Every account transition bumps the epoch, and
// writes carrying an older epoch are dropped.
type Session struct {
	mu           sync.RWMutex
	account      common.Address
	balance      *big.Int
	balanceKnown bool
	state        State
	epoch        uint64
}

func NewSession() *Session {
	return &Session{
		balance: new(big.Int),
		state:   Disconnected,
	}
}

func (s *Session) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return View{
		Account:      s.account,
		Balance:      new(big.Int).Set(s.balance),
		BalanceKnown: s.balanceKnown,
		State:        s.state,
		Epoch:        s.epoch,
	}
}

// ActiveAccount returns the connected account with the epoch it belongs to.
func (s *Session) ActiveAccount() (common.Address, uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != Connected {
		return common.Address{}, s.epoch, false
	}
	return s.account, s.epoch, true
}

func (s *Session) beginConnect() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.state = Connecting
	s.account = common.Address{}
	s.balance = new(big.Int)
	s.balanceKnown = false
	return s.epoch
}

func (s *Session) completeConnect(epoch uint64, account common.Address) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch || s.state != Connecting {
		return false
	}
	s.state = Connected
	s.account = account
	return true
}

func (s *Session) failConnect(epoch uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch {
		return false
	}
	s.state = Disconnected
	return true
}

func (s *Session) clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Disconnected {
		return false
	}
	s.epoch++
	s.state = Disconnected
	s.account = common.Address{}
	s.balance = new(big.Int)
	s.balanceKnown = false
	return true
}

func (s *Session) setBalance(epoch uint64, account common.Address, balance *big.Int, known bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch || s.state != Connected || s.account != account {
		return false
	}
	if known {
		s.balance = new(big.Int).Set(balance)
	}
	s.balanceKnown = known
	return true
}
