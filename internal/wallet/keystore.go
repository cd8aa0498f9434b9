package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

// Backend is the node access the keystore wallet needs to read balances
// and broadcast transactions.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	EstimateGas(ctx context.Context, call geth.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// KeystoreWallet is a wallet backed by an encrypted key directory.
type KeystoreWallet struct {
	ks         *keystore.KeyStore
	backend    Backend
	passphrase string
}

func OpenKeystoreWallet(dir string, backend Backend, passphrase string) (*KeystoreWallet, error) {
	if dir == "" {
		return nil, ErrNoWalletInstalled
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("keystore %q: %w", dir, ErrNoWalletInstalled)
	}

	return &KeystoreWallet{
		ks:         keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP),
		backend:    backend,
		passphrase: passphrase,
	}, nil
}

// RequestAccounts unlocks every account of the keystore. Failing to unlock
// the primary account counts as a rejection.
func (w *KeystoreWallet) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	list := w.ks.Accounts()
	if len(list) == 0 {
		return nil, fmt.Errorf("keystore has no accounts: %w", ErrUserRejected)
	}

	addresses := make([]common.Address, 0, len(list))
	for i, account := range list {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := w.ks.Unlock(account, w.passphrase); err != nil {
			if i == 0 {
				return nil, fmt.Errorf("unlock %s: %w", account.Address.Hex(), unlockError(err))
			}
			continue
		}
		addresses = append(addresses, account.Address)
	}
	return addresses, nil
}

func (w *KeystoreWallet) Balance(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := w.backend.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, fmt.Errorf("balance at: %w", err)
	}
	return balance, nil
}

func (w *KeystoreWallet) SubscribeAccounts(sink chan<- []common.Address) event.Subscription {
	return event.NewSubscription(func(quit <-chan struct{}) error {
		events := make(chan accounts.WalletEvent, 16)
		sub := w.ks.Subscribe(events)
		defer sub.Unsubscribe()

		for {
			select {
			case <-events:
				select {
				case sink <- w.addresses():
				case <-quit:
					return nil
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	})
}

// Signer returns a signing function bound to account and the node's chain.
func (w *KeystoreWallet) Signer(ctx context.Context, account common.Address) (bind.SignerFn, error) {
	chainID, err := w.backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}
	opts, err := bind.NewKeyStoreTransactorWithChainID(w.ks, accounts.Account{Address: account}, chainID)
	if err != nil {
		return nil, fmt.Errorf("keystore transactor: %w", err)
	}
	return opts.Signer, nil
}

// SendSignedCall builds, signs and broadcasts a call from one of the
// keystore accounts. A reverting gas estimate is returned unchanged so the
// caller can read its revert reason.
func (w *KeystoreWallet) SendSignedCall(ctx context.Context, from, to common.Address, data []byte, value *big.Int) (*types.Transaction, error) {
	if value == nil {
		value = new(big.Int)
	}

	signer, err := w.Signer(ctx, from)
	if err != nil {
		return nil, err
	}

	nonce, err := w.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("pending nonce: %w", err)
	}

	gas, err := w.backend.EstimateGas(ctx, geth.CallMsg{From: from, To: &to, Value: value, Data: data})
	if err != nil {
		return nil, fmt.Errorf("estimate gas: %w", err)
	}

	raw, err := w.buildTx(ctx, nonce, gas, to, value, data)
	if err != nil {
		return nil, err
	}

	signed, err := signer(from, raw)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", unlockError(err))
	}

	if err := w.backend.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}
	return signed, nil
}

func (w *KeystoreWallet) buildTx(ctx context.Context, nonce, gas uint64, to common.Address, value *big.Int, data []byte) (*types.Transaction, error) {
	head, err := w.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("latest header: %w", err)
	}

	if head.BaseFee == nil {
		price, err := w.backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("suggest gas price: %w", err)
		}
		return types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			GasPrice: price,
			Gas:      gas,
			To:       &to,
			Value:    value,
			Data:     data,
		}), nil
	}

	tip, err := w.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas tip: %w", err)
	}
	chainID, err := w.backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}
	feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &to,
		Value:     value,
		Data:      data,
	}), nil
}

func (w *KeystoreWallet) addresses() []common.Address {
	list := w.ks.Accounts()
	addresses := make([]common.Address, len(list))
	for i, account := range list {
		addresses[i] = account.Address
	}
	return addresses
}

func unlockError(err error) error {
	if errors.Is(err, keystore.ErrDecrypt) || errors.Is(err, keystore.ErrLocked) {
		return fmt.Errorf("%w: %w", ErrUserRejected, err)
	}
	return err
}
