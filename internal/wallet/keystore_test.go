package wallet_test

import (
	"context"
	"crowdsync/internal/wallet"
	"math/big"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("KeystoreWallet", func() {
	const passphrase = "correct horse"

	var (
		ctx       context.Context
		dir       string
		keys      *keystore.KeyStore
		account   accounts.Account
		backend   *simulated.Backend
		keyWallet *wallet.KeystoreWallet
		funds     *big.Int
	)

	BeforeEach(func() {
		ctx = context.Background()
		dir = GinkgoT().TempDir()
		keys = keystore.NewKeyStore(dir, keystore.LightScryptN, keystore.LightScryptP)

		var err error
		account, err = keys.NewAccount(passphrase)
		Expect(err).NotTo(HaveOccurred())

		funds = new(big.Int).Mul(big.NewInt(2), big.NewInt(1_000_000_000_000_000_000))
		backend = simulated.NewBackend(types.GenesisAlloc{
			account.Address: {Balance: funds},
		})
		DeferCleanup(backend.Close)

		keyWallet, err = wallet.OpenKeystoreWallet(dir, backend.Client(), passphrase)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("OpenKeystoreWallet", func() {
		It("reports a missing directory as no wallet", func() {
			_, err := wallet.OpenKeystoreWallet(filepath.Join(dir, "missing"), backend.Client(), passphrase)
			Expect(err).To(MatchError(wallet.ErrNoWalletInstalled))
		})

		It("reports an empty path as no wallet", func() {
			_, err := wallet.OpenKeystoreWallet("", backend.Client(), passphrase)
			Expect(err).To(MatchError(wallet.ErrNoWalletInstalled))
		})
	})

	Describe("RequestAccounts", func() {
		It("unlocks and returns the keystore accounts", func() {
			addresses, err := keyWallet.RequestAccounts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(addresses).To(Equal([]common.Address{account.Address}))
		})

		When("the passphrase is wrong", func() {
			BeforeEach(func() {
				var err error
				keyWallet, err = wallet.OpenKeystoreWallet(dir, backend.Client(), "wrong")
				Expect(err).NotTo(HaveOccurred())
			})

			It("is a rejection", func() {
				_, err := keyWallet.RequestAccounts(ctx)
				Expect(err).To(MatchError(wallet.ErrUserRejected))
			})
		})

		When("the keystore is empty", func() {
			BeforeEach(func() {
				var err error
				keyWallet, err = wallet.OpenKeystoreWallet(GinkgoT().TempDir(), backend.Client(), passphrase)
				Expect(err).NotTo(HaveOccurred())
			})

			It("is a rejection", func() {
				_, err := keyWallet.RequestAccounts(ctx)
				Expect(err).To(MatchError(wallet.ErrUserRejected))
			})
		})
	})

	Describe("Balance", func() {
		It("reads the node balance", func() {
			balance, err := keyWallet.Balance(ctx, account.Address)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance.Cmp(funds)).To(BeZero())
		})
	})

	Describe("SendSignedCall", func() {
		var recipient common.Address

		BeforeEach(func() {
			recipient = common.HexToAddress("0x00000000000000000000000000000000000000ee")
		})

		It("signs and broadcasts a fee market transaction", func() {
			_, err := keyWallet.RequestAccounts(ctx)
			Expect(err).NotTo(HaveOccurred())

			tx, err := keyWallet.SendSignedCall(ctx, account.Address, recipient, nil, big.NewInt(1000))
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.Type()).To(Equal(uint8(types.DynamicFeeTxType)))
			backend.Commit()

			receipt, err := backend.Client().TransactionReceipt(ctx, tx.Hash())
			Expect(err).NotTo(HaveOccurred())
			Expect(receipt.Status).To(Equal(types.ReceiptStatusSuccessful))

			balance, err := backend.Client().BalanceAt(ctx, recipient, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance.Int64()).To(Equal(int64(1000)))
		})

		It("treats a locked account as a rejection", func() {
			_, err := keyWallet.SendSignedCall(ctx, account.Address, recipient, nil, big.NewInt(1))
			Expect(err).To(MatchError(wallet.ErrUserRejected))
		})
	})

	Describe("SubscribeAccounts", func() {
		It("delivers the full list when an account is added", func() {
			updates := make(chan []common.Address, 4)
			sub := keyWallet.SubscribeAccounts(updates)
			defer sub.Unsubscribe()

			added, err := keys.NewAccount(passphrase)
			Expect(err).NotTo(HaveOccurred())

			Eventually(updates).WithTimeout(15 * time.Second).Should(Receive(ContainElement(added.Address)))
		})
	})
})
