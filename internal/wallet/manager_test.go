package wallet_test

import (
	"context"
	"crowdsync/internal/wallet"
	"crowdsync/internal/wallet/fake"
	"crowdsync/pkg/ether"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Manager", func() {
	var (
		manager    *wallet.Manager
		fakeWallet *fake.Capability
		ctx        context.Context
		accountA   common.Address
		accountB   common.Address
		twoEther   *big.Int
		sink       chan<- []common.Address
		unsubbed   chan struct{}
	)

	BeforeEach(func() {
		ctx = context.Background()
		accountA = common.HexToAddress("0x000000000000000000000000000000000000000A")
		accountB = common.HexToAddress("0x000000000000000000000000000000000000000B")
		var err error
		twoEther, err = ether.ParseEther("2.0")
		Expect(err).NotTo(HaveOccurred())

		unsubbed = make(chan struct{})
		fakeWallet = new(fake.Capability)
		fakeWallet.RequestAccountsReturns([]common.Address{accountA}, nil)
		fakeWallet.BalanceReturns(twoEther, nil)
		fakeWallet.SubscribeAccountsStub = func(ch chan<- []common.Address) event.Subscription {
			sink = ch
			return event.NewSubscription(func(quit <-chan struct{}) error {
				<-quit
				close(unsubbed)
				return nil
			})
		}

		manager = wallet.NewManager(zap.NewNop().Sugar(), fakeWallet)
	})

	Describe("Connect", func() {
		It("connects the primary account with its balance", func() {
			view, err := manager.Connect(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(view.State).To(Equal(wallet.Connected))
			Expect(view.Account).To(Equal(accountA))
			Expect(view.BalanceKnown).To(BeTrue())
			Expect(ether.FormatEther(view.Balance)).To(Equal("2"))

			_, account := fakeWallet.BalanceArgsForCall(0)
			Expect(account).To(Equal(accountA))
		})

		It("bumps the epoch on every connect", func() {
			first, err := manager.Connect(ctx)
			Expect(err).NotTo(HaveOccurred())
			second, err := manager.Connect(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Epoch).To(BeNumerically(">", first.Epoch))
		})

		When("no wallet is installed", func() {
			BeforeEach(func() {
				manager = wallet.NewManager(zap.NewNop().Sugar(), nil)
			})

			It("fails with ErrNoWalletInstalled", func() {
				Expect(manager.Installed()).To(BeFalse())
				_, err := manager.Connect(ctx)
				Expect(err).To(MatchError(wallet.ErrNoWalletInstalled))
				Expect(manager.View().State).To(Equal(wallet.Disconnected))
			})
		})

		When("the user declines", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns(nil, wallet.ErrUserRejected)
			})

			It("stays disconnected", func() {
				view, err := manager.Connect(ctx)
				Expect(err).To(MatchError(wallet.ErrUserRejected))
				Expect(view.State).To(Equal(wallet.Disconnected))
				Expect(view.Account).To(Equal(common.Address{}))
			})
		})

		When("the wallet offers no accounts", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns(nil, nil)
			})

			It("treats it as a rejection", func() {
				_, err := manager.Connect(ctx)
				Expect(err).To(MatchError(wallet.ErrUserRejected))
			})
		})

		When("the balance read fails", func() {
			BeforeEach(func() {
				fakeWallet.BalanceReturns(nil, errors.New("node down"))
			})

			It("keeps the connection", func() {
				view, err := manager.Connect(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(view.State).To(Equal(wallet.Connected))
				Expect(view.BalanceKnown).To(BeFalse())
			})

			It("reports the read as unavailable on refresh", func() {
				_, err := manager.Connect(ctx)
				Expect(err).NotTo(HaveOccurred())

				view, err := manager.RefreshBalance(ctx)
				Expect(err).To(MatchError(wallet.ErrBalanceUnavailable))
				Expect(view.State).To(Equal(wallet.Connected))
			})
		})
	})

	Describe("Disconnect", func() {
		It("clears the account and balance", func() {
			_, err := manager.Connect(ctx)
			Expect(err).NotTo(HaveOccurred())

			manager.Disconnect()
			view := manager.View()
			Expect(view.State).To(Equal(wallet.Disconnected))
			Expect(view.Account).To(Equal(common.Address{}))
			Expect(view.Balance.Sign()).To(BeZero())

			_, err = manager.RefreshBalance(ctx)
			Expect(err).To(MatchError(wallet.ErrNotConnected))
		})
	})

	Describe("account changes", func() {
		var (
			mu    sync.Mutex
			views []wallet.View
		)

		BeforeEach(func() {
			views = nil
			manager.OnAccountsChanged(func(v wallet.View) {
				mu.Lock()
				defer mu.Unlock()
				views = append(views, v)
			})

			_, err := manager.Connect(ctx)
			Expect(err).NotTo(HaveOccurred())
			manager.Start(ctx)
		})

		AfterEach(func() {
			manager.Close()
			Eventually(unsubbed).Should(BeClosed())
		})

		lastView := func() wallet.View {
			mu.Lock()
			defer mu.Unlock()
			return views[len(views)-1]
		}

		It("subscribes once", func() {
			manager.Start(ctx)
			Expect(fakeWallet.SubscribeAccountsCallCount()).To(Equal(1))
		})

		When("the wallet reports no accounts", func() {
			It("disconnects and tells the handlers", func() {
				sink <- []common.Address{}

				Eventually(func() wallet.State { return manager.View().State }).Should(Equal(wallet.Disconnected))
				Eventually(func() wallet.State { return lastView().State }).Should(Equal(wallet.Disconnected))
				Expect(manager.View().Account).To(Equal(common.Address{}))
				Expect(manager.View().Balance.Sign()).To(BeZero())
			})

			It("discards a balance read issued for the old account", func() {
				release := make(chan struct{})
				started := make(chan struct{})
				fakeWallet.BalanceStub = func(context.Context, common.Address) (*big.Int, error) {
					close(started)
					<-release
					return big.NewInt(99), nil
				}

				done := make(chan struct{})
				go func() {
					defer GinkgoRecover()
					defer close(done)
					_, _ = manager.RefreshBalance(ctx)
				}()
				Eventually(started).Should(BeClosed())

				sink <- []common.Address{}
				Eventually(func() wallet.State { return manager.View().State }).Should(Equal(wallet.Disconnected))

				close(release)
				Eventually(done).Should(BeClosed())
				Expect(manager.View().Balance.Sign()).To(BeZero())
				Expect(manager.View().State).To(Equal(wallet.Disconnected))
			})
		})

		When("the wallet offers an account again after dropping them all", func() {
			It("reconnects with the announced account", func() {
				sink <- []common.Address{}
				Eventually(func() wallet.State { return manager.View().State }).Should(Equal(wallet.Disconnected))

				fakeWallet.RequestAccountsReturns([]common.Address{accountB}, nil)
				sink <- []common.Address{accountB}

				Eventually(func() wallet.State { return manager.View().State }).Should(Equal(wallet.Connected))
				Expect(manager.View().Account).To(Equal(accountB))
				Expect(fakeWallet.RequestAccountsCallCount()).To(Equal(2))
			})
		})

		When("the user disconnected explicitly", func() {
			It("stays disconnected when the wallet announces accounts", func() {
				manager.Disconnect()
				sink <- []common.Address{}
				sink <- []common.Address{accountB}

				Consistently(fakeWallet.RequestAccountsCallCount).Should(Equal(1))
				Expect(manager.View().State).To(Equal(wallet.Disconnected))
			})
		})

		When("the primary account changes", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns([]common.Address{accountA, accountB}, nil)
			})

			It("reconnects with the new primary", func() {
				sink <- []common.Address{accountB, accountA}

				Eventually(func() common.Address { return manager.View().Account }).Should(Equal(accountB))
				Expect(manager.View().State).To(Equal(wallet.Connected))
				Expect(fakeWallet.RequestAccountsCallCount()).To(Equal(2))
			})
		})

		When("the primary account stays the same", func() {
			It("only refreshes the balance", func() {
				sink <- []common.Address{accountA}

				Eventually(fakeWallet.BalanceCallCount).Should(Equal(2))
				Expect(fakeWallet.RequestAccountsCallCount()).To(Equal(1))
			})
		})
	})

	When("the session is disconnected", func() {
		BeforeEach(func() {
			manager.Start(ctx)
		})

		AfterEach(func() {
			manager.Close()
		})

		It("ignores account announcements", func() {
			sink <- []common.Address{accountA}

			Consistently(fakeWallet.RequestAccountsCallCount).Should(BeZero())
			Expect(manager.View().State).To(Equal(wallet.Disconnected))
		})
	})
})
