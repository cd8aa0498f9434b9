package ledger_test

import (
	"context"
	"crowdsync/internal/ethereum"
	"crowdsync/internal/ledger"
	"crowdsync/internal/ledger/fake"
	"crowdsync/internal/metrics"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

var _ = Describe("Mirror", func() {
	var (
		mirror     *ledger.Mirror
		fakeReader *fake.Reader
		ctx        context.Context
		records    []ethereum.ProposalRecord
		balances   map[common.Address]int64
		finals     map[common.Address]int64
		mu         sync.Mutex
		opts       []ledger.Option
	)

	projectA := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	projectB := common.HexToAddress("0x00000000000000000000000000000000000000b2")

	BeforeEach(func() {
		ctx = context.Background()
		opts = nil
		records = []ethereum.ProposalRecord{
			{Name: "Library", Description: "Books", FundRequest: big.NewInt(100), TotalFundsRaised: big.NewInt(1), ProjectContract: projectA},
			{Name: "Garden", Description: "Seeds", FundRequest: big.NewInt(50), TotalFundsRaised: big.NewInt(2), Executed: true, ProjectContract: projectB},
			{Name: "Bridge", Description: "Steel", FundRequest: big.NewInt(70), TotalFundsRaised: big.NewInt(30)},
		}
		balances = map[common.Address]int64{projectA: 40, projectB: 5}
		finals = map[common.Address]int64{projectA: 1, projectB: 60}

		fakeReader = new(fake.Reader)
		fakeReader.ProposalsCountStub = func(context.Context) (uint64, error) {
			mu.Lock()
			defer mu.Unlock()
			return uint64(len(records)), nil
		}
		fakeReader.ProposalStub = func(_ context.Context, id uint64) (*ethereum.ProposalRecord, error) {
			mu.Lock()
			defer mu.Unlock()
			record := records[id]
			return &record, nil
		}
		fakeReader.ProjectBalanceStub = func(_ context.Context, project common.Address) (*big.Int, error) {
			mu.Lock()
			defer mu.Unlock()
			return big.NewInt(balances[project]), nil
		}
		fakeReader.ProjectFinalAmountStub = func(_ context.Context, project common.Address) (*big.Int, error) {
			mu.Lock()
			defer mu.Unlock()
			return big.NewInt(finals[project]), nil
		}
	})

	JustBeforeEach(func() {
		mirror = ledger.NewMirror(zap.NewNop().Sugar(), fakeReader, metrics.NewLedgerMirror(), opts...)
	})

	Describe("Refresh", func() {
		It("returns proposals with contiguous ids from zero", func() {
			snapshot, err := mirror.Refresh(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.Proposals).To(HaveLen(3))
			for i, proposal := range snapshot.Proposals {
				Expect(proposal.ID).To(Equal(uint64(i)))
				Expect(proposal.Name).To(Equal(records[i].Name))
			}
		})

		It("selects the raised amount by the executed flag", func() {
			snapshot, err := mirror.Refresh(ctx)
			Expect(err).NotTo(HaveOccurred())

			Expect(snapshot.Proposals[0].Raised.Int64()).To(Equal(int64(40)))
			Expect(snapshot.Proposals[1].Raised.Int64()).To(Equal(int64(60)))
			Expect(snapshot.Proposals[2].Raised.Int64()).To(Equal(int64(30)))

			Expect(fakeReader.ProjectBalanceCallCount()).To(Equal(1))
			Expect(fakeReader.ProjectFinalAmountCallCount()).To(Equal(1))
		})

		It("derives funded and linked flags", func() {
			snapshot, err := mirror.Refresh(ctx)
			Expect(err).NotTo(HaveOccurred())

			Expect(snapshot.Proposals[0].Funded()).To(BeFalse())
			Expect(snapshot.Proposals[1].Funded()).To(BeTrue())
			Expect(snapshot.Proposals[0].ProjectLinked()).To(BeTrue())
			Expect(snapshot.Proposals[2].ProjectLinked()).To(BeFalse())
		})

		It("is idempotent without ledger changes", func() {
			first, err := mirror.Refresh(ctx)
			Expect(err).NotTo(HaveOccurred())
			second, err := mirror.Refresh(ctx)
			Expect(err).NotTo(HaveOccurred())

			Expect(second.Proposals).To(Equal(first.Proposals))
			Expect(second.Seq).To(BeNumerically(">", first.Seq))
		})

		It("never reports a lower raised amount for an active proposal after contributions", func() {
			first, err := mirror.Refresh(ctx)
			Expect(err).NotTo(HaveOccurred())

			mu.Lock()
			balances[projectA] = 45
			mu.Unlock()

			second, err := mirror.Refresh(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Proposals[0].Raised.Cmp(first.Proposals[0].Raised)).To(BeNumerically(">=", 0))
			Expect(second.Proposals[0].Raised.Int64()).To(Equal(int64(45)))
		})

		When("a single read fails", func() {
			It("discards the whole batch and keeps the previous snapshot", func() {
				previous, err := mirror.Refresh(ctx)
				Expect(err).NotTo(HaveOccurred())

				fakeReader.ProjectFinalAmountStub = func(context.Context, common.Address) (*big.Int, error) {
					return nil, errors.New("timeout")
				}

				snapshot, err := mirror.Refresh(ctx)
				Expect(err).To(MatchError(ledger.ErrLedgerUnreachable))
				Expect(err).To(MatchError(ContainSubstring("timeout")))
				Expect(snapshot).To(Equal(previous))
				Expect(mirror.Snapshot()).To(Equal(previous))
			})
		})

		When("the count read fails", func() {
			BeforeEach(func() {
				fakeReader.ProposalsCountStub = nil
				fakeReader.ProposalsCountReturns(0, errors.New("dial tcp: refused"))
			})

			It("is unreachable", func() {
				snapshot, err := mirror.Refresh(ctx)
				Expect(err).To(MatchError(ledger.ErrLedgerUnreachable))
				Expect(snapshot.Proposals).To(BeEmpty())
				Expect(fakeReader.ProposalCallCount()).To(BeZero())
			})
		})

		When("the ledger reports an implausible count", func() {
			BeforeEach(func() {
				fakeReader.ProposalsCountStub = nil
				fakeReader.ProposalsCountReturns(1<<62, nil)
			})

			It("is unreachable without reading any proposal", func() {
				snapshot, err := mirror.Refresh(ctx)
				Expect(err).To(MatchError(ledger.ErrLedgerUnreachable))
				Expect(err).To(MatchError(ledger.ErrTooManyProposals))
				Expect(snapshot.Proposals).To(BeEmpty())
				Expect(fakeReader.ProposalCallCount()).To(BeZero())
			})
		})

		When("the count exceeds a configured limit", func() {
			BeforeEach(func() {
				opts = []ledger.Option{ledger.WithMaxProposals(2)}
			})

			It("fails the refresh", func() {
				_, err := mirror.Refresh(ctx)
				Expect(err).To(MatchError(ledger.ErrTooManyProposals))
			})
		})

		When("the ledger has no proposals", func() {
			BeforeEach(func() {
				records = nil
			})

			It("applies an empty snapshot", func() {
				snapshot, err := mirror.Refresh(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(snapshot.Proposals).To(BeEmpty())
				Expect(snapshot.Seq).To(Equal(uint64(1)))
			})
		})

		When("concurrency is bounded", func() {
			var inFlight, peak atomic.Int32

			BeforeEach(func() {
				inFlight.Store(0)
				peak.Store(0)
				records = make([]ethereum.ProposalRecord, 12)
				for i := range records {
					records[i] = ethereum.ProposalRecord{FundRequest: big.NewInt(1), TotalFundsRaised: big.NewInt(1)}
				}
				opts = []ledger.Option{ledger.WithConcurrency(2), ledger.WithLimiter(ratelimit.New(10_000))}

				fakeReader.ProposalStub = func(_ context.Context, id uint64) (*ethereum.ProposalRecord, error) {
					n := inFlight.Add(1)
					defer inFlight.Add(-1)
					for {
						p := peak.Load()
						if n <= p || peak.CompareAndSwap(p, n) {
							break
						}
					}
					mu.Lock()
					defer mu.Unlock()
					record := records[id]
					return &record, nil
				}
			})

			It("never runs more reads than allowed", func() {
				snapshot, err := mirror.Refresh(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(snapshot.Proposals).To(HaveLen(12))
				Expect(peak.Load()).To(BeNumerically("<=", 2))
			})
		})
	})

	Describe("overlapping refreshes", func() {
		var (
			release chan struct{}
			blocked chan struct{}
			calls   atomic.Int32
		)

		BeforeEach(func() {
			calls.Store(0)
			release = make(chan struct{})
			blocked = make(chan struct{})
			fakeReader.ProposalsCountStub = func(context.Context) (uint64, error) {
				if calls.Add(1) == 1 {
					close(blocked)
					<-release
					return 1, nil
				}
				mu.Lock()
				defer mu.Unlock()
				return uint64(len(records)), nil
			}
		})

		It("keeps the newest result when an older one finishes last", func() {
			type result struct {
				snapshot ledger.Snapshot
				err      error
			}
			slow := make(chan result, 1)
			go func() {
				defer GinkgoRecover()
				snapshot, err := mirror.Refresh(ctx)
				slow <- result{snapshot, err}
			}()
			Eventually(blocked).Should(BeClosed())

			fresh, err := mirror.Refresh(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(fresh.Proposals).To(HaveLen(3))

			close(release)
			var late result
			Eventually(slow).Should(Receive(&late))
			Expect(late.err).To(MatchError(ledger.ErrStale))
			Expect(late.snapshot.Seq).To(Equal(fresh.Seq))
			Expect(mirror.Snapshot().Proposals).To(HaveLen(3))
		})

		It("drops results started before a reset", func() {
			slow := make(chan error, 1)
			go func() {
				defer GinkgoRecover()
				_, err := mirror.Refresh(ctx)
				slow <- err
			}()
			Eventually(blocked).Should(BeClosed())

			mirror.Reset()
			close(release)

			var err error
			Eventually(slow).Should(Receive(&err))
			Expect(err).To(MatchError(ledger.ErrStale))
			Expect(mirror.Snapshot().Proposals).To(BeEmpty())
		})
	})

	Describe("Reset", func() {
		It("clears the snapshot", func() {
			_, err := mirror.Refresh(ctx)
			Expect(err).NotTo(HaveOccurred())

			mirror.Reset()
			Expect(mirror.Snapshot().Proposals).To(BeEmpty())

			snapshot, err := mirror.Refresh(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.Proposals).To(HaveLen(3))
		})
	})
})
