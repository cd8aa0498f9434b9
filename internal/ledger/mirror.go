package ledger

import (
	"context"
	"crowdsync/internal/ethereum"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultConcurrency  = 4
	defaultMaxProposals = 10_000
)

// Mirror keeps the last consistent snapshot of the ledger. Refreshes may
// overlap; each takes a token and only a result newer than both the last
// applied one and the last reset is kept.
type Mirror struct {
	logs        *zap.SugaredLogger
	reader      Reader
	metrics     Metrics
	limiter     ratelimit.Limiter
	concurrency int
	maxCount    uint64

	mu       sync.Mutex
	issued   uint64
	applied  uint64
	floor    uint64
	snapshot Snapshot
}

type Option func(*Mirror)

// WithLimiter throttles single ledger reads.
func WithLimiter(limiter ratelimit.Limiter) Option {
	return func(m *Mirror) {
		m.limiter = limiter
	}
}

func WithConcurrency(n int) Option {
	return func(m *Mirror) {
		if n > 0 {
			m.concurrency = n
		}
	}
}

// WithMaxProposals bounds the proposal count the mirror accepts from the
// ledger. A larger count fails the refresh with ErrTooManyProposals.
func WithMaxProposals(n uint64) Option {
	return func(m *Mirror) {
		if n > 0 {
			m.maxCount = n
		}
	}
}

func NewMirror(logger *zap.SugaredLogger, reader Reader, metrics Metrics, opts ...Option) *Mirror {
	m := &Mirror{
		logs:        logger,
		reader:      reader,
		metrics:     metrics,
		limiter:     ratelimit.NewUnlimited(),
		concurrency: defaultConcurrency,
		maxCount:    defaultMaxProposals,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Refresh reads every proposal. On failure the previous snapshot stays in
// place and is returned with an ErrLedgerUnreachable error. A result that
// lost the race to a newer refresh or a reset is returned as the current
// snapshot with ErrStale.
func (m *Mirror) Refresh(ctx context.Context) (Snapshot, error) {
	started := time.Now()
	token := m.issue()

	proposals, err := m.fetch(ctx)
	if err != nil {
		m.metrics.ObserveRefresh("error", 0, started)
		m.logs.Errorw("ledger refresh failed", "seq", token, "error", err)
		return m.Snapshot(), fmt.Errorf("%w: %w", ErrLedgerUnreachable, err)
	}

	snapshot, ok := m.apply(token, proposals, started)
	if !ok {
		m.metrics.ObserveRefresh("stale", len(proposals), started)
		m.logs.Debugw("discarding stale refresh", "seq", token, "applied", snapshot.Seq)
		return snapshot, ErrStale
	}

	m.metrics.ObserveRefresh("success", len(proposals), started)
	return snapshot, nil
}

func (m *Mirror) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.copySnapshot()
}

// Reset clears the snapshot and invalidates every refresh in flight.
func (m *Mirror) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.floor = m.issued
	m.snapshot = Snapshot{}
}

func (m *Mirror) issue() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.issued++
	return m.issued
}

func (m *Mirror) apply(token uint64, proposals []Proposal, started time.Time) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token <= m.applied || token <= m.floor {
		return m.copySnapshot(), false
	}

	for _, previous := range m.snapshot.Proposals {
		if previous.ID >= uint64(len(proposals)) {
			m.logs.Warnw("proposal disappeared from ledger", "proposal", previous.ID)
			continue
		}
		current := proposals[previous.ID]
		if !previous.Executed && !current.Executed && current.Raised.Cmp(previous.Raised) < 0 {
			m.logs.Warnw("raised amount decreased on ledger",
				"proposal", previous.ID,
				"previous", previous.Raised.String(),
				"current", current.Raised.String(),
			)
		}
	}

	m.applied = token
	m.snapshot = Snapshot{
		Seq:         token,
		Proposals:   proposals,
		RefreshedAt: started,
	}
	return m.copySnapshot(), true
}

func (m *Mirror) copySnapshot() Snapshot {
	snapshot := m.snapshot
	snapshot.Proposals = slices.Clone(m.snapshot.Proposals)
	return snapshot
}

// fetch reads all proposals with bounded concurrency. The first failure
// cancels the remaining reads.
func (m *Mirror) fetch(ctx context.Context) ([]Proposal, error) {
	var count uint64
	err := m.read(ctx, "count", func(ctx context.Context) (err error) {
		count, err = m.reader.ProposalsCount(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("proposal count: %w", err)
	}
	if count > m.maxCount {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyProposals, count, m.maxCount)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	proposals := make([]Proposal, count)
	ids := make(chan uint64)
	errs := make(chan error)

	var wg sync.WaitGroup
	for range min(uint64(m.concurrency), count) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range ids {
				proposal, err := m.fetchProposal(ctx, id)
				if err != nil {
					cancel()
					errs <- fmt.Errorf("proposal %d: %w", id, err)
					continue
				}
				proposals[id] = *proposal
			}
		}()
	}

	go func() {
		defer close(ids)
		for id := uint64(0); id < count; id++ {
			select {
			case ids <- id:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(errs)
	}()

	var aggrErr error
	for err := range errs {
		if aggrErr != nil && errors.Is(err, context.Canceled) {
			continue
		}
		aggrErr = errors.Join(aggrErr, err)
	}
	if aggrErr != nil {
		return nil, aggrErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return proposals, nil
}

func (m *Mirror) fetchProposal(ctx context.Context, id uint64) (*Proposal, error) {
	var record *ethereum.ProposalRecord
	err := m.read(ctx, "proposal", func(ctx context.Context) (err error) {
		record, err = m.reader.Proposal(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	raised, err := m.raised(ctx, record)
	if err != nil {
		return nil, err
	}

	return &Proposal{
		ID:          id,
		Name:        record.Name,
		Description: record.Description,
		FundRequest: orZero(record.FundRequest),
		Raised:      raised,
		Executed:    record.Executed,
		Project:     record.ProjectContract,
	}, nil
}

// raised picks the source of the raised amount from the executed flag.
// Records without a linked project carry their own total.
func (m *Mirror) raised(ctx context.Context, record *ethereum.ProposalRecord) (*big.Int, error) {
	if record.ProjectContract == (common.Address{}) {
		return orZero(record.TotalFundsRaised), nil
	}

	var amount *big.Int
	op, read := "project_balance", m.reader.ProjectBalance
	if record.Executed {
		op, read = "project_final_amount", m.reader.ProjectFinalAmount
	}
	err := m.read(ctx, op, func(ctx context.Context) (err error) {
		amount, err = read(ctx, record.ProjectContract)
		return err
	})
	if err != nil {
		return nil, err
	}
	return orZero(amount), nil
}

func (m *Mirror) read(ctx context.Context, op string, call func(context.Context) error) error {
	m.limiter.Take()
	if err := ctx.Err(); err != nil {
		return err
	}

	started := time.Now()
	err := call(ctx)
	m.metrics.ObserveRead(op, err, started)
	return err
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
