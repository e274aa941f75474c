package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/de-tools/training-atlas/pkg/models/domain"
	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"
)

// ErrRefreshInFlight signals that a reload was already running when a
// new trigger arrived. The trigger is a no-op; the pending reload's
// result will land.
var ErrRefreshInFlight = errors.New("refresh already in flight")

// Feed fetches the three sheets of the upstream source. This is the
// only boundary allowed to return errors.
type Feed interface {
	FetchRecords(ctx context.Context) ([]domain.TrainingRecord, error)
	FetchHolidays(ctx context.Context) ([]domain.HolidayRecord, error)
	FetchNovelties(ctx context.Context) ([]domain.NoveltyRecord, error)
}

// Status describes the last reload attempt for the status endpoint.
type Status struct {
	FetchedAt   time.Time
	Records     int
	Holidays    int
	Novelties   int
	EmptyFeed   bool
	LastError   string
	LastAttempt time.Time
}

// Refresher reloads the snapshot store from the feed, keeping at most
// one reload in flight and discarding stale completions by sequence.
type Refresher struct {
	feed  Feed
	store *Store
	now   func() time.Time

	seq  atomic.Uint64
	busy atomic.Bool

	mu          sync.Mutex
	lastErr     string
	lastAttempt time.Time
}

func NewRefresher(feed Feed, store *Store) *Refresher {
	return &Refresher{
		feed:  feed,
		store: store,
		now:   time.Now,
	}
}

// Refresh performs one reload. A concurrent call while one is running
// returns ErrRefreshInFlight without touching the feed. A fetch error
// leaves the previous snapshot visible; retry happens on the next
// scheduled tick, never immediately.
func (r *Refresher) Refresh(ctx context.Context) error {
	if !r.busy.CompareAndSwap(false, true) {
		return ErrRefreshInFlight
	}
	defer r.busy.Store(false)

	seq := r.seq.Add(1)
	logger := zerolog.Ctx(ctx)

	r.mu.Lock()
	r.lastAttempt = r.now()
	r.mu.Unlock()

	snap, err := r.fetch(ctx, seq)
	if err != nil {
		logger.Error().Err(err).Uint64("seq", seq).Msg("feed reload failed, keeping previous snapshot")
		r.setLastError(err.Error())
		return err
	}

	if !r.store.Replace(snap) {
		logger.Warn().Uint64("seq", seq).Msg("stale reload discarded")
		return nil
	}

	r.setLastError("")
	logger.Info().
		Uint64("seq", seq).
		Int("records", len(snap.Records)).
		Int("holidays", len(snap.Holidays)).
		Int("novelties", len(snap.Novelties)).
		Msg("snapshot replaced")
	return nil
}

func (r *Refresher) fetch(ctx context.Context, seq uint64) (Snapshot, error) {
	records, err := r.feed.FetchRecords(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to fetch training records: %w", err)
	}
	holidays, err := r.feed.FetchHolidays(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to fetch holidays: %w", err)
	}
	novelties, err := r.feed.FetchNovelties(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to fetch novelties: %w", err)
	}

	return Snapshot{
		Records:   records,
		Holidays:  holidays,
		Novelties: novelties,
		FetchedAt: r.now(),
		Seq:       seq,
	}, nil
}

func (r *Refresher) setLastError(msg string) {
	r.mu.Lock()
	r.lastErr = msg
	r.mu.Unlock()
}

// Status reports the current snapshot plus the outcome of the last
// reload attempt.
func (r *Refresher) Status() Status {
	snap := r.store.Current()

	r.mu.Lock()
	lastErr, lastAttempt := r.lastErr, r.lastAttempt
	r.mu.Unlock()

	return Status{
		FetchedAt:   snap.FetchedAt,
		Records:     len(snap.Records),
		Holidays:    len(snap.Holidays),
		Novelties:   len(snap.Novelties),
		EmptyFeed:   snap.Seq > 0 && snap.Empty(),
		LastError:   lastErr,
		LastAttempt: lastAttempt,
	}
}

// Run refreshes once immediately, then on a fixed interval until ctx
// is done. The scheduler runs jobs in singleton mode, so a slow fetch
// never stacks behind the next tick.
func (r *Refresher) Run(ctx context.Context, interval time.Duration) error {
	logger := zerolog.Ctx(ctx)

	if err := r.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshInFlight) {
		logger.Error().Err(err).Msg("initial reload failed")
	}

	scheduler := gocron.NewScheduler(time.UTC)
	_, err := scheduler.Every(interval).SingletonMode().Do(func() {
		if err := r.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshInFlight) {
			logger.Error().Err(err).Msg("scheduled reload failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reload: %w", err)
	}

	scheduler.StartAsync()
	<-ctx.Done()
	scheduler.Stop()
	logger.Info().Msg("refresh scheduler stopped")
	return nil
}
