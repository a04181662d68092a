package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultOrderCacheTTL bounds how stale a portal view of the order book can get.
const DefaultOrderCacheTTL = 300 * time.Second

const ordersCacheKey = "orders"

var ErrRepositoryUnavailable = interfaces.ErrRepositoryUnavailable

// CachedOrderRepository serves the order book from a TTL snapshot.
//
// Cache state:
//   - snapshot/fetchedAt: last good read of the store, kept after Invalidate as the
//     stale fallback for a failing store
//   - invalidated: set by Invalidate, cleared by the next successful refresh
//   - generation: bumped by Invalidate; a fetch started under an older generation
//     returns its rows to its callers but never replaces the snapshot
//   - group: coalesces concurrent misses into a single store read
//   - version: optional data-version stamp read alongside the snapshot
type CachedOrderRepository struct {
	store    interfaces.IOrderStore
	versions interfaces.IDataVersionStore
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger

	group singleflight.Group

	mu          sync.RWMutex
	snapshot    []entities.Order
	fetchedAt   time.Time
	hasData     bool
	invalidated bool
	generation  uint64
	version     string
}

// CachedOrderRepositoryOption configures a CachedOrderRepository.
type CachedOrderRepositoryOption func(*CachedOrderRepository)

func WithTTL(ttl time.Duration) CachedOrderRepositoryOption {
	return func(r *CachedOrderRepository) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

func WithLogger(logger *zap.Logger) CachedOrderRepositoryOption {
	return func(r *CachedOrderRepository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithVersionStore enables the cross-process data-version probe.
func WithVersionStore(v interfaces.IDataVersionStore) CachedOrderRepositoryOption {
	return func(r *CachedOrderRepository) {
		r.versions = v
	}
}

func WithClock(now func() time.Time) CachedOrderRepositoryOption {
	return func(r *CachedOrderRepository) {
		if now != nil {
			r.now = now
		}
	}
}

var _ interfaces.IOrderRepository = (*CachedOrderRepository)(nil)

func NewCachedOrderRepository(store interfaces.IOrderStore, opts ...CachedOrderRepositoryOption) *CachedOrderRepository {
	r := &CachedOrderRepository{
		store:  store,
		ttl:    DefaultOrderCacheTTL,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetAllOrders returns the full order book, malformed rows included.
//
// A fresh snapshot is served without touching the store. A stale or missing one
// triggers a single coalesced read; when that read fails the previous snapshot is
// served and only a cold cache surfaces ErrRepositoryUnavailable.
func (r *CachedOrderRepository) GetAllOrders(ctx context.Context) ([]entities.Order, error) {
	if rows, ok := r.fresh(ctx); ok {
		return rows, nil
	}

	v, err, _ := r.group.Do(ordersCacheKey, func() (interface{}, error) {
		return r.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	return cloneOrders(v.([]entities.Order)), nil
}

func (r *CachedOrderRepository) fresh(ctx context.Context) ([]entities.Order, bool) {
	r.mu.RLock()
	usable := r.hasData && !r.invalidated
	fetchedAt, cachedVersion := r.fetchedAt, r.version
	rows := r.snapshot
	r.mu.RUnlock()

	if !usable || r.now().Sub(fetchedAt) >= r.ttl {
		return nil, false
	}
	if r.versions != nil {
		current, err := r.versions.Current(ctx)
		if err != nil {
			r.logger.Warn("data version probe failed; serving cached snapshot",
				zap.String("area", "orders"), zap.Error(err))
		} else if current != cachedVersion {
			r.logger.Debug("data version changed",
				zap.String("cached", cachedVersion), zap.String("current", current))
			return nil, false
		}
	}
	return cloneOrders(rows), true
}

func (r *CachedOrderRepository) refresh(ctx context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	gen := r.generation
	r.mu.RUnlock()

	version := ""
	if r.versions != nil {
		v, err := r.versions.Current(ctx)
		if err != nil {
			r.logger.Warn("data version probe failed", zap.String("area", "orders"), zap.Error(err))
		}
		version = v
	}

	start := r.now()
	rows, err := r.store.ReadAll(ctx)
	if err != nil {
		return r.fallback(fmt.Errorf("%w: %v", ErrRepositoryUnavailable, err))
	}
	r.logger.Debug("order book fetched",
		zap.Int("rows", len(rows)), zap.Duration("took", r.now().Sub(start)))

	r.mu.Lock()
	if r.generation == gen {
		r.snapshot = rows
		r.fetchedAt = r.now()
		r.hasData = true
		r.invalidated = false
		r.version = version
	}
	r.mu.Unlock()
	return rows, nil
}

func (r *CachedOrderRepository) fallback(err error) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.hasData {
		r.logger.Error("order book read failed with no cached snapshot", zap.Error(err))
		return nil, err
	}
	r.logger.Warn("order book read failed; serving stale snapshot",
		zap.Error(err), zap.Time("fetched_at", r.fetchedAt))
	return r.snapshot, nil
}

// WriteOrder upserts unconditionally and invalidates the cache once the write succeeded.
func (r *CachedOrderRepository) WriteOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if err := r.store.Upsert(ctx, o); err != nil {
		return entities.Order{}, fmt.Errorf("%w: %v", ErrRepositoryUnavailable, err)
	}
	r.afterWrite(ctx)
	return o, nil
}

// WriteOrders writes a batch row by row. Rows written before a failure stay written
// and the cache is invalidated for them; the returned slice holds those rows.
func (r *CachedOrderRepository) WriteOrders(ctx context.Context, orders []entities.Order) ([]entities.Order, error) {
	written := make([]entities.Order, 0, len(orders))
	var err error
	for _, o := range orders {
		if o.ID == "" {
			o.ID = uuid.NewString()
		}
		if err = r.store.Upsert(ctx, o); err != nil {
			err = fmt.Errorf("%w: %v", ErrRepositoryUnavailable, err)
			break
		}
		written = append(written, o)
	}
	if len(written) > 0 {
		r.afterWrite(ctx)
	}
	return written, err
}

func (r *CachedOrderRepository) afterWrite(ctx context.Context) {
	if r.versions != nil {
		if _, err := r.versions.Bump(ctx); err != nil {
			r.logger.Warn("data version bump failed; other processes will refresh on TTL",
				zap.Error(err))
		}
	}
	r.Invalidate()
}

// Invalidate forces the next read to go to the store.
func (r *CachedOrderRepository) Invalidate() {
	r.mu.Lock()
	r.generation++
	r.invalidated = true
	r.mu.Unlock()
	r.group.Forget(ordersCacheKey)
}

func cloneOrders(in []entities.Order) []entities.Order {
	if in == nil {
		return []entities.Order{}
	}
	out := make([]entities.Order, len(in))
	copy(out, in)
	return out
}
