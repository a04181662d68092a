package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/domain/status"
	"production_scheduler/internal/domain/visibility"
	"production_scheduler/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidOrder = errors.New("invalid order")
	ErrEmptyBatch   = errors.New("batch contains no orders")
)

// BatchError reports the first row of a batch that failed validation.
type BatchError struct {
	Row int
	Err error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// AdminOrders is the unmasked order book. Malformed holds rows whose
// scheduled_date does not parse; they are kept so an operator can fix them.
type AdminOrders struct {
	Rows      []entities.AdminRow
	Malformed []entities.Order
}

// IAdminUseCase is the operator path. It bypasses visibility masking entirely.
type IAdminUseCase interface {
	ListOrders(ctx context.Context) (AdminOrders, error)
	SaveOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	SaveOrders(ctx context.Context, orders []entities.Order) ([]entities.Order, error)
	InvalidateCache(ctx context.Context)
}

type AdminUseCase struct {
	repo       interfaces.IOrderRepository
	normalizer *status.Normalizer
	logger     *zap.Logger
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(repo interfaces.IOrderRepository, normalizer *status.Normalizer, logger *zap.Logger) *AdminUseCase {
	if normalizer == nil {
		normalizer = status.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminUseCase{repo: repo, normalizer: normalizer, logger: logger}
}

func (u *AdminUseCase) ListOrders(ctx context.Context) (AdminOrders, error) {
	orders, err := u.repo.GetAllOrders(ctx)
	if err != nil {
		return AdminOrders{}, err
	}
	out := AdminOrders{
		Rows:      visibility.DeriveAdminViewWith(u.normalizer, orders),
		Malformed: []entities.Order{},
	}
	for _, o := range orders {
		if _, err := o.ParseScheduledDate(); err != nil {
			out.Malformed = append(out.Malformed, o)
		}
	}
	return out, nil
}

// SaveOrder validates, canonicalizes the status and writes unconditionally.
func (u *AdminUseCase) SaveOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	prepared, err := u.prepare(o)
	if err != nil {
		return entities.Order{}, err
	}
	saved, err := u.repo.WriteOrder(ctx, prepared)
	if err != nil {
		return entities.Order{}, err
	}
	u.logger.Info("order saved",
		zap.String("id", saved.ID), zap.String("work_order_id", saved.WorkOrderID))
	return saved, nil
}

// SaveOrders validates the whole batch before writing any row. A store failure
// part-way leaves earlier rows written; they are returned alongside the error.
func (u *AdminUseCase) SaveOrders(ctx context.Context, orders []entities.Order) ([]entities.Order, error) {
	if len(orders) == 0 {
		return nil, ErrEmptyBatch
	}
	prepared := make([]entities.Order, len(orders))
	for i, o := range orders {
		p, err := u.prepare(o)
		if err != nil {
			return nil, &BatchError{Row: i, Err: err}
		}
		prepared[i] = p
	}

	written, err := u.repo.WriteOrders(ctx, prepared)
	if err != nil {
		u.logger.Error("batch write stopped",
			zap.Int("written", len(written)), zap.Int("total", len(prepared)), zap.Error(err))
		return written, err
	}
	u.logger.Info("order batch saved", zap.Int("rows", len(written)))
	return written, nil
}

func (u *AdminUseCase) InvalidateCache(ctx context.Context) {
	u.repo.Invalidate()
	u.logger.Info("order cache invalidated")
}

// prepare trims every field, checks required fields and stores known statuses
// under their canonical label. Unknown statuses are kept verbatim.
func (u *AdminUseCase) prepare(o entities.Order) (entities.Order, error) {
	o = entities.Order{
		ID:               strings.TrimSpace(o.ID),
		WorkOrderID:      strings.TrimSpace(o.WorkOrderID),
		Quote:            strings.TrimSpace(o.Quote),
		PONumber:         strings.TrimSpace(o.PONumber),
		Status:           strings.TrimSpace(o.Status),
		CustomerName:     strings.TrimSpace(o.CustomerName),
		ModelDescription: strings.TrimSpace(o.ModelDescription),
		Price:            strings.TrimSpace(o.Price),
		ScheduledDate:    strings.TrimSpace(o.ScheduledDate),
		UploadedName:     strings.TrimSpace(o.UploadedName),
	}
	if err := entities.ValidateOrder(o); err != nil {
		return entities.Order{}, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}

	date, err := o.ParseScheduledDate()
	if err != nil {
		return entities.Order{}, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	o.ScheduledDate = date.Format(entities.DateLayout)

	if o.Status != "" {
		c := u.normalizer.Normalize(o.Status)
		if c.Known() {
			o.Status = status.Label(c.Key)
		} else {
			u.logger.Warn("unrecognised order status",
				zap.String("work_order_id", o.WorkOrderID), zap.String("status", o.Status))
		}
	}
	return o, nil
}
