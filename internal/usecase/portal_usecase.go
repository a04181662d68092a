package usecase

import (
	"context"
	"errors"
	"time"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/domain/status"
	"production_scheduler/internal/domain/visibility"
	"production_scheduler/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrNoPermittedCustomers = errors.New("session grants no customers")
	ErrInvalidPrintMonth    = errors.New("invalid print month")
)

// PortalSummary is the owned-order headline shown above the customer calendar.
type PortalSummary struct {
	Customers  []string
	OrderCount int
	TotalValue decimal.Decimal
	// Unpriced counts owned orders whose price is not numeric.
	Unpriced int
}

// IPortalUseCase serves the customer portal. Every operation derives from the
// same masked event feed, so export and print cannot see more than the calendar.
type IPortalUseCase interface {
	Calendar(ctx context.Context, customers []string) ([]entities.CalendarEvent, error)
	Orders(ctx context.Context, customers []string, filter visibility.OrderFilter) ([]entities.CalendarEvent, error)
	Summary(ctx context.Context, customers []string) (PortalSummary, error)
	Export(ctx context.Context, customers []string) ([]byte, error)
	Print(ctx context.Context, customers []string, year int, month time.Month) ([]byte, error)
}

type PortalUseCase struct {
	repo       interfaces.IOrderRepository
	renderer   interfaces.IReportRenderer
	normalizer *status.Normalizer
	now        func() time.Time
	logger     *zap.Logger
}

var _ IPortalUseCase = (*PortalUseCase)(nil)

func NewPortalUseCase(repo interfaces.IOrderRepository, renderer interfaces.IReportRenderer, normalizer *status.Normalizer, logger *zap.Logger) *PortalUseCase {
	if normalizer == nil {
		normalizer = status.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PortalUseCase{repo: repo, renderer: renderer, normalizer: normalizer, now: time.Now, logger: logger}
}

func (u *PortalUseCase) Calendar(ctx context.Context, customers []string) ([]entities.CalendarEvent, error) {
	return u.events(ctx, customers)
}

func (u *PortalUseCase) Orders(ctx context.Context, customers []string, filter visibility.OrderFilter) ([]entities.CalendarEvent, error) {
	events, err := u.events(ctx, customers)
	if err != nil {
		return nil, err
	}
	return visibility.FilterOwned(events, filter), nil
}

func (u *PortalUseCase) Summary(ctx context.Context, customers []string) (PortalSummary, error) {
	events, err := u.events(ctx, customers)
	if err != nil {
		return PortalSummary{}, err
	}
	sum := PortalSummary{
		Customers:  visibility.NewPermittedCustomers(customers...).Names(),
		TotalValue: decimal.Zero,
	}
	for _, ev := range events {
		if ev.DetailLevel != entities.DetailOwned || ev.Owned == nil {
			continue
		}
		sum.OrderCount++
		if v, ok := visibility.ParsePrice(ev.Owned.Price); ok {
			sum.TotalValue = sum.TotalValue.Add(v)
		} else {
			sum.Unpriced++
		}
	}
	return sum, nil
}

func (u *PortalUseCase) Export(ctx context.Context, customers []string) ([]byte, error) {
	events, err := u.events(ctx, customers)
	if err != nil {
		return nil, err
	}
	return u.renderer.Spreadsheet(events, u.now())
}

func (u *PortalUseCase) Print(ctx context.Context, customers []string, year int, month time.Month) ([]byte, error) {
	if month < time.January || month > time.December || year < 1 {
		return nil, ErrInvalidPrintMonth
	}
	events, err := u.events(ctx, customers)
	if err != nil {
		return nil, err
	}
	return u.renderer.PrintHTML(events, year, month, visibility.NewPermittedCustomers(customers...).Names(), u.now())
}

func (u *PortalUseCase) events(ctx context.Context, customers []string) ([]entities.CalendarEvent, error) {
	permitted := visibility.NewPermittedCustomers(customers...)
	if len(permitted) == 0 {
		return nil, ErrNoPermittedCustomers
	}

	orders, err := u.repo.GetAllOrders(ctx)
	if err != nil {
		u.logger.Error("order book unavailable", zap.Error(err))
		return nil, err
	}

	events := visibility.DeriveEventsWith(u.normalizer, orders, permitted)
	u.reportUnknownStatuses(events)
	return events, nil
}

// reportUnknownStatuses logs owned rows whose non-empty status matched no rule.
func (u *PortalUseCase) reportUnknownStatuses(events []entities.CalendarEvent) {
	for _, ev := range events {
		if ev.Owned == nil || ev.Owned.StatusKey != entities.StatusUnknown || ev.Owned.Status == "" {
			continue
		}
		u.logger.Warn("unrecognised order status",
			zap.String("work_order_id", ev.Owned.WorkOrderID),
			zap.String("status", ev.Owned.Status))
	}
}
