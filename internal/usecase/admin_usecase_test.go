package usecase

import (
	"context"
	"errors"
	"testing"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/usecase/interfaces"
	mock_interfaces "production_scheduler/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newAdmin(t *testing.T) (*AdminUseCase, *mock_interfaces.MockIOrderRepository, *observer.ObservedLogs) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	core, logs := observer.New(zapcore.DebugLevel)
	return NewAdminUseCase(repo, nil, zap.New(core)), repo, logs
}

func TestAdminUseCase_ListOrders(t *testing.T) {
	t.Run("full detail for every dated row", func(t *testing.T) {
		uc, repo, _ := newAdmin(t)
		repo.EXPECT().GetAllOrders(gomock.Any()).Return(portalOrders(), nil)

		out, err := uc.ListOrders(context.Background())
		require.NoError(t, err)
		require.Len(t, out.Rows, 3)
		assert.Equal(t, "Other", out.Rows[1].Order.CustomerName)
		assert.Equal(t, entities.StatusCompleted, out.Rows[1].StatusKey)

		require.Len(t, out.Malformed, 1)
		assert.Equal(t, "W4", out.Malformed[0].WorkOrderID)
	})

	t.Run("repository error", func(t *testing.T) {
		uc, repo, _ := newAdmin(t)
		repo.EXPECT().GetAllOrders(gomock.Any()).Return(nil, interfaces.ErrRepositoryUnavailable)

		_, err := uc.ListOrders(context.Background())
		assert.ErrorIs(t, err, interfaces.ErrRepositoryUnavailable)
	})
}

func TestAdminUseCase_SaveOrder(t *testing.T) {
	t.Run("canonicalizes known status and date", func(t *testing.T) {
		uc, repo, _ := newAdmin(t)
		repo.EXPECT().
			WriteOrder(gomock.Any(), entities.Order{
				WorkOrderID:   "W9",
				CustomerName:  "Acme",
				ScheduledDate: "2024-03-05",
				Status:        "In Progress",
				Price:         "10",
			}).
			DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
				o.ID = "generated"
				return o, nil
			})

		saved, err := uc.SaveOrder(context.Background(), entities.Order{
			WorkOrderID:   " W9 ",
			CustomerName:  "Acme ",
			ScheduledDate: "03/05/2024",
			Status:        "wip",
			Price:         " 10 ",
		})
		require.NoError(t, err)
		assert.Equal(t, "generated", saved.ID)
	})

	t.Run("unknown status kept verbatim and logged", func(t *testing.T) {
		uc, repo, logs := newAdmin(t)
		repo.EXPECT().WriteOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })

		saved, err := uc.SaveOrder(context.Background(), entities.Order{
			WorkOrderID: "W9", CustomerName: "Acme", ScheduledDate: "2024-03-05", Status: "Quality Review",
		})
		require.NoError(t, err)
		assert.Equal(t, "Quality Review", saved.Status)
		assert.Equal(t, 1, logs.FilterMessage("unrecognised order status").Len())
	})

	t.Run("validation errors never reach the store", func(t *testing.T) {
		uc, _, _ := newAdmin(t)
		cases := []struct {
			name  string
			order entities.Order
			want  error
		}{
			{"missing wo", entities.Order{CustomerName: "Acme", ScheduledDate: "2024-03-05"}, entities.ErrMissingWorkOrderID},
			{"missing customer", entities.Order{WorkOrderID: "W1", ScheduledDate: "2024-03-05"}, entities.ErrMissingCustomerName},
			{"missing date", entities.Order{WorkOrderID: "W1", CustomerName: "Acme"}, entities.ErrMissingScheduledDate},
			{"malformed date", entities.Order{WorkOrderID: "W1", CustomerName: "Acme", ScheduledDate: "not-a-date"}, entities.ErrMalformedDate},
		}
		for _, tc := range cases {
			_, err := uc.SaveOrder(context.Background(), tc.order)
			assert.ErrorIs(t, err, ErrInvalidOrder, tc.name)
			assert.ErrorIs(t, err, tc.want, tc.name)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		uc, repo, _ := newAdmin(t)
		repo.EXPECT().WriteOrder(gomock.Any(), gomock.Any()).
			Return(entities.Order{}, interfaces.ErrRepositoryUnavailable)

		_, err := uc.SaveOrder(context.Background(), entities.Order{WorkOrderID: "W1", CustomerName: "Acme", ScheduledDate: "2024-03-05"})
		assert.ErrorIs(t, err, interfaces.ErrRepositoryUnavailable)
	})
}

func TestAdminUseCase_SaveOrders(t *testing.T) {
	valid := entities.Order{WorkOrderID: "W1", CustomerName: "Acme", ScheduledDate: "2024-03-05"}

	t.Run("empty batch", func(t *testing.T) {
		uc, _, _ := newAdmin(t)
		_, err := uc.SaveOrders(context.Background(), nil)
		assert.ErrorIs(t, err, ErrEmptyBatch)
	})

	t.Run("one invalid row rejects the batch", func(t *testing.T) {
		uc, _, _ := newAdmin(t)
		_, err := uc.SaveOrders(context.Background(), []entities.Order{valid, {WorkOrderID: "W2"}})

		var be *BatchError
		require.True(t, errors.As(err, &be))
		assert.Equal(t, 1, be.Row)
		assert.ErrorIs(t, err, entities.ErrMissingCustomerName)
	})

	t.Run("partial store failure returns written rows", func(t *testing.T) {
		uc, repo, logs := newAdmin(t)
		repo.EXPECT().WriteOrders(gomock.Any(), gomock.Len(2)).
			Return([]entities.Order{valid}, interfaces.ErrRepositoryUnavailable)

		written, err := uc.SaveOrders(context.Background(), []entities.Order{valid, valid})
		assert.ErrorIs(t, err, interfaces.ErrRepositoryUnavailable)
		assert.Len(t, written, 1)
		assert.Equal(t, 1, logs.FilterMessage("batch write stopped").Len())
	})

	t.Run("success", func(t *testing.T) {
		uc, repo, _ := newAdmin(t)
		repo.EXPECT().WriteOrders(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in []entities.Order) ([]entities.Order, error) { return in, nil })

		written, err := uc.SaveOrders(context.Background(), []entities.Order{valid})
		require.NoError(t, err)
		assert.Len(t, written, 1)
	})
}

func TestAdminUseCase_InvalidateCache(t *testing.T) {
	uc, repo, _ := newAdmin(t)
	repo.EXPECT().Invalidate().Times(1)
	uc.InvalidateCache(context.Background())
}
