package usecase

import (
	"context"

	"tailorlink/internal/domain/entity"
	"tailorlink/internal/domain/repository"
	"tailorlink/pkg/errors"
)

type OrderUseCase struct {
	orderRepo  repository.OrderRepository
	tailorRepo repository.TailorRepository
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	tailorRepo repository.TailorRepository,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:  orderRepo,
		tailorRepo: tailorRepo,
	}
}

type CreateOrderInput struct {
	TailorID      string
	GarmentType   string
	Description   string
	Amount        float64
	MeasurementID string
	Images        []string
	DueDate       string
}

func (uc *OrderUseCase) CreateOrder(ctx context.Context, customerID string, input CreateOrderInput) (*entity.Order, error) {
	if _, err := uc.tailorRepo.GetByID(ctx, input.TailorID); err != nil {
		return nil, err
	}

	order := &entity.Order{
		CustomerID:    customerID,
		TailorID:      input.TailorID,
		GarmentType:   input.GarmentType,
		Description:   input.Description,
		Amount:        input.Amount,
		MeasurementID: input.MeasurementID,
		Images:        input.Images,
		DueDate:       input.DueDate,
		Status:        entity.OrderStatusPending,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, callerUID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.CustomerID != callerUID && !uc.isAssignedTailor(ctx, order, callerUID) {
		return nil, errors.Forbidden("You don't have access to this order", nil)
	}

	return order, nil
}

func (uc *OrderUseCase) ListCustomerOrders(ctx context.Context, customerID string, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.ListByCustomerID(ctx, customerID, limit, offset)
}

func (uc *OrderUseCase) ListTailorOrders(ctx context.Context, callerUID string, limit, offset int) ([]*entity.Order, int64, error) {
	tailor, err := uc.tailorRepo.GetByUserID(ctx, callerUID)
	if err != nil {
		return nil, 0, err
	}
	return uc.orderRepo.ListByTailorID(ctx, tailor.ID, limit, offset)
}

// UpdateStatus moves an order through its lifecycle. Only the assigned tailor
// may advance status; only the ordering customer may cancel; a completed
// order cannot be cancelled.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, callerUID, orderID, nextStatus string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if nextStatus == entity.OrderStatusCancelled {
		if order.CustomerID != callerUID {
			return nil, errors.Forbidden("Only the customer may cancel this order", nil)
		}
		if !order.CanCancel() {
			return nil, errors.BadRequest("A completed order cannot be cancelled", nil)
		}
	} else {
		if !uc.isAssignedTailor(ctx, order, callerUID) {
			return nil, errors.Forbidden("Only the assigned tailor may update this order", nil)
		}
		if !order.CanAdvance(nextStatus) {
			return nil, errors.BadRequest("Invalid status transition", nil)
		}
	}

	order.Status = nextStatus

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (uc *OrderUseCase) isAssignedTailor(ctx context.Context, order *entity.Order, callerUID string) bool {
	tailor, err := uc.tailorRepo.GetByID(ctx, order.TailorID)
	if err != nil {
		return false
	}
	return tailor.UserID == callerUID
}
