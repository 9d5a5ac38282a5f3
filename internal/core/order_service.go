package core

import (
	"context"
	"errors"
	"fmt"
	"log"

	"handmade-backend/internal/db"
	"handmade-backend/internal/models"
)

// PaymentCashOnDelivery is the single supported payment method.
const PaymentCashOnDelivery = "Cash on Delivery"

// orderService implements OrderService.
type orderService struct {
	orderRepo      db.OrderRepository
	membershipRepo db.MembershipRepository
	auditService   AuditService
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(orderRepo db.OrderRepository, membershipRepo db.MembershipRepository, auditService AuditService) OrderService {
	return &orderService{
		orderRepo:      orderRepo,
		membershipRepo: membershipRepo,
		auditService:   auditService,
	}
}

// Checkout snapshots the user's cart server-side, writes exactly one pending
// order and then empties the cart subcollection. The cart is re-read here
// rather than trusted from the client, so the order total always matches
// what the store has on record.
func (s *orderService) Checkout(ctx context.Context, userID string, req models.CheckoutRequest) (*models.Order, error) {
	if req.PaymentMethod != PaymentCashOnDelivery {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPayment, req.PaymentMethod)
	}

	entries, err := s.membershipRepo.List(ctx, userID, db.KindCart)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart for checkout: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		items = append(items, *e)
	}

	order := &models.Order{
		UserID:        userID,
		Name:          req.Name,
		City:          req.City,
		Area:          req.Area,
		Address:       req.Address,
		Floor:         req.Floor,
		Phone:         req.Phone,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
		TotalPrice:    CartTotal(entries),
		Status:        models.OrderStatusPending,
	}
	if _, err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.membershipRepo.Clear(ctx, userID, db.KindCart); err != nil {
		return nil, fmt.Errorf("order %s created but failed to clear cart: %w", order.ID, err)
	}
	return order, nil
}

// ListOrders returns every order, newest first.
func (s *orderService) ListOrders(ctx context.Context) ([]*models.Order, error) {
	return s.orderRepo.List(ctx)
}

// CompleteOrder transitions a pending order to completed. Completing an
// order in any other state is rejected, so the action disappears once taken.
func (s *orderService) CompleteOrder(ctx context.Context, adminID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		return nil, fmt.Errorf("%w: order %s is %q", ErrOrderNotPending, orderID, order.Status)
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, models.OrderStatusCompleted); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		return nil, err
	}
	order.Status = models.OrderStatusCompleted

	s.audit(ctx, adminID, "ORDER_COMPLETE", orderID, nil)
	return order, nil
}

// DeleteOrder removes an order document.
func (s *orderService) DeleteOrder(ctx context.Context, adminID, orderID string) error {
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		return err
	}
	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		return err
	}
	s.audit(ctx, adminID, "ORDER_DELETE", orderID, nil)
	return nil
}

// WatchOrders streams full order-list snapshots.
func (s *orderService) WatchOrders(ctx context.Context) <-chan db.Snapshot[*models.Order] {
	return s.orderRepo.Watch(ctx)
}

func (s *orderService) audit(ctx context.Context, adminID, action, orderID string, details map[string]interface{}) {
	if s.auditService == nil {
		return
	}
	err := s.auditService.CreateAuditLog(ctx, models.AuditLog{
		UserID:     adminID,
		Action:     action,
		TargetType: "ORDER",
		TargetID:   orderID,
		Details:    details,
	})
	if err != nil {
		log.Printf("audit log write failed (action=%s target=%s): %v", action, orderID, err)
	}
}
