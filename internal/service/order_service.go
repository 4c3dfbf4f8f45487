package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-api/internal/broker"
	"marketplace-api/internal/models"
	"marketplace-api/internal/store"
	"marketplace-api/internal/util"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderService assembles orders from cart payloads
type OrderService struct {
	store          *store.Store
	eventPublisher *broker.EventPublisher
	logger         *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(store *store.Store, eventPublisher *broker.EventPublisher) *OrderService {
	return &OrderService{
		store:          store,
		eventPublisher: eventPublisher,
		logger:         util.GetLogger(),
	}
}

// cartResolution is the per-item outcome of cart resolution: an existing
// product, an ad-hoc created one, or a skip with a reason.
type cartResolution struct {
	Product *models.Product
	Created bool
	Skipped bool
	Reason  string
}

// Assemble resolves a cart into a persisted order owned by userID. The
// whole assembly runs in one transaction: either the order and all
// resolved items commit together, or nothing becomes visible. A cart that
// resolves to zero items fails with ErrNoValidItems.
func (s *OrderService) Assemble(ctx context.Context, userID int64, cartItems []CartItem) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.Assemble")
	defer span.End()

	start := time.Now()
	defer func() {
		util.OrderAssemblyLatency.Observe(time.Since(start).Seconds())
	}()

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	order := &models.Order{UserID: userID}
	if err := s.store.CreateOrderTx(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	created := 0
	for i := range cartItems {
		item := &cartItems[i]

		res, err := s.resolveCartItem(ctx, tx, userID, item)
		if err != nil {
			return nil, err
		}
		if res.Skipped {
			util.OrderItemsSkippedTotal.WithLabelValues(res.Reason).Inc()
			s.logger.Debug("Cart item skipped",
				zap.Int("position", i),
				zap.String("reason", res.Reason))
			continue
		}
		if res.Created {
			util.AdhocProductsCreatedTotal.Inc()
		}

		orderItem := &models.OrderItem{
			OrderID:   order.ID,
			ProductID: res.Product.ID,
			Quantity:  item.ItemQuantity(),
		}
		if err := s.store.CreateOrderItemTx(ctx, tx, orderItem); err != nil {
			return nil, fmt.Errorf("failed to create order item: %w", err)
		}
		orderItem.Product = res.Product
		order.Items = append(order.Items, *orderItem)
		created++
	}

	if created == 0 {
		util.OrdersRejectedTotal.WithLabelValues("no_valid_items").Inc()
		return nil, ErrNoValidItems
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	util.OrdersPlacedTotal.Inc()
	s.logger.Info("Order placed",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.Int("items", created))

	s.publishOrderPlaced(ctx, order)

	return order, nil
}

// resolveCartItem looks the referenced product up, falling back to ad-hoc
// creation when the payload carries title and price. The requester becomes
// the seller of record for products it introduces from external catalog
// data; that fallback policy is intentional.
func (s *OrderService) resolveCartItem(ctx context.Context, tx *sqlx.Tx, userID int64, item *CartItem) (*cartResolution, error) {
	if ref := item.ProductRef(); ref != 0 {
		product, err := s.store.GetProductByIDTx(ctx, tx, ref)
		if err != nil {
			return nil, fmt.Errorf("failed to look up product %d: %w", ref, err)
		}
		if product != nil {
			return &cartResolution{Product: product}, nil
		}
	}

	if item.Title == "" || item.Price == "" {
		return &cartResolution{Skipped: true, Reason: "unresolvable"}, nil
	}

	price, err := decimal.NewFromString(item.Price.String())
	if err != nil {
		return &cartResolution{Skipped: true, Reason: "bad_price"}, nil
	}

	product := &models.Product{
		SellerID:    userID,
		Title:       item.Title,
		Description: item.Description,
		Price:       price,
		Stock:       item.ItemStock(),
		ImageURL:    item.ItemImage(),
	}
	if err := s.store.CreateProductTx(ctx, tx, product); err != nil {
		return nil, fmt.Errorf("failed to create ad-hoc product: %w", err)
	}

	return &cartResolution{Product: product, Created: true}, nil
}

// publishOrderPlaced emits the domain event; failures are logged, never
// surfaced to the caller.
func (s *OrderService) publishOrderPlaced(ctx context.Context, order *models.Order) {
	if s.eventPublisher == nil {
		return
	}

	items := make([]models.OrderItemData, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, models.OrderItemData{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
		})
	}

	event := &models.OrderPlacedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderPlaced,
			Timestamp: time.Now(),
		},
		OrderID:    order.ID,
		UserID:     order.UserID,
		TotalItems: order.TotalItems(),
		TotalPrice: order.TotalPrice(),
		Items:      items,
	}

	if err := s.eventPublisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderPlaced event",
			zap.Int64("order_id", order.ID),
			zap.Error(err))
	}
}

// ListOrders returns the user's own orders, most recent first
func (s *OrderService) ListOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.ListOrders")
	defer span.End()

	return s.store.GetOrdersByUserID(ctx, userID)
}
