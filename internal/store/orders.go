package store

import (
	"context"

	"marketplace-api/internal/models"

	"github.com/jmoiron/sqlx"
)

// CreateOrderTx inserts an order row within an open transaction
func (s *Store) CreateOrderTx(ctx context.Context, tx *sqlx.Tx, order *models.Order) error {
	query := `
		INSERT INTO orders (user_id)
		VALUES ($1)
		RETURNING id, created_at`

	return tx.GetContext(ctx, order, query, order.UserID)
}

// CreateOrderItemTx inserts an order item within an open transaction
func (s *Store) CreateOrderItemTx(ctx context.Context, tx *sqlx.Tx, item *models.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id`

	return tx.GetContext(ctx, &item.ID, query,
		item.OrderID, item.ProductID, item.Quantity)
}

// GetOrdersByUserID retrieves a user's orders, most recent first, with
// items and their referenced products attached.
func (s *Store) GetOrdersByUserID(ctx context.Context, userID int64) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.SelectContext(ctx, &orders,
		"SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []models.Order{}, nil
	}

	orderIDs := make([]int64, len(orders))
	index := make(map[int64]*models.Order, len(orders))
	for i := range orders {
		orderIDs[i] = orders[i].ID
		orders[i].Items = []models.OrderItem{}
		index[orders[i].ID] = &orders[i]
	}

	items, err := s.getOrderItems(ctx, orderIDs)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if order, ok := index[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}

	return orders, nil
}

// orderItemRow flattens an order item joined with its product
type orderItemRow struct {
	models.OrderItem
	ItemProduct models.Product `db:"product"`
}

// getOrderItems loads items for a set of orders with products embedded
func (s *Store) getOrderItems(ctx context.Context, orderIDs []int64) ([]models.OrderItem, error) {
	query, args, err := sqlx.In(`
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity,
			p.id AS "product.id", p.seller_id AS "product.seller_id",
			p.title AS "product.title", p.description AS "product.description",
			p.price AS "product.price", p.stock AS "product.stock",
			p.category AS "product.category", p.brand AS "product.brand",
			p.tags AS "product.tags", p.discount AS "product.discount",
			p.image_url AS "product.image_url", p.thumbnail AS "product.thumbnail",
			p.additional_images AS "product.additional_images",
			p.rating AS "product.rating", p.reviews_count AS "product.reviews_count",
			p.created_at AS "product.created_at", p.updated_at AS "product.updated_at"
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id IN (?)
		ORDER BY oi.id`, orderIDs)
	if err != nil {
		return nil, err
	}
	query = s.db.Rebind(query)

	var rows []orderItemRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(rows))
	for i := range rows {
		item := rows[i].OrderItem
		product := rows[i].ItemProduct
		item.Product = &product
		items = append(items, item)
	}
	return items, nil
}

// SalesRowsBySeller gathers every order item whose product is owned by the
// seller, joined with its order, product and purchasing customer. Rows come
// back ordered by order recency so grouping stays stable.
func (s *Store) SalesRowsBySeller(ctx context.Context, sellerID int64) ([]models.SalesRow, error) {
	var rows []models.SalesRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT oi.id AS item_id, o.id AS order_id, o.created_at AS order_created_at,
			u.username AS customer, p.id AS product_id, p.title AS product_title,
			p.price AS price, oi.quantity AS quantity
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		JOIN users u ON u.id = o.user_id
		WHERE p.seller_id = $1
		ORDER BY o.created_at DESC, oi.id`, sellerID)
	return rows, err
}
