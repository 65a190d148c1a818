package order

import (
	"context"
	"database/sql"

	"whitepepper-be/internal/logger"

	"go.uber.org/zap"
)

const orderColumns = `id, user_id, total_amount, status, shipping_address, payment_method, payment_intent_id, created_at`

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateOrder(ctx context.Context, params CreateOrderParams) (*Order, error) {
	query := `
	INSERT INTO orders (user_id, total_amount, status, shipping_address, payment_method, created_at)
	VALUES ($1, $2, $3, $4, $5, NOW())
	RETURNING ` + orderColumns

	o, err := r.scanOrder(r.db.QueryRowContext(ctx, query,
		params.UserID, params.TotalAmount, params.Status, params.ShippingAddress, params.PaymentMethod,
	))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create order", zap.Error(err))
		return nil, err
	}
	return o, nil
}

func (r *postgresRepository) AddOrderItem(ctx context.Context, params AddOrderItemParams) (*OrderItem, error) {
	existing, err := r.GetOrder(ctx, params.OrderID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrOrderNotFound
	}

	query := `
	INSERT INTO order_items (order_id, product_id, quantity, price, total_price)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, order_id, product_id, quantity, price, total_price
	`

	var item OrderItem
	err = r.db.QueryRowContext(ctx, query,
		params.OrderID, params.ProductID, params.Quantity, params.Price, params.TotalPrice,
	).Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price, &item.TotalPrice)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to add order item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepository) GetOrder(ctx context.Context, id uint) (*Order, error) {
	query := `
	SELECT ` + orderColumns + `
	FROM orders
	WHERE id = $1
	`
	return r.scanOrder(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresRepository) GetOrderItems(ctx context.Context, orderID uint) ([]OrderItem, error) {
	query := `
	SELECT id, order_id, product_id, quantity, price, total_price
	FROM order_items
	WHERE order_id = $1
	ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price, &item.TotalPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepository) ListUserOrders(ctx context.Context, userID uint) ([]Order, error) {
	query := `
	SELECT ` + orderColumns + `
	FROM orders
	WHERE user_id = $1
	ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.ShippingAddress, &o.PaymentMethod, &o.PaymentIntentID, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uint, status Status) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepository) SetPaymentIntent(ctx context.Context, id uint, intentID string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET payment_intent_id = $1 WHERE id = $2`, intentID, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepository) scanOrder(row *sql.Row) (*Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.ShippingAddress, &o.PaymentMethod, &o.PaymentIntentID, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}
