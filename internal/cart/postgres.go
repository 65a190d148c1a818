package cart

import (
	"context"
	"database/sql"
	"strconv"

	"whitepepper-be/internal/logger"

	"go.uber.org/zap"
)

const itemColumns = `id, user_id, session_id, product_id, quantity`

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

// ownerClause renders the owner predicate starting at placeholder $n.
func ownerClause(owner Owner, n int) (string, any) {
	if owner.UserID != nil {
		return "user_id = $" + strconv.Itoa(n), *owner.UserID
	}
	return "session_id = $" + strconv.Itoa(n), *owner.SessionID
}

func (r *postgresRepository) GetItemsByOwner(ctx context.Context, owner Owner) ([]CartItem, error) {
	clause, arg := ownerClause(owner, 1)
	query := `
	SELECT ` + itemColumns + `
	FROM cart_items
	WHERE ` + clause + `
	ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get cart rows", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []CartItem
	for rows.Next() {
		var item CartItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.SessionID, &item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepository) GetItemByID(ctx context.Context, id uint) (*CartItem, error) {
	query := `
	SELECT ` + itemColumns + `
	FROM cart_items
	WHERE id = $1
	`
	return r.scanItem(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresRepository) GetItemByOwnerAndProduct(ctx context.Context, owner Owner, productID uint) (*CartItem, error) {
	clause, arg := ownerClause(owner, 2)
	query := `
	SELECT ` + itemColumns + `
	FROM cart_items
	WHERE product_id = $1 AND ` + clause

	return r.scanItem(r.db.QueryRowContext(ctx, query, productID, arg))
}

func (r *postgresRepository) CreateItem(ctx context.Context, params CreateItemParams) (*CartItem, error) {
	query := `
	INSERT INTO cart_items (user_id, session_id, product_id, quantity)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + itemColumns

	item, err := r.scanItem(r.db.QueryRowContext(ctx, query,
		params.Owner.UserID, params.Owner.SessionID, params.ProductID, params.Quantity,
	))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create cart item", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *postgresRepository) UpdateItemQuantity(ctx context.Context, id uint, quantity int) (*CartItem, error) {
	query := `
	UPDATE cart_items
	SET quantity = $1
	WHERE id = $2
	RETURNING ` + itemColumns

	return r.scanItem(r.db.QueryRowContext(ctx, query, quantity, id))
}

func (r *postgresRepository) DeleteItem(ctx context.Context, id uint) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *postgresRepository) ClearByOwner(ctx context.Context, owner Owner) error {
	clause, arg := ownerClause(owner, 1)
	// Clearing an already-empty cart is success, so RowsAffected is not checked.
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE `+clause, arg)
	return err
}

func (r *postgresRepository) scanItem(row *sql.Row) (*CartItem, error) {
	var item CartItem
	err := row.Scan(&item.ID, &item.UserID, &item.SessionID, &item.ProductID, &item.Quantity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
