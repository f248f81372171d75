package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	repoer interface {
		Create(ctx context.Context, o *Order) error
		GetByID(ctx context.Context, userID, id uuid.UUID) (*Order, error)
	}

	repo struct {
		pool *pgxpool.Pool
	}
)

func NewRepo(pool *pgxpool.Pool) repoer {
	return &repo{pool: pool}
}

// Create persists the order header and its lines in one transaction.
func (r *repo) Create(ctx context.Context, o *Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	stmt := `
	INSERT INTO orders (
		id, user_id, branch_id, status,
		subtotal_cents, service_charge_cents, delivery_fee_cents, total_cents, item_count
	)
	VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9
	)
	RETURNING created_at, updated_at`

	err = tx.QueryRow(
		ctx,
		stmt,
		o.ID,
		o.UserID,
		o.BranchID,
		o.Status,
		o.Summary.SubtotalCents,
		o.Summary.ServiceChargeCents,
		o.Summary.DeliveryFeeCents,
		o.Summary.TotalCents,
		o.Summary.ItemCount,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return err
	}

	lineStmt := `
	INSERT INTO order_lines (
		order_id, item_id, name, unit_price_cents, quantity
	)
	VALUES (
		$1, $2, $3, $4, $5
	)`

	for _, item := range o.Items {
		if _, err := tx.Exec(ctx, lineStmt, o.ID, item.ItemID, item.Name, item.UnitPriceCents, item.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*Order, error) {
	o := new(Order)

	stmt := `
	SELECT id, user_id, branch_id, status,
	       subtotal_cents, service_charge_cents, delivery_fee_cents, total_cents, item_count,
	       created_at, updated_at
	FROM orders
	WHERE id = $1 AND user_id = $2`

	err := r.pool.QueryRow(ctx, stmt, id, userID).Scan(
		&o.ID,
		&o.UserID,
		&o.BranchID,
		&o.Status,
		&o.Summary.SubtotalCents,
		&o.Summary.ServiceChargeCents,
		&o.Summary.DeliveryFeeCents,
		&o.Summary.TotalCents,
		&o.Summary.ItemCount,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lineStmt := `
	SELECT item_id, name, unit_price_cents, quantity
	FROM order_lines
	WHERE order_id = $1
	ORDER BY id`

	rows, err := r.pool.Query(ctx, lineStmt, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item CartItem
		if err := rows.Scan(&item.ItemID, &item.Name, &item.UnitPriceCents, &item.Quantity); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}

	return o, rows.Err()
}
