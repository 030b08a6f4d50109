package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/samber/mo"

	"foodTracker/models"
)

// ConsumptionRepository stores consumption records.
type ConsumptionRepository struct {
	db *sql.DB
}

// NewConsumptionRepository creates a new ConsumptionRepository.
func NewConsumptionRepository(db *sql.DB) *ConsumptionRepository {
	return &ConsumptionRepository{db: db}
}

// Create inserts one record linking userID to foodID. Repeated calls with the
// same pair create distinct records.
func (r *ConsumptionRepository) Create(ctx context.Context, userID, foodID int64) (*models.Consumption, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// Query back afterwards to capture consumed_at
	res, err := r.db.ExecContext(ctx, `INSERT INTO consumptions (user_id, food_id) VALUES (?, ?)`, userID, foodID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	created, ok := c.Get()
	if !ok {
		return nil, fmt.Errorf("created consumption not found: id=%d", id)
	}
	return created, nil
}

// GetByID fetches a record by id regardless of owner.
func (r *ConsumptionRepository) GetByID(ctx context.Context, id int64) (mo.Option[*models.Consumption], error) {
	return r.getOne(ctx, `SELECT id, user_id, food_id, consumed_at FROM consumptions WHERE id = ?`, id)
}

// GetForUser fetches a record only when it belongs to userID.
func (r *ConsumptionRepository) GetForUser(ctx context.Context, id, userID int64) (mo.Option[*models.Consumption], error) {
	return r.getOne(ctx, `SELECT id, user_id, food_id, consumed_at FROM consumptions WHERE id = ? AND user_id = ?`, id, userID)
}

// ListByUser returns the user's records oldest first, each joined with its food.
func (r *ConsumptionRepository) ListByUser(ctx context.Context, userID int64) ([]models.Consumption, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT c.id, c.user_id, c.food_id, c.consumed_at,
        f.id, f.name, f.carbs, f.protein, f.fats, f.calories
        FROM consumptions c JOIN foods f ON f.id = c.food_id
        WHERE c.user_id = ? ORDER BY c.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.Consumption{}
	for rows.Next() {
		var c models.Consumption
		var f models.Food
		if err := rows.Scan(&c.ID, &c.UserID, &c.FoodID, &c.ConsumedAt,
			&f.ID, &f.Name, &f.Carbs, &f.Protein, &f.Fats, &f.Calories); err != nil {
			return nil, err
		}
		c.Food = &f
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByUser returns how many records the user owns.
func (r *ConsumptionRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM consumptions WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}

// DeleteForUser removes the record when it belongs to userID.
// It reports false when no such record exists, including when another user owns it.
func (r *ConsumptionRepository) DeleteForUser(ctx context.Context, id, userID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM consumptions WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ConsumptionRepository) getOne(ctx context.Context, query string, args ...any) (mo.Option[*models.Consumption], error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var c models.Consumption
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.UserID, &c.FoodID, &c.ConsumedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.Consumption](), nil
		}
		return mo.None[*models.Consumption](), err
	}
	return mo.Some(&c), nil
}
