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

const foodColumns = `id, name, carbs, protein, fats, calories`

// FoodRepository reads the food catalog.
type FoodRepository struct {
	db *sql.DB
}

// NewFoodRepository creates a new FoodRepository.
func NewFoodRepository(db *sql.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

// List returns every food in the catalog ordered by id.
func (r *FoodRepository) List(ctx context.Context) ([]models.Food, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+foodColumns+` FROM foods ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.Food{}
	for rows.Next() {
		var f models.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.Carbs, &f.Protein, &f.Fats, &f.Calories); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a food by id. An unknown id yields mo.None.
func (r *FoodRepository) GetByID(ctx context.Context, id int64) (mo.Option[*models.Food], error) {
	return r.getOne(ctx, `SELECT `+foodColumns+` FROM foods WHERE id = ?`, id)
}

func (r *FoodRepository) getByName(ctx context.Context, name string) (mo.Option[*models.Food], error) {
	return r.getOne(ctx, `SELECT `+foodColumns+` FROM foods WHERE name = ?`, name)
}

// Create inserts a catalog entry.
func (r *FoodRepository) Create(ctx context.Context, f *models.Food) (*models.Food, error) {
	if f == nil {
		return nil, errors.New("food is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO foods (name, carbs, protein, fats, calories) VALUES (?,?,?,?,?)`,
		f.Name, f.Carbs, f.Protein, f.Fats, f.Calories)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *f
	out.ID = id
	return &out, nil
}

// UpsertByName inserts the food or, when a food with the same name exists,
// overwrites its nutrition values. The stored row is returned.
func (r *FoodRepository) UpsertByName(ctx context.Context, f *models.Food) (*models.Food, error) {
	if f == nil {
		return nil, errors.New("food is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO foods (name, carbs, protein, fats, calories) VALUES (?,?,?,?,?)
        ON CONFLICT(name) DO UPDATE SET carbs = excluded.carbs, protein = excluded.protein,
        fats = excluded.fats, calories = excluded.calories`,
		f.Name, f.Carbs, f.Protein, f.Fats, f.Calories)
	if err != nil {
		return nil, err
	}
	got, err := r.getByName(ctx, f.Name)
	if err != nil {
		return nil, err
	}
	stored, ok := got.Get()
	if !ok {
		return nil, fmt.Errorf("upserted food not found: %q", f.Name)
	}
	return stored, nil
}

func (r *FoodRepository) getOne(ctx context.Context, query string, arg any) (mo.Option[*models.Food], error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var f models.Food
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&f.ID, &f.Name, &f.Carbs, &f.Protein, &f.Fats, &f.Calories)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.Food](), nil
		}
		return mo.None[*models.Food](), err
	}
	return mo.Some(&f), nil
}
