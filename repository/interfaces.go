package repository

import (
	"context"

	"github.com/samber/mo"

	"foodTracker/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (mo.Option[*models.User], error)
	GetByUsername(ctx context.Context, username string) (mo.Option[*models.User], error)
	EnsureByUsername(ctx context.Context, username string) (*models.User, error)
}

// FoodRepositoryI defines read access to the food catalog plus the
// out-of-band writes used by catalog import.
type FoodRepositoryI interface {
	List(ctx context.Context) ([]models.Food, error)
	GetByID(ctx context.Context, id int64) (mo.Option[*models.Food], error)
	Create(ctx context.Context, f *models.Food) (*models.Food, error)
	UpsertByName(ctx context.Context, f *models.Food) (*models.Food, error)
}

// ConsumptionRepositoryI defines operations on Consumption records.
// Lookups and deletes that act on behalf of a user are scoped by owner.
type ConsumptionRepositoryI interface {
	Create(ctx context.Context, userID, foodID int64) (*models.Consumption, error)
	GetByID(ctx context.Context, id int64) (mo.Option[*models.Consumption], error)
	GetForUser(ctx context.Context, id, userID int64) (mo.Option[*models.Consumption], error)
	ListByUser(ctx context.Context, userID int64) ([]models.Consumption, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
	DeleteForUser(ctx context.Context, id, userID int64) (bool, error)
}

var (
	_ UserRepositoryI        = (*UserRepository)(nil)
	_ FoodRepositoryI        = (*FoodRepository)(nil)
	_ ConsumptionRepositoryI = (*ConsumptionRepository)(nil)
)
