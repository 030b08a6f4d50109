// Package tracker records and lists the foods a user has consumed.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"

	"foodTracker/models"
)

var (
	// ErrInvalidID is returned when an identifier is not a positive integer.
	ErrInvalidID = errors.New("invalid identifier")
	// ErrFoodNotFound is returned when a submitted food id matches no catalog entry.
	ErrFoodNotFound = errors.New("food not found")
	// ErrConsumptionNotFound is returned when no record with the id belongs to the user.
	ErrConsumptionNotFound = errors.New("consumption record not found")
)

// IsNotFound reports whether err is one of the not-found errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFoodNotFound) || errors.Is(err, ErrConsumptionNotFound)
}

// FoodStore is the read side of the catalog.
type FoodStore interface {
	List(ctx context.Context) ([]models.Food, error)
	GetByID(ctx context.Context, id int64) (mo.Option[*models.Food], error)
}

// ConsumptionStore persists consumption records.
type ConsumptionStore interface {
	Create(ctx context.Context, userID, foodID int64) (*models.Consumption, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Consumption, error)
	DeleteForUser(ctx context.Context, id, userID int64) (bool, error)
}

// IndexView is the data handed to the index page renderer.
type IndexView struct {
	Foods         []models.Food        `json:"foods"`
	ConsumedFoods []models.Consumption `json:"consumed_foods"`
}

// Service implements the tracker operations.
type Service struct {
	foods        FoodStore
	consumptions ConsumptionStore
}

// NewService creates a Service.
func NewService(foods FoodStore, consumptions ConsumptionStore) *Service {
	return &Service{foods: foods, consumptions: consumptions}
}

// Catalog returns every known food.
func (s *Service) Catalog(ctx context.Context) ([]models.Food, error) {
	foods, err := s.foods.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

// History returns the records owned by user.
func (s *Service) History(ctx context.Context, user *models.User) ([]models.Consumption, error) {
	list, err := s.consumptions.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list consumptions: %w", err)
	}
	return list, nil
}

// Record creates one consumption record for user and the food identified by rawFoodID.
// Nothing is written when the id is malformed or names no food.
func (s *Service) Record(ctx context.Context, user *models.User, rawFoodID string) (*models.Consumption, error) {
	foodID, err := ParseID(rawFoodID)
	if err != nil {
		return nil, err
	}
	found, err := s.foods.GetByID(ctx, foodID)
	if err != nil {
		return nil, fmt.Errorf("get food: %w", err)
	}
	food, ok := found.Get()
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrFoodNotFound, foodID)
	}
	c, err := s.consumptions.Create(ctx, user.ID, food.ID)
	if err != nil {
		return nil, fmt.Errorf("create consumption: %w", err)
	}
	c.Food = food
	return c, nil
}

// Remove deletes the record identified by rawID when user owns it.
// A record owned by someone else is reported as not found.
func (s *Service) Remove(ctx context.Context, user *models.User, rawID string) error {
	id, err := ParseID(rawID)
	if err != nil {
		return err
	}
	deleted, err := s.consumptions.DeleteForUser(ctx, id, user.ID)
	if err != nil {
		return fmt.Errorf("delete consumption: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: id=%d", ErrConsumptionNotFound, id)
	}
	return nil
}

// Index records the submitted food (if any) and then builds the index view.
func (s *Service) Index(ctx context.Context, user *models.User, submission mo.Option[string]) (*IndexView, error) {
	if raw, ok := submission.Get(); ok {
		if _, err := s.Record(ctx, user, raw); err != nil {
			return nil, err
		}
	}
	foods, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	consumed, err := s.History(ctx, user)
	if err != nil {
		return nil, err
	}
	return &IndexView{Foods: foods, ConsumedFoods: consumed}, nil
}

// ParseID parses a positive integer identifier from opaque request text.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}
