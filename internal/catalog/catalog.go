// Package catalog imports the food catalog from a JSON file.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"foodTracker/models"
)

// FoodJSON is one entry of the catalog file.
type FoodJSON struct {
	Name     string  `json:"name"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fats     float64 `json:"fats"`
	Calories int64   `json:"calories"`
}

// Upserter stores catalog entries keyed by name.
type Upserter interface {
	UpsertByName(ctx context.Context, f *models.Food) (*models.Food, error)
}

// LoadFromJSON reads and validates a catalog file.
func LoadFromJSON(path string) ([]models.Food, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var arr []FoodJSON
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(arr) == 0 {
		return nil, fmt.Errorf("food catalog is empty")
	}

	seen := map[string]bool{}
	out := make([]models.Food, 0, len(arr))
	for i, fj := range arr {
		name := strings.TrimSpace(fj.Name)
		if name == "" {
			return nil, fmt.Errorf("missing name at index %d", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate food %q", name)
		}
		if fj.Carbs < 0 || fj.Protein < 0 || fj.Fats < 0 || fj.Calories < 0 {
			return nil, fmt.Errorf("negative nutrition value for %q", name)
		}
		seen[name] = true
		out = append(out, models.Food{
			Name:     name,
			Carbs:    fj.Carbs,
			Protein:  fj.Protein,
			Fats:     fj.Fats,
			Calories: fj.Calories,
		})
	}
	return out, nil
}

// Import upserts every food and returns how many were written.
func Import(ctx context.Context, store Upserter, foods []models.Food) (int, error) {
	for i := range foods {
		if _, err := store.UpsertByName(ctx, &foods[i]); err != nil {
			return i, fmt.Errorf("upsert %q: %w", foods[i].Name, err)
		}
	}
	return len(foods), nil
}
