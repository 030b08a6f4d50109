package repository

import (
	"context"
	"testing"

	"foodTracker/internal/db"
	"foodTracker/models"
)

func TestFoodRepository_ListAndGet(t *testing.T) {
	d, err := db.Open("file:foodrepo?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	repo := NewFoodRepository(d)
	ctx := context.Background()

	empty, err := repo.List(ctx)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty list: %v len=%d", err, len(empty))
	}

	apple, err := repo.Create(ctx, &models.Food{Name: "Apple", Carbs: 14, Protein: 0.3, Fats: 0.2, Calories: 52})
	if err != nil {
		t.Fatalf("create apple: %v", err)
	}
	if _, err := repo.Create(ctx, &models.Food{Name: "Bread", Carbs: 49, Protein: 9, Fats: 3.2, Calories: 265}); err != nil {
		t.Fatalf("create bread: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Apple" || list[1].Name != "Bread" {
		t.Fatalf("unexpected list: %+v", list)
	}

	got, err := repo.GetByID(ctx, apple.ID)
	if err != nil || got.IsAbsent() {
		t.Fatalf("get apple: %v %+v", err, got)
	}
	if f := got.MustGet(); f.Calories != 52 || f.Carbs != 14 {
		t.Fatalf("apple fields mismatch: %+v", f)
	}

	missing, err := repo.GetByID(ctx, 9999)
	if err != nil || missing.IsPresent() {
		t.Fatalf("expected absent food, got %+v err=%v", missing, err)
	}
}

func TestFoodRepository_UpsertByName(t *testing.T) {
	d, err := db.Open("file:foodupsert?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	repo := NewFoodRepository(d)
	ctx := context.Background()

	first, err := repo.UpsertByName(ctx, &models.Food{Name: "Rice", Calories: 130})
	if err != nil {
		t.Fatalf("upsert new: %v", err)
	}
	second, err := repo.UpsertByName(ctx, &models.Food{Name: "Rice", Calories: 129, Carbs: 28})
	if err != nil {
		t.Fatalf("upsert existing: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("upsert changed id: %d -> %d", first.ID, second.ID)
	}
	if second.Calories != 129 || second.Carbs != 28 {
		t.Fatalf("upsert did not update values: %+v", second)
	}
	list, _ := repo.List(ctx)
	if len(list) != 1 {
		t.Fatalf("expected one food after upserts, got %d", len(list))
	}
}
