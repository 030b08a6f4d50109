package db

import (
	"path/filepath"
	"testing"
)

func TestOpen_AppliesMigrationsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.db")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for _, table := range []string{"users", "foods", "consumptions"} {
		var name string
		err := d.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
	var n int
	if err := d.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	_ = d.Close()

	// Reopening must not re-run anything.
	d, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer d.Close()
	var again int
	if err := d.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&again); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if again != n {
		t.Fatalf("migrations re-applied: before=%d after=%d", n, again)
	}
}

func TestOpen_ForeignKeysEnforced(t *testing.T) {
	d, err := Open("file:dbfk?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(`INSERT INTO consumptions (user_id, food_id) VALUES (999, 999)`); err == nil {
		t.Fatalf("expected foreign key violation for dangling consumption")
	}
}

func TestLoadMigrations_Ordered(t *testing.T) {
	migs, err := loadMigrations()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := migs[1]; !ok {
		t.Fatalf("expected migration 0001, got %v", migs)
	}
	for v, m := range migs {
		if m.version != v || m.file == "" {
			t.Fatalf("bad migration entry %d: %+v", v, m)
		}
	}
}

func TestWithConnParams(t *testing.T) {
	tests := []struct{ in, want string }{
		{"app.db", "app.db?_foreign_keys=on&_busy_timeout=5000"},
		{"file:x?mode=memory&cache=shared", "file:x?mode=memory&cache=shared&_foreign_keys=on&_busy_timeout=5000"},
	}
	for _, tt := range tests {
		if got := withConnParams(tt.in); got != tt.want {
			t.Fatalf("withConnParams(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
