package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestRepo(t *testing.T) *LoadRepo {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return NewLoadRepo(db)
}

func saveLoad(t *testing.T, repo *LoadRepo, source string, at time.Time) *LoadRecord {
	t.Helper()
	load := &LoadRecord{
		Source:    source,
		RootPath:  "kda.foundation.icon",
		IconCount: 3,
		Document:  []byte(`{"source":"` + source + `"}`),
		LoadedAt:  at,
	}
	if err := repo.Save(context.Background(), load); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	return load
}

func TestLoadRepo_Latest_Empty(t *testing.T) {
	repo := newTestRepo(t)

	load, err := repo.Latest(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Latest() error = %v, want ErrNotFound", err)
	}
	if load != nil {
		t.Errorf("Latest() = %v, want nil", load)
	}
}

func TestLoadRepo_SaveAndLatest(t *testing.T) {
	repo := newTestRepo(t)
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	saveLoad(t, repo, "first", base)
	second := saveLoad(t, repo, "second", base.Add(time.Minute))

	if second.ID == "" {
		t.Fatal("Save() should assign an ID")
	}

	latest, err := repo.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if latest.ID != second.ID {
		t.Errorf("Latest().ID = %v, want %v", latest.ID, second.ID)
	}
	if latest.Source != "second" || latest.RootPath != "kda.foundation.icon" || latest.IconCount != 3 {
		t.Errorf("Latest() = %+v", latest)
	}
	if string(latest.Document) != `{"source":"second"}` {
		t.Errorf("Latest().Document = %s", latest.Document)
	}
	if !latest.LoadedAt.Equal(second.LoadedAt) {
		t.Errorf("Latest().LoadedAt = %v, want %v", latest.LoadedAt, second.LoadedAt)
	}
}

func TestLoadRepo_SaveKeepsID(t *testing.T) {
	repo := newTestRepo(t)
	load := &LoadRecord{ID: "fixed-id", Source: "s", Document: []byte("{}")}
	if err := repo.Save(context.Background(), load); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if load.ID != "fixed-id" {
		t.Errorf("Save() ID = %v, want fixed-id", load.ID)
	}
	if load.LoadedAt.IsZero() {
		t.Error("Save() should stamp LoadedAt")
	}

	if err := repo.Save(context.Background(), load); err == nil {
		t.Error("Save() with duplicate ID should fail")
	}
}

func TestLoadRepo_List(t *testing.T) {
	repo := newTestRepo(t)
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	// Sub-second differences must still order correctly.
	saveLoad(t, repo, "a", base)
	saveLoad(t, repo, "b", base.Add(500*time.Millisecond))
	saveLoad(t, repo, "c", base.Add(2*time.Second))

	loads, err := repo.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(loads) != 2 {
		t.Fatalf("List() returned %d loads, want 2", len(loads))
	}
	if loads[0].Source != "c" || loads[1].Source != "b" {
		t.Errorf("List() order = %s, %s; want c, b", loads[0].Source, loads[1].Source)
	}
	for _, l := range loads {
		if l.Document != nil {
			t.Errorf("List() should not return documents, got %s", l.Document)
		}
	}
}

func TestLoadRepo_Prune(t *testing.T) {
	repo := newTestRepo(t)
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	for i, s := range []string{"a", "b", "c", "d"} {
		saveLoad(t, repo, s, base.Add(time.Duration(i)*time.Second))
	}

	removed, err := repo.Prune(context.Background(), 2)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if removed != 2 {
		t.Errorf("Prune() removed %d, want 2", removed)
	}

	loads, err := repo.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(loads) != 2 || loads[0].Source != "d" || loads[1].Source != "c" {
		t.Errorf("List() after Prune() = %+v", loads)
	}
}

func TestLoadRepo_ClosedDB(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	repo := NewLoadRepo(db)
	_ = db.Close()

	_, err = repo.Latest(context.Background())
	if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Latest() on closed db error = %v, want query failure", err)
	}
}
