package store

import (
	"context"
	"path/filepath"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	defer m.Close()

	if err := m.EnsureTable(ctx); err != nil {
		t.Fatalf("EnsureTable error: %v", err)
	}

	// Absent key is not an error
	_, found, err := m.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if found {
		t.Error("Get on empty store should report absent")
	}

	// Put then Get returns the value exactly
	if err := m.Put(ctx, "k", 187); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	v, found, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !found || v != 187 {
		t.Errorf("Get = (%d, %v), want (187, true)", v, found)
	}

	// Put on an existing key replaces the value, no error
	if err := m.Put(ctx, "k", 250); err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	v, _, _ = m.Get(ctx, "k")
	if v != 250 {
		t.Errorf("upsert Get = %d, want 250", v)
	}

	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache", "pointsizes.db")

	// Cold start: file and parent directory do not exist yet
	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite error: %v", err)
	}
	defer s.Close()

	if err := s.EnsureTable(ctx); err != nil {
		t.Fatalf("EnsureTable error: %v", err)
	}
	// Idempotent
	if err := s.EnsureTable(ctx); err != nil {
		t.Fatalf("second EnsureTable error: %v", err)
	}

	_, found, err := s.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if found {
		t.Error("Get on fresh store should report absent")
	}

	if err := s.Put(ctx, "ENGLISH", 250); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	v, found, err := s.Get(ctx, "ENGLISH")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !found || v != 250 {
		t.Errorf("Get = (%d, %v), want (250, true)", v, found)
	}

	// Upsert replaces without raising on duplicate key
	if err := s.Put(ctx, "ENGLISH", 100); err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	v, _, _ = s.Get(ctx, "ENGLISH")
	if v != 100 {
		t.Errorf("upsert Get = %d, want 100", v)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pointsizes.db")

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite error: %v", err)
	}
	if err := s.EnsureTable(ctx); err != nil {
		t.Fatalf("EnsureTable error: %v", err)
	}
	if err := s.Put(ctx, "k", 42); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	// Reopen and read back
	s2, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer s2.Close()
	if err := s2.EnsureTable(ctx); err != nil {
		t.Fatalf("EnsureTable after reopen error: %v", err)
	}
	v, found, err := s2.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !found || v != 42 {
		t.Errorf("Get after reopen = (%d, %v), want (42, true)", v, found)
	}
}
