package database

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"consultly/config"
)

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0002_bookings.sql", "0001_init.sql", "README.md", "broken.sql"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "0003_dir.sql"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := listMigrations(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []migrationFile{
		{Version: "0001", Name: "init", File: "0001_init.sql"},
		{Version: "0002", Name: "bookings", File: "0002_bookings.sql"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d migrations, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("migration %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestListMigrationsMissingDir(t *testing.T) {
	if _, err := listMigrations(filepath.Join(t.TempDir(), "missing"), zap.NewNop()); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestConnStringEscapesCredentials(t *testing.T) {
	got := ConnString(config.PostgresConfig{
		Host:     "db",
		Port:     "5432",
		Username: "app",
		Password: "p@ss:word",
		DBName:   "consultly",
		SSLMode:  "disable",
	})

	want := "postgres://app:p%40ss%3Aword@db:5432/consultly?sslmode=disable"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
