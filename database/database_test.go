package database

import (
	"testing"

	"github.com/lshigami/sciencegrader/config"
)

func TestNewDatabaseSQLite(t *testing.T) {
	cfg := &config.Config{
		Server:   config.Server{Mode: "release"},
		Database: config.Database{Driver: "sqlite", DSN: "file:database_test?mode=memory&cache=shared"},
	}
	db, err := NewDatabase(cfg)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	defer sqlDB.Close()
	if err := sqlDB.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestDialectorFor(t *testing.T) {
	d, err := dialectorFor(config.Database{Driver: "postgres", Host: "localhost", Port: "5432", User: "u", Name: "grader", SSLMode: "disable"})
	if err != nil {
		t.Fatalf("postgres: %v", err)
	}
	if d.Name() != "postgres" {
		t.Fatalf("want postgres dialector, got %s", d.Name())
	}

	d, err = dialectorFor(config.Database{Driver: "sqlite"})
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	if d.Name() != "sqlite" {
		t.Fatalf("want sqlite dialector, got %s", d.Name())
	}

	if _, err := dialectorFor(config.Database{Driver: "oracle"}); err == nil {
		t.Fatal("want error for unknown driver")
	}
}
