// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/gnames/gnredlist/internal/iodb"
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/gnames/gnredlist/pkg/db"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "gnredlist_test"
)

// GetTestDatabaseConfig returns database settings for integration tests.
// Defaults are overridden by GNREDLIST_DATABASE_* environment variables,
// the database name is always TestDatabaseName.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := config.New()
	var opts []config.Option
	if s := os.Getenv("GNREDLIST_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("GNREDLIST_DATABASE_PORT"); s != "" {
		if i, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(i))
		}
	}
	if s := os.Getenv("GNREDLIST_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("GNREDLIST_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	opts = append(opts, config.OptDatabaseDatabase(TestDatabaseName))
	cfg.Update(opts)
	return &cfg.Database
}

// Connect returns a connected operator for integration tests. The test
// is skipped in short mode or when PostgreSQL is not reachable.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    op := iotesting.Connect(t)
//	    // ... use op.Pool()
//	}
func Connect(t *testing.T) db.Operator {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	err := op.Connect(context.Background(), GetTestDatabaseConfig())
	if err != nil {
		t.Skipf("PostgreSQL is not available: %v", err)
	}
	t.Cleanup(func() { op.Close() })
	return op
}
