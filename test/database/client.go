// Package database provides a test database client backed by a per-test
// PostgreSQL schema.
package database

import (
	"testing"

	"github.com/c-varun14/Yugantar/pkg/database"
	"github.com/c-varun14/Yugantar/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to the external PostgreSQL
// service container. In local dev: spins up a testcontainer. Cleanup (schema
// drop and connection close) runs automatically when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
