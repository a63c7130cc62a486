package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@localhost:5432/wheel?sslmode=disable", migrateURL("postgres://u:p@localhost:5432/wheel?sslmode=disable"))
	assert.Equal(t, "pgx5://localhost/wheel", migrateURL("postgresql://localhost/wheel"))
	assert.Equal(t, "pgx5://already", migrateURL("pgx5://already"))
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	assert.NoError(t, err)
	assert.Len(t, entries, 4)
}
