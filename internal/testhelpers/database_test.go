package testhelpers

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The container wait strategy opens a plain database/sql connection with
// the "pgx" driver; it must be registered in this binary or SetupTestDatabase
// fails before the container is even ready.
func TestWaitDriverRegistered(t *testing.T) {
	assert.Contains(t, sql.Drivers(), "pgx")

	dsn := fmt.Sprintf("postgres://%s:%s@localhost:5432/%s?sslmode=disable",
		testDBUser, testDBPassword, testDBName)
	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
