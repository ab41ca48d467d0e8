//go:build database

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestMagareaWithMySQL tests the magarea CLI with a MySQL history backend.
func TestMagareaWithMySQL(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "magarea",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	// parseTime is required to scan DATETIME columns into time.Time
	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/magarea?parseTime=true", host, port.Port())
	runHistoryScenario(t, map[string]string{
		"MAGAREA_HISTORY_BACKEND":    "mysql",
		"MAGAREA_HISTORY_DB_CONNECT": connStr,
	})
}

// TestMagareaWithPostgres tests the magarea CLI with a PostgreSQL history backend.
func TestMagareaWithPostgres(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres sslmode=disable", host, port.Port())
	runHistoryScenario(t, map[string]string{
		"MAGAREA_HISTORY_BACKEND":    "postgresql",
		"MAGAREA_HISTORY_DB_CONNECT": connStr,
	})
}

// runHistoryScenario clears, records, inspects and migrates a history backend.
func runHistoryScenario(t *testing.T, env map[string]string) {
	t.Helper()

	_, err := runMagarea(t, env, "history", "clear")
	require.NoError(t, err)

	_, err = runMagarea(t, env, "mag", "500", "--rake", "90")
	require.NoError(t, err)

	_, err = runMagarea(t, env, "stddev", "--regime", "interface", "--rake", "90")
	require.NoError(t, err)

	out, err := runMagarea(t, env, "history", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Connected: true")
	assert.Contains(t, out, "Total Runs: 2")

	_, err = runMagarea(t, env, "history", "clear")
	require.NoError(t, err)

	_, err = runMagarea(t, env, "history", "migrate")
	require.NoError(t, err)

	_, err = runMagarea(t, env, "history", "migrate", "--target-version", "0")
	require.NoError(t, err)
}
