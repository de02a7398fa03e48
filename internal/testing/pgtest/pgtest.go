// Package pgtest starts a throwaway Postgres for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image          = "postgres:15-alpine"
	database       = "farmdb"
	username       = "farm"
	password       = "farm"
	startupTimeout = 30 * time.Second
)

// Container is a running Postgres with its connection string
type Container struct {
	ConnString string
	c          *tcpostgres.PostgresContainer
}

// Terminate stops the container. It is safe on a nil receiver.
func (c *Container) Terminate(ctx context.Context) {
	if c == nil || c.c == nil {
		return
	}
	if err := c.c.Terminate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pgtest: terminate: %v\n", err)
	}
}

// Start runs a container. Any failure, including a docker daemon that is
// missing or panics inside testcontainers, returns nil so callers can skip.
func Start(ctx context.Context) (c *Container) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "pgtest: container unavailable: %v\n", r)
			c = nil
		}
	}()

	pg, err := tcpostgres.Run(ctx, image,
		tcpostgres.WithDatabase(database),
		tcpostgres.WithUsername(username),
		tcpostgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pgtest: container unavailable: %v\n", err)
		return nil
	}

	conn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Fprintf(os.Stderr, "pgtest: connection string: %v\n", err)
		_ = pg.Terminate(ctx)
		return nil
	}
	return &Container{ConnString: conn, c: pg}
}

// Main is a TestMain body: outside -short it starts a container, stores its
// connection string in *conn for the package's tests and tears it down after.
func Main(m *testing.M, conn *string) int {
	var c *Container
	if !testing.Short() {
		c = Start(context.Background())
		if c != nil {
			*conn = c.ConnString
		}
	}
	defer c.Terminate(context.Background())
	return m.Run()
}

// Require skips t unless a container connection string is available
func Require(t testing.TB, conn string) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if conn == "" {
		t.Skip("Skipping integration test: database not available")
	}
}
