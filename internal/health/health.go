// Package health aggregates dependency checks for the readiness probe.
package health

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

type Service struct {
	checkers []Checker
}

func NewService(checkers ...Checker) *Service {
	return &Service{checkers: checkers}
}

// Ready runs every checker in order and reports the first failure by name.
func (s *Service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return nil
}

// Pinger is anything with a cheap round trip, such as the PostgREST store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PostgRESTChecker struct {
	p Pinger
}

func NewPostgRESTChecker(p Pinger) *PostgRESTChecker { return &PostgRESTChecker{p: p} }

func (c *PostgRESTChecker) Name() string { return "postgrest" }

func (c *PostgRESTChecker) Check(ctx context.Context) error { return c.p.Ping(ctx) }

type PostgresChecker struct {
	pool *pgxpool.Pool
}

func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return c.pool.Ping(ctx)
}
