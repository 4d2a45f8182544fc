package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	postgrest "github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
)

// NewSupabaseClient creates the Supabase client used for auth lookups.
func NewSupabaseClient(cfg Config) (*supa.Client, error) {
	if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_KEY must be set")
	}
	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("init supabase client: %w", err)
	}
	return client, nil
}

// NewRestClient creates a PostgREST client authenticated with the service key.
// Row-level security is bypassed, so every query must carry an owner filter.
func NewRestClient(cfg Config) (*postgrest.Client, error) {
	if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_KEY must be set")
	}
	client := postgrest.NewClient(cfg.SupabaseURL+"/rest/v1", "", map[string]string{
		"apikey":        cfg.SupabaseServiceKey,
		"Authorization": "Bearer " + cfg.SupabaseServiceKey,
	})
	if client.ClientError != nil {
		return nil, fmt.Errorf("init postgrest client: %w", client.ClientError)
	}
	return client, nil
}

// ConnectPostgres opens a pgx connection pool and performs a Ping to ensure connectivity.
func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	poolCfg.MaxConns = 4
	poolCfg.MinConns = 0
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}
