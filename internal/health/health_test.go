package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestReady(t *testing.T) {
	ok := NewPostgRESTChecker(pingFunc(func(context.Context) error { return nil }))
	assert.NoError(t, NewService(ok).Ready(context.Background()))
	assert.NoError(t, NewService().Ready(context.Background()))
}

func TestReadyNamesFailingChecker(t *testing.T) {
	down := errors.New("connection refused")
	bad := NewPostgRESTChecker(pingFunc(func(context.Context) error { return down }))

	err := NewService(bad).Ready(context.Background())
	assert.ErrorIs(t, err, down)
	assert.EqualError(t, err, "postgrest: connection refused")
}
