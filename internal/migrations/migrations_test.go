package migrations

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsAreOrderedAndReversible(t *testing.T) {
	names, err := Files()
	require.NoError(t, err)
	require.Equal(t, []string{
		"00001_job_applications.sql",
		"00002_row_level_security.sql",
		"00003_triggers.sql",
	}, names)

	for _, name := range names {
		body, err := files.ReadFile(dir + "/" + name)
		require.NoError(t, err)
		text := string(body)
		assert.True(t, strings.HasPrefix(text, "-- +goose Up"), name)
		assert.Contains(t, text, "-- +goose Down", name)
		assert.Equal(t, strings.Count(text, "-- +goose StatementBegin"), strings.Count(text, "-- +goose StatementEnd"), name)
	}
}

func TestActivityLogSurvivesApplicationDelete(t *testing.T) {
	body, err := files.ReadFile(dir + "/00001_job_applications.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "REFERENCES job_applications (id) ON DELETE SET NULL")
	assert.Contains(t, string(body), "REFERENCES job_applications (id) ON DELETE CASCADE")
}

func TestUnknownCommand(t *testing.T) {
	err := run(context.Background(), nil, "sideways")
	assert.EqualError(t, err, `unknown migration command "sideways"`)
}
