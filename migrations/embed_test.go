package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_WaitingListMigration(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(FS, "00001_create_waiting_list.sql")
	require.NoError(t, err)
	sql := string(body)

	assert.True(t, strings.Contains(sql, "-- +goose Up"))
	assert.True(t, strings.Contains(sql, "-- +goose Down"))
	assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS waiting_list")
	assert.Contains(t, sql, "UNIQUE (email)")
}
