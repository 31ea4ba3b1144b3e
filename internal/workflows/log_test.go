package workflows

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trick-cli/trick/internal/audit"
	kerrors "github.com/trick-cli/trick/internal/errors"
)

const sampleLog = `{"ts":"2024-01-10T09:00:00.000000Z","user":"alice","op":"init"}
{"ts":"2024-01-15T10:30:00.000000Z","user":"alice","op":"add","targets":["db"],"files":["a.env"]}
{"ts":"2024-01-16T11:00:00.000000Z","user":"bob","op":"encrypt","targets":["db"],"files":["a.env"]}
{"ts":"2024-01-20T12:00:00.000000Z","user":"bob","op":"decrypt","targets":["api"],"files":["b.env","c.env"]}
`

func newLoggedProject(t *testing.T) *testProject {
	t.Helper()
	p := newTestProject(t)
	require.NoError(t, os.WriteFile(p.path(".trick/audit.jsonl"), []byte(sampleLog), 0644)) // #nosec G306
	return p
}

func ops(entries []audit.Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Operation)
	}
	return out
}

func TestLogFilters(t *testing.T) {
	p := newLoggedProject(t)
	ctx := context.Background()

	tests := []struct {
		name string
		opts LogOptions
		want []string
	}{
		{"all", LogOptions{}, []string{"init", "add", "encrypt", "decrypt"}},
		{"user", LogOptions{User: "BOB"}, []string{"encrypt", "decrypt"}},
		{"operations", LogOptions{Operations: "add, decrypt"}, []string{"add", "decrypt"}},
		{"target", LogOptions{Target: "db"}, []string{"add", "encrypt"}},
		{"since", LogOptions{Since: "2024-01-16"}, []string{"encrypt", "decrypt"}},
		{"until", LogOptions{Until: "2024-01-15"}, []string{"init", "add"}},
		{"limit", LogOptions{Limit: 2}, []string{"encrypt", "decrypt"}},
		{"reverse limit", LogOptions{Limit: 2, Reverse: true}, []string{"decrypt", "encrypt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Root = p.Dir
			result, err := Log(ctx, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ops(result.Entries))
			assert.Equal(t, 4, result.TotalEntriesBeforeFilter)
		})
	}
}

func TestLogInvalidDate(t *testing.T) {
	p := newLoggedProject(t)

	_, err := Log(context.Background(), LogOptions{Root: p.Dir, Since: "16/01/2024"})
	assert.ErrorIs(t, err, kerrors.ErrInvalidDateFormat)
}

func TestLogRecordsOperations(t *testing.T) {
	p := newTestProject(t)
	p.add(t, "db", "a.env")

	result, err := Log(context.Background(), LogOptions{Root: p.Dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"init", "add"}, ops(result.Entries))
}

func TestLogWithoutAuditFile(t *testing.T) {
	result, err := Log(context.Background(), LogOptions{Root: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
}

func TestFormatDetails(t *testing.T) {
	entry := audit.Entry{Operation: "decrypt", Targets: []string{"api"}, Files: []string{"b.env", "c.env"}}
	assert.Equal(t, "api: b.env, c.env", FormatDetails(entry))
	assert.Equal(t, "api 2 files", FormatDetailsOneline(entry))

	many := audit.Entry{Operation: "encrypt", Targets: []string{"db"}, Files: []string{"1", "2", "3", "4"}}
	assert.Equal(t, "db: 4 files", FormatDetails(many))

	setting := audit.Entry{Operation: "config", Setting: "root_directory"}
	assert.Equal(t, "root_directory", FormatDetails(setting))
	assert.Equal(t, "root_directory", FormatDetailsOneline(setting))

	assert.Equal(t, "", FormatDetails(audit.Entry{Operation: "init"}))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-01-15", FormatDate("2024-01-15T10:30:00.000000Z"))
	assert.Equal(t, "2024-01-15 10:30:00", FormatDateTime("2024-01-15T10:30:00.000000Z"))
	assert.Equal(t, "garbage", FormatDate("garbage"))
}
