package workflows

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trick-cli/trick/internal/configs"
	"github.com/trick-cli/trick/internal/secrets"
)

const testIterations = 1000

// testProject is an initialized project in a temp dir with its own
// passphrase directory.
type testProject struct {
	Dir           string
	PassphraseDir string
	Settings      *configs.UserSettings
}

func newTestProject(t *testing.T) *testProject {
	t.Helper()

	p := &testProject{
		Dir:           t.TempDir(),
		PassphraseDir: t.TempDir(),
	}
	p.Settings = configs.DefaultUserSettings()
	p.Settings.Defaults.PassphraseDirectory = p.PassphraseDir

	_, err := Init(context.Background(), InitOptions{
		Root:           p.Dir,
		IterationCount: testIterations,
		Settings:       p.Settings,
	})
	require.NoError(t, err)
	return p
}

func (p *testProject) path(rel string) string {
	return filepath.Join(p.Dir, filepath.FromSlash(rel))
}

func (p *testProject) write(t *testing.T, rel, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(p.path(rel)), 0755))
	require.NoError(t, os.WriteFile(p.path(rel), []byte(content), 0644)) // #nosec G306
}

func (p *testProject) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(p.path(rel))
	require.NoError(t, err)
	return string(data)
}

func (p *testProject) config(t *testing.T) *configs.Config {
	t.Helper()
	config, err := configs.Load(p.path(configs.ConfigFileName))
	require.NoError(t, err)
	return config
}

func (p *testProject) add(t *testing.T, target string, files ...string) {
	t.Helper()
	_, err := Add(context.Background(), AddOptions{Root: p.Dir, Target: target, Files: files})
	require.NoError(t, err)
}

func (p *testProject) setPassphrase(t *testing.T, target, passphrase string) {
	t.Helper()
	_, err := SetPassphrase(context.Background(), SetPassphraseOptions{
		Root:       p.Dir,
		Target:     target,
		Passphrase: passphrase,
		Settings:   p.Settings,
	})
	require.NoError(t, err)
}

func (p *testProject) cryptOptions(targets ...string) CryptOptions {
	return CryptOptions{
		Root:      p.Dir,
		Targets:   targets,
		Settings:  p.Settings,
		LookupEnv: func(string) (string, bool) { return "", false },
	}
}

func sources(files []secrets.FileResult) []string {
	var out []string
	for _, f := range files {
		out = append(out, f.Source)
	}
	return out
}

func TestListInDeclarationOrder(t *testing.T) {
	p := newTestProject(t)
	p.add(t, "web", "web.env")
	p.add(t, "db", "db.env", "db.pem")

	result, err := List(context.Background(), ListOptions{Root: p.Dir})
	require.NoError(t, err)

	require.Len(t, result.Targets, 2)
	assert.Equal(t, "web", result.Targets[0].Name)
	assert.True(t, result.Targets[0].Default)
	assert.Equal(t, "db", result.Targets[1].Name)
	assert.Equal(t, []string{"db.env", "db.pem"}, result.Targets[1].Files)
	assert.Equal(t, p.path(configs.ConfigFileName), result.ConfigPath)
}
