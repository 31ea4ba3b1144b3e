package passphrase

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trick-cli/trick/internal/configs"
	kerrors "github.com/trick-cli/trick/internal/errors"
	"github.com/trick-cli/trick/internal/utils"
)

// EnvPrefix prefixes the per-target environment override.
const EnvPrefix = "TRICK_PASSPHRASE_"

// Source says where a resolved passphrase came from.
type Source string

const (
	SourceEnv       Source = "environment"
	SourceFile      Source = "passphrase file"
	SourceDirectory Source = "passphrase directory"
)

// Resolver finds target passphrases.
type Resolver struct {
	// Settings supplies the fallback passphrase directory. Nil means the
	// built-in defaults.
	Settings *configs.UserSettings

	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// NewResolver returns a resolver backed by the process environment.
func NewResolver(settings *configs.UserSettings) *Resolver {
	return &Resolver{Settings: settings, LookupEnv: os.LookupEnv}
}

// EnvVar returns the environment variable consulted for target.
func EnvVar(target string) string {
	return utils.EnvVarName(EnvPrefix, target)
}

// Resolve returns the passphrase for target.
func (r *Resolver) Resolve(config *configs.Config, target string) (string, error) {
	passphrase, _, err := r.ResolveWithSource(config, target)
	return passphrase, err
}

// ResolveWithSource is Resolve that also reports the source used.
func (r *Resolver) ResolveWithSource(config *configs.Config, target string) (string, Source, error) {
	lookupEnv := r.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	if value, ok := lookupEnv(EnvVar(target)); ok {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed, SourceEnv, nil
		}
	}

	if config.PassphraseFilePath != "" {
		path, err := utils.ExpandHome(config.PassphraseFilePath)
		if err != nil {
			return "", "", err
		}
		passphrase, err := readFromMap(path, target)
		return passphrase, SourceFile, err
	}

	dir, err := r.directory(config)
	if err != nil {
		return "", "", err
	}
	passphrase, err := readFromDirectory(dir, target)
	return passphrase, SourceDirectory, err
}

// Location describes where Store would write the passphrase for target.
func (r *Resolver) Location(config *configs.Config, target string) (string, Source, error) {
	if config.PassphraseFilePath != "" {
		path, err := utils.ExpandHome(config.PassphraseFilePath)
		return path, SourceFile, err
	}
	dir, err := r.directory(config)
	if err != nil {
		return "", "", err
	}
	return filepath.Join(dir, target), SourceDirectory, nil
}

func (r *Resolver) directory(config *configs.Config) (string, error) {
	dir := config.PassphraseDirectory
	if dir == "" {
		settings := r.Settings
		if settings == nil {
			settings = configs.DefaultUserSettings()
		}
		dir = settings.Defaults.PassphraseDirectory
	}
	return utils.ExpandHome(dir)
}

func readFromMap(path, target string) (string, error) {
	passphrases, err := readMap(path)
	var notFound *kerrors.PassphraseFileNotFoundError
	if errors.As(err, &notFound) {
		notFound.Target = target
	}
	if err != nil {
		return "", err
	}

	value := strings.TrimSpace(passphrases[target])
	if value == "" {
		return "", &kerrors.PassphraseNotFoundError{Path: path, Target: target}
	}
	return value, nil
}

func readMap(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &kerrors.PassphraseFileNotFoundError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase file %s: %w", path, err)
	}

	passphrases := map[string]string{}
	if err := json.Unmarshal(data, &passphrases); err != nil {
		return nil, fmt.Errorf("failed to parse passphrase file %s: %w", path, err)
	}
	return passphrases, nil
}

func readFromDirectory(dir, target string) (string, error) {
	path := filepath.Join(dir, target)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", &kerrors.PassphraseFileNotFoundError{Path: path, Target: target}
	}
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase file %s: %w", path, err)
	}

	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", &kerrors.PassphraseNotFoundError{Path: path, Target: target}
	}
	return value, nil
}
