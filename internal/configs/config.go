package configs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	kerrors "github.com/trick-cli/trick/internal/errors"
	"github.com/trick-cli/trick/internal/utils"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	// ConfigFileName is the project config file, stored at the project root.
	ConfigFileName = "trick.config.json"

	// DefaultRootDirectory is the encrypted store directory, relative to the project root.
	DefaultRootDirectory = ".trick"

	// DefaultIterationCount is the PBKDF2 iteration count for new configs.
	DefaultIterationCount = 114514

	// DefaultPassphraseDirectory holds one passphrase file per target.
	DefaultPassphraseDirectory = "~/.config/trick/passphrases"
)

// Targets maps target names to targets, preserving insertion order.
type Targets = orderedmap.OrderedMap[string, *Target]

// Config is the project configuration persisted in trick.config.json.
type Config struct {
	RootDirectory       string     `json:"root_directory"`
	PassphraseDirectory string     `json:"passphrase_directory,omitempty"`
	PassphraseFilePath  string     `json:"passphrase_file_path,omitempty"`
	DefaultTargetNames  []string   `json:"default_target_names"`
	Encryption          Encryption `json:"encryption"`
	Targets             *Targets   `json:"targets"`

	migrated bool
}

// Encryption holds the key derivation settings.
type Encryption struct {
	IterationCount int `json:"iteration_count"`
}

// Target is a named group of project-relative files encrypted together.
type Target struct {
	Files []string `json:"files"`
}

// NewTargets returns an empty ordered target map.
func NewTargets() *Targets {
	return orderedmap.New[string, *Target]()
}

// DefaultConfig returns the config used when no config file exists yet.
func DefaultConfig() *Config {
	return &Config{
		RootDirectory:      DefaultRootDirectory,
		DefaultTargetNames: []string{},
		Encryption:         Encryption{IterationCount: DefaultIterationCount},
		Targets:            NewTargets(),
	}
}

// Migrated reports whether the config was converted from the legacy
// array-of-targets layout while loading. The new layout is written on the
// next save.
func (c *Config) Migrated() bool {
	return c.migrated
}

// Load reads the config file at path. A missing file is not an error: the
// default config is returned instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrConfigRead, err)
	}

	config, err := decodeConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrConfigRead, path, err)
	}

	return config, nil
}

// Save writes the config as indented JSON. The file is replaced atomically.
func Save(path string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrConfigWrite, err)
	}
	data = append(data, '\n')

	// #nosec G306 -- the config is committed alongside the project and holds no secrets.
	if err := utils.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrConfigWrite, err)
	}

	return nil
}

// Mutator changes a loaded config and reports whether it must be saved.
type Mutator func(config *Config) (bool, error)

// Update runs one load-mutate-save cycle under an exclusive lock. The config
// is written only when mutate returns true and no error.
func Update(path string, mutate Mutator) error {
	return UpdateContext(context.Background(), path, mutate)
}

// UpdateContext is Update with a context bounding the wait for the lock.
func UpdateContext(ctx context.Context, path string, mutate Mutator) error {
	unlock, err := lockConfig(ctx, path)
	if err != nil {
		return err
	}
	defer unlock()

	config, err := Load(path)
	if err != nil {
		return err
	}

	dirty, err := mutate(config)
	if err != nil {
		return err
	}
	if !dirty {
		return nil
	}

	return Save(path, config)
}

// GetTarget looks up a target by name.
func (c *Config) GetTarget(name string) (*Target, error) {
	target, ok := c.Targets.Get(name)
	if !ok {
		return nil, &kerrors.TargetNotFoundError{Name: name}
	}
	return target, nil
}

// HasTarget reports whether a target with the given name exists.
func (c *Config) HasTarget(name string) bool {
	_, ok := c.Targets.Get(name)
	return ok
}

func decodeConfig(data []byte) (*Config, error) {
	legacy, err := isLegacyConfig(data)
	if err != nil {
		return nil, err
	}
	if legacy {
		return migrateLegacyConfig(data)
	}

	config := &Config{Targets: NewTargets()}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}
	return config, nil
}

// normalize fills defaults for absent fields and validates the rest.
func (c *Config) normalize() error {
	if c.Targets == nil {
		c.Targets = NewTargets()
	}
	for pair := c.Targets.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			pair.Value = &Target{}
		}
		if pair.Value.Files == nil {
			pair.Value.Files = []string{}
		}
	}

	if c.DefaultTargetNames == nil {
		c.DefaultTargetNames = []string{}
	}
	if c.RootDirectory == "" {
		c.RootDirectory = DefaultRootDirectory
	}

	switch {
	case c.Encryption.IterationCount == 0:
		c.Encryption.IterationCount = DefaultIterationCount
	case c.Encryption.IterationCount < 0:
		return fmt.Errorf("%w: got %d", kerrors.ErrInvalidIterationCount, c.Encryption.IterationCount)
	}

	return nil
}
