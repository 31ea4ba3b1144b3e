package configs

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// legacyConfig is the first trick.config.json layout: a flat iteration
// count, targets as an array keyed by secret_name, and a single default.
type legacyConfig struct {
	IterationCount     int            `json:"iteration_count"`
	PassphraseFilePath string         `json:"passphrase_file_path"`
	DefaultSecretName  string         `json:"default_secret_name"`
	Targets            []legacyTarget `json:"targets"`
}

type legacyTarget struct {
	SecretName string   `json:"secret_name"`
	Files      []string `json:"files"`
}

// isLegacyConfig detects the legacy layout by its array-valued targets or
// its top-level iteration_count.
func isLegacyConfig(data []byte) (bool, error) {
	var probe struct {
		Targets        json.RawMessage `json:"targets"`
		IterationCount *int            `json:"iteration_count"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false, err
	}

	if probe.IterationCount != nil {
		return true, nil
	}

	trimmed := bytes.TrimSpace(probe.Targets)
	return len(trimmed) > 0 && trimmed[0] == '[', nil
}

// migrateLegacyConfig converts the legacy layout in memory. Targets that
// share a secret_name are merged in order, and the single default becomes
// the default list when it names an existing target.
func migrateLegacyConfig(data []byte) (*Config, error) {
	var legacy legacyConfig
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("legacy config: %w", err)
	}

	config := DefaultConfig()
	config.PassphraseFilePath = legacy.PassphraseFilePath
	config.migrated = true

	if legacy.IterationCount != 0 {
		config.Encryption.IterationCount = legacy.IterationCount
	}

	for _, lt := range legacy.Targets {
		if lt.SecretName == "" {
			continue
		}
		if _, err := config.AddFiles(lt.SecretName, lt.Files); err != nil {
			return nil, fmt.Errorf("legacy config: %w", err)
		}
	}

	// AddFiles promotes the first target to default; the legacy file says
	// explicitly which one it was.
	config.DefaultTargetNames = []string{}
	if legacy.DefaultSecretName != "" && config.HasTarget(legacy.DefaultSecretName) {
		config.DefaultTargetNames = append(config.DefaultTargetNames, legacy.DefaultSecretName)
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}
	return config, nil
}
