package configs

import (
	"fmt"
	"slices"

	kerrors "github.com/trick-cli/trick/internal/errors"
	"github.com/trick-cli/trick/internal/utils"
)

// AddResult describes the outcome of AddFiles.
type AddResult struct {
	Created       bool
	Added         []string
	Skipped       []string
	BecameDefault bool
}

// Dirty reports whether the config changed.
func (r AddResult) Dirty() bool {
	return r.Created || len(r.Added) > 0
}

// RemoveResult describes the outcome of RemoveFiles.
type RemoveResult struct {
	Removed  []string
	NotFound []string
}

// Dirty reports whether the config changed.
func (r RemoveResult) Dirty() bool {
	return len(r.Removed) > 0
}

// TargetEntry is one row of ListTargets.
type TargetEntry struct {
	Name    string   `json:"name"`
	Files   []string `json:"files"`
	Default bool     `json:"default"`
}

// AddFiles creates the target if needed and appends files it does not
// already track, in input order. Files already present are reported as
// skipped. A newly created target becomes the default when no default is set.
func (c *Config) AddFiles(name string, files []string) (AddResult, error) {
	var result AddResult

	if !utils.IsValidTargetName(name) {
		return result, fmt.Errorf("%w: %q", kerrors.ErrInvalidTargetName, name)
	}

	target, ok := c.Targets.Get(name)
	if !ok {
		target = &Target{Files: []string{}}
		c.Targets.Set(name, target)
		result.Created = true

		if len(c.DefaultTargetNames) == 0 {
			c.DefaultTargetNames = append(c.DefaultTargetNames, name)
			result.BecameDefault = true
		}
	}

	for _, file := range files {
		if slices.Contains(target.Files, file) {
			result.Skipped = append(result.Skipped, file)
			continue
		}
		target.Files = append(target.Files, file)
		result.Added = append(result.Added, file)
	}

	return result, nil
}

// RemoveFiles removes the given files from a target. Files the target does
// not track are reported as not found; this is not an error.
func (c *Config) RemoveFiles(name string, files []string) (RemoveResult, error) {
	var result RemoveResult

	target, err := c.GetTarget(name)
	if err != nil {
		return result, err
	}

	for _, file := range files {
		index := slices.Index(target.Files, file)
		if index == -1 {
			result.NotFound = append(result.NotFound, file)
			continue
		}
		target.Files = slices.Delete(target.Files, index, index+1)
		result.Removed = append(result.Removed, file)
	}

	return result, nil
}

// RemoveTarget deletes a target and drops it from the default list.
func (c *Config) RemoveTarget(name string) error {
	if _, ok := c.Targets.Delete(name); !ok {
		return &kerrors.TargetNotFoundError{Name: name}
	}

	c.DefaultTargetNames = slices.DeleteFunc(c.DefaultTargetNames, func(n string) bool {
		return n == name
	})

	return nil
}

// ListTargets returns every target in declaration order.
func (c *Config) ListTargets() []TargetEntry {
	entries := make([]TargetEntry, 0, c.Targets.Len())
	for pair := c.Targets.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, TargetEntry{
			Name:    pair.Key,
			Files:   slices.Clone(pair.Value.Files),
			Default: slices.Contains(c.DefaultTargetNames, pair.Key),
		})
	}
	return entries
}

// SetDefaults replaces the default target list. Every name must refer to an
// existing target; duplicates are dropped.
func (c *Config) SetDefaults(names []string) (bool, error) {
	defaults := make([]string, 0, len(names))
	for _, name := range names {
		if !c.HasTarget(name) {
			return false, &kerrors.TargetNotFoundError{Name: name}
		}
		if !slices.Contains(defaults, name) {
			defaults = append(defaults, name)
		}
	}

	if slices.Equal(defaults, c.DefaultTargetNames) {
		return false, nil
	}

	c.DefaultTargetNames = defaults
	return true, nil
}

// AddDefault appends an existing target to the default list. Adding a name
// that is already a default is a no-op.
func (c *Config) AddDefault(name string) (bool, error) {
	if !c.HasTarget(name) {
		return false, &kerrors.TargetNotFoundError{Name: name}
	}
	if slices.Contains(c.DefaultTargetNames, name) {
		return false, nil
	}

	c.DefaultTargetNames = append(c.DefaultTargetNames, name)
	return true, nil
}

// RemoveDefault drops a name from the default list. Removing a name that is
// not a default is a no-op.
func (c *Config) RemoveDefault(name string) bool {
	index := slices.Index(c.DefaultTargetNames, name)
	if index == -1 {
		return false
	}

	c.DefaultTargetNames = slices.Delete(c.DefaultTargetNames, index, index+1)
	return true
}
