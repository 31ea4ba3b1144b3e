package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trick-cli/trick/internal/audit"
	"github.com/trick-cli/trick/internal/configs"
	kerrors "github.com/trick-cli/trick/internal/errors"
)

// openProject resolves the project for root and loads its config.
func openProject(root string) (*configs.Project, *configs.Config, error) {
	project, err := configs.ResolveProject(root)
	if err != nil {
		return nil, nil, err
	}

	config, err := configs.Load(project.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	return project, config, nil
}

// projectMutator is a configs.Mutator that also sees the resolved project.
type projectMutator func(project *configs.Project, config *configs.Config) (bool, error)

// updateProject runs one locked load-mutate-save cycle on the project config
// and hands the config that was used to the caller.
func updateProject(ctx context.Context, root string, mutate projectMutator) (*configs.Project, *configs.Config, error) {
	project, err := configs.ResolveProject(root)
	if err != nil {
		return nil, nil, err
	}

	var final *configs.Config
	err = configs.UpdateContext(ctx, project.ConfigPath, func(config *configs.Config) (bool, error) {
		final = config
		return mutate(project, config)
	})
	if err != nil {
		return nil, nil, err
	}

	return project, final, nil
}

// argumentDir is the directory relative file arguments are resolved
// against: the project root when it was given explicitly, else the working
// directory.
func argumentDir(root string, project *configs.Project) (string, error) {
	if root != "" {
		return project.Path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return wd, nil
}

// selectTargets returns names, or the configured defaults when names is
// empty. Every target must exist.
func selectTargets(config *configs.Config, names []string) ([]string, error) {
	if len(names) == 0 {
		names = config.DefaultTargetNames
	}
	if len(names) == 0 {
		return nil, kerrors.ErrNoTargetSpecified
	}

	selected := make([]string, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		if !config.HasTarget(name) {
			return nil, &kerrors.TargetNotFoundError{Name: name}
		}
		if !seen[name] {
			seen[name] = true
			selected = append(selected, name)
		}
	}
	return selected, nil
}

// validateRootDirectory accepts relative store directories that stay inside
// the project.
func validateRootDirectory(dir string) error {
	if dir == "" || filepath.IsAbs(dir) || strings.HasPrefix(dir, "~") {
		return fmt.Errorf("%w: %q", kerrors.ErrInvalidRootDirectory, dir)
	}
	clean := filepath.ToSlash(filepath.Clean(dir))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%w: %q", kerrors.ErrInvalidRootDirectory, dir)
	}
	return nil
}

func logAudit(project *configs.Project, config *configs.Config, entry audit.Entry) {
	audit.Log(project.AuditLogPath(config), entry)
}
