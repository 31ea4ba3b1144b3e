package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	kerrors "github.com/trick-cli/trick/internal/errors"
)

// ResolveFiles turns command-line file arguments into project-relative slash
// paths. Arguments are relative to cwd. Glob arguments (doublestar syntax,
// so config/**/*.pem works) must match at least one regular file and never
// match inside the store directory. Literal arguments are kept even when
// the file does not exist yet. Duplicates are dropped, first one wins.
func ResolveFiles(args []string, cwd, projectPath, storeDir string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, arg := range args {
		matches, err := resolveArg(arg, cwd, projectPath, storeDir)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			rel, err := projectRelative(match, projectPath)
			if err != nil {
				return nil, err
			}
			if !seen[rel] {
				seen[rel] = true
				files = append(files, rel)
			}
		}
	}

	return files, nil
}

func resolveArg(arg, cwd, projectPath, storeDir string) ([]string, error) {
	pattern := arg
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(cwd, pattern)
	}

	if !isGlob(arg) {
		return []string{filepath.Clean(pattern)}, nil
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, err)
	}

	store := filepath.Join(projectPath, filepath.FromSlash(storeDir))

	var filtered []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if isWithin(m, store) {
			continue
		}
		filtered = append(filtered, m)
	}

	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrNoFilesFound, arg)
	}
	return filtered, nil
}

func isGlob(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

func projectRelative(path, projectPath string) (string, error) {
	rel, err := filepath.Rel(projectPath, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", kerrors.ErrFileOutsideProject, path)
	}
	return filepath.ToSlash(rel), nil
}

func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
