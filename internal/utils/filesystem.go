package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindProjectRoot traverses up from start looking for any of the marker entries.
// Returns the first directory that contains a marker, or an empty string if the
// filesystem root is reached without finding one.
func FindProjectRoot(start string, markers []string) (string, error) {
	currentDir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	for {
		for _, marker := range markers {
			_, err := os.Stat(filepath.Join(currentDir, marker))
			// No error means the path exists
			if err == nil {
				return currentDir, nil
			}
			if !os.IsNotExist(err) {
				// Return any error that's not "file not found" (like permission issues)
				return "", fmt.Errorf("error checking for %s at %s: %w", marker, currentDir, err)
			}
		}

		parentDir := filepath.Dir(currentDir)

		// Reached the filesystem root without finding a marker
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}

// WriteFileAtomic writes data to a temporary file in the destination directory
// and renames it over path, so readers never observe a partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
