package secrets

import (
	"errors"
	"path"
	"path/filepath"

	kerrors "github.com/trick-cli/trick/internal/errors"
)

// ArtifactExt is appended to a tracked file's path to name its artifact.
const ArtifactExt = ".enc"

// FileResult pairs a tracked file with its artifact. Both are
// project-relative slash paths.
type FileResult struct {
	Source   string `json:"source"`
	Artifact string `json:"artifact"`
}

// Progress is called once for each file a batch completes.
type Progress func(FileResult)

// Store is the encrypted store of one project.
type Store struct {
	// ProjectPath is the absolute project root.
	ProjectPath string
	// Dir is the store directory relative to ProjectPath.
	Dir string
}

// NewStore returns the store rooted at dir inside projectPath.
func NewStore(projectPath, dir string) *Store {
	return &Store{ProjectPath: projectPath, Dir: dir}
}

// ArtifactPath returns the project-relative artifact path for a tracked file.
func (s *Store) ArtifactPath(file string) string {
	return path.Join(filepath.ToSlash(s.Dir), file) + ArtifactExt
}

func (s *Store) abs(rel string) string {
	return filepath.Join(s.ProjectPath, filepath.FromSlash(rel))
}

// EncryptFiles encrypts files in order and stops at the first failure.
func (s *Store) EncryptFiles(files []string, passphrase string, iterations int, progress Progress) ([]FileResult, error) {
	done := make([]FileResult, 0, len(files))
	for _, file := range files {
		result := FileResult{Source: file, Artifact: s.ArtifactPath(file)}

		if err := EncryptFile(s.abs(result.Source), s.abs(result.Artifact), passphrase, iterations); err != nil {
			var encryptErr *kerrors.EncryptError
			if errors.As(err, &encryptErr) {
				encryptErr.Path = result.Source
			}
			return done, err
		}

		done = append(done, result)
		if progress != nil {
			progress(result)
		}
	}
	return done, nil
}

// DecryptFiles restores files in order and stops at the first failure.
func (s *Store) DecryptFiles(files []string, passphrase string, iterations int, progress Progress) ([]FileResult, error) {
	done := make([]FileResult, 0, len(files))
	for _, file := range files {
		result := FileResult{Source: file, Artifact: s.ArtifactPath(file)}

		if err := DecryptFile(s.abs(result.Source), s.abs(result.Artifact), passphrase, iterations); err != nil {
			var decryptErr *kerrors.DecryptError
			if errors.As(err, &decryptErr) {
				decryptErr.Path = result.Artifact
			}
			return done, err
		}

		done = append(done, result)
		if progress != nil {
			progress(result)
		}
	}
	return done, nil
}
