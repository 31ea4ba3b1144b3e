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

// Store saves passphrase for target where Resolve will find it and returns
// the path written. In directory mode each target gets its own 0600 file;
// in file mode the JSON map is updated in place.
func (r *Resolver) Store(config *configs.Config, target, passphrase string) (string, error) {
	if !utils.IsValidTargetName(target) {
		return "", fmt.Errorf("%w: %q", kerrors.ErrInvalidTargetName, target)
	}

	passphrase = strings.TrimSpace(passphrase)
	if passphrase == "" {
		return "", kerrors.ErrEmptyPassphrase
	}

	path, source, err := r.Location(config, target)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", fmt.Errorf("failed to create passphrase directory: %w", err)
	}

	var data []byte
	if source == SourceFile {
		passphrases, err := readMap(path)
		if err != nil && !isFileNotFound(err) {
			return "", err
		}
		if passphrases == nil {
			passphrases = map[string]string{}
		}
		passphrases[target] = passphrase

		data, err = json.MarshalIndent(passphrases, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode passphrase file: %w", err)
		}
		data = append(data, '\n')
	} else {
		data = []byte(passphrase + "\n")
	}

	if err := utils.WriteFileAtomic(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write passphrase file %s: %w", path, err)
	}
	return path, nil
}

func isFileNotFound(err error) bool {
	var notFound *kerrors.PassphraseFileNotFoundError
	return errors.As(err, &notFound)
}
