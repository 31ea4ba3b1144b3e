package configs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	kerrors "github.com/trick-cli/trick/internal/errors"
)

// LockTimeout bounds how long Update waits for another trick process.
var LockTimeout = 10 * time.Second

// lockPath keeps lock files out of the project tree so they never show up in
// version control. The name is derived from the absolute config path.
func lockPath(configPath string) string {
	abs, err := filepath.Abs(configPath)
	if err != nil {
		abs = configPath
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(os.TempDir(), "trick-"+hex.EncodeToString(sum[:8])+".lock")
}

func lockConfig(ctx context.Context, configPath string) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()

	fileLock := flock.New(lockPath(configPath))
	locked, err := fileLock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("%w: locking %s: %v", kerrors.ErrConfigWrite, configPath, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s is locked by another trick process", kerrors.ErrConfigWrite, configPath)
	}

	return func() {
		_ = fileLock.Unlock()
	}, nil
}
