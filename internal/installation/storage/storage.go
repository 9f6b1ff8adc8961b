package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/planforge/cli/internal/condition"
	"github.com/planforge/cli/internal/constants"
)

var _appDataPathInTest string

// AppDataPath returns the directory at which the tool stores its internal
// data (config db, logs). Override with the config dir env var.
func AppDataPath() (string, error) {
	if localPath, envSet := os.LookupEnv(constants.ConfigEnvVarName); envSet {
		return AppDataPathWithParent(localPath)
	}

	if condition.InTest() {
		localPath, err := appDataPathInTest()
		if err != nil {
			// panic as this can only happen in tests
			panic(err)
		}
		return localPath, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		// Account for HOME not being set, common in minimal docker envs
		return AppDataPathWithParent(filepath.Dir(os.Args[0]))
	}

	return filepath.Join(dir, constants.LibraryName), nil
}

// AppDataPathWithParent returns the app data path nested under the given
// parent directory.
func AppDataPathWithParent(parentDir string) (string, error) {
	return filepath.Join(parentDir, constants.LibraryName), nil
}

func appDataPathInTest() (string, error) {
	if _appDataPathInTest != "" {
		return _appDataPathInTest, nil
	}

	// Unique per test process, so parallel test runs don't collide
	localPath, err := os.MkdirTemp("", "planforge-config-test")
	if err != nil {
		return "", fmt.Errorf("could not create temp dir: %w", err)
	}

	_appDataPathInTest = localPath

	return localPath, nil
}
