package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	CREDENTIALS = "credentials.json"
	TOKENS      = "token.json"
	DOTENV      = ".env"

	ENV_CREDENTIALS = "SHEETS_BRIDGE_CREDENTIALS"
	ENV_TOKENS      = "SHEETS_BRIDGE_TOKENS"
	ENV_DIR         = "SHEETS_BRIDGE_DIR"
)

type config struct {
	credentials string
	tokens      string
	dir         string
}

// loadConfig resolves the default file locations. Everything lives beside the executable
// unless overridden by the environment or by a .env file beside the executable.
func loadConfig() (*config, error) {
	home, err := executableDir()
	if err != nil {
		return nil, err
	}

	return loadConfigFrom(home)
}

func loadConfigFrom(home string) (*config, error) {
	if err := godotenv.Load(filepath.Join(home, DOTENV)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading %v (%w)", filepath.Join(home, DOTENV), err)
	}

	return &config{
		credentials: getEnv(ENV_CREDENTIALS, filepath.Join(home, CREDENTIALS)),
		tokens:      getEnv(ENV_TOKENS, filepath.Join(home, TOKENS)),
		dir:         getEnv(ENV_DIR, home),
	}, nil
}

func executableDir() (string, error) {
	executable, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("unable to locate executable (%w)", err)
	}

	if resolved, err := filepath.EvalSymlinks(executable); err == nil {
		executable = resolved
	}

	return filepath.Dir(executable), nil
}

func getEnv(key, defval string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return defval
}
