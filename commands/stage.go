package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/twystd/sheets-bridge/regions"
)

// writable checks that a file can be opened for writing. Replaced in tests.
var writable = func(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	return f.Close()
}

// stage picks the local path for a downloaded audio file. If the sanitized name is locked
// (e.g. open in an audio editor) the file is saved alongside it with a timestamp suffix.
func stage(dir string, filename string, now time.Time) (string, error) {
	name := regions.Sanitize(filename)
	if name == "" {
		return "", fmt.Errorf("invalid audio file name '%v'", filename)
	}

	if err := os.MkdirAll(dir, 0770); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)

	if err := writable(path); err != nil {
		if !locked(err) {
			return "", err
		}

		path = filepath.Join(dir, regions.Timestamped(name, now.Unix()))
	}

	return path, nil
}
