// This file manages the bundle root: timestamped run directories and
// the latest.txt pointer.
package artifact

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SaveTimestamped writes the bundle under root in a directory named
// after the current time, stamps the config with that name, and points
// latest.txt at it. It returns the bundle directory path.
func SaveTimestamped(root string, b *Bundle) (string, error) {
	name := time.Now().Format(timeLayout)
	b.Config.Timestamp = name

	dir := filepath.Join(root, name)
	if err := b.Save(dir); err != nil {
		return "", err
	}
	if err := WriteLatest(root, name); err != nil {
		return "", err
	}

	return dir, nil
}

// WriteLatest records name as the newest bundle directory in root's
// latest.txt.
func WriteLatest(root, name string) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("artifact: create bundle root: %w", err)
	}
	if err := os.WriteFile(filepath.Join(root, LatestFile), []byte(name+"\n"), 0o644); err != nil {
		return fmt.Errorf("artifact: write %s: %w", LatestFile, err)
	}

	return nil
}

// ResolveLatest returns the path of the bundle directory latest.txt
// points at. The directory itself is not checked; Load reports a stale
// pointer as ErrMissing.
func ResolveLatest(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, LatestFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: no %s under %s", ErrMissing, LatestFile, root)
	case err != nil:
		return "", fmt.Errorf("artifact: read %s: %w", LatestFile, err)
	}

	name := strings.TrimSpace(string(data))
	if name == "" {
		return "", fmt.Errorf("%w: empty %s", ErrCorrupt, LatestFile)
	}

	return filepath.Join(root, name), nil
}
