package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lakshaymaurya-felt/pccare/internal/config"
)

// IsProtected reports whether path is, or sits above, an entry of the
// never-delete list. Comparison is case-insensitive as on NTFS.
func IsProtected(path string) bool {
	clean := strings.ToLower(filepath.Clean(path))
	for _, p := range config.GetNeverDeletePaths() {
		protected := strings.ToLower(filepath.Clean(p))
		if clean == protected {
			return true
		}
		// Deleting a parent would take the protected path with it.
		if strings.HasPrefix(protected, strings.TrimRight(clean, `\/`)+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// SafeDelete removes a file or directory tree and returns the number of
// bytes freed. Protected paths are refused. In dryRun mode only the size
// is computed.
func SafeDelete(path string, dryRun bool) (int64, error) {
	if strings.TrimSpace(path) == "" {
		return 0, fmt.Errorf("empty path: %w", ErrNotFound)
	}
	path = filepath.Clean(path)

	if IsProtected(path) {
		return 0, fmt.Errorf("refusing to delete %s: %w", path, ErrProtected)
	}

	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}

	size := info.Size()
	if info.IsDir() {
		size = DirSize(path)
	}
	if dryRun {
		return size, nil
	}

	if err := os.RemoveAll(path); err != nil {
		return 0, fmt.Errorf("remove %s: %w", path, err)
	}
	return size, nil
}

// RemoveFile deletes a single regular file and returns its size.
// Directories are rejected; use SafeDelete for trees.
func RemoveFile(path string) (int64, error) {
	path = filepath.Clean(path)
	if IsProtected(path) {
		return 0, fmt.Errorf("refusing to delete %s: %w", path, ErrProtected)
	}

	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", path)
	}

	if err := os.Remove(path); err != nil {
		return 0, fmt.Errorf("remove %s: %w", path, err)
	}
	return info.Size(), nil
}

// DirSize sums the sizes of regular files below root. Unreadable entries
// are skipped. Symlinks are not followed.
func DirSize(root string) int64 {
	var total int64
	_ = filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			if info, infoErr := d.Info(); infoErr == nil {
				total += info.Size()
			}
		}
		return nil
	})
	return total
}

// Exists reports whether path can be stat'ed.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
