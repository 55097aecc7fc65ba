package clean

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lakshaymaurya-felt/pccare/internal/config"
	"github.com/lakshaymaurya-felt/pccare/internal/core"
)

// Failure records one path that could not be removed.
type Failure struct {
	Path string
	Err  error
}

// Result summarizes a cleanup pass.
type Result struct {
	Freed    int64
	Removed  int
	Failures []Failure
}

// Skipped is the number of paths left behind.
func (r Result) Skipped() int {
	return len(r.Failures)
}

// CleanDirs empties each directory in dirs, bottom-up, without removing
// the directories themselves. Files in use or without permission are
// recorded as failures and the pass continues. Missing directories,
// protected paths and directories inside protected trees are skipped.
func CleanDirs(dirs []string, logger *slog.Logger) Result {
	var res Result
	for _, dir := range dirs {
		if core.IsProtected(dir) {
			logger.Warn("skipping protected directory", "dir", dir)
			continue
		}
		if err := config.CheckTempDir(dir); err != nil {
			logger.Warn("skipping protected directory", "dir", dir, "error", err)
			continue
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			logger.Debug("temp directory not present", "dir", dir)
			continue
		}
		logger.Debug("cleaning temp directory", "dir", dir)
		emptyDir(dir, &res, logger)
	}
	return res
}

// emptyDir removes everything below dir and reports whether dir ended up empty.
func emptyDir(dir string, res *Result, logger *slog.Logger) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		res.Failures = append(res.Failures, Failure{Path: dir, Err: err})
		return false
	}

	empty := true
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())

		// Real directories are emptied first. Symlinks and junctions are
		// removed as links and never followed.
		if e.IsDir() && e.Type()&fs.ModeSymlink == 0 {
			if !emptyDir(path, res, logger) {
				empty = false
				continue
			}
			if err := os.Remove(path); err != nil {
				res.Failures = append(res.Failures, Failure{Path: path, Err: err})
				empty = false
				continue
			}
			res.Removed++
			continue
		}

		var size int64
		if info, infoErr := e.Info(); infoErr == nil && info.Mode().IsRegular() {
			size = info.Size()
		}
		if err := os.Remove(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			logger.Debug("cannot remove", "path", path, "error", err)
			res.Failures = append(res.Failures, Failure{Path: path, Err: err})
			empty = false
			continue
		}
		res.Freed += size
		res.Removed++
	}
	return empty
}
