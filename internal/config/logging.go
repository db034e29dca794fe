package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// OpenLogFile creates a timestamped log file under dir and prunes older
// files beyond keep. Returns the file handle (caller must close).
func OpenLogFile(dir string, keep int) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	name := filepath.Join(dir, fmt.Sprintf("maestria-%s.log",
		time.Now().Format("2006-01-02T15-04-05")))

	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	if err := pruneOldLogs(dir, keep); err != nil {
		// Pruning failure must not break logging
		fmt.Fprintf(os.Stderr, "warning: failed to prune old logs: %v\n", err)
	}

	return f, nil
}

// pruneOldLogs removes the oldest log files when the count exceeds keep.
// The timestamped naming makes lexical order chronological.
func pruneOldLogs(dir string, keep int) error {
	files, err := filepath.Glob(filepath.Join(dir, "maestria-*.log"))
	if err != nil {
		return err
	}
	if len(files) <= keep {
		return nil
	}

	sort.Strings(files)
	for _, f := range files[:len(files)-keep] {
		if err := os.Remove(f); err != nil {
			return fmt.Errorf("remove %s: %w", f, err)
		}
	}
	return nil
}
