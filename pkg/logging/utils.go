/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Log file retention for the Chomsky classifier. Every run that logs to a
directory creates a new timestamped file; PruneLogs keeps only the most recent ones.
*/

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LogFilePattern matches the files created by NewLogger
const LogFilePattern = "chomsky-classifier_*.log"

// PruneLogs removes the oldest classifier log files in dir so that at most keep remain.
// A keep of zero or less disables pruning.
func PruneLogs(dir string, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, LogFilePattern))
	if err != nil {
		return 0, fmt.Errorf("failed to glob log files: %w", err)
	}
	if len(files) <= keep {
		return 0, nil
	}

	type logFile struct {
		path string
		mod  int64
	}
	entries := make([]logFile, 0, len(files))
	for _, f := range files {
		stat, err := os.Stat(f)
		if err != nil {
			continue
		}
		entries = append(entries, logFile{path: f, mod: stat.ModTime().UnixNano()})
	}

	// Oldest first; names carry the timestamp so they break ties.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].mod != entries[j].mod {
			return entries[i].mod < entries[j].mod
		}
		return entries[i].path < entries[j].path
	})

	removed := 0
	for i := 0; i < len(entries)-keep; i++ {
		if err := os.Remove(entries[i].path); err != nil {
			return removed, fmt.Errorf("failed to remove file %s: %w", entries[i].path, err)
		}
		removed++
	}
	return removed, nil
}
