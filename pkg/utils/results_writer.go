/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: results_writer.go
Description: Utility for saving classification and comparison results as timestamped
JSON files, one subdirectory per result kind.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteResult writes result to <dir>/<kind>/<timestamp>_<kind>.json and returns the path
func WriteResult(dir, kind string, result interface{}) (string, error) {
	if kind == "" {
		return "", fmt.Errorf("result kind is required")
	}

	resultDir := filepath.Join(dir, kind)
	if err := os.MkdirAll(resultDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}

	// e.g. 2025-06-11_01-30-00.123_classify.json
	timestamp := time.Now().Format("2006-01-02_15-04-05.000")
	filePath := filepath.Join(resultDir, fmt.Sprintf("%s_%s.json", timestamp, kind))

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write result file: %w", err)
	}
	return filePath, nil
}
