package util

import (
	"path/filepath"
	"strings"
)

// FileStem returns the file name without directory or extension. Report
// files are named after the portfolio file they were built from.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputFolder picks the folder report files go to: the override when one
// was given, otherwise the portfolio file's own directory.
func OutputFolder(portfolioPath, override string) string {
	if override != "" {
		return override
	}
	return filepath.Dir(portfolioPath)
}
