package data

import (
	"fmt"
	"strings"
)

// DataLoadError is the base failure kind for content loading.
// Path is the content file (or document key) being processed; Detail is
// free-form context for the log line.
type DataLoadError struct {
	Path   string
	Detail string
	Err    error
}

func (e *DataLoadError) Error() string {
	msg := "data load failed"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// ValidationError carries the full error and warning lists produced while
// validating a single template entry. It is returned only when the entry is
// rejected (hard errors present), never for warnings alone.
type ValidationError struct {
	Path     string
	ID       string
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %q (%s): %s",
		e.ID, e.Path, strings.Join(e.Errors, "; "))
}

// MissingDataError is returned by strict registry lookups.
type MissingDataError struct {
	DataType string
	DataID   string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("no %s registered with id %q", e.DataType, e.DataID)
}

// FileLoadError reports a transport-level fetch failure.
// StatusCode is 0 when the source has no status concept (filesystem).
type FileLoadError struct {
	Path       string
	StatusCode int
	Err        error
}

func (e *FileLoadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: status %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.Path, e.Err)
}

func (e *FileLoadError) Unwrap() error { return e.Err }

// ParseError reports a payload that fetched fine but is not valid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
