package silhouette

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned by UpdateField for a field kind it does not know.
var ErrUnknownField = errors.New("unknown geometry field")

// LoadError reports a silhouette image that could not be decoded or is empty.
// The session state is left untouched.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to load silhouette: %v", e.Err)
	}
	return fmt.Sprintf("failed to load silhouette %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a failed mask write.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save obstruction %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// ExportError reports a failed vector trace. Output holds whatever the
// tracing tool printed.
type ExportError struct {
	Path   string
	Output string
	Err    error
}

func (e *ExportError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("failed to export %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to export %s: %v: %s", e.Path, e.Err, e.Output)
}

func (e *ExportError) Unwrap() error { return e.Err }

// ConfigError reports an unreadable or invalid config file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

var (
	errEmptyImage = errors.New("image has zero size")
	errNilImage   = errors.New("no image")
)
