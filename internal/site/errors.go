package site

import "fmt"

// ErrorKind classifies a generation failure.
type ErrorKind string

const (
	KindDirectoryCreate ErrorKind = "directory_create_failed"
	KindRender          ErrorKind = "render_failed"
	KindSanitize        ErrorKind = "sanitize_failed"
	KindAssetWrite      ErrorKind = "asset_write_failed"
)

// GenerationError reports which stage of a run failed. The output directory
// may be incomplete when one is returned.
type GenerationError struct {
	Kind ErrorKind
	Path string // affected file or directory, empty for in-memory stages
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s (%s): %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
