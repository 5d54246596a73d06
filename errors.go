package profilecard

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedStyle = errors.New("unsupported style")
	ErrEmptyText        = errors.New("ascii text cannot be empty")
)

// SectionError reports a section that failed to render.
type SectionError struct {
	Section Section
	Err     error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("render section %s: %v", e.Section, e.Err)
}

func (e *SectionError) Unwrap() error { return e.Err }
