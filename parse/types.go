package parse

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is matched by every *MalformedInputError.
var ErrMalformedInput = errors.New("parse: malformed input")

// MalformedInputError locates a fault in the input. Line is 1-based; 0
// means the fault is not tied to a single line (e.g. an unknown neighbor
// detected once every site is known).
type MalformedInputError struct {
	Line   int
	Text   string
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse: %s", e.Reason)
	}

	return fmt.Sprintf("parse: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Is lets errors.Is(err, ErrMalformedInput) match any MalformedInputError.
func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }

// Unwrap exposes the underlying cause, if any.
func (e *MalformedInputError) Unwrap() error { return e.Err }

// Option configures the line parser.
type Option func(*options)

type options struct {
	strict bool
}

// WithStrict requires every tunnel to be listed from both ends instead of
// mirroring it; a one-way tunnel fails with core.ErrOneWayTunnel.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// document is the YAML schema.
type document struct {
	Sites []siteDoc `yaml:"sites"`
}

type siteDoc struct {
	ID        string   `yaml:"id"`
	Value     int      `yaml:"value"`
	Neighbors []string `yaml:"neighbors"`
}
