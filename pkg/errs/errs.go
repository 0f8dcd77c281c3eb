package errs

import (
	"errors"
	"fmt"
)

var (
	ErrConfig = errors.New("invalid configuration")
	ErrIO     = errors.New("i/o failure")
	// ErrRender is reported by the drawing backend. It matches ErrIO as well.
	ErrRender = fmt.Errorf("render failure: %w", ErrIO)
)

type ConfigError struct {
	Field  string
	Reason string
}

func Config(field, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

// StageError names the pipeline step that failed.
type StageError struct {
	Stage string
	Kind  error
	Err   error
}

func Stage(stage string, kind, err error) *StageError {
	return &StageError{Stage: stage, Kind: kind, Err: err}
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Err)
}

func (e *StageError) Unwrap() []error { return []error{e.Kind, e.Err} }
