// Package errors provides standardized error types and helpers for the Transformar codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrArchiveMalformed indicates the input container could not be opened.
	ErrArchiveMalformed = errors.New("archive malformed")
	// ErrEntryCorrupt indicates a single archive entry failed to parse.
	ErrEntryCorrupt = errors.New("entry corrupt")
	// ErrIdentifierCollision indicates generated pack identifiers were not distinct.
	ErrIdentifierCollision = errors.New("identifier collision")
	// ErrOutputIO indicates a write failure under the output directory.
	ErrOutputIO = errors.New("output io error")
	// ErrUnsupported indicates an unsupported construct or format.
	ErrUnsupported = errors.New("unsupported")
	// ErrInvalidInput indicates invalid input or validation failure.
	ErrInvalidInput = errors.New("invalid input")
)

// Stage identifies the pipeline stage an error was raised in.
type Stage string

// Pipeline stage tags carried on fatal errors.
const (
	StageRead     Stage = "read"
	StageIndex    Stage = "index"
	StageSynth    Stage = "synth"
	StageLower    Stage = "lower"
	StageAssemble Stage = "assemble"
	StagePack     Stage = "pack"
)

// StageError represents a fatal pipeline failure tagged with the stage it occurred in.
type StageError struct {
	Stage   Stage  // Pipeline stage (read, index, synth, lower, assemble, pack)
	Message string // Human-readable message for the caller to render
	Err     error  // Underlying error, if any
}

func (e *StageError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Stage, e.Message)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a StageError wrapping err.
func NewStageError(stage Stage, err error, message string) *StageError {
	return &StageError{Stage: stage, Message: message, Err: err}
}

// ArchiveError represents a failure to open or read the input container.
type ArchiveError struct {
	Path string // Archive path
	Err  error  // Underlying error, if any
}

func (e *ArchiveError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cannot open archive %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot open archive: %v", e.Err)
}

func (e *ArchiveError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrArchiveMalformed
}

// Is reports whether this error matches ErrArchiveMalformed.
func (e *ArchiveError) Is(target error) bool {
	return target == ErrArchiveMalformed
}

// EntryError represents a single corrupt archive entry. Entries failing with
// this error are logged once, counted, and skipped; they never abort a run.
type EntryError struct {
	Entry string // Path of the entry inside the archive
	Kind  string // Entry kind being parsed (e.g. "classfile", "recipe", "texture")
	Err   error  // Underlying error, if any
}

func (e *EntryError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("corrupt %s entry %s: %v", e.Kind, e.Entry, e.Err)
	}
	return fmt.Sprintf("corrupt entry %s: %v", e.Entry, e.Err)
}

func (e *EntryError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrEntryCorrupt
}

// Is reports whether this error matches ErrEntryCorrupt.
func (e *EntryError) Is(target error) bool {
	return target == ErrEntryCorrupt
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string // Field name that failed validation
	Value   string // Value that failed validation (may be redacted)
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// WrapOutputIO wraps a write failure so it matches both ErrOutputIO and the
// underlying error.
func WrapOutputIO(err error, path string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("write %s: %w: %w", path, ErrOutputIO, err)
}

// Is wraps errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As from the standard library.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New wraps errors.New from the standard library.
func New(text string) error {
	return errors.New(text)
}
