package domain

import "fmt"

// MalformedRoleRowError indicates a roles-file row that could not be
// validated into a catalog entry.
type MalformedRoleRowError struct {
	Message string
}

func (e *MalformedRoleRowError) Error() string { return e.Message }

// DuplicateRoleError indicates the same role name appearing twice in the
// catalog with conflicting license flags.
type DuplicateRoleError struct {
	Message string
}

func (e *DuplicateRoleError) Error() string { return e.Message }

// UnknownRoleError indicates a role referenced by a user but absent from
// the catalog. Resolution must abort rather than default to "no license".
type UnknownRoleError struct {
	Role string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("role %q is not present in the roles catalog", e.Role)
}

// InputFileError indicates an input workbook that is missing, unreadable,
// or of the wrong shape.
type InputFileError struct {
	Path string
	Err  error
}

func (e *InputFileError) Error() string {
	return fmt.Sprintf("input file %s: %v", e.Path, e.Err)
}

func (e *InputFileError) Unwrap() error { return e.Err }

// InternalError indicates a broken pipeline invariant, e.g. member counts
// not summing to the extracted user count.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return e.Message }

// ErrMalformedRoleRow creates a MalformedRoleRowError with a formatted message.
func ErrMalformedRoleRow(format string, args ...interface{}) *MalformedRoleRowError {
	return &MalformedRoleRowError{Message: fmt.Sprintf(format, args...)}
}

// ErrDuplicateRole creates a DuplicateRoleError with a formatted message.
func ErrDuplicateRole(format string, args ...interface{}) *DuplicateRoleError {
	return &DuplicateRoleError{Message: fmt.Sprintf(format, args...)}
}

// ErrUnknownRole creates an UnknownRoleError for the given role name.
func ErrUnknownRole(role string) *UnknownRoleError {
	return &UnknownRoleError{Role: role}
}

// ErrInputFile creates an InputFileError wrapping the underlying cause.
func ErrInputFile(path string, err error) *InputFileError {
	return &InputFileError{Path: path, Err: err}
}

// ErrInternal creates an InternalError with a formatted message.
func ErrInternal(format string, args ...interface{}) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}
