package data

import (
	"errors"
	"fmt"
	"sync"
)

// Standard errors returned by the permission model.
var (
	// Boundary validation
	ErrInvalidArgument = errors.New("vperm: invalid argument")

	// Uniqueness violations
	ErrDuplicateMember = errors.New("vperm: duplicate group member")
	ErrDuplicateFile   = errors.New("vperm: duplicate file name")
	ErrAlreadyExists   = errors.New("vperm: entity already exists")

	// Lookup errors
	ErrNotFound = errors.New("vperm: not found")

	// Referential consistency
	ErrInconsistent = errors.New("vperm: inconsistent reference")

	// Command errors
	ErrUnknownCommand = errors.New("vperm: unknown command")
	ErrUsage          = errors.New("vperm: invalid usage")
)

func InvalidArgument(format string, args ...any) error {
	return wrap(ErrInvalidArgument, format, args...)
}

func DuplicateMember(group, user string) error {
	return wrap(ErrDuplicateMember, "user '%s' already member of group '%s'", user, group)
}

func DuplicateFile(directory, file string) error {
	return wrap(ErrDuplicateFile, "file '%s' already exists in directory '%s'", file, directory)
}

func AlreadyExists(kind, name string) error {
	return wrap(ErrAlreadyExists, "%s '%s'", kind, name)
}

func NotFound(kind, name string) error {
	return wrap(ErrNotFound, "%s '%s'", kind, name)
}

func Inconsistent(format string, args ...any) error {
	return wrap(ErrInconsistent, format, args...)
}

func UnknownCommand(name string) error {
	return wrap(ErrUnknownCommand, "'%s'", name)
}

func Usage(usage string) error {
	return wrap(ErrUsage, "usage: %s", usage)
}

func wrap(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
}

// Errors collects multiple errors, safe for concurrent use.
type Errors struct {
	mu     sync.RWMutex
	errors []error
}

func (e *Errors) Add(err error) {
	if err == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.errors = append(e.errors, err)
}

func (e *Errors) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.errors)
}

func (e *Errors) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.errors = make([]error, 0)
}

// Errors joins all collected errors, or returns nil if there are none.
func (e *Errors) Errors() error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.errors) == 0 {
		return nil
	}

	return errors.Join(e.errors...)
}
