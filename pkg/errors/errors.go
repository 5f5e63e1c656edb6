package errors

import (
	"errors"
	"fmt"
)

type ResourceNotFoundError struct {
	Kind string
	ID   string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func NewJobNotFoundError(id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Kind: "job", ID: id}
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// InvalidConfigurationError is returned when a configuration value is out of range.
type InvalidConfigurationError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Field, e.Reason)
}

func NewInvalidConfigurationError(field, reason string) *InvalidConfigurationError {
	return &InvalidConfigurationError{Field: field, Reason: reason}
}

func IsInvalidConfigurationError(err error) bool {
	var e *InvalidConfigurationError
	return errors.As(err, &e)
}

// TaskPanicError carries the value recovered from a panicking step function.
type TaskPanicError struct {
	Value any
}

func (e *TaskPanicError) Error() string {
	return fmt.Sprintf("task panicked: %v", e.Value)
}

func NewTaskPanicError(v any) *TaskPanicError {
	return &TaskPanicError{Value: v}
}

func IsTaskPanicError(err error) bool {
	var e *TaskPanicError
	return errors.As(err, &e)
}
