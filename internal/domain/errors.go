package domain

import (
	"errors"
	"fmt"
)

// ConfigError reports a missing or malformed environment setting.
// Hint tells the operator how to fix it.
type ConfigError struct {
	Key  string
	Hint string
	Err  error
}

func (e ConfigError) Error() string {
	switch {
	case e.Hint != "":
		return e.Hint
	case e.Key != "":
		return fmt.Sprintf("missing configuration %s", e.Key)
	default:
		return "invalid configuration"
	}
}

func (e ConfigError) Unwrap() error { return e.Err }

// QueryError wraps failures talking to the SQL service: connect, auth, execute, scan.
type QueryError struct {
	Op  string
	Err error
}

func (e QueryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("query %s failed", e.Op)
	}
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("query %s: %v", e.Op, e.Err)
}

func (e QueryError) Unwrap() error { return e.Err }

// SchemaError means the result set does not have the shape the report needs.
type SchemaError struct {
	Missing []string
	Msg     string
}

func (e SchemaError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if len(e.Missing) > 0 {
		return fmt.Sprintf("result set is missing columns %v", e.Missing)
	}
	return "unexpected result set shape"
}

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsConfig(err error) bool {
	var target ConfigError
	return errors.As(err, &target)
}

func IsQuery(err error) bool {
	var target QueryError
	return errors.As(err, &target)
}

func IsSchema(err error) bool {
	var target SchemaError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
