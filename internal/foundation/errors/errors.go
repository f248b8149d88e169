package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
)

// Category groups failures by what the user has to fix.
type Category string

const (
	CategoryConfig     Category = "config"
	CategoryValidation Category = "validation"
	CategoryNotFound   Category = "not_found"
	CategoryFileSystem Category = "filesystem"
	CategoryInternal   Category = "internal"
)

var exitCodes = map[Category]int{
	CategoryValidation: 2,
	CategoryConfig:     7,
	CategoryNotFound:   7,
	CategoryInternal:   10,
	CategoryFileSystem: 11,
}

// ExitCode is the process status used when a run stops on this category.
func (c Category) ExitCode() int {
	if code, ok := exitCodes[c]; ok {
		return code
	}
	return 1
}

// Error is a categorized failure with optional structured fields.
type Error struct {
	Category Category
	Message  string
	Err      error
	Fields   map[string]any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error with the same category and message.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && e.Category == other.Category && e.Message == other.Message
}

// Field returns the string value stored under key, or "".
func (e *Error) Field(key string) string {
	s, _ := e.Fields[key].(string)
	return s
}

// With returns a copy of e carrying an extra field.
func (e *Error) With(key string, value any) *Error {
	cp := *e
	cp.Fields = make(map[string]any, len(e.Fields)+1)
	maps.Copy(cp.Fields, e.Fields)
	cp.Fields[key] = value
	return &cp
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HasCategory reports whether err's chain holds an *Error of category c.
func HasCategory(err error, c Category) bool {
	e, ok := As(err)
	return ok && e.Category == c
}
