package errors

// Builder assembles an *Error fluently.
type Builder struct {
	err Error
}

// New starts an error of category c.
func New(c Category, message string) *Builder {
	return &Builder{err: Error{Category: c, Message: message}}
}

// Wrap starts an error of category c caused by err.
func Wrap(err error, c Category, message string) *Builder {
	b := New(c, message)
	b.err.Err = err
	return b
}

// Validation starts a validation error.
func Validation(message string) *Builder { return New(CategoryValidation, message) }

// NotFound starts a missing-resource error.
func NotFound(message string) *Builder { return New(CategoryNotFound, message) }

// With attaches a structured field.
func (b *Builder) With(key string, value any) *Builder {
	if b.err.Fields == nil {
		b.err.Fields = make(map[string]any)
	}
	b.err.Fields[key] = value
	return b
}

// Build returns the assembled error. The builder must not be reused.
func (b *Builder) Build() *Error {
	e := b.err
	return &e
}
