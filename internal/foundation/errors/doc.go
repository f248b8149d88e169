// Package errors classifies the failures docscaffold can stop on.
//
// Every fatal failure carries a Category which decides the process exit code,
// plus a few string fields (usually "path") that end up in the user message
// and in the structured log line. Page-level failures are plain sentinel
// errors owned by the packages that produce them and never reach this package.
//
//	err := errors.Wrap(cause, errors.CategoryFileSystem, "failed to write index").
//		With("path", indexPath).
//		Build()
package errors
