// Package lokit exposes the LibreOfficeKit document conversion and rendering
// engine through a safe Go API. The package owns the handle lifecycle and
// error translation across the FFI boundary; all cgo lives in
// internal/bindings, so this package compiles without cgo and reports
// ErrNotBuilt at runtime when the native library is unavailable.
//
// The native library supports a single live instance per process and is not
// reentrant. One Office wraps that instance; every native call on the Office
// or its Documents is serialized internally. Documents must be closed before
// their Office.
package lokit
