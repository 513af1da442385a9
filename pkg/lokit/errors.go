package lokit

import (
	"errors"
	"fmt"

	"github.com/lokit-go/lokit/internal/bindings"
)

var (
	// ErrOfficeInUse reports that another Office instance is live in this
	// process. The native library cannot be initialized twice.
	ErrOfficeInUse = errors.New("lokit: an office instance is already live in this process")

	// ErrOfficeClosed reports an operation on a released Office.
	ErrOfficeClosed = errors.New("lokit: office has been closed")

	// ErrDocumentClosed reports an operation on a released Document.
	ErrDocumentClosed = errors.New("lokit: document has been closed")

	// ErrDocumentsOpen reports an attempt to close an Office while Documents
	// derived from it are still live.
	ErrDocumentsOpen = errors.New("lokit: documents derived from this office are still open")

	// ErrFeatureNotEnabled reports use of an operation whose optional feature
	// bit was never registered on the Office.
	ErrFeatureNotEnabled = errors.New("lokit: required optional feature not registered")

	// ErrNotBuilt mirrors the bindings sentinel for binaries compiled without
	// the native bindings.
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrCGONotEnabled mirrors the bindings sentinel for cgo-less builds.
	ErrCGONotEnabled = bindings.ErrCGONotEnabled
)

// reason renders the native diagnostic text or the wrapped error for an
// operation failure. The native library occasionally fails without setting
// its error channel; that case is reported as such rather than invented.
func reason(msg string, err error) string {
	switch {
	case msg != "":
		return msg
	case err != nil:
		return err.Error()
	default:
		return "native call failed without diagnostic"
	}
}

// InitError reports a failed library initialization. Fatal for this
// process's use of the library; there is no automatic reinitialization.
type InitError struct {
	Path string // installation path passed to New
	Msg  string // native/loader diagnostic, if any
	Err  error  // wrapped sentinel or loader error, if any
}

func (e *InitError) Error() string {
	return fmt.Sprintf("lokit: initialize office at %s: %s", e.Path, reason(e.Msg, e.Err))
}

func (e *InitError) Unwrap() error { return e.Err }

// LoadError reports a failed document load. The Office remains usable for
// further loads.
type LoadError struct {
	URL string
	Msg string // native last-error text, fetched immediately after the call
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("lokit: load document %s: %s", e.URL, reason(e.Msg, e.Err))
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a failed document export.
type SaveError struct {
	Path   string
	Format string
	Msg    string
	Err    error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("lokit: save document as %s (%s): %s", e.Path, e.Format, reason(e.Msg, e.Err))
}

func (e *SaveError) Unwrap() error { return e.Err }

// RenderError reports a failed rendering call.
type RenderError struct {
	Op  string
	Msg string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("lokit: render (%s): %s", e.Op, reason(e.Msg, e.Err))
}

func (e *RenderError) Unwrap() error { return e.Err }
