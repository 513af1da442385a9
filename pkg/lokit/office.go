package lokit

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/lokit-go/lokit/internal/bindings"
	"github.com/lokit-go/lokit/pkg/lokit/logging"
	"github.com/lokit-go/lokit/pkg/lokit/urls"
)

// officeLive guards the process-wide single-instance contract. The native
// library cannot be safely reinitialized, so a second live Office is refused
// rather than risked.
var officeLive atomic.Bool

// EventHandler receives native library events: a type code (see the
// Callback* constants for the ones the wrapper names) and a payload string
// whose shape depends on the event.
type EventHandler func(event int, payload string)

// Office owns one initialized native library instance. All native calls
// touching the Office or its Documents are serialized on an internal mutex;
// the native library is not reentrant. Operations block for the duration of
// the native call and cannot be cancelled.
//
// At most one Office may be live per process. Close releases the native
// instance exactly once and only after every derived Document is closed.
type Office struct {
	mu     sync.Mutex
	handle unsafe.Pointer
	closed atomic.Bool

	liveDocs int
	features OptionalFeature
	cbHandle uintptr

	installPath string
	log         logging.Logger
}

// Option configures an Office during New.
type Option func(*Office)

// WithLogger routes the wrapper's lifecycle logging to l instead of the
// slog default.
func WithLogger(l logging.Logger) Option {
	return func(o *Office) {
		if l != nil {
			o.log = l
		}
	}
}

// New loads the native library from installPath (the installation's program
// directory, e.g. /usr/lib/libreoffice/program) and initializes the office
// instance. Fails with *InitError wrapping ErrOfficeInUse while another
// Office is live, or carrying the loader/native diagnostic otherwise.
func New(installPath string, opts ...Option) (*Office, error) {
	if !officeLive.CompareAndSwap(false, true) {
		return nil, &InitError{Path: installPath, Err: ErrOfficeInUse}
	}

	o := &Office{
		installPath: installPath,
		log:         logging.New(nil),
	}
	for _, opt := range opts {
		opt(o)
	}

	handle, err := bindings.OfficeNew(installPath)
	if err != nil {
		officeLive.Store(false)
		return nil, &InitError{Path: installPath, Err: err}
	}

	// Initialization failures can also surface on the error channel with a
	// non-nil instance.
	if msg := bindings.OfficeGetError(handle); msg != "" {
		bindings.OfficeDestroy(handle)
		officeLive.Store(false)
		return nil, &InitError{Path: installPath, Msg: msg}
	}

	o.handle = handle
	o.log.Debug(context.Background(), "office initialized", "install_path", installPath)
	return o, nil
}

// SetOptionalFeatures registers capability bits on the native instance.
// Idempotent per bit: already-registered bits are not sent again. Feature
// bits cannot be unregistered.
func (o *Office) SetOptionalFeatures(flags OptionalFeature) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed.Load() {
		return ErrOfficeClosed
	}

	next := o.features | flags
	if next != o.features {
		if o.handle != nil {
			bindings.OfficeSetOptionalFeatures(o.handle, uint64(next))
		}
		o.features = next
		o.log.Debug(context.Background(), "optional features registered", "features", next.String())
	}
	return nil
}

// Features returns the registered optional feature bits.
func (o *Office) Features() OptionalFeature {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.features
}

// DocumentLoad opens the document at url. The returned Document borrows
// this Office and must be closed before it.
func (o *Office) DocumentLoad(url urls.DocURL) (*Document, error) {
	return o.documentLoad(url, "", false)
}

// DocumentLoadWithOptions opens the document at url with import filter
// options, e.g. "Language=en-US" or "SkipImages". The options string is
// consumed by the load itself.
func (o *Office) DocumentLoadWithOptions(url urls.DocURL, options string) (*Document, error) {
	return o.documentLoad(url, options, true)
}

func (o *Office) documentLoad(url urls.DocURL, options string, withOptions bool) (*Document, error) {
	if url.IsZero() {
		return nil, &LoadError{URL: url.String(), Msg: "empty document URL"}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed.Load() || o.handle == nil {
		return nil, &LoadError{URL: url.String(), Err: ErrOfficeClosed}
	}
	if !bindings.Built() {
		return nil, &LoadError{URL: url.String(), Err: ErrNotBuilt}
	}

	var ptr unsafe.Pointer
	if withOptions {
		ptr = bindings.DocumentLoadWithOptions(o.handle, url.String(), options)
	} else {
		ptr = bindings.DocumentLoad(o.handle, url.String())
	}

	// The last-error text is overwritten by the next native call; fetch it
	// before anything else touches the instance.
	msg := bindings.OfficeGetError(o.handle)
	if ptr == nil || msg != "" {
		if ptr != nil {
			bindings.DocumentDestroy(ptr)
		}
		return nil, &LoadError{URL: url.String(), Msg: msg}
	}

	o.liveDocs++
	d := &Document{office: o, handle: ptr}
	runtime.SetFinalizer(d, func(doc *Document) { _ = doc.Close() })
	o.log.Debug(context.Background(), "document loaded", "url", url.String())
	return d, nil
}

// SetDocumentPassword supplies the password for a protected document in
// response to a CallbackDocumentPassword event. A nil password aborts the
// load (or continues read-only for the to-modify variant). Requires the
// matching optional feature to have been registered first.
//
// The native library delivers password callbacks on the thread executing
// the blocked load, so this method intentionally does not take the office
// mutex: the caller already holds exclusive native access by being inside
// the callback.
func (o *Office) SetDocumentPassword(url urls.DocURL, password *string) error {
	if o.closed.Load() {
		return ErrOfficeClosed
	}
	if o.features&(FeatureDocumentPassword|FeatureDocumentPasswordToModify) == 0 {
		return ErrFeatureNotEnabled
	}
	if o.handle == nil {
		return ErrOfficeClosed
	}

	bindings.OfficeSetDocumentPassword(o.handle, url.String(), password)
	if msg := bindings.OfficeGetError(o.handle); msg != "" {
		return &LoadError{URL: url.String(), Msg: msg}
	}
	return nil
}

// RegisterCallback installs handler as the event sink for the native
// instance, replacing any previous one. The handler runs on whatever thread
// the native library emits events from; it must not call back into the
// Office except for SetDocumentPassword.
func (o *Office) RegisterCallback(handler EventHandler) error {
	if handler == nil {
		return o.ClearCallback()
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed.Load() || o.handle == nil {
		return ErrOfficeClosed
	}
	if o.cbHandle != 0 {
		bindings.OfficeClearCallback(o.handle, o.cbHandle)
	}
	o.cbHandle = bindings.OfficeRegisterCallback(o.handle, bindings.Callback(handler))
	return nil
}

// ClearCallback removes the installed event sink, if any.
func (o *Office) ClearCallback() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed.Load() || o.handle == nil {
		return ErrOfficeClosed
	}
	if o.cbHandle != 0 {
		bindings.OfficeClearCallback(o.handle, o.cbHandle)
		o.cbHandle = 0
	}
	return nil
}

// LastError returns the native library's current diagnostic text, copied to
// owned memory. Empty string when there is none or the Office is closed.
func (o *Office) LastError() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed.Load() || o.handle == nil {
		return ""
	}
	return bindings.OfficeGetError(o.handle)
}

// LibraryVersion returns the native library's version JSON, or "" when the
// installed version does not report one.
func (o *Office) LibraryVersion() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed.Load() || o.handle == nil {
		return ""
	}
	return bindings.OfficeVersionInfo(o.handle)
}

// FilterTypes returns the native library's export filter description JSON,
// or "" when unavailable.
func (o *Office) FilterTypes() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed.Load() || o.handle == nil {
		return ""
	}
	return bindings.OfficeFilterTypes(o.handle)
}

// Close releases the native instance exactly once and frees the process
// slot for a future Office. Safe to call repeatedly; fails with
// ErrDocumentsOpen while Documents derived from this Office are live, in
// which case nothing is released and the Office stays usable.
func (o *Office) Close() error {
	if o == nil {
		return nil
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed.Load() {
		return nil
	}
	if o.liveDocs > 0 {
		return ErrDocumentsOpen
	}

	if o.cbHandle != 0 {
		bindings.OfficeClearCallback(o.handle, o.cbHandle)
		o.cbHandle = 0
	}

	o.closed.Store(true)
	if o.handle != nil {
		bindings.OfficeDestroy(o.handle)
	}
	o.handle = nil
	officeLive.Store(false)
	o.log.Debug(context.Background(), "office released", "install_path", o.installPath)
	return nil
}
