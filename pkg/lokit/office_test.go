package lokit

import (
	"errors"
	"testing"

	"github.com/lokit-go/lokit/pkg/lokit/logging"
	"github.com/lokit-go/lokit/pkg/lokit/urls"
)

// testOffice fabricates an Office without touching the native library. The
// nil handle keeps every code path on the wrapper side.
func testOffice() *Office {
	return &Office{log: logging.New(nil)}
}

func TestNewRejectsSecondInstance(t *testing.T) {
	if !officeLive.CompareAndSwap(false, true) {
		t.Fatal("office guard unexpectedly held at test start")
	}
	defer officeLive.Store(false)

	o, err := New("/usr/lib/libreoffice/program")
	if o != nil {
		t.Fatalf("expected nil office, got %+v", o)
	}
	if !errors.Is(err, ErrOfficeInUse) {
		t.Fatalf("expected ErrOfficeInUse, got %v", err)
	}

	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected *InitError, got %T", err)
	}
}

func TestNewFailsOnBadInstallPath(t *testing.T) {
	o, err := New("/definitely/not/a/libreoffice/install")
	if err == nil {
		o.Close()
		t.Fatal("expected error for nonexistent installation path")
	}

	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected *InitError, got %T: %v", err, err)
	}
	if initErr.Path != "/definitely/not/a/libreoffice/install" {
		t.Fatalf("InitError.Path = %q", initErr.Path)
	}

	// A failed New must release the process slot so a later attempt can run.
	if officeLive.Load() {
		t.Fatal("office guard still held after failed New")
	}
}

func TestCloseIsIdempotentAndNilSafe(t *testing.T) {
	var nilOffice *Office
	if err := nilOffice.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}

	o := testOffice()
	o.closed.Store(true)
	if err := o.Close(); err != nil {
		t.Fatalf("first Close on closed office: %v", err)
	}
	if err := o.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestCloseRefusedWhileDocumentsLive(t *testing.T) {
	o := testOffice()
	o.liveDocs = 1

	err := o.Close()
	if !errors.Is(err, ErrDocumentsOpen) {
		t.Fatalf("expected ErrDocumentsOpen, got %v", err)
	}
	if o.closed.Load() {
		t.Fatal("office must stay usable after refused close")
	}

	o.liveDocs = 0
	if err := o.Close(); err != nil {
		t.Fatalf("close after last document released: %v", err)
	}
}

func TestOperationsAfterClose(t *testing.T) {
	o := testOffice()
	o.closed.Store(true)

	if err := o.SetOptionalFeatures(FeatureDocumentPassword); !errors.Is(err, ErrOfficeClosed) {
		t.Fatalf("SetOptionalFeatures: expected ErrOfficeClosed, got %v", err)
	}

	u, err := urls.Remote("https://example.com/doc.odt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := o.DocumentLoad(u); !errors.Is(err, ErrOfficeClosed) {
		t.Fatalf("DocumentLoad: expected ErrOfficeClosed, got %v", err)
	}

	if err := o.RegisterCallback(func(int, string) {}); !errors.Is(err, ErrOfficeClosed) {
		t.Fatalf("RegisterCallback: expected ErrOfficeClosed, got %v", err)
	}
	if got := o.LastError(); got != "" {
		t.Fatalf("LastError on closed office = %q", got)
	}
}

func TestSetOptionalFeaturesAccumulates(t *testing.T) {
	o := testOffice()

	if err := o.SetOptionalFeatures(FeatureDocumentPassword); err != nil {
		t.Fatal(err)
	}
	if err := o.SetOptionalFeatures(FeatureDocumentPassword | FeatureRangeHeaders); err != nil {
		t.Fatal(err)
	}
	// Re-registering an already-set bit is a no-op.
	if err := o.SetOptionalFeatures(FeatureRangeHeaders); err != nil {
		t.Fatal(err)
	}

	want := FeatureDocumentPassword | FeatureRangeHeaders
	if got := o.Features(); got != want {
		t.Fatalf("Features() = %v, want %v", got, want)
	}
}

func TestSetDocumentPasswordRequiresFeature(t *testing.T) {
	o := testOffice()

	u, err := urls.Remote("https://example.com/protected.odt")
	if err != nil {
		t.Fatal(err)
	}

	password := "secret"
	if err := o.SetDocumentPassword(u, &password); !errors.Is(err, ErrFeatureNotEnabled) {
		t.Fatalf("expected ErrFeatureNotEnabled, got %v", err)
	}
}

func TestDocumentLoadRejectsZeroURL(t *testing.T) {
	o := testOffice()

	_, err := o.DocumentLoad(urls.DocURL{})
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T: %v", err, err)
	}
}
