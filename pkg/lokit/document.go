package lokit

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	"github.com/lokit-go/lokit/internal/bindings"
	"github.com/lokit-go/lokit/pkg/lokit/urls"
)

// Document wraps one loaded native document. It borrows its Office: every
// operation is serialized on the Office mutex and checked against both
// liveness flags, and the Document must be closed before the Office.
//
// A finalizer closes leaked Documents as a safety net, but callers should
// close explicitly, preferably with defer.
type Document struct {
	office *Office
	handle unsafe.Pointer
	closed bool
}

// guard acquires the office mutex and verifies both handles are live. The
// returned release func must be called when done (nil on error).
func (d *Document) guard() (func(), error) {
	if d == nil || d.office == nil {
		return nil, ErrDocumentClosed
	}
	d.office.mu.Lock()
	if d.closed {
		d.office.mu.Unlock()
		return nil, ErrDocumentClosed
	}
	if d.office.closed.Load() {
		d.office.mu.Unlock()
		return nil, ErrOfficeClosed
	}
	if d.handle == nil {
		d.office.mu.Unlock()
		return nil, ErrDocumentClosed
	}
	return d.office.mu.Unlock, nil
}

// SaveAs exports the document to path in the given format ("pdf", "docx",
// "png", ...). path may be a local filesystem path, which is absolutized
// and converted to a file URL, or a full URL passed through unchanged.
// filter is the native filter options string; empty means the default
// export configuration.
func (d *Document) SaveAs(path, format, filter string) error {
	release, err := d.guard()
	if err != nil {
		return &SaveError{Path: path, Format: format, Err: err}
	}
	defer release()

	target := path
	if !strings.Contains(path, "://") {
		u, uerr := urls.LocalForSave(path)
		if uerr != nil {
			return &SaveError{Path: path, Format: format, Err: uerr}
		}
		target = u.String()
	}

	status := bindings.DocumentSaveAs(d.handle, target, format, filter)
	msg := bindings.OfficeGetError(d.office.handle)
	if status == 0 || msg != "" {
		return &SaveError{Path: path, Format: format, Msg: msg}
	}
	d.office.log.Debug(context.Background(), "document saved", "path", path, "format", format)
	return nil
}

// Type classifies the document. Never fails on a live document; a closed
// one reports DocTypeOther.
func (d *Document) Type() DocumentType {
	release, err := d.guard()
	if err != nil {
		return DocTypeOther
	}
	defer release()
	return DocumentType(bindings.DocumentGetType(d.handle))
}

// Parts returns the number of parts: pages in a drawing, sheets in a
// spreadsheet, slides in a presentation.
func (d *Document) Parts() (int, error) {
	release, err := d.guard()
	if err != nil {
		return 0, err
	}
	defer release()
	return bindings.DocumentGetParts(d.handle), nil
}

// Part returns the currently selected part.
func (d *Document) Part() (int, error) {
	release, err := d.guard()
	if err != nil {
		return 0, err
	}
	defer release()
	return bindings.DocumentGetPart(d.handle), nil
}

// SetPart selects the given part for subsequent rendering and queries.
func (d *Document) SetPart(part int) error {
	release, err := d.guard()
	if err != nil {
		return err
	}
	defer release()

	if part < 0 || part >= bindings.DocumentGetParts(d.handle) {
		return fmt.Errorf("lokit: part %d out of range", part)
	}
	bindings.DocumentSetPart(d.handle, part)
	return nil
}

// PartName returns the native name of the given part.
func (d *Document) PartName(part int) (string, error) {
	release, err := d.guard()
	if err != nil {
		return "", err
	}
	defer release()

	if part < 0 || part >= bindings.DocumentGetParts(d.handle) {
		return "", fmt.Errorf("lokit: part %d out of range", part)
	}
	return bindings.DocumentGetPartName(d.handle, d.office.handle, part), nil
}

// Size returns the document dimensions in twips (1/1440 inch).
func (d *Document) Size() (width, height int64, err error) {
	release, err := d.guard()
	if err != nil {
		return 0, 0, err
	}
	defer release()

	width, height = bindings.DocumentGetSize(d.handle)
	return width, height, nil
}

// TileMode reports the pixel format RenderTile fills buffers with.
func (d *Document) TileMode() (TileMode, error) {
	release, err := d.guard()
	if err != nil {
		return TileModeRGBA, err
	}
	defer release()
	return TileMode(bindings.DocumentGetTileMode(d.handle)), nil
}

// InitializeForRendering prepares the document for tile rendering. args is
// the native rendering arguments JSON; empty is valid.
func (d *Document) InitializeForRendering(args string) error {
	release, err := d.guard()
	if err != nil {
		return &RenderError{Op: "initializeForRendering", Err: err}
	}
	defer release()

	bindings.DocumentInitializeForRendering(d.handle, args)
	if msg := bindings.OfficeGetError(d.office.handle); msg != "" {
		return &RenderError{Op: "initializeForRendering", Msg: msg}
	}
	return nil
}

// RenderTile renders a document region into buf. canvasWidth and
// canvasHeight are pixels and fix the required buffer length at
// 4*canvasWidth*canvasHeight; tilePosX, tilePosY, tileWidth and tileHeight
// are twips. A native failure is reported, never a silently partial render.
func (d *Document) RenderTile(buf []byte, canvasWidth, canvasHeight, tilePosX, tilePosY, tileWidth, tileHeight int) error {
	if canvasWidth <= 0 || canvasHeight <= 0 || tileWidth <= 0 || tileHeight <= 0 {
		return &RenderError{Op: "paintTile", Msg: "tile and canvas dimensions must be positive"}
	}
	if want := 4 * canvasWidth * canvasHeight; len(buf) != want {
		return &RenderError{Op: "paintTile", Msg: fmt.Sprintf("buffer length %d, need %d", len(buf), want)}
	}

	release, err := d.guard()
	if err != nil {
		return &RenderError{Op: "paintTile", Err: err}
	}
	defer release()

	bindings.DocumentPaintTile(d.handle, buf, canvasWidth, canvasHeight, tilePosX, tilePosY, tileWidth, tileHeight)
	if msg := bindings.OfficeGetError(d.office.handle); msg != "" {
		return &RenderError{Op: "paintTile", Msg: msg}
	}
	return nil
}

// PaintTile is the allocating variant of RenderTile.
func (d *Document) PaintTile(canvasWidth, canvasHeight, tilePosX, tilePosY, tileWidth, tileHeight int) ([]byte, error) {
	if canvasWidth <= 0 || canvasHeight <= 0 {
		return nil, &RenderError{Op: "paintTile", Msg: "canvas dimensions must be positive"}
	}
	buf := make([]byte, 4*canvasWidth*canvasHeight)
	if err := d.RenderTile(buf, canvasWidth, canvasHeight, tilePosX, tilePosY, tileWidth, tileHeight); err != nil {
		return nil, err
	}
	return buf, nil
}

// Close releases the native document handle exactly once and returns the
// slot that blocks the owning Office from closing. Safe to call repeatedly.
func (d *Document) Close() error {
	if d == nil || d.office == nil {
		return nil
	}

	d.office.mu.Lock()
	defer d.office.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	runtime.SetFinalizer(d, nil)

	if d.office.closed.Load() {
		// The office was force-closed out of order; the native document died
		// with it. Nothing left to release safely.
		d.handle = nil
		return ErrOfficeClosed
	}

	if d.handle != nil {
		bindings.DocumentDestroy(d.handle)
		d.handle = nil
	}
	if d.office.liveDocs > 0 {
		d.office.liveDocs--
	}
	d.office.log.Debug(context.Background(), "document released")
	return nil
}
