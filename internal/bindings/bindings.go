//go:build cgo && !windows

package bindings

/*
#cgo CFLAGS: -I${SRCDIR} -Wno-unused-function
#cgo LDFLAGS: -ldl
#include <stdlib.h>
#include "lokbridge.h"
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Built reports whether the native bindings are compiled into this binary.
func Built() bool { return true }

// goStringAndFree copies a native error/diagnostic buffer into a Go string
// and releases it through the library's freeError hook. The native library
// may reuse or free these buffers on the next call, so they are never
// retained.
func goStringAndFree(office unsafe.Pointer, s *C.char) string {
	if s == nil {
		return ""
	}
	out := C.GoString(s)
	C.lok_free_error((*C.LibreOfficeKit)(office), s)
	return out
}

// OfficeNew loads the native library from the installation's program
// directory and initializes one office instance. A nil pointer with a nil
// error never happens: failure to dlopen or hook reports the loader
// diagnostic.
func OfficeNew(installPath string) (unsafe.Pointer, error) {
	cPath := C.CString(installPath)
	defer C.free(unsafe.Pointer(cPath))

	lok := C.lok_init_bridge(cPath)
	if lok == nil {
		return nil, fmt.Errorf("lok_init: %s", C.GoString(C.lok_init_error()))
	}
	return unsafe.Pointer(lok), nil
}

// OfficeDestroy releases the native office instance. The caller guarantees
// exactly-once invocation and that no document handles are outstanding.
func OfficeDestroy(office unsafe.Pointer) {
	C.lok_destroy((*C.LibreOfficeKit)(office))
}

// OfficeGetError copies the library's current last-error text. Empty string
// means no pending diagnostic.
func OfficeGetError(office unsafe.Pointer) string {
	raw := C.lok_get_error((*C.LibreOfficeKit)(office))
	return goStringAndFree(office, raw)
}

// OfficeSetOptionalFeatures forwards capability bits to the native instance.
func OfficeSetOptionalFeatures(office unsafe.Pointer, features uint64) {
	C.lok_set_optional_features((*C.LibreOfficeKit)(office), C.ulonglong(features))
}

// OfficeSetDocumentPassword supplies (or, with a nil password, refuses) the
// password for a protected document. The URL must be the one reported by the
// password callback.
func OfficeSetDocumentPassword(office unsafe.Pointer, url string, password *string) {
	cURL := C.CString(url)
	defer C.free(unsafe.Pointer(cURL))

	var cPassword *C.char
	if password != nil {
		cPassword = C.CString(*password)
		defer C.free(unsafe.Pointer(cPassword))
	}
	C.lok_set_document_password((*C.LibreOfficeKit)(office), cURL, cPassword)
}

// OfficeRegisterCallback installs cb as the event sink for the native
// instance and returns the registry handle needed to clear it again.
func OfficeRegisterCallback(office unsafe.Pointer, cb Callback) uintptr {
	h := putCallback(cb)
	C.lok_register_callback((*C.LibreOfficeKit)(office), unsafe.Pointer(h))
	return h
}

// OfficeClearCallback removes the event sink installed under handle h.
func OfficeClearCallback(office unsafe.Pointer, h uintptr) {
	C.lok_clear_callback((*C.LibreOfficeKit)(office))
	delCallback(h)
}

// OfficeVersionInfo returns the library's version JSON, or "" when the
// installed version predates getVersionInfo.
func OfficeVersionInfo(office unsafe.Pointer) string {
	raw := C.lok_get_version_info((*C.LibreOfficeKit)(office))
	return goStringAndFree(office, raw)
}

// OfficeFilterTypes returns the library's filter-type JSON, or "" when
// unavailable.
func OfficeFilterTypes(office unsafe.Pointer) string {
	raw := C.lok_get_filter_types((*C.LibreOfficeKit)(office))
	return goStringAndFree(office, raw)
}

// DocumentLoad opens the document at url. A nil return is the library's
// failure sentinel; the caller must fetch the last-error text before issuing
// any further native call.
func DocumentLoad(office unsafe.Pointer, url string) unsafe.Pointer {
	cURL := C.CString(url)
	defer C.free(unsafe.Pointer(cURL))

	doc := C.lok_document_load((*C.LibreOfficeKit)(office), cURL)
	return unsafe.Pointer(doc)
}

// DocumentLoadWithOptions opens the document at url with import filter
// options (e.g. "Language=en-US"). Same sentinel contract as DocumentLoad.
func DocumentLoadWithOptions(office unsafe.Pointer, url, options string) unsafe.Pointer {
	cURL := C.CString(url)
	defer C.free(unsafe.Pointer(cURL))
	cOptions := C.CString(options)
	defer C.free(unsafe.Pointer(cOptions))

	doc := C.lok_document_load_with((*C.LibreOfficeKit)(office), cURL, cOptions)
	return unsafe.Pointer(doc)
}

// DocumentDestroy releases the native document handle. Exactly-once, before
// the owning office may be destroyed.
func DocumentDestroy(doc unsafe.Pointer) {
	C.lok_doc_destroy((*C.LibreOfficeKitDocument)(doc))
}

// DocumentSaveAs exports the document. Returns the native status: non-zero
// on success, zero on failure (fetch the office last-error for the reason).
func DocumentSaveAs(doc unsafe.Pointer, url, format, filter string) int {
	cURL := C.CString(url)
	defer C.free(unsafe.Pointer(cURL))
	cFormat := C.CString(format)
	defer C.free(unsafe.Pointer(cFormat))
	cFilter := C.CString(filter)
	defer C.free(unsafe.Pointer(cFilter))

	return int(C.lok_doc_save_as((*C.LibreOfficeKitDocument)(doc), cURL, cFormat, cFilter))
}

// DocumentGetType returns the document type code.
func DocumentGetType(doc unsafe.Pointer) int {
	return int(C.lok_doc_get_type((*C.LibreOfficeKitDocument)(doc)))
}

// DocumentGetParts returns the number of parts (pages, sheets, slides).
func DocumentGetParts(doc unsafe.Pointer) int {
	return int(C.lok_doc_get_parts((*C.LibreOfficeKitDocument)(doc)))
}

// DocumentGetPart returns the currently selected part.
func DocumentGetPart(doc unsafe.Pointer) int {
	return int(C.lok_doc_get_part((*C.LibreOfficeKitDocument)(doc)))
}

// DocumentSetPart selects the given part.
func DocumentSetPart(doc unsafe.Pointer, part int) {
	C.lok_doc_set_part((*C.LibreOfficeKitDocument)(doc), C.int(part))
}

// DocumentGetPartName returns the native name of the given part.
func DocumentGetPartName(doc unsafe.Pointer, office unsafe.Pointer, part int) string {
	raw := C.lok_doc_get_part_name((*C.LibreOfficeKitDocument)(doc), C.int(part))
	return goStringAndFree(office, raw)
}

// DocumentGetSize returns the document dimensions in twips.
func DocumentGetSize(doc unsafe.Pointer) (width, height int64) {
	var w, h C.long
	C.lok_doc_get_size((*C.LibreOfficeKitDocument)(doc), &w, &h)
	return int64(w), int64(h)
}

// DocumentGetTileMode returns the pixel format code the library renders
// tiles in (RGBA or BGRA).
func DocumentGetTileMode(doc unsafe.Pointer) int {
	return int(C.lok_doc_get_tile_mode((*C.LibreOfficeKitDocument)(doc)))
}

// DocumentInitializeForRendering prepares the document for paintTile calls.
func DocumentInitializeForRendering(doc unsafe.Pointer, args string) {
	cArgs := C.CString(args)
	defer C.free(unsafe.Pointer(cArgs))
	C.lok_doc_initialize_for_rendering((*C.LibreOfficeKitDocument)(doc), cArgs)
}

// DocumentPaintTile renders a tile into buf. The canvas dimensions are in
// pixels, the tile position and dimensions in twips. buf must hold
// 4*canvasWidth*canvasHeight bytes; the caller has validated this.
func DocumentPaintTile(doc unsafe.Pointer, buf []byte, canvasWidth, canvasHeight, tilePosX, tilePosY, tileWidth, tileHeight int) {
	if len(buf) == 0 {
		return
	}
	C.lok_doc_paint_tile(
		(*C.LibreOfficeKitDocument)(doc),
		(*C.uchar)(unsafe.Pointer(&buf[0])),
		C.int(canvasWidth), C.int(canvasHeight),
		C.int(tilePosX), C.int(tilePosY),
		C.int(tileWidth), C.int(tileHeight),
	)
}
