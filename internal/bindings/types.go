package bindings

import (
	"errors"
	"sync"
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. Callers can use this to fall back to safer defaults.
	ErrNotBuilt = errors.New("lokit/internal/bindings: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native library.
	ErrCGONotEnabled = errors.New("lokit/internal/bindings: cgo not enabled")
)

// Optional feature bits forwarded verbatim to setOptionalFeatures. Values
// match LibreOfficeKitOptionalFeatures in the upstream headers.
const (
	FeatureDocumentPassword                      uint64 = 1 << 0
	FeatureDocumentPasswordToModify              uint64 = 1 << 1
	FeaturePartInInvalidationCallback            uint64 = 1 << 2
	FeatureNoTiledAnnotations                    uint64 = 1 << 3
	FeatureRangeHeaders                          uint64 = 1 << 4
	FeatureViewIDInVisCursorInvalidationCallback uint64 = 1 << 5
)

// Document type codes returned by getDocumentType, per
// LibreOfficeKitDocumentType upstream.
const (
	DocTypeText         = 0
	DocTypeSpreadsheet  = 1
	DocTypePresentation = 2
	DocTypeDrawing      = 3
	DocTypeOther        = 4
)

// Callback receives native library events: an event type code and a payload
// string whose shape depends on the event.
type Callback func(event int, payload string)

// Callback registry. The native library only carries an opaque void* for us,
// so Go callbacks are parked here and addressed by a small integer handle
// smuggled through that pointer. Pure Go so both build flavors share it.
var (
	cbMu   sync.Mutex
	cbNext uintptr = 1
	cbReg          = map[uintptr]Callback{}
)

func putCallback(cb Callback) uintptr {
	cbMu.Lock()
	h := cbNext
	cbNext++
	cbReg[h] = cb
	cbMu.Unlock()
	return h
}

func getCallback(h uintptr) (Callback, bool) {
	cbMu.Lock()
	cb, ok := cbReg[h]
	cbMu.Unlock()
	return cb, ok
}

func delCallback(h uintptr) {
	cbMu.Lock()
	delete(cbReg, h)
	cbMu.Unlock()
}
