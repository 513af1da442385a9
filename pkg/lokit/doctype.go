package lokit

import "github.com/lokit-go/lokit/internal/bindings"

// DocumentType classifies a loaded document.
type DocumentType int

const (
	DocTypeText         = DocumentType(bindings.DocTypeText)
	DocTypeSpreadsheet  = DocumentType(bindings.DocTypeSpreadsheet)
	DocTypePresentation = DocumentType(bindings.DocTypePresentation)
	DocTypeDrawing      = DocumentType(bindings.DocTypeDrawing)
	DocTypeOther        = DocumentType(bindings.DocTypeOther)
)

func (t DocumentType) String() string {
	switch t {
	case DocTypeText:
		return "text"
	case DocTypeSpreadsheet:
		return "spreadsheet"
	case DocTypePresentation:
		return "presentation"
	case DocTypeDrawing:
		return "drawing"
	default:
		return "other"
	}
}

// TileMode is the pixel format the library renders tiles in.
type TileMode int

const (
	TileModeRGBA TileMode = 0
	TileModeBGRA TileMode = 1
)

func (m TileMode) String() string {
	switch m {
	case TileModeRGBA:
		return "rgba"
	case TileModeBGRA:
		return "bgra"
	default:
		return "unknown"
	}
}

// Callback event types the wrapper gives names to. The native library emits
// many more; unknown codes pass through RegisterCallback handlers unchanged.
const (
	CallbackDocumentPassword         = 20
	CallbackDocumentPasswordToModify = 21
)
