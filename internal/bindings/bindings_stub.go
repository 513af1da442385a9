//go:build !cgo || windows

package bindings

import "unsafe"

// Stub implementations for non-CGO builds or Windows. These let the package
// compile everywhere; every entry point that can fail reports ErrNotBuilt.

// Built reports whether the native bindings are compiled into this binary.
func Built() bool { return false }

func OfficeNew(string) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func OfficeDestroy(unsafe.Pointer) {}

func OfficeGetError(unsafe.Pointer) string { return "" }

func OfficeSetOptionalFeatures(unsafe.Pointer, uint64) {}

func OfficeSetDocumentPassword(unsafe.Pointer, string, *string) {}

func OfficeRegisterCallback(_ unsafe.Pointer, cb Callback) uintptr {
	return putCallback(cb)
}

func OfficeClearCallback(_ unsafe.Pointer, h uintptr) {
	delCallback(h)
}

func OfficeVersionInfo(unsafe.Pointer) string { return "" }

func OfficeFilterTypes(unsafe.Pointer) string { return "" }

func DocumentLoad(unsafe.Pointer, string) unsafe.Pointer { return nil }

func DocumentLoadWithOptions(unsafe.Pointer, string, string) unsafe.Pointer { return nil }

func DocumentDestroy(unsafe.Pointer) {}

func DocumentSaveAs(unsafe.Pointer, string, string, string) int { return 0 }

func DocumentGetType(unsafe.Pointer) int { return DocTypeOther }

func DocumentGetParts(unsafe.Pointer) int { return 0 }

func DocumentGetPart(unsafe.Pointer) int { return 0 }

func DocumentSetPart(unsafe.Pointer, int) {}

func DocumentGetPartName(unsafe.Pointer, unsafe.Pointer, int) string { return "" }

func DocumentGetSize(unsafe.Pointer) (int64, int64) { return 0, 0 }

func DocumentGetTileMode(unsafe.Pointer) int { return 0 }

func DocumentInitializeForRendering(unsafe.Pointer, string) {}

func DocumentPaintTile(unsafe.Pointer, []byte, int, int, int, int, int, int) {}
