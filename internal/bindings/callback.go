//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// goLokitCallback is the single trampoline registered with the native
// library for every office instance. The void* the library hands back is the
// registry handle minted by putCallback. Events for handles that were
// cleared in the meantime are dropped; the payload is copied before this
// function returns because the library owns the buffer.
//
//export goLokitCallback
func goLokitCallback(event C.int, payload *C.char, data unsafe.Pointer) {
	cb, ok := getCallback(uintptr(data))
	if !ok {
		return
	}

	var text string
	if payload != nil {
		text = C.GoString(payload)
	}
	cb(int(event), text)
}
