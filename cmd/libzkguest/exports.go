//go:build cgo

package main

/*
#include <stdint.h>
#include <stdlib.h>

void sys_write(uint32_t fd, const uint8_t *ptr, uint32_t len);
void sys_halt(uint8_t code, const uint32_t *out_words);
*/
import "C"

import (
	"unsafe"

	"github.com/gordian-engine/zkguest/internal/zghandle"
	"github.com/gordian-engine/zkguest/zgdigest"
	"github.com/gordian-engine/zkguest/zghash/zgsha256"
	"github.com/gordian-engine/zkguest/zgsys"
)

var abi = newGuestABI(cPlatform{}, zgsha256.Impl{})

// cPlatform forwards system calls to the C platform functions.
type cPlatform struct{}

func (cPlatform) Write(fd zgsys.Fileno, p []byte) {
	if len(p) == 0 {
		return
	}
	C.sys_write(C.uint32_t(fd), (*C.uint8_t)(unsafe.Pointer(&p[0])), C.uint32_t(len(p)))
}

func (cPlatform) Halt(code uint8, out zgsys.OutputWords) {
	var words [zgdigest.WordCount]C.uint32_t
	for i, w := range out {
		words[i] = C.uint32_t(w)
	}
	C.sys_halt(C.uint8_t(code), &words[0])
}

//export init_sha256
func init_sha256() C.uint32_t {
	return C.uint32_t(abi.initAccumulator())
}

//export sha256_update
func sha256_update(h C.uint32_t, ptr *C.uint8_t, n C.uint32_t) {
	abi.update(zghandle.Handle(h), bytesAt(unsafe.Pointer(ptr), uint32(n)))
}

//export sha256_finalize
func sha256_finalize(h C.uint32_t) *C.uint32_t {
	d, ok := abi.finalize(zghandle.Handle(h))
	if !ok {
		return nil
	}

	out := C.malloc(C.size_t(digestWordsSize))
	putDigestWords(out, d)
	return (*C.uint32_t)(out)
}

//export sha256_free
func sha256_free(h C.uint32_t) {
	abi.free(zghandle.Handle(h))
}

//export commit
func commit(h C.uint32_t, ptr *C.uint8_t, n C.uint32_t) {
	abi.commit(zghandle.Handle(h), bytesAt(unsafe.Pointer(ptr), uint32(n)))
}

//export zkvm_exit
func zkvm_exit(h C.uint32_t, code C.uint8_t) {
	abi.exit(zghandle.Handle(h), uint8(code))
}
