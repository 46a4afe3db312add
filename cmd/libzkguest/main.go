// Command libzkguest exposes the guest runtime to C guest programs.
//
// Build it with
//
//	go build -buildmode=c-archive -o libzkguest.a ./cmd/libzkguest
//
// and link the archive into the guest.
// The exported functions are:
//
//	uint32_t  init_sha256(void);
//	void      sha256_update(uint32_t h, const uint8_t *p, uint32_t len);
//	uint32_t *sha256_finalize(uint32_t h);
//	void      sha256_free(uint32_t h);
//	void      commit(uint32_t h, const uint8_t *p, uint32_t len);
//	void      zkvm_exit(uint32_t h, uint8_t exit_code);
//
// Handles are opaque non-zero integers; 0 is the null handle,
// and passing it (or a NULL byte pointer) makes update, finalize and free no-ops.
// sha256_finalize returns 8 little-endian digest words allocated with malloc;
// the caller releases them with free.
// Each handle from init_sha256 must be passed to sha256_free exactly once,
// unless the guest ends with zkvm_exit.
//
// Updating or finalizing a handle that was already finalized aborts the guest.
//
// The archive calls sys_write and sys_halt, which the zkVM platform provides.
// Weak host fallbacks are included so the archive also links on a host.
package main

func main() {}
