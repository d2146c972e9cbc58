// Package hmacengine implements the keyed MAC state machine from RFC
// 2104/FIPS 198-1 on top of the hash dispatch table in hashdispatch. It owns
// the two pad buffers and the inner-digest scratch buffer, schedules the key
// (including the "key longer than block" pre-hash), and streams message
// bytes through the inner/outer hash construction.
package hmacengine

import (
	"github.com/keymaclab/keymac/internal/errs"
	"github.com/keymaclab/keymac/internal/hashdispatch"
)

const (
	ipadByte byte = 0x36
	opadByte byte = 0x5C
)

// none is an Algorithm value outside the supported set; HMAC.algorithm is set
// to it (semantically: NONE) until SetKey succeeds.
const none = hashdispatch.Algorithm(-1)

// HMAC is the central runtime object: a reusable HMAC instance over one
// algorithm and key. The zero value, after New, is ready to be keyed via
// SetKey.
type HMAC struct {
	algorithm      hashdispatch.Algorithm
	hash           hashdispatch.State
	ipad           [hashdispatch.MaxBlockSize]byte
	opad           [hashdispatch.MaxBlockSize]byte
	innerDigest    [hashdispatch.MaxDigestSize]byte
	blockSize      int
	digestSize     int
	innerHashKeyed bool
	initialized    bool
}

// New zero-initializes an HMAC instance. It always succeeds; the instance is
// not usable until SetKey is called.
func New() *HMAC {
	return &HMAC{algorithm: none}
}

// MaxDigestSize returns the compile-time maximum digest size across all
// supported variants, for callers sizing output buffers.
func MaxDigestSize() int {
	return hashdispatch.MaxDigestSize
}

// SetKey computes the derived key K' and the inner/outer pads for alg and
// key, per RFC 2104. If the instance was previously keyed, the old hash
// state is released first so the instance can be reused without leaking.
//
// A nil key is only accepted when len(key) == 0 (a zero-length key); a nil
// key with a non-zero claimed length is a caller bug and fails with BadArg.
func (h *HMAC) SetKey(alg hashdispatch.Algorithm, key []byte) error {
	if key == nil && len(key) != 0 {
		return errs.New(errs.BadArg, "SetKey")
	}

	blockSize, err := hashdispatch.BlockSize(alg)
	if err != nil {
		return errs.Wrap(errs.BadArg, "SetKey", err)
	}
	digestSize, err := hashdispatch.DigestSize(alg)
	if err != nil {
		return errs.Wrap(errs.BadArg, "SetKey", err)
	}

	if h.algorithm != none {
		h.Free()
	}

	h.innerHashKeyed = false
	h.algorithm = alg
	h.blockSize = blockSize
	h.digestSize = digestSize

	fresh, err := hashdispatch.Init(alg)
	if err != nil {
		return errs.Wrap(errs.HashFailure, "SetKey", err)
	}
	h.hash = fresh

	// ipad starts as the zero-padded (or pre-hashed) key; zero the whole
	// working region first so the "key <= block" path doesn't need a
	// separate clear of the tail.
	for i := 0; i < blockSize; i++ {
		h.ipad[i] = 0
	}

	if len(key) <= blockSize {
		copy(h.ipad[:blockSize], key)
	} else {
		if err := h.hash.Update(key); err != nil {
			return errs.Wrap(errs.HashFailure, "SetKey", err)
		}
		if err := h.hash.Final(h.ipad[:digestSize]); err != nil {
			return errs.Wrap(errs.HashFailure, "SetKey", err)
		}
		// Re-initialize to a fresh state: the hash used to pre-hash the
		// key must not carry any absorbed bytes into the MAC itself.
		h.hash.Free()
		fresh, err := hashdispatch.Init(alg)
		if err != nil {
			return errs.Wrap(errs.HashFailure, "SetKey", err)
		}
		h.hash = fresh
	}

	for i := 0; i < blockSize; i++ {
		h.opad[i] = h.ipad[i] ^ opadByte
		h.ipad[i] ^= ipadByte
	}

	h.initialized = true
	return nil
}

// ensureInnerKeyed absorbs ipad into the hash on first use after SetKey,
// shared by Update and Final so that Final alone (no Update calls) still
// yields the MAC of the empty message.
func (h *HMAC) ensureInnerKeyed(op string) error {
	if h.innerHashKeyed {
		return nil
	}
	if !h.initialized || h.hash == nil {
		return errs.New(errs.Uninitialized, op)
	}
	if err := h.hash.Update(h.ipad[:h.blockSize]); err != nil {
		return errs.Wrap(errs.HashFailure, op, err)
	}
	h.innerHashKeyed = true
	return nil
}

// Update absorbs msg into the running MAC. A nil msg with len 0 is a no-op;
// a nil msg with a non-zero claimed length fails with BadArg.
func (h *HMAC) Update(msg []byte) error {
	if msg == nil && len(msg) != 0 {
		return errs.New(errs.BadArg, "Update")
	}
	if err := h.ensureInnerKeyed("Update"); err != nil {
		return err
	}
	if len(msg) == 0 {
		return nil
	}
	if err := h.hash.Update(msg); err != nil {
		return errs.Wrap(errs.HashFailure, "Update", err)
	}
	return nil
}

// Final writes the MAC tag into out, which must be exactly the algorithm's
// digest size. It leaves the instance ready for another MAC under the same
// key (innerHashKeyed is reset to false). out is undefined on failure.
func (h *HMAC) Final(out []byte) error {
	if err := h.ensureInnerKeyed("Final"); err != nil {
		return err
	}
	if len(out) != h.digestSize {
		return errs.New(errs.BadArg, "Final")
	}

	if err := h.hash.Final(h.innerDigest[:h.digestSize]); err != nil {
		return errs.Wrap(errs.HashFailure, "Final", err)
	}

	h.hash.Free()
	fresh, err := hashdispatch.Init(h.algorithm)
	if err != nil {
		return errs.Wrap(errs.HashFailure, "Final", err)
	}
	h.hash = fresh

	if err := h.hash.Update(h.opad[:h.blockSize]); err != nil {
		return errs.Wrap(errs.HashFailure, "Final", err)
	}
	if err := h.hash.Update(h.innerDigest[:h.digestSize]); err != nil {
		return errs.Wrap(errs.HashFailure, "Final", err)
	}
	if err := h.hash.Final(out); err != nil {
		return errs.Wrap(errs.HashFailure, "Final", err)
	}

	// Leave a fresh hash behind so the next MAC starts its inner hash from
	// scratch instead of continuing the outer one.
	h.hash.Free()
	fresh, err = hashdispatch.Init(h.algorithm)
	if err != nil {
		return errs.Wrap(errs.HashFailure, "Final", err)
	}
	h.hash = fresh

	h.innerHashKeyed = false
	return nil
}

// Free releases the embedded hash state. It is safe to call on a
// never-initialized or already-freed instance.
func (h *HMAC) Free() {
	if h.hash != nil {
		h.hash.Free()
		h.hash = nil
	}
	h.algorithm = none
	h.initialized = false
	h.innerHashKeyed = false
}
