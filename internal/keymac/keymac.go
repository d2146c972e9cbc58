// Package keymac is the thin public façade over hashdispatch, hmacengine,
// and hkdf: one-shot Sum/Verify helpers for callers who don't need the
// streaming HMAC lifecycle, plus the constant-time tag comparison the
// HMAC/HKDF core deliberately keeps out (callers compare).
package keymac

import (
	"crypto/subtle"

	"github.com/keymaclab/keymac/internal/hashdispatch"
	"github.com/keymaclab/keymac/internal/hkdf"
	"github.com/keymaclab/keymac/internal/hmacengine"
)

// Re-exported so callers outside this module's internal tree never need to
// import hashdispatch directly.
type Algorithm = hashdispatch.Algorithm

const (
	MD5      = hashdispatch.MD5
	SHA1     = hashdispatch.SHA1
	SHA224   = hashdispatch.SHA224
	SHA256   = hashdispatch.SHA256
	SHA384   = hashdispatch.SHA384
	SHA512   = hashdispatch.SHA512
	SHA3_224 = hashdispatch.SHA3_224
	SHA3_256 = hashdispatch.SHA3_256
	SHA3_384 = hashdispatch.SHA3_384
	SHA3_512 = hashdispatch.SHA3_512
)

// Algorithms lists every supported variant, in a stable order, for callers
// that want to iterate the closed set (e.g. the benchmark and CLI).
var Algorithms = hashdispatch.Algorithms

// Sum computes a one-shot HMAC tag for msg under key and alg.
func Sum(alg Algorithm, key, msg []byte) ([]byte, error) {
	h := hmacengine.New()
	defer h.Free()

	if err := h.SetKey(alg, key); err != nil {
		return nil, err
	}
	if err := h.Update(msg); err != nil {
		return nil, err
	}

	digestSize, err := hashdispatch.DigestSize(alg)
	if err != nil {
		return nil, err
	}
	tag := make([]byte, digestSize)
	if err := h.Final(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// Verify recomputes the HMAC tag for msg under key and alg and compares it
// against tag in constant time. A malformed alg or key simply yields false;
// Verify never returns an error, since a failed verification and a failed
// computation are indistinguishable to a caller that must not learn which
// one occurred.
func Verify(alg Algorithm, key, msg, tag []byte) bool {
	want, err := Sum(alg, key, msg)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(want, tag) == 1
}

// Extract implements HKDF-Extract (RFC 5869 §2.2).
func Extract(alg Algorithm, salt, ikm []byte) ([]byte, error) {
	return hkdf.Extract(alg, salt, ikm)
}

// Expand implements HKDF-Expand (RFC 5869 §2.3).
func Expand(alg Algorithm, prk, info []byte, outLen int) ([]byte, error) {
	return hkdf.Expand(alg, prk, info, outLen)
}

// Derive composes Extract and Expand into the full HKDF (RFC 5869 §2).
func Derive(alg Algorithm, ikm, salt, info []byte, outLen int) ([]byte, error) {
	return hkdf.HKDF(alg, ikm, salt, info, outLen)
}

// MaxDigestSize returns the compile-time maximum digest size across all
// supported variants, for callers sizing output buffers.
func MaxDigestSize() int {
	return hmacengine.MaxDigestSize()
}
