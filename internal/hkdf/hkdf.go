// Package hkdf implements RFC 5869's HMAC-based Extract-and-Expand Key
// Derivation Function as a pure orchestration layer over hmacengine: Extract
// is one HMAC invocation, Expand is a counter-driven loop of HMAC
// invocations, and HKDF composes the two.
package hkdf

import (
	"github.com/keymaclab/keymac/internal/errs"
	"github.com/keymaclab/keymac/internal/hashdispatch"
	"github.com/keymaclab/keymac/internal/hmacengine"
)

// maxRounds is RFC 5869 §2.3's upper bound on Expand's round counter: the
// single counter byte can only take 255 distinct non-zero values.
const maxRounds = 255

// Extract implements HKDF-Extract: PRK = HMAC-Hash(salt, IKM). A nil salt is
// replaced with an all-zero salt of length DigestSize(alg), per RFC 5869.
func Extract(alg hashdispatch.Algorithm, salt, ikm []byte) ([]byte, error) {
	digestSize, err := hashdispatch.DigestSize(alg)
	if err != nil {
		return nil, errs.Wrap(errs.BadArg, "Extract", err)
	}

	if salt == nil {
		salt = make([]byte, digestSize)
	}

	h := hmacengine.New()
	defer h.Free()

	if err := h.SetKey(alg, salt); err != nil {
		return nil, err
	}
	if err := h.Update(ikm); err != nil {
		return nil, err
	}

	prk := make([]byte, digestSize)
	if err := h.Final(prk); err != nil {
		return nil, err
	}
	return prk, nil
}

// Expand implements HKDF-Expand: OKM is N = ceil(outLen/L) HMAC rounds
// keyed by prk, each absorbing the previous round's output, info, and a
// one-byte counter. N > 255 fails with BadArg per RFC 5869 §2.3.
func Expand(alg hashdispatch.Algorithm, prk, info []byte, outLen int) ([]byte, error) {
	digestSize, err := hashdispatch.DigestSize(alg)
	if err != nil {
		return nil, errs.Wrap(errs.BadArg, "Expand", err)
	}
	if outLen < 0 {
		return nil, errs.New(errs.BadArg, "Expand")
	}

	rounds := (outLen + digestSize - 1) / digestSize
	if outLen == 0 {
		rounds = 0
	}
	if rounds > maxRounds {
		return nil, errs.New(errs.BadArg, "Expand")
	}

	out := make([]byte, outLen)
	var t []byte // T_{n-1}; empty for round 1

	h := hmacengine.New()
	defer h.Free()

	written := 0
	for n := 1; n <= rounds; n++ {
		if err := h.SetKey(alg, prk); err != nil {
			return nil, err
		}
		if err := h.Update(t); err != nil {
			return nil, err
		}
		if err := h.Update(info); err != nil {
			return nil, err
		}
		if err := h.Update([]byte{byte(n)}); err != nil {
			return nil, err
		}

		tn := make([]byte, digestSize)
		if err := h.Final(tn); err != nil {
			return nil, err
		}

		copied := copy(out[written:], tn)
		written += copied
		t = tn
	}

	return out, nil
}

// HKDF composes Extract and Expand into the full RFC 5869 derivation.
func HKDF(alg hashdispatch.Algorithm, ikm, salt, info []byte, outLen int) ([]byte, error) {
	prk, err := Extract(alg, salt, ikm)
	if err != nil {
		return nil, err
	}
	return Expand(alg, prk, info, outLen)
}
