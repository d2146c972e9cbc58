package keymac

import (
	"bytes"
	"testing"
)

func TestSumAndVerify(t *testing.T) {
	key := []byte("super secret key")
	msg := []byte("attack at dawn")

	tag, err := Sum(SHA256, key, msg)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if len(tag) != 32 {
		t.Fatalf("Sum returned %d bytes, want 32", len(tag))
	}

	if !Verify(SHA256, key, msg, tag) {
		t.Error("Verify rejected a tag produced by Sum")
	}

	tampered := append([]byte(nil), tag...)
	tampered[0] ^= 0xff
	if Verify(SHA256, key, msg, tampered) {
		t.Error("Verify accepted a tampered tag")
	}
	if Verify(SHA256, key, []byte("attack at dusk"), tag) {
		t.Error("Verify accepted a tag for the wrong message")
	}
}

func TestDeriveMatchesExtractExpand(t *testing.T) {
	ikm := []byte("input keying material")
	salt := []byte("salt value")
	info := []byte("context info")

	okm, err := Derive(SHA256, ikm, salt, info, 40)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	prk, err := Extract(SHA256, salt, ikm)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	okm2, err := Expand(SHA256, prk, info, 40)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	if !bytes.Equal(okm, okm2) {
		t.Error("Derive does not match manual Extract+Expand")
	}
}

func TestMaxDigestSizeCoversAllAlgorithms(t *testing.T) {
	max := MaxDigestSize()
	for _, alg := range Algorithms {
		tag, err := Sum(alg, []byte("k"), []byte("m"))
		if err != nil {
			t.Fatalf("Sum(%s): %v", alg, err)
		}
		if len(tag) > max {
			t.Errorf("%s digest size %d exceeds MaxDigestSize %d", alg, len(tag), max)
		}
	}
}
