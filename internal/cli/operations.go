package cli

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/keymaclab/keymac/internal/config"
	"github.com/keymaclab/keymac/internal/display"
	"github.com/keymaclab/keymac/internal/hashdispatch"
	"github.com/keymaclab/keymac/internal/keymac"
)

// Runner narrates and executes the HMAC and HKDF operations offered by the
// menu, step by step through a Visualizer.
type Runner struct {
	display        DisplayHandler
	input          UserInputHandler
	defaultAlg     hashdispatch.Algorithm
	defaultHKDFAlg hashdispatch.Algorithm
	defaultOutLen  int
}

// NewRunner creates a new operation runner. cfg may be nil, in which case
// the HMAC default algorithm falls back to SHA-256, the HKDF default
// algorithm falls back to SHA-256, and the default HKDF output length falls
// back to 32 bytes.
func NewRunner(display DisplayHandler, input UserInputHandler, cfg *config.Config) *Runner {
	defaultAlg := hashdispatch.SHA256
	defaultHKDFAlg := hashdispatch.SHA256
	defaultOutLen := 32
	if cfg != nil {
		defaultAlg = cfg.Algorithm()
		defaultHKDFAlg = cfg.HKDFAlgorithm()
		if cfg.HKDF.DefaultOutLen > 0 {
			defaultOutLen = cfg.HKDF.DefaultOutLen
		}
	}
	return &Runner{
		display:        display,
		input:          input,
		defaultAlg:     defaultAlg,
		defaultHKDFAlg: defaultHKDFAlg,
		defaultOutLen:  defaultOutLen,
	}
}

func (r *Runner) pickAlgorithm(defaultAlg hashdispatch.Algorithm) (hashdispatch.Algorithm, error) {
	r.display.ShowAlgorithmMenu(defaultAlg)
	choice, err := r.input.GetAlgorithmChoice()
	if err != nil {
		return 0, err
	}
	algorithms := hashdispatch.Algorithms
	if choice < 1 || choice > len(algorithms) {
		return 0, fmt.Errorf("invalid algorithm choice: %d", choice)
	}
	return algorithms[choice-1], nil
}

// RunHMACSum narrates and computes a MAC for a key and message.
func (r *Runner) RunHMACSum() (string, []string, error) {
	alg, err := r.pickAlgorithm(r.defaultAlg)
	if err != nil {
		return "", nil, err
	}

	key, err := r.input.GetHex("Enter the key (hex, empty for a zero-length key): ", true)
	if err != nil {
		return "", nil, err
	}
	message, err := r.input.GetText("Enter the message to authenticate: ")
	if err != nil {
		return "", nil, err
	}

	v := display.NewVisualizer()
	v.AddStep(fmt.Sprintf("HMAC-%s Compute", alg))
	v.AddStep("=============================")
	v.AddNote("HMAC combines a cryptographic hash function with a secret key")
	v.AddNote("Note: HMAC is one-way - the message cannot be recovered from the tag")
	v.AddSeparator()

	v.AddTextStep("Message", message)
	v.AddArrow()
	v.AddHexStep("Key", key)
	v.AddArrow()

	blockSize, err := hashdispatch.BlockSize(alg)
	if err != nil {
		return "", nil, err
	}
	v.AddStep("Key Preparation:")
	v.AddStep("1. If key length > block size, hash it down to the digest size")
	v.AddStep("2. If key length <= block size, zero-pad it to the block size")
	v.AddStep(fmt.Sprintf("Block size for %s: %d bytes", alg, blockSize))
	v.AddArrow()

	v.AddStep("HMAC Calculation:")
	v.AddStep("1. inner = Hash((key XOR ipad) || message)")
	v.AddStep("2. tag = Hash((key XOR opad) || inner)")
	v.AddArrow()

	tag, err := keymac.Sum(alg, key, []byte(message))
	if err != nil {
		return "", nil, fmt.Errorf("computing HMAC: %w", err)
	}
	v.AddHexStep("Tag (Raw Bytes)", tag)
	v.AddArrow()

	tagHex := hex.EncodeToString(tag)
	tagB64 := base64.StdEncoding.EncodeToString(tag)
	v.AddTextStep("Tag (Hex)", tagHex)
	v.AddTextStep("Tag (Base64)", tagB64)

	v.AddSeparator()
	v.AddStep("Security Considerations:")
	v.AddStep("1. The tag authenticates both the message and the key holder's identity")
	v.AddStep("2. HMAC resists length-extension attacks even when the hash does not")
	v.AddStep("3. Compare tags with a constant-time comparison, never ==")

	result := fmt.Sprintf("Hex: %s\nBase64: %s", tagHex, tagB64)
	return result, v.GetSteps(), nil
}

// RunHMACVerify narrates and constant-time-checks a message against a tag.
func (r *Runner) RunHMACVerify() (string, []string, error) {
	alg, err := r.pickAlgorithm(r.defaultAlg)
	if err != nil {
		return "", nil, err
	}

	key, err := r.input.GetHex("Enter the key (hex, empty for a zero-length key): ", true)
	if err != nil {
		return "", nil, err
	}
	message, err := r.input.GetText("Enter the message: ")
	if err != nil {
		return "", nil, err
	}
	tag, err := r.input.GetHex("Enter the tag to verify (hex): ", false)
	if err != nil {
		return "", nil, err
	}

	v := display.NewVisualizer()
	v.AddStep(fmt.Sprintf("HMAC-%s Verify", alg))
	v.AddStep("=============================")
	v.AddNote("Verification recomputes the tag and compares in constant time")
	v.AddSeparator()

	v.AddTextStep("Message", message)
	v.AddHexStep("Tag (Supplied)", tag)
	v.AddArrow()

	ok := keymac.Verify(alg, key, []byte(message), tag)
	v.AddStep("Security Considerations:")
	v.AddStep("1. A mismatched tag length is rejected without comparing contents")
	v.AddStep("2. Comparison never short-circuits on the first differing byte")

	result := "Tag is VALID"
	if !ok {
		result = "Tag is INVALID"
	}
	return result, v.GetSteps(), nil
}

// RunHKDFDerive narrates and runs extract-then-expand key derivation.
func (r *Runner) RunHKDFDerive() (string, []string, error) {
	alg, err := r.pickAlgorithm(r.defaultHKDFAlg)
	if err != nil {
		return "", nil, err
	}

	ikm, err := r.input.GetHex("Enter the input key material (hex): ", false)
	if err != nil {
		return "", nil, err
	}
	salt, err := r.input.GetHex("Enter the salt (hex, empty for a zero salt): ", true)
	if err != nil {
		return "", nil, err
	}
	info, err := r.input.GetHex("Enter the context info (hex, empty for none): ", true)
	if err != nil {
		return "", nil, err
	}
	outLen, err := r.input.GetOutputLength(r.defaultOutLen)
	if err != nil {
		return "", nil, err
	}

	digestSize, err := hashdispatch.DigestSize(alg)
	if err != nil {
		return "", nil, err
	}

	v := display.NewVisualizer()
	v.AddStep(fmt.Sprintf("HKDF-%s Derive", alg))
	v.AddStep("=============================")
	v.AddNote("HKDF is RFC 5869's extract-then-expand key derivation function")
	v.AddSeparator()

	v.AddHexStep("Input Key Material", ikm)
	v.AddHexStep("Salt", salt)
	v.AddArrow()

	prk, err := keymac.Extract(alg, salt, ikm)
	if err != nil {
		return "", nil, fmt.Errorf("HKDF-Extract: %w", err)
	}
	v.AddStep("Extract: prk = HMAC(salt, ikm)")
	v.AddHexStep("Pseudorandom Key", prk)
	v.AddArrow()

	rounds := (outLen + digestSize - 1) / digestSize
	v.AddStep(fmt.Sprintf("Expand: %d round(s) of T(n) = HMAC(prk, T(n-1) || info || n)", rounds))
	okm, err := keymac.Expand(alg, prk, info, outLen)
	if err != nil {
		return "", nil, fmt.Errorf("HKDF-Expand: %w", err)
	}
	v.AddHexStep("Output Key Material", okm)

	v.AddSeparator()
	v.AddStep("Security Considerations:")
	v.AddStep("1. HKDF output is indistinguishable from random given a strong ikm")
	v.AddStep("2. A missing salt is treated as a zero-filled salt, not an error")
	v.AddStep(fmt.Sprintf("3. Expand is capped at 255 rounds (%d bytes for %s)", 255*digestSize, alg))

	result := fmt.Sprintf("Hex: %s\nBase64: %s", hex.EncodeToString(okm), base64.StdEncoding.EncodeToString(okm))
	return result, v.GetSteps(), nil
}
