package cli

import (
	"strings"
	"testing"

	"github.com/keymaclab/keymac/internal/hashdispatch"
	"github.com/keymaclab/keymac/internal/keymac"
)

// fakeDisplay and fakeInput let operations.go be tested without a real
// terminal, following scripted choices/answers.
type fakeDisplay struct {
	errs []error
}

func (f *fakeDisplay) ShowMenu()                                {}
func (f *fakeDisplay) ShowAlgorithmMenu(hashdispatch.Algorithm) {}
func (f *fakeDisplay) ShowResult(result string, steps []string) {}
func (f *fakeDisplay) ShowError(err error)                      { f.errs = append(f.errs, err) }
func (f *fakeDisplay) ShowWelcome()                              {}
func (f *fakeDisplay) ShowGoodbye()                              {}
func (f *fakeDisplay) ShowMessage(message string)                {}
func (f *fakeDisplay) ShowProcessingMessage(message string)      {}

type fakeInput struct {
	algorithmChoice int
	texts           []string
	hexes           [][]byte
	outputLength    int
}

func (f *fakeInput) GetChoice() (int, error) { return 0, nil }

func (f *fakeInput) GetAlgorithmChoice() (int, error) {
	return f.algorithmChoice, nil
}

func (f *fakeInput) GetText(prompt string) (string, error) {
	text := f.texts[0]
	f.texts = f.texts[1:]
	return text, nil
}

func (f *fakeInput) GetHex(prompt string, optional bool) ([]byte, error) {
	h := f.hexes[0]
	f.hexes = f.hexes[1:]
	return h, nil
}

func (f *fakeInput) GetOutputLength(defaultLen int) (int, error) {
	if f.outputLength == 0 {
		return defaultLen, nil
	}
	return f.outputLength, nil
}

func TestRunHMACSumAndVerifyRoundTrip(t *testing.T) {
	display := &fakeDisplay{}
	key := []byte{0x01, 0x02, 0x03}
	message := "the quick brown fox"

	sumInput := &fakeInput{
		algorithmChoice: 4, // SHA256 per hashdispatch.Algorithms ordering
		texts:           []string{message},
		hexes:           [][]byte{key},
	}
	r := NewRunner(display, sumInput, nil)

	result, steps, err := r.RunHMACSum()
	if err != nil {
		t.Fatalf("RunHMACSum: %v", err)
	}
	if !strings.Contains(result, "Hex:") {
		t.Errorf("expected hex tag in result, got %q", result)
	}
	if len(steps) == 0 {
		t.Error("expected narration steps")
	}

	wantTag, err := keymac.Sum(hashdispatch.SHA256, key, []byte(message))
	if err != nil {
		t.Fatalf("keymac.Sum: %v", err)
	}

	verifyInput := &fakeInput{
		algorithmChoice: 4,
		texts:           []string{message},
		hexes:           [][]byte{key, wantTag},
	}
	vr := NewRunner(display, verifyInput, nil)
	result, _, err = vr.RunHMACVerify()
	if err != nil {
		t.Fatalf("RunHMACVerify: %v", err)
	}
	if result != "Tag is VALID" {
		t.Errorf("expected valid tag, got %q", result)
	}

	tamperedTag := append([]byte{}, wantTag...)
	tamperedTag[0] ^= 0xff
	badVerifyInput := &fakeInput{
		algorithmChoice: 4,
		texts:           []string{message},
		hexes:           [][]byte{key, tamperedTag},
	}
	vr2 := NewRunner(display, badVerifyInput, nil)
	result, _, err = vr2.RunHMACVerify()
	if err != nil {
		t.Fatalf("RunHMACVerify: %v", err)
	}
	if result != "Tag is INVALID" {
		t.Errorf("expected invalid tag, got %q", result)
	}
}

func TestRunHKDFDerive(t *testing.T) {
	display := &fakeDisplay{}
	input := &fakeInput{
		algorithmChoice: 6,
		hexes: [][]byte{
			{0x0b, 0x0b, 0x0b, 0x0b},
			nil,
			nil,
		},
		outputLength: 32,
	}
	r := NewRunner(display, input, nil)

	result, steps, err := r.RunHKDFDerive()
	if err != nil {
		t.Fatalf("RunHKDFDerive: %v", err)
	}
	if !strings.Contains(result, "Hex:") {
		t.Errorf("expected hex output in result, got %q", result)
	}
	if len(steps) == 0 {
		t.Error("expected narration steps")
	}
}
