package display

import (
	"fmt"
	"strings"
)

// Visualizer helps narrate HMAC pad construction and HKDF rounds step by
// step, as a step-list with ANSI-themed narration.
type Visualizer struct {
	steps []string
	theme Theme
}

// NewVisualizer creates a new visualizer instance.
func NewVisualizer() *Visualizer {
	return &Visualizer{
		steps: make([]string, 0),
		theme: DefaultTheme,
	}
}

// AddStep adds a step to the narration.
func (v *Visualizer) AddStep(step string) {
	switch {
	case strings.HasPrefix(step, "Note:"):
		v.steps = append(v.steps, v.theme.Format(step, "dim"))
	case strings.HasPrefix(step, "How") || strings.HasPrefix(step, "Security"):
		v.steps = append(v.steps, "\n"+v.theme.Format(step, "bold"))
	case strings.Contains(step, "->"):
		v.steps = append(v.steps, v.theme.Format(step, "brightYellow"))
	case strings.HasPrefix(step, "Round"):
		v.steps = append(v.steps, v.theme.Format(step, "brightPurple"))
	default:
		v.steps = append(v.steps, step)
	}
}

// AddHexStep adds a step showing the hexadecimal representation of data,
// e.g. a pad buffer or a digest.
func (v *Visualizer) AddHexStep(label string, data []byte) {
	hex := make([]string, len(data))
	for i, b := range data {
		hex[i] = v.theme.Format(fmt.Sprintf("%02x", b), "brightGreen")
	}
	v.steps = append(v.steps, fmt.Sprintf("%s:%s %s",
		v.theme.Format(label, "bold"), v.theme.GetColor("reset"), strings.Join(hex, " ")))
}

// AddTextStep adds a step showing a text representation.
func (v *Visualizer) AddTextStep(label string, text string) {
	v.steps = append(v.steps, fmt.Sprintf("%s:%s %s",
		v.theme.Format(label, "bold"), v.theme.GetColor("reset"), v.theme.Format(text, "purple")))
}

// AddArrow adds a visual arrow to show a transformation.
func (v *Visualizer) AddArrow() {
	v.steps = append(v.steps, v.theme.Format("    ↓", "brightYellow"))
}

// AddSeparator adds a visual separator.
func (v *Visualizer) AddSeparator() {
	v.steps = append(v.steps, v.theme.Format("----------------------------------------", "dim"))
}

// AddNote adds an explanatory note.
func (v *Visualizer) AddNote(note string) {
	v.steps = append(v.steps, fmt.Sprintf("%s %s", v.theme.Format("Note:", "yellow"), note))
}

// GetSteps returns all narration steps gathered so far.
func (v *Visualizer) GetSteps() []string {
	return v.steps
}

// Display prints the narration to the console.
func (v *Visualizer) Display() {
	fmt.Printf("\n%s\n", v.theme.Format("HMAC / HKDF Process Visualization:", "bold"))
	fmt.Printf("%s\n", v.theme.Format("=================================", "dim"))
	for _, step := range v.steps {
		fmt.Println(step)
	}
	fmt.Printf("%s\n", v.theme.Format("=================================", "dim"))
}
