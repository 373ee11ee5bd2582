package components

import (
	"math"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testForm() Form {
	f := NewForm(
		[]TextInput{
			NewTextInput("Expr", "x", false, 0),
			NewTextInput("Min", "-10", true, 0),
		},
		[]Button{NewButton("Go"), NewButton("Explain")},
	)
	f.Focus()
	return f
}

func TestForm_TabCyclesFocus(t *testing.T) {
	f := testForm()
	for _, want := range []int{1, 2, 3, 0} {
		f, _, _ = f.Update(specialKey(tea.KeyTab))
		if f.FocusIndex() != want {
			t.Fatalf("focus = %d, want %d", f.FocusIndex(), want)
		}
	}
	f, _, _ = f.Update(specialKey(tea.KeyUp))
	if f.FocusIndex() != 3 {
		t.Fatalf("focus = %d, want 3 after wrapping up", f.FocusIndex())
	}
}

func TestForm_SkipsHiddenButtons(t *testing.T) {
	f := testForm()
	f.Buttons[1].Hidden = true
	f.SetFocus(2)
	f, _, _ = f.Update(specialKey(tea.KeyTab))
	if f.FocusIndex() != 0 {
		t.Fatalf("focus = %d, want 0", f.FocusIndex())
	}
}

func TestForm_EnterPresses(t *testing.T) {
	f := testForm()
	_, _, pressed := f.Update(specialKey(tea.KeyEnter))
	if pressed != 0 {
		t.Fatalf("enter on input pressed %d, want 0", pressed)
	}
	f.SetFocus(3)
	_, _, pressed = f.Update(specialKey(tea.KeyEnter))
	if pressed != 1 {
		t.Fatalf("enter on second button pressed %d, want 1", pressed)
	}
}

func TestForm_TypingGoesToFocusedInput(t *testing.T) {
	f := testForm()
	f, _, _ = f.Update(keyPress('2'))
	if !strings.HasSuffix(f.Value(0), "2") {
		t.Fatalf("value = %q", f.Value(0))
	}
	if f.Value(1) != "-10" {
		t.Fatalf("unfocused input changed: %q", f.Value(1))
	}
}

func TestTextInput_NumericRejectsLetters(t *testing.T) {
	in := NewTextInput("Min", "", true, 0)
	in.Focus()
	for _, r := range "1a.5" {
		in, _ = in.Update(keyPress(r))
	}
	if in.Value() != "1.5" {
		t.Fatalf("value = %q, want 1.5", in.Value())
	}
	v, err := in.FloatValue()
	if err != nil || v != 1.5 {
		t.Fatalf("FloatValue = %v, %v", v, err)
	}
}

func TestChoice(t *testing.T) {
	c := NewChoice("Level", []string{"easy", "medium", "hard"})
	c, changed := c.Update(specialKey(tea.KeyLeft))
	if changed || c.Value() != "easy" {
		t.Fatalf("left at start: changed=%v value=%q", changed, c.Value())
	}
	c, changed = c.Update(specialKey(tea.KeyRight))
	if !changed || c.Value() != "medium" {
		t.Fatalf("right: changed=%v value=%q", changed, c.Value())
	}
}

func TestChart_AllNonFinite(t *testing.T) {
	out := Chart(ChartData{
		X:     []float64{0, 1},
		Y:     []float64{math.Inf(1), math.NaN()},
		Title: "Graph",
	}, 60, 20)
	if !strings.Contains(out, "no finite values") {
		t.Fatalf("expected message, got %q", out)
	}
}

func TestChart_RendersRangeAndLegend(t *testing.T) {
	out := Chart(ChartData{
		X:      []float64{-2, -1, 0, 1, 2},
		Y:      []float64{4, 1, 0, 1, 4},
		Title:  "Graph of f(x) = x**2",
		XLabel: "x",
		YLabel: "f(x)",
		Legend: "f(x) = x**2",
	}, 60, 16)
	for _, want := range []string{"Graph of f(x) = x**2", "-2", "2", "f(x) = x**2"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart missing %q", want)
		}
	}
}

func TestChart_CaptionCountsGaps(t *testing.T) {
	data := ChartData{
		X:      []float64{-1, 0, 1, 2},
		Y:      []float64{-1, math.Inf(1), 1, math.NaN()},
		Legend: "f(x) = 1/x",
	}
	out := Chart(data, 60, 16)
	if !strings.Contains(out, "f(x) = 1/x  (gaps: 2 samples undefined)") {
		t.Errorf("caption should count undefined samples, got %q", out)
	}

	data.Y = []float64{-1, 1, 1, 2}
	if out := Chart(data, 60, 16); strings.Contains(out, "undefined") {
		t.Errorf("finite data should have no gap note, got %q", out)
	}
}

func TestProgressBar_Percent(t *testing.T) {
	if p := NewProgressBar("", 3, 4, 20).Percent(); p != 0.75 {
		t.Fatalf("percent = %v", p)
	}
	if p := NewProgressBar("", 1, 0, 20).Percent(); p != 0 {
		t.Fatalf("percent with zero total = %v", p)
	}
}
