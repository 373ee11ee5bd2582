package knowledge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/calctutor/internal/assistant"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T, content string) *KnowledgeScreen {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "knowledge_base.md")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	a := assistant.New(assistant.Config{
		KnowledgePath: path,
		ProblemsPath:  filepath.Join(dir, "p.json"),
	}, zap.NewNop())
	k := New(a)
	k.Focus()
	return k
}

func search(k *KnowledgeScreen, term string) {
	for _, r := range term {
		k.Update(keyPress(r))
	}
	k.Update(specialKey(tea.KeyEnter))
}

func longKnowledge() string {
	var b strings.Builder
	b.WriteString("# Calculus notes\n")
	for i := 2; i <= 60; i++ {
		if i == 45 {
			b.WriteString("The Chain Rule: d/dx f(g(x)) = f'(g(x))*g'(x)\n")
			continue
		}
		fmt.Fprintf(&b, "filler line %d\n", i)
	}
	b.WriteString("chain rule again")
	return b.String()
}

func TestKnowledgeScreen_ShowsContent(t *testing.T) {
	k := testScreen(t, "# Derivatives\nPower rule: d/dx x**n = n*x**(n-1)")
	view := k.View(80, 20)
	if !strings.Contains(view, "Power rule") {
		t.Error("view should show the knowledge text")
	}
}

func TestKnowledgeScreen_Placeholder(t *testing.T) {
	k := testScreen(t, "")
	if !strings.Contains(k.View(80, 20), assistant.DefaultKnowledge) {
		t.Error("missing knowledge file should show the placeholder text")
	}
}

func TestKnowledgeScreen_SearchFindsLines(t *testing.T) {
	k := testScreen(t, longKnowledge())
	search(k, "CHAIN")

	matches := k.Matches()
	if len(matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(matches))
	}
	if matches[0].Line != 45 || matches[1].Line != 61 {
		t.Errorf("lines = %d, %d", matches[0].Line, matches[1].Line)
	}

	view := k.View(80, 20)
	if !strings.Contains(view, "match 1 of 2") {
		t.Error("status should report the matches")
	}
	if !strings.Contains(view, "The Chain Rule") {
		t.Error("view should scroll to the first match")
	}
}

func TestKnowledgeScreen_NextMatchWraps(t *testing.T) {
	k := testScreen(t, longKnowledge())
	search(k, "chain")
	k.View(80, 20)

	k.Update(tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	if k.current != 1 {
		t.Fatalf("current = %d, want 1", k.current)
	}
	if !strings.Contains(k.View(80, 20), "chain rule again") {
		t.Error("view should show the second match")
	}
	k.Update(tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	if k.current != 0 {
		t.Fatalf("current = %d, want wrap to 0", k.current)
	}
}

func TestKnowledgeScreen_NoMatches(t *testing.T) {
	k := testScreen(t, longKnowledge())
	search(k, "integral")
	if len(k.Matches()) != 0 {
		t.Fatal("expected no matches")
	}
	if !strings.Contains(k.View(80, 20), `no matches for "integral"`) {
		t.Error("status should report no matches")
	}
}

func TestKnowledgeScreen_ScrollClamped(t *testing.T) {
	k := testScreen(t, longKnowledge())
	k.View(80, 20)
	k.Update(specialKey(tea.KeyUp))
	if k.scrollOffset != 0 {
		t.Errorf("offset = %d, want 0", k.scrollOffset)
	}
	for range 100 {
		k.Update(specialKey(tea.KeyPgDown))
	}
	if want := len(k.lines) - k.pageHeight; k.scrollOffset != want {
		t.Errorf("offset = %d, want %d", k.scrollOffset, want)
	}
}
