// Package knowledge implements the Knowledge mode: the knowledge text with
// a line-based search.
package knowledge

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calctutor/internal/assistant"
	"github.com/abhisek/calctutor/internal/screen"
	"github.com/abhisek/calctutor/internal/ui/components"
	"github.com/abhisek/calctutor/internal/ui/layout"
	"github.com/abhisek/calctutor/internal/ui/theme"
)

// headerLines is the height taken by the title, search field and status.
const headerLines = 6

// KnowledgeScreen shows the knowledge text and searches it.
type KnowledgeScreen struct {
	assistant *assistant.Assistant
	lines     []string
	search    components.TextInput

	term    string
	matches []assistant.Match
	current int // index into matches

	scrollOffset int
	pageHeight   int
}

var _ screen.Screen = (*KnowledgeScreen)(nil)

// New creates a KnowledgeScreen over the assistant's knowledge text.
func New(a *assistant.Assistant) *KnowledgeScreen {
	text := strings.ReplaceAll(a.Knowledge(), "\r\n", "\n")
	return &KnowledgeScreen{
		assistant:  a,
		lines:      strings.Split(text, "\n"),
		search:     components.NewTextInput("Search", "", false, 64),
		pageHeight: 10,
	}
}

func (k *KnowledgeScreen) Init() tea.Cmd {
	return nil
}

func (k *KnowledgeScreen) Title() string {
	return "Knowledge"
}

func (k *KnowledgeScreen) Focus() tea.Cmd {
	return k.search.Focus()
}

func (k *KnowledgeScreen) Blur() {
	k.search.Blur()
}

func (k *KnowledgeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Search"},
		{Key: "↑↓/PgUp/PgDn", Description: "Scroll"},
	}
	if len(k.matches) > 1 {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+N/P", Description: "Next/prev match"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Menu"})
}

// Matches returns the hits of the last search.
func (k *KnowledgeScreen) Matches() []assistant.Match {
	return k.matches
}

func (k *KnowledgeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			k.runSearch()
			return k, nil
		case "up":
			k.scroll(-1)
			return k, nil
		case "down":
			k.scroll(1)
			return k, nil
		case "pgup":
			k.scroll(-k.pageHeight)
			return k, nil
		case "pgdown":
			k.scroll(k.pageHeight)
			return k, nil
		case "ctrl+n":
			k.jump(1)
			return k, nil
		case "ctrl+p":
			k.jump(-1)
			return k, nil
		}
	}

	var cmd tea.Cmd
	k.search, cmd = k.search.Update(msg)
	return k, cmd
}

func (k *KnowledgeScreen) runSearch() {
	k.term = strings.TrimSpace(k.search.Value())
	k.matches = k.assistant.SearchKnowledge(k.term)
	k.current = 0
	if len(k.matches) > 0 {
		k.scrollTo(k.matches[0].Line - 1)
	}
}

func (k *KnowledgeScreen) jump(delta int) {
	if len(k.matches) == 0 {
		return
	}
	k.current = (k.current + delta + len(k.matches)) % len(k.matches)
	k.scrollTo(k.matches[k.current].Line - 1)
}

func (k *KnowledgeScreen) scroll(delta int) {
	k.scrollOffset += delta
	k.clampScroll()
}

// scrollTo puts line near the top of the page, one line of context above.
func (k *KnowledgeScreen) scrollTo(line int) {
	k.scrollOffset = line - 1
	k.clampScroll()
}

func (k *KnowledgeScreen) clampScroll() {
	maxOffset := len(k.lines) - k.pageHeight
	if k.scrollOffset > maxOffset {
		k.scrollOffset = maxOffset
	}
	if k.scrollOffset < 0 {
		k.scrollOffset = 0
	}
}

func (k *KnowledgeScreen) View(width, height int) string {
	k.pageHeight = max(height-headerLines, 1)
	k.clampScroll()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Knowledge base"))
	b.WriteString("\n\n")
	b.WriteString(k.search.View())
	b.WriteString("\n")
	b.WriteString(k.status())
	b.WriteString("\n\n")

	hit := make(map[int]bool, len(k.matches))
	for _, m := range k.matches {
		hit[m.Line] = true
	}
	currentLine := 0
	if len(k.matches) > 0 {
		currentLine = k.matches[k.current].Line
	}

	gutter := len(fmt.Sprint(len(k.lines)))
	textWidth := max(width-gutter-3, 10)
	end := min(k.scrollOffset+k.pageHeight, len(k.lines))
	for i := k.scrollOffset; i < end; i++ {
		n := i + 1
		num := theme.Hint.Render(fmt.Sprintf("%*d ", gutter, n))
		style := lipgloss.NewStyle().Foreground(theme.Text).MaxWidth(textWidth)
		switch {
		case n == currentLine:
			style = style.Foreground(theme.BgDark).Background(theme.Accent)
		case hit[n]:
			style = style.Foreground(theme.Accent)
		}
		b.WriteString(num + style.Render(k.lines[i]))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().MaxHeight(height).Render(b.String())
}

func (k *KnowledgeScreen) status() string {
	switch {
	case k.term == "":
		return theme.Hint.Render(fmt.Sprintf("%d lines", len(k.lines)))
	case len(k.matches) == 0:
		return theme.ErrorText.Render(fmt.Sprintf("no matches for %q", k.term))
	}
	return theme.Hint.Render(fmt.Sprintf("match %d of %d for %q (line %d)",
		k.current+1, len(k.matches), k.term, k.matches[k.current].Line))
}
