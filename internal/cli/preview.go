package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ellisbraun/haven/internal/cli/formatter"
)

// previewKeyMap defines the keys available while previewing a draft.
type previewKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Swap    key.Binding
	Commit  key.Binding
	Discard key.Binding
	Quit    key.Binding
}

func defaultPreviewKeys() previewKeyMap {
	return previewKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Swap:    key.NewBinding(key.WithKeys("s")),
		Commit:  key.NewBinding(key.WithKeys("c", "enter")),
		Discard: key.NewBinding(key.WithKeys("d")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

type swapDoneMsg struct{ err error }

type commitDoneMsg struct {
	inserted int
	err      error
}

// previewModel is the interactive draft review: move over the week, swap
// activities that don't fit, then commit or discard.
type previewModel struct {
	app     *App
	keys    previewKeyMap
	cursor  int
	busy    bool
	spin    spinner.Model
	status  string
	outcome string
}

func newPreviewModel(app *App) *previewModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple
	return &previewModel{
		app:  app,
		keys: defaultPreviewKeys(),
		spin: sp,
	}
}

func (m *previewModel) Init() tea.Cmd {
	return nil
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case swapDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = formatter.StyleRed.Render("Swap failed: " + msg.err.Error())
		} else {
			m.status = formatter.StyleGreen.Render("Swapped.")
		}
		return m, nil

	case commitDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = formatter.StyleRed.Render("Commit failed: "+msg.err.Error()) +
				"\n" + formatter.Dim("Your draft is still here.")
			return m, nil
		}
		m.outcome = fmt.Sprintf("Committed %d activities to your calendar.", msg.inserted)
		return m, tea.Quit

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.app.Session.Events)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Swap):
			m.busy = true
			m.status = ""
			index := m.cursor
			return m, tea.Batch(m.spin.Tick, func() tea.Msg {
				return swapDoneMsg{err: m.app.Plans.Swap(context.Background(), m.app.Session, index)}
			})
		case key.Matches(msg, m.keys.Commit):
			m.busy = true
			m.status = ""
			return m, tea.Batch(m.spin.Tick, func() tea.Msg {
				inserted, err := m.app.Plans.Commit(context.Background(), m.app.Session, nil)
				return commitDoneMsg{inserted: inserted, err: err}
			})
		case key.Matches(msg, m.keys.Discard):
			m.app.Plans.Discard(m.app.Session)
			m.outcome = "Draft discarded. Your calendar was not changed."
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			// The session dies with the process, so quitting is a discard.
			m.app.Plans.Discard(m.app.Session)
			m.outcome = "Draft abandoned. Your calendar was not changed."
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *previewModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Draft plan"))
	b.WriteString("\n")

	for i, e := range m.app.Session.Events {
		marker := "  "
		line := fmt.Sprintf("%-9s %s  %s", e.Day, shortRange(e.StartTime, e.EndTime), e.Activity)
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("> ")
			line = formatter.Bold(line)
		} else {
			line = formatter.StyleFg.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}

	b.WriteString("\n")
	if m.busy {
		b.WriteString(m.spin.View() + formatter.Dim(" working...") + "\n")
	} else {
		b.WriteString(formatter.Dim("j/k move   s swap   c commit   d discard   q quit") + "\n")
	}
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	return b.String()
}

func shortRange(start, end string) string {
	trim := func(s string) string {
		if len(s) >= 5 {
			return s[:5]
		}
		return s
	}
	return trim(start) + "-" + trim(end)
}

// runPreview drives the full-screen draft review and prints its outcome once
// the program exits.
func runPreview(app *App) error {
	model := newPreviewModel(app)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return err
	}
	if model.outcome != "" {
		fmt.Println(model.outcome)
	}
	return nil
}
