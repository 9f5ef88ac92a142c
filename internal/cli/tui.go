package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tomcat-42/graph-searcher/trace"
)

// tickMsg advances the animation by one frame.
type tickMsg time.Time

// playerModel is the bubbletea model replaying a finished search trace.
// Snapshots are immutable, so looping simply rewinds the frame index.
type playerModel struct {
	snaps   []trace.Snapshot
	outcome trace.Outcome

	frame  int
	paused bool
	loop   bool
	delay  time.Duration
}

// newPlayerModel builds a player over a sealed trace.
func newPlayerModel(tr *trace.Trace, out trace.Outcome, delay time.Duration, loop bool) playerModel {
	return playerModel{
		snaps:   tr.Snapshots(),
		outcome: out,
		loop:    loop,
		delay:   delay,
	}
}

func (m playerModel) Init() tea.Cmd {
	return m.tick()
}

func (m playerModel) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m playerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.paused {
			m.advance()
		}
		return m, m.tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "right", "l":
			m.advance()
		case "left", "h":
			if m.frame > 0 {
				m.frame--
			}
		case "r":
			m.frame = 0
		}
	}

	return m, nil
}

// advance moves to the next frame, wrapping when looping and parking on
// the last frame otherwise.
func (m *playerModel) advance() {
	if m.frame < len(m.snaps)-1 {
		m.frame++
		return
	}
	if m.loop {
		m.frame = 0
	}
}

func (m playerModel) View() string {
	if len(m.snaps) == 0 {
		return "empty trace\n"
	}
	s := m.snaps[m.frame]

	var b strings.Builder
	b.WriteString(styleTitle.Render(appName))
	b.WriteString(styleDim.Render(fmt.Sprintf("  frame %d/%d", m.frame+1, len(m.snaps))))
	if m.paused {
		b.WriteString(styleDim.Render("  ⏸"))
	}
	b.WriteString("\n")
	b.WriteString(styleDim.Render("space pause  ←/→ step  r restart  q quit"))
	b.WriteString("\n\n")

	if s.Current != "" {
		b.WriteString("current:  ")
		b.WriteString(styleCurrent.Render(s.Current))
		b.WriteString("\n")
	}
	b.WriteString("frontier: ")
	b.WriteString(styleFrontier.Render(joinOrDash(s.Frontier)))
	b.WriteString("\n")
	b.WriteString("visited:  ")
	b.WriteString(styleVisited.Render(joinOrDash(s.Visited)))
	b.WriteString("\n")
	b.WriteString("path:     ")
	b.WriteString(stylePath.Render(joinPath(s.Path)))
	b.WriteString("\n")

	if s.Done {
		b.WriteString("\n")
		if m.outcome.Found {
			b.WriteString(stylePath.Render(fmt.Sprintf("✓ path %s (cost %.3f)",
				joinPath(m.outcome.Path), m.outcome.Cost)))
		} else {
			b.WriteString(styleFailure.Render("✗ no path: " + m.outcome.Reason.String()))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func joinOrDash(ids []string) string {
	if len(ids) == 0 {
		return "—"
	}

	return strings.Join(ids, " ")
}

func joinPath(ids []string) string {
	if len(ids) == 0 {
		return "—"
	}

	return strings.Join(ids, " → ")
}
