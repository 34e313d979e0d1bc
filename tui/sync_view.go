// ABOUTME: TUI dialog for the one-shot local data upload
// ABOUTME: Confirmation, progress, and success/failure states with retry
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Davi-web/cms-dashboard/syncer"
)

var (
	syncTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	syncCountStyle = lipgloss.NewStyle().
			Bold(true).
			Width(12)

	syncOkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	syncErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	syncStageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// syncProgressMsg carries a progress update from the upload goroutine.
type syncProgressMsg syncer.Progress

// syncDoneMsg is sent when the upload finishes, success or not.
type syncDoneMsg struct {
	err error
}

// SyncModel is the confirmation dialog for uploading local data to the
// signed-in account. It mirrors the orchestrator's states: confirming,
// syncing with a progress bar, then success or failure with retry.
type SyncModel struct {
	orch   *syncer.Orchestrator
	bar    progress.Model
	events chan syncer.Progress

	stage   string
	percent float64
	err     error
	state   syncer.State
}

// NewSyncModel builds the dialog for an orchestrator already in the
// confirming state.
func NewSyncModel(orch *syncer.Orchestrator) SyncModel {
	m := SyncModel{
		orch:   orch,
		bar:    progress.New(progress.WithDefaultGradient()),
		events: make(chan syncer.Progress, 8),
		state:  orch.State(),
	}
	orch.OnProgress(func(p syncer.Progress) {
		select {
		case m.events <- p:
		default:
		}
	})
	return m
}

func (m SyncModel) Init() tea.Cmd {
	return nil
}

// startSync kicks off the upload and begins draining progress events.
func (m SyncModel) startSync(begin func(context.Context) error) tea.Cmd {
	run := func() tea.Msg {
		return syncDoneMsg{err: begin(context.Background())}
	}
	return tea.Batch(run, m.waitForProgress())
}

func (m SyncModel) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		p, ok := <-m.events
		if !ok {
			return nil
		}
		return syncProgressMsg(p)
	}
}

func (m SyncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeys(msg)

	case syncProgressMsg:
		m.percent = float64(msg.Percent) / 100
		m.stage = msg.Stage
		return m, tea.Batch(m.bar.SetPercent(m.percent), m.waitForProgress())

	case syncDoneMsg:
		m.err = msg.err
		m.state = m.orch.State()
		return m, nil

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m SyncModel) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case syncer.StateConfirming:
		switch msg.String() {
		case "y", "enter":
			m.state = syncer.StateSyncing
			return m, m.startSync(m.orch.Confirm)
		case "n", "s", "esc", "q":
			m.orch.Decline()
			return m, tea.Quit
		}

	case syncer.StateSyncing:
		// No interruption mid-upload

	case syncer.StateFailed:
		switch msg.String() {
		case "r", "enter":
			m.state = syncer.StateSyncing
			m.err = nil
			return m, m.startSync(m.orch.Retry)
		case "esc", "q":
			m.orch.Abandon()
			return m, tea.Quit
		}

	case syncer.StateSucceeded:
		return m, tea.Quit
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	return m, nil
}

func (m SyncModel) View() string {
	var s strings.Builder

	s.WriteString(syncTitleStyle.Render("Sync Local Data"))
	s.WriteString("\n\n")

	switch m.state {
	case syncer.StateConfirming:
		counts := m.orch.Counts()
		s.WriteString("You have local data that can be uploaded to your account:\n\n")
		s.WriteString(fmt.Sprintf("  %s %d\n", syncCountStyle.Render("Contacts"), counts.Contacts))
		s.WriteString(fmt.Sprintf("  %s %d\n", syncCountStyle.Render("Companies"), counts.Companies))
		s.WriteString(fmt.Sprintf("  %s %d\n", syncCountStyle.Render("Tasks"), counts.Tasks))
		s.WriteString("\nLocal copies are kept either way.\n\n")
		s.WriteString(helpStyle.Render("y/Enter: Upload • n/Esc: Keep local only"))

	case syncer.StateSyncing:
		s.WriteString(m.bar.View())
		s.WriteString("\n\n")
		if m.stage != "" {
			s.WriteString(syncStageStyle.Render("  " + m.stage))
			s.WriteString("\n")
		}

	case syncer.StateSucceeded:
		s.WriteString(syncOkStyle.Render("✓ Sync complete"))
		s.WriteString("\n\nYour data is now available from any signed-in device.\n\n")
		s.WriteString(helpStyle.Render("Press any key to close"))

	case syncer.StateFailed:
		s.WriteString(syncErrorStyle.Render("✗ Sync failed"))
		if m.err == nil {
			m.err = m.orch.Err()
		}
		if m.err != nil {
			s.WriteString("\n\n  " + syncErrorStyle.Render(m.err.Error()))
		}
		s.WriteString("\n\nYour local data was not changed.\n\n")
		s.WriteString(helpStyle.Render("r/Enter: Retry • Esc: Give up"))

	default:
		s.WriteString(syncStageStyle.Render("Nothing to do"))
	}

	s.WriteString("\n")
	return s.String()
}
