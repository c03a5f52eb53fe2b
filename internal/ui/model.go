package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stage represents the current stage of an assessment
type Stage int

const (
	StageReadInput Stage = iota
	StageAnalyze
	StageSuggest
	StageFeedback
	StageDone
)

// Message types for updating the model
type (
	StageMsg     Stage
	OperationMsg string
	TaskCountMsg int
	TaskDoneMsg  struct{}
	DoneMsg      struct{ Err error }
)

// Model is the Bubbletea model for progress display
type Model struct {
	stage     Stage
	spinner   spinner.Model
	progress  progress.Model
	currentOp string
	taskCount int
	tasksDone int
	width     int
	quitting  bool
	err       error
}

// NewModel creates a new progress model
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("173"))

	p := progress.New(progress.WithDefaultGradient())

	return Model{
		stage:    StageReadInput,
		spinner:  s,
		progress: p,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-4, 60)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StageMsg:
		m.stage = Stage(msg)
		m.currentOp = ""
		return m, nil

	case OperationMsg:
		m.currentOp = string(msg)
		return m, nil

	case TaskCountMsg:
		m.taskCount = int(msg)
		m.tasksDone = 0
		return m, nil

	case TaskDoneMsg:
		if m.tasksDone < m.taskCount {
			m.tasksDone++
		}
		return m, nil

	case DoneMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	switch m.stage {
	case StageReadInput:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Reading input...")

	case StageAnalyze:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Analyzing...")

	case StageSuggest:
		if m.taskCount > 0 {
			pct := float64(m.tasksDone) / float64(m.taskCount)
			sb.WriteString(m.progress.ViewAs(pct))
			sb.WriteString("\n")
		}
		sb.WriteString(m.spinner.View())
		sb.WriteString(fmt.Sprintf(" AI thinking... (%d/%d)", m.tasksDone, m.taskCount))

	case StageFeedback:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Getting personalized feedback...")
	}

	if m.currentOp != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", m.currentOp))
	}

	return sb.String()
}
