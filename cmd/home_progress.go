package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/sortcell/internal/application"
	"github.com/bnema/sortcell/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	homingStageStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	homingMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type homingProgressMsg struct {
	progress application.Progress
	position float64
}

type homingDoneMsg struct {
	err error
}

// homingModel shows the stage and carrier position while ReturnHome runs.
type homingModel struct {
	spinner   spinner.Model
	err       error
	stage     domain.Stage
	homing    tea.Cmd
	from      float64
	position  float64
	lineTicks int
	lostTicks int
	done      bool
}

func newHomingModel(from float64, homing tea.Cmd) homingModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(homingStageStyle),
	)

	return homingModel{
		spinner:  s,
		homing:   homing,
		from:     from,
		position: from,
	}
}

func (m homingModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.homing)
}

func (m homingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case homingProgressMsg:
		m.stage = msg.progress.Stage
		m.position = msg.position
		if msg.progress.Stage == domain.StageHoming {
			m.lineTicks = msg.progress.Ticks
			m.lostTicks = int(msg.progress.Reading)
		}
		return m, nil
	case homingDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m homingModel) View() string {
	if m.done {
		return ""
	}

	switch m.stage {
	case domain.StageHoming:
		detail := fmt.Sprintf("position %.3f  tick %d", m.position, m.lineTicks)
		if m.lostTicks > 0 {
			detail += "  line lost"
		}
		return fmt.Sprintf("%s %s %s", m.spinner.View(), homingStageStyle.Render("following line"), homingMutedStyle.Render(detail))
	case domain.StageCreep:
		return fmt.Sprintf("%s %s %s", m.spinner.View(), homingStageStyle.Render("creeping onto home"),
			homingMutedStyle.Render(fmt.Sprintf("position %.3f", m.position)))
	default:
		return fmt.Sprintf("%s Returning carrier home from %.3f...", m.spinner.View(), m.from)
	}
}

// runHoming returns the carrier home while streaming navigator progress into
// the spinner. It reports how many line-follow ticks homing took.
func runHoming(ctx context.Context, output io.Writer, from float64, cell *workcell) (int, error) {
	var p *tea.Program

	cell.navigator.SetProgress(func(progress application.Progress) {
		p.Send(homingProgressMsg{progress: progress, position: cell.cell.Snapshot().Position})
	})
	defer cell.navigator.SetProgress(nil)

	homing := func() tea.Msg {
		return homingDoneMsg{err: cell.navigator.ReturnHome(ctx)}
	}

	p = tea.NewProgram(
		newHomingModel(from, homing),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	result, ok := finalModel.(homingModel)
	if !ok {
		return 0, fmt.Errorf("unexpected final homing model type %T", finalModel)
	}

	return result.lineTicks, result.err
}
