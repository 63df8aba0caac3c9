package report

import (
	"errors"
	"io"

	"github.com/bnema/sortcell/internal/application"
	"github.com/bnema/sortcell/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type viewFunc func(styles) string

type model struct {
	view   viewFunc
	styles styles
	output string
}

func newModel(view viewFunc) model {
	return model{
		view:   view,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.view(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func render(view viewFunc) (string, error) {
	p := tea.NewProgram(
		newModel(view),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

func RenderBatch(report application.BatchReport, limits domain.BatchLimits) (string, error) {
	return render(func(s styles) string {
		return renderBatch(report, limits, s)
	})
}

func RenderRun(summary application.RunSummary, batches []application.BatchReport, limits domain.BatchLimits) (string, error) {
	return render(func(s styles) string {
		return renderRun(summary, batches, limits, s)
	})
}

func RenderProfile(profile domain.DumpProfile) (string, error) {
	return render(func(s styles) string {
		return renderProfile(profile, s)
	})
}

func RenderLayout(layout domain.Layout, source string) (string, error) {
	return render(func(s styles) string {
		return renderLayout(layout, source, s)
	})
}
