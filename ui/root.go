// Package ui is the terminal front end: the map, a "Show directions" button
// and a sheet listing the turn-by-turn instructions.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"directions-viewer/directions"
	"directions-viewer/mapview"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// Lines used around the map: frame border, status, button, footer.
	chromeHeight = 8
	frameWidth   = 2
	sheetChrome  = 5
)

// fetchedMsg carries a route result back onto the UI goroutine.
type fetchedMsg mapview.Result

type Model struct {
	ctx     context.Context
	adapter *mapview.Adapter
	state   *directions.State

	showDirections bool

	spinner spinner.Model
	sheet   viewport.Model
	style   styles

	width, height int
}

func New(ctx context.Context, adapter *mapview.Adapter, state *directions.State) *Model {
	m := &Model{
		ctx:     ctx,
		adapter: adapter,
		state:   state,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		sheet:   viewport.New(defaultWidth, defaultHeight-sheetChrome),
		style:   defaultStyles(),
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Init mounts the map adapter. The route request runs as a command; its
// result comes back as a fetchedMsg.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.adapter.Mount() {
		cmds = append(cmds, m.fetch())
	}
	return tea.Batch(cmds...)
}

func (m *Model) fetch() tea.Cmd {
	adapter, ctx := m.adapter, m.ctx
	return func() tea.Msg {
		return fetchedMsg(adapter.Fetch(ctx))
	}
}

// ButtonEnabled reports whether "Show directions" can be pressed.
func (m *Model) ButtonEnabled() bool { return !m.state.Empty() }

func (m *Model) ShowingDirections() bool { return m.showDirections }

func (m *Model) pressButton() {
	if !m.ButtonEnabled() {
		return
	}
	m.showDirections = !m.showDirections
	if m.showDirections {
		m.sheet.SetContent(m.sheetRows())
		m.sheet.GotoTop()
	}
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.adapter.Surface().Resize(width-frameWidth, height-chromeHeight)
	m.adapter.Refit()
	m.sheet.Width = width
	m.sheet.Height = max(1, height-sheetChrome)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.adapter.Update()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter", " ", "space":
			m.pressButton()
			return m, nil
		}
		if m.showDirections {
			var cmd tea.Cmd
			m.sheet, cmd = m.sheet.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case fetchedMsg:
		m.adapter.Apply(mapview.Result(msg))
	case spinner.TickMsg:
		if m.state.Status() != directions.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() string {
	if m.showDirections {
		return m.viewSheet()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.style.mapFrame.Render(m.adapter.Surface().Render()),
		m.viewStatus(),
		m.viewButton(),
		m.viewFooter(),
	)
}

func (m *Model) viewStatus() string {
	switch m.state.Status() {
	case directions.StatusLoading:
		return m.style.status.Render(fmt.Sprintf("%s Fetching directions", m.spinner.View()))
	case directions.StatusFailed:
		return m.style.failure.Render(fmt.Sprintf("Directions unavailable: %v", m.state.Err()))
	case directions.StatusReady:
		req := m.adapter.Request()
		return m.style.status.Render(fmt.Sprintf("%s → %s · %d steps",
			req.Source.Title(), req.Destination.Title(), m.state.Len()))
	}
	return m.style.status.Render("")
}

func (m *Model) viewButton() string {
	if m.ButtonEnabled() {
		return m.style.button.Render("Show directions")
	}
	return m.style.disabled.Render("Show directions")
}

func (m *Model) viewFooter() string {
	return m.style.footer.Render("enter: show directions | q: quit")
}

func (m *Model) viewSheet() string {
	title := m.style.title.Render("Directions")
	divider := m.style.divider.Render(strings.Repeat("─", max(1, m.width)))
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		divider,
		m.sheet.View(),
		m.style.footer.Render("enter: hide directions | ↑/↓: scroll | q: quit"),
	)
}

func (m *Model) sheetRows() string {
	rows := make([]string, 0, m.state.Len())
	for _, in := range m.state.Instructions() {
		rows = append(rows, m.style.row.Render(in))
	}
	return strings.Join(rows, "\n")
}
