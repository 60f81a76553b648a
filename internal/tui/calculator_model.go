// Package tui implements the interactive calculator flow as a Bubble Tea
// model: one question at a time, previous/next navigation, and a results view
// with the aggregated footprint.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ecobuddy/ecobuddy/internal/catalog"
	"github.com/ecobuddy/ecobuddy/internal/engine"
	"github.com/ecobuddy/ecobuddy/internal/format"
)

// State represents the current calculator view.
type State int

const (
	// StateAsking indicates a question is on screen.
	StateAsking State = iota
	// StateResults indicates the results view is on screen.
	StateResults
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth = 80
	inputLimit   = 12
)

// Model is the Bubble Tea model for the calculator flow.
type Model struct {
	questions []catalog.Question
	store     *engine.Store
	index     int
	cursor    int
	input     textinput.Model
	state     State
	width     int
}

// New creates a calculator model over the given answer store, resuming at the
// given question index. An out-of-range index resets to the first question.
func New(store *engine.Store, index int, showingResults bool) Model {
	questions := catalog.Questions()
	if index < 0 || index >= len(questions) {
		index = 0
	}

	input := textinput.New()
	input.Placeholder = "Enter value"
	input.CharLimit = inputLimit
	input.Focus()

	state := StateAsking
	if showingResults {
		state = StateResults
	}

	m := Model{
		questions: questions,
		store:     store,
		index:     index,
		input:     input,
		state:     state,
		width:     defaultWidth,
	}
	m.prefill()
	return m
}

// Store returns the underlying answer store.
func (m Model) Store() *engine.Store {
	return m.store
}

// Index returns the current question index.
func (m Model) Index() int {
	return m.index
}

// ShowingResults reports whether the results view is on screen.
func (m Model) ShowingResults() bool {
	return m.state == StateResults
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.state == StateResults {
		return m.handleResultsKey(msg)
	}
	return m.handleQuestionKey(msg)
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		// Explicit restart: the store is cleared and the flow re-enters
		// the first question.
		m.store.Clear()
		m.index = 0
		m.cursor = 0
		m.state = StateAsking
		m.input.SetValue("")
		return m, nil
	case "q", "esc", "enter":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleQuestionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.questions[m.index]

	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "left":
		// Navigation only: no score recomputation on the way back.
		if m.index > 0 {
			m.index--
			m.prefill()
		}
		return m, nil
	}

	if q.Kind == catalog.InputSingleChoice {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(q.Options)-1 {
				m.cursor++
			}
		case "enter":
			return m.submit(q.Options[m.cursor].Value), nil
		}
		return m, nil
	}

	if msg.String() == "enter" {
		raw := strings.TrimSpace(m.input.Value())
		if !m.acceptNumeric(q, raw) {
			// Submit stays a no-op until the input validates.
			return m, nil
		}
		return m.submit(raw), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// acceptNumeric gates numeric submission on the validation predicate and,
// for sliders, the question's bounds.
func (m Model) acceptNumeric(q catalog.Question, raw string) bool {
	if !engine.IsValidNumericInput(raw) {
		return false
	}
	if q.Kind == catalog.InputSlider {
		v := 0.0
		_, _ = fmt.Sscanf(raw, "%g", &v)
		return v >= q.Min && v <= q.Max
	}
	return true
}

func (m Model) submit(raw string) Model {
	engine.Submit(m.store, m.questions[m.index], raw)

	if m.index+1 < len(m.questions) {
		m.index++
		m.prefill()
	} else {
		m.state = StateResults
	}
	return m
}

// prefill redisplays any prior answer for the current question so it can be
// edited in place.
func (m *Model) prefill() {
	q := m.questions[m.index]
	answer, ok := m.store.Get(q.ID)

	m.cursor = 0
	m.input.SetValue("")

	if !ok {
		return
	}
	if q.Kind == catalog.InputSingleChoice {
		for i, opt := range q.Options {
			if opt.Value == answer.Value {
				m.cursor = i
				break
			}
		}
		return
	}
	m.input.SetValue(answer.Value)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.state == StateResults {
		return m.resultsView()
	}
	return m.questionView()
}

func (m Model) questionView() string {
	q := m.questions[m.index]
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n",
		subtleStyle.Render(fmt.Sprintf("Question %d of %d", m.index+1, len(m.questions))),
		categoryStyle.Render(string(q.Category)))
	b.WriteString(progressBar(m.index+1, len(m.questions), m.width) + "\n\n")
	b.WriteString(titleStyle.Render(q.Prompt) + "\n\n")

	if q.Kind == catalog.InputSingleChoice {
		for i, opt := range q.Options {
			line := fmt.Sprintf("%s %s", opt.Icon, opt.Label)
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("› "+line) + "\n")
			} else {
				b.WriteString("  " + line + "\n")
			}
		}
	} else {
		b.WriteString(m.input.View())
		if q.Unit != "" {
			b.WriteString(" " + subtleStyle.Render(q.Unit))
		}
		b.WriteString("\n")
		if q.Kind == catalog.InputSlider {
			b.WriteString(subtleStyle.Render(fmt.Sprintf("range %g–%g", q.Min, q.Max)) + "\n")
		}
	}

	b.WriteString("\n" + helpStyle.Render("enter submit • ← previous • esc save & quit"))
	return b.String()
}

func (m Model) resultsView() string {
	snap := engine.Aggregate(m.store)
	style := levelStyle(snap.Level)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Your Carbon Footprint Results") + "\n\n")
	b.WriteString("Your estimated annual carbon footprint is:\n")
	b.WriteString(style.Render(format.Kg(snap.Total)) + "\n")
	b.WriteString(style.Render(snap.Level+" Impact") + "\n\n")

	for _, ct := range snap.CategoryData {
		fmt.Fprintf(&b, "%-16s %s (%s of your footprint)\n",
			ct.Name, format.Kg(ct.Value), format.Percent(ct.Percentage))
	}

	b.WriteString("\n" + helpStyle.Render("r start again • q save & quit"))
	return b.String()
}
