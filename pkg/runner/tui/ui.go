package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/pram/pkg/app"
	"tableflip.dev/pram/pkg/form"
	"tableflip.dev/pram/pkg/glyph"
	"tableflip.dev/pram/pkg/journal"
	"tableflip.dev/pram/pkg/store"
	"tableflip.dev/pram/pkg/timeutil"
	tl "tableflip.dev/pram/pkg/timeline"
)

// Model states and input targets
type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeInput
)

type target int

const (
	targetNone target = iota
	targetNotes
	targetWeight
	targetHeight
	targetHead
	targetMilestone
	targetMedia
)

var targetPrompts = map[target]string{
	targetNotes:     "Notes: ",
	targetWeight:    "Weight (kg): ",
	targetHeight:    "Height (cm): ",
	targetHead:      "Head (cm): ",
	targetMilestone: "Milestone: ",
	targetMedia:     "Photo path: ",
}

// Model contains UI state for the month browser and the entry wizard.
type Model struct {
	svc *app.Service
	ctx context.Context

	mode   mode
	target target

	month   time.Time
	today   time.Time
	records []tl.DayRecord
	cursor  int

	form *form.Form

	watch <-chan store.Event

	input  textinput.Model
	status string

	termWidth  int
	termHeight int
}

// New creates a UI model backed by the Service. The month shown first is
// the one containing today.
func New(svc *app.Service, today time.Time) Model {
	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""

	return Model{
		svc:   svc,
		ctx:   context.Background(),
		today: today,
		month: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC),
		input: ti,
	}
}

// Init loads the initial month and starts watching the store for changes
// made by other processes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadMonth(), m.startWatch())
}

func (m *Model) startWatch() tea.Cmd {
	return func() tea.Msg {
		ch, err := m.svc.Watch(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return watchReadyMsg{ch}
	}
}

func waitForChange(ch <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func (m *Model) loadMonth() tea.Cmd {
	month := m.month
	today := m.today
	return func() tea.Msg {
		records, err := m.svc.Timeline(context.Background(), month, today)
		if err != nil {
			return errMsg{err}
		}
		return monthLoadedMsg{records}
	}
}

// messages
type errMsg struct{ err error }
type monthLoadedMsg struct{ records []tl.DayRecord }
type watchReadyMsg struct{ ch <-chan store.Event }
type storeChangedMsg struct{}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case monthLoadedMsg:
		m.records = msg.records
		m.cursor = tl.ActiveIndex(m.records)
	case watchReadyMsg:
		m.watch = msg.ch
		cmds = append(cmds, waitForChange(m.watch))
	case storeChangedMsg:
		cmds = append(cmds, m.loadMonth(), waitForChange(m.watch))
	case tea.KeyPressMsg:
		switch m.mode {
		case modeBrowse:
			cmds = m.updateBrowse(msg, cmds)
		case modeForm:
			cmds = m.updateForm(msg, cmds)
		case modeInput:
			switch msg.String() {
			case "esc":
				m.mode = modeForm
				m.target = targetNone
			case "enter":
				m.commitInput()
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateBrowse(msg tea.KeyPressMsg, cmds []tea.Cmd) []tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		cmds = append(cmds, tea.Quit)
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
	case "[":
		m.month = timeutil.PrevMonth(m.month)
		cmds = append(cmds, m.loadMonth())
	case "]":
		m.month = timeutil.NextMonth(m.month)
		cmds = append(cmds, m.loadMonth())
	case "t":
		m.month = time.Date(m.today.Year(), m.today.Month(), 1, 0, 0, 0, 0, time.UTC)
		cmds = append(cmds, m.loadMonth())
	case "enter", "o":
		m.openSelectedDay()
	case "x":
		if r := m.selected(); r != nil && r.HasEntry {
			if err := m.svc.Remove(m.ctx, r.Date); err != nil {
				m.status = "ERR: " + err.Error()
			} else {
				m.status = fmt.Sprintf("removed entry for %s", r.Date)
				cmds = append(cmds, m.loadMonth())
			}
		}
	}
	return cmds
}

func (m *Model) openSelectedDay() {
	r := m.selected()
	if r == nil {
		return
	}
	f, err := m.svc.OpenForm(m.ctx, r.Date, m.today)
	if err != nil {
		if errors.Is(err, app.ErrDayLocked) {
			m.status = fmt.Sprintf("day %d is locked", r.Day)
		} else {
			m.status = "ERR: " + err.Error()
		}
		return
	}
	m.form = f
	m.mode = modeForm
	m.status = ""
}

func (m *Model) updateForm(msg tea.KeyPressMsg, cmds []tea.Cmd) []tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		m.form.Cancel()
		m.form = nil
		m.mode = modeBrowse
		m.status = "cancelled"
	case "tab", "right":
		if err := m.form.Next(); err != nil {
			m.status = err.Error()
		} else {
			m.status = ""
		}
	case "shift+tab", "left":
		if err := m.form.Previous(); err != nil {
			m.status = err.Error()
		} else {
			m.status = ""
		}
	case "1":
		m.form.ToggleType(journal.TypeNote)
	case "2":
		m.form.ToggleType(journal.TypeGrowth)
	case "3":
		m.form.ToggleType(journal.TypeMilestone)
	case "4":
		m.form.ToggleType(journal.TypeMedia)
	case "s":
		if _, err := m.svc.SaveForm(m.ctx, m.form); err != nil {
			m.status = err.Error()
		} else {
			m.form = nil
			m.mode = modeBrowse
			m.status = "saved"
			cmds = append(cmds, m.loadMonth())
		}
	default:
		m.updateFormStepKeys(msg)
	}
	return cmds
}

func (m *Model) updateFormStepKeys(msg tea.KeyPressMsg) {
	switch m.form.Current() {
	case form.StepDetails:
		switch msg.String() {
		case "n":
			m.enterInput(targetNotes, m.form.Notes())
		case "m":
			m.cycleMood()
		}
	case form.StepGrowth:
		switch msg.String() {
		case "w":
			m.enterInput(targetWeight, m.form.Growth().Weight)
		case "h":
			m.enterInput(targetHeight, m.form.Growth().Height)
		case "c":
			m.enterInput(targetHead, m.form.Growth().HeadCircumference)
		case "a":
			m.enterInput(targetMilestone, "")
		case "d":
			m.form.RemoveMilestone(len(m.form.Milestones()) - 1)
		}
	case form.StepMedia:
		switch msg.String() {
		case "a", "p":
			m.enterInput(targetMedia, "")
		case "d":
			m.form.RemoveMedia(len(m.form.Media()) - 1)
		}
	}
}

func (m *Model) enterInput(t target, current string) {
	m.mode = modeInput
	m.target = t
	m.input.Reset()
	m.input.SetValue(current)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) commitInput() {
	value := m.input.Value()
	switch m.target {
	case targetNotes:
		m.form.SetNotes(value)
	case targetWeight:
		_ = m.form.UpdateGrowthField(form.FieldWeight, value)
	case targetHeight:
		_ = m.form.UpdateGrowthField(form.FieldHeight, value)
	case targetHead:
		_ = m.form.UpdateGrowthField(form.FieldHeadCircumference, value)
	case targetMilestone:
		m.form.SetDraft(value)
		if !m.form.CommitDraft() {
			m.status = "milestone text required"
		}
	case targetMedia:
		if strings.TrimSpace(value) != "" {
			m.form.AddMedia(journal.MediaItem{
				Kind:     journal.MediaImage,
				URI:      "file://" + value,
				Filename: value[strings.LastIndex(value, "/")+1:],
			})
		}
	}
	m.mode = modeForm
	m.target = targetNone
}

// cycleMood steps through unset and the five moods in order.
func (m *Model) cycleMood() {
	order := append([]journal.Mood{journal.MoodUnset}, journal.AllMoods()...)
	current := 0
	for i, mood := range order {
		if mood == m.form.Mood() {
			current = i
			break
		}
	}
	m.form.SetMood(order[(current+1)%len(order)])
}

func (m *Model) selected() *tl.DayRecord {
	if m.cursor < 0 || m.cursor >= len(m.records) {
		return nil
	}
	return &m.records[m.cursor]
}

// View renders the month strip plus either the day detail or the wizard.
func (m Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Render(m.month.Format("January 2006"))
	progress := tl.Progress(m.records)
	header := fmt.Sprintf("%s  %d/%d days", title, progress.Recorded, progress.Days)

	body := header + "\n\n" + m.viewStrip() + "\n\n"
	if m.mode == modeBrowse {
		body += m.viewDetail()
	} else {
		body += m.viewForm()
	}
	if m.mode == modeInput {
		body += "\n\n" + targetPrompts[m.target] + m.input.View()
	}

	status := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(
		fmt.Sprintf("[%s] %s", map[mode]string{modeBrowse: "BROWSE", modeForm: "FORM", modeInput: "INPUT"}[m.mode], m.status))
	return body + "\n\n" + status
}

func (m Model) viewStrip() string {
	if len(m.records) == 0 {
		return "loading..."
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	activeCell := cell.Bold(true).Reverse(true)
	lockedCell := cell.Faint(true)

	cells := make([]string, 0, len(m.records))
	for i, r := range m.records {
		marker := glyph.Unlocked
		switch {
		case r.HasEntry:
			marker = glyph.Entry
		case r.IsToday:
			marker = glyph.Today
		case !r.IsUnlocked:
			marker = glyph.Locked
		}
		text := fmt.Sprintf("%d%s", r.Day, marker)

		style := cell
		if i == m.cursor {
			style = activeCell
		} else if !r.IsUnlocked {
			style = lockedCell
		}
		cells = append(cells, style.Render(text))
	}

	// Wrap the strip into terminal-width rows.
	width := m.termWidth
	if width <= 0 {
		width = 80
	}
	var rows []string
	var row []string
	rowWidth := 0
	for _, c := range cells {
		w := lipgloss.Width(c)
		if rowWidth+w > width && len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, c)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) viewDetail() string {
	r := m.selected()
	if r == nil {
		return ""
	}

	lines := []string{fmt.Sprintf("%s %s", r.DayName, r.Date)}
	switch {
	case r.Entry != nil:
		e := r.Entry
		lines = append(lines, e.Summary())
		if e.Mood != journal.MoodUnset {
			lines = append(lines, fmt.Sprintf("mood: %s", e.Mood))
		}
		if e.Notes != "" {
			lines = append(lines, e.Notes)
		}
		if !e.Growth.Empty() {
			lines = append(lines, fmt.Sprintf("weight %s  height %s  head %s",
				orDash(e.Growth.Weight), orDash(e.Growth.Height), orDash(e.Growth.HeadCircumference)))
		}
		for _, s := range e.Milestones {
			lines = append(lines, glyph.Milestone.String()+" "+s)
		}
		for _, item := range e.Media {
			lines = append(lines, fmt.Sprintf("%s (%s)", item.Filename, item.Kind))
		}
	case !r.IsUnlocked:
		lines = append(lines, "locked - record the previous day to open it")
	default:
		lines = append(lines, "no entry - press enter to add one")
	}

	panel := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	return panel.Render(strings.Join(lines, "\n"))
}

func (m Model) viewForm() string {
	f := m.form
	steps := f.Steps()

	indicator := make([]string, 0, len(steps))
	for i, s := range steps {
		label := string(s)
		if i == f.StepIndex()-1 {
			label = lipgloss.NewStyle().Bold(true).Render("[" + label + "]")
		}
		indicator = append(indicator, label)
	}

	lines := []string{
		fmt.Sprintf("%s - step %d/%d  %s", f.Date(), f.StepIndex(), len(steps), strings.Join(indicator, " > ")),
		"types: " + typeToggles(f),
	}

	switch f.Current() {
	case form.StepDetails:
		lines = append(lines,
			fmt.Sprintf("(n)otes: %s", orDash(f.Notes())),
			fmt.Sprintf("(m)ood: %s", orDash(string(f.Mood()))))
	case form.StepGrowth:
		g := f.Growth()
		lines = append(lines,
			fmt.Sprintf("(w)eight %s  (h)eight %s  head (c)ircumference %s",
				orDash(g.Weight), orDash(g.Height), orDash(g.HeadCircumference)))
		for i, s := range f.Milestones() {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, s))
		}
		lines = append(lines, "(a)dd milestone, (d)elete last")
	case form.StepMedia:
		for i, item := range f.Media() {
			lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, item.Filename, item.Kind))
		}
		lines = append(lines, "(a)dd photo, (d)elete last")
	}

	lines = append(lines, "", "tab/shift+tab steps - 1..4 types - (s)ave - esc cancel")

	panel := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	return panel.Render(strings.Join(lines, "\n"))
}

func typeToggles(f *form.Form) string {
	parts := make([]string, 0, 4)
	for i, t := range journal.AllTypes() {
		mark := " "
		if f.HasType(t) {
			mark = "x"
		}
		parts = append(parts, fmt.Sprintf("%d:[%s]%s", i+1, mark, t))
	}
	return strings.Join(parts, " ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Run launches the interactive month browser.
func Run(svc *app.Service, today time.Time) error {
	p := tea.NewProgram(New(svc, today), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
