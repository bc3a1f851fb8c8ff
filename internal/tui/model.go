// Package tui is a terminal front end for one booking session.
package tui

import (
	"context"
	"errors"
	"salon/internal/domains/booking/model"
	"salon/internal/domains/booking/model/dto"
	"salon/internal/domains/booking/selection"
	"salon/internal/session"
	"salon/shared/constant"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldPhone
	fieldEmail
	fieldNotes
	fieldImage
	fieldCount
)

type step int

const (
	stepCalendar step = iota
	stepTimes
	stepService
	stepContact
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Session *session.Session
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx     context.Context
	session *session.Session
	keys    keyMap
	styles  styles
	help    help.Model

	binding  model.Binding
	snap     session.Snapshot
	year     int
	month    time.Month
	cursor   string
	timeIdx  int
	svcIdx   int
	inputs   [fieldCount]textinput.Model
	focus    int
	notice   string
	pending  bool
	quitting bool
}

// snapshotMsg carries the session state after a blocking call finished.
type snapshotMsg struct {
	snap session.Snapshot
	err  error
}

// renderMsg is a snapshot pushed by the session while a call is still running.
type renderMsg struct {
	snap session.Snapshot
}

// submittedMsg is the outcome of a booking submission.
type submittedMsg struct {
	snap   session.Snapshot
	result model.BookingResult
	err    error
}

func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := Model{
		ctx:     ctx,
		session: opts.Session,
		keys:    defaultKeyMap(),
		styles:  defaultStyles(),
		help:    help.New(),
		binding: opts.Session.Binding(),
		snap:    opts.Session.Snapshot(),
	}

	m.cursor = m.snap.Today
	m.year, m.month = monthOf(m.cursor)
	m.inputs = newInputs()

	return m
}

func newInputs() [fieldCount]textinput.Model {
	var inputs [fieldCount]textinput.Model

	placeholders := [fieldCount]string{
		fieldName:  "Name",
		fieldPhone: "Phone",
		fieldEmail: "Email (optional)",
		fieldNotes: "Notes (optional)",
		fieldImage: "Reference image path (optional)",
	}

	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = "> "
		ti.CharLimit = 200
		inputs[i] = ti
	}

	inputs[fieldNotes].CharLimit = 1000
	inputs[fieldImage].CharLimit = 4096

	return inputs
}

func monthOf(date string) (int, time.Month) {
	t, err := time.Parse(constant.DateFormat, date)
	if err != nil {
		t = time.Now()
	}

	return t.Year(), t.Month()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.reloadCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil

	case snapshotMsg:
		m.pending = false
		m.apply(msg.snap)
		m.notice = noticeFor(msg.err)

		if m.step() == stepContact && !m.inputs[m.focus].Focused() {
			return m, m.focusInput(fieldName)
		}

		return m, nil

	case renderMsg:
		m.apply(msg.snap)

		return m, nil

	case submittedMsg:
		m.pending = false
		m.apply(msg.snap)
		m.notice = ""

		if msg.err == nil && msg.result.OK {
			m.inputs = newInputs()
			m.focus = fieldName
		}

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// apply stores a new snapshot and keeps the cursors inside what it offers.
func (m *Model) apply(snap session.Snapshot) {
	m.snap = snap

	if snap.State == model.StateIdle && !snap.Dates.Contains(m.cursor) {
		for _, d := range snap.Dates.Sorted() {
			if d >= snap.Today {
				m.cursor = d
				m.year, m.month = monthOf(d)

				break
			}
		}
	}

	if m.timeIdx >= len(snap.Slots.Times) {
		m.timeIdx = 0
	}
}

func (m Model) step() step {
	switch m.snap.State {
	case model.StateIdle:
		return stepCalendar
	case model.StateDateChosen:
		return stepTimes
	case model.StateTimeChosen:
		return stepService
	default:
		return stepContact
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true

		return m, tea.Quit
	}

	if m.step() != stepContact && key.Matches(msg, m.keys.Quit) {
		m.quitting = true

		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Back) && m.step() != stepCalendar {
		m.session.Cancel()
		m.notice = ""
		m.blurInputs()
		m.apply(m.session.Snapshot())

		return m, nil
	}

	if m.pending {
		return m, nil
	}

	switch m.step() {
	case stepCalendar:
		return m.handleCalendarKey(msg)
	case stepTimes:
		return m.handleTimesKey(msg)
	case stepService:
		return m.handleServiceKey(msg)
	default:
		return m.handleContactKey(msg)
	}
}

func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -7)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 7)
	case key.Matches(msg, m.keys.PrevMonth):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.NextMonth):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Reload):
		m.pending = true

		return m, m.reloadCmd()
	case key.Matches(msg, m.keys.Confirm):
		m.pending = true
		m.notice = ""

		return m, m.chooseDateCmd(m.cursor)
	}

	return m, nil
}

func (m *Model) moveCursor(months, days int) {
	t, err := time.Parse(constant.DateFormat, m.cursor)
	if err != nil {
		t = time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
	}

	if months != 0 {
		m.year, m.month = selection.Shift(m.year, m.month, months)
		t = time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
	}

	t = t.AddDate(0, 0, days)
	m.cursor = t.Format(constant.DateFormat)
	m.year, m.month = t.Year(), t.Month()
}

func (m Model) handleTimesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	times := m.snap.Slots.Times

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.timeIdx > 0 {
			m.timeIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.timeIdx < len(times)-1 {
			m.timeIdx++
		}
	case key.Matches(msg, m.keys.Confirm):
		if len(times) == 0 {
			return m, nil
		}

		m.pending = true

		return m, m.chooseTimeCmd(times[m.timeIdx])
	}

	return m, nil
}

func (m Model) handleServiceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.svcIdx > 0 {
			m.svcIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.svcIdx < len(model.Catalog)-1 {
			m.svcIdx++
		}
	case key.Matches(msg, m.keys.Confirm):
		m.pending = true

		return m, m.chooseServiceCmd(model.Catalog[m.svcIdx].ID)
	}

	return m, nil
}

func (m Model) handleContactKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Next):
		return m, m.focusInput((m.focus + 1) % fieldCount)
	case key.Matches(msg, m.keys.Prev):
		return m, m.focusInput((m.focus + fieldCount - 1) % fieldCount)
	case key.Matches(msg, m.keys.Confirm):
		if m.focus == fieldCount-1 {
			return m.submit()
		}

		return m, m.focusInput(m.focus + 1)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	return m, cmd
}

func (m *Model) focusInput(i int) tea.Cmd {
	m.blurInputs()
	m.focus = i

	return m.inputs[i].Focus()
}

func (m *Model) blurInputs() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	contact := dto.ContactInfo{
		CustomerName: m.inputs[fieldName].Value(),
		Phone:        m.inputs[fieldPhone].Value(),
		Email:        m.inputs[fieldEmail].Value(),
		Notes:        m.inputs[fieldNotes].Value(),
	}

	if path := strings.TrimSpace(m.inputs[fieldImage].Value()); path != "" {
		data, err := imageDataURL(path)
		if err != nil {
			m.notice = err.Error()

			return m, nil
		}

		contact.ImageData = data
	}

	m.pending = true
	m.notice = ""

	return m, m.submitCmd(contact)
}

func (m Model) reloadCmd() tea.Cmd {
	s, ctx := m.session, m.ctx

	return func() tea.Msg {
		s.ReloadDates(ctx)

		return snapshotMsg{snap: s.Snapshot()}
	}
}

func (m Model) chooseDateCmd(date string) tea.Cmd {
	s, ctx := m.session, m.ctx

	return func() tea.Msg {
		err := s.ChooseDate(ctx, date)

		return snapshotMsg{snap: s.Snapshot(), err: err}
	}
}

func (m Model) chooseTimeCmd(t string) tea.Cmd {
	s, ctx := m.session, m.ctx

	return func() tea.Msg {
		err := s.ChooseTime(ctx, t)

		return snapshotMsg{snap: s.Snapshot(), err: err}
	}
}

func (m Model) chooseServiceCmd(id string) tea.Cmd {
	s, ctx := m.session, m.ctx

	return func() tea.Msg {
		err := s.ChooseService(ctx, id)

		return snapshotMsg{snap: s.Snapshot(), err: err}
	}
}

func (m Model) submitCmd(contact dto.ContactInfo) tea.Cmd {
	s, ctx := m.session, m.ctx

	return func() tea.Msg {
		res, err := s.Submit(ctx, contact)

		return submittedMsg{snap: s.Snapshot(), result: res, err: err}
	}
}

// noticeFor explains a rejected transition. Submission outcomes show up in the booking
// status instead.
func noticeFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, selection.ErrInvalidTransition):
		return "that choice is not available"
	default:
		return err.Error()
	}
}
