package tui

import (
	"fmt"
	"salon/internal/domains/booking/model"
	"salon/internal/domains/booking/selection"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Salon booking"))
	b.WriteString(m.styles.Muted.Render(" via " + string(m.binding)))
	b.WriteString("\n")

	if line := m.styles.status(m.snap.DatesStatus); line != "" {
		b.WriteString(line + "\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Panel.Render(m.calendarView()),
		m.styles.Panel.Render(m.detailView()),
	)
	b.WriteString(body + "\n")

	if line := m.styles.status(m.snap.BookingStatus); line != "" {
		b.WriteString(line + "\n")
	}

	if m.notice != "" {
		b.WriteString(m.styles.Error.Render(m.notice) + "\n")
	}

	b.WriteString(m.help.View(m.helpKeys()))

	return b.String()
}

func (m Model) helpKeys() help.KeyMap {
	switch m.step() {
	case stepCalendar:
		return calendarKeys(m.keys)
	case stepContact:
		return formKeys(m.keys)
	default:
		return listKeys(m.keys)
	}
}

func (m Model) calendarView() string {
	grid := selection.Month(m.year, m.month, m.snap.Dates, m.snap.Today)

	var b strings.Builder

	b.WriteString(m.styles.Section.Render(fmt.Sprintf("%s %d", grid.Month, grid.Year)) + "\n")

	for _, w := range weekdays {
		b.WriteString(m.styles.Weekday.Render(w))
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat(m.styles.Weekday.Render(""), grid.Leading))

	col := grid.Leading
	for _, day := range grid.Days {
		b.WriteString(m.dayCell(day))

		col++
		if col == len(weekdays) {
			b.WriteString("\n")

			col = 0
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) dayCell(day selection.Day) string {
	label := fmt.Sprintf("%d", day.Day)

	switch {
	case day.Date == m.cursor && m.step() == stepCalendar:
		return m.styles.Cursor.Render(label)
	case day.Date == m.snap.Selection.Date:
		return m.styles.Chosen.Width(4).Align(lipgloss.Right).Render(label)
	case day.Selectable:
		return m.styles.Selectable.Render(label)
	default:
		return m.styles.Disabled.Render(label)
	}
}

func (m Model) detailView() string {
	sel := m.snap.Selection

	var b strings.Builder

	b.WriteString(m.styles.Section.Render("Time") + "\n")

	switch {
	case sel.Date == "":
		b.WriteString(m.styles.Muted.Render("choose a date") + "\n")
	case m.snap.TimesStatus.Message != "":
		b.WriteString(m.styles.status(m.snap.TimesStatus) + "\n")
	}

	for i, t := range m.snap.Slots.Times {
		b.WriteString(m.listLine(t, t == sel.Time, m.step() == stepTimes && i == m.timeIdx))
	}

	if m.step() >= stepService {
		b.WriteString(m.styles.Section.Render("Service") + "\n")

		for i, option := range model.Catalog {
			label := fmt.Sprintf("%s  %d THB", option.Name, option.Price)
			b.WriteString(m.listLine(label, option.ID == sel.ServiceID, m.step() == stepService && i == m.svcIdx))
		}
	}

	if m.step() == stepContact {
		b.WriteString(m.styles.Section.Render("Contact") + "\n")

		for i := range m.inputs {
			b.WriteString(m.inputs[i].View() + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) listLine(label string, chosen, cursor bool) string {
	switch {
	case cursor:
		return m.styles.Cursor.UnsetWidth().Render("> "+label) + "\n"
	case chosen:
		return m.styles.Chosen.Render("* "+label) + "\n"
	default:
		return "  " + label + "\n"
	}
}
