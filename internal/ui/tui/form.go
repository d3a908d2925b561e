package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/skyfare/internal/domain"
)

type formField int

const (
	fieldName formField = iota
	fieldMiles
	fieldElite
	fieldCount
)

// quoteForm collects one ticket: two text inputs and an elite toggle.
type quoteForm struct {
	name  textinput.Model
	miles textinput.Model
	elite bool
	focus formField
	err   string
}

func newQuoteForm() quoteForm {
	name := textinput.New()
	name.Prompt = "Passenger: "
	name.Placeholder = "Sherman T. Socketwrench"
	name.CharLimit = 64

	miles := textinput.New()
	miles.Prompt = "Miles:     "
	miles.Placeholder = "700"
	miles.CharLimit = 9

	f := quoteForm{name: name, miles: miles}
	f.setFocus(fieldName)
	return f
}

func (f *quoteForm) setFocus(field formField) {
	f.focus = field
	f.name.Blur()
	f.miles.Blur()

	switch field {
	case fieldName:
		f.name.Focus()
	case fieldMiles:
		f.miles.Focus()
	}
}

func (f *quoteForm) next() { f.setFocus((f.focus + 1) % fieldCount) }

func (f *quoteForm) prev() { f.setFocus((f.focus + fieldCount - 1) % fieldCount) }

func (f *quoteForm) toggleElite() { f.elite = !f.elite }

func (f quoteForm) update(msg tea.Msg) (quoteForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldMiles:
		f.miles, cmd = f.miles.Update(msg)
	}
	return f, cmd
}

// ticket builds a ticket from the form. Range checks are left to
// Ticket.Validate so the form and the CLI reject the same input.
func (f quoteForm) ticket() (domain.Ticket, error) {
	raw := strings.TrimSpace(f.miles.Value())
	if raw == "" {
		return domain.Ticket{}, errors.New("miles are required")
	}
	miles, err := strconv.Atoi(raw)
	if err != nil {
		return domain.Ticket{}, errors.New("miles must be a whole number")
	}

	t := domain.NewTicket()
	t.SetPassengerName(strings.TrimSpace(f.name.Value()))
	t.SetNumberOfMiles(miles)
	t.SetHasEliteStatus(f.elite)
	return t, nil
}

func (f quoteForm) view(theme Theme) string {
	var b strings.Builder

	b.WriteString(f.name.View())
	b.WriteString("\n")
	b.WriteString(f.miles.View())
	b.WriteString("\n")

	cursor := "  "
	if f.focus == fieldElite {
		cursor = "> "
	}
	box := "[ ]"
	if f.elite {
		box = "[x]"
	}
	b.WriteString(cursor + box + " Elite status")

	if f.err != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Error.Render(f.err))
	}
	return b.String()
}
