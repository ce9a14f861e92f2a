package display

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/notify"
	"github.com/hammamikhairi/nextday/internal/wizard"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("NextDay · Sign up"))
	b.WriteString("\n")
	b.WriteString(m.renderStepper())
	b.WriteString("\n\n")

	switch m.step() {
	case domain.StepPhone:
		b.WriteString(m.viewPhone())
	case domain.StepCode:
		b.WriteString(m.viewCode())
	case domain.StepAddress:
		b.WriteString(m.viewAddress())
	case domain.StepNutrition:
		b.WriteString(m.viewNutrition())
	}

	if len(m.status) > 0 {
		b.WriteString("\n")
		for _, s := range m.status {
			if s.Kind == notify.KindAlert {
				b.WriteString(alertStyle.Render("! " + s.Text))
			} else {
				b.WriteString(noticeStyle.Render(s.Text))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderStepper() string {
	parts := make([]string, 0, domain.LastStep)
	for s := domain.FirstStep; s <= domain.LastStep; s++ {
		label := fmt.Sprintf("%d %s", s, s)
		switch {
		case s < m.step():
			parts = append(parts, stepDoneStyle.Render(label))
		case s == m.step():
			parts = append(parts, stepCurrentStyle.Render(label))
		default:
			parts = append(parts, stepTodoStyle.Render(label))
		}
	}
	return strings.Join(parts, secondaryStyle.Render(" › "))
}

func button(label string, enabled bool) string {
	if enabled {
		return buttonStyle.Render(label)
	}
	return buttonDisabledStyle.Render(label)
}

func (m Model) viewPhone() string {
	state := m.session.State
	state.Phone = m.phone.Value()

	var b strings.Builder
	b.WriteString(primaryStyle.Render("What's your phone number?"))
	b.WriteString("\n\n")
	b.WriteString(m.phone.View())
	b.WriteString("\n\n")
	b.WriteString(button("Continue", wizard.CanSubmit(state)))
	b.WriteString("\n")
	b.WriteString(secondaryStyle.Render("enter continue · esc quit"))
	return b.String()
}

func (m Model) viewCode() string {
	state := m.session.State
	state.Code = m.code.Value()

	var b strings.Builder
	b.WriteString(primaryStyle.Render("Enter the code we sent to " + m.session.State.Phone))
	b.WriteString("\n\n")
	b.WriteString(m.code.View())
	b.WriteString("\n\n")
	b.WriteString(button("Verify", wizard.CanSubmit(state)))
	b.WriteString("  ")
	b.WriteString(secondaryStyle.Render("Resend (ctrl+r)"))
	b.WriteString("\n")
	b.WriteString(secondaryStyle.Render("enter verify · esc quit"))
	return b.String()
}

func (m Model) viewAddress() string {
	p := m.deps.Picker

	addr := m.address
	if addr == "" {
		addr = secondaryStyle.Render("resolving…")
	}

	var rows []string
	rows = append(rows,
		"center   "+p.Center().Coordinates(),
		"marker   "+p.Marker().Coordinates(),
		"address  "+addr,
	)
	if adv := p.Advisory(); adv != "" {
		rows = append(rows, alertStyle.Render("location "+adv))
	}

	var b strings.Builder
	b.WriteString(primaryStyle.Render("Where should we deliver?"))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")

	if sel := m.session.State.SelectedAddress; sel != "" {
		b.WriteString(stepDoneStyle.Render("Selected: " + sel))
		b.WriteString("\n")
	}
	b.WriteString(button("Confirm Location (c)", true))
	b.WriteString("  ")
	b.WriteString(button("Use Current (u)", true))
	b.WriteString("  ")
	b.WriteString(button("Continue", wizard.CanSubmit(m.session.State)))
	b.WriteString("\n")
	b.WriteString(secondaryStyle.Render("arrows move marker · c confirm · u use current · enter continue"))
	return b.String()
}

func (m Model) viewNutrition() string {
	f := m.deps.Form
	p := f.Profile

	rows := []struct {
		label, value string
	}{
		{"Age", m.numbers[0]},
		{"Gender", string(p.Gender)},
		{"Height (cm)", m.numbers[1]},
		{"Weight (kg)", m.numbers[2]},
		{"Activity", p.Activity.Label()},
		{"Goal", p.Goal.Label()},
		{"Diet", string(f.Diet)},
	}

	var form []string
	for i, r := range rows {
		marker := "  "
		label := secondaryStyle.Render(fmt.Sprintf("%-12s", r.label))
		if i == m.field {
			marker = cursorStyle.Render("› ")
		}
		value := r.value
		if value == "" {
			value = stepTodoStyle.Render("-")
		}
		form = append(form, marker+label+primaryStyle.Render(value))
	}

	var b strings.Builder
	b.WriteString(primaryStyle.Render("Your daily nutrition"))
	b.WriteString("\n")
	b.WriteString(strings.Join(form, "\n"))
	b.WriteString("\n")
	b.WriteString(RenderResult(f.Result, f.Source))
	b.WriteString("\n")
	if m.busy {
		b.WriteString(secondaryStyle.Render("working…"))
		b.WriteString("\n")
	}
	b.WriteString(secondaryStyle.Render("↑/↓ field · ←/→ change · enter calculate · ctrl+s save · ctrl+x clear"))
	return b.String()
}
