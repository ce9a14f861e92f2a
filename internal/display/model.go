package display

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/nextday/internal/address"
	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/logger"
	"github.com/hammamikhairi/nextday/internal/notify"
	"github.com/hammamikhairi/nextday/internal/nutrition"
	"github.com/hammamikhairi/nextday/internal/wizard"
)

// MarkerStep is how far one arrow key moves the marker, in degrees.
const MarkerStep = 0.0005

// MsgCodeResent acknowledges the resend button. No code is sent.
const MsgCodeResent = "A new code is on its way"

const maxStatus = 4

// Nutrition form rows.
const (
	fieldAge = iota
	fieldGender
	fieldHeight
	fieldWeight
	fieldActivity
	fieldGoal
	fieldDiet
	fieldCount
)

// Deps are the collaborators the wizard drives.
type Deps struct {
	Engine *wizard.Engine
	Picker *address.Picker
	Form   *nutrition.Form
	Queue  *notify.Queue
	Log    *logger.Logger
}

// Messages.
type (
	sessionMsg struct {
		session *domain.Session
		err     error
	}
	addressMsg struct {
		marker  domain.LatLng
		address string
	}
	calcMsg    struct {
		result domain.MacroResult
		source domain.ResultSource
		err    error
	}
	saveMsg struct{ err error }

	// MountedMsg tells the model the picker finished locating the user.
	MountedMsg struct{}
)

// Model is the Bubble Tea model of the sign-up wizard.
type Model struct {
	ctx  context.Context
	deps Deps

	session *domain.Session
	phone   textinput.Model
	code    textinput.Model

	address string
	field   int
	numbers [3]string // age, height, weight as typed
	busy    bool
	status  []notify.Message
	width   int
}

// NewModel creates the wizard model for an already started session.
func NewModel(ctx context.Context, deps Deps, session *domain.Session) Model {
	m := Model{
		ctx:     ctx,
		deps:    deps,
		session: session,
		phone:   newInput("phone  ", "05xxxxxxxx", 20),
		code:    newInput("code   ", "6-digit code", 12),
	}
	m.phone.SetValue(session.State.Phone)
	m.code.SetValue(session.State.Code)
	m.syncNumbers()
	m.focus()
	return m
}

func newInput(prompt, placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = secondaryStyle
	ti.TextStyle = primaryStyle
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 24
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Session returns the session as last reported by the engine.
func (m Model) Session() *domain.Session { return m.session }

func (m Model) step() domain.Step { return m.session.State.Step }

func (m *Model) focus() {
	m.phone.Blur()
	m.code.Blur()
	switch m.step() {
	case domain.StepPhone:
		m.phone.Focus()
	case domain.StepCode:
		m.code.Focus()
	}
}

func (m *Model) syncNumbers() {
	p := m.deps.Form.Profile
	m.numbers[0] = formatNumber(float64(p.Age))
	m.numbers[1] = formatNumber(p.Height)
	m.numbers[2] = formatNumber(p.Weight)
}

func formatNumber(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
		switch m.step() {
		case domain.StepPhone:
			return m.updatePhone(msg)
		case domain.StepCode:
			return m.updateCode(msg)
		case domain.StepAddress:
			return m.updateAddress(msg)
		case domain.StepNutrition:
			return m.updateNutrition(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case sessionMsg:
		m.drain()
		if msg.err != nil {
			m.deps.Log.Error("wizard: %v", msg.err)
			m.pushAlert("Something went wrong, please try again")
			return m, nil
		}
		prev := m.step()
		m.session = msg.session
		m.focus()
		if prev != domain.StepAddress && m.step() == domain.StepAddress {
			return m, m.resolveCmd()
		}
		return m, nil

	case MountedMsg:
		m.drain()
		return m, m.resolveCmd()

	case addressMsg:
		// A lookup issued before the last move is superseded.
		if msg.marker != m.deps.Picker.Marker() {
			return m, nil
		}
		m.address = msg.address
		return m, nil

	case calcMsg:
		m.busy = false
		m.drain()
		if msg.err == nil {
			m.deps.Form.Result = msg.result
			m.deps.Form.Source = msg.source
		}
		return m, nil

	case saveMsg:
		m.busy = false
		m.drain()
		return m, nil
	}
	return m, nil
}

func (m Model) updatePhone(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return m, m.submitCmd(func(ctx context.Context, e *wizard.Engine, id string) error {
			_, err := e.SetPhone(ctx, id, m.phone.Value())
			return err
		})
	}
	var cmd tea.Cmd
	m.phone, cmd = m.phone.Update(msg)
	return m, cmd
}

func (m Model) updateCode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m, m.submitCmd(func(ctx context.Context, e *wizard.Engine, id string) error {
			_, err := e.SetCode(ctx, id, m.code.Value())
			return err
		})
	case tea.KeyCtrlR:
		m.pushNotice(MsgCodeResent)
		return m, nil
	}
	var cmd tea.Cmd
	m.code, cmd = m.code.Update(msg)
	return m, cmd
}

func (m Model) updateAddress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.deps.Picker
	pos := p.Marker()
	switch msg.String() {
	case "up", "k":
		pos.Lat += MarkerStep
	case "down", "j":
		pos.Lat -= MarkerStep
	case "right", "l":
		pos.Lng += MarkerStep
	case "left", "h":
		pos.Lng -= MarkerStep
	case "u":
		p.UseCurrent(m.ctx)
		m.address = ""
		return m, m.resolveCmd()
	case "c":
		return m, m.confirmCmd()
	case "enter":
		return m, m.submitCmd(nil)
	default:
		return m, nil
	}
	p.Click(m.ctx, pos)
	m.address = ""
	return m, m.resolveCmd()
}

func (m Model) updateNutrition(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	f := m.deps.Form

	switch msg.Type {
	case tea.KeyUp:
		m.field = (m.field + fieldCount - 1) % fieldCount
		return m, nil
	case tea.KeyDown, tea.KeyTab:
		m.field = (m.field + 1) % fieldCount
		return m, nil
	case tea.KeyLeft:
		m.cycle(-1)
		return m, nil
	case tea.KeyRight:
		m.cycle(1)
		return m, nil
	case tea.KeyEnter:
		m.busy = true
		return m, m.calcCmd()
	case tea.KeyCtrlS:
		m.busy = true
		return m, m.saveCmd()
	case tea.KeyCtrlX:
		f.Clear()
		m.syncNumbers()
		return m, nil
	case tea.KeyBackspace:
		if i, ok := numberIndex(m.field); ok && m.numbers[i] != "" {
			m.numbers[i] = m.numbers[i][:len(m.numbers[i])-1]
			m.applyNumbers()
		}
		return m, nil
	case tea.KeyRunes:
		i, ok := numberIndex(m.field)
		if !ok {
			return m, nil
		}
		for _, r := range msg.Runes {
			if (r >= '0' && r <= '9') || (r == '.' && i != 0 && !strings.Contains(m.numbers[i], ".")) {
				if len(m.numbers[i]) < 6 {
					m.numbers[i] += string(r)
				}
			}
		}
		m.applyNumbers()
		return m, nil
	}
	return m, nil
}

func numberIndex(field int) (int, bool) {
	switch field {
	case fieldAge:
		return 0, true
	case fieldHeight:
		return 1, true
	case fieldWeight:
		return 2, true
	}
	return 0, false
}

// applyNumbers copies the typed values into the profile. Unparseable or
// empty input becomes zero, which fails validation on calculate.
func (m *Model) applyNumbers() {
	p := &m.deps.Form.Profile
	age, _ := strconv.Atoi(m.numbers[0])
	p.Age = age
	p.Height, _ = strconv.ParseFloat(m.numbers[1], 64)
	p.Weight, _ = strconv.ParseFloat(m.numbers[2], 64)
}

func (m *Model) cycle(dir int) {
	f := m.deps.Form
	switch m.field {
	case fieldGender:
		if f.Profile.Gender == domain.GenderMale {
			f.Profile.Gender = domain.GenderFemale
		} else {
			f.Profile.Gender = domain.GenderMale
		}
	case fieldActivity:
		f.Profile.Activity = next(domain.ActivityFactors, f.Profile.Activity, dir)
	case fieldGoal:
		f.Profile.Goal = next([]domain.Goal{domain.GoalMaintain, domain.GoalLose, domain.GoalGain}, f.Profile.Goal, dir)
	case fieldDiet:
		f.SetDiet(next(domain.DietTypes, f.Diet, dir))
	}
}

// next returns the option dir places after cur, wrapping around.
func next[T comparable](opts []T, cur T, dir int) T {
	i := 0
	for j, o := range opts {
		if o == cur {
			i = j
			break
		}
	}
	n := len(opts)
	return opts[((i+dir)%n+n)%n]
}

func (m *Model) drain() {
	if m.deps.Queue == nil {
		return
	}
	for _, msg := range m.deps.Queue.Drain() {
		m.push(msg)
	}
}

func (m *Model) pushNotice(text string) { m.push(notify.Message{Kind: notify.KindNotice, Text: text}) }
func (m *Model) pushAlert(text string)  { m.push(notify.Message{Kind: notify.KindAlert, Text: text}) }

func (m *Model) push(msg notify.Message) {
	m.status = append(m.status, msg)
	if len(m.status) > maxStatus {
		m.status = m.status[len(m.status)-maxStatus:]
	}
}

// ── Commands ─────────────────────────────────────────────────────

// submitCmd runs edit (if any) and then tries to advance the session.
func (m Model) submitCmd(edit func(context.Context, *wizard.Engine, string) error) tea.Cmd {
	ctx, e, id := m.ctx, m.deps.Engine, m.session.ID
	return func() tea.Msg {
		if edit != nil {
			if err := edit(ctx, e, id); err != nil {
				return sessionMsg{err: err}
			}
		}
		s, err := e.Submit(ctx, id)
		return sessionMsg{session: s, err: err}
	}
}

// resolveCmd waits for the address of the marker as it is now.
func (m Model) resolveCmd() tea.Cmd {
	ctx, p := m.ctx, m.deps.Picker
	marker := p.Marker()
	return func() tea.Msg {
		return addressMsg{marker: marker, address: p.Resolved(ctx)}
	}
}

func (m Model) confirmCmd() tea.Cmd {
	ctx, p, e, id := m.ctx, m.deps.Picker, m.deps.Engine, m.session.ID
	return func() tea.Msg {
		addr := p.Confirm(ctx)
		s, err := e.ConfirmAddress(ctx, id, addr)
		return sessionMsg{session: s, err: err}
	}
}

// calcCmd works on a copy of the form so the view never races the
// calculation.
func (m Model) calcCmd() tea.Cmd {
	ctx, f := m.ctx, *m.deps.Form
	return func() tea.Msg {
		err := f.Calculate(ctx)
		return calcMsg{result: f.Result, source: f.Source, err: err}
	}
}

func (m Model) saveCmd() tea.Cmd {
	ctx, f := m.ctx, *m.deps.Form
	return func() tea.Msg {
		return saveMsg{err: f.Save(ctx)}
	}
}
