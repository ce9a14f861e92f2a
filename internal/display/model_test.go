package display

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/nextday/internal/address"
	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/logger"
	"github.com/hammamikhairi/nextday/internal/meal"
	"github.com/hammamikhairi/nextday/internal/notify"
	"github.com/hammamikhairi/nextday/internal/nutrition"
	"github.com/hammamikhairi/nextday/internal/storage"
	"github.com/hammamikhairi/nextday/internal/wizard"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	ctx := context.Background()
	log := logger.New(logger.LevelOff, nil)
	q := notify.NewQueue(log)

	engine := wizard.New(storage.NewMemoryStore(log), log)
	session, err := engine.Start(ctx)
	require.NoError(t, err)

	return NewModel(ctx, Deps{
		Engine: engine,
		Picker: address.NewPicker(nil, nil, log, address.WithNotifier(q)),
		Form:   nutrition.NewForm(nutrition.NewService(log, nutrition.WithNotifier(q))),
		Queue:  q,
		Log:    log,
	}, session)
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

// send delivers msg and, when run is set, keeps feeding command results
// back into the model until none is left.
func send(t *testing.T, m Model, msg tea.Msg, run bool) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	out := next.(Model)
	for i := 0; run && cmd != nil && i < 8; i++ {
		next, cmd = out.Update(cmd())
		out = next.(Model)
	}
	return out
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = send(t, m, runes(string(r)), false)
	}
	return m
}

func TestPhoneStepGuard(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, domain.StepPhone, m.step())

	m = send(t, m, key(tea.KeyEnter), true)
	require.Equal(t, domain.StepPhone, m.step(), "empty phone must not advance")
	require.Empty(t, m.status, "blocked submit is silent")

	m = typeText(t, m, "0501234567")
	m = send(t, m, key(tea.KeyEnter), true)
	require.Equal(t, domain.StepCode, m.step())
	require.Equal(t, "0501234567", m.Session().State.Phone)
}

func TestCodeStepGuardAndResend(t *testing.T) {
	m := newTestModel(t)
	m = typeText(t, m, "0501234567")
	m = send(t, m, key(tea.KeyEnter), true)

	m = send(t, m, key(tea.KeyCtrlR), false)
	require.Equal(t, MsgCodeResent, m.status[len(m.status)-1].Text)
	require.Equal(t, domain.StepCode, m.step())

	m = typeText(t, m, "12345")
	m = send(t, m, key(tea.KeyEnter), true)
	require.Equal(t, domain.StepCode, m.step())

	m = typeText(t, m, "6")
	m = send(t, m, key(tea.KeyEnter), true)
	require.Equal(t, domain.StepAddress, m.step())
}

func walkToAddress(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t)
	m = typeText(t, m, "0501234567")
	m = send(t, m, key(tea.KeyEnter), true)
	m = typeText(t, m, "123456")
	m = send(t, m, key(tea.KeyEnter), true)
	require.Equal(t, domain.StepAddress, m.step())
	return m
}

func TestAddressStep(t *testing.T) {
	m := walkToAddress(t)
	require.Equal(t, "24.713600, 46.675300", m.address)

	m = send(t, m, key(tea.KeyEnter), true)
	require.Equal(t, domain.StepAddress, m.step(), "no address confirmed yet")

	m = send(t, m, key(tea.KeyUp), true)
	require.InDelta(t, 24.7136+MarkerStep, m.deps.Picker.Marker().Lat, 1e-9)
	require.Equal(t, "24.714100, 46.675300", m.address)

	m = send(t, m, runes("u"), true)
	require.Equal(t, address.DefaultCenter, m.deps.Picker.Marker())

	m = send(t, m, runes("c"), true)
	require.Equal(t, "24.774265, 46.675300", m.Session().State.SelectedAddress)
	require.Equal(t, domain.StepAddress, m.step(), "confirm does not advance")

	m = send(t, m, key(tea.KeyEnter), true)
	require.Equal(t, domain.StepNutrition, m.step())
}

func TestAddressFromBeforeMoveIsDropped(t *testing.T) {
	m := walkToAddress(t)

	oldCmd := m.resolveCmd()
	oldMsg := oldCmd()

	m = send(t, m, key(tea.KeyDown), false)
	require.Empty(t, m.address)

	next, _ := m.Update(oldMsg)
	m = next.(Model)
	require.Empty(t, m.address, "address resolved for the previous marker must not show")

	next, _ = m.Update(m.resolveCmd()())
	m = next.(Model)
	require.Equal(t, "24.713100, 46.675300", m.address)
}

func TestMountedDrainsAdvisory(t *testing.T) {
	m := newTestModel(t)
	require.Error(t, m.deps.Picker.Mount(context.Background()))

	m = send(t, m, MountedMsg{}, true)
	require.Len(t, m.status, 1)
	require.Contains(t, m.status[0].Text, address.AdvisoryUnavailable)
	require.NotEmpty(t, m.address)
}

func walkToNutrition(t *testing.T) Model {
	t.Helper()
	m := walkToAddress(t)
	m = send(t, m, runes("c"), true)
	m = send(t, m, key(tea.KeyEnter), true)
	require.Equal(t, domain.StepNutrition, m.step())
	return m
}

func TestNutritionCalculate(t *testing.T) {
	m := walkToNutrition(t)
	require.Equal(t, "30", m.numbers[0])

	m = send(t, m, key(tea.KeyEnter), true)
	require.False(t, m.busy)
	require.Equal(t, 2605, m.deps.Form.Result.Calories)

	// Goal row: lose weight.
	for m.field != fieldGoal {
		m = send(t, m, key(tea.KeyDown), false)
	}
	m = send(t, m, key(tea.KeyRight), false)
	require.Equal(t, domain.GoalLose, m.deps.Form.Profile.Goal)
	m = send(t, m, key(tea.KeyEnter), true)
	require.Equal(t, 2105, m.deps.Form.Result.Calories)

	// Diet row recomputes immediately.
	m = send(t, m, key(tea.KeyDown), false)
	m = send(t, m, key(tea.KeyRight), false)
	require.Equal(t, domain.DietHighProtein, m.deps.Form.Diet)
	require.Equal(t, nutrition.Calculate(m.deps.Form.Profile, domain.DietHighProtein), m.deps.Form.Result)
}

func TestNutritionEditNumbers(t *testing.T) {
	m := walkToNutrition(t)

	m = send(t, m, key(tea.KeyBackspace), false)
	m = send(t, m, key(tea.KeyBackspace), false)
	require.Zero(t, m.deps.Form.Profile.Age)
	m = send(t, m, runes("4x0"), false)
	require.Equal(t, "40", m.numbers[0])
	require.Equal(t, 40, m.deps.Form.Profile.Age)

	m = send(t, m, key(tea.KeyDown), false)
	m = send(t, m, key(tea.KeyDown), false)
	require.Equal(t, fieldHeight, m.field)
	m = send(t, m, key(tea.KeyBackspace), false)
	m = send(t, m, runes("2.5.1"), false)
	require.Equal(t, "172.51", m.numbers[1])
}

func TestNutritionClearAndRequiredFields(t *testing.T) {
	m := walkToNutrition(t)

	m = send(t, m, key(tea.KeyCtrlX), false)
	require.Equal(t, [3]string{}, m.numbers)
	require.Equal(t, domain.PlaceholderResult(), m.deps.Form.Result)

	m = send(t, m, key(tea.KeyEnter), true)
	require.Equal(t, domain.PlaceholderResult(), m.deps.Form.Result)
	require.Equal(t, nutrition.MsgRequiredFields, m.status[len(m.status)-1].Text)
	require.Equal(t, notify.KindAlert, m.status[len(m.status)-1].Kind)
}

func TestNutritionSaveWithoutBackend(t *testing.T) {
	m := walkToNutrition(t)

	m = send(t, m, key(tea.KeyCtrlS), true)
	require.False(t, m.busy)
	require.Equal(t, nutrition.MsgProfileNoBackend, m.status[len(m.status)-1].Text)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNext(t *testing.T) {
	opts := []string{"a", "b", "c"}
	require.Equal(t, "b", next(opts, "a", 1))
	require.Equal(t, "a", next(opts, "c", 1))
	require.Equal(t, "c", next(opts, "a", -1))
	require.Equal(t, "a", next(opts, "zzz", 0))
}

func TestViewsRender(t *testing.T) {
	m := newTestModel(t)
	require.Contains(t, m.View(), "phone number")

	m = walkToAddress(t)
	v := m.View()
	require.Contains(t, v, "24.713600, 46.675300")
	require.Contains(t, v, "Confirm Location")

	m = walkToNutrition(t)
	require.Contains(t, m.View(), "1941 kcal")
}

func TestRenderHelpers(t *testing.T) {
	out := RenderResult(nutrition.Calculate(domain.DefaultProfile(), domain.DietBalanced), domain.SourceFallback)
	require.Contains(t, out, "2605 kcal")
	require.Contains(t, out, "(65 - 182)")
	require.Contains(t, out, "calculated offline")

	out = RenderMeal("x", []meal.Field{{Key: "name", Value: "Oat Berry Cup"}})
	require.Contains(t, out, "Oat Berry Cup")

	banner := renderBanner(200)
	require.True(t, strings.HasPrefix(banner, " "))
	require.Contains(t, banner, Tagline)

	wideFirst := strings.SplitN(banner, "\n", 2)[0]
	narrowFirst := strings.SplitN(renderBanner(10), "\n", 2)[0]
	require.Greater(t, len(wideFirst), len(narrowFirst), "no indent when the terminal is narrower than the art")
}
