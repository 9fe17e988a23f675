package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellisbraun/haven/internal/service"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPreviewModel_CursorMovement(t *testing.T) {
	app := &App{Plans: &fakePlanService{}, Session: previewSession()}
	m := newPreviewModel(app)

	m.Update(keyMsg("j"))
	assert.Equal(t, 1, m.cursor)

	// Cursor clamps at the last event.
	m.Update(keyMsg("j"))
	assert.Equal(t, 1, m.cursor)

	m.Update(keyMsg("k"))
	assert.Equal(t, 0, m.cursor)
	m.Update(keyMsg("k"))
	assert.Equal(t, 0, m.cursor)
}

func TestPreviewModel_SwapTargetsCursor(t *testing.T) {
	plans := &fakePlanService{}
	app := &App{Plans: plans, Session: previewSession()}
	m := newPreviewModel(app)

	m.Update(keyMsg("j"))
	_, cmd := m.Update(keyMsg("s"))
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	// Drain the batch: one message is the swap result.
	var done bool
	drainCmd(cmd, func(msg tea.Msg) {
		if swapped, ok := msg.(swapDoneMsg); ok {
			done = true
			assert.NoError(t, swapped.err)
		}
	})
	require.True(t, done)
	assert.Equal(t, []int{1}, plans.swapped)
}

func TestPreviewModel_CommitQuitsWithOutcome(t *testing.T) {
	plans := &fakePlanService{}
	app := &App{Plans: plans, Session: previewSession()}
	m := newPreviewModel(app)

	_, cmd := m.Update(keyMsg("c"))
	require.NotNil(t, cmd)

	var result commitDoneMsg
	drainCmd(cmd, func(msg tea.Msg) {
		if committed, ok := msg.(commitDoneMsg); ok {
			result = committed
		}
	})
	require.NoError(t, result.err)
	assert.Equal(t, 2, result.inserted)

	_, quit := m.Update(result)
	require.NotNil(t, quit)
	assert.Contains(t, m.outcome, "Committed 2 activities")
}

func TestPreviewModel_CommitFailureKeepsDraft(t *testing.T) {
	plans := &fakePlanService{commitErr: assert.AnError}
	app := &App{Plans: plans, Session: previewSession()}
	m := newPreviewModel(app)

	_, cmd := m.Update(keyMsg("c"))
	var result commitDoneMsg
	drainCmd(cmd, func(msg tea.Msg) {
		if committed, ok := msg.(commitDoneMsg); ok {
			result = committed
		}
	})
	require.Error(t, result.err)

	_, quit := m.Update(result)
	assert.Nil(t, quit)
	assert.Equal(t, service.StatusPreviewing, app.Session.Status)
	assert.Contains(t, m.status, "still here")
}

func TestPreviewModel_Discard(t *testing.T) {
	plans := &fakePlanService{}
	app := &App{Plans: plans, Session: previewSession()}
	m := newPreviewModel(app)

	_, cmd := m.Update(keyMsg("d"))
	require.NotNil(t, cmd)
	assert.Equal(t, service.StatusEmpty, app.Session.Status)
	assert.Contains(t, m.outcome, "discarded")
}

func TestPreviewModel_QuitAbandonsDraft(t *testing.T) {
	plans := &fakePlanService{}
	app := &App{Plans: plans, Session: previewSession()}
	m := newPreviewModel(app)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, service.StatusEmpty, app.Session.Status)
	assert.Contains(t, m.outcome, "abandoned")
	assert.Contains(t, m.outcome, "not changed")
}

func TestPreviewModel_ViewListsEvents(t *testing.T) {
	app := &App{Plans: &fakePlanService{}, Session: previewSession()}
	m := newPreviewModel(app)

	out := m.View()
	assert.Contains(t, out, "Morning walk")
	assert.Contains(t, out, "Journaling")
	assert.Contains(t, out, "09:00-09:30")
}

// drainCmd executes a command tree, forwarding every produced message.
func drainCmd(cmd tea.Cmd, visit func(tea.Msg)) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			drainCmd(sub, visit)
		}
		return
	}
	visit(msg)
}
