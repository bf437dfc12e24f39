package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-pkgz/lgr"

	"clarity/internal/config"
	"clarity/internal/session"
	"clarity/internal/storage"
	"clarity/internal/task"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeSearch
	modeDate
	modeOnboarding
)

// orderSavedMsg reports the result of a persisted reorder. The on-screen
// order is already updated when this arrives; a failure is only logged.
type orderSavedMsg struct {
	err error
}

type Model struct {
	store    storage.Store
	cfg      config.Config
	log      lgr.L
	ctx      context.Context
	sessions *session.Provider
	profile  session.Profile

	tasks  []task.Task // full backing sequence, optimistic working copy
	cursor int         // index within the visible (filtered) view
	mode   mode

	query string
	day   time.Time

	input      textinput.Model
	form       *formState
	drag       *dragState
	onboarding *onboardingState
	confirmDel *task.Task

	status  string
	loadErr bool
}

// Run loads the task list and starts the program. A load failure does not
// abort: the list renders empty with a visible error state.
func Run(store storage.Store, cfg config.Config, logger lgr.L, sessions *session.Provider) error {
	m := New(store, cfg, logger, sessions)
	program := tea.NewProgram(m, tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}

func New(store storage.Store, cfg config.Config, logger lgr.L, sessions *session.Provider) Model {
	ctx := context.Background()

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		store:    store,
		cfg:      cfg,
		log:      logger,
		ctx:      ctx,
		sessions: sessions,
		input:    ti,
		mode:     modeList,
		status:   "Press 'a' to add, 'g' to move, '/' to search.",
	}

	tasks, err := store.LoadAll(ctx)
	if err != nil {
		logger.Logf("[ERROR] could not load tasks: %v", err)
		m.loadErr = true
		m.status = "Could not load tasks; starting empty"
	} else {
		m.tasks = tasks
	}

	if sessions != nil {
		profile, err := sessions.Load()
		if err != nil {
			logger.Logf("[WARN] could not load profile: %v", err)
		}
		m.profile = profile
		if profile.IsNewUser() {
			m.mode = modeOnboarding
			m.onboarding = &onboardingState{}
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case orderSavedMsg:
		if msg.err != nil {
			// Accepted gap: the optimistic order stays on screen.
			m.log.Logf("[ERROR] could not persist task order: %v", msg.err)
			m.status = "Warning: order not saved (see log)"
		}
		return m, nil
	case tea.WindowSizeMsg:
		if msg.Width > 10 {
			m.input.Width = msg.Width - 10
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.mode {
	case modeOnboarding:
		return m.updateOnboarding(key, msg)
	case modeForm:
		return m.updateFormMode(key, msg)
	case modeSearch, modeDate:
		return m.updateFilterInput(key, msg)
	}
	if m.confirmDel != nil {
		return m.updateDeleteConfirm(key)
	}
	if m.dragging() {
		return m.updateDragMode(key)
	}
	return m.updateListMode(key)
}

// visible is the filtered view; the cursor always addresses it.
func (m Model) visible() []task.Task {
	return task.Filter(m.tasks, m.query, m.day)
}

func (m Model) filterActive() bool {
	return m.query != "" || !m.day.IsZero()
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	visible := m.visible()
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		if len(visible) == 0 {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor+1, len(visible))
	case m.cfg.Keys.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(visible))
		}
	case m.cfg.Keys.Add:
		m.mode = modeForm
		m.form = newFormState(nil)
		m.input.SetValue("")
		m.input.Placeholder = m.form.currentLabel()
		m.input.Focus()
		m.status = "Add mode: enter to advance, esc to cancel"
	case m.cfg.Keys.Edit:
		if len(visible) == 0 {
			m.status = "No tasks to edit"
			return m, nil
		}
		t := visible[clampCursor(m.cursor, len(visible))]
		m.mode = modeForm
		m.form = newFormState(&t)
		m.input.SetValue(m.form.currentValue())
		m.input.Placeholder = m.form.currentLabel()
		m.input.Focus()
		m.status = "Edit mode: enter to advance, esc to cancel"
	case m.cfg.Keys.Toggle:
		if len(visible) == 0 {
			return m, nil
		}
		t := visible[clampCursor(m.cursor, len(visible))]
		done := !t.Completed
		updated, err := m.store.Update(m.ctx, t.ID, storage.Patch{Completed: &done})
		if err != nil {
			m.log.Logf("[ERROR] could not toggle task %d: %v", t.ID, err)
			m.status = fmt.Sprintf("toggle failed: %v", err)
			return m, nil
		}
		if i := task.IndexByID(m.tasks, t.ID); i >= 0 {
			m.tasks[i] = updated
		}
		m.status = "Toggled task"
	case m.cfg.Keys.Delete:
		if len(visible) == 0 {
			return m, nil
		}
		t := visible[clampCursor(m.cursor, len(visible))]
		m.confirmDel = &t
		m.status = fmt.Sprintf("Delete %q? y/n", t.Title)
	case m.cfg.Keys.Grab:
		if len(visible) == 0 {
			m.status = "No tasks to move"
			return m, nil
		}
		return m.lift(clampCursor(m.cursor, len(visible))), nil
	case m.cfg.Keys.MoveUp:
		moved, changed := m.stepMove(-1)
		if changed {
			return moved, moved.persistOrder()
		}
		return moved, nil
	case m.cfg.Keys.MoveDown:
		moved, changed := m.stepMove(1)
		if changed {
			return moved, moved.persistOrder()
		}
		return moved, nil
	case m.cfg.Keys.Search:
		m.mode = modeSearch
		m.input.SetValue(m.query)
		m.input.Placeholder = "Search tasks"
		m.input.Focus()
		m.status = "Search: enter to apply, esc to cancel"
	case m.cfg.Keys.DateFilter:
		m.mode = modeDate
		m.input.SetValue(task.FormatDate(m.day))
		m.input.Placeholder = "YYYY-MM-DD"
		m.input.Focus()
		m.status = "Date filter: enter to apply, esc to cancel"
	case m.cfg.Keys.ClearFilters:
		if m.filterActive() {
			m.query = ""
			m.day = time.Time{}
			m.cursor = clampCursor(m.cursor, len(m.visible()))
			m.status = "Filters cleared"
		}
	}
	return m, nil
}

func (m Model) updateDragMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		return m.cancelDrag(), nil
	case m.cfg.Keys.Down, "down":
		return m.hoverTo(m.cursor + 1), nil
	case m.cfg.Keys.Up, "up":
		return m.hoverTo(m.cursor - 1), nil
	case m.cfg.Keys.Confirm, "enter", m.cfg.Keys.Grab:
		dropped, changed := m.drop()
		if changed {
			return dropped, dropped.persistOrder()
		}
		return dropped, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// persistOrder pushes the already-applied order to the store off the event
// path. The UI never blocks on it and never rolls back.
func (m Model) persistOrder() tea.Cmd {
	tasks := make([]task.Task, len(m.tasks))
	copy(tasks, m.tasks)
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		return orderSavedMsg{err: store.SaveAll(ctx, tasks)}
	}
}

func (m Model) updateFormMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.mode = modeList
		m.form = nil
		m.input.Blur()
		m.input.SetValue("")
		m.status = "Cancelled"
		return m, nil
	case "tab", "shift+tab":
		m.form.setCurrentValue(m.input.Value())
		if key == "tab" {
			m.form.index = wrapIndex(m.form.index+1, len(formFields()))
		} else {
			m.form.index = wrapIndex(m.form.index-1, len(formFields()))
		}
		m.input.SetValue(m.form.currentValue())
		m.input.Placeholder = m.form.currentLabel()
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		m.form.setCurrentValue(m.input.Value())
		if !m.form.lastField() {
			m.form.index++
			m.input.SetValue(m.form.currentValue())
			m.input.Placeholder = m.form.currentLabel()
			return m, nil
		}
		return m.saveForm()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) saveForm() (tea.Model, tea.Cmd) {
	newTask, patch, err := m.form.build()
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	if m.form.taskID == 0 {
		created, err := m.store.Create(m.ctx, newTask)
		if err != nil {
			m.log.Logf("[ERROR] could not create task: %v", err)
			m.status = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		m.tasks = append(m.tasks, created)
		if i := task.IndexByID(m.visible(), created.ID); i >= 0 {
			m.cursor = i
		}
		m.status = "Added task"
	} else {
		updated, err := m.store.Update(m.ctx, m.form.taskID, patch)
		if err != nil {
			m.log.Logf("[ERROR] could not update task %d: %v", m.form.taskID, err)
			m.status = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		if i := task.IndexByID(m.tasks, updated.ID); i >= 0 {
			m.tasks[i] = updated
		}
		m.status = "Saved task"
	}

	m.mode = modeList
	m.form = nil
	m.input.Blur()
	m.input.SetValue("")
	m.cursor = clampCursor(m.cursor, len(m.visible()))
	return m, nil
}

func (m Model) updateFilterInput(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.mode = modeList
		m.input.Blur()
		m.input.SetValue("")
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		value := strings.TrimSpace(m.input.Value())
		if m.mode == modeSearch {
			m.query = value
			m.status = "Search applied"
			if value == "" {
				m.status = "Search cleared"
			}
		} else {
			day, err := task.ParseDate(value)
			if err != nil {
				m.status = fmt.Sprintf("date invalid: %v", err)
				return m, nil
			}
			m.day = day
			m.status = "Date filter applied"
			if day.IsZero() {
				m.status = "Date filter cleared"
			}
		}
		m.mode = modeList
		m.input.Blur()
		m.input.SetValue("")
		m.cursor = clampCursor(m.cursor, len(m.visible()))
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", m.cfg.Keys.Cancel, "esc":
		m.status = "Delete cancelled"
		m.confirmDel = nil
		return m, nil
	case "y", "Y":
		t := m.confirmDel
		m.confirmDel = nil
		if err := m.store.Delete(m.ctx, t.ID); err != nil {
			m.log.Logf("[ERROR] could not delete task %d: %v", t.ID, err)
			m.status = fmt.Sprintf("delete failed: %v", err)
			return m, nil
		}
		if i := task.IndexByID(m.tasks, t.ID); i >= 0 {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
		}
		m.cursor = clampCursor(m.cursor, len(m.visible()))
		m.status = "Deleted task"
		return m, nil
	default:
		return m, nil
	}
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
