package tui

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fleetdesk/fleetdesk/internal/api"
	"github.com/fleetdesk/fleetdesk/internal/config"
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/listing"
	"github.com/fleetdesk/fleetdesk/internal/search"
	"github.com/fleetdesk/fleetdesk/internal/store"
	"github.com/fleetdesk/fleetdesk/internal/tui/components"
)

// Pane identifies which part of the screen has keyboard focus
type Pane int

const (
	PaneSidebar Pane = iota
	PaneList
	PaneForm
	PaneDetail
)

const sidebarWidth = 24

// queueNotifier collects form notices raised during synchronous
// validation so the update loop can move them onto the status bar.
type queueNotifier struct {
	mu   sync.Mutex
	msgs []StatusMsg
}

func (n *queueNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, StatusMsg{Message: msg})
}

func (n *queueNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, StatusMsg{Message: msg, IsError: true})
}

func (n *queueNotifier) drain() []StatusMsg {
	n.mu.Lock()
	defer n.mu.Unlock()
	msgs := n.msgs
	n.msgs = nil
	return msgs
}

// Model is the root bubbletea model
type Model struct {
	client *api.Client
	prefs  *store.PrefStore
	cfg    *config.Config
	logger *slog.Logger
	keys   KeyMap

	sidebar     components.Sidebar
	lists       map[domain.Resource]*components.ListView
	controllers map[domain.Resource]*listing.Controller[domain.Record]
	changes     chan domain.Resource
	filterKey   map[domain.Resource]int

	focus  Pane
	status components.StatusBar

	notifier     *queueNotifier
	formView     *components.FormView
	formResource domain.Resource
	formRecordID int64
	submitting   bool

	picker      components.Picker
	pickerField string
	refs        map[RefKind][]search.Candidate
	refsPartial map[RefKind]bool

	detail         domain.Record
	detailResource domain.Resource
	detailID       int64
	detailErr      string

	frame    int
	width    int
	height   int
	showHelp bool
}

// New creates the root model
func New(client *api.Client, prefs *store.PrefStore, cfg *config.Config, logger *slog.Logger) Model {
	return Model{
		client:      client,
		prefs:       prefs,
		cfg:         cfg,
		logger:      logger,
		keys:        DefaultKeyMap(),
		sidebar:     components.NewSidebar(),
		lists:       make(map[domain.Resource]*components.ListView),
		controllers: make(map[domain.Resource]*listing.Controller[domain.Record]),
		changes:     make(chan domain.Resource, 16),
		filterKey:   make(map[domain.Resource]int),
		notifier:    &queueNotifier{},
		picker:      components.NewPicker("Select"),
		refs:        make(map[RefKind][]search.Candidate),
		refsPartial: make(map[RefKind]bool),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	m.ensureController(m.sidebar.Selected())
	return tea.Batch(waitForListChange(m.changes), TickCmd())
}

// ensureController creates and loads the resource's list controller on
// first visit. A revisit re-fetches in the background so the stale rows
// stay visible until fresh ones arrive.
func (m Model) ensureController(resource domain.Resource) {
	if ctrl, ok := m.controllers[resource]; ok {
		ctrl.Refresh()
		return
	}

	res := resource
	ctrl := listing.NewController(
		fetcherFor(m.client, res),
		listing.WithDebounce[domain.Record](m.cfg.Search.Debounce()),
		listing.WithFilters[domain.Record](m.prefs.FilterPreset(res)),
		listing.WithOnChange[domain.Record](func() {
			select {
			case m.changes <- res:
			default:
				// A notification is already queued; the redraw it
				// triggers pulls the latest snapshot anyway.
			}
		}),
	)
	m.controllers[res] = ctrl

	view := components.NewListView(res)
	view.SetSize(m.listWidth(), m.listHeight())
	m.lists[res] = &view

	ctrl.Load()
}

func (m Model) activeList() *components.ListView {
	return m.lists[m.sidebar.Selected()]
}

func (m Model) activeController() *listing.Controller[domain.Record] {
	return m.controllers[m.sidebar.Selected()]
}

func (m Model) listWidth() int {
	return m.width - sidebarWidth - 4
}

func (m Model) listHeight() int {
	return m.height - 3
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sidebar.SetSize(sidebarWidth, m.listHeight())
		m.status.SetSize(msg.Width)
		m.picker.SetSize(min(60, msg.Width-4))
		for _, v := range m.lists {
			v.SetSize(m.listWidth(), m.listHeight())
		}
		if m.formView != nil {
			m.formView.SetSize(min(70, msg.Width-4), m.listHeight())
		}
		return m, nil

	case TickMsg:
		m.frame++
		if v := m.activeList(); v != nil {
			v.SetFrame(m.frame)
		}
		return m, TickCmd()

	case ListChangedMsg:
		if ctrl, ok := m.controllers[msg.Resource]; ok {
			m.lists[msg.Resource].SetSnapshot(ctrl.Snapshot(), ctrl.Filters())
		}
		return m, waitForListChange(m.changes)

	case DetailLoadedMsg:
		m.detail = msg.Record
		m.detailResource = msg.Resource
		m.detailID = msg.Record.GetID()
		m.detailErr = ""
		m.focus = PaneDetail
		return m, nil

	case DetailFailedMsg:
		m.logger.Error("detail load failed", "resource", msg.Resource, "id", msg.ID, "error", msg.Err)
		m.detail = nil
		m.detailResource = msg.Resource
		m.detailID = msg.ID
		m.detailErr = listing.DisplayError(msg.Err)
		m.focus = PaneDetail
		return m, nil

	case SubmitResultMsg:
		return m.handleSubmitResult(msg)

	case RefsLoadedMsg:
		m.refs[msg.Kind] = msg.Items
		m.refsPartial[msg.Kind] = msg.Partial
		if m.picker.IsVisible() {
			m.picker.SetCandidates(msg.Items, msg.Partial)
		}
		return m, nil

	case StatusMsg:
		m.status.SetMessage(msg.Message, msg.IsError)
		return m, ClearStatusCmd()

	case ClearStatusMsg:
		m.status.Clear()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit, except while typing
	if key.Matches(msg, m.keys.Quit) && !m.typing() {
		m.closeControllers()
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if key.Matches(msg, m.keys.Help) && !m.typing() {
		m.showHelp = true
		return m, nil
	}

	if m.picker.IsVisible() {
		return m.handlePickerKey(msg)
	}

	switch m.focus {
	case PaneForm:
		return m.handleFormKey(msg)
	case PaneDetail:
		return m.handleDetailKey(msg)
	case PaneList:
		return m.handleListKey(msg)
	default:
		return m.handleSidebarKey(msg)
	}
}

// typing reports whether a text input currently owns the keyboard
func (m Model) typing() bool {
	if m.picker.IsVisible() || m.focus == PaneForm {
		return true
	}
	if v := m.activeList(); v != nil && v.Searching() {
		return true
	}
	return false
}

func (m *Model) closeControllers() {
	for _, ctrl := range m.controllers {
		ctrl.Close()
	}
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.sidebar.MoveUp()
		m.ensureController(m.sidebar.Selected())
	case key.Matches(msg, m.keys.Down):
		m.sidebar.MoveDown()
		m.ensureController(m.sidebar.Selected())
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Enter):
		m.focus = PaneList
		m.sidebar.SetFocused(false)
		if v := m.activeList(); v != nil {
			v.SetFocused(true)
		}
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.activeList()
	ctrl := m.activeController()
	if view == nil || ctrl == nil {
		return m, nil
	}
	resource := m.sidebar.Selected()

	if view.Searching() {
		switch {
		case key.Matches(msg, m.keys.Enter):
			view.StopSearch()
			if term := strings.TrimSpace(view.SearchValue()); term != "" {
				if err := m.prefs.AddRecentSearch(resource, term); err != nil {
					m.logger.Warn("failed to save recent search", "error", err)
				}
			}
		case key.Matches(msg, m.keys.Escape):
			view.StopSearch()
			view.ClearSearch()
			ctrl.SetSearch("")
		default:
			changed, cmd := view.UpdateSearch(msg)
			if changed {
				ctrl.SetSearch(view.SearchValue())
			}
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.focus = PaneSidebar
		m.sidebar.SetFocused(true)
		view.SetFocused(false)
	case key.Matches(msg, m.keys.Up):
		view.MoveUp()
	case key.Matches(msg, m.keys.Down):
		if view.MoveDown() {
			ctrl.LoadMore()
		}
	case key.Matches(msg, m.keys.Search):
		view.StartSearch()
	case key.Matches(msg, m.keys.Filter):
		m.cycleFilter(resource, ctrl)
	case key.Matches(msg, m.keys.Tab):
		m.nextFilterKey(resource)
	case key.Matches(msg, m.keys.SavePreset):
		if err := m.prefs.SaveFilterPreset(resource, ctrl.Filters()); err != nil {
			m.status.SetMessage("Couldn't save filter preset", true)
		} else {
			m.status.SetMessage("Filter preset saved", false)
		}
		return m, ClearStatusCmd()
	case key.Matches(msg, m.keys.Refresh):
		ctrl.Refresh()
	case key.Matches(msg, m.keys.Retry):
		if view.Snapshot().Err != "" {
			ctrl.Retry()
		}
	case key.Matches(msg, m.keys.LoadMore), key.Matches(msg, m.keys.PageDown):
		ctrl.LoadMore()
	case key.Matches(msg, m.keys.Enter):
		if record := view.Selected(); record != nil {
			if hasDetailEndpoint(resource) {
				return m, LoadDetailCmd(m.client, resource, record.GetID())
			}
			// No detail endpoint; the list record carries everything.
			m.detail = record
			m.detailResource = resource
			m.focus = PaneDetail
		}
	case key.Matches(msg, m.keys.New):
		if editable(resource) {
			return m.openForm(resource, nil)
		}
	case key.Matches(msg, m.keys.Edit):
		if record := view.Selected(); record != nil && updatable(resource) {
			return m.openForm(resource, record)
		}
	}
	return m, nil
}

// cycleFilter advances the active filter key to its next value. The
// list re-fetches page 1 immediately; there is no debounce on filters.
func (m Model) cycleFilter(resource domain.Resource, ctrl *listing.Controller[domain.Record]) {
	keys := filterKeys(resource)
	if len(keys) == 0 {
		return
	}
	active := keys[m.filterKey[resource]%len(keys)]
	values := resource.FilterValues()[active]

	current := ctrl.Filter(active)
	if current == "" {
		current = "all"
	}
	next := values[0]
	for i, v := range values {
		if v == current {
			next = values[(i+1)%len(values)]
			break
		}
	}
	ctrl.SetFilter(active, next)
}

func (m Model) nextFilterKey(resource domain.Resource) {
	if keys := filterKeys(resource); len(keys) > 1 {
		m.filterKey[resource] = (m.filterKey[resource] + 1) % len(keys)
	}
}

func filterKeys(resource domain.Resource) []string {
	values := resource.FilterValues()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// openForm opens the create or edit form for a resource
func (m Model) openForm(resource domain.Resource, record domain.Record) (tea.Model, tea.Cmd) {
	f := newForm(resource, m.notifier)
	if f == nil {
		return m, nil
	}

	title := "New " + strings.TrimSuffix(resource.Title(), "s")
	m.formRecordID = 0
	if record != nil {
		prefill(f, record)
		m.formRecordID = record.GetID()
		title = "Edit " + record.GetTitle()
	}

	view := components.NewFormView(title, f)
	view.SetSize(min(70, m.width-4), m.listHeight())
	m.formView = &view
	m.formResource = resource
	m.focus = PaneForm

	// Reference pickers keep working from cached candidates when the
	// load fails; the form itself never blocks on them.
	switch resource {
	case domain.ResourceFaultReports:
		return m, LoadVehicleRefsCmd(m.client, m.logger)
	case domain.ResourceCategories:
		return m, LoadCategoryRefsCmd(m.client, m.logger)
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.formView
	if view == nil {
		m.focus = PaneList
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.formView = nil
		m.focus = PaneList
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	case key.Matches(msg, m.keys.Tab):
		view.NextSection()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		view.NextField()
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		view.PrevField()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		if kind, ok := pickerFor(m.formResource, m.focusedFieldName()); ok {
			m.picker.SetCandidates(m.refs[kind], m.refsPartial[kind])
			m.picker.Show()
			return m, nil
		}
		view.NextField()
		return m, nil
	}

	return m, view.UpdateInput(msg)
}

func (m Model) focusedFieldName() string {
	if m.formView == nil {
		return ""
	}
	return m.formView.FocusedField()
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	if m.submitting || m.formView == nil {
		return m, nil
	}
	f := m.formView.Form()

	if !f.Validate() {
		m.formView.Resync()
		return m.drainNotices()
	}

	m.submitting = true
	submit := submitFunc(m.client, m.formResource, f, m.formRecordID)
	return m, SubmitCmd(m.formResource, submit)
}

// drainNotices moves queued form notices onto the status bar
func (m Model) drainNotices() (tea.Model, tea.Cmd) {
	msgs := m.notifier.drain()
	if len(msgs) == 0 {
		return m, nil
	}
	last := msgs[len(msgs)-1]
	m.status.SetMessage(last.Message, last.IsError)
	return m, ClearStatusCmd()
}

func (m Model) handleSubmitResult(msg SubmitResultMsg) (tea.Model, tea.Cmd) {
	m.submitting = false

	if msg.Validation != nil {
		if m.formView != nil {
			m.formView.Form().ApplyServerErrors(msg.Validation.Message, msg.Validation.Fields)
			m.formView.Resync()
		} else {
			m.notifier.Error(msg.Validation.Message)
		}
		return m.drainNotices()
	}
	if msg.Err != nil {
		m.notifier.Error(msg.Err.Error())
		return m.drainNotices()
	}

	m.formView = nil
	m.focus = PaneList
	if ctrl, ok := m.controllers[msg.Resource]; ok {
		ctrl.Refresh()
	}
	m.notifier.Success(msg.Resource.Title() + " saved")
	return m.drainNotices()
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Raw key types only: letters must reach the filter input
	switch msg.Type {
	case tea.KeyEsc:
		m.picker.Hide()
		return m, nil
	case tea.KeyUp:
		m.picker.MoveUp()
		return m, nil
	case tea.KeyDown:
		m.picker.MoveDown()
		return m, nil
	case tea.KeyEnter:
		if candidate, ok := m.picker.Selected(); ok && m.formView != nil {
			name := m.formView.FocusedField()
			m.formView.Form().SetValue(name, strconv.FormatInt(candidate.ID, 10))
			m.formView.Resync()
			m.formView.FocusField(name)
		}
		m.picker.Hide()
		return m, nil
	}
	return m, m.picker.Update(msg)
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Left):
		m.detail = nil
		m.detailErr = ""
		m.focus = PaneList
	case key.Matches(msg, m.keys.Retry):
		if m.detailErr != "" {
			return m, LoadDetailCmd(m.client, m.detailResource, m.detailID)
		}
	case key.Matches(msg, m.keys.Edit):
		if m.detail != nil && updatable(m.detailResource) {
			record := m.detail
			m.detail = nil
			return m.openForm(m.detailResource, record)
		}
	}
	return m, nil
}
