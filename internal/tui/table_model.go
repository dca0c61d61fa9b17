package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/recordgrid/internal/debounce"
	"github.com/rshade/recordgrid/internal/grid"
	"github.com/rshade/recordgrid/internal/logging"
	"github.com/rshade/recordgrid/internal/records"
)

const searchDebounceKey = "search"

// Options configures a DataTableModel.
type Options struct {
	PageSize int
	// Debounce is the search quiescence window. Zero applies each keystroke
	// on the next message.
	Debounce time.Duration
	// LoadingDelay is how long the spinner shows before the table.
	LoadingDelay time.Duration
}

// RecordsReloadedMsg replaces the dataset while keeping the current search,
// filters and sort. Err reports a failed reload; the old records stay.
type RecordsReloadedMsg struct {
	Records []records.Record
	Source  string
	Err     error
}

// loadingDoneMsg ends the loading state.
type loadingDoneMsg struct{}

// focusArea is the control receiving key presses in the list view.
type focusArea int

const (
	focusTable focusArea = iota
	focusSearch
	focusCategory
	focusStatus
)

// DataTableModel is the Bubble Tea model for the interactive record table.
// All state changes go through its grid.Controller.
type DataTableModel struct {
	ctx   context.Context
	state ViewState

	grid *grid.Controller
	view grid.View

	// Interactive components
	table      table.Model
	search     textinput.Model
	debouncer  *debounce.Debouncer
	categories *Dropdown
	statuses   *Dropdown
	focus      focusArea

	// Loading spinner
	loading      *LoadingState
	loadingDelay time.Duration

	selected records.Record
	notice   string

	width  int
	height int
}

// NewDataTableModel creates the model in its loading state.
func NewDataTableModel(ctx context.Context, recs []records.Record, opts Options) *DataTableModel {
	g := grid.New(ctx, recs, grid.Options{PageSize: opts.PageSize})

	m := &DataTableModel{
		ctx:          ctx,
		state:        ViewStateLoading,
		grid:         g,
		search:       newSearchInput(),
		debouncer:    debounce.New(searchDebounceKey, opts.Debounce),
		categories:   NewDropdown("Category", g.Categories()),
		statuses:     NewDropdown("Status", g.Statuses()),
		loading:      NewLoadingState(),
		loadingDelay: opts.LoadingDelay,
		width:        defaultWidth,
		height:       defaultHeight,
	}
	m.refresh()
	return m
}

// newSearchInput creates the search box.
func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search by name, category, status, ID..."
	ti.CharLimit = searchCharLimit
	ti.Width = searchWidth
	return ti
}

// Init starts the spinner and the loading timer.
func (m *DataTableModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.loadingTimer())
}

func (m *DataTableModel) loadingTimer() tea.Cmd {
	if m.loadingDelay <= 0 {
		return func() tea.Msg { return loadingDoneMsg{} }
	}
	return tea.Tick(m.loadingDelay, func(time.Time) tea.Msg { return loadingDoneMsg{} })
}

// Update handles messages (Bubble Tea interface).
func (m *DataTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.categories.SetHeight(min(dropdownHeight, m.bodyHeight()))
		m.statuses.SetHeight(min(dropdownHeight, m.bodyHeight()))
		m.rebuildTable()
		return m, nil
	case loadingDoneMsg:
		if m.state == ViewStateLoading {
			m.state = ViewStateList
		}
		return m, nil
	case spinner.TickMsg:
		if m.state == ViewStateLoading {
			return m, m.loading.Update(msg)
		}
		return m, nil
	case RecordsReloadedMsg:
		m.handleRecordsReloaded(msg)
		return m, nil
	case debounce.FiredMsg:
		if m.debouncer.Accept(msg) {
			m.grid.SetSearch(msg.Value)
			m.refresh()
		}
		return m, nil
	}

	switch m.state {
	case ViewStateLoading:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == keyCtrlC {
			return m.quit()
		}
		return m, nil
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m *DataTableModel) quit() (tea.Model, tea.Cmd) {
	m.state = ViewStateQuitting
	m.debouncer.Cancel()
	return m, tea.Quit
}

func (m *DataTableModel) handleRecordsReloaded(msg RecordsReloadedMsg) {
	logger := logging.FromContext(m.ctx)
	if msg.Err != nil {
		logger.Warn().Ctx(m.ctx).
			Str("component", "tui").
			Str("source", msg.Source).
			Err(msg.Err).
			Msg("record reload failed, keeping previous records")
		m.notice = "Reload failed: " + msg.Err.Error()
		return
	}

	m.grid.ReplaceRecords(msg.Records)
	m.categories.SetOptions(m.grid.Categories())
	m.statuses.SetOptions(m.grid.Statuses())
	m.notice = "Reloaded " + FormatCount(len(msg.Records)) + " records"
	m.refresh()

	logger.Info().Ctx(m.ctx).
		Str("component", "tui").
		Str("source", msg.Source).
		Int("records", len(msg.Records)).
		Msg("records reloaded")
}

func (m *DataTableModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		if m.focus == focusSearch {
			m.search, cmd = m.search.Update(msg)
		} else {
			m.table, cmd = m.table.Update(msg)
		}
		return m, cmd
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(keyMsg)
	case focusCategory:
		return m.handleDropdownKey(keyMsg, m.categories, m.grid.ToggleCategory, m.grid.SetCategories)
	case focusStatus:
		return m.handleDropdownKey(keyMsg, m.statuses, m.grid.ToggleStatus, m.grid.SetStatuses)
	case focusTable:
		return m.handleTableKey(keyMsg)
	default:
		return m, nil
	}
}

func (m *DataTableModel) handleSearchKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyCtrlC:
		return m.quit()
	case keyEnter, keyEsc:
		m.focusOn(focusTable)
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(keyMsg)
	if value := m.search.Value(); value != before {
		return m, tea.Batch(cmd, m.debouncer.Schedule(value))
	}
	return m, cmd
}

func (m *DataTableModel) handleDropdownKey(
	keyMsg tea.KeyMsg,
	d *Dropdown,
	toggle func(string),
	set func([]string),
) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyCtrlC:
		return m.quit()
	case keyEsc, keyEnter:
		m.focusOn(focusTable)
	case keyCategory:
		m.switchDropdown(focusCategory)
	case keyStatus:
		m.switchDropdown(focusStatus)
	case keySpace, "space":
		if v, ok := d.Current(); ok {
			toggle(v)
			m.refresh()
		}
	case keyClear:
		set(nil)
		m.refresh()
	default:
		d.Update(keyMsg)
	}
	return m, nil
}

// switchDropdown opens target, or closes it when it is already open.
func (m *DataTableModel) switchDropdown(target focusArea) {
	if m.focus == target {
		m.focusOn(focusTable)
		return
	}
	m.focusOn(target)
}

//nolint:cyclop // One branch per key binding.
func (m *DataTableModel) handleTableKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := keyMsg.String()
	if field, ok := sortKeyField(key); ok {
		m.grid.ToggleSort(field)
		m.refresh()
		return m, nil
	}

	switch key {
	case keyQuit, keyCtrlC:
		return m.quit()
	case keySlash:
		m.focusOn(focusSearch)
		return m, textinput.Blink
	case keyCategory:
		m.focusOn(focusCategory)
	case keyStatus:
		m.focusOn(focusStatus)
	case keyClear:
		m.grid.ClearFilters()
		m.refresh()
	case keyLeft, keyPrevPage:
		m.grid.PrevPage()
		m.refresh()
	case keyRight, keyNextPage:
		m.grid.NextPage()
		m.refresh()
	case keyHome:
		m.grid.FirstPage()
		m.refresh()
	case keyEnd:
		m.grid.LastPage()
		m.refresh()
	case keyEnter:
		cursor := m.table.Cursor()
		if cursor < 0 || cursor >= len(m.view.Rows) {
			m.notice = msgSelectedOutOfBounds
			return m, nil
		}
		m.selected = m.view.Rows[cursor]
		m.state = ViewStateDetail
	case keyEsc:
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.debouncer.Cancel()
			m.grid.SetSearch("")
			m.refresh()
		}
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}
	return m, nil
}

func (m *DataTableModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			return m.quit()
		case keyEsc:
			m.state = ViewStateList
			m.table.Focus()
		}
	}
	return m, nil
}

// focusOn moves key focus, opening and closing dropdowns to match.
func (m *DataTableModel) focusOn(target focusArea) {
	m.focus = target

	m.categories.Close()
	m.statuses.Close()
	m.search.Blur()
	m.table.Blur()

	switch target {
	case focusSearch:
		m.search.Focus()
	case focusCategory:
		m.categories.Open()
	case focusStatus:
		m.statuses.Open()
	case focusTable:
		m.table.Focus()
	}
}

// sortKeyField maps the keys 1-5 to the column they sort.
func sortKeyField(key string) (records.Field, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '5' {
		return "", false
	}
	return records.Fields()[key[0]-'1'], true
}

// refresh takes a new snapshot from the controller and redraws the table.
func (m *DataTableModel) refresh() {
	m.view = m.grid.Snapshot()
	m.rebuildTable()
}

// rebuildTable reconstructs the table for the current snapshot and size.
//
//nolint:mnd // Column widths.
func (m *DataTableModel) rebuildTable() {
	directive := m.view.Query.Sort
	columns := []table.Column{
		{Title: "#", Width: 6},
		{Title: ColumnTitle(records.FieldID, directive), Width: 12},
		{Title: ColumnTitle(records.FieldName, directive), Width: 32},
		{Title: ColumnTitle(records.FieldCategory, directive), Width: 18},
		{Title: ColumnTitle(records.FieldStatus, directive), Width: 11},
		{Title: ColumnTitle(records.FieldCreatedAt, directive), Width: 13},
	}

	cells := rowCells(m.view)
	rows := make([]table.Row, len(cells))
	for i, c := range cells {
		rows[i] = c
	}

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle

	// WithHeight counts the header, so add it back to keep the body rows.
	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithStyles(s),
		table.WithFocused(m.focus == focusTable),
		table.WithHeight(m.bodyHeight()+headerHeight(s, columns)),
	)
}

// bodyHeight is the number of table rows that fit beside the chrome.
func (m *DataTableModel) bodyHeight() int {
	return max(m.height-chromeHeight, minHeight)
}

// headerHeight is the rendered height of the table header row.
func headerHeight(s table.Styles, columns []table.Column) int {
	if len(columns) == 0 {
		return 0
	}
	return lipgloss.Height(s.Header.Render(columns[0].Title))
}

// Snapshot returns the page currently on screen.
func (m *DataTableModel) Snapshot() grid.View { return m.view }

