package tui

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"event-seating-tui/feed"
	"event-seating-tui/model"
	"event-seating-tui/seatmap"
	"event-seating-tui/service"
	"event-seating-tui/store"
)

type appState int

const (
	stateLoading appState = iota
	stateSeatMap
	stateError
)

type viewMode int

const (
	viewByStatus viewMode = iota
	viewByPriceTier
)

type toastKind int

const (
	toastError toastKind = iota
	toastInfo
)

type toastModel struct {
	kind    toastKind
	message string
}

const (
	zoomMin  = 0.5
	zoomMax  = 2.0
	zoomStep = 0.1
	toastTTL = 3 * time.Second
)

// Options configures the app at startup.
type Options struct {
	// Source is the venue document location: an http(s) URL or a file
	// path.
	Source string
	// FeedInterval and FeedJitter shape the simulated status feed.
	FeedInterval time.Duration
	FeedJitter   time.Duration
	// Live controls whether the status feed starts enabled.
	Live bool
}

type appModel struct {
	client *service.Client
	source string

	state appState
	err   error

	width  int
	height int

	venue   model.VenueMap
	rows    [][]model.Seat
	anchors []seatmap.RowAnchor

	selection seatmap.Selection

	cursorRow int
	cursorCol int

	zoom    float64
	panCols int
	panRows int

	adjacentCount   int
	adjacentMessage string

	mode     viewMode
	darkMode bool
	styles   styles

	liveEnabled  bool
	feedInterval time.Duration
	feedJitter   time.Duration
	src          feed.Source
	feedGen      int

	toast    *toastModel
	toastSeq int

	spinner spinner.Model
}

type venueMsg struct {
	venue model.VenueMap
	err   error
}

type feedEventMsg struct {
	gen    int
	update feed.Update
	ok     bool
}

type toastExpiredMsg struct {
	seq int
}

func New(opts Options) tea.Model {
	m := appModel{
		client:        service.NewClient(nil),
		source:        opts.Source,
		state:         stateLoading,
		zoom:          1.0,
		adjacentCount: 2,
		liveEnabled:   opts.Live,
		feedInterval:  opts.FeedInterval,
		feedJitter:    opts.FeedJitter,
	}

	if ids, err := store.LoadSelection(); err == nil {
		m.selection = seatmap.NewSelection(ids...)
	}

	if theme, ok := store.LoadTheme(); ok {
		m.darkMode = theme == store.ThemeDark
	} else {
		m.darkMode = termenv.HasDarkBackground()
	}
	m.styles = newStyles(m.darkMode)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loadVenueCmd(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.state == stateLoading {
			return m, cmd
		}
		return m, nil

	case venueMsg:
		if msg.err != nil {
			// The one terminal failure: no retry, no recovery path.
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.setVenue(msg.venue)
		m.state = stateSeatMap
		if m.liveEnabled {
			return m, m.startFeed()
		}
		return m, nil

	case feedEventMsg:
		if msg.gen != m.feedGen || m.src == nil {
			// A subscription torn down while this event was in flight.
			return m, nil
		}
		if !msg.ok {
			return m, nil
		}
		if msg.update.Status.Known() {
			if next, known := seatmap.ApplyStatus(m.venue, msg.update.SeatID, msg.update.Status); known {
				m.setVenue(next)
			}
		}
		return m, waitForFeedCmd(m.src, m.feedGen)

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.stopFeed()
		return m, tea.Quit
	}

	if m.state != stateSeatMap {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case "enter", " ", "space":
		return m, m.toggleCursorSeat()
	case "f":
		return m, m.findAdjacentBlock()
	case "c":
		m.clearSelection()
	case "v":
		if m.mode == viewByStatus {
			m.mode = viewByPriceTier
		} else {
			m.mode = viewByStatus
		}
	case "t":
		m.toggleTheme()
	case "w":
		if m.liveEnabled {
			m.liveEnabled = false
			m.stopFeed()
			return m, nil
		}
		m.liveEnabled = true
		return m, m.startFeed()
	case "+", "=":
		m.zoom = clampZoom(m.zoom + zoomStep)
	case "-", "_":
		m.zoom = clampZoom(m.zoom - zoomStep)
	case "K", "shift+up":
		m.pan(-1, 0)
	case "J", "shift+down":
		m.pan(1, 0)
	case "H", "shift+left":
		m.pan(0, -1)
	case "L", "shift+right":
		m.pan(0, 1)
	case "1", "2", "3", "4", "5", "6", "7", "8":
		if n, err := strconv.Atoi(msg.String()); err == nil {
			m.adjacentCount = n
		}
	}
	return m, nil
}

// setVenue installs a new venue snapshot: the layout engine re-runs
// and the derived render structures are rebuilt.
func (m *appModel) setVenue(venue model.VenueMap) {
	venue.Seats = seatmap.Layout(venue.Seats)
	m.venue = venue
	m.rows = groupRows(venue.Seats)
	m.anchors = seatmap.RowAnchors(venue.Seats)
	m.clampCursor()
}

func (m *appModel) moveCursor(dRow, dCol int) {
	m.cursorRow += dRow
	m.cursorCol += dCol
	m.clampCursor()
}

func (m *appModel) clampCursor() {
	if len(m.rows) == 0 {
		m.cursorRow, m.cursorCol = 0, 0
		return
	}
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
	if m.cursorRow >= len(m.rows) {
		m.cursorRow = len(m.rows) - 1
	}
	row := m.rows[m.cursorRow]
	if m.cursorCol < 0 {
		m.cursorCol = 0
	}
	if m.cursorCol >= len(row) {
		m.cursorCol = len(row) - 1
	}
}

func (m *appModel) pan(dRow, dCol int) {
	m.panRows += dRow
	m.panCols += dCol
	if m.panRows < 0 {
		m.panRows = 0
	}
	if m.panRows >= len(m.rows) && len(m.rows) > 0 {
		m.panRows = len(m.rows) - 1
	}
	if m.panCols < 0 {
		m.panCols = 0
	}
	if max := m.maxRowLen(); m.panCols >= max && max > 0 {
		m.panCols = max - 1
	}
}

func (m appModel) maxRowLen() int {
	max := 0
	for _, row := range m.rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

func (m appModel) cursorSeat() (model.Seat, bool) {
	if m.cursorRow >= len(m.rows) {
		return model.Seat{}, false
	}
	row := m.rows[m.cursorRow]
	if m.cursorCol >= len(row) {
		return model.Seat{}, false
	}
	return row[m.cursorCol], true
}

func (m *appModel) toggleCursorSeat() tea.Cmd {
	seat, ok := m.cursorSeat()
	if !ok {
		return nil
	}
	sel, notice := m.selection.Toggle(seat)
	m.selection = sel
	_ = store.SaveSelection(sel.IDs())
	if notice != nil {
		return m.showNotice(notice)
	}
	return nil
}

func (m *appModel) findAdjacentBlock() tea.Cmd {
	ids, err := seatmap.FindAdjacentBlock(m.venue.Seats, m.adjacentCount)
	if err != nil {
		var noBlock *seatmap.NoBlockError
		if errors.As(err, &noBlock) {
			m.adjacentMessage = noBlock.Error()
		}
		return m.showToast(toastError, err.Error())
	}
	m.selection = m.selection.Replace(ids)
	m.adjacentMessage = ""
	_ = store.SaveSelection(m.selection.IDs())
	return nil
}

func (m *appModel) clearSelection() {
	m.selection = m.selection.Clear()
	m.adjacentMessage = ""
	m.toast = nil
	m.toastSeq++
	_ = store.SaveSelection(nil)
}

func (m *appModel) toggleTheme() {
	m.darkMode = !m.darkMode
	m.styles = newStyles(m.darkMode)
	theme := store.ThemeLight
	if m.darkMode {
		theme = store.ThemeDark
	}
	_ = store.SaveTheme(theme)
}

func (m *appModel) showNotice(notice *seatmap.Notice) tea.Cmd {
	kind := toastError
	if notice.Kind == seatmap.NoticeInfo {
		kind = toastInfo
	}
	return m.showToast(kind, notice.Message)
}

func (m *appModel) showToast(kind toastKind, message string) tea.Cmd {
	m.toast = &toastModel{kind: kind, message: message}
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// startFeed tears down any previous subscription and opens a fresh one
// keyed by the current seat ids.
func (m *appModel) startFeed() tea.Cmd {
	if m.src != nil {
		m.src.Close()
	}
	m.src = feed.NewSimulator(m.feedInterval, m.feedJitter)
	m.src.SetSeatIDs(seatIDs(m.venue.Seats))
	m.feedGen++
	return waitForFeedCmd(m.src, m.feedGen)
}

func (m *appModel) stopFeed() {
	if m.src != nil {
		m.src.Close()
		m.src = nil
	}
	m.feedGen++
}

func waitForFeedCmd(src feed.Source, gen int) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-src.Updates()
		return feedEventMsg{gen: gen, update: update, ok: ok}
	}
}

func (m appModel) loadVenueCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		raw, err := m.client.GetVenue(ctx, m.source)
		if err != nil {
			return venueMsg{err: err}
		}
		venue, err := seatmap.Normalize(raw)
		if err != nil {
			return venueMsg{err: err}
		}
		return venueMsg{venue: venue}
	}
}

// groupRows splits laid-out seats into per-row slices in render order.
// Layout emits seats grouped by row label, so one pass suffices.
func groupRows(laidOut []model.Seat) [][]model.Seat {
	var rows [][]model.Seat
	for _, seat := range laidOut {
		if len(rows) == 0 || rows[len(rows)-1][0].Row != seat.Row {
			rows = append(rows, []model.Seat{seat})
			continue
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], seat)
	}
	return rows
}

func seatIDs(seats []model.Seat) []string {
	ids := make([]string, 0, len(seats))
	for _, seat := range seats {
		ids = append(ids, seat.Id)
	}
	return ids
}

func clampZoom(zoom float64) float64 {
	zoom = math.Round(zoom*10) / 10
	if zoom < zoomMin {
		return zoomMin
	}
	if zoom > zoomMax {
		return zoomMax
	}
	return zoom
}

// summarize totals the selected seats. The processing fee is fixed at
// zero for now; a real checkout would price it.
func summarize(seats []model.Seat) (subtotal, fee, total float64) {
	for _, seat := range seats {
		subtotal += seat.Price
	}
	return subtotal, fee, subtotal + fee
}
