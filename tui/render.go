package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"event-seating-tui/model"
	"event-seating-tui/seatmap"
)

type styles struct {
	app      lipgloss.Style
	title    lipgloss.Style
	badge    lipgloss.Style
	hint     lipgloss.Style
	rowLabel lipgloss.Style
	stage    lipgloss.Style

	available lipgloss.Style
	reserved  lipgloss.Style
	sold      lipgloss.Style
	held      lipgloss.Style
	selected  lipgloss.Style
	cursor    lipgloss.Style

	tierPremium  lipgloss.Style
	tierStandard lipgloss.Style
	tierEconomy  lipgloss.Style
	tierUnknown  lipgloss.Style

	toastError lipgloss.Style
	toastInfo  lipgloss.Style

	panel      lipgloss.Style
	panelTitle lipgloss.Style
	total      lipgloss.Style
	errorText  lipgloss.Style
	seatInfo   lipgloss.Style
}

func newStyles(dark bool) styles {
	text := lipgloss.Color("#1f2937")
	dim := lipgloss.Color("240")
	border := lipgloss.Color("245")
	if dark {
		text = lipgloss.Color("#e5e7eb")
		dim = lipgloss.Color("246")
		border = lipgloss.Color("240")
	}

	cell := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))

	return styles{
		app:      lipgloss.NewStyle().Padding(1, 2),
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("62")).Padding(0, 1),
		hint:     lipgloss.NewStyle().Foreground(dim),
		rowLabel: lipgloss.NewStyle().Foreground(dim).Bold(true),
		stage:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("238")).Padding(0, 2),

		available: cell.Background(lipgloss.Color("#10b981")),
		reserved:  cell.Background(lipgloss.Color("#fbbf24")).Foreground(lipgloss.Color("#1f2937")),
		sold:      cell.Background(lipgloss.Color("#b91c1c")),
		held:      cell.Background(lipgloss.Color("#0284c7")),
		selected:  cell.Background(lipgloss.Color("#004085")).Bold(true),
		cursor:    cell.Background(lipgloss.Color("#7c3aed")).Bold(true),

		tierPremium:  cell.Background(lipgloss.Color("#22c55e")),
		tierStandard: cell.Background(lipgloss.Color("#3b82f6")),
		tierEconomy:  cell.Background(lipgloss.Color("#eab308")).Foreground(lipgloss.Color("#1f2937")),
		tierUnknown:  cell.Background(lipgloss.Color("#6b7280")),

		toastError: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#b91c1c")).Padding(0, 1),
		toastInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("#1f2937")).Background(lipgloss.Color("#fbbf24")).Padding(0, 1),

		panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		panelTitle: lipgloss.NewStyle().Bold(true).Foreground(text),
		total:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		errorText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#b91c1c")).Bold(true),
		seatInfo:   lipgloss.NewStyle().Foreground(text),
	}
}

func (m appModel) View() string {
	switch m.state {
	case stateLoading:
		return m.styles.app.Render(
			m.headerView() + "\n\n" +
				m.spinner.View() + " Loading venue map..." + "\n\n" +
				m.styles.hint.Render("ctrl+c to quit"))
	case stateError:
		return m.styles.app.Render(
			m.headerView() + "\n\n" +
				m.styles.errorText.Render("Failed to load venue map") + "\n" +
				m.err.Error() + "\n\n" +
				m.styles.hint.Render("q to quit"))
	}

	left := m.seatGridView() + "\n" + m.legendView() + "\n" + m.seatInfoView()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", m.summaryView())

	out := m.headerView() + "\n\n" + body
	if m.toast != nil {
		style := m.styles.toastError
		if m.toast.kind == toastInfo {
			style = m.styles.toastInfo
		}
		out += "\n\n" + style.Render(m.toast.message)
	}
	out += "\n\n" + m.styles.hint.Render(
		"arrows/hjkl move • enter toggle • 1-8 block size • f find block • c clear • v view • t theme • w live • +/- zoom • H/J/K/L pan • q quit")
	return m.styles.app.Render(out)
}

func (m appModel) headerView() string {
	parts := []string{m.styles.title.Render("Event Seating")}
	if m.venue.Width > 0 {
		parts = append(parts,
			m.styles.badge.Render(fmt.Sprintf("%d/%d selected", m.selection.Len(), seatmap.SelectionCap)),
			m.styles.badge.Render(fmt.Sprintf("block %d", m.adjacentCount)),
			m.styles.badge.Render(fmt.Sprintf("zoom %d%%", int(m.zoom*100+0.5))))
		live := "live off"
		if m.liveEnabled {
			live = "live on"
		}
		parts = append(parts, m.styles.badge.Render(live))
	}
	return strings.Join(parts, " ")
}

func (m appModel) seatGridView() string {
	if len(m.rows) == 0 {
		return m.styles.hint.Render("No seats in this venue.")
	}

	cellWidth := m.cellWidth()
	labelWidth := 0
	for _, anchor := range m.anchors {
		if len(anchor.Row) > labelWidth {
			labelWidth = len(anchor.Row)
		}
	}

	var b strings.Builder
	gridWidth := labelWidth + 1 + (m.maxRowLen()-m.panCols)*(cellWidth+1)
	b.WriteString(centered(m.styles.stage.Render("STAGE"), gridWidth))
	b.WriteString("\n\n")

	for ri := m.panRows; ri < len(m.rows); ri++ {
		row := m.rows[ri]
		b.WriteString(m.styles.rowLabel.Render(padLeft(row[0].Row, labelWidth)))
		b.WriteString(" ")
		for ci := m.panCols; ci < len(row); ci++ {
			seat := row[ci]
			b.WriteString(m.seatStyle(seat, ri, ci).Render(padCell(seat.SeatNumber, cellWidth)))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m appModel) seatStyle(seat model.Seat, row, col int) lipgloss.Style {
	if row == m.cursorRow && col == m.cursorCol {
		return m.styles.cursor
	}
	if m.selection.Has(seat.Id) {
		return m.styles.selected
	}
	if m.mode == viewByPriceTier {
		switch seat.PriceTier {
		case "premium":
			return m.styles.tierPremium
		case "standard":
			return m.styles.tierStandard
		case "economy":
			return m.styles.tierEconomy
		default:
			return m.styles.tierUnknown
		}
	}
	switch seat.Status {
	case model.StatusReserved:
		return m.styles.reserved
	case model.StatusSold:
		return m.styles.sold
	case model.StatusHeld:
		return m.styles.held
	default:
		return m.styles.available
	}
}

func (m appModel) legendView() string {
	if m.mode == viewByPriceTier {
		return strings.Join([]string{
			m.styles.tierPremium.Render(" premium "),
			m.styles.tierStandard.Render(" standard "),
			m.styles.tierEconomy.Render(" economy "),
			m.styles.selected.Render(" selected "),
		}, " ")
	}
	return strings.Join([]string{
		m.styles.available.Render(" available "),
		m.styles.reserved.Render(" reserved "),
		m.styles.sold.Render(" sold "),
		m.styles.held.Render(" held "),
		m.styles.selected.Render(" selected "),
	}, " ")
}

func (m appModel) seatInfoView() string {
	seat, ok := m.cursorSeat()
	if !ok {
		return ""
	}
	return m.styles.seatInfo.Render(fmt.Sprintf("%s / Row %s / Seat %s — %s, %s, $%.2f",
		seat.Section, seat.Row, seat.SeatNumber, seat.PriceTier, seat.Status, seat.Price))
}

func (m appModel) summaryView() string {
	selected := m.selection.Resolve(m.venue.Seats)
	subtotal, fee, total := summarize(selected)

	var b strings.Builder
	b.WriteString(m.styles.panelTitle.Render(
		fmt.Sprintf("Selected Seats (%d/%d)", len(selected), seatmap.SelectionCap)))
	b.WriteString("\n")
	if len(selected) == 0 {
		b.WriteString(m.styles.hint.Render("none yet"))
		b.WriteString("\n")
	}
	for _, seat := range selected {
		b.WriteString(fmt.Sprintf("%s %s-%s  $%.2f\n", seat.Section, seat.Row, seat.SeatNumber, seat.Price))
	}
	if m.adjacentMessage != "" {
		b.WriteString(m.styles.hint.Render(m.adjacentMessage))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Subtotal  $%.2f\n", subtotal))
	b.WriteString(fmt.Sprintf("Fees      $%.2f\n", fee))
	b.WriteString(m.styles.total.Render(fmt.Sprintf("Total     $%.2f", total)))
	return m.styles.panel.Render(b.String())
}

func (m appModel) cellWidth() int {
	w := int(4*m.zoom + 0.5)
	if w < 2 {
		return 2
	}
	if w > 8 {
		return 8
	}
	return w
}

func padCell(text string, width int) string {
	if len(text) > width {
		text = text[:width]
	}
	left := (width - len(text)) / 2
	right := width - len(text) - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

func padLeft(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return strings.Repeat(" ", width-len(text)) + text
}

func centered(text string, width int) string {
	plain := lipgloss.Width(text)
	if plain >= width {
		return text
	}
	return strings.Repeat(" ", (width-plain)/2) + text
}
