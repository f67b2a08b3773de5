package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/camdash/camdash/internal/app/popupctl"
	"github.com/camdash/camdash/internal/content"
	"github.com/camdash/camdash/internal/dashboard"
	"github.com/camdash/camdash/internal/icons"
	"github.com/camdash/camdash/internal/presenter"
	"github.com/camdash/camdash/internal/ui/headerbar"
	"github.com/camdash/camdash/internal/ui/render"
	"github.com/camdash/camdash/internal/ui/styles"
)

// Layout constants.
const (
	// headerLines is title, breadcrumb and notice.
	headerLines = 2 + headerbar.Height
	// cellHeight is one bordered grid row.
	cellHeight = 3
	// cellChrome is the horizontal border plus padding of a cell.
	cellChrome   = 4
	captionLines = 1
	minCellWidth = 6
)

// View renders the application UI.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	view := m.renderHeader() + "\n" + m.renderBody(m.height-headerLines)
	view = enforceHeight(view, m.height)
	view = m.popups.RenderOverlay(view)
	view = m.zones.Scan(view)

	// Image transmission goes out once, ahead of the frame; placement is
	// drawn over it.
	if m.pendingTransmit != "" {
		view = m.pendingTransmit + view
	}
	if m.screen.Image != "" && m.popups.ActivePopup() == popupctl.None {
		view += m.photos.Placement(headerLines+1, 1)
	}
	return view
}

func (m Model) renderHeader() string {
	s := styles.T().S()
	title := styles.HeaderTitle(render.Fit(m.screen.Title, m.width/2))

	var right string
	switch {
	case m.screen.Loading:
		right = m.spinner.View() + s.Warning.Render(" Loading…")
	case m.screen.Mode == dashboard.ModeCamera && m.hostOK:
		right = s.Status.Render(m.host.String())
	}

	crumbs := headerbar.Render(m.screen.Crumbs, m.width)

	var notice string
	if n := m.screen.Notice; n.Text != "" {
		style := s.Notice
		if n.Error {
			style = s.NoticeError
		}
		notice = style.Render(render.Fit(n.Text, m.width))
	}

	return render.Row(title, right, m.width) + "\n" + crumbs + "\n" + notice
}

func (m Model) renderBody(height int) string {
	switch {
	case m.screen.Mode.IsSlideshow():
		return m.renderSlideshow()
	case m.screen.Mode.IsPlayback():
		return m.renderPlayback(height)
	}

	gridHeight := height
	var empty string
	if m.screen.Empty != "" {
		empty = styles.T().S().Muted.Render(render.Center(m.screen.Empty, m.width))
		gridHeight--
	}
	body := m.renderGrid(gridHeight)
	if empty != "" {
		if body == "" {
			return empty
		}
		body += "\n" + empty
	}
	return body
}

func (m Model) renderSlideshow() string {
	s := styles.T().S()
	w, h := m.photoArea()

	inline := s.Subtle.Render(render.Fit("Photo preview unavailable in this terminal", w))
	if m.photos.Enabled() {
		inline = m.photos.Inline(w, h)
	}
	photo := lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, inline)

	caption := s.Muted.Render(render.Fit(m.screen.Caption, w))
	if m.photoErr != "" {
		caption = s.Error.Render(render.Fit(m.photoErr, w))
	} else if m.screen.Playing {
		caption = render.Row(caption, s.Success.Render(icons.FormatPlay("Autoplay")), w)
	}
	return photo + "\n" + caption + "\n" + m.renderGrid(cellHeight)
}

func (m Model) renderPlayback(height int) string {
	s := styles.T().S()
	var status string
	switch {
	case m.player == nil:
	case m.player.State().IsActive():
		status = m.player.State().String()
		if e := m.player.Elapsed(); e > 0 {
			status += "  " + e.Truncate(time.Second).String()
		}
	default:
		status = "Waiting for renderer"
	}

	info := s.Base.Render(render.Fit(m.screen.Subject, m.width)) + "\n" +
		s.Muted.Render(render.Fit(status, m.width))
	controls := m.renderGrid(cellHeight)
	gap := max(height-lipgloss.Height(info)-lipgloss.Height(controls), 0)
	return info + strings.Repeat("\n", gap+1) + controls
}

// renderGrid draws the rows of the grid that fit in height lines, scrolled
// so the focused row is visible.
func (m Model) renderGrid(height int) string {
	g := m.screen.Grid
	rows := g.Rows()
	if len(rows) == 0 || height < cellHeight {
		return ""
	}

	cols := 1
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	cellW := max(m.width/cols-cellChrome, minCellWidth)

	visible := max(height/cellHeight, 1)
	start := 0
	if row, _, ok := g.Position(m.focusID); ok && row >= visible {
		start = row - visible + 1
	}
	end := min(len(rows), start+visible)

	lines := make([]string, 0, end-start)
	for _, row := range rows[start:end] {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = m.renderCell(c, cellW, c.ID() == m.focusID)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderCell(c presenter.Control, width int, focused bool) string {
	s := styles.T().S()
	style := s.Cell
	if focused {
		style = s.CellFocused
	}
	cell := style.Width(width + 2).Render(render.Center(decorate(c), width))
	return m.zones.Mark(m.zoneID(c.ID()), cell)
}

// decorate prefixes a control label with the icon of its kind.
func decorate(c presenter.Control) string {
	label := c.Label()
	switch c.Kind() {
	case presenter.KindEntryPoint:
		if c.ID() == presenter.IDOpenClips {
			return icons.FormatVideo(label)
		}
		return icons.FormatPhoto(label)
	case presenter.KindCamera:
		return icons.FormatCamera(label)
	case presenter.KindFolder:
		return icons.FormatDir(label)
	case presenter.KindAggregate:
		return icons.FormatPhoto(label)
	case presenter.KindLeaf:
		switch c.LeafKind() {
		case content.Image:
			return icons.FormatPhoto(label)
		case content.Video:
			return icons.FormatVideo(label)
		case content.Document:
			return icons.FormatDocument(label)
		default:
			return icons.FormatFile(label)
		}
	case presenter.KindPlayback:
		switch c.ID() {
		case presenter.IDSlidePrev:
			return icons.FormatPrev(label)
		case presenter.IDSlideNext:
			return icons.FormatNext(label)
		case presenter.IDVideoPause:
			return icons.FormatPause(label)
		case presenter.IDSlideToggle:
			if label == "Pause" {
				return icons.FormatPause(label)
			}
			return icons.FormatPlay(label)
		}
	case presenter.KindNav:
		switch c.ID() {
		case presenter.IDBack, presenter.IDSlideBack, presenter.IDFullscreenBack, presenter.IDVideoBack:
			return icons.FormatBack(label)
		}
	}
	return label
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	switch {
	case len(lines) > targetHeight:
		lines = lines[:targetHeight]
	case len(lines) < targetHeight:
		lines = append(lines, make([]string, targetHeight-len(lines))...)
	}
	return strings.Join(lines, "\n")
}
