package app

import (
	"path/filepath"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/camdash/camdash/internal/errmsg"
	"github.com/camdash/camdash/internal/ui/photoview"
)

// transmitHold is how long a one-shot image transmission stays in the
// frame. bubbletea redraws at most every ~16ms, so one frame carries it.
const transmitHold = 100 * time.Millisecond

// photoArea is the cell size of the slideshow image.
func (m Model) photoArea() (width, height int) {
	return m.width, max(m.height-headerLines-captionLines-cellHeight, 0)
}

// syncPhoto keeps the displayed photo in step with the screen: it requests
// the current slideshow item and drops the image once the slideshow is left.
func (m *Model) syncPhoto() tea.Cmd {
	if !m.photos.Enabled() {
		return nil
	}
	path := m.screen.Image
	if path == "" {
		m.photoWant = ""
		m.photoErr = ""
		if m.photos.Current() != "" {
			return m.queueTransmit(m.photos.Clear())
		}
		return nil
	}

	w, h := m.photoArea()
	if w <= 0 || h <= 0 || m.photos.Matches(path, w, h) {
		return nil
	}
	want := photoKey(path, w, h)
	if m.photoWant == want {
		return nil
	}
	m.photoWant = want
	m.photoErr = ""
	return loadPhotoCmd(m.photos.Protocol(), m.photoCache, path, w, h)
}

func photoKey(path string, w, h int) string {
	return path + "@" + strconv.Itoa(w) + "x" + strconv.Itoa(h)
}

func loadPhotoCmd(proto photoview.ImageProtocol, cache *photoview.Cache, path string, w, h int) tea.Cmd {
	return func() tea.Msg {
		p, err := photoview.Load(proto, cache, path, w, h)
		return PhotoPreparedMsg{Path: path, Prepared: p, Err: err}
	}
}

// queueTransmit adds seq to the next frames until transmitHold has passed.
func (m *Model) queueTransmit(seq string) tea.Cmd {
	if seq == "" {
		return nil
	}
	m.pendingTransmit += seq
	m.transmitSeq++
	n := m.transmitSeq
	return tea.Tick(transmitHold, func(time.Time) tea.Msg {
		return PhotoTransmittedMsg{Seq: n}
	})
}

func (m Model) handlePhotoMsg(msg PhotoMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PhotoPreparedMsg:
		w, h := m.photoArea()
		if msg.Path != m.screen.Image || m.photoWant != photoKey(msg.Path, w, h) {
			return m, nil
		}
		m.photoWant = ""
		if msg.Err != nil {
			m.logger.Warn("photo load failed", "path", msg.Path, "err", msg.Err)
			m.photoErr = errmsg.FormatWith(errmsg.OpOpenPhoto, filepath.Base(msg.Path), msg.Err)
			return m, nil
		}
		transmit, err := m.photos.Apply(msg.Prepared)
		if err != nil {
			m.logger.Warn("photo transmit failed", "path", msg.Path, "err", err)
			m.photoErr = errmsg.FormatWith(errmsg.OpOpenPhoto, filepath.Base(msg.Path), err)
		}
		return m, m.queueTransmit(transmit)

	case PhotoTransmittedMsg:
		// A later transmission restarts the hold.
		if msg.Seq == m.transmitSeq {
			m.pendingTransmit = ""
		}
		return m, nil
	}
	return m, nil
}
