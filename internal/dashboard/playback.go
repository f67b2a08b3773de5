package dashboard

import (
	"github.com/camdash/camdash/internal/errmsg"
)

// advance moves to the next slideshow item. Past the last item the timer
// stops, the index is clamped and the slideshow is left; there is no
// wraparound. A manual step during autoplay restarts the interval.
func (m *Machine) advance(fromTick bool) []Effect {
	last := len(m.show.items) - 1
	if m.show.index >= last {
		m.timerGen++
		m.show.index = max(last, 0)
		effects, _ := m.leaveFolder(LeaveFolder{})
		return effects
	}

	m.show.index++
	if m.mode != ModePlay {
		return nil
	}
	if !fromTick {
		m.timerGen++
	}
	return []Effect{m.armTimer()}
}

// previous steps back, wrapping from the first item to the last.
func (m *Machine) previous(ev Event) ([]Effect, error) {
	if !m.mode.IsSlideshow() {
		return nil, m.illegal(ev)
	}
	if len(m.show.items) == 0 {
		return nil, nil
	}
	m.show.index--
	if m.show.index < 0 {
		m.show.index = len(m.show.items) - 1
	}
	if m.mode != ModePlay {
		return nil, nil
	}
	m.timerGen++
	return []Effect{m.armTimer()}, nil
}

func (m *Machine) armTimer() Effect {
	return ArmTimer{Generation: m.timerGen, Interval: m.opts.SlideshowInterval}
}

func (m *Machine) togglePlay(ev Event) ([]Effect, error) {
	switch m.mode {
	case ModeSlideshow:
		m.timerGen++
		m.mode = ModePlay
		return []Effect{m.armTimer()}, nil
	case ModePlay:
		m.timerGen++
		m.mode = ModeSlideshow
		return nil, nil
	case ModeRemoteVideo:
		return []Effect{TogglePlayback{}}, nil
	}
	return nil, m.illegal(ev)
}

// streamEnded applies the renderer's end or failure. Live streams retry with
// a fixed delay up to the configured attempt count; clips restart from the
// beginning, giving up after repeated failures. Ends from an earlier session
// are stale.
func (m *Machine) streamEnded(ev StreamEnded) ([]Effect, error) {
	if ev.Generation != m.streamGen {
		return nil, ErrStale
	}
	err := ev.Err
	switch m.mode {
	case ModeCameraFullscreen:
		if m.attempts >= m.opts.StreamMaxRetries {
			m.setError(errmsg.FormatWith(errmsg.OpPlayStream, m.opts.Cameras[m.camera].Name, errStreamExhausted(err)))
			return nil, nil
		}
		m.attempts++
		m.streamGen++
		if err != nil {
			m.setError(errmsg.FormatWith(errmsg.OpPlayStream, m.opts.Cameras[m.camera].Name, err))
		}
		return []Effect{ScheduleRetry{
			Generation: m.streamGen,
			Attempt:    m.attempts,
			Delay:      m.opts.StreamRetryDelay,
		}}, nil

	case ModeRemoteVideo:
		if err != nil {
			m.attempts++
			if m.attempts > maxClipRestarts {
				m.setError(errmsg.Format(errmsg.OpPlayClip, err))
				return nil, nil
			}
		} else {
			m.attempts = 0
		}
		return []Effect{PlayURI{URI: m.clipLocal, Generation: m.streamGen}}, nil
	}
	return nil, ErrStale
}

func (m *Machine) retryStream(gen int) ([]Effect, error) {
	if m.mode != ModeCameraFullscreen || gen != m.streamGen {
		return nil, ErrStale
	}
	return []Effect{PlayURI{URI: m.opts.Cameras[m.camera].URI, Live: true, Generation: m.streamGen}}, nil
}
