//go:build linux

package power

import (
	"io"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

const defaultDebounce = 50 * time.Millisecond

// RequestGPIO claims offset on chip as a pulled-down input reporting both
// edges.
func RequestGPIO(chip string, offset int, handler func(Edge)) (io.Closer, error) {
	return gpiocdev.RequestLine(chip, offset,
		gpiocdev.WithPullDown,
		gpiocdev.WithBothEdges,
		gpiocdev.WithDebounce(defaultDebounce),
		gpiocdev.WithEventHandler(func(evt gpiocdev.LineEvent) {
			if evt.Type == gpiocdev.LineEventFallingEdge {
				handler(Falling)
				return
			}
			handler(Rising)
		}),
	)
}
