//go:build !linux

package power

import "io"

func RequestGPIO(string, int, func(Edge)) (io.Closer, error) {
	return nil, ErrUnsupported
}
