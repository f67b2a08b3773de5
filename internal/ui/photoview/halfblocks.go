package photoview

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strings"
	"sync"
)

// HalfblockProtocol draws photos with upper half block characters in 24-bit
// colour: foreground is the top pixel, background the bottom one. It works
// on any true colour terminal, including the Linux console under fbterm.
type HalfblockProtocol struct {
	mu     sync.RWMutex
	images map[uint32]string
}

func NewHalfblockProtocol() *HalfblockProtocol {
	return &HalfblockProtocol{images: make(map[uint32]string)}
}

func (h *HalfblockProtocol) Name() string { return "halfblocks" }

func (h *HalfblockProtocol) Prepare(img image.Image, id uint32) (string, error) {
	rendered := renderHalfblocks(img)
	h.mu.Lock()
	h.images[id] = rendered
	h.mu.Unlock()
	return "", nil
}

func (h *HalfblockProtocol) PrepareFromPNG(pngData []byte, id uint32) (string, error) {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return "", fmt.Errorf("decode png: %w", err)
	}
	return h.Prepare(img, id)
}

func (h *HalfblockProtocol) Place(uint32, int, int, int, int) string { return "" }

func (h *HalfblockProtocol) Delete(id uint32) string {
	h.mu.Lock()
	delete(h.images, id)
	h.mu.Unlock()
	return ""
}

func (h *HalfblockProtocol) Inline(id uint32, width, height int) string {
	h.mu.RLock()
	rendered, ok := h.images[id]
	h.mu.RUnlock()
	if !ok {
		return BlankPlaceholder(width, height)
	}
	return rendered
}

// TargetPixelSize maps one pixel per column and two per row.
func (h *HalfblockProtocol) TargetPixelSize(widthCells, heightCells int) (int, int) {
	return widthCells, heightCells * 2
}

func renderHalfblocks(img image.Image) string {
	b := img.Bounds()
	w, hgt := b.Dx(), b.Dy()
	if w <= 0 || hgt <= 0 {
		return ""
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(b)
		draw.Draw(nrgba, b, img, b.Min, draw.Src)
	}

	var sb strings.Builder
	sb.Grow(w * (hgt/2 + 1) * 30)
	for y := 0; y < hgt; y += 2 {
		if y > 0 {
			sb.WriteString("\x1b[0m\n")
		}
		for x := 0; x < w; x++ {
			top := nrgba.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			if y+1 >= hgt {
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[49m▀", top.R, top.G, top.B)
				continue
			}
			bot := nrgba.NRGBAAt(b.Min.X+x, b.Min.Y+y+1)
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}
	}
	sb.WriteString("\x1b[0m")
	return sb.String()
}
