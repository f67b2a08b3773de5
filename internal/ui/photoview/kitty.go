package photoview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// Kitty graphics protocol escape sequences
const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"
)

// KittyProtocol transmits each photo once and places it by ID.
type KittyProtocol struct{}

func (*KittyProtocol) Name() string { return "kitty" }

func (*KittyProtocol) Prepare(img image.Image, id uint32) (string, error) {
	return TransmitImage(img, id)
}

func (*KittyProtocol) PrepareFromPNG(pngData []byte, id uint32) (string, error) {
	return TransmitImageFromPNG(pngData, id)
}

func (*KittyProtocol) Place(id uint32, row, col, width, height int) string {
	return PlaceImage(id, row, col, width, height)
}

func (*KittyProtocol) Delete(id uint32) string {
	return DeleteImage(id)
}

func (*KittyProtocol) Inline(_ uint32, width, height int) string {
	return BlankPlaceholder(width, height)
}

func (*KittyProtocol) TargetPixelSize(widthCells, heightCells int) (int, int) {
	cellW, cellH := getCellSize()
	return widthCells * cellW, heightCells * cellH
}

// TransmitImage encodes img as PNG and transmits it without displaying (a=t).
func TransmitImage(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return TransmitImageFromPNG(buf.Bytes(), id)
}

// TransmitImageFromPNG transmits pre-encoded PNG data in 4096 byte chunks.
func TransmitImageFromPNG(pngData []byte, id uint32) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(pngData)

	const chunkSize = 4096

	var sb strings.Builder
	for i := 0; i < len(encoded); i += chunkSize {
		end := min(i+chunkSize, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			// f=100 PNG, q=2 quiet
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}
	return sb.String(), nil
}

// PlaceImage displays a transmitted image at the 1-based (row, col) cell.
// The fixed placement ID replaces the previous placement.
func PlaceImage(id uint32, row, col, width, height int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s", escStart, id, width, height, escEnd)
	sb.WriteString("\x1b[u")
	return sb.String()
}

// DeleteImage removes a transmitted image and its placements.
func DeleteImage(id uint32) string {
	return fmt.Sprintf("%sa=d,d=i,i=%d,q=2;%s", escStart, id, escEnd)
}

// BlankPlaceholder reserves width x height cells in the layout.
func BlankPlaceholder(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
