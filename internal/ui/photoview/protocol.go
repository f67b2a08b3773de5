package photoview

import "image"

// ImageProtocol abstracts how a photo reaches the terminal.
type ImageProtocol interface {
	// Name identifies the protocol in logs.
	Name() string

	// Prepare encodes the image and returns any one-time terminal command.
	// Kitty: transmits to terminal memory, returns escape sequences.
	// Sixel and half blocks: encode and cache internally, return "".
	Prepare(img image.Image, id uint32) (string, error)

	// PrepareFromPNG is Prepare for pre-encoded PNG data.
	PrepareFromPNG(pngData []byte, id uint32) (string, error)

	// Place returns the escape sequence drawing the image at (row, col),
	// written after the frame. Half blocks return "".
	Place(id uint32, row, col, width, height int) string

	// Delete releases the image. Sixel and half blocks return "".
	Delete(id uint32) string

	// Inline returns the text occupying the image area in the layout:
	// blank space for escape-based protocols, coloured cells for half blocks.
	Inline(id uint32, width, height int) string

	// TargetPixelSize is the pixel budget for an area of the given cells.
	TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int)
}
