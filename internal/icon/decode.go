package icon

import (
	"encoding/binary"
	"fmt"
)

// Image is a decoded icon: logical top-to-bottom RGBA pixels.
type Image struct {
	Width        int
	Height       int
	BitsPerPixel int
	Pixels       []byte // row-major, top-to-bottom, RGBA
}

// At returns the pixel at (x, y), origin top-left.
func (img *Image) At(x, y int) RGBA {
	off := (y*img.Width + x) * 4
	return RGBA{img.Pixels[off], img.Pixels[off+1], img.Pixels[off+2], img.Pixels[off+3]}
}

// Decode parses a single-image 32-bpp ICO container back into its logical
// form. Used by doctor checks and tests to confirm round-trip integrity.
func Decode(data []byte) (*Image, error) {
	if len(data) < imageOffset {
		return nil, fmt.Errorf("icon too short: %d bytes", len(data))
	}
	if typ := binary.LittleEndian.Uint16(data[2:4]); typ != 1 {
		return nil, fmt.Errorf("not an icon container (type %d)", typ)
	}
	if count := binary.LittleEndian.Uint16(data[4:6]); count != 1 {
		return nil, fmt.Errorf("expected 1 image, found %d", count)
	}

	width := int(data[6])
	height := int(data[7])
	if width == 0 {
		width = 256
	}
	if height == 0 {
		height = 256
	}
	bpp := int(binary.LittleEndian.Uint16(data[12:14]))
	size := binary.LittleEndian.Uint32(data[14:18])
	offset := binary.LittleEndian.Uint32(data[18:22])

	if int(offset)+int(size) > len(data) {
		return nil, fmt.Errorf("declared payload (%d bytes at %d) exceeds file size %d",
			size, offset, len(data))
	}
	payload := data[offset : offset+size]

	if len(payload) < bmpHeaderSize {
		return nil, fmt.Errorf("payload too short for bitmap header")
	}
	if hdrSize := binary.LittleEndian.Uint32(payload[0:4]); hdrSize != bmpHeaderSize {
		return nil, fmt.Errorf("unexpected bitmap header size %d", hdrSize)
	}
	biWidth := int(int32(binary.LittleEndian.Uint32(payload[4:8])))
	biHeight := int(int32(binary.LittleEndian.Uint32(payload[8:12])))
	biBitCount := int(binary.LittleEndian.Uint16(payload[14:16]))
	if compression := binary.LittleEndian.Uint32(payload[16:20]); compression != 0 {
		return nil, fmt.Errorf("compressed icon payloads not supported (%d)", compression)
	}

	// ICO stores image+mask height; halve when doubled.
	if biHeight == 2*height {
		biHeight = height
	}
	if biWidth != width || biHeight != height {
		return nil, fmt.Errorf("bitmap header %dx%d disagrees with directory %dx%d",
			biWidth, biHeight, width, height)
	}
	if biBitCount != bpp || bpp != 32 {
		return nil, fmt.Errorf("expected 32 bits per pixel, got %d", biBitCount)
	}

	pixelBytes := width * height * 4
	if len(payload) < bmpHeaderSize+pixelBytes {
		return nil, fmt.Errorf("payload truncated: %d bytes for %d pixel bytes",
			len(payload)-bmpHeaderSize, pixelBytes)
	}

	// Unflip rows and restore R,G,B,A channel order.
	pixels := make([]byte, pixelBytes)
	src := payload[bmpHeaderSize:]
	for y := 0; y < height; y++ {
		srcRow := src[(height-1-y)*width*4:]
		dstRow := pixels[y*width*4:]
		for x := 0; x < width; x++ {
			dstRow[x*4+0] = srcRow[x*4+2]
			dstRow[x*4+1] = srcRow[x*4+1]
			dstRow[x*4+2] = srcRow[x*4+0]
			dstRow[x*4+3] = srcRow[x*4+3]
		}
	}

	return &Image{Width: width, Height: height, BitsPerPixel: bpp, Pixels: pixels}, nil
}
