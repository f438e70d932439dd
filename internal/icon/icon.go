// Package icon procedurally generates the DRILLBUR application icon and
// serializes it as a minimal single-image .ico container.
//
// The artwork is a 32×32 square: a 2-pixel muted-rose outer border, a
// 2-pixel cream inset band, and a dark near-black 16×16 center block on a
// cream base. Every pixel is fully opaque. The ICO payload stores pixel
// rows bottom-to-top in BGRA order with a zeroed 1-bit AND mask, as the
// container format requires.
package icon

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// Size is the icon's edge length in pixels.
const Size = 32

// RGBA is a logical pixel in R,G,B,A byte order.
type RGBA [4]byte

// Palette, from the DRILLBUR UI.
var (
	borderColor = RGBA{0xb8, 0x94, 0x8a, 0xff} // muted rose
	baseColor   = RGBA{0xe6, 0xdc, 0xc8, 0xff} // cream
	centerColor = RGBA{0x11, 0x0e, 0x0b, 0xff} // near black
)

// PixelAt returns the logical color of pixel (x, y), origin top-left.
func PixelAt(x, y int) RGBA {
	switch {
	case x < 2 || y < 2 || x >= Size-2 || y >= Size-2:
		return borderColor
	case x < 4 || y < 4 || x >= Size-4 || y >= Size-4:
		return baseColor
	case x >= 8 && x < 24 && y >= 8 && y < 24:
		return centerColor
	default:
		return baseColor
	}
}

// Render builds the logical pixel buffer: row-major, top-to-bottom, RGBA.
func Render() []byte {
	buf := make([]byte, 0, Size*Size*4)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			px := PixelAt(x, y)
			buf = append(buf, px[0], px[1], px[2], px[3])
		}
	}
	return buf
}

// Container layout constants.
const (
	iconDirSize   = 6  // ICONDIR
	iconEntrySize = 16 // ICONDIRENTRY
	bmpHeaderSize = 40 // BITMAPINFOHEADER
	imageOffset   = iconDirSize + iconEntrySize

	// AND mask: 1 bit per pixel, rows padded to 4-byte alignment.
	// 32 bits per row is already aligned: 4 bytes × 32 rows.
	maskSize = (Size / 8) * Size
)

// Encode serializes the rendered icon into ICO container bytes.
func Encode() []byte {
	payload := encodePayload(Render())

	out := make([]byte, imageOffset, imageOffset+len(payload))

	// ICONDIR: reserved=0, type=1 (icon), count=1.
	binary.LittleEndian.PutUint16(out[0:2], 0)
	binary.LittleEndian.PutUint16(out[2:4], 1)
	binary.LittleEndian.PutUint16(out[4:6], 1)

	// ICONDIRENTRY.
	out[6] = Size                                 // width
	out[7] = Size                                 // height
	out[8] = 0                                    // palette colors (none, truecolor)
	out[9] = 0                                    // reserved
	binary.LittleEndian.PutUint16(out[10:12], 0)  // color planes
	binary.LittleEndian.PutUint16(out[12:14], 32) // bits per pixel
	binary.LittleEndian.PutUint32(out[18:22], imageOffset)

	out = append(out, payload...)

	// The entry's byte-size field is patched last: the container stores
	// the payload length ahead of the payload it describes.
	binary.LittleEndian.PutUint32(out[14:18], uint32(len(payload)))
	return out
}

// encodePayload wraps the logical RGBA buffer in a BITMAPINFOHEADER,
// flips rows bottom-to-top, reorders channels to BGRA, and appends the
// zeroed transparency mask.
func encodePayload(rgba []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(bmpHeaderSize + len(rgba) + maskSize)

	imageSize := uint32(len(rgba) + maskSize)

	// BITMAPINFOHEADER. Height is doubled: image plus AND mask, the ICO
	// convention a conformant reader halves back to 32.
	w := func(v uint32) {
		_ = binary.Write(&buf, binary.LittleEndian, v)
	}
	w(bmpHeaderSize)                                        // biSize
	w(Size)                                                 // biWidth
	w(Size * 2)                                             // biHeight (image + mask)
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))  // biPlanes
	_ = binary.Write(&buf, binary.LittleEndian, uint16(32)) // biBitCount
	w(0)                                                    // biCompression (BI_RGB)
	w(imageSize)                                            // biSizeImage
	w(0)                                                    // biXPelsPerMeter
	w(0)                                                    // biYPelsPerMeter
	w(0)                                                    // biClrUsed
	w(0)                                                    // biClrImportant

	// Pixel rows bottom-to-top, each pixel as B,G,R,A.
	for y := Size - 1; y >= 0; y-- {
		row := rgba[y*Size*4 : (y+1)*Size*4]
		for x := 0; x < Size; x++ {
			px := row[x*4 : x*4+4]
			buf.Write([]byte{px[2], px[1], px[0], px[3]})
		}
	}

	buf.Write(make([]byte, maskSize))
	return buf.Bytes()
}

// Generate writes the icon container to path, creating parent directories
// as needed. Idempotent: an existing file at path is left untouched, with
// no content validation.
func Generate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create icon directory: %w", err)
	}
	if err := os.WriteFile(path, Encode(), 0644); err != nil {
		return fmt.Errorf("write icon: %w", err)
	}
	return nil
}
