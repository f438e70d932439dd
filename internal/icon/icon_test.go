package icon

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	img, err := Decode(Encode())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if img.Width != 32 || img.Height != 32 {
		t.Errorf("decoded %dx%d, want 32x32", img.Width, img.Height)
	}
	if img.BitsPerPixel != 32 {
		t.Errorf("BitsPerPixel = %d, want 32", img.BitsPerPixel)
	}
	if !bytes.Equal(img.Pixels, Render()) {
		t.Error("decoded pixels differ from the logical buffer")
	}
}

func TestDeclaredPayloadLength(t *testing.T) {
	data := Encode()
	size := binary.LittleEndian.Uint32(data[14:18])
	offset := binary.LittleEndian.Uint32(data[18:22])

	if offset != 22 {
		t.Errorf("image offset = %d, want 22", offset)
	}
	if got := uint32(len(data)) - offset; size != got {
		t.Errorf("declared payload length %d, actual %d", size, got)
	}
	// 40-byte header + 32×32×4 pixels + 128-byte mask.
	if want := uint32(40 + 32*32*4 + 128); size != want {
		t.Errorf("payload length %d, want %d", size, want)
	}
}

func TestFullOpacity(t *testing.T) {
	img, err := Decode(Encode())
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if a := img.At(x, y)[3]; a != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255", x, y, a)
			}
		}
	}
}

func TestPixelRegions(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want RGBA
	}{
		{"top-left corner is border", 0, 0, borderColor},
		{"second border ring", 1, 17, borderColor},
		{"bottom-right corner is border", 31, 31, borderColor},
		{"inset band", 2, 16, baseColor},
		{"inset band bottom", 16, 29, baseColor},
		{"between band and center", 5, 16, baseColor},
		{"center block corner", 8, 8, centerColor},
		{"center block middle", 16, 16, centerColor},
		{"center block far corner", 23, 23, centerColor},
		{"just outside center", 24, 16, baseColor},
		{"just outside center vertically", 16, 7, baseColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelAt(tt.x, tt.y); got != tt.want {
				t.Errorf("PixelAt(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBGRABottomUpSerialization(t *testing.T) {
	data := Encode()
	pixelData := data[22+40:]

	// First serialized pixel is logical (0, 31): bottom-left border, in
	// B,G,R,A order.
	want := []byte{borderColor[2], borderColor[1], borderColor[0], borderColor[3]}
	if !bytes.Equal(pixelData[:4], want) {
		t.Errorf("first serialized pixel = %v, want BGRA border %v", pixelData[:4], want)
	}
}

func TestMaskZeroFilled(t *testing.T) {
	data := Encode()
	mask := data[len(data)-maskSize:]
	for i, b := range mask {
		if b != 0 {
			t.Fatalf("mask byte %d = %#x, want 0", i, b)
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assets", "drillbur.ico")

	if err := Generate(path); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Second call must be a no-op, even on a tampered file: existing
	// content is never validated or regenerated.
	tampered := append([]byte{0xde, 0xad}, first...)
	if err := os.WriteFile(path, tampered, 0644); err != nil {
		t.Fatal(err)
	}
	if err := Generate(path); err != nil {
		t.Fatalf("Generate() second call error: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(second, tampered) {
		t.Error("Generate() rewrote an existing icon file")
	}
}

func TestGenerateWritesDecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drillbur.ico")
	if err := Generate(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if img.At(0, 0) != borderColor {
		t.Errorf("corner pixel = %v, want %v", img.At(0, 0), borderColor)
	}
	if img.At(16, 16) != centerColor {
		t.Errorf("center pixel = %v, want %v", img.At(16, 16), centerColor)
	}
}
