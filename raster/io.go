package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

// Load decodes the PNG file at path into a Raster. The result has 4
// channels (RGBA); callers that want RGB-only patterns must drop the alpha
// channel themselves (Crop and the other transforms keep all channels).
// Complexity: O(W*H).
func Load(path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: load %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("raster: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out, err := New(w, h, 4)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			_ = out.Set(x, y, []byte{byte(r >> 8), byte(g >> 8), byte(b >> 8), byte(a >> 8)})
		}
	}

	return out, nil
}

// Save encodes r as a PNG at path, creating any missing parent directories.
// Complexity: O(W*H).
func (r *Raster) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("raster: mkdir for %s: %w", path, err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, r.W, r.H))
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			px, _ := r.At(x, y)
			var c color.NRGBA
			if r.C == 4 {
				c = color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
			} else {
				c = color.NRGBA{R: px[0], G: px[1], B: px[2], A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}

	return nil
}
