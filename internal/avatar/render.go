package avatar

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Side is the placeholder raster edge length in logical pixels.
const Side = 96

const fontSize = 40

var (
	faceOnce sync.Once
	faceErr  error
	face     font.Face
)

func initialsFace() (font.Face, error) {
	faceOnce.Do(func() {
		ft, err := opentype.Parse(gobold.TTF)
		if err != nil {
			faceErr = fmt.Errorf("parse initials font: %w", err)
			return
		}
		face, faceErr = opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    fontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if faceErr != nil {
			faceErr = fmt.Errorf("build initials face: %w", faceErr)
			face = nil
		}
	})
	return face, faceErr
}

// Render draws the placeholder as a Side×Side PNG and returns it as a data
// URL. The color key is mapped through the fixed palette, falling back to
// the default pair for unknown keys.
func Render(p Placeholder) (string, error) {
	pair := Lookup(p.ColorKey)

	img := image.NewRGBA(image.Rect(0, 0, Side, Side))
	draw.Draw(img, img.Bounds(), image.NewUniform(parseHex(pair.Bg)), image.Point{}, draw.Src)

	face, err := initialsFace()
	if err != nil {
		return "", err
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(parseHex(pair.Fg)),
		Face: face,
	}
	width := drawer.MeasureString(p.Initial)
	metrics := face.Metrics()
	drawer.Dot = fixed.Point26_6{
		X: (fixed.I(Side) - width) / 2,
		Y: (fixed.I(Side) + metrics.CapHeight) / 2,
	}
	drawer.DrawString(p.Initial)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode placeholder: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
