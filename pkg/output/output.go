package output

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"
)

// Format names an image file format
type Format string

const (
	PPM Format = "ppm" // Plain-text portable pixmap (P3)
	PNG Format = "png"
)

var (
	ErrUnknownFormat = errors.New("output: unknown image format")
	ErrSizeMismatch  = errors.New("output: pixel count does not match image size")
)

// ParseFormat returns the format for a name such as "png"
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(name, "."))); f {
	case PPM, PNG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatForPath infers the format from a file extension
func FormatForPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Write encodes width×height row-major pixels in the given format
func Write(format Format, w io.Writer, width, height int, pixels []color.RGBA) error {
	if len(pixels) != width*height {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrSizeMismatch, len(pixels), width, height)
	}

	switch format {
	case PPM:
		return WritePPM(w, width, height, pixels)
	case PNG:
		return WritePNG(w, width, height, pixels)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WritePPM writes an ASCII P3 pixmap with one pixel per line
func WritePPM(w io.Writer, width, height int, pixels []color.RGBA) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	for _, p := range pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePNG encodes the pixels as a PNG image
func WritePNG(w io.Writer, width, height int, pixels []color.RGBA) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, p := range pixels {
		img.SetRGBA(i%width, i/width, p)
	}
	return png.Encode(w, img)
}
