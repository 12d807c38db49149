package output

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"
)

var testPixels = []color.RGBA{
	{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255},
	{0, 0, 0, 255}, {127, 127, 127, 255}, {255, 255, 255, 255},
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(PPM, &buf, 3, 2, testPixels); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	expected := "P3\n3 2\n255\n" +
		"255 0 0\n0 255 0\n0 0 255\n" +
		"0 0 0\n127 127 127\n255 255 255\n"
	if buf.String() != expected {
		t.Errorf("Unexpected PPM output:\n%s", buf.String())
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(PNG, &buf, 3, 2, testPixels); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("Expected 3x2 image, got %v", b)
	}
	for i, want := range testPixels {
		got := color.RGBAModel.Convert(img.At(i%3, i/3)).(color.RGBA)
		if got != want {
			t.Errorf("Pixel %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(PPM, &buf, 4, 2, testPixels); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Expected ErrSizeMismatch, got %v", err)
	}
	if err := Write(Format("bmp"), &buf, 3, 2, testPixels); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("Nothing should be written on error")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"ppm", PPM, false},
		{"PNG", PNG, false},
		{".png", PNG, false},
		{"jpeg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unexpected error state: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}

	if f, err := FormatForPath("renders/frame.PPM"); err != nil || f != PPM {
		t.Errorf("Expected ppm from extension, got %q (%v)", f, err)
	}
}
