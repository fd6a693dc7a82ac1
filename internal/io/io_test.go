package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"figure-10-30-20-20.png", "figure-10-30-20-20.png"},
		{"x: 10/30", "x_ 10_30"},
		{"file<with>brackets.png", "file_with_brackets.png"},
		{"file|with|pipes.png", "file_with_pipes.png"},
		{"file?with*wildcards.png", "file_with_wildcards.png"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "report.json")
	if err := WriteFile(context.Background(), path, []byte("{}")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteFile_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := filepath.Join(t.TempDir(), "never.txt")
	if err := WriteFile(ctx, path, []byte("x")); err == nil {
		t.Error("expected error for cancelled context")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should not be written after cancellation")
	}
}

func TestParseImageFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    ImageFormat
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{".PNG", FormatPNG, false},
		{"jpg", FormatJPEG, false},
		{"jpeg", FormatJPEG, false},
		{"gif", FormatPNG, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseImageFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseImageFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := FormatFromPath("figure"); err == nil {
		t.Error("path without extension should be rejected")
	}
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{800, 600, 1000, 1000, 800, 600},
		{1500, 1000, 1000, 1000, 1000, 667},
		{1000, 1500, 1000, 1000, 667, 1000},
		{1600, 1200, 800, 800, 800, 600},
		{400, 332, 200, 166, 200, 166},
		{402, 342, 201, 171, 201, 171},
	}

	for _, tt := range tests {
		gotW, gotH := FitWithin(tt.w, tt.h, tt.maxW, tt.maxH)
		if gotW != tt.wantW || gotH != tt.wantH {
			t.Errorf("FitWithin(%d, %d, %d, %d) = %dx%d, want %dx%d",
				tt.w, tt.h, tt.maxW, tt.maxH, gotW, gotH, tt.wantW, tt.wantH)
		}
	}
}

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func TestImageService_ResizeImage(t *testing.T) {
	svc := NewImageService()
	ctx := context.Background()

	small := testImage(40, 20)
	if got := svc.ResizeImage(ctx, small, 100, 100); got != small {
		t.Error("image within bounds should be returned unchanged")
	}

	resized := svc.ResizeImage(ctx, testImage(200, 100), 50, 50)
	if b := resized.Bounds(); b.Dx() != 50 || b.Dy() != 25 {
		t.Errorf("resized bounds = %v, want 50x25", b)
	}
}

func TestImageService_ScaleImage(t *testing.T) {
	svc := NewImageService()
	ctx := context.Background()

	for w := 200; w < 260; w++ {
		for h := 150; h < 200; h++ {
			got := svc.ScaleImage(ctx, testImage(2*w, 2*h), w, h)
			if b := got.Bounds(); b.Dx() != w || b.Dy() != h {
				t.Fatalf("ScaleImage to %dx%d = %v", w, h, b)
			}
			if fw, fh := FitWithin(2*w, 2*h, w, h); fw != w || fh != h {
				t.Fatalf("FitWithin(%d, %d, %d, %d) = %dx%d", 2*w, 2*h, w, h, fw, fh)
			}
		}
	}
}

func TestImageService_SaveImage(t *testing.T) {
	svc := NewImageService()
	ctx := context.Background()
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "figure.png")
	if err := svc.SaveImage(ctx, testImage(30, 20), pngPath); err != nil {
		t.Fatalf("SaveImage png: %v", err)
	}
	data, err := os.ReadFile(pngPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("png bounds = %v", b)
	}

	jpgPath := filepath.Join(dir, "figure.jpg")
	if err := svc.SaveImage(ctx, testImage(30, 20), jpgPath); err != nil {
		t.Fatalf("SaveImage jpg: %v", err)
	}
	data, err = os.ReadFile(jpgPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("decode jpeg: %v", err)
	}

	if err := svc.SaveImage(ctx, testImage(30, 20), filepath.Join(dir, "figure.bmp")); err == nil {
		t.Error("unsupported extension should fail")
	}
}
