package ioutils

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// ImageFormat is an output encoding for rendered figures.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
)

// String returns the lower-case name of the format.
func (f ImageFormat) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	default:
		return "png"
	}
}

// Extension returns the file extension for the format, including the dot.
func (f ImageFormat) Extension() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	default:
		return ".png"
	}
}

// ParseImageFormat converts a name such as "png", "jpg" or "jpeg" to an ImageFormat.
func ParseImageFormat(name string) (ImageFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	default:
		return FormatPNG, fmt.Errorf("unsupported image format %q", name)
	}
}

// FormatFromPath returns the format matching the extension of path.
func FormatFromPath(path string) (ImageFormat, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return FormatPNG, fmt.Errorf("missing image extension in %q", path)
	}
	return ParseImageFormat(ext)
}

// ImageService provides image processing operations for rendered figures.
//
// ImageService is used to:
//   - Resize images to fit maximum dimensions
//   - Encode images as PNG or JPEG and save them
//
// Example usage:
//
//	svc := NewImageService()
//	data, _ := svc.Encode(ctx, img, FormatJPEG)
//	err := svc.SaveImage(ctx, img, "/figures/default.png")
type ImageService struct {
	// JPEGQuality is used for JPEG encoding, 1-100.
	JPEGQuality int
}

// NewImageService creates a new ImageService with JPEG quality 90.
func NewImageService() *ImageService {
	return &ImageService{JPEGQuality: 90}
}

// ResizeImage scales img to fit within the specified maximum dimensions.
//
// The aspect ratio is preserved and images already within bounds are
// returned unchanged. The Catmull-Rom kernel is used for scaling.
//
// Example:
//
//	// A 1600x1200 image becomes 800x600
//	small := svc.ResizeImage(ctx, img, 800, 800)
func (s *ImageService) ResizeImage(ctx context.Context, img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width, height := FitWithin(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)
	if width == bounds.Dx() && height == bounds.Dy() {
		return img
	}

	return s.ScaleImage(ctx, img, width, height)
}

// ScaleImage scales img to exactly width x height with the Catmull-Rom
// kernel, ignoring the aspect ratio.
func (s *ImageService) ScaleImage(ctx context.Context, img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// FitWithin returns the largest dimensions with the aspect ratio of
// width x height that fit within maxWidth x maxHeight. Dimensions already
// within bounds are returned unchanged.
func FitWithin(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}
	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		// Height is the limiting factor
		return min(maxWidth, int(math.Round(float64(maxHeight)*ratio))), maxHeight
	}
	// Width is the limiting factor
	return maxWidth, min(maxHeight, int(math.Round(float64(maxWidth)/ratio)))
}

// Encode encodes img in the given format.
func (s *ImageService) Encode(ctx context.Context, img image.Image, format ImageFormat) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch format {
	case FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: s.JPEGQuality}); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
	default:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// SaveImage encodes img according to the extension of path and writes it,
// creating parent directories as needed.
func (s *ImageService) SaveImage(ctx context.Context, img image.Image, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := s.Encode(ctx, img, format)
	if err != nil {
		return err
	}
	return WriteFile(ctx, path, data)
}
