// Package ioutils provides file system and image encoding utilities.
//
// This package contains functions for:
//   - File writing
//   - Filename sanitization for cross-platform compatibility
//   - Directory creation
//   - Image resizing and encoding to PNG or JPEG
//
// # File Operations
//
//	// Write data to file, creating parent directories
//	err := ioutils.WriteFile(ctx, "/path/to/report.json", data)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/figures")
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("x: 10/30") // Returns "x_ 10_30"
//
// # Image Processing
//
// The ImageService encodes rendered figures:
//
//	svc := ioutils.NewImageService()
//
//	// Pick the encoder from the file extension and write the file
//	err := svc.SaveImage(ctx, img, "figure.png")
//
//	// Downscale to fit within 400x300
//	small := svc.ResizeImage(ctx, img, 400, 300)
package ioutils
