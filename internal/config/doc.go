// Package config provides configuration management for the triangle solver.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - Conversion to model.AngleSet and render.Options for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Angles 10°, 30°, 20°, 20°
//	// 640x480 figures, no annotation
//	// Four concurrent solves in batch mode
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/triangle.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
//
// # Saving Settings
//
//	settings.Annotate = true
//	err := settings.Save("/path/to/triangle.json")
package config
