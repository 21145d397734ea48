// Package inspect provides read-only views of stored image variants for the
// server: color sampling, histograms and rendered previews.
//
// # Coordinate System
//
// Sampling uses the raster convention of (row, col) with row 0 at the top
// and col 0 at the left edge. Both are 0-based.
//
// # Color Representation
//
// Sampled colors are returned in several formats:
//   - Raw: channel values and ceiling exactly as stored
//   - Hex: "#rrggbb" after scaling to 8 bits
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Previews
//
// Previews render a variant to PNG (optionally rescaled) and return it
// base64-encoded so it can travel inside a JSON response.
package inspect
