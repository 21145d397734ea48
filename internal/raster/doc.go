// Package raster provides the integer-channel image model used by every
// editing operation.
//
// A Pixel is a red/green/blue triple with a per-pixel ceiling (its maximum
// channel value). An Image is a rectangular grid of pixels addressed by
// (row, col), where row 0 is the top of the image and col 0 the left edge.
//
// # Ownership
//
// An Image exclusively owns its grid. Pixel is a value type, so At returns a
// copy and Set stores a copy; no internal reference escapes an Image. Copy
// produces a deep, independent grid.
//
// # Clamping
//
// Every channel is kept in [0, Max] by Pixel.Constrain. Constructors reject
// out-of-range channels; mutators clamp.
//
// # Error Handling
//
// All failures reported by this module (and by the packages built on it)
// wrap ErrInvalidOperation. Narrower sentinels identify the cause:
//   - ErrInvalidArgument: missing or malformed parameters
//   - ErrNotFound: unknown variant name or missing file
//   - ErrOutOfRange: coordinates or channel values outside their range
//   - ErrSizeMismatch: two rasters that must agree in size do not
package raster
