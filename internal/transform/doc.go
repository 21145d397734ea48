// Package transform implements the stateless editing engine.
//
// Every operation takes a *raster.Image and returns a new *raster.Image
// holding the result; the input is never modified. Callers should treat the
// returned image as the only valid result of the operation.
//
// # Operations
//
//   - Flip: mirror left-right (Vertical axis) or top-bottom (Horizontal axis)
//   - Brighten: add a constant to every channel
//   - Greyscale: copy one scalar component into all three channels
//   - ColorTransform: multiply each pixel by a 3×3 matrix
//   - Filter: 2-D convolution with an odd-sized, centered kernel
//   - Downsize: shrink to a smaller width and height
//   - ComputeHistogram: per-value frequency tables
//
// # Numeric Rules
//
// All rounding is truncation toward zero, never round-to-nearest. Every
// computed channel is clamped to the pixel's ceiling with
// raster.Pixel.Constrain before it is stored.
//
// # Named Tables
//
// Matrices, kernels, greyscale components and flip axes are closed sets
// resolved by name through explicit lookup tables (MatrixByName,
// KernelByName, ParseComponent, ParseAxis). Unknown names fail with an error
// wrapping raster.ErrInvalidArgument.
package transform
