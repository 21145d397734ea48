// Package command turns each editing operation into a replayable unit of
// work against a named image store.
//
// Every command is built by a constructor that validates its parameters and
// fails fast with an error wrapping raster.ErrInvalidArgument. Running a
// command follows the same three steps:
//
//  1. Read a private copy of the source variant from the store.
//  2. Run the transform engine on it.
//  3. Write the result back under the target name, replacing any existing
//     variant of that name (including the source when the names match).
//
// Nothing is written if any step fails, so a failed command leaves the store
// exactly as it was.
//
// # Masking
//
// Masked wraps any other command and limits its effect to the pixels
// selected by a stencil image. A stencil pixel equal to pure black
// (0,0,0 with ceiling 255) keeps the edit; every other stencil value
// reverts that pixel to the pre-edit source.
package command
