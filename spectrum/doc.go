// Package spectrum charts the singular-value spectrum of a compression:
// every positive singular value by index, with the retained ones marked.
//
// The chart is the visual answer to "how much did rank reduction drop?":
// a steep spectrum compresses well, a flat one does not.
//
// Rendering uses gonum.org/v1/plot; any format plot supports (png, svg,
// pdf, eps, jpg, tiff) can be written.
package spectrum
