// Package pixel marshals raw 8-bit pixel buffers to and from the channel
// matrices consumed by package compress.
//
// Buffers come in two layouts:
//   - Gray: one byte per pixel, row-major.
//   - RGBA: four bytes per pixel (R, G, B, A interleaved), row-major.
//
// Only R, G and B are compressed; alpha is dropped on the way in and written
// back fully opaque (255). Every conversion copies, so a Buffer never shares
// storage with a matrix.
//
// Compress is the image-level entry point: a gray buffer is one channel, an
// RGBA buffer is split into three channels compressed concurrently.
//
// Interop with the standard image package goes through FromImage, Image and
// Downsize, built on golang.org/x/image/draw.
package pixel
