// SPDX-License-Identifier: MIT

package pixel

import "errors"

var (
	// ErrNilBuffer is returned when a nil *Buffer is passed.
	ErrNilBuffer = errors.New("pixel: nil buffer")

	// ErrBufferSize indicates len(Pix) disagrees with Size and Layout.
	ErrBufferSize = errors.New("pixel: buffer length does not match size")

	// ErrLayout indicates an operation was given a buffer of the wrong layout.
	ErrLayout = errors.New("pixel: unsupported layout")

	// ErrChannelMismatch indicates channel matrices of different sizes.
	ErrChannelMismatch = errors.New("pixel: channel sizes differ")
)
