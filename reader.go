// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/texload

package texload

import "fmt"

// texelView returns n bytes at off as a view capped to its own length.
func texelView(data []byte, off, n uint64) ([]byte, error) {
	size := uint64(len(data))
	if off > size || n > size-off {
		return nil, fmt.Errorf("%w: %d bytes at offset %d, have %d", ErrTruncated, n, off, size)
	}

	end := off + n
	return data[off:end:end], nil
}

// texelTail returns every byte from off to the end of data.
func texelTail(data []byte, off uint64) ([]byte, error) {
	if off > uint64(len(data)) {
		return nil, fmt.Errorf("%w: offset %d, have %d bytes", ErrTruncated, off, len(data))
	}

	return data[off:len(data):len(data)], nil
}
