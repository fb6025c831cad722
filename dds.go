package texload

import (
	"encoding/binary"
	"fmt"

	"github.com/woozymasta/bcn"
)

// DecodeDDS decodes a DDS file whose pixel format is given by a four-character code.
// Only level 0 is returned; the rest of a mip chain is ignored.
func DecodeDDS(data []byte) (*Texture, error) {
	if !hasDDSMagic(data) {
		return nil, fmt.Errorf("%w: invalid DDS magic", ErrMalformedHeader)
	}

	// Size is taken from the file rather than required to be 124, so
	// bcn.ReadDDSHeader is not used here.
	var hdr bcn.DDSHeader
	if _, err := binary.Decode(data[4:], binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: DDS header needs %d bytes, have %d", ErrTruncated, bcn.DDSHeaderSize+4, len(data))
	}

	if hdr.PixelFormat.Flags&bcn.DDSPFFourCC == 0 {
		return nil, fmt.Errorf("%w: DDS pixel format must contain a four-character code", ErrUnsupportedFormat)
	}

	format, ok := formatFromFourCC(hdr.PixelFormat.FourCC)
	if !ok {
		return nil, fmt.Errorf("%w: four-character code %q", ErrUnrecognizedFormat, intToFourCC(hdr.PixelFormat.FourCC))
	}

	levels := ddsLevelCount(hdr.Flags, hdr.MipMapCount)

	dataOffset := uint64(hdr.Size) + 4
	view, err := texelTail(data, dataOffset)
	if err != nil {
		return nil, fmt.Errorf("DDS data offset %d: %w", dataOffset, err)
	}

	if levels > 1 {
		if size := Level0Size(format, hdr.Width, hdr.Height); size > 0 {
			if view, err = texelView(view, 0, size); err != nil {
				return nil, fmt.Errorf("DDS level 0 of %s: %w", format, err)
			}
		}
	}

	return &Texture{
		Data:   view,
		Width:  hdr.Width,
		Height: hdr.Height,
		Format: format,
	}, nil
}

func hasDDSMagic(data []byte) bool {
	return len(data) >= 4 && binary.LittleEndian.Uint32(data[:4]) == bcn.DDSMagic
}
