package texload

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/woozymasta/bcn"
)

// validateKTXHeader checks field combinations, failing on the first violation.
func validateKTXHeader(h *bcn.KTXHeader, catalog Catalog) error {
	format := Format(h.GlInternalFormat)
	if !catalog.IsValid(format) {
		return fmt.Errorf("%w: glInternalFormat 0x%04X", ErrUnrecognizedFormat, h.GlInternalFormat)
	}

	if catalog.IsCompressed(format) {
		switch {
		case h.GlType != 0:
			return fmt.Errorf("%w: glType must be 0 for compressed %s, got 0x%X", ErrInvalidFieldCombination, format, h.GlType)
		case h.GlTypeSize != 1:
			return fmt.Errorf("%w: glTypeSize must be 1 for compressed %s, got %d", ErrInvalidFieldCombination, format, h.GlTypeSize)
		case h.GlFormat != 0:
			return fmt.Errorf("%w: glFormat must be 0 for compressed %s, got 0x%X", ErrInvalidFieldCombination, format, h.GlFormat)
		case h.NumberOfMipmapLevels == 0:
			return fmt.Errorf("%w: runtime mipmap generation for compressed %s", ErrInvalidFieldCombination, format)
		}
	} else if h.GlBaseInternalFormat != h.GlFormat {
		return fmt.Errorf("%w: glBaseInternalFormat 0x%X differs from glFormat 0x%X", ErrInvalidFieldCombination, h.GlBaseInternalFormat, h.GlFormat)
	}

	if h.PixelDepth != 0 {
		return fmt.Errorf("%w: 3D texture (pixelDepth %d)", ErrUnsupportedFeature, h.PixelDepth)
	}
	if h.NumberOfArrayElements != 0 {
		return fmt.Errorf("%w: texture array (%d elements)", ErrUnsupportedFeature, h.NumberOfArrayElements)
	}
	if h.NumberOfFaces != 1 {
		return fmt.Errorf("%w: cubemap (%d faces)", ErrUnsupportedFeature, h.NumberOfFaces)
	}

	return nil
}

// DecodeKTX decodes a little-endian KTX 1.1 file using DefaultCatalog.
func DecodeKTX(data []byte) (*Texture, error) {
	return DecodeKTXWithOptions(data, nil)
}

// DecodeKTXWithOptions decodes a little-endian KTX 1.1 file.
// Key/value metadata is skipped unread and only level 0 is returned.
func DecodeKTXWithOptions(data []byte, opts *DecodeOptions) (*Texture, error) {
	if !hasKTXIdentifier(data) {
		return nil, fmt.Errorf("%w: invalid KTX identifier", ErrMalformedHeader)
	}

	// The marker is checked before the rest of the header so a foreign-endian
	// file is reported as such even when it is also short.
	idLen := len(bcn.KTXIdentifier)
	if len(data) < idLen+4 {
		return nil, fmt.Errorf("%w: KTX endianness marker, have %d bytes", ErrTruncated, len(data))
	}
	if marker := binary.LittleEndian.Uint32(data[idLen:]); marker != bcn.KTXEndianness {
		return nil, fmt.Errorf("%w: KTX marker 0x%08X", ErrUnsupportedEndianness, marker)
	}

	var h bcn.KTXHeader
	n, err := binary.Decode(data, binary.LittleEndian, &h)
	if err != nil {
		return nil, fmt.Errorf("%w: KTX header, have %d bytes", ErrTruncated, len(data))
	}

	off := uint64(n) + uint64(h.BytesOfKeyValueData)
	sizeField, err := texelView(data, off, 4)
	if err != nil {
		return nil, fmt.Errorf("KTX imageSize after %d bytes of key/value data: %w", h.BytesOfKeyValueData, err)
	}
	imageSize := binary.LittleEndian.Uint32(sizeField)

	view, err := texelView(data, off+4, uint64(imageSize))
	if err != nil {
		return nil, fmt.Errorf("KTX level 0: %w", err)
	}

	catalog := opts.catalog()
	if err := validateKTXHeader(&h, catalog); err != nil {
		return nil, err
	}

	format := Format(h.GlInternalFormat)
	if catalog.IsCompressed(format) && h.NumberOfMipmapLevels > 1 {
		if size := Level0Size(format, h.PixelWidth, h.PixelHeight); size > 0 {
			if size > uint64(len(view)) {
				return nil, fmt.Errorf("%w: KTX level 0 of %s needs %d bytes, imageSize %d", ErrTruncated, format, size, len(view))
			}
			view = view[:size:size]
		}
	}

	return &Texture{
		Data:   view,
		Width:  h.PixelWidth,
		Height: h.PixelHeight,
		Format: format,
	}, nil
}

func hasKTXIdentifier(data []byte) bool {
	return bytes.HasPrefix(data, bcn.KTXIdentifier[:])
}
