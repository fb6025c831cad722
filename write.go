package texload

import (
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/bcn"
)

// WriteDDS writes level 0 of tex as a single-level DDS file.
func WriteDDS(path string, tex *Texture) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return EncodeDDS(f, tex)
}

// EncodeDDS writes level 0 of tex as a single-level DDS stream.
// The format must have a DDS four-character code (DXT1/3/5 or ATC variants).
func EncodeDDS(w io.Writer, tex *Texture) error {
	level, err := tex.Level0()
	if err != nil {
		return err
	}

	header, err := makeDDSHeader(tex, len(level))
	if err != nil {
		return err
	}

	if err := bcn.WriteDDSMagic(w); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSMagic, err)
	}
	if err := bcn.WriteDDSHeader(w, header); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSHeader, err)
	}
	if _, err := w.Write(level); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteTexelData, err)
	}

	return nil
}

func makeDDSHeader(tex *Texture, levelSize int) (*bcn.DDSHeader, error) {
	code, ok := fourCCFromFormat(tex.Format)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no DDS four-character code", ErrUnsupportedFormat, tex.Format)
	}

	linearSize, err := u32FromInt(levelSize)
	if err != nil {
		return nil, err
	}

	hdr := &bcn.DDSHeader{
		Size: bcn.DDSHeaderSize,
		Flags: uint32(bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth |
			bcn.DDSFlagPixelFormat | bcn.DDSFlagLinearSize),
		Height:            tex.Height,
		Width:             tex.Width,
		PitchOrLinearSize: linearSize,
		Depth:             1,
		MipMapCount:       1,
		Caps:              uint32(bcn.DDSCapsTexture),
	}
	hdr.PixelFormat.Size = bcn.DDSPixelFormatSize
	hdr.PixelFormat.Flags = bcn.DDSPFFourCC
	hdr.PixelFormat.FourCC = code

	return hdr, nil
}
