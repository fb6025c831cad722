package texload

import (
	"fmt"
	"image"

	"github.com/woozymasta/bcn"
)

// Texture is a decoded container: level 0 texels plus the metadata needed to upload them.
type Texture struct {
	// Data borrows from the buffer passed to the decoder and is capped to its
	// own length, so appends never write into the caller's buffer.
	Data   []byte
	Width  uint32
	Height uint32
	Format Format
}

// DecodeOptions configures decoding. Nil opts uses DefaultCatalog.
type DecodeOptions struct {
	// Catalog validates KTX internal formats.
	Catalog Catalog
	// MaxBytes caps an inflated LZ4 payload in the Load helpers.
	// Zero means DefaultMaxBytes.
	MaxBytes int64
}

func (o *DecodeOptions) maxBytes() int64 {
	if o == nil {
		return DefaultMaxBytes
	}

	return o.MaxBytes
}

func (o *DecodeOptions) catalog() Catalog {
	if o == nil || o.Catalog == nil {
		return DefaultCatalog
	}

	return o.Catalog
}

// Container identifies a texture container kind.
type Container int

const (
	// ContainerUnknown is neither DDS nor KTX.
	ContainerUnknown Container = iota
	// ContainerDDS is a DirectDraw Surface file.
	ContainerDDS
	// ContainerKTX is a Khronos KTX 1.1 file.
	ContainerKTX
)

func (c Container) String() string {
	switch c {
	case ContainerDDS:
		return "DDS"
	case ContainerKTX:
		return "KTX"
	default:
		return "unknown"
	}
}

// Detect reports which container the buffer starts with.
func Detect(data []byte) Container {
	switch {
	case hasDDSMagic(data):
		return ContainerDDS
	case hasKTXIdentifier(data):
		return ContainerKTX
	default:
		return ContainerUnknown
	}
}

// Decode detects the container and decodes it.
func Decode(data []byte) (*Texture, error) {
	return DecodeWithOptions(data, nil)
}

// DecodeWithOptions detects the container and decodes it with the given options.
func DecodeWithOptions(data []byte, opts *DecodeOptions) (*Texture, error) {
	switch Detect(data) {
	case ContainerDDS:
		return DecodeDDS(data)
	case ContainerKTX:
		return DecodeKTXWithOptions(data, opts)
	default:
		return nil, fmt.Errorf("%w: neither DDS nor KTX", ErrMalformedHeader)
	}
}

// Level0 returns exactly the level 0 texels when the format has a known
// block size, or all of Data otherwise.
func (t *Texture) Level0() ([]byte, error) {
	size := Level0Size(t.Format, t.Width, t.Height)
	if size == 0 {
		return t.Data, nil
	}
	if size > uint64(len(t.Data)) {
		return nil, fmt.Errorf("%w: level 0 of %s needs %d bytes, have %d", ErrTruncated, t.Format, size, len(t.Data))
	}

	return t.Data[:size:size], nil
}

// Image decodes level 0 into an image on the CPU. Only S3TC formats are supported.
func (t *Texture) Image() (image.Image, error) {
	return t.ImageWithOptions(nil)
}

// ImageWithOptions decodes level 0 into an image with the given BCn decode options.
// Nil opts uses default decoding.
func (t *Texture) ImageWithOptions(opts *bcn.DecodeOptions) (image.Image, error) {
	var format bcn.Format
	switch t.Format {
	case FormatRGBDXT1, FormatRGBADXT1:
		format = bcn.FormatDXT1
	case FormatRGBADXT3:
		format = bcn.FormatDXT3
	case FormatRGBADXT5:
		format = bcn.FormatDXT5
	default:
		return nil, fmt.Errorf("%w: no CPU decoder for %s", ErrUnsupportedFeature, t.Format)
	}

	w, err := intFromU64(uint64(t.Width))
	if err != nil {
		return nil, err
	}
	h, err := intFromU64(uint64(t.Height))
	if err != nil {
		return nil, err
	}

	level, err := t.Level0()
	if err != nil {
		return nil, err
	}

	img, err := bcn.DecodeImageWithOptions(level, w, h, format, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}

	return img, nil
}
