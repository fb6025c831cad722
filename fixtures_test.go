package texload

import (
	"encoding/binary"

	"github.com/woozymasta/bcn"
)

// ddsFixture builds DDS files from a bcn.DDSHeader.
type ddsFixture struct {
	headerSize  uint32
	flags       uint32
	width       uint32
	height      uint32
	mipMapCount uint32
	pfFlags     uint32
	fourCC      uint32
	texels      []byte
}

func newDDSFixture(fourCC uint32, width, height uint32, texels []byte) ddsFixture {
	return ddsFixture{
		headerSize: bcn.DDSHeaderSize,
		flags:      bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat,
		width:      width,
		height:     height,
		pfFlags:    bcn.DDSPFFourCC,
		fourCC:     fourCC,
		texels:     texels,
	}
}

func (f ddsFixture) withMipmaps(count uint32) ddsFixture {
	f.flags |= bcn.DDSFlagMipmapCount
	f.mipMapCount = count
	return f
}

func (f ddsFixture) bytes() []byte {
	hdr := bcn.DDSHeader{
		Size:        f.headerSize,
		Flags:       f.flags,
		Height:      f.height,
		Width:       f.width,
		MipMapCount: f.mipMapCount,
		PixelFormat: bcn.DDSPixelFormat{
			Size:   bcn.DDSPixelFormatSize,
			Flags:  f.pfFlags,
			FourCC: f.fourCC,
		},
	}

	buf := binary.LittleEndian.AppendUint32(nil, bcn.DDSMagic)
	buf, err := binary.Append(buf, binary.LittleEndian, &hdr)
	if err != nil {
		panic(err)
	}

	// A larger declared size leaves a gap before the texels.
	if dataOffset := int(f.headerSize) + 4; dataOffset > len(buf) {
		buf = append(buf, make([]byte, dataOffset-len(buf))...)
	}
	return append(buf, f.texels...)
}

// ktxFixture builds KTX 1.1 files from a bcn.KTXHeader.
type ktxFixture struct {
	endianness            uint32
	glType                uint32
	glTypeSize            uint32
	glFormat              uint32
	glInternalFormat      uint32
	glBaseInternalFormat  uint32
	width                 uint32
	height                uint32
	depth                 uint32
	numberOfArrayElements uint32
	numberOfFaces         uint32
	numberOfMipmapLevels  uint32
	keyValue              []byte
	imageSize             *uint32
	image                 []byte
}

// compressedKTX describes a valid single-level compressed texture.
func compressedKTX(format Format, width, height uint32, image []byte) ktxFixture {
	return ktxFixture{
		endianness:           bcn.KTXEndianness,
		glTypeSize:           1,
		glInternalFormat:     uint32(format),
		glBaseInternalFormat: uint32(FormatRGBA),
		width:                width,
		height:               height,
		numberOfFaces:        1,
		numberOfMipmapLevels: 1,
		image:                image,
	}
}

// rgbaKTX describes a valid single-level GL_RGBA/GL_UNSIGNED_BYTE texture.
func rgbaKTX(width, height uint32) ktxFixture {
	return ktxFixture{
		endianness:           bcn.KTXEndianness,
		glType:               bcn.KTXGLUnsignedByte,
		glTypeSize:           1,
		glFormat:             uint32(FormatRGBA),
		glInternalFormat:     uint32(FormatRGBA),
		glBaseInternalFormat: uint32(FormatRGBA),
		width:                width,
		height:               height,
		numberOfFaces:        1,
		numberOfMipmapLevels: 1,
		image:                patternBytes(int(width * height * 4)),
	}
}

func (f ktxFixture) bytes() []byte {
	hdr := bcn.KTXHeader{
		Identifier:            bcn.KTXIdentifier,
		Endianness:            f.endianness,
		GlType:                f.glType,
		GlTypeSize:            f.glTypeSize,
		GlFormat:              f.glFormat,
		GlInternalFormat:      f.glInternalFormat,
		GlBaseInternalFormat:  f.glBaseInternalFormat,
		PixelWidth:            f.width,
		PixelHeight:           f.height,
		PixelDepth:            f.depth,
		NumberOfArrayElements: f.numberOfArrayElements,
		NumberOfFaces:         f.numberOfFaces,
		NumberOfMipmapLevels:  f.numberOfMipmapLevels,
		BytesOfKeyValueData:   uint32(len(f.keyValue)),
	}

	buf, err := binary.Append(nil, binary.LittleEndian, &hdr)
	if err != nil {
		panic(err)
	}
	buf = append(buf, f.keyValue...)

	imageSize := uint32(len(f.image))
	if f.imageSize != nil {
		imageSize = *f.imageSize
	}
	buf = binary.LittleEndian.AppendUint32(buf, imageSize)
	return append(buf, f.image...)
}

// patternBytes returns n deterministic, non-zero-heavy bytes.
func patternBytes(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte((i*31 + 7) & 0xff)
	}
	return data
}

func u32p(v uint32) *uint32 {
	return &v
}
