package texload

import "fmt"

// Format is a GL internal-format code.
type Format uint32

// Uncompressed formats.
const (
	FormatDepthComponent Format = 0x1902
	FormatDepthStencil   Format = 0x84F9
	FormatAlpha          Format = 0x1906
	FormatRGB            Format = 0x1907
	FormatRGBA           Format = 0x1908
	FormatLuminance      Format = 0x1909
	FormatLuminanceAlpha Format = 0x190A
)

// Block-compressed formats.
const (
	FormatRGBDXT1                  Format = 0x83F0
	FormatRGBADXT1                 Format = 0x83F1
	FormatRGBADXT3                 Format = 0x83F2
	FormatRGBADXT5                 Format = 0x83F3
	FormatRGBPVRTC4BPPV1           Format = 0x8C00
	FormatRGBPVRTC2BPPV1           Format = 0x8C01
	FormatRGBAPVRTC4BPPV1          Format = 0x8C02
	FormatRGBAPVRTC2BPPV1          Format = 0x8C03
	FormatRGBETC1                  Format = 0x8D64
	FormatRGBATC                   Format = 0x8C92
	FormatRGBAATCExplicitAlpha     Format = 0x8C93
	FormatRGBAATCInterpolatedAlpha Format = 0x87EE
)

// blockFamily selects the level size formula for a format.
type blockFamily uint8

const (
	familyNone blockFamily = iota
	familyBlock8
	familyBlock16
	familyPVRTC4
	familyPVRTC2
)

// formatClass groups formats the way texture uploaders branch on them.
type formatClass uint8

const (
	classColor formatClass = iota + 1
	classDepth
	classDXT
	classPVRTC
	classETC1
	classATC
)

type formatInfo struct {
	name   string
	family blockFamily
	class  formatClass
}

func (i formatInfo) compressed() bool {
	return i.family != familyNone
}

// formats is the single source of truth for every known Format.
var formats = map[Format]formatInfo{
	FormatDepthComponent: {name: "DEPTH_COMPONENT", class: classDepth},
	FormatDepthStencil:   {name: "DEPTH_STENCIL", class: classDepth},
	FormatAlpha:          {name: "ALPHA", class: classColor},
	FormatRGB:            {name: "RGB", class: classColor},
	FormatRGBA:           {name: "RGBA", class: classColor},
	FormatLuminance:      {name: "LUMINANCE", class: classColor},
	FormatLuminanceAlpha: {name: "LUMINANCE_ALPHA", class: classColor},

	FormatRGBDXT1:                  {name: "RGB_DXT1", family: familyBlock8, class: classDXT},
	FormatRGBADXT1:                 {name: "RGBA_DXT1", family: familyBlock8, class: classDXT},
	FormatRGBADXT3:                 {name: "RGBA_DXT3", family: familyBlock16, class: classDXT},
	FormatRGBADXT5:                 {name: "RGBA_DXT5", family: familyBlock16, class: classDXT},
	FormatRGBPVRTC4BPPV1:           {name: "RGB_PVRTC_4BPPV1", family: familyPVRTC4, class: classPVRTC},
	FormatRGBPVRTC2BPPV1:           {name: "RGB_PVRTC_2BPPV1", family: familyPVRTC2, class: classPVRTC},
	FormatRGBAPVRTC4BPPV1:          {name: "RGBA_PVRTC_4BPPV1", family: familyPVRTC4, class: classPVRTC},
	FormatRGBAPVRTC2BPPV1:          {name: "RGBA_PVRTC_2BPPV1", family: familyPVRTC2, class: classPVRTC},
	FormatRGBETC1:                  {name: "RGB_ETC1", family: familyBlock8, class: classETC1},
	FormatRGBATC:                   {name: "RGB_ATC", family: familyBlock8, class: classATC},
	FormatRGBAATCExplicitAlpha:     {name: "RGBA_ATC_EXPLICIT_ALPHA", family: familyBlock16, class: classATC},
	FormatRGBAATCInterpolatedAlpha: {name: "RGBA_ATC_INTERPOLATED_ALPHA", family: familyBlock16, class: classATC},
}

// String returns the format name.
func (f Format) String() string {
	if info, ok := formats[f]; ok {
		return info.name
	}

	return fmt.Sprintf("Format(0x%04X)", uint32(f))
}

// IsColor reports whether f is an uncompressed color format.
func (f Format) IsColor() bool { return formats[f].class == classColor }

// IsDepth reports whether f is a depth or depth-stencil format.
func (f Format) IsDepth() bool { return formats[f].class == classDepth }

// IsCompressed reports whether f is block-compressed.
func (f Format) IsCompressed() bool { return formats[f].compressed() }

// IsDXT reports whether f is one of the S3TC formats.
func (f Format) IsDXT() bool { return formats[f].class == classDXT }

// IsPVRTC reports whether f is a PVRTC v1 format.
func (f Format) IsPVRTC() bool { return formats[f].class == classPVRTC }

// IsETC1 reports whether f is ETC1.
func (f Format) IsETC1() bool { return formats[f].class == classETC1 }

// Catalog reports capabilities of internal-format codes.
type Catalog interface {
	// IsValid reports whether the format is known.
	IsValid(f Format) bool
	// IsCompressed reports whether the format is block-compressed.
	IsCompressed(f Format) bool
}

type tableCatalog struct{}

func (tableCatalog) IsValid(f Format) bool {
	_, ok := formats[f]
	return ok
}

func (tableCatalog) IsCompressed(f Format) bool {
	return f.IsCompressed()
}

// DefaultCatalog knows every Format constant in this package.
var DefaultCatalog Catalog = tableCatalog{}

// fourCC codes recognised in DDS pixel formats.
var (
	fourCCDXT1 = makeFourCC('D', 'X', 'T', '1')
	fourCCDXT3 = makeFourCC('D', 'X', 'T', '3')
	fourCCDXT5 = makeFourCC('D', 'X', 'T', '5')
	fourCCATC  = makeFourCC('A', 'T', 'C', ' ')
	fourCCATCA = makeFourCC('A', 'T', 'C', 'A')
	fourCCATCI = makeFourCC('A', 'T', 'C', 'I')
)

var fourCCFormats = map[uint32]Format{
	fourCCDXT1: FormatRGBDXT1,
	fourCCDXT3: FormatRGBADXT3,
	fourCCDXT5: FormatRGBADXT5,
	fourCCATC:  FormatRGBATC,
	fourCCATCA: FormatRGBAATCExplicitAlpha,
	fourCCATCI: FormatRGBAATCInterpolatedAlpha,
}

var formatFourCCs = func() map[Format]uint32 {
	m := make(map[Format]uint32, len(fourCCFormats))
	for code, f := range fourCCFormats {
		m[f] = code
	}
	return m
}()

func formatFromFourCC(code uint32) (Format, bool) {
	f, ok := fourCCFormats[code]
	return f, ok
}

func fourCCFromFormat(f Format) (uint32, bool) {
	code, ok := formatFourCCs[f]
	return code, ok
}

func intToFourCC(value uint32) string {
	return string([]byte{
		byte(value & 0xff),
		byte((value >> 8) & 0xff),
		byte((value >> 16) & 0xff),
		byte((value >> 24) & 0xff),
	})
}

func makeFourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}
