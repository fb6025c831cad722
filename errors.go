package texload

import "errors"

var (
	// ErrMalformedHeader indicates a DDS magic or KTX identifier mismatch.
	ErrMalformedHeader = errors.New("malformed header")
	// ErrTruncated indicates a header field or texel range lies past the end of the buffer.
	ErrTruncated = errors.New("truncated data")
	// ErrUnsupportedEndianness indicates a KTX endianness marker other than the native one.
	ErrUnsupportedEndianness = errors.New("unsupported endianness")
	// ErrUnsupportedFormat indicates a DDS pixel format without a four-character code.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrUnrecognizedFormat indicates an unknown four-character code or internal format.
	ErrUnrecognizedFormat = errors.New("unrecognized format")
	// ErrInvalidFieldCombination indicates KTX fields that contradict each other.
	ErrInvalidFieldCombination = errors.New("invalid field combination")
	// ErrUnsupportedFeature indicates 3D textures, arrays, cubemaps or runtime mipmap generation.
	ErrUnsupportedFeature = errors.New("unsupported feature")
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrFetch indicates a Source failed to deliver bytes.
	ErrFetch = errors.New("fetch failed")
	// ErrInflate indicates an LZ4 frame could not be decompressed.
	ErrInflate = errors.New("LZ4 frame inflate failed")
	// ErrDecodeImage indicates texel decode failed.
	ErrDecodeImage = errors.New("decode image failed")
	// ErrCreateFile indicates file creation failed.
	ErrCreateFile = errors.New("create file failed")
	// ErrWriteDDSMagic indicates DDS magic write failed.
	ErrWriteDDSMagic = errors.New("writing DDS magic failed")
	// ErrWriteDDSHeader indicates DDS header write failed.
	ErrWriteDDSHeader = errors.New("writing DDS header failed")
	// ErrWriteTexelData indicates texel payload write failed.
	ErrWriteTexelData = errors.New("writing texel data failed")
)
