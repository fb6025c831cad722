package texload

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/pierrec/lz4/v4"
	"go.uber.org/zap"
)

// lz4FrameMagic starts every LZ4 frame.
const lz4FrameMagic = 0x184D2204

// DefaultMaxBytes caps HTTP bodies and inflated LZ4 payloads.
const DefaultMaxBytes int64 = 1 << 30

// Source delivers the raw bytes of a texture container.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]byte, error)

// Fetch calls f.
func (f SourceFunc) Fetch(ctx context.Context) ([]byte, error) {
	return f(ctx)
}

// BytesSource serves an in-memory buffer as is.
type BytesSource []byte

// Fetch returns the buffer.
func (b BytesSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return b, nil
}

// FileSource reads a file from disk.
type FileSource string

// Fetch reads the whole file.
func (p FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(p))
}

// HTTPSource downloads a texture with GET.
type HTTPSource struct {
	// Client defaults to http.DefaultClient.
	Client *http.Client
	URL    string
	// MaxBytes caps the body size. Zero means DefaultMaxBytes.
	MaxBytes int64
}

// Fetch performs the request and reads the body.
func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", s.URL, resp.Status)
	}

	return readLimited(resp.Body, s.MaxBytes)
}

// readLimited reads r to EOF, failing once more than limit bytes arrive.
// A non-positive limit means DefaultMaxBytes.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrSizeOverflow, limit)
	}

	return data, nil
}

// Load fetches a container from src and decodes it, detecting DDS or KTX.
func Load(ctx context.Context, src Source, opts *DecodeOptions) (*Texture, error) {
	data, err := FetchWithLimit(ctx, src, opts.maxBytes())
	if err != nil {
		return nil, err
	}

	return DecodeWithOptions(data, opts)
}

// LoadDDS fetches a DDS file from src and decodes it.
func LoadDDS(ctx context.Context, src Source) (*Texture, error) {
	data, err := Fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	return DecodeDDS(data)
}

// LoadKTX fetches a KTX file from src and decodes it.
func LoadKTX(ctx context.Context, src Source, opts *DecodeOptions) (*Texture, error) {
	data, err := FetchWithLimit(ctx, src, opts.maxBytes())
	if err != nil {
		return nil, err
	}

	return DecodeKTXWithOptions(data, opts)
}

// Fetch reads src and inflates the payload when it is an LZ4 frame.
// The inflated payload is capped at DefaultMaxBytes.
func Fetch(ctx context.Context, src Source) ([]byte, error) {
	return FetchWithLimit(ctx, src, DefaultMaxBytes)
}

// FetchWithLimit is Fetch with an explicit cap on the inflated payload.
// A non-positive limit means DefaultMaxBytes.
func FetchWithLimit(ctx context.Context, src Source, limit int64) ([]byte, error) {
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	Logger().Debug("texture fetched", zap.Int("bytes", len(data)))

	if len(data) < 4 || binary.LittleEndian.Uint32(data[:4]) != lz4FrameMagic {
		return data, nil
	}

	raw, err := readLimited(lz4.NewReader(bytes.NewReader(data)), limit)
	if errors.Is(err, ErrSizeOverflow) {
		return nil, fmt.Errorf("%w: %w", ErrInflate, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInflate, err)
	}
	Logger().Debug("LZ4 frame inflated",
		zap.Int("compressed", len(data)),
		zap.Int("bytes", len(raw)))

	return raw, nil
}
