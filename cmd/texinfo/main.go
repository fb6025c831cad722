// Command texinfo inspects DDS and KTX textures, re-wraps them as DDS and
// renders PNG previews of S3TC textures.
package main

import (
	"context"
	"fmt"
	"image/png"
	"os"

	"github.com/alecthomas/kong"
	"github.com/woozymasta/bcn"
	"go.uber.org/zap"

	"github.com/woozymasta/texload"
)

// CLI defines the command-line interface for texinfo.
var CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Info    InfoCmd    `cmd:"" help:"Print container, format and size of textures"`
	Convert ConvertCmd `cmd:"" help:"Write level 0 of a texture as a DDS file"`
	Preview PreviewCmd `cmd:"" help:"Write a PNG preview of an S3TC texture"`
}

// InfoCmd prints a summary line per texture.
type InfoCmd struct {
	Paths []string `arg:"" help:"Texture files" type:"existingfile"`
}

// Run decodes every path and reports failures without stopping.
func (c *InfoCmd) Run(log *zap.Logger) error {
	failed := 0
	for _, path := range c.Paths {
		data, tex, err := load(path)
		if err != nil {
			log.Error("decode failed", zap.String("path", path), zap.Error(err))
			failed++
			continue
		}

		fmt.Printf("%s: %s %s %dx%d, %d texel bytes\n",
			path, texload.Detect(data), tex.Format, tex.Width, tex.Height, len(tex.Data))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d textures failed", failed, len(c.Paths))
	}
	return nil
}

// ConvertCmd re-wraps a texture as DDS.
type ConvertCmd struct {
	Input  string `arg:"" help:"Source DDS or KTX file" type:"existingfile"`
	Output string `arg:"" help:"Destination DDS file"`
}

// Run writes level 0 of Input to Output.
func (c *ConvertCmd) Run(log *zap.Logger) error {
	_, tex, err := load(c.Input)
	if err != nil {
		return err
	}
	if err := texload.WriteDDS(c.Output, tex); err != nil {
		return err
	}

	log.Info("wrote DDS",
		zap.String("output", c.Output),
		zap.Stringer("format", tex.Format),
		zap.Uint32("width", tex.Width),
		zap.Uint32("height", tex.Height))
	return nil
}

// PreviewCmd renders a texture to PNG.
type PreviewCmd struct {
	Input   string `arg:"" help:"Source DDS or KTX file" type:"existingfile"`
	Output  string `arg:"" help:"Destination PNG file"`
	Workers int    `help:"BCn decode workers (0 = default)" default:"0"`
}

// Run decodes level 0 on the CPU and encodes it as PNG.
func (c *PreviewCmd) Run(log *zap.Logger) error {
	_, tex, err := load(c.Input)
	if err != nil {
		return err
	}

	img, err := tex.ImageWithOptions(decodeOptions(c.Workers))
	if err != nil {
		return err
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("create %q: %w", c.Output, err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %q: %w", c.Output, err)
	}

	log.Info("wrote preview", zap.String("output", c.Output))
	return nil
}

func load(path string) ([]byte, *texload.Texture, error) {
	data, err := texload.Fetch(context.Background(), texload.FileSource(path))
	if err != nil {
		return nil, nil, fmt.Errorf("read %q: %w", path, err)
	}

	tex, err := texload.Decode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return data, tex, nil
}

func decodeOptions(workers int) *bcn.DecodeOptions {
	if workers <= 0 {
		return nil
	}
	return &bcn.DecodeOptions{Workers: workers}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("texinfo"),
		kong.Description("Inspect and convert DDS/KTX textures"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	log, err := newLogger(CLI.Verbose)
	ctx.FatalIfErrorf(err)
	defer func() { _ = log.Sync() }()
	texload.SetLogger(log)

	err = ctx.Run(log)
	ctx.FatalIfErrorf(err)
}
