package texload

import "testing"

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format     Format
		valid      bool
		compressed bool
	}{
		{format: FormatDepthComponent, valid: true},
		{format: FormatDepthStencil, valid: true},
		{format: FormatAlpha, valid: true},
		{format: FormatRGB, valid: true},
		{format: FormatRGBA, valid: true},
		{format: FormatLuminance, valid: true},
		{format: FormatLuminanceAlpha, valid: true},
		{format: FormatRGBDXT1, valid: true, compressed: true},
		{format: FormatRGBADXT1, valid: true, compressed: true},
		{format: FormatRGBADXT3, valid: true, compressed: true},
		{format: FormatRGBADXT5, valid: true, compressed: true},
		{format: FormatRGBPVRTC4BPPV1, valid: true, compressed: true},
		{format: FormatRGBPVRTC2BPPV1, valid: true, compressed: true},
		{format: FormatRGBAPVRTC4BPPV1, valid: true, compressed: true},
		{format: FormatRGBAPVRTC2BPPV1, valid: true, compressed: true},
		{format: FormatRGBETC1, valid: true, compressed: true},
		{format: FormatRGBATC, valid: true, compressed: true},
		{format: FormatRGBAATCExplicitAlpha, valid: true, compressed: true},
		{format: FormatRGBAATCInterpolatedAlpha, valid: true, compressed: true},
		{format: Format(0)},
		{format: Format(0x8E8C)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.format.String(), func(t *testing.T) {
			t.Parallel()

			if got := DefaultCatalog.IsValid(tc.format); got != tc.valid {
				t.Fatalf("IsValid = %v, want %v", got, tc.valid)
			}
			if got := DefaultCatalog.IsCompressed(tc.format); got != tc.compressed {
				t.Fatalf("IsCompressed = %v, want %v", got, tc.compressed)
			}
			if tc.compressed && Level0Size(tc.format, 4, 4) == 0 {
				t.Fatalf("compressed format %s has no level size", tc.format)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	t.Parallel()

	if got := FormatRGBADXT5.String(); got != "RGBA_DXT5" {
		t.Fatalf("String() = %q", got)
	}
	if got := Format(0x1234).String(); got != "Format(0x1234)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestFourCCTableIsBijective(t *testing.T) {
	t.Parallel()

	if len(fourCCFormats) != len(formatFourCCs) {
		t.Fatalf("fourCC table has duplicate formats: %d codes, %d formats", len(fourCCFormats), len(formatFourCCs))
	}
	for code, format := range fourCCFormats {
		back, ok := fourCCFromFormat(format)
		if !ok || back != code {
			t.Fatalf("%s maps back to %q, want %q", format, intToFourCC(back), intToFourCC(code))
		}
		if !DefaultCatalog.IsCompressed(format) {
			t.Fatalf("%s from %q is not compressed", format, intToFourCC(code))
		}
	}
	if got := intToFourCC(makeFourCC('A', 'T', 'C', ' ')); got != "ATC " {
		t.Fatalf("intToFourCC = %q", got)
	}
}

func TestFormatPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format     Format
		color      bool
		depth      bool
		compressed bool
		dxt        bool
		pvrtc      bool
		etc1       bool
	}{
		{format: FormatDepthComponent, depth: true},
		{format: FormatDepthStencil, depth: true},
		{format: FormatAlpha, color: true},
		{format: FormatRGB, color: true},
		{format: FormatRGBA, color: true},
		{format: FormatLuminance, color: true},
		{format: FormatLuminanceAlpha, color: true},
		{format: FormatRGBDXT1, compressed: true, dxt: true},
		{format: FormatRGBADXT1, compressed: true, dxt: true},
		{format: FormatRGBADXT3, compressed: true, dxt: true},
		{format: FormatRGBADXT5, compressed: true, dxt: true},
		{format: FormatRGBPVRTC4BPPV1, compressed: true, pvrtc: true},
		{format: FormatRGBPVRTC2BPPV1, compressed: true, pvrtc: true},
		{format: FormatRGBAPVRTC4BPPV1, compressed: true, pvrtc: true},
		{format: FormatRGBAPVRTC2BPPV1, compressed: true, pvrtc: true},
		{format: FormatRGBETC1, compressed: true, etc1: true},
		{format: FormatRGBATC, compressed: true},
		{format: FormatRGBAATCExplicitAlpha, compressed: true},
		{format: FormatRGBAATCInterpolatedAlpha, compressed: true},
		{format: Format(0)},
		{format: Format(0x8E8C)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.format.String(), func(t *testing.T) {
			t.Parallel()

			got := []bool{
				tc.format.IsColor(),
				tc.format.IsDepth(),
				tc.format.IsCompressed(),
				tc.format.IsDXT(),
				tc.format.IsPVRTC(),
				tc.format.IsETC1(),
			}
			want := []bool{tc.color, tc.depth, tc.compressed, tc.dxt, tc.pvrtc, tc.etc1}
			names := []string{"IsColor", "IsDepth", "IsCompressed", "IsDXT", "IsPVRTC", "IsETC1"}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("%s() = %v, want %v", names[i], got[i], want[i])
				}
			}
		})
	}
}
