package format

import (
	"errors"
	"testing"
)

func TestTranslate_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		format     PixelFormat
		appleGPU   bool
		wantFormat PixelFormat
		wantNative NativeFormat
		wantOut    Outcome
		wantErr    error
	}{
		{"rgba8 unorm", R8G8B8A8_UNorm, false, R8G8B8A8_UNorm, NativeRGBA8Unorm, Exact, nil},
		{"rgba8 unorm apple", R8G8B8A8_UNorm, true, R8G8B8A8_UNorm, NativeRGBA8Unorm, Exact, nil},
		{"xr unorm generic", A2R10G10B10_XRUNormPack32, false, R16G16B16A16_SFloat, NativeRGBA16Float, Adjusted, nil},
		{"xr unorm apple", A2R10G10B10_XRUNormPack32, true, A2R10G10B10_XRUNormPack32, NativeBGR10XR, Exact, nil},
		{"depth auto", DepthAuto_removed_donotuse, false, DepthAuto_removed_donotuse, NativeInvalid, Failed, ErrObsoleteFormat},
		{"depth auto apple", DepthAuto_removed_donotuse, true, DepthAuto_removed_donotuse, NativeInvalid, Failed, ErrObsoleteFormat},
		{"rgb8 widened", R8G8B8_UNorm, false, R8G8B8A8_UNorm, NativeRGBA8Unorm, Adjusted, nil},
		{"rgb565 two hops", R5G6B5_UNormPack16, false, R8G8B8A8_UNorm, NativeRGBA8Unorm, Adjusted, nil},
		{"rgb565 apple", R5G6B5_UNormPack16, true, B5G6R5_UNormPack16, NativeB5G6R5Unorm, Adjusted, nil},
		{"astc generic", RGBA_ASTC4X4_UNorm, false, RGBA_ASTC4X4_UNorm, NativeInvalid, Failed, ErrNoDecoder},
		{"astc apple", RGBA_ASTC4X4_UNorm, true, RGBA_ASTC4X4_UNorm, NativeASTC4x4LDR, Exact, nil},
		{"bc7 apple", RGBA_BC7_UNorm, true, RGBA_BC7_UNorm, NativeInvalid, Failed, ErrNoDecoder},
		{"bc7 generic", RGBA_BC7_UNorm, false, RGBA_BC7_UNorm, NativeBC7RGBAUnorm, Exact, nil},
		{"etc1 apple", RGB_ETC_UNorm, true, RGB_ETC2_UNorm, NativeETC2RGB8, Adjusted, nil},
		{"etc1 generic", RGB_ETC_UNorm, false, RGB_ETC_UNorm, NativeInvalid, Failed, ErrNoDecoder},
		{"d24s8 apple", D24_UNorm_S8_UInt, true, D32_SFloat_S8_UInt, NativeDepth32FloatStencil8, Adjusted, nil},
		{"d24s8 generic", D24_UNorm_S8_UInt, false, D24_UNorm_S8_UInt, NativeDepth24UnormStencil8, Exact, nil},
		{"none", None, false, None, NativeInvalid, Failed, ErrUnsupportedFormat},
		{"unknown", Unknown, true, Unknown, NativeInvalid, Failed, ErrUnsupportedFormat},
		{"out of range", Last + 1, false, Last + 1, NativeInvalid, Failed, ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Translate(tt.format, tt.appleGPU)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Translate(%v, %v) error = %v, want %v", tt.format, tt.appleGPU, err, tt.wantErr)
			}
			if got.Requested != tt.format {
				t.Errorf("Requested = %v, want %v", got.Requested, tt.format)
			}
			if got.Format != tt.wantFormat {
				t.Errorf("Format = %v, want %v", got.Format, tt.wantFormat)
			}
			if got.Native != tt.wantNative {
				t.Errorf("Native = %v, want %v", got.Native, tt.wantNative)
			}
			if out := (Row{Translation: got, Err: err}).Outcome(); out != tt.wantOut {
				t.Errorf("Outcome() = %v, want %v", out, tt.wantOut)
			}
		})
	}
}

func TestTranslate_Total(t *testing.T) {
	for _, apple := range []bool{false, true} {
		for f := Unknown - 2; f <= Last+2; f++ {
			got, err := Translate(f, apple)
			switch {
			case err == nil:
				if !got.Native.IsValid() {
					t.Errorf("Translate(%v, %v) succeeded with invalid native %v", f, apple, got.Native)
				}
				if got.Adjusted() && mappings[got.Format].native != got.Native {
					t.Errorf("Translate(%v, %v) adjusted to %v but native %v is not its own", f, apple, got.Format, got.Native)
				}
			default:
				var te *TranslateError
				if !errors.As(err, &te) {
					t.Fatalf("Translate(%v, %v) error %T is not *TranslateError", f, apple, err)
				}
				if te.Format != f || te.AppleGPU != apple {
					t.Errorf("TranslateError = %+v, want format %v apple %v", te, f, apple)
				}
				if !errors.Is(err, ErrUnsupportedFormat) && !errors.Is(err, ErrObsoleteFormat) && !errors.Is(err, ErrNoDecoder) {
					t.Errorf("Translate(%v, %v) error %v wraps no known sentinel", f, apple, err)
				}
				if got.Native != NativeInvalid {
					t.Errorf("failed Translate(%v, %v) returned native %v", f, apple, got.Native)
				}
			}
		}
	}
}

func TestTranslate_UncompressedNeverFails(t *testing.T) {
	for _, apple := range []bool{false, true} {
		for f := None + 1; f <= Last; f++ {
			if f.IsCompressed() || f.IsRemoved() {
				continue
			}
			if _, err := Translate(f, apple); err != nil {
				t.Errorf("Translate(%v, %v) = %v", f, apple, err)
			}
		}
	}
}

func TestTranslate_CompressedStaysCompressed(t *testing.T) {
	for _, apple := range []bool{false, true} {
		for f := None + 1; f <= Last; f++ {
			if !f.IsCompressed() {
				continue
			}
			got, err := Translate(f, apple)
			if err != nil {
				if !errors.Is(err, ErrNoDecoder) {
					t.Errorf("Translate(%v, %v) = %v, want ErrNoDecoder", f, apple, err)
				}
				continue
			}
			if !got.Format.IsCompressed() {
				t.Errorf("Translate(%v, %v) substituted uncompressed %v", f, apple, got.Format)
			}
			if got.Format.Info().BlockSize != f.Info().BlockSize {
				t.Errorf("Translate(%v, %v) changed block size", f, apple)
			}
		}
	}
}

func TestTranslate_GatedFormats(t *testing.T) {
	var gated int
	for f := None + 1; f <= Last; f++ {
		if !IsGated(f) {
			continue
		}
		gated++
		m := mappings[f]
		admitted := m.gate == gateApple

		t.Run(f.String(), func(t *testing.T) {
			got, err := Translate(f, admitted)
			if err != nil {
				t.Fatalf("admitted family: %v", err)
			}
			if got.Adjusted() || got.Native != m.native {
				t.Errorf("admitted family: got %+v, want exact %v", got, m.native)
			}

			got, err = Translate(f, !admitted)
			if err != nil {
				if m.fallback != None && !f.IsCompressed() {
					t.Errorf("excluded family: %v despite fallback %v", err, m.fallback)
				}
				return
			}
			if !got.Adjusted() {
				t.Errorf("excluded family: got exact %v", got.Native)
			}
		})
	}
	if gated == 0 {
		t.Fatal("no gated formats")
	}
}

func TestTranslate_RemovedAlwaysFails(t *testing.T) {
	r, ok := FamilyRemoved.Range()
	if !ok {
		t.Fatal("FamilyRemoved has no range")
	}
	for f := r.First; f <= r.Last; f++ {
		for _, apple := range []bool{false, true} {
			if _, err := Translate(f, apple); !errors.Is(err, ErrObsoleteFormat) {
				t.Errorf("Translate(%v, %v) = %v, want ErrObsoleteFormat", f, apple, err)
			}
		}
	}
}

func TestMustTranslate(t *testing.T) {
	if got := MustTranslate(B8G8R8A8_SRGB, true); got.Native != NativeBGRA8UnormSRGB {
		t.Errorf("MustTranslate(B8G8R8A8_SRGB) = %v", got.Native)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustTranslate(VideoAuto_removed_donotuse) did not panic")
		}
	}()
	MustTranslate(VideoAuto_removed_donotuse, true)
}

func TestTable(t *testing.T) {
	for _, apple := range []bool{false, true} {
		rows := Table(apple)
		if len(rows) != int(Last) {
			t.Fatalf("Table(%v) has %d rows, want %d", apple, len(rows), Last)
		}
		counts := map[Outcome]int{}
		for i, r := range rows {
			if r.Requested != PixelFormat(i+1) {
				t.Fatalf("row %d is %v", i, r.Requested)
			}
			counts[r.Outcome()]++
		}
		for _, o := range []Outcome{Exact, Adjusted, Failed} {
			if counts[o] == 0 {
				t.Errorf("Table(%v) has no %v rows", apple, o)
			}
		}
	}
}

func TestGate(t *testing.T) {
	tests := []struct {
		format PixelFormat
		want   string
	}{
		{R8G8B8A8_UNorm, "any"},
		{RGBA_PVRTC_4Bpp_UNorm, "apple"},
		{RGBA_DXT5_UNorm, "non-apple"},
		{R8G8B8_UNorm, ""},
		{ShadowAuto_removed_donotuse, ""},
		{Unknown, ""},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := Gate(tt.format); got != tt.want {
				t.Errorf("Gate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckMappings(t *testing.T) {
	if err := checkMappings(); err != nil {
		t.Fatal(err)
	}

	saved := mappings[RGB_ETC_UNorm]
	defer func() { mappings[RGB_ETC_UNorm] = saved }()

	mappings[RGB_ETC_UNorm] = substitute(R8G8B8A8_UNorm)
	if err := checkMappings(); err == nil {
		t.Error("compressed to uncompressed fallback accepted")
	}
	mappings[RGB_ETC_UNorm] = substitute(RGBA_ETC2_UNorm)
	if err := checkMappings(); err == nil {
		t.Error("fallback with different block size accepted")
	}
}

func TestTranslateError(t *testing.T) {
	_, err := Translate(RGBA_ASTC8X8_UFloat, false)
	want := "RGBA_ASTC8X8_UFloat (appleGPU=false): format: no decoder for compressed format"
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}
