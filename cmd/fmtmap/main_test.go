package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gogpu/hostbridge/format"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	app.ErrWriter = &buf
	err := app.Run(append([]string{"fmtmap"}, args...))
	return buf.String(), err
}

func TestTranslateCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"translate", "R8G8B8A8_SRGB"}, "R8G8B8A8_SRGB -> RGBA8Unorm_sRGB"},
		{[]string{"translate", "kFormatR8G8B8A8_SRGB"}, "R8G8B8A8_SRGB -> RGBA8Unorm_sRGB"},
		{[]string{"translate", "R8G8B8_SRGB"}, "(as R8G8B8A8_SRGB)"},
		{[]string{"translate", "RGBA_ASTC4X4_SRGB"}, "RGBA_ASTC4X4_SRGB: no decoder"},
		{[]string{"translate", "--apple", "RGBA_ASTC4X4_SRGB"}, "RGBA_ASTC4X4_SRGB -> "},
		{[]string{"translate", "DepthAuto_removed_donotuse"}, "obsolete"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestTranslateCommand_Errors(t *testing.T) {
	if _, err := run(t, "translate"); err == nil {
		t.Error("translate without a name succeeded")
	}
	if _, err := run(t, "translate", "R9G9B9"); err == nil {
		t.Error("translate of an unknown name succeeded")
	}
}

func TestTable(t *testing.T) {
	out, err := run(t, "--family", "ASTC", "--apple")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "RGBA_ASTC4X4_SRGB") || strings.Contains(out, "RGBA_DXT1_SRGB") {
		t.Errorf("family filter not applied:\n%s", out)
	}
	if !strings.Contains(out, "appleGPU=true") {
		t.Errorf("missing summary:\n%s", out)
	}
}

func TestTable_OnlyFailures(t *testing.T) {
	out, err := run(t, "--only-failures")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "R8G8B8A8_UNorm") {
		t.Errorf("successful row listed:\n%s", out)
	}
	if !strings.Contains(out, "DepthAuto_removed_donotuse") {
		t.Errorf("removed format not listed:\n%s", out)
	}
	if !strings.Contains(out, " 0 exact, 0 adjusted") {
		t.Errorf("summary counts successes:\n%s", out)
	}
}

func TestTable_UnknownFamily(t *testing.T) {
	if _, err := run(t, "--family", "Nope"); err == nil {
		t.Error("unknown family accepted")
	}
}

func TestRowFilter(t *testing.T) {
	rows := format.Table(false)
	all := rowFilter{}.apply(rows)
	if len(all) != len(rows) {
		t.Errorf("empty filter kept %d of %d rows", len(all), len(rows))
	}
	for _, r := range (rowFilter{family: format.FamilyDXTC}).apply(rows) {
		if !r.Requested.IsDXTC() {
			t.Errorf("DXTC filter kept %v", r.Requested)
		}
	}
}
