package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/bashhack/qrforge/internal/fixture"
)

func TestGenerateAllInOrder(t *testing.T) {
	app, _, _ := mockApp()

	fixtures, err := app.Generate(fixture.Params{}, "")
	if err != nil {
		t.Fatalf("Generate() unexpected error = %v", err)
	}

	want := []string{"valid", "expired", "wrong-type", "missing-fields", "invalid-token"}
	if len(fixtures) != len(want) {
		t.Fatalf("Generate() returned %d fixtures, want %d", len(fixtures), len(want))
	}
	for i, f := range fixtures {
		if f.Name != want[i] {
			t.Errorf("fixture %d = %q, want %q", i, f.Name, want[i])
		}
	}
}

func TestGenerateSingle(t *testing.T) {
	app, _, _ := mockApp()

	fixtures, err := app.Generate(fixture.Params{}, "wrong-type")
	if err != nil {
		t.Fatalf("Generate() unexpected error = %v", err)
	}
	if len(fixtures) != 1 || fixtures[0].Name != "wrong-type" {
		t.Errorf("Generate(wrong-type) = %v, want just the wrong-type fixture", fixtures)
	}
}

func TestGenerateUnknown(t *testing.T) {
	app, _, _ := mockApp()

	_, err := app.Generate(fixture.Params{}, "bogus")
	if err == nil {
		t.Fatal("Generate() error = nil, want not found error")
	}
}

func TestPrintFixturesBannerToggle(t *testing.T) {
	app, stdoutBuf, _ := mockApp()

	fixtures, err := app.Generate(fixture.Params{}, "valid")
	if err != nil {
		t.Fatalf("Generate() unexpected error = %v", err)
	}

	app.Banner = true
	app.PrintFixtures(fixtures)
	withBanner := stdoutBuf.String()

	stdoutBuf.Reset()
	app.Banner = false
	app.PrintFixtures(fixtures)
	withoutBanner := stdoutBuf.String()

	if !strings.Contains(withBanner, "[1] Valid QR login payload") {
		t.Errorf("banner output missing the numbered title:\n%s", withBanner)
	}
	if strings.Contains(withoutBanner, "[1]") {
		t.Errorf("bannerless output should carry only the payload:\n%s", withoutBanner)
	}
	if !strings.Contains(withoutBanner, string(fixtures[0].Payload)) {
		t.Error("bannerless output lost the payload")
	}
}

func TestExportRoundTrip(t *testing.T) {
	app, _, _ := mockApp()
	path := filepath.Join(t.TempDir(), "fixtures.json.zst")

	fixtures, err := app.Generate(fixture.Params{}, "")
	if err != nil {
		t.Fatalf("Generate() unexpected error = %v", err)
	}

	if err := app.Export(fixtures, path); err != nil {
		t.Fatalf("Export() unexpected error = %v", err)
	}

	comp, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export file: %v", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		t.Fatalf("failed to create zstd reader: %v", err)
	}
	defer decoder.Close()

	doc, err := decoder.DecodeAll(comp, nil)
	if err != nil {
		t.Fatalf("export file is not valid zstd: %v", err)
	}

	var entries []struct {
		Name    string `json:"name"`
		Title   string `json:"title"`
		Payload string `json:"payload"`
	}
	if err := json.Unmarshal(doc, &entries); err != nil {
		t.Fatalf("export document is not valid JSON: %v", err)
	}

	if len(entries) != 5 {
		t.Fatalf("export contains %d entries, want 5", len(entries))
	}
	for i, e := range entries {
		if e.Payload != string(fixtures[i].Payload) {
			t.Errorf("entry %d payload does not match the generated fixture", i)
		}
	}
}

func TestVerifyReportsPerFixture(t *testing.T) {
	app, _, stderrBuf := mockApp()

	fixtures, err := app.Generate(fixture.Params{}, "")
	if err != nil {
		t.Fatalf("Generate() unexpected error = %v", err)
	}

	if err := app.Verify(fixtures); err != nil {
		t.Fatalf("Verify() unexpected error = %v", err)
	}

	for _, f := range fixtures {
		if !strings.Contains(stderrBuf.String(), f.Name) {
			t.Errorf("Verify() output missing status for %q", f.Name)
		}
	}
}

func TestWritePNGsCreatesOnePerFixture(t *testing.T) {
	app, _, _ := mockApp()
	dir := t.TempDir()

	fixtures, err := app.Generate(fixture.Params{}, "")
	if err != nil {
		t.Fatalf("Generate() unexpected error = %v", err)
	}

	if err := app.WritePNGs(fixtures, dir); err != nil {
		t.Fatalf("WritePNGs() unexpected error = %v", err)
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read output directory: %v", err)
	}
	if len(files) != len(fixtures) {
		t.Errorf("wrote %d files, want %d", len(files), len(fixtures))
	}
}
