package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/bashhack/qrforge/internal/clipboard"
	"github.com/bashhack/qrforge/internal/env"
	"github.com/bashhack/qrforge/internal/fixture"
	"github.com/bashhack/qrforge/internal/history"
	"github.com/bashhack/qrforge/internal/qrcode"
)

var zstdEncoder, _ = zstd.NewWriter(nil)

// ExitFunc is a function type for exiting the program
type ExitFunc func(code int)

// App represents the main application
type App struct {
	Registry      *fixture.Registry
	ClipboardCopy func(text string) error
	Exit          ExitFunc
	Stdout        io.Writer
	Stderr        io.Writer
	Banner        bool // print banners and instructions (terminal output)
	VersionInfo   VersionInfo
}

// VersionInfo contains version information
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewDefaultApp creates a new App with default dependencies
func NewDefaultApp() *App {
	return &App{
		Registry:      fixture.DefaultRegistry(),
		ClipboardCopy: clipboard.Copy,
		Exit:          os.Exit,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		Banner:        term.IsTerminal(int(os.Stdout.Fd())),
		VersionInfo: VersionInfo{
			Version: version,
			Commit:  commit,
			Date:    date,
		},
	}
}

// ShowVersion displays version information
func (a *App) ShowVersion() {
	fmt.Fprintf(a.Stdout, "qrforge version %s (%s) built on %s\n",
		a.VersionInfo.Version, a.VersionInfo.Commit, a.VersionInfo.Date)
}

// ListFixtures lists all available fixture variants
func (a *App) ListFixtures() {
	fmt.Fprintln(a.Stdout, "Available fixtures:")

	for _, g := range a.Registry.List() {
		fmt.Fprintf(a.Stdout, "  %-16s %s\n", g.Name(), g.Description())
	}
}

// Generate renders the selected fixtures. An empty name renders every
// registered fixture in order; a non-empty name renders just that one.
func (a *App) Generate(p fixture.Params, name string) ([]fixture.Fixture, error) {
	if name != "" {
		g, err := a.Registry.Get(name)
		if err != nil {
			return nil, err
		}

		f, err := g.Generate(p)
		if err != nil {
			return nil, err
		}
		return []fixture.Fixture{f}, nil
	}

	fixtures := make([]fixture.Fixture, 0, len(a.Registry.List()))
	for _, g := range a.Registry.List() {
		f, err := g.Generate(p)
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, f)
	}

	return fixtures, nil
}

// PrintFixtures writes the numbered payload blocks, plus the banner and
// the closing instructions when writing to a terminal
func (a *App) PrintFixtures(fixtures []fixture.Fixture) {
	rule := strings.Repeat("=", 60)

	if a.Banner {
		fmt.Fprintln(a.Stdout, rule)
		fmt.Fprintln(a.Stdout, "Droplink QR login test data")
		fmt.Fprintln(a.Stdout, rule)
		fmt.Fprintln(a.Stdout)
	}

	for i, f := range fixtures {
		if a.Banner {
			fmt.Fprintf(a.Stdout, "[%d] %s:\n", i+1, f.Title)
			fmt.Fprintln(a.Stdout, strings.Repeat("-", 60))
		}
		fmt.Fprintf(a.Stdout, "%s\n", f.Payload)
		fmt.Fprintln(a.Stdout)
	}

	if a.Banner {
		fmt.Fprintln(a.Stdout, rule)
		fmt.Fprintln(a.Stdout, "Next steps:")
		fmt.Fprintln(a.Stdout, "1. Copy a payload block into a QR code generator")
		fmt.Fprintln(a.Stdout, "2. Suggested: https://www.qr-code-generator.com/")
		fmt.Fprintln(a.Stdout, "3. Or: https://www.qrcode-monkey.com/")
		fmt.Fprintln(a.Stdout, "4. Scan the generated code with the Droplink app under test")
		fmt.Fprintln(a.Stdout, rule)
	}
}

// WritePNGs renders each fixture as a QR code PNG in dir
func (a *App) WritePNGs(fixtures []fixture.Fixture, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	g := new(errgroup.Group)
	for i, f := range fixtures {
		path := filepath.Join(dir, fmt.Sprintf("qr-%d-%s.png", i+1, f.Name))
		payload := string(f.Payload)
		name := f.Name

		g.Go(func() error {
			data, err := qrcode.EncodePNG(payload, qrcode.DefaultSize)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			fmt.Fprintf(a.Stderr, "🖼  wrote %s\n", path)
			return nil
		})
	}

	return g.Wait()
}

// Verify round-trips every fixture through QR encode and decode
func (a *App) Verify(fixtures []fixture.Fixture) error {
	var failed int
	for _, f := range fixtures {
		if err := qrcode.RoundTrip(string(f.Payload)); err != nil {
			fmt.Fprintf(a.Stderr, "❌ %s: %v\n", f.Name, err)
			failed++
			continue
		}
		fmt.Fprintf(a.Stderr, "✅ %s: QR round trip ok\n", f.Name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d fixtures failed QR verification", failed, len(fixtures))
	}

	return nil
}

// CopyToClipboard copies one fixture's payload to the system clipboard
func (a *App) CopyToClipboard(f fixture.Fixture) error {
	if err := a.ClipboardCopy(string(f.Payload)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	fmt.Fprintf(a.Stderr, "✅ %s payload copied to clipboard\n", f.Name)
	return nil
}

// Export writes all fixtures as one zstd-compressed JSON document
func (a *App) Export(fixtures []fixture.Fixture, path string) error {
	type exportEntry struct {
		Name    string `json:"name"`
		Title   string `json:"title"`
		Payload string `json:"payload"`
	}

	entries := make([]exportEntry, 0, len(fixtures))
	for _, f := range fixtures {
		entries = append(entries, exportEntry{
			Name:    f.Name,
			Title:   f.Title,
			Payload: string(f.Payload),
		})
	}

	doc, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export document: %w", err)
	}

	if err := os.WriteFile(path, zstdEncoder.EncodeAll(doc, nil), 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	fmt.Fprintf(a.Stderr, "✅ exported %d fixtures to %s\n", len(fixtures), path)
	return nil
}

// RecordHistory appends the generated fixtures to the history database
func (a *App) RecordHistory(fixtures []fixture.Fixture) error {
	path, err := env.HistoryDBPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, f := range fixtures {
		if err := store.Record(f.Name, f.Payload); err != nil {
			return err
		}
	}

	return nil
}

// ShowHistory lists recent generation runs
func (a *App) ShowHistory(limit int) error {
	path, err := env.HistoryDBPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintln(a.Stdout, "No history recorded yet")
		return nil
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.Stdout, "No history recorded yet")
		return nil
	}

	fmt.Fprintf(a.Stdout, "Recent fixtures (newest first):\n")
	for _, e := range entries {
		fmt.Fprintf(a.Stdout, "  %s  %-16s %4d bytes\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Variant, len(e.Payload))
	}

	return nil
}
