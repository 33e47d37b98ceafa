package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bashhack/qrforge/internal/fixture"
	"github.com/bashhack/qrforge/internal/token"
)

// Version information (set by ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := NewDefaultApp()
	run(app, os.Args)
}

// run is the testable entrypoint for the application
func run(app *App, args []string) {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)

	// Override the usage function to use our custom help
	fs.Usage = printUsage

	serverURL := fs.String("url", "", "Override the Gotify server URL")
	appToken := fs.String("app-token", "", "Override the app token")
	clientToken := fs.String("client-token", "", "Override the client token")
	serverName := fs.String("server-name", "", "Override the server name")
	variantName := fs.String("variant", "", "Generate a single fixture (see --list)")
	listFixtures := fs.Bool("list", false, "List available fixtures")
	withForeign := fs.Bool("foreign", false, "Include the foreign otpauth fixture")
	randomTokens := fs.Bool("random-tokens", false, "Use freshly generated tokens instead of the sample constants")
	seed := fs.String("seed", "", "Derive tokens deterministically from this seed")
	pngDir := fs.String("png", "", "Write a QR code PNG per fixture into this directory")
	verify := fs.Bool("verify", false, "Round-trip each fixture through QR encode and decode")
	copyClipboard := fs.Bool("clip", false, "Copy the generated payload to the clipboard instead of printing")
	exportPath := fs.String("export", "", "Write all fixtures as one zstd-compressed JSON file")
	showHistory := fs.Bool("history", false, "Show recent generation history")
	noHistory := fs.Bool("no-history", false, "Skip recording this run in the history database")
	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show usage")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintf(app.Stderr, "❌ error parsing arguments: %v\n", err)
		app.Exit(1)
		return
	}

	// Handle global commands first
	if *showVersion {
		app.ShowVersion()
		return
	}

	if *showHelp {
		printUsage()
		return
	}

	if *withForeign || *variantName == fixture.ForeignName {
		fixture.WithForeign(app.Registry)
	}

	if *listFixtures {
		app.ListFixtures()
		return
	}

	if *showHistory {
		if err := app.ShowHistory(20); err != nil {
			fmt.Fprintf(app.Stderr, "❌ %v\n", err)
			app.Exit(1)
		}
		return
	}

	params, err := buildParams(*serverURL, *appToken, *clientToken, *serverName, *seed, *randomTokens)
	if err != nil {
		fmt.Fprintf(app.Stderr, "❌ %v\n", err)
		app.Exit(1)
		return
	}

	fixtures, err := app.Generate(params, *variantName)
	if err != nil {
		fmt.Fprintf(app.Stderr, "❌ %v\n", err)
		app.Exit(1)
		return
	}

	if *copyClipboard {
		// Without --variant the full set is generated and the first
		// fixture (the valid payload) lands on the clipboard
		if err := app.CopyToClipboard(fixtures[0]); err != nil {
			fmt.Fprintf(app.Stderr, "❌ %v\n", err)
			app.Exit(1)
		}
		return
	}

	app.PrintFixtures(fixtures)

	if *pngDir != "" {
		if err := app.WritePNGs(fixtures, *pngDir); err != nil {
			fmt.Fprintf(app.Stderr, "❌ %v\n", err)
			app.Exit(1)
			return
		}
	}

	if *verify {
		if err := app.Verify(fixtures); err != nil {
			fmt.Fprintf(app.Stderr, "❌ %v\n", err)
			app.Exit(1)
			return
		}
	}

	if *exportPath != "" {
		if err := app.Export(fixtures, *exportPath); err != nil {
			fmt.Fprintf(app.Stderr, "❌ %v\n", err)
			app.Exit(1)
			return
		}
	}

	if !*noHistory {
		// History is best effort; a broken local database should not
		// block fixture output
		if err := app.RecordHistory(fixtures); err != nil {
			fmt.Fprintf(app.Stderr, "⚠️  could not record history: %v\n", err)
		}
	}
}

// buildParams resolves the token flags into fixture parameters. Explicit
// token flags win over --seed, which wins over --random-tokens.
func buildParams(url, appTok, clientTok, name, seed string, random bool) (fixture.Params, error) {
	p := fixture.Params{
		ServerURL:   url,
		AppToken:    appTok,
		ClientToken: clientTok,
		ServerName:  name,
		Seed:        seed,
	}

	switch {
	case seed != "":
		if p.AppToken == "" {
			p.AppToken = token.Derive(seed, "appToken", token.AppPrefix)
		}
		if p.ClientToken == "" {
			p.ClientToken = token.Derive(seed, "clientToken", token.ClientPrefix)
		}
	case random:
		if p.AppToken == "" {
			t, err := token.Random(token.AppPrefix)
			if err != nil {
				return p, fmt.Errorf("failed to generate app token: %w", err)
			}
			p.AppToken = t
		}
		if p.ClientToken == "" {
			t, err := token.Random(token.ClientPrefix)
			if err != nil {
				return p, fmt.Errorf("failed to generate client token: %w", err)
			}
			p.ClientToken = t
		}
	}

	return p, nil
}

func printUsage() {
	fmt.Println("Usage: qrforge [options]")
	fmt.Println("\nPayload options:")
	fmt.Println("  --url, -url string             Override the Gotify server URL")
	fmt.Println("  --app-token, -app-token string     Override the app token")
	fmt.Println("  --client-token, -client-token string  Override the client token")
	fmt.Println("  --server-name, -server-name string    Override the server name")
	fmt.Println("  --random-tokens, -random-tokens  Use freshly generated tokens")
	fmt.Println("  --seed, -seed string           Derive tokens deterministically from this seed")
	fmt.Println("\nOutput options:")
	fmt.Println("  --variant, -variant string     Generate a single fixture (see --list)")
	fmt.Println("  --foreign, -foreign            Include the foreign otpauth fixture")
	fmt.Println("  --png, -png string             Write a QR code PNG per fixture into this directory")
	fmt.Println("  --verify, -verify              Round-trip each fixture through QR encode and decode")
	fmt.Println("  --clip, -clip                  Copy the generated payload to the clipboard")
	fmt.Println("  --export, -export string       Write all fixtures as one zstd-compressed JSON file")
	fmt.Println("\nOther options:")
	fmt.Println("  --list, -list                  List available fixtures")
	fmt.Println("  --history, -history            Show recent generation history")
	fmt.Println("  --no-history, -no-history      Skip recording this run")
	fmt.Println("  --version, -version            Show version information")
	fmt.Println("  --help, -help                  Show usage")
	fmt.Println("\nExamples:")
	fmt.Println("  qrforge                                Print all five test payloads")
	fmt.Println("  qrforge --variant expired              Print only the expired payload")
	fmt.Println("  qrforge --png ./codes --verify         Write QR PNGs and round-trip check them")
	fmt.Println("  qrforge --variant valid --clip         Copy the valid payload to the clipboard")
	fmt.Println("  qrforge --seed ci-run-42               Reproducible tokens for a CI scenario")
}
