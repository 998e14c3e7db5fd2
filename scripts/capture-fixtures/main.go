// capture-fixtures opens back-office pages in a browser and saves their
// flattened HTML (plus a screenshot) as offline fixtures for the locator
// registries. With --har the whole session is recorded, sanitized and saved
// as a replayable HAR log.
//
// Usage:
//
//	go run ./scripts/capture-fixtures
//	go run ./scripts/capture-fixtures --page countries --page add-country
//	go run ./scripts/capture-fixtures --interactive --headless=false --har login_flow
package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"os/user"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/grez-lucas/bo-ui/internal/config"
	"github.com/grez-lucas/bo-ui/internal/logging"
	"github.com/grez-lucas/bo-ui/internal/ui/bo"
	"github.com/grez-lucas/bo-ui/internal/ui/browser"
	"github.com/grez-lucas/bo-ui/internal/ui/testutil"
)

type options struct {
	envFile     string
	pages       []string
	outDir      string
	interactive bool
	headless    bool
	har         string
	signIn      bool
	verbose     bool
}

// metadata is written next to the fixtures as metadata.yaml.
type metadata struct {
	BaseURL    string    `yaml:"base_url"`
	CapturedAt time.Time `yaml:"captured_at"`
	CapturedBy string    `yaml:"captured_by"`
	Recording  string    `yaml:"recording,omitempty"`
	Fixtures   []fixture `yaml:"fixtures"`
}

type fixture struct {
	Page       string `yaml:"page"`
	Path       string `yaml:"path"`
	URL        string `yaml:"url"`
	File       string `yaml:"file"`
	Screenshot string `yaml:"screenshot,omitempty"`
	ShadowRoot int    `yaml:"shadow_roots,omitempty"`
	Iframes    int    `yaml:"iframes,omitempty"`
}

func main() {
	opts := options{}

	cmd := &cobra.Command{
		Use:          "capture-fixtures",
		Short:        "Capture back-office pages as offline HTML fixtures",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	bindFlags(cmd.Flags(), &opts)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.envFile, "env-file", ".env", "dotenv file with BO_* settings")
	fs.StringSliceVarP(&o.pages, "page", "p", nil, "page registry to capture (repeatable, default all)")
	fs.StringVarP(&o.outDir, "output", "o", filepath.Join("internal", "ui", "bo", "testdata", "fixtures"), "output directory")
	fs.BoolVarP(&o.interactive, "interactive", "i", false, "prompt before each capture so the page can be put in the wanted state")
	fs.BoolVar(&o.headless, "headless", true, "run the browser headless")
	fs.StringVar(&o.har, "har", "", "record the session as <output>/../recordings/<name>.har.json")
	fs.BoolVar(&o.signIn, "sign-in", true, "log in with BO_ADMIN_EMAIL/BO_ADMIN_PASSWORD first")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
}

func run(cmd *cobra.Command, opts options) error {
	ctx := cmd.Context()

	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("headless") {
		cfg.Headless = opts.headless
	}
	if opts.interactive {
		cfg.Headless = false
	}

	level := cfg.LogLevel
	if opts.verbose {
		level = zerolog.DebugLevel.String()
	}
	logger := logging.New(level, cfg.LogFormat, os.Stderr)

	targets, err := selectPages(opts.pages)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var (
		recorder *testutil.Recorder
		extra    []browser.Option
	)
	if opts.har != "" {
		recorder = testutil.NewRecorder(
			testutil.WithRecordLogger(logger),
			testutil.WithRecordFilter(notStaticAsset),
		)
		extra = append(extra, browser.WithHijacker(recorder.Middleware()))
	}

	session, err := bo.Open(cfg, logger, extra...)
	if err != nil {
		return err
	}
	defer session.Close()

	printBanner(cfg.BaseURL, opts.outDir, len(targets))

	if opts.signIn {
		if err := session.SignIn(ctx); err != nil {
			return err
		}
		fmt.Printf("%s Signed in as %s\n\n", color.GreenString("[✔]"), cfg.AdminEmail)
	}

	meta := metadata{BaseURL: cfg.BaseURL, CapturedAt: time.Now().UTC(), CapturedBy: currentUser()}
	reader := bufio.NewReader(os.Stdin)

	for _, target := range targets {
		fmt.Println(color.HiBlackString(strings.Repeat("─", 64)))
		fmt.Printf("%s %s (%s)\n", color.CyanString("[•]"), target.Name, target.Path)

		if err := session.Goto(ctx, target.Path); err != nil {
			fmt.Printf("    %s %v\n\n", color.RedString("[✖]"), err)
			continue
		}

		if opts.interactive {
			fmt.Print("    Put the page in the state to capture, then ENTER (or 'skip'/'quit'): ")
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(strings.ToLower(input))
			if input == "quit" {
				break
			}
			if input == "skip" {
				fmt.Printf("    %s skipped\n\n", color.YellowString("[-]"))
				continue
			}
		}

		f, err := capture(session, target, opts.outDir)
		if err != nil {
			fmt.Printf("    %s %v\n\n", color.RedString("[✖]"), err)
			continue
		}
		meta.Fixtures = append(meta.Fixtures, f)
		fmt.Printf("    %s %s\n\n", color.GreenString("[✔]"), filepath.Join(opts.outDir, f.File))
	}

	if recorder != nil {
		path, err := saveRecording(recorder, opts.outDir, opts.har)
		if err != nil {
			return err
		}
		meta.Recording = path
		fmt.Printf("%s Sanitized recording saved to %s\n", color.GreenString("[✔]"), path)
	}

	if err := saveMetadata(opts.outDir, meta); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(color.YellowString("Fixtures still carry shop data. Run sanitize-fixtures before committing:"))
	fmt.Printf("  go run ./scripts/sanitize-fixtures --dir %s\n", opts.outDir)
	return nil
}

func selectPages(names []string) ([]bo.PageRegistry, error) {
	if len(names) == 0 {
		return bo.Registries(), nil
	}

	var out []bo.PageRegistry
	for _, name := range names {
		r, ok := bo.LookupRegistry(name)
		if !ok {
			return nil, fmt.Errorf("unknown page %q", name)
		}
		out = append(out, r)
	}
	return out, nil
}

// capture screenshots the page before flattening it: flattening rewrites the
// live DOM.
func capture(session *bo.Session, target bo.PageRegistry, outDir string) (fixture, error) {
	tab := session.Tab()
	if err := browser.WaitForIFrames(tab); err != nil {
		return fixture{}, err
	}

	name := strings.ReplaceAll(target.Name, "-", "_")
	f := fixture{Page: target.Name, Path: target.Path, File: name + ".html"}

	if info, err := tab.Info(); err == nil {
		f.URL = testutil.SanitizeURL(info.URL)
	}

	if shot, err := tab.Screenshot(true, nil); err == nil {
		f.Screenshot = name + ".png"
		if err := os.WriteFile(filepath.Join(outDir, f.Screenshot), shot, 0o644); err != nil {
			return fixture{}, fmt.Errorf("save screenshot: %w", err)
		}
	} else {
		fmt.Printf("    %s screenshot failed: %v\n", color.YellowString("[!]"), err)
	}

	html, shadows, iframes, err := browser.FlattenShadowDOM(tab)
	if err != nil {
		return fixture{}, err
	}
	f.ShadowRoot, f.Iframes = shadows, iframes

	if err := os.WriteFile(filepath.Join(outDir, f.File), []byte(html), 0o644); err != nil {
		return fixture{}, fmt.Errorf("save fixture: %w", err)
	}
	return f, nil
}

var staticAssets = map[string]bool{
	".css": true, ".js": true, ".map": true, ".png": true, ".jpg": true, ".gif": true,
	".svg": true, ".ico": true, ".woff": true, ".woff2": true, ".ttf": true,
}

// notStaticAsset keeps documents, form posts and ajax calls out of the theme
// assets, which the replayer does not need.
func notStaticAsset(r *http.Request) bool {
	return !staticAssets[strings.ToLower(path.Ext(r.URL.Path))]
}

func saveRecording(recorder *testutil.Recorder, outDir, scenario string) (string, error) {
	dir := filepath.Join(filepath.Dir(outDir), "recordings")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create recordings directory: %w", err)
	}

	path := filepath.Join(dir, scenario+".har.json")
	if err := testutil.SaveHAR(path, testutil.SanitizeHAR(recorder.HAR())); err != nil {
		return "", err
	}
	return path, nil
}

func saveMetadata(outDir string, meta metadata) error {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	return os.WriteFile(filepath.Join(outDir, "metadata.yaml"), data, 0o644)
}

func printBanner(baseURL, outDir string, pages int) {
	bold := color.New(color.Bold)
	bold.Println("BACK-OFFICE FIXTURE CAPTURE")
	fmt.Printf("  Back office: %s\n", baseURL)
	fmt.Printf("  Output:      %s\n", outDir)
	fmt.Printf("  Pages:       %d\n\n", pages)
}

func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
