// probe-locators resolves every page's locator registry against a back
// office and reports the entries that no longer match anything. Run it after
// a back-office upgrade, before the browser suites.
//
// Usage:
//
//	go run ./scripts/probe-locators                       # live, BO_BASE_URL
//	go run ./scripts/probe-locators --frames -p countries # also print the iframe tree
//	go run ./scripts/probe-locators --frame 'iframe#content' -p add-feature
//	go run ./scripts/probe-locators --fixtures internal/ui/bo/testdata/fixtures
//	go run ./scripts/probe-locators --fake                # in-process fake back office
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/go-rod/rod"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/grez-lucas/bo-ui/internal/config"
	"github.com/grez-lucas/bo-ui/internal/logging"
	"github.com/grez-lucas/bo-ui/internal/ui/bo"
	"github.com/grez-lucas/bo-ui/internal/ui/browser"
	"github.com/grez-lucas/bo-ui/internal/ui/locator"
	"github.com/grez-lucas/bo-ui/internal/ui/testutil/fakebo"
)

var errBroken = errors.New("broken locators found")

type options struct {
	envFile  string
	pages    []string
	fixtures string
	fake     bool
	frames   bool
	frame    string
	headless bool
	verbose  bool
}

// source returns the HTML a registry is checked against.
type source func(ctx context.Context, target bo.PageRegistry) (string, error)

func main() {
	opts := options{}

	cmd := &cobra.Command{
		Use:          "probe-locators",
		Short:        "Check page locator registries against a back office",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	bindFlags(cmd.Flags(), &opts)
	cmd.MarkFlagsMutuallyExclusive("fixtures", "fake")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.envFile, "env-file", ".env", "dotenv file with BO_* settings")
	fs.StringSliceVarP(&o.pages, "page", "p", nil, "page registry to probe (repeatable, default all)")
	fs.StringVar(&o.fixtures, "fixtures", "", "check captured fixtures in this directory instead of a live back office")
	fs.BoolVar(&o.fake, "fake", false, "check against the in-process fake back office")
	fs.BoolVar(&o.frames, "frames", false, "print the iframe tree of each live page")
	fs.StringVar(&o.frame, "frame", "", "check inside the iframe matching this selector (\"auto\": deepest visible iframe) instead of the top document")
	fs.BoolVar(&o.headless, "headless", true, "run the browser headless")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "list matching entries too")
}

func run(cmd *cobra.Command, opts options) error {
	ctx := cmd.Context()

	targets, err := selectPages(opts.pages)
	if err != nil {
		return err
	}

	var src source
	switch {
	case opts.fixtures != "":
		src = fixtureSource(opts.fixtures)
	case opts.fake:
		ts := httptest.NewServer(fakebo.New())
		defer ts.Close()
		src = httpSource(ts.URL + fakebo.DefaultBasePath)
	default:
		cfg, err := config.Load(opts.envFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("headless") {
			cfg.Headless = opts.headless
		}

		session, err := bo.Open(cfg, logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr))
		if err != nil {
			return err
		}
		defer session.Close()

		if err := session.SignIn(ctx); err != nil && !errors.Is(err, bo.ErrNoCredentials) {
			return err
		}
		src = liveSource(session, opts.frames, opts.frame)
	}

	broken := 0
	for _, target := range targets {
		fmt.Printf("[•] %s %s\n", color.New(color.Bold).Sprint(target.Name), color.HiBlackString(target.Path))

		html, err := src(ctx, target)
		if err != nil {
			fmt.Printf("    %s %v\n", color.YellowString("[!]"), err)
			continue
		}

		results, err := target.Registry.Check(html)
		if err != nil {
			fmt.Printf("    %s %v\n", color.RedString("[✖]"), err)
			broken++
			continue
		}
		broken += report(results, opts.verbose)
	}

	fmt.Println()
	if broken > 0 {
		fmt.Println(color.RedString("%d broken locator(s)", broken))
		return errBroken
	}
	fmt.Println(color.GreenString("All locators resolved"))
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

func report(results []locator.Result, verbose bool) int {
	broken := 0
	for _, res := range results {
		switch {
		case res.Broken():
			broken++
			fmt.Printf("    %s %-28s %s\n", color.RedString("[✖]"), res.Name, res.Selector)
		case res.Matches == 0:
			if verbose {
				fmt.Printf("    %s %-28s %s (optional, absent)\n", color.HiBlackString("[-]"), res.Name, res.Selector)
			}
		default:
			if verbose {
				fmt.Printf("    %s %-28s %s (%d)\n", color.GreenString("[✔]"), res.Name, res.Selector, res.Matches)
			}
		}
	}
	if broken == 0 {
		fmt.Printf("    %s %d entries\n", color.GreenString("[✔]"), len(results))
	}
	return broken
}

// fixtureSource reads <dir>/<name>.html, as capture-fixtures writes them.
func fixtureSource(dir string) source {
	return func(_ context.Context, target bo.PageRegistry) (string, error) {
		path := filepath.Join(dir, strings.ReplaceAll(target.Name, "-", "_")+".html")
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("no fixture: %w", err)
		}
		return string(data), nil
	}
}

func httpSource(baseURL string) source {
	client := &http.Client{Timeout: 10 * time.Second}
	return func(ctx context.Context, target bo.PageRegistry) (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+target.Path, nil)
		if err != nil {
			return "", err
		}
		resp, err := client.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("GET %s: %s", target.Path, resp.Status)
		}
		data, err := io.ReadAll(resp.Body)
		return string(data), err
	}
}

func liveSource(session *bo.Session, frames bool, frameSelector string) source {
	return func(ctx context.Context, target bo.PageRegistry) (string, error) {
		if err := session.Goto(ctx, target.Path); err != nil {
			return "", err
		}

		tab := session.Tab()
		if err := browser.WaitForIFrames(tab); err != nil {
			return "", err
		}
		if frames {
			inspectFrame(tab, "main", 1, target.Registry)
		}
		switch frameSelector {
		case "":
		case "auto":
			tab = browser.DeepestVisibleFrame(tab)
		default:
			frame, err := browser.FrameBySelector(tab, frameSelector)
			if err != nil {
				return "", err
			}
			tab = frame
		}

		html, _, _, err := browser.FlattenShadowDOM(tab)
		return html, err
	}
}

// inspectFrame prints which registry entries each frame of the page holds,
// recursing into child iframes.
func inspectFrame(frame *rod.Page, path string, depth int, registry locator.Registry) {
	indent := strings.Repeat("  ", depth+1)

	found := 0
	for _, e := range registry {
		el, err := frame.Timeout(500 * time.Millisecond).Element(e.Selector.String())
		if err != nil {
			continue
		}
		visible, _ := el.Visible()
		fmt.Printf("%sFOUND  %-28s  %s  (visible=%v)\n", indent, e.Name, e.Selector, visible)
		found++
	}
	if found == 0 {
		fmt.Printf("%s(no registry entries in this frame)\n", indent)
	}

	iframes, err := frame.Elements("iframe")
	if err != nil {
		return
	}

	for i, iframe := range iframes {
		label := fmt.Sprintf("iframe[%d]", i)
		if id, _ := iframe.Attribute("id"); id != nil && *id != "" {
			label = "iframe#" + *id
		} else if name, _ := iframe.Attribute("name"); name != nil && *name != "" {
			label = fmt.Sprintf("iframe[name=%s]", *name)
		}
		childPath := path + " > " + label

		src, _ := iframe.Attribute("src")
		visible, _ := iframe.Visible()
		fmt.Printf("%sIFRAME %s  visible=%v  src=%s\n", indent, childPath, visible, truncate(deref(src), 80))

		child, err := iframe.Frame()
		if err != nil {
			fmt.Printf("%s  (cannot access frame: %v)\n", indent, err)
			continue
		}
		inspectFrame(child, childPath, depth+1, registry)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
