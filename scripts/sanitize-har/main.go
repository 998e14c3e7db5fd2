// sanitize-har removes admin tokens, cookies and credentials from HAR
// recordings before they are committed.
//
// Usage:
//
//	go run ./scripts/sanitize-har --dir internal/ui/bo/testdata/recordings --scenario login_flow
//	go run ./scripts/sanitize-har --input recording.har.json --output sanitized.har.json
//	go run ./scripts/sanitize-har --input recording.har.json --dry-run
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/grez-lucas/bo-ui/internal/ui/testutil"
)

type options struct {
	dir      string
	scenario string
	input    string
	output   string
	dryRun   bool
}

func main() {
	opts := options{}

	cmd := &cobra.Command{
		Use:          "sanitize-har",
		Short:        "Remove sensitive data from HAR recordings",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.dir, "dir", filepath.Join("internal", "ui", "bo", "testdata", "recordings"), "recordings directory")
	flags.StringVar(&opts.scenario, "scenario", "", "scenario name, sanitized in place under --dir")
	flags.StringVarP(&opts.input, "input", "i", "", "input HAR file")
	flags.StringVarP(&opts.output, "output", "o", "", "output HAR file (defaults to the input)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "show what would be redacted without writing")
	cmd.MarkFlagsMutuallyExclusive("scenario", "input")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts options) error {
	var inPath, outPath string
	switch {
	case opts.scenario != "":
		inPath = filepath.Join(opts.dir, opts.scenario+".har.json")
		outPath = inPath
	case opts.input != "":
		inPath, outPath = opts.input, opts.input
		if opts.output != "" {
			outPath = opts.output
		}
	default:
		return errors.New("one of --scenario or --input is required")
	}

	har, err := testutil.LoadHAR(inPath)
	if err != nil {
		return err
	}
	fmt.Printf("[•] Loaded %d entries from %s\n", len(har.Entries), inPath)

	sanitized := testutil.SanitizeHAR(har)
	redactions := diff(har, sanitized)
	fmt.Printf("[•] %d value(s) to redact\n", len(redactions))

	if opts.dryRun {
		for _, r := range redactions {
			fmt.Printf("    %s %s\n", color.YellowString("[-]"), r)
		}
		fmt.Println(color.HiBlackString("\nDry run, nothing written."))
		return nil
	}

	if err := testutil.SaveHAR(outPath, sanitized); err != nil {
		return err
	}
	fmt.Printf("%s Sanitized HAR saved to %s\n", color.GreenString("[✔]"), outPath)
	return nil
}

// diff describes every value SanitizeHAR changed, one line each.
func diff(original, sanitized *testutil.HARLog) []string {
	var out []string
	for i := range original.Entries {
		if i >= len(sanitized.Entries) {
			break
		}
		orig, san := original.Entries[i], sanitized.Entries[i]
		where := fmt.Sprintf("entry %d %s %s:", i+1, orig.Request.Method, truncateURL(san.Request.URL))

		if orig.Request.URL != san.Request.URL {
			out = append(out, where+" query parameters")
		}
		for j, h := range orig.Request.Headers {
			if j < len(san.Request.Headers) && h.Value != san.Request.Headers[j].Value {
				out = append(out, fmt.Sprintf("%s request header %s", where, h.Name))
			}
		}
		if orig.Request.Body != san.Request.Body {
			out = append(out, where+" request body")
		}
		for j, h := range orig.Response.Headers {
			if j < len(san.Response.Headers) && h.Value != san.Response.Headers[j].Value {
				out = append(out, fmt.Sprintf("%s response header %s", where, h.Name))
			}
		}
		if orig.Response.Content.Text != san.Response.Content.Text {
			out = append(out, where+" response body")
		}
	}
	return out
}

func truncateURL(url string) string {
	if len(url) > 80 {
		return url[:77] + "..."
	}
	return url
}
