// sanitize-fixtures scrubs admin tokens, e-mail addresses and the secret
// admin directory name from captured HTML fixtures.
//
// Usage:
//
//	go run ./scripts/sanitize-fixtures
//	go run ./scripts/sanitize-fixtures --dir internal/ui/bo/login/testdata/fixtures --dry-run
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type pattern struct {
	re          *regexp.Regexp
	replacement string
	description string
}

var patterns = []pattern{
	// Legacy controllers sign every link with a 32 hex char token.
	{
		regexp.MustCompile(`([?&](?:amp;)?token=)[0-9a-f]{32}`),
		`${1}REDACTED`,
		"Admin link token",
	},
	// Symfony routes use _token, forms a hidden _token input.
	{
		regexp.MustCompile(`(_token=)[A-Za-z0-9_.\-]{16,}`),
		`${1}REDACTED`,
		"Route token",
	},
	{
		regexp.MustCompile(`(name="[^"]*_token\]?"\s+value=")[^"]+(")`),
		`${1}REDACTED${2}`,
		"CSRF input",
	},
	// The installer renames /admin to /admin<random>; fixtures use /admin-dev.
	{
		regexp.MustCompile(`/admin[0-9a-z]{6,}/`),
		`/admin-dev/`,
		"Admin directory",
	},
	{
		regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`),
		`demo@example.com`,
		"E-mail address",
	},
	{
		regexp.MustCompile(`(?i)document\.cookie\s*=\s*["'][^"']+["']`),
		`document.cookie="REDACTED"`,
		"Cookie",
	},
}

type options struct {
	dir    string
	dryRun bool
}

func main() {
	opts := options{}

	cmd := &cobra.Command{
		Use:          "sanitize-fixtures",
		Short:        "Remove sensitive data from captured HTML fixtures",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", filepath.Join("internal", "ui", "bo", "testdata", "fixtures"), "fixtures directory")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "show what would change without writing")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts options) error {
	files, err := filepath.Glob(filepath.Join(opts.dir, "*.html"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no HTML files in %s", opts.dir)
	}

	fmt.Printf("[•] Sanitizing %d fixture(s) in %s\n", len(files), opts.dir)
	if opts.dryRun {
		fmt.Println(color.HiBlackString("    dry run, no file is modified"))
	}

	for _, file := range files {
		if err := sanitizeFile(file, opts.dryRun); err != nil {
			fmt.Printf("    %s %s: %v\n", color.RedString("[✖]"), filepath.Base(file), err)
		}
	}
	return nil
}

func sanitizeFile(path string, dryRun bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	sanitized, changes := sanitize(string(content))
	name := filepath.Base(path)

	if len(changes) == 0 {
		fmt.Printf("    %s %s: clean\n", color.GreenString("[✔]"), name)
		return nil
	}

	fmt.Printf("    %s %s\n", color.YellowString("[-]"), name)
	for _, c := range changes {
		fmt.Printf("        %s\n", c)
	}

	if dryRun {
		return nil
	}
	return os.WriteFile(path, []byte(sanitized), 0o644)
}

// sanitize applies every pattern in order and describes what matched.
func sanitize(html string) (string, []string) {
	var changes []string
	for _, p := range patterns {
		matches := p.re.FindAllString(html, -1)
		if len(matches) == 0 {
			continue
		}
		html = p.re.ReplaceAllString(html, p.replacement)
		changes = append(changes, fmt.Sprintf("%s: %d match(es)", p.description, len(matches)))
	}
	return html, changes
}
