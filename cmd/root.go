package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/itsmostafa/magtoc/internal/toc"
	"github.com/itsmostafa/magtoc/internal/version"
	"github.com/spf13/cobra"
)

var (
	pagesFlag           int
	ocrFirstFlag        int
	brandFlag           string
	includeMail         bool
	includeContributors bool
	suppressEmpty       bool
	formatFlag          string
	outFlag             string
	verboseFlag         bool
)

var errBrandUnresolved = errors.New("brand unresolved; emitted empty report")

var rootCmd = &cobra.Command{
	Use:   "magtoc <pdf> [<pdf>...]",
	Short: "Extract a table of contents from magazine PDFs",
	Long: `magtoc reads the front pages of magazine PDFs and emits a structured
table of contents: section headings, item titles, authors, and page
numbers. Supported layouts: The New Yorker, The Atlantic, and Harper's
Magazine. Requires pdftotext (poppler-utils); pdftoppm and tesseract
enable the OCR fallback for image-only pages.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runBatch,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("magtoc %s\n", version.String()))

	rootCmd.Flags().IntVar(&pagesFlag, "pages", 16, "Number of leading pages scanned for ToC content")
	rootCmd.Flags().IntVar(&ocrFirstFlag, "ocr-first", 3, "Number of leading pages eligible for OCR fallback")

	// Brand flag with env var fallback
	defaultBrand := "auto"
	if envBrand := os.Getenv("MAGTOC_BRAND"); envBrand != "" {
		defaultBrand = envBrand
	}
	rootCmd.Flags().StringVar(&brandFlag, "brand", defaultBrand, "Brand override (auto, newyorker, atlantic, harpers)")

	rootCmd.Flags().BoolVar(&includeMail, "include-mail", false, "Keep the letters/mail section in the report")
	rootCmd.Flags().BoolVar(&includeContributors, "include-contributors", false, "Keep the contributors section in the report")
	rootCmd.Flags().BoolVar(&suppressEmpty, "suppress-empty", false, "Omit section headings with no items from the report")
	rootCmd.Flags().StringVar(&formatFlag, "format", "text", "Report format (text, structured)")
	rootCmd.Flags().StringVarP(&outFlag, "out", "o", "", "Write reports to this file instead of stdout")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Emit per-document diagnostics on stderr")
}

func runBatch(cmd *cobra.Command, args []string) error {
	hint, ok := toc.ParseBrand(brandFlag)
	if !ok {
		return fmt.Errorf("invalid --brand %q (want auto, newyorker, atlantic, or harpers)", brandFlag)
	}
	format, ok := toc.ParseFormat(formatFlag)
	if !ok {
		return fmt.Errorf("invalid --format %q (want text or structured)", formatFlag)
	}
	if pagesFlag < 1 {
		return fmt.Errorf("invalid --pages %d", pagesFlag)
	}
	if ocrFirstFlag < 0 {
		return fmt.Errorf("invalid --ocr-first %d", ocrFirstFlag)
	}

	config := toc.DefaultConfig()
	config.Pages = pagesFlag
	config.OCRFirst = ocrFirstFlag

	opts := toc.Options{
		IncludeMail:         includeMail,
		IncludeContributors: includeContributors,
		SuppressEmpty:       suppressEmpty,
	}

	var out io.Writer = cmd.OutOrStdout()
	if outFlag != "" {
		f, err := os.Create(outFlag)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	errOut := cmd.ErrOrStderr()

	pipeline := toc.NewPipeline(config)

	// Every document is attempted; failures make the whole run exit
	// non-zero without stopping the batch.
	failed := 0
	for i, path := range args {
		res, err := pipeline.Process(cmd.Context(), path, hint, opts)
		if err != nil {
			toc.FormatError(errOut, path, err)
			failed++
			continue
		}

		if verboseFlag {
			toc.FormatDiagnostics(errOut, path, res)
		}
		if res.Unresolved {
			toc.FormatError(errOut, path, errBrandUnresolved)
			failed++
		}

		report, err := toc.Render(res, format, opts)
		if err != nil {
			// Only reachable on an internal-consistency fault; surface it.
			return fmt.Errorf("render %s: %w", path, err)
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, report)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(args))
	}
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
