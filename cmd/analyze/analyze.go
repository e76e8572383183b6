package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"alfredoptarigan/linkedin-analyzer/internal/client"
	"alfredoptarigan/linkedin-analyzer/internal/report"
	"alfredoptarigan/linkedin-analyzer/internal/scoring"
	"alfredoptarigan/linkedin-analyzer/internal/workflow"
)

var (
	pdfPath    string
	bannerPath string
	photoPath  string
	skipBanner bool
	skipPhoto  bool
	objective  string
	lang       string
	token      string
	serverURL  string
	reportPath string
	format     string
)

func init() {
	rootCmd.Flags().StringVar(&pdfPath, "pdf", "", "Path to the LinkedIn profile PDF export (required)")
	rootCmd.Flags().StringVar(&bannerPath, "banner", "", "Path to the profile banner image")
	rootCmd.Flags().StringVar(&photoPath, "photo", "", "Path to the profile photo")
	rootCmd.Flags().BoolVar(&skipBanner, "skip-banner", false, "Exclude the banner from the analysis")
	rootCmd.Flags().BoolVar(&skipPhoto, "skip-photo", false, "Exclude the photo from the analysis")
	rootCmd.Flags().StringVarP(&objective, "objective", "o", "", "Goal: clients, talents, recruiters or branding (required)")
	rootCmd.Flags().StringVarP(&lang, "lang", "l", "fr", "Language of the analysis: fr or en")
	rootCmd.Flags().StringVar(&token, "token", "", "CAPTCHA token, when the server requires one")
	rootCmd.Flags().StringVar(&serverURL, "server", envOr("ANALYZER_URL", "http://localhost:3001"), "Analyzer API base URL")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Also write a report to this path")
	rootCmd.Flags().StringVar(&format, "format", "md", "Report format: md, html or pdf")

	_ = rootCmd.MarkFlagRequired("pdf")
	_ = rootCmd.MarkFlagRequired("objective")
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	language := scoring.ParseLanguage(lang)

	obj, err := scoring.ParseObjective(objective)
	if err != nil {
		return err
	}

	reportFormat, err := report.ParseFormat(format)
	if err != nil {
		return err
	}

	wf := workflow.New(client.New(serverURL, client.DefaultTimeout), workflow.Config{
		Language:            language,
		VerificationEnabled: token != "",
	})

	pdfFile, err := loadFile(pdfPath)
	if err != nil {
		return err
	}
	if err := wf.SetPDF(pdfFile); err != nil {
		return err
	}

	if err := setImage(bannerPath, skipBanner, wf.SetBanner, wf.SetSkipBanner); err != nil {
		return err
	}
	if err := setImage(photoPath, skipPhoto, wf.SetPhoto, wf.SetSkipPhoto); err != nil {
		return err
	}

	if err := wf.SetObjective(obj); err != nil {
		return err
	}
	if token != "" {
		if err := wf.SetToken(token); err != nil {
			return err
		}
	}
	// running the command is the user's consent to the analysis
	if err := wf.SetConsent(true); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Fprintf(os.Stderr, "Analyzing %s...\n", filepath.Base(pdfPath))
	if err := wf.Submit(ctx); err != nil {
		if msg := wf.Err(); msg != "" {
			return fmt.Errorf("%s (%w)", msg, err)
		}
		return err
	}

	out, err := json.MarshalIndent(wf.Result(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	fmt.Println(string(out))

	if reportPath != "" {
		return writeReport(ctx, wf, language, reportFormat)
	}
	return nil
}

func setImage(path string, skip bool, set func(*workflow.File) error, setSkip func(bool) error) error {
	if skip {
		return setSkip(true)
	}
	if path == "" {
		return nil
	}
	f, err := loadFile(path)
	if err != nil {
		return err
	}
	return set(f)
}

func writeReport(ctx context.Context, wf *workflow.Workflow, language scoring.Language, reportFormat report.Format) error {
	result, err := wf.Analysis()
	if err != nil {
		return err
	}

	generator := report.NewGenerator(report.NewPDFRenderer(os.Getenv("CHROME_PATH")))
	data, err := generator.Render(ctx, result, language, reportFormat)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if err := os.WriteFile(reportPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Report written to %s\n", reportPath)
	return nil
}

// loadFile reads a file and sniffs its content type the way the browser
// file picker would report it.
func loadFile(path string) (*workflow.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	contentType := http.DetectContentType(data)
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return &workflow.File{
		Name:        filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
