package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"zfetch/internal/browser"
	"zfetch/internal/detect"
	"zfetch/internal/fetch"
	"zfetch/internal/output"
	"zfetch/internal/reader"
	"zfetch/internal/render"
	"zfetch/internal/runner"
	_ "zfetch/internal/sites/chatgpt"
	_ "zfetch/internal/sites/claude"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	queueDir  string
	outputDir string
	proxyURL  string
	showUI    bool
	noStealth bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:     "zfetch [URL [NOTE]]",
		Short:   "Materialize web content into markdown files",
		Version: version,
		Long: `zfetch turns queued URL references into normalized markdown files.

Content is fetched through a text-extraction reader proxy, falling back to a
headless browser for pages that demand authentication or JavaScript. Chat
share links (claude.ai, chatgpt.com) are rendered and extracted as
turn-delimited conversations.

With no arguments, every file in the queue directory is processed and
consumed. With a URL argument, exactly that URL is fetched.`,
		Example: `  # Process the queue directory
  zfetch

  # Fetch one URL with a provenance note
  zfetch https://example.com/article "referenced in the planning doc"

  # Fetch a chat share link (rendered in a headless browser)
  zfetch https://claude.ai/share/49d8ff36-9b3c-4f21-a1de-30e2bafc90dd`,
		Args:         cobra.MaximumNArgs(2),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&queueDir, "queue-dir", "q", envOr("ZFETCH_QUEUE_DIR", "fetch/queue"), "Directory of queued URL files")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", envOr("ZFETCH_OUTPUT_DIR", "fetch/output"), "Directory for written markdown files")
	rootCmd.Flags().StringVarP(&proxyURL, "proxy", "p", os.Getenv("ZFETCH_PROXY"), "Proxy URL for the browser (e.g. http://127.0.0.1:7890), defaults to ZFETCH_PROXY env var")
	rootCmd.Flags().BoolVar(&showUI, "showui", false, "Show browser UI (disable headless mode)")
	rootCmd.Flags().BoolVar(&noStealth, "no-stealth", false, "Disable stealth scripts in the browser")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	detector := detect.New()
	readerClient := reader.New(detector)
	renderer := render.New(browser.Config{
		ProxyURL: proxyURL,
		Headless: !showUI,
		Stealth:  !noStealth,
	}, detector, logger)

	fetcher := fetch.New(readerClient, renderer, logger)
	writer := output.NewWriter(outputDir)
	r := runner.New(queueDir, fetcher, writer, logger)

	ctx := context.Background()

	if len(args) > 0 {
		note := ""
		if len(args) > 1 {
			note = args[1]
		}
		return r.RunSingle(ctx, args[0], note)
	}

	summary, err := r.ProcessQueue(ctx)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d URL(s) failed", summary.Failed)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
