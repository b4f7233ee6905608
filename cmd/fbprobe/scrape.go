package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fbprobe/pkg/config"
	"fbprobe/pkg/facebook"
	"fbprobe/pkg/logger"
	"fbprobe/pkg/probe"
	"fbprobe/pkg/report"
	"fbprobe/pkg/ui"
)

// Flag defaults, repeated here so only changed flags reach the config merge
const (
	defaultPostCount = 5
	defaultPageDepth = 3
	defaultTimeout   = 30
	defaultRateLimit = 30
)

var (
	// Scrape command flags
	postCount    int
	pageDepth    int
	fetchTimeout int
	rateLimit    int
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape [pages...]",
	Short: "Probe Facebook pages for multi-image posts",
	Long: `Fetch recent posts from one or more public Facebook pages and classify
each post by how many images it carries.

Pages given as arguments override the configured page list. Page names
may be bare names or full page URLs; URLs are reduced to the page name
before fetching.

Each page is probed independently: a page that cannot be fetched yields
a failed entry in the JSON report without stopping the remaining pages,
and the process still exits with code 0.`,
	Example: `  # Probe the configured page list (default: PhuketTimeNews)
  fbprobe scrape

  # Probe specific pages
  fbprobe scrape PhuketTimeNews AnotherNewsPage

  # Page URLs work too
  fbprobe scrape https://www.facebook.com/PhuketTimeNews

  # Examine more posts with a deeper feed walk
  fbprobe scrape PhuketTimeNews --posts 10 --page-depth 5

  # Slow down the walk for a strict endpoint
  fbprobe scrape PhuketTimeNews --rate-limit 10

  # Keep stderr quiet and capture only the JSON report
  fbprobe scrape --quiet > report.json`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runScrape(cmd, args)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	// Local flags for scrape command
	scrapeCmd.Flags().IntVarP(&postCount, "posts", "n", defaultPostCount, "number of posts to examine per page")
	scrapeCmd.Flags().IntVar(&pageDepth, "page-depth", defaultPageDepth, "maximum feed pages fetched per walk")
	scrapeCmd.Flags().IntVar(&fetchTimeout, "timeout", defaultTimeout, "fetch timeout in seconds")
	scrapeCmd.Flags().IntVar(&rateLimit, "rate-limit", defaultRateLimit, "requests per minute")

	// Also add these flags to root command so bare page arguments work
	rootCmd.Flags().IntVarP(&postCount, "posts", "n", defaultPostCount, "number of posts to examine per page")
	rootCmd.Flags().IntVar(&pageDepth, "page-depth", defaultPageDepth, "maximum feed pages fetched per walk")
	rootCmd.Flags().IntVar(&fetchTimeout, "timeout", defaultTimeout, "fetch timeout in seconds")
	rootCmd.Flags().IntVar(&rateLimit, "rate-limit", defaultRateLimit, "requests per minute")
}

func runScrape(cmd *cobra.Command, args []string) {
	// Clean up page names given on the command line
	var pages []string
	for _, arg := range args {
		page := facebook.SanitizePageName(arg)
		if !facebook.IsValidPageName(page) {
			ui.PrintError("Invalid page name", arg)
			os.Exit(1)
		}
		pages = append(pages, page)
	}

	// Build flags map from command line
	flags := make(map[string]interface{})
	if len(pages) > 0 {
		flags["pages"] = pages
	}
	if postCount != defaultPostCount {
		flags["posts"] = postCount
	}
	if pageDepth != defaultPageDepth {
		flags["page-depth"] = pageDepth
	}
	if fetchTimeout != defaultTimeout {
		flags["timeout"] = fetchTimeout
	}
	if rateLimit != defaultRateLimit {
		flags["rate-limit"] = rateLimit
	}
	// Pass log level to config
	if logLevel != "info" {
		flags["log-level"] = logLevel
	}

	// Load configuration
	cfg, err := config.Load(configFile, flags)
	if err != nil {
		ui.PrintError("Failed to load configuration", err.Error())
		os.Exit(1)
	}

	// Initialize logger
	logger.Initialize(&cfg.Logging)
	logger.WithField("version", version).Info("Facebook page probe starting")

	// Config-sourced page names get the same cleanup as arguments
	for i, page := range cfg.Pages {
		cleaned := facebook.SanitizePageName(page)
		if !facebook.IsValidPageName(cleaned) {
			ui.PrintError("Invalid page name in configuration", page)
			os.Exit(1)
		}
		cfg.Pages[i] = cleaned
	}

	ui.PrintInfo("Target pages", strings.Join(cfg.Pages, ", "))

	prober := probe.New(cfg)

	results := make([]*probe.Result, 0, len(cfg.Pages))
	for _, page := range cfg.Pages {
		result := prober.ProbePage(page)
		results = append(results, result)

		if result.Success {
			logger.LogPageProbe(page, result.Stats.TotalPosts, true, nil)
			report.PrintSummary(result)
		} else {
			logger.LogPageProbe(page, 0, false, fmt.Errorf("%s", *result.Error))
		}

		report.PrintSeparator()
	}

	// The JSON report is the only thing written to stdout
	if err := report.Write(os.Stdout, results); err != nil {
		logger.WithError(err).Error("Failed to write report")
		ui.PrintError("Failed to write report", err.Error())
		os.Exit(1)
	}

	logger.WithField("pages", len(results)).Info("Probe run completed")
}

// Make scrape the default command when no subcommand is specified
func init() {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 && !isKnownCommand(args[0]) {
			// Treat a bare first argument as a page name
			return scrapeCmd.RunE(scrapeCmd, args)
		}
		return cmd.Help()
	}

	// Set Args to allow arbitrary arguments
	rootCmd.Args = cobra.ArbitraryArgs
}

func isKnownCommand(arg string) bool {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == arg || cmd.HasAlias(arg) {
			return true
		}
	}
	return false
}
