package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/baobabprince/HebrewFamilyTree/internal/application/notify"
	"github.com/baobabprince/HebrewFamilyTree/internal/application/reporting"
	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/hebcal"
	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/logging"
)

// newNotifyCmd builds the weekly report: download, decode, match events in
// the upcoming window, render the issue, and emit GitHub Actions outputs.
func newNotifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "Build the weekly upcoming-events report",
		Long:  "Loads the family tree, finds events whose Hebrew date falls within the\nconfigured upcoming window, and renders the Markdown report.  When the\nGITHUB_OUTPUT environment variable is set the issue title and body are\nappended to it as workflow step outputs.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			cfg := cliCtx.Config
			logger := cliCtx.Logger

			lt, err := prepareTree(ctx, cliCtx)
			if err != nil {
				return err
			}

			client := hebcal.NewClient(
				hebcal.WithBaseURL(cfg.Hebcal.BaseURL),
				hebcal.WithTimeout(cfg.Hebcal.Timeout),
				hebcal.WithRetryMax(cfg.Hebcal.RetryMax),
				hebcal.WithTimezone(cfg.Hebcal.TimezoneID),
				hebcal.WithLogger(logger),
			)

			today := time.Now()
			svc := notify.NewService(lt.doc.Events, lt.graph, client, cfg.Notify.PersonID, logger)
			matches, _, err := svc.Upcoming(ctx, today, cfg.Notify.WindowDays)
			if err != nil {
				return err
			}

			// Title garnish and age counts degrade gracefully when the
			// calendar service is flaky; the report itself still goes out.
			hebrewYear := 0
			if hd, err := client.ConvertDate(ctx, today); err == nil {
				hebrewYear = hd.Year
			} else {
				logger.Warn("could not resolve current hebrew year", logging.Err(err))
			}
			parasha, err := client.Parasha(ctx, today, cfg.Notify.Language)
			if err != nil {
				logger.Warn("could not resolve weekly parasha", logging.Err(err))
			}

			builder := reporting.NewBuilder(lt.idx, lt.classifier, lt.doc.Events,
				reporting.WithLanguage(cfg.Notify.Language),
				reporting.WithDistanceThreshold(cfg.Notify.DistanceThreshold),
				reporting.WithHebrewYear(hebrewYear),
			)
			issue := builder.Build(matches, today, cfg.Notify.WindowDays, parasha)

			if outPath := os.Getenv("GITHUB_OUTPUT"); outPath != "" {
				if err := reporting.AppendGitHubOutput(outPath, issue); err != nil {
					return err
				}
				logger.Info("wrote workflow outputs", logging.String("path", outPath))
			} else {
				logger.Warn("GITHUB_OUTPUT not set, skipping workflow outputs")
			}

			fmt.Fprintln(cmd.OutOrStdout(), issue.Title)
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), issue.Body)
			return nil
		},
	}
}
