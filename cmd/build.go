package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Bitlatte/teamsite/internal/config"
	"github.com/Bitlatte/teamsite/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site from content, data, layouts, and static assets",
	Long: `The build command processes Markdown files from the content directory,
loads lists and teams from the data directory, applies templates from the
layouts directory (including partials), copies static assets, and generates
the site in the configured output directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd.Context(), appConfig, logger)
	},
}

func runBuild(ctx context.Context, cfg config.Config, log logrus.FieldLogger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	_, err := site.NewBuilder(cfg, log).Build(ctx)
	return err
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
