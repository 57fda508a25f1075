package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/stanza"
)

var watchFlag bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the site",
	Long:  `Validate all content and compile the full static site into the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		builder := stanza.NewBuilder(cfg, newLogger())

		start := time.Now()
		stats, err := builder.Build(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(success(fmt.Sprintf("built %s in %s", bold(cfg.OutputDir), time.Since(start).Round(time.Millisecond))))
		fmt.Println(faint(fmt.Sprintf("  %d posts, %d drafts skipped, %d pages, %d assets",
			stats.Posts, stats.Drafts, stats.Pages, stats.Assets)))

		if watchFlag {
			fmt.Println(faint("watching for changes, Ctrl-C to stop"))
			return builder.Watch(cmd.Context())
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "rebuild when content or assets change")
	rootCmd.AddCommand(buildCmd)
}
