package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/stanza"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate all content without building",
	Long:  `Parse and validate every content file's front matter against the post contract. Exits non-zero on the first schema violation, which makes it a cheap CI gate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		loader := stanza.NewLoader(cfg.ContentDir, newLogger())
		posts, err := loader.Load()
		if err != nil {
			return err
		}
		published := stanza.Enumerate(posts)
		fmt.Println(success(fmt.Sprintf("%d posts valid (%d published, %d drafts)",
			len(posts), len(published), len(posts)-len(published))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
