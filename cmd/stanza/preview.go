package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/stanza"
)

var previewAddr string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Build the site and serve it locally",
	Long:  `Build the site, then serve the output directory on a local address for authoring. The published site remains plain static files; this server never ships.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		builder := stanza.NewBuilder(cfg, newLogger())
		if _, err := builder.Build(cmd.Context()); err != nil {
			return err
		}
		fmt.Println(success("serving " + bold(cfg.OutputDir) + " on " + previewAddr))
		return stanza.Preview(builder.Config, previewAddr)
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewAddr, "addr", "a", ":3000", "listen address")
	rootCmd.AddCommand(previewCmd)
}
