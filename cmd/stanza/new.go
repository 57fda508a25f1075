package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/stanza"
	"github.com/eringen/stanza/scaffold"
)

// postData holds the template variables for a scaffolded content file.
type postData struct {
	Title string
	Slug  string
	Date  string
}

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a new post",
	Long:  `Scaffold a content file for a new post. The slug and file name are derived from the title, and the post starts unpublished.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		title := strings.Join(args, " ")
		slug := stanza.Slugify(title)
		if slug == "" {
			return fmt.Errorf("title %q does not yield a usable slug", title)
		}

		outPath := filepath.Join(cfg.ContentDir, slug+".md")
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("%s already exists", outPath)
		}

		content, err := scaffold.Templates.ReadFile("templates/post.md.tmpl")
		if err != nil {
			return fmt.Errorf("read post template: %w", err)
		}
		tmpl, err := template.New("post").Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse post template: %w", err)
		}

		if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
			return err
		}
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()

		data := postData{
			Title: title,
			Slug:  slug,
			Date:  time.Now().Format(stanza.DateLayout),
		}
		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}

		fmt.Println(success("created " + bold(outPath)))
		fmt.Println(faint("  set published: true when it is ready to ship"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
