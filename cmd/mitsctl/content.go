package main

import (
	"errors"
	"fmt"

	"MITSAssistant/models"
	"MITSAssistant/pkg/app"
	"MITSAssistant/pkg/scraper"
	"MITSAssistant/pkg/seed"
	"MITSAssistant/pkg/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type runner func(run func(cmd *cobra.Command, args []string, a *app.App) error) func(*cobra.Command, []string) error

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

func urlArg(args []string) (string, error) {
	if !scraper.ValidURL(args[0]) {
		return "", fmt.Errorf("invalid url %q: must be an absolute http(s) URL", args[0])
	}
	return args[0], nil
}

func printPage(cmd *cobra.Command, verb string, p *models.ScrapedContent) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n  %s  %s chars\n",
		verb, titleStyle.Render(p.Title), urlStyle.Render(p.URL),
		countStyle.Render(fmt.Sprint(len([]rune(p.Content)))))
}

func newScrapeCmd(with runner) *cobra.Command {
	return &cobra.Command{
		Use:   "scrape <url>",
		Short: "Fetch a page and store it in the knowledge base",
		Args:  cobra.ExactArgs(1),
		RunE: with(func(cmd *cobra.Command, args []string, a *app.App) error {
			u, err := urlArg(args)
			if err != nil {
				return err
			}
			res, err := a.Scraper.Scrape(cmd.Context(), u)
			if err != nil {
				return err
			}
			saved, err := a.Store.UpsertContent(cmd.Context(), models.ContentInput{URL: u, Title: res.Title, Content: res.Content})
			if err != nil {
				return err
			}
			printPage(cmd, "Stored", saved)
			return nil
		}),
	}
}

func newRefreshCmd(with runner) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh <url>",
		Short: "Re-scrape a page that is already stored",
		Args:  cobra.ExactArgs(1),
		RunE: with(func(cmd *cobra.Command, args []string, a *app.App) error {
			u, err := urlArg(args)
			if err != nil {
				return err
			}
			if _, err := a.Store.GetContent(cmd.Context(), u); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("URL not found in content library: %s", u)
				}
				return err
			}
			res, err := a.Scraper.Scrape(cmd.Context(), u)
			if err != nil {
				return err
			}
			updated, err := a.Store.UpdateContent(cmd.Context(), models.ContentInput{URL: u, Title: res.Title, Content: res.Content})
			if err != nil {
				return err
			}
			printPage(cmd, "Refreshed", updated)
			return nil
		}),
	}
}

func newContentCmd(with runner) *cobra.Command {
	content := &cobra.Command{
		Use:   "content",
		Short: "Inspect stored pages",
	}
	content.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored pages",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, args []string, a *app.App) error {
			pages, err := a.Store.ListContent(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(pages) == 0 {
				fmt.Fprintln(out, "No content stored. Run `mitsctl seed` or `mitsctl scrape <url>`.")
				return nil
			}
			fmt.Fprintf(out, "%s pages\n\n", countStyle.Render(fmt.Sprint(len(pages))))
			for _, p := range pages {
				fmt.Fprintf(out, "%s\n  %s\n  %s chars, scraped %s\n\n",
					titleStyle.Render(p.Title),
					urlStyle.Render(p.URL),
					countStyle.Render(fmt.Sprint(len([]rune(p.Content)))),
					dateStyle.Render(p.ScrapedAt.Local().Format("2006-01-02 15:04")))
			}
			return nil
		}),
	})
	return content
}

func newSeedCmd(with runner) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the starter MITS pages into an empty store",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, args []string, a *app.App) error {
			n, err := seed.Run(cmd.Context(), a.Store, a.Log)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Content already present, nothing seeded.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %s pages.\n", countStyle.Render(fmt.Sprint(n)))
			return nil
		}),
	}
}
