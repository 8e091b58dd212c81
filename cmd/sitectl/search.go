package main

import (
	"encoding/json"
	"strings"

	"legalsite/internal/domain/entity"
	"legalsite/internal/errors"
	"legalsite/internal/usecase"

	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		lang   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run one search across team, services and blog",
		Long: `Runs the same aggregation as the site's search page. Sub-queries the
content service cannot answer are served from the bundled content.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			language, err := entity.ParseLanguage(lang)
			if err != nil {
				return err
			}

			uc, err := a.newSearch(cmd)
			if err != nil {
				return err
			}

			outcome := uc.Search(cmd.Context(), strings.Join(args, " "), language)
			if asJSON {
				return printJSON(cmd, outcome)
			}
			printOutcome(cmd, outcome)

			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", entity.LanguageEnglish.String(), "result language (en or ar)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output the outcome as JSON")

	return cmd
}

func printJSON(cmd *cobra.Command, outcome usecase.Outcome) error {
	data, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal outcome")
	}
	cmd.Println(string(data))

	return nil
}

func printOutcome(cmd *cobra.Command, outcome usecase.Outcome) {
	results := outcome.Results
	if results.Total() == 0 {
		cmd.Println("No results found.")
	}

	if len(results.Team) > 0 {
		cmd.Println("Team:")
		for _, m := range results.Team {
			cmd.Printf("  %s (%s)\n", m.Name, m.Role)
		}
	}
	if len(results.Services) > 0 {
		cmd.Println("Services:")
		for _, s := range results.Services {
			cmd.Printf("  %s  /%s/services/%s\n", s.Title.Get(outcome.Language), outcome.Language, s.Slug)
		}
	}
	if len(results.Blog) > 0 {
		cmd.Println("Blog:")
		for _, p := range results.Blog {
			cmd.Printf("  %s  /%s/blog/%s\n", p.Title.Get(outcome.Language), outcome.Language, p.Slug)
		}
	}

	if outcome.State == entity.SearchDegraded {
		cmd.Println()
		cmd.Println("Content service unavailable; some results come from bundled content.")
	}
}
