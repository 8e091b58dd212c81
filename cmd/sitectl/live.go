package main

import (
	"strings"

	"legalsite/internal/delivery/tui/livesearch"
	"legalsite/internal/domain/entity"
	"legalsite/internal/errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newLiveCmd(a *app) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "live [query]",
		Short: "Search interactively as you type",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			language, err := entity.ParseLanguage(lang)
			if err != nil {
				return err
			}

			uc, err := a.newSearch(cmd)
			if err != nil {
				return err
			}

			model := livesearch.New(cmd.Context(), uc, language, livesearch.WithQuery(strings.Join(args, " ")))
			if _, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return errors.Wrap(err, "run live search")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", entity.LanguageEnglish.String(), "starting language (en or ar)")

	return cmd
}
