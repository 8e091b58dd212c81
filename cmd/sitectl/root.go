package main

import "github.com/spf13/cobra"

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "sitectl",
		Short:        "Search the legal services site from the terminal",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.contentURL, "content-url", "", "content service base URL (overrides config and STRAPI_API_URL)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log content service requests to stderr")

	root.AddCommand(newSearchCmd(a), newLiveCmd(a))

	return root
}
