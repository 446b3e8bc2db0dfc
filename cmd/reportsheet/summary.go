package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/aerissecure/reportsheet/tabular"
)

func (a *app) summaryCmd() *cobra.Command {
	var src source
	cmd := &cobra.Command{
		Use:   "summary [document.yaml]",
		Short: "Print the summary sheet of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, doc, err := src.load(cmd.Context(), a, args)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, row := range tabular.Summarize(doc, title, time.Now()).Rows[1:] {
				texts := row.Texts()
				fmt.Fprintf(w, "%s\t%s\n", texts[0], texts[1])
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&src.storeName, "from-store", "", "summarize the stored document with this name")
	return cmd
}
