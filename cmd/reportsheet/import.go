package main

import (
	"github.com/spf13/cobra"

	"github.com/aerissecure/reportsheet"
)

func (a *app) importCmd() *cobra.Command {
	var (
		output    string
		storeName string
	)
	cmd := &cobra.Command{
		Use:   "import <workbook.xlsx>",
		Short: "Rebuild a document from an exported XLSX workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f, size, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			imp, err := reportsheet.ImportXLSX(f, size)
			if err != nil {
				return err
			}
			for _, d := range imp.Diagnostics {
				a.logger.WarnContext(ctx, "decode correction", "row", d.Row+1, "kind", d.Kind.String(), "detail", d.Detail)
			}
			a.logger.InfoContext(ctx, "document imported", "path", args[0], "blocks", len(imp.Document.Blocks), "corrections", len(imp.Diagnostics))

			return a.deliver(cmd, output, storeName, imp)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document YAML here instead of stdout")
	cmd.Flags().StringVar(&storeName, "to-store", "", "save the document in the store under this name")
	return cmd
}

// deliver hands an imported document to the store or writes it as YAML.
func (a *app) deliver(cmd *cobra.Command, output, storeName string, imp reportsheet.Import) error {
	if storeName == "" {
		return writeDocument(cmd.OutOrStdout(), output, imp.Title, imp.Document)
	}
	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	return st.Put(cmd.Context(), storeName, imp.Title, imp.Document)
}
