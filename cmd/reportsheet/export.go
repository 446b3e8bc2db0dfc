package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/aerissecure/reportsheet"
	"github.com/aerissecure/reportsheet/tabular"
	"github.com/aerissecure/reportsheet/xlsx"
)

func (a *app) exportOptions() reportsheet.Options {
	return reportsheet.Options{
		Encoder:          a.cfg.Encoder(),
		SummarySheetName: a.cfg.SummarySheetName,
	}
}

func (a *app) exportCmd() *cobra.Command {
	var (
		src    source
		output string
	)
	cmd := &cobra.Command{
		Use:   "export [document.yaml]",
		Short: "Export a document as an XLSX workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			title, doc, err := src.load(ctx, a, args)
			if err != nil {
				return err
			}

			// The workbook is built before the file is created so a
			// document that cannot be encoded leaves nothing behind.
			wb, err := reportsheet.BuildWorkbook(doc, title, a.exportOptions())
			if tabular.IsEncodePrecondition(err) {
				a.logger.ErrorContext(ctx, "document cannot be exported", "err", err)
				return errors.Wrap(err, "export aborted")
			}
			if err != nil {
				return err
			}
			if err := xlsx.WriteFile(output, wb); err != nil {
				return err
			}
			a.logger.InfoContext(ctx, "workbook written", "path", output, "blocks", len(doc.Blocks))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "report.xlsx", "output XLSX file")
	cmd.Flags().StringVar(&src.storeName, "from-store", "", "export the stored document with this name")
	return cmd
}
