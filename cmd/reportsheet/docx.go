package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/aerissecure/reportsheet"
)

func (a *app) docxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docx",
		Short: "Convert documents to and from Word files",
	}
	cmd.AddCommand(a.docxExportCmd(), a.docxImportCmd())
	return cmd
}

func (a *app) docxExportCmd() *cobra.Command {
	var (
		src    source
		output string
	)
	cmd := &cobra.Command{
		Use:   "export [document.yaml]",
		Short: "Export a document as a DOCX file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, doc, err := src.load(cmd.Context(), a, args)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := reportsheet.ExportDOCX(f, doc, title); err != nil {
				f.Close()
				os.Remove(output)
				return err
			}
			if err := f.Close(); err != nil {
				return errors.Wrapf(err, "writing %s", output)
			}
			a.logger.InfoContext(cmd.Context(), "document written", "path", output, "blocks", len(doc.Blocks))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "report.docx", "output DOCX file")
	cmd.Flags().StringVar(&src.storeName, "from-store", "", "export the stored document with this name")
	return cmd
}

func (a *app) docxImportCmd() *cobra.Command {
	var (
		output    string
		storeName string
	)
	cmd := &cobra.Command{
		Use:   "import <document.docx>",
		Short: "Rebuild a document from a DOCX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, size, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			imp, err := reportsheet.ImportDOCX(f, size)
			if err != nil {
				return err
			}
			return a.deliver(cmd, output, storeName, imp)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document YAML here instead of stdout")
	cmd.Flags().StringVar(&storeName, "to-store", "", "save the document in the store under this name")
	return cmd
}
