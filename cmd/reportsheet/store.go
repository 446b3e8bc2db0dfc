package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) storeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage documents in the local store",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored documents",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				st, err := a.openStore()
				if err != nil {
					return err
				}
				defer st.Close()

				names, err := st.List(cmd.Context())
				if err != nil {
					return err
				}
				for _, n := range names {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			},
		},
		a.storeGetCmd(),
		&cobra.Command{
			Use:   "put <name> <document.yaml>",
			Short: "Store a document file under name",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				title, doc, err := readDocumentFile(args[1])
				if err != nil {
					return err
				}
				st, err := a.openStore()
				if err != nil {
					return err
				}
				defer st.Close()
				return st.Put(cmd.Context(), args[0], title, doc)
			},
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a stored document",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				st, err := a.openStore()
				if err != nil {
					return err
				}
				defer st.Close()
				return st.Delete(cmd.Context(), args[0])
			},
		},
	)
	return cmd
}

func (a *app) storeGetCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Print a stored document as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			title, doc, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeDocument(cmd.OutOrStdout(), output, title, doc)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document YAML here instead of stdout")
	return cmd
}
