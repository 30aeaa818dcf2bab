package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ogurasousui/hr-smart-records/internal/core/records"
	"github.com/spf13/cobra"
)

func newImportCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all records with the contents of a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			count, err := e.svc.Import(cmd.Context(), raw)
			if err != nil {
				return err
			}
			e.session.Clear()
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d employees\n", count)
			return nil
		},
	}
}

func newExportCommand(e *env) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all records to a JSON backup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := e.svc.Export(cmd.Context())
			if err != nil {
				return err
			}
			if out == "-" {
				_, err := cmd.OutOrStdout().Write(append(raw, '\n'))
				return err
			}
			if err := os.WriteFile(out, raw, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", records.ExportFileName, `output file, "-" for stdout`)
	return cmd
}

func newDepartmentsCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "departments",
		Short: "Show head count per department",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DEPARTMENT\tEMPLOYEES")
			for _, c := range e.svc.DepartmentBreakdown(cmd.Context()) {
				fmt.Fprintf(tw, "%s\t%d\n", c.Department, c.Count)
			}
			return tw.Flush()
		},
	}
}
