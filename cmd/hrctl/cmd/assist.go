package cmd

import (
	"fmt"
	"strings"

	"github.com/ogurasousui/hr-smart-records/internal/core/records"
	"github.com/spf13/cobra"
)

func newBioCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "bio <employee-id>",
		Short: "Generate a professional summary from the employee history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := e.svc.GenerateBio(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			if result.Fallback {
				fmt.Fprintln(cmd.ErrOrStderr(), "(bio was not saved)")
			}
			return nil
		},
	}
}

func newEnhanceCommand(e *env) *cobra.Command {
	var recordType string

	cmd := &cobra.Command{
		Use:   "enhance <text>...",
		Short: "Rewrite a rough note as a professional HR record",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := e.svc.EnhanceNote(cmd.Context(), strings.Join(args, " "), records.HistoryType(recordType))
			fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&recordType, "type", "", "history type used as context (defaults to Performance Review)")
	return cmd
}
