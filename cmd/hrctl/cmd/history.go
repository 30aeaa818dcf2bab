package cmd

import (
	"errors"
	"fmt"

	"github.com/ogurasousui/hr-smart-records/internal/core/records"
	"github.com/spf13/cobra"
)

func newHistoryCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage employee history records",
	}
	cmd.AddCommand(newHistoryAddCommand(e))
	return cmd
}

func newHistoryAddCommand(e *env) *cobra.Command {
	var (
		recordType  string
		title       string
		description string
		enhance     bool
	)

	cmd := &cobra.Command{
		Use:   "add <employee-id>",
		Short: "Prepend a history record to an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			e.session.Select(args[0])
			if _, ok := e.session.Selected(ctx); !ok {
				return notFound(args[0])
			}
			if err := e.session.OpenAddHistory(); err != nil {
				return err
			}
			if err := e.session.EditAddHistory(func(d *records.HistoryDraft) {
				if recordType != "" {
					d.Type = records.HistoryType(recordType)
				}
				d.Title = title
				d.Description = description
			}); err != nil {
				return err
			}

			if enhance {
				result, err := e.session.EnhanceHistoryDraft(ctx)
				switch {
				case errors.Is(err, records.ErrStaleResponse):
					fmt.Fprintln(out, "Enhancement discarded, keeping the original description.")
				case err != nil:
					return err
				case result.Fallback:
					fmt.Fprintln(out, "Enhancement unavailable, keeping the original description.")
				}
			}

			record, err := e.session.SaveAddHistory(ctx)
			if err != nil {
				e.session.CancelAddHistory()
				return err
			}
			fmt.Fprintf(out, "Added %s record %q to %s\n", record.Type, record.Title, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&recordType, "type", "", "Promotion, Transfer, Performance Review, Incident or Award (defaults to Performance Review)")
	cmd.Flags().StringVar(&title, "title", "", "title (required)")
	cmd.Flags().StringVar(&description, "description", "", "description (required)")
	cmd.Flags().BoolVar(&enhance, "enhance", false, "rewrite the description with the text generation service before saving")
	return cmd
}
