package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ogurasousui/hr-smart-records/internal/core/records"
	"github.com/spf13/cobra"
)

func newListCommand(e *env) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees, optionally filtered by name or position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e.session.SetSearchTerm(search)
			visible := e.session.Visible(cmd.Context())
			if len(visible) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No employees found.")
				return nil
			}
			return printEmployees(cmd.OutOrStdout(), visible)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive match on first name, last name or position")
	return cmd
}

func printEmployees(w io.Writer, c records.Collection) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPOSITION\tDEPARTMENT\tSTATUS")
	for _, emp := range c {
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%s\n", emp.ID, emp.FirstName, emp.LastName, emp.Position, emp.Department, emp.Status)
	}
	return tw.Flush()
}

func newShowCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <employee-id>",
		Short: "Show an employee profile and history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e.session.Select(args[0])
			emp, ok := e.session.Selected(cmd.Context())
			if !ok {
				return notFound(args[0])
			}
			printProfile(cmd.OutOrStdout(), *emp)
			return nil
		},
	}
}

func printProfile(w io.Writer, emp records.Employee) {
	fmt.Fprintf(w, "%s %s (%s)\n", emp.FirstName, emp.LastName, emp.ID)
	fmt.Fprintf(w, "  Position:   %s\n", emp.Position)
	fmt.Fprintf(w, "  Department: %s\n", emp.Department)
	fmt.Fprintf(w, "  Status:     %s\n", emp.Status)
	fmt.Fprintf(w, "  Email:      %s\n", emp.Email)
	fmt.Fprintf(w, "  Phone:      %s\n", emp.Phone)
	fmt.Fprintf(w, "  Start date: %s\n", emp.StartDate)
	if emp.Bio != "" {
		fmt.Fprintf(w, "\n%s\n", emp.Bio)
	}
	if len(emp.History) == 0 {
		fmt.Fprintln(w, "\nNo history records.")
		return
	}
	fmt.Fprintln(w, "\nHistory:")
	for _, r := range emp.History {
		marker := ""
		if r.AIEnhanced {
			marker = " [AI]"
		}
		fmt.Fprintf(w, "  %s  %-18s %s%s\n", r.Date, r.Type, r.Title, marker)
		fmt.Fprintf(w, "      %s\n", r.Description)
	}
}

func newAddCommand(e *env) *cobra.Command {
	var draft records.EmployeeDraft
	var department string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new employee on probation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e.session.OpenAddEmployee()
			if err := e.session.EditAddEmployee(func(d *records.EmployeeDraft) {
				d.FirstName = draft.FirstName
				d.LastName = draft.LastName
				d.Email = draft.Email
				d.Position = draft.Position
				if department != "" {
					d.Department = records.Department(department)
				}
				if draft.StartDate != "" {
					d.StartDate = draft.StartDate
				}
			}); err != nil {
				return err
			}

			created, err := e.session.SaveAddEmployee(cmd.Context())
			if err != nil {
				e.session.ResetAddEmployee()
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s as %s\n", created.FirstName, created.LastName, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.FirstName, "first-name", "", "first name (required)")
	cmd.Flags().StringVar(&draft.LastName, "last-name", "", "last name (required)")
	cmd.Flags().StringVar(&draft.Position, "position", "", "position (required)")
	cmd.Flags().StringVar(&draft.Email, "email", "", "email (defaults to <first-name>@company.com)")
	cmd.Flags().StringVar(&department, "department", "", "IT, HR, Sales, Marketing or Operations (defaults to IT)")
	cmd.Flags().StringVar(&draft.StartDate, "start-date", "", "start date YYYY-MM-DD (defaults to today)")
	return cmd
}

func newUpdateCommand(e *env) *cobra.Command {
	var (
		status     string
		department string
		position   string
		email      string
		phone      string
	)

	cmd := &cobra.Command{
		Use:   "update <employee-id>",
		Short: "Update employee fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			emp, ok := e.svc.Employee(cmd.Context(), args[0])
			if !ok {
				return notFound(args[0])
			}

			flags := cmd.Flags()
			if flags.Changed("status") {
				emp.Status = records.Status(status)
			}
			if flags.Changed("department") {
				emp.Department = records.Department(department)
			}
			if flags.Changed("position") {
				emp.Position = position
			}
			if flags.Changed("email") {
				emp.Email = email
			}
			if flags.Changed("phone") {
				emp.Phone = phone
			}

			updated, err := e.svc.UpdateEmployee(cmd.Context(), *emp)
			if err != nil {
				return err
			}
			if !updated {
				return notFound(args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", emp.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Active, Probation, Resigned or On Leave")
	cmd.Flags().StringVar(&department, "department", "", "IT, HR, Sales, Marketing or Operations")
	cmd.Flags().StringVar(&position, "position", "", "position")
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&phone, "phone", "", "phone")
	return cmd
}
