package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"utms/internal/store"
)

func newRequestsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "requests",
		Short: "Show every member's transport request history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			dir := a.cfg.DataDir

			fmt.Fprintln(w, "Transport Requests:")

			fmt.Fprintln(w, "\nStudent Requests:")
			for _, s := range store.LoadStudents(dir, a.log) {
				fmt.Fprintf(w, "Student: %s (%s)\n", s.Name, s.StudentID)
				fmt.Fprintf(w, "History: %s\n", s.ViewTransportHistory())
			}

			fmt.Fprintln(w, "\nLecturer Requests:")
			for _, l := range store.LoadLecturers(dir, a.log) {
				fmt.Fprintf(w, "Lecturer: %s (%s)\n", l.Name, l.StaffID)
				fmt.Fprintf(w, " Transport History: %s\n", l.ViewTransportHistory())
			}

			fmt.Fprintln(w, "\nOfficer Requests:")
			for _, o := range store.LoadOfficers(dir, a.log) {
				fmt.Fprintf(w, "Officer: %s (%s)\n", o.Name, o.OfficerID)
				fmt.Fprintf(w, "%s\n", o.ViewTransportHistory())
			}
			return nil
		},
	}
}
