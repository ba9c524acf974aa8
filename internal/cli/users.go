package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"utms/internal/models"
	"utms/internal/store"
)

type userView struct {
	Kind       string `yaml:"kind"`
	UserID     string `yaml:"user_id"`
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Department string `yaml:"department"`
	Requests   int    `yaml:"requests"`
}

// roster is the member files as read from disk.
type roster struct {
	students  []*models.Student
	lecturers []*models.Lecturer
	officers  []*models.TransportOfficer
}

func newUsersCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List registered students, lecturers and transport officers",
		Long: "List registered members. The member files are read directly and " +
			"the data directory is never created or written.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format, formatText, formatYAML); err != nil {
				return err
			}
			dir := a.cfg.DataDir
			r := roster{
				students:  store.LoadStudents(dir, a.log),
				lecturers: store.LoadLecturers(dir, a.log),
				officers:  store.LoadOfficers(dir, a.log),
			}
			out := cmd.OutOrStdout()
			if format == formatYAML {
				return writeUsersYAML(out, r)
			}
			writeUsersText(out, r)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", formatText, "output format: text or yaml")
	return cmd
}

func writeUsersText(w io.Writer, r roster) {
	fmt.Fprintln(w, "Registered Users:")

	fmt.Fprintln(w, "\nStudents:")
	for _, st := range r.students {
		fmt.Fprintf(w, "ID: %s, Name: %s, Course: %s\n", st.StudentID, st.Name, st.Course)
	}

	fmt.Fprintln(w, "\nLecturers:")
	for _, l := range r.lecturers {
		fmt.Fprintf(w, "ID: %s, Name: %s, Department: %s\n", l.StaffID, l.Name, l.Department)
	}

	fmt.Fprintln(w, "\nTransport Officers:")
	for _, o := range r.officers {
		fmt.Fprintf(w, "ID: %s, Name: %s, Division: %s\n", o.OfficerID, o.Name, o.Department)
	}
}

func writeUsersYAML(w io.Writer, r roster) error {
	var views []userView
	for _, st := range r.students {
		views = append(views, toUserView(st))
	}
	for _, l := range r.lecturers {
		views = append(views, toUserView(l))
	}
	for _, o := range r.officers {
		views = append(views, toUserView(o))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(views); err != nil {
		return err
	}
	return enc.Close()
}

func toUserView(u models.User) userView {
	p := u.Account()
	v := userView{
		Kind:     string(u.Kind()),
		UserID:   p.UserID,
		Name:     p.Name,
		Email:    p.Email,
		Requests: len(u.History()),
	}
	switch u := u.(type) {
	case *models.Student:
		v.ID, v.Department = u.StudentID, u.Course
	case *models.Lecturer:
		v.ID, v.Department = u.StaffID, u.Department
	case *models.TransportOfficer:
		v.ID, v.Department = u.OfficerID, u.Department
	}
	return v
}
