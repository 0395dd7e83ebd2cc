package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"datavault360/internal/client"
	"datavault360/internal/export"

	"github.com/spf13/cobra"
)

func labTestsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "labtests",
		Aliases: []string{"lab-tests"},
		Short:   "Lab test requests and reports",
	}
	cmd.AddCommand(labTestsListCmd(a), labTestsPrescribeCmd(a), labTestsCompleteCmd(a), labTestsReportCmd(a))
	return cmd
}

func labTestsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the lab test requests visible to the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tests, err := a.client.LabTests.List(ctx(cmd))
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout(), "ID", "PATIENT", "DOCTOR", "LAB", "TESTS", "STATUS", "COMPLETED")
			for _, lt := range tests {
				t.row(lt.ID, orDash(lt.PatientName), orDash(lt.DoctorName), orDash(lt.LabName),
					lt.TestNames, lt.Status, formatTime(lt.CompletedAt))
			}
			return t.flush()
		},
	}
}

func labTestsPrescribeCmd(a *app) *cobra.Command {
	var patientID uint
	var labIDs []uint
	var tests string
	cmd := &cobra.Command{
		Use:   "prescribe",
		Short: "Send one request per lab for a patient (doctor)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.client.LabTests.Prescribe(ctx(cmd), patientID, labIDs, tests)
			var partial *client.PartialFailureError
			if err != nil && !errors.As(err, &partial) {
				return err
			}
			t := newTable(cmd.OutOrStdout(), "LAB", "REQUEST", "RESULT")
			for _, r := range results {
				if r.Err != nil {
					t.row(r.LabID, "-", r.Err)
					continue
				}
				t.row(r.LabID, r.Request.ID, "sent")
			}
			if ferr := t.flush(); ferr != nil {
				return ferr
			}
			return err
		},
	}
	f := cmd.Flags()
	f.UintVar(&patientID, "patient", 0, "patient id")
	f.UintSliceVar(&labIDs, "lab", nil, "lab ids, repeat or comma separate")
	f.StringVar(&tests, "tests", "", "test names, e.g. \"CBC, Lipid panel\"")
	return cmd
}

func labTestsCompleteCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "complete ID",
		Short: "Upload the report and mark a request completed (lab)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if file == "" {
				return errors.New("--file is required")
			}
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			test, err := a.client.LabTests.Complete(ctx(cmd), id, filepath.Base(file), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Lab test %d is %s\n", test.ID, strings.ToLower(test.Status))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "report file to upload")
	return cmd
}

func labTestsReportCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "report ID",
		Short: "Download the report of a completed request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			body, name, err := a.client.LabTests.Report(ctx(cmd), id)
			if err != nil {
				return err
			}
			defer body.Close()

			path := filepath.Join(dir, filepath.Base(name))
			if err := writeFile(path, func(w io.Writer) error {
				_, err := io.Copy(w, body)
				return err
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory to save into")
	return cmd
}

func visitsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "visits",
		Aliases: []string{"visit"},
		Short:   "Doctor visits",
	}
	cmd.AddCommand(visitsListCmd(a), visitsCreateCmd(a))
	return cmd
}

func visitsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List visits visible to the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			visits, err := a.client.Visits.List(ctx(cmd))
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout(), "ID", "DATE", "PATIENT", "DOCTOR", "DIAGNOSIS")
			for _, v := range visits {
				t.row(v.ID, formatTime(&v.VisitDate), orDash(v.PatientName), orDash(v.DoctorName), v.Diagnosis)
			}
			return t.flush()
		},
	}
}

func visitsCreateCmd(a *app) *cobra.Command {
	var visit client.NewVisit
	var date string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a visit for an assigned patient (doctor)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date != "" {
				t, err := parseTime(date)
				if err != nil {
					return err
				}
				visit.VisitDate = &t
			}
			v, err := a.client.Visits.Create(ctx(cmd), visit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded visit %d\n", v.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.UintVar(&visit.PatientID, "patient", 0, "patient id")
	f.StringVar(&visit.Diagnosis, "diagnosis", "", "diagnosis")
	f.StringVar(&visit.Prescription, "prescription", "", "prescription")
	f.StringVar(&date, "date", "", "visit time, defaults to now")
	return cmd
}

func analyticsCmd(a *app) *cobra.Command {
	var xlsx string
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show the admin dashboard summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRole(a, client.RoleAdmin); err != nil {
				return err
			}
			s, err := a.client.Directory.Analytics(ctx(cmd))
			if err != nil {
				return err
			}
			if xlsx != "" {
				if err := writeFile(xlsx, func(w io.Writer) error { return export.Analytics(w, s) }); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", xlsx)
				return nil
			}

			t := newTable(cmd.OutOrStdout(), "METRIC", "VALUE")
			t.row("doctors", s.Doctors)
			t.row("patients", s.Patients)
			t.row("labs", s.Labs)
			t.row("rooms", fmt.Sprintf("%d (%d occupied, %d available)", s.Rooms.Total, s.Rooms.Occupied, s.Rooms.Available))
			t.row("discharges scheduled", s.Rooms.DischargeScheduled)
			t.row("lab tests pending", s.LabTests.Pending)
			t.row("lab tests completed", s.LabTests.Completed)
			t.row("visits (30 days)", s.RecentVisits)
			for _, o := range s.ByRoomType {
				t.row("  "+strings.ToLower(o.RoomType), fmt.Sprintf("%d/%d occupied", o.Occupied, o.Total))
			}
			for _, m := range s.Financials {
				t.row("  "+m.Month, fmt.Sprintf("income %.2f, expense %.2f", m.Income, m.Expense))
			}
			t.row("low stock items", s.LowStockItems)
			for _, item := range s.Inventory {
				stock := fmt.Sprintf("%d %s", item.Quantity, item.Unit)
				if item.LowStock {
					stock += " (low)"
				}
				t.row("  "+item.Name, stock)
			}
			return t.flush()
		},
	}
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "write the summary to this .xlsx file instead")
	return cmd
}
