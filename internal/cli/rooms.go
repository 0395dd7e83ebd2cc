package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"datavault360/internal/client"
	"datavault360/internal/export"

	"github.com/spf13/cobra"
)

func roomsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rooms",
		Aliases: []string{"room"},
		Short:   "Room occupancy",
	}
	cmd.AddCommand(
		roomsListCmd(a),
		roomsWatchCmd(a),
		roomsCreateCmd(a),
		roomsAdmitCmd(a),
		roomsDischargeCmd(a),
		roomsDeleteCmd(a),
		roomsAdmittableCmd(a),
		roomsExportCmd(a),
	)
	return cmd
}

func printRooms(w io.Writer, rooms []client.Room) error {
	t := newTable(w, "ID", "ROOM", "TYPE", "SPECIALITY", "STATUS", "PATIENT", "DISCHARGE")
	for _, r := range rooms {
		status, patient, discharge := "available", "-", "-"
		if occ, ok := client.StateOf(r).(client.Occupied); ok {
			status = "occupied"
			patient = fmt.Sprintf("#%d", occ.PatientID)
			if r.Patient != nil && r.Patient.User.ID != 0 {
				patient = r.Patient.User.FullName()
			}
			discharge = formatTime(occ.DischargeAt)
		}
		t.row(r.ID, r.RoomNumber, r.RoomType, orDash(r.Speciality), status, patient, discharge)
	}
	return t.flush()
}

func roomsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rooms and who is in them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rooms, err := a.client.Rooms.List(ctx(cmd))
			if err != nil {
				return err
			}
			return printRooms(cmd.OutOrStdout(), rooms)
		},
	}
}

func roomsWatchCmd(a *app) *cobra.Command {
	var interval time.Duration
	var count int
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reprint the room board on an interval until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				return errors.New("--interval must be positive")
			}
			board := client.NewRoomBoard(a.client.Rooms, a.log)
			defer board.Close()

			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for i := 0; count <= 0 || i < count; i++ {
				if i > 0 {
					select {
					case <-ctx(cmd).Done():
						return nil
					case <-ticker.C:
					}
				}
				if err := board.Refresh(ctx(cmd)); err != nil {
					if errors.Is(err, client.ErrBoardClosed) || ctx(cmd).Err() != nil {
						return nil
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "refresh failed: %v\n", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "-- %s\n", time.Now().Format(timeLayout))
				if err := printRooms(cmd.OutOrStdout(), board.Rooms()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 10*time.Second, "time between refreshes")
	cmd.Flags().IntVar(&count, "count", 0, "stop after this many refreshes, 0 for no limit")
	return cmd
}

func roomsCreateCmd(a *app) *cobra.Command {
	var spec client.NewRoom
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a room (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec.RoomType = strings.ToUpper(spec.RoomType)
			room, err := a.client.Rooms.Create(ctx(cmd), spec)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created room %s (id %d)\n", room.RoomNumber, room.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&spec.RoomNumber, "number", "", "room number")
	f.StringVar(&spec.RoomType, "type", "", "GENERAL, ICU, PRIVATE or SEMI")
	f.StringVar(&spec.Speciality, "speciality", "", "ward speciality")
	return cmd
}

func roomsAdmitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "admit ROOM_ID PATIENT_ID",
		Short: "Put a patient in an available room",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := parseID(args[0])
			if err != nil {
				return err
			}
			patientID, err := parseID(args[1])
			if err != nil {
				return err
			}
			room, err := a.client.Rooms.Admit(ctx(cmd), roomID, patientID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Patient %d admitted to room %s\n", patientID, room.RoomNumber)
			return nil
		},
	}
}

func roomsDischargeCmd(a *app) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "discharge ROOM_ID",
		Short: "Schedule when an occupied room is freed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := parseID(args[0])
			if err != nil {
				return err
			}
			when, err := parseTime(at)
			if err != nil {
				return err
			}
			room, err := a.client.Rooms.ScheduleDischarge(ctx(cmd), roomID, when)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Room %s discharges at %s\n", room.RoomNumber, formatTime(room.ScheduledDischarge))
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", `discharge time, RFC3339 or "2006-01-02 15:04" local`)
	_ = cmd.MarkFlagRequired("at")
	return cmd
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, use RFC3339 or %q", s, timeLayout)
	}
	return t, nil
}

func roomsDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ROOM_ID",
		Short: "Remove a room (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := parseID(args[0])
			if err != nil {
				return err
			}
			err = a.client.Rooms.Delete(ctx(cmd), roomID, func(id uint) bool {
				return yes || a.confirm(cmd, fmt.Sprintf("Delete room %d?", id))
			})
			if errors.Is(err, client.ErrNotConfirmed) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted room %d\n", roomID)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func roomsAdmittableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "admittable",
		Short: "List patients who are not in a room",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patients, err := a.client.Directory.Patients(ctx(cmd))
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout(), "ID", "NAME")
			for _, p := range client.Admittable(patients) {
				t.row(p.ID, p.User.FullName())
			}
			return t.flush()
		},
	}
}

func roomsExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the room board to an .xlsx file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rooms, err := a.client.Rooms.List(ctx(cmd))
			if err != nil {
				return err
			}
			return writeFile(out, func(w io.Writer) error { return export.Rooms(w, rooms) })
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "rooms.xlsx", "output file")
	return cmd
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
