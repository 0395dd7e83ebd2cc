package cli

import (
	"fmt"
	"strconv"
	"strings"

	"datavault360/internal/client"

	"github.com/spf13/cobra"
)

func accountsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Short:   "Manage doctor, patient and lab accounts (admin)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return requireRole(a, client.RoleAdmin)
		},
	}
	cmd.AddCommand(accountsCreateCmd(a), accountsListCmd(a), accountsAssignCmd(a), accountsDeleteCmd(a))
	return cmd
}

func parseRole(s string) client.Role {
	return client.Role(strings.ToUpper(strings.TrimSpace(s)))
}

func accountsCreateCmd(a *app) *cobra.Command {
	var role string
	var direct bool
	var req client.ProvisionRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Invite or directly create an account",
		Long: "Doctors and patients get an invitation link unless --direct is set.\n" +
			"Labs are always created directly with a username and password.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Role = parseRole(role)
			if req.Role == client.RolePatient {
				req.Extra.DateOfBirth = req.Patient.DateOfBirth
				req.Extra.PhoneNumber = req.Patient.PhoneNumber
				req.Extra.Address = req.Patient.AddressLine
				if len(req.DoctorIDs) > 0 {
					req.Extra.DoctorID = req.DoctorIDs[0]
				}
			}
			out, err := a.client.Provisioner(req.Role, direct).ProvisionAccount(ctx(cmd), req)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.Invitation != nil {
				fmt.Fprintf(w, "Invitation sent to %s, share this link:\n%s\n", out.Invitation.Email, out.Invitation.Link)
				return nil
			}
			fmt.Fprintf(w, "Created %s %s (profile %d)\n", strings.ToLower(string(out.Role)), out.Username, out.ProfileID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&role, "role", "", "DOCTOR, PATIENT or LAB")
	f.BoolVar(&direct, "direct", false, "create the account now instead of inviting")
	f.StringVar(&req.Email, "email", "", "email address")
	f.StringVar(&req.Username, "username", "", "username (direct only)")
	f.StringVar(&req.Password, "password", "", "password (direct only)")
	f.StringVar(&req.FirstName, "first-name", "", "first name")
	f.StringVar(&req.LastName, "last-name", "", "last name")
	f.StringVar(&req.Specialization, "specialization", "", "doctor specialization")
	f.StringVar(&req.LabName, "lab-name", "", "lab name")
	f.StringVar(&req.LabAddress, "lab-address", "", "lab address")
	f.UintSliceVar(&req.DoctorIDs, "doctor", nil, "doctor ids to assign a patient to")
	patientFlags(cmd, &req.Patient)
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func accountsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "list doctors|patients|labs",
		Short:     "List accounts of one kind",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"doctors", "patients", "labs"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.client.Directory
			switch args[0] {
			case "doctors":
				doctors, err := dir.Doctors(ctx(cmd))
				if err != nil {
					return err
				}
				t := newTable(cmd.OutOrStdout(), "ID", "USERNAME", "NAME", "SPECIALIZATION")
				for _, d := range doctors {
					t.row(d.ID, d.User.Username, d.User.FullName(), orDash(d.Specialization))
				}
				return t.flush()
			case "patients":
				patients, err := dir.Patients(ctx(cmd))
				if err != nil {
					return err
				}
				t := newTable(cmd.OutOrStdout(), "ID", "USERNAME", "NAME", "ROOM", "DOCTORS")
				for _, p := range patients {
					room := "-"
					if p.AssignedRoom != nil {
						room = p.AssignedRoom.RoomNumber
					}
					doctors := make([]string, len(p.AssignedDoctors))
					for i, d := range p.AssignedDoctors {
						doctors[i] = strconv.FormatUint(uint64(d.ID), 10)
					}
					t.row(p.ID, p.User.Username, p.User.FullName(), room, orDash(strings.Join(doctors, ",")))
				}
				return t.flush()
			default:
				labs, err := dir.Labs(ctx(cmd))
				if err != nil {
					return err
				}
				t := newTable(cmd.OutOrStdout(), "ID", "USERNAME", "NAME", "ADDRESS")
				for _, l := range labs {
					t.row(l.ID, l.User.Username, l.Name, orDash(l.Address))
				}
				return t.flush()
			}
		},
	}
}

func accountsAssignCmd(a *app) *cobra.Command {
	var doctorIDs []uint
	cmd := &cobra.Command{
		Use:   "assign PATIENT_ID",
		Short: "Replace the doctors assigned to a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := a.client.Directory.AssignDoctors(ctx(cmd), id, doctorIDs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Patient %d now has %d doctor(s)\n", p.ID, len(p.AssignedDoctors))
			return nil
		},
	}
	cmd.Flags().UintSliceVar(&doctorIDs, "doctor", nil, "doctor ids, empty to unassign all")
	return cmd
}

func accountsDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete doctor|patient|lab ID",
		Short: "Delete a profile together with its user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role := parseRole(strings.TrimSuffix(args[0], "s"))
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			if !yes && !a.confirm(cmd, fmt.Sprintf("Delete %s %d?", strings.ToLower(string(role)), id)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
			if err := a.client.Directory.Delete(ctx(cmd), role, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %d\n", strings.ToLower(string(role)), id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}
