package cli

import (
	"fmt"
	"strings"

	"datavault360/internal/client"

	"github.com/spf13/cobra"
)

func inviteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Issue and accept account invitations",
	}
	cmd.AddCommand(inviteCreateCmd(a), inviteAcceptCmd(a))
	return cmd
}

func inviteCreateCmd(a *app) *cobra.Command {
	var email, role string
	var extra client.InvitationExtra
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Invite a doctor or patient by email (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRole(a, client.RoleAdmin); err != nil {
				return err
			}
			inv, err := a.client.Invitations.Create(ctx(cmd), email, client.Role(strings.ToUpper(role)), extra)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Invitation for %s (%s) expires %s\n", inv.Email, inv.Role, formatTime(&inv.ExpiresAt))
			fmt.Fprintln(out, inv.Link)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&email, "email", "", "invitee email")
	f.StringVar(&role, "role", "", "DOCTOR or PATIENT")
	f.StringVar(&extra.Specialization, "specialization", "", "doctor specialization")
	f.StringVar(&extra.DateOfBirth, "dob", "", "patient date of birth, YYYY-MM-DD")
	f.StringVar(&extra.PhoneNumber, "phone", "", "patient phone number")
	f.StringVar(&extra.Address, "address", "", "patient address")
	f.UintVar(&extra.DoctorID, "doctor", 0, "doctor to assign the patient to")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func inviteAcceptCmd(a *app) *cobra.Command {
	var fields client.AccountFields
	cmd := &cobra.Command{
		Use:   "accept TOKEN",
		Short: "Check an invitation and create the account it grants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := a.client.Invitations.Begin(args[0])
			if err != nil {
				return err
			}
			if err := flow.Check(ctx(cmd)); err != nil {
				return err
			}
			role, email := flow.Invitee()
			fmt.Fprintf(cmd.ErrOrStderr(), "Invitation for %s (%s)\n", email, role)

			if fields.Password == "" {
				if fields.Password, err = a.prompt(cmd, "Password: "); err != nil {
					return err
				}
				if fields.ConfirmPassword, err = a.prompt(cmd, "Confirm password: "); err != nil {
					return err
				}
			} else if fields.ConfirmPassword == "" {
				fields.ConfirmPassword = fields.Password
			}

			route, err := flow.Complete(ctx(cmd), fields)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account %s created, sign in at %s\n", fields.Username, route)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&fields.Username, "username", "", "new username")
	f.StringVar(&fields.Password, "password", "", "new password (prompted when empty)")
	f.StringVar(&fields.ConfirmPassword, "confirm-password", "", "repeat the password")
	f.StringVar(&fields.FirstName, "first-name", "", "first name")
	f.StringVar(&fields.LastName, "last-name", "", "last name")
	f.StringVar(&fields.Specialization, "specialization", "", "doctor specialization")
	patientFlags(cmd, &fields.Patient)
	return cmd
}

func patientFlags(cmd *cobra.Command, p *client.PatientFields) {
	f := cmd.Flags()
	f.StringVar(&p.Gender, "gender", "", "patient gender")
	f.StringVar(&p.DateOfBirth, "date-of-birth", "", "patient date of birth, YYYY-MM-DD")
	f.StringVar(&p.PhoneNumber, "phone-number", "", "patient phone number")
	f.StringVar(&p.AddressLine, "address-line", "", "patient street address")
	f.StringVar(&p.City, "city", "", "patient city")
	f.StringVar(&p.State, "state", "", "patient state")
	f.StringVar(&p.PostalCode, "postal-code", "", "patient postal code")
	f.StringVar(&p.Country, "country", "", "patient country")
}
