package cli

import (
	"fmt"
	"healthrecord-service/internal/app/config"
	"healthrecord-service/internal/app/services/syncclient"
	"healthrecord-service/internal/pkg/dto/requests"
	"io"

	"github.com/spf13/cobra"
)

func NewAppointmentsCommand(rootOpts *RootOptions, clientConfig *config.ClientConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "List and add appointments",
	}
	cmd.AddCommand(newAppointmentsListCommand(rootOpts, clientConfig))
	cmd.AddCommand(newAppointmentsAddCommand(rootOpts, clientConfig))
	return cmd
}

func newAppointmentsListCommand(rootOpts *RootOptions, clientConfig *config.ClientConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show stored appointments in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newSession(cmd, rootOpts, clientConfig, nil)
			err := client.Load(cmd.Context())
			printAppointments(cmd.OutOrStdout(), client.Client)
			return err
		},
	}
}

func newAppointmentsAddCommand(rootOpts *RootOptions, clientConfig *config.ClientConfig) *cobra.Command {
	var values requests.Appointment

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an appointment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newSession(cmd, rootOpts, clientConfig, nil)
			// a failed load is already reported and does not block the add
			client.loadBeforeWrite(cmd.Context())

			client.EditAppointment(values)
			err := client.AddAppointment(cmd.Context())
			if err != nil {
				return err
			}
			printAppointments(cmd.OutOrStdout(), client.Client)
			return nil
		},
	}

	cmd.Flags().StringVar(&values.Date, "date", "", "appointment date")
	cmd.Flags().StringVar(&values.Doctor, "doctor", "", "doctor name")

	return cmd
}

func printAppointments(out io.Writer, client *syncclient.Client) {
	appointments := client.Appointments()
	if len(appointments) == 0 {
		fmt.Fprintln(out, "No appointments")
		return
	}
	for _, appointment := range appointments {
		fmt.Fprintf(out, "%s\t%s\n", appointment.Date, appointment.Doctor)
	}
}
