package cli

import (
	"fmt"
	"healthrecord-service/internal/app/config"
	"healthrecord-service/internal/app/services/syncclient"
	"healthrecord-service/internal/app/services/syncclient/picker"
	"io"

	"github.com/spf13/cobra"
)

func NewPrescriptionsCommand(rootOpts *RootOptions, clientConfig *config.ClientConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prescriptions",
		Short: "List and add prescriptions",
	}
	cmd.AddCommand(newPrescriptionsListCommand(rootOpts, clientConfig))
	cmd.AddCommand(newPrescriptionsAddCommand(rootOpts, clientConfig))
	return cmd
}

func newPrescriptionsListCommand(rootOpts *RootOptions, clientConfig *config.ClientConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show stored prescriptions in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newSession(cmd, rootOpts, clientConfig, nil)
			err := client.Load(cmd.Context())
			printPrescriptions(cmd.OutOrStdout(), client.Client)
			return err
		},
	}
}

func newPrescriptionsAddCommand(rootOpts *RootOptions, clientConfig *config.ClientConfig) *cobra.Command {
	var (
		name      string
		imagePath string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a prescription, optionally with a photo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newSession(cmd, rootOpts, clientConfig, picker.NewFilePicker(imagePath))
			client.loadBeforeWrite(cmd.Context())

			client.EditPrescription(name)
			err := client.AttachImage(cmd.Context())
			if err != nil {
				return err
			}

			err = client.AddPrescription(cmd.Context())
			if err != nil {
				return err
			}
			printPrescriptions(cmd.OutOrStdout(), client.Client)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "prescription name")
	cmd.Flags().StringVar(&imagePath, "image", "", "path to a photo of the prescription")

	return cmd
}

func printPrescriptions(out io.Writer, client *syncclient.Client) {
	prescriptions := client.Prescriptions()
	if len(prescriptions) == 0 {
		fmt.Fprintln(out, "No prescriptions")
		return
	}
	for _, prescription := range prescriptions {
		if prescription.HasImage() {
			fmt.Fprintf(out, "%s\t%s\n", prescription.Name, prescription.Image)
			continue
		}
		fmt.Fprintf(out, "%s\t(no image)\n", prescription.Name)
	}
}
