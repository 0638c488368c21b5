package cli

import (
	"fmt"
	"healthrecord-service/internal/app/config"
	"time"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	APIURL  string
	Timeout time.Duration
	Verbose bool
}

// NewRootCommand creates the healthctl command tree. Flag defaults come from
// the client configuration.
func NewRootCommand(clientConfig *config.ClientConfig) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "healthctl",
		Short: "Personal health record client",
		Long:  "Keeps a profile, appointments and prescriptions in sync with a record store.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.APIURL == "" {
				return fmt.Errorf("--api-url must not be empty")
			}
			if opts.Timeout <= 0 {
				return fmt.Errorf("invalid timeout %s: must be positive", opts.Timeout)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.APIURL, "api-url", clientConfig.RecordStore.BaseUrl, "record store base URL")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", clientConfig.RecordStore.Timeout, "per request timeout")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewProfileCommand(opts, clientConfig))
	cmd.AddCommand(NewAppointmentsCommand(opts, clientConfig))
	cmd.AddCommand(NewPrescriptionsCommand(opts, clientConfig))

	return cmd
}
