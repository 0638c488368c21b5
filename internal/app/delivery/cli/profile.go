package cli

import (
	"healthrecord-service/internal/app/config"
	"healthrecord-service/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

func NewProfileCommand(rootOpts *RootOptions, clientConfig *config.ClientConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the health profile",
	}
	cmd.AddCommand(newProfileSaveCommand(rootOpts, clientConfig))
	return cmd
}

func newProfileSaveCommand(rootOpts *RootOptions, clientConfig *config.ClientConfig) *cobra.Command {
	var values requests.Profile

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Replace the stored profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newSession(cmd, rootOpts, clientConfig, nil)
			client.EditProfile(values)
			return client.SaveProfile(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&values.Name, "name", "", "full name")
	cmd.Flags().StringVar(&values.Age, "age", "", "age")
	cmd.Flags().StringVar(&values.Conditions, "conditions", "", "known conditions")

	return cmd
}
