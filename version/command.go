package version

import (
	"encoding/json"
	"fmt"

	"github.com/jongio/konsole/konsole"
	"github.com/spf13/cobra"
)

// NewCommand creates a version command that writes info to k.
func NewCommand(info *Info, k *konsole.Konsole) *cobra.Command {
	var (
		quiet  bool
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode version: %w", err)
				}
				k.WriteLine(string(data))
				return nil
			}

			if quiet {
				k.WriteLine(info.Version)
				return nil
			}

			k.Header(fmt.Sprintf("%s Version", info.Name)).
				Label("Version", info.Version).
				Label("Build Date", info.BuildDate).
				Label("Git Commit", info.GitCommit)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version information as JSON")
	cmd.MarkFlagsMutuallyExclusive("quiet", "json")
	return cmd
}
