package commands

import (
	"fmt"
	"strings"

	"github.com/mupmc/mup/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newLoaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loader",
		Short: "Inspect supported loaders",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the valid loader names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			names := make([]string, 0, len(domain.ValidLoaderNames()))
			for _, name := range domain.ValidLoaderNames() {
				names = append(names, string(name))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, ", "))
		},
	})
	cmd.AddCommand(c.newLoaderFetchCmd())

	return cmd
}

func (c *CLI) newLoaderFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download a loader jarfile without touching the lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaderName, _ := cmd.Flags().GetString("name")
			minecraftVersion, _ := cmd.Flags().GetString("minecraft-version")
			version, _ := cmd.Flags().GetString("version")
			snapshot, _ := cmd.Flags().GetBool("snapshot")

			name, err := domain.ParseLoaderName(loaderName)
			if err != nil {
				return err
			}

			return c.app.FetchLoader(cmd.Context(), domain.LoaderConfig{
				Name:           name,
				GameVersion:    minecraftVersion,
				Version:        version,
				AllowSnapshots: snapshot,
			})
		},
	}
	cmd.Flags().StringP("name", "n", "", "Which loader to fetch")
	cmd.Flags().StringP("minecraft-version", "m", domain.VersionLatest, "Minecraft version to fetch the loader for")
	cmd.Flags().StringP("version", "v", domain.VersionLatest, "The loader version to fetch")
	cmd.Flags().Bool("snapshot", false, "Allow snapshot versions")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
