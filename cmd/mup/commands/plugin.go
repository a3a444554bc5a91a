package commands

import (
	"github.com/mupmc/mup/internal/app"
	"github.com/mupmc/mup/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newPluginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plugin",
		Aliases: []string{"mod"},
		Short:   "Manage installed mods and plugins",
	}

	cmd.AddCommand(c.newPluginAddCmd())
	cmd.AddCommand(c.newPluginRemoveCmd())
	cmd.AddCommand(c.newPluginUpdateCmd())

	return cmd
}

func (c *CLI) newPluginAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Add a mod or plugin and its dependencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			providerName, _ := cmd.Flags().GetString("provider")
			version, _ := cmd.Flags().GetString("version")
			optional, _ := cmd.Flags().GetBool("optional")
			noDeps, _ := cmd.Flags().GetBool("no-deps")

			provider, err := domain.ParseProvider(providerName)
			if err != nil {
				return err
			}

			return c.app.Add(cmd.Context(), args[0], app.AddOptions{
				Provider:         provider,
				Version:          version,
				IncludeOptional:  optional,
				SkipDependencies: noDeps,
			})
		},
	}
	cmd.Flags().StringP("provider", "p", string(domain.ProviderModrinth), "Which provider to resolve the project against")
	cmd.Flags().StringP("version", "v", domain.VersionLatest, "The version to add")
	cmd.Flags().BoolP("optional", "o", false, "Also install optional dependencies")
	cmd.Flags().BoolP("no-deps", "n", false, "Do not install any dependencies")
	return cmd
}

func (c *CLI) newPluginRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an installed mod or plugin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keepJarfile, _ := cmd.Flags().GetBool("keep-jarfile")
			keepOrphans, _ := cmd.Flags().GetBool("keep-orphans")

			return c.app.Remove(cmd.Context(), args[0], app.RemoveOptions{
				KeepJarfile:   keepJarfile,
				RemoveOrphans: !keepOrphans,
			})
		},
	}
	cmd.Flags().Bool("keep-jarfile", false, "Keep the downloaded jarfile")
	cmd.Flags().Bool("keep-orphans", false, "Keep dependencies no other project requires")
	return cmd
}

func (c *CLI) newPluginUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update one or all installed mods and plugins",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := cmd.Flags().GetString("version")

			id := "all"
			if len(args) == 1 {
				id = args[0]
			}

			return c.app.Update(cmd.Context(), id, version)
		},
	}
	cmd.Flags().StringP("version", "v", domain.VersionLatest, "The version to update to")
	return cmd
}
