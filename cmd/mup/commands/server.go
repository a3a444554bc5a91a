package commands

import (
	"github.com/mupmc/mup/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Manage the server in the current directory",
	}

	cmd.AddCommand(c.newServerInitCmd())
	cmd.AddCommand(c.newServerSignCmd())
	cmd.AddCommand(c.newServerInstallCmd())

	return cmd
}

func (c *CLI) newServerInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a server in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			minecraftVersion, _ := cmd.Flags().GetString("minecraft-version")
			loaderName, _ := cmd.Flags().GetString("loader")
			snapshot, _ := cmd.Flags().GetBool("snapshot")

			loader, err := domain.ParseLoaderName(loaderName)
			if err != nil {
				return err
			}

			return c.app.InitServer(cmd.Context(), minecraftVersion, loader, snapshot)
		},
	}
	cmd.Flags().StringP("minecraft-version", "m", "", "Minecraft version of the server")
	cmd.Flags().StringP("loader", "l", "", "Which loader to use")
	cmd.Flags().Bool("snapshot", false, "Allow snapshot versions")
	_ = cmd.MarkFlagRequired("minecraft-version")
	_ = cmd.MarkFlagRequired("loader")
	return cmd
}

func (c *CLI) newServerSignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign",
		Short: "Sign the eula.txt",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.SignEULA()
		},
	}
}

func (c *CLI) newServerInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the loader and all mods from the current lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Install(cmd.Context())
		},
	}
}
