package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/sapphire-vault-cli/internal/adapters/render/query"
	"github.com/bnema/sapphire-vault-cli/internal/domain"
)

func newAliasCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Manage local address-book aliases for contract/owner addresses",
	}

	cmd.AddCommand(
		newAliasSetCmd(app),
		newAliasListCmd(app),
		newAliasRmCmd(app),
	)

	return cmd
}

func newAliasSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <address>",
		Short: "Add or replace an alias",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias, err := domain.NewAlias(args[0], args[1])
			if err != nil {
				return err
			}

			if err := app.aliases.Save(cmd.Context(), alias); err != nil {
				return fmt.Errorf("save alias: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", alias.Name, alias.Address.Hex())
			return err
		},
	}
}

func newAliasListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured aliases",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			aliases, err := app.aliases.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list aliases: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), query.RenderAliases(aliases))
			return err
		},
	}
}

func newAliasRmCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove an alias",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.aliases.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("remove alias: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return err
		},
	}
}
