package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/sapphire-vault-cli/internal/domain"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := newBaseCmd()

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	addCommands(rootCmd, app)

	return rootCmd
}

func newBaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "akv",
		Short:         "APIKeyVault CLI (akv): read vault secrets on Oasis Sapphire via signed queries",
		Long:          "akv queries the APIKeyVault contract on the Oasis Sapphire confidential EVM. Read calls are signed with PRIVATE_KEY so the contract can authenticate msg.sender even on view functions.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", domain.ErrUsage, err)
	})

	return cmd
}

// exactArgs is cobra.ExactArgs tagged with the usage-error kind so the
// process exit code distinguishes misuse from runtime failures.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrUsage, err)
		}

		return nil
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUsage, err)
	}

	return nil
}

func addCommands(rootCmd *cobra.Command, app *app) {
	rootCmd.AddCommand(
		newVersionCmd(),
		newGetSecretCmd(app),
		newGetInfoCmd(app),
		newWhoAmICmd(app),
		newProvidersCmd(),
		newAliasCmd(app),
	)
}
