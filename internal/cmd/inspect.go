package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vultisig/addresscodec/address"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [value]",
		Short: "Identify and decode any supported base58 value",
		Long: `Identify a classic address, X-address, seed, node key or account public key
and print its decoded payload and details.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := address.Inspect(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, info)
		},
	}
}
