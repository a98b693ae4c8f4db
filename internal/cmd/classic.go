package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vultisig/addresscodec/address"
	"github.com/vultisig/addresscodec/api"
)

func newClassicCmd() *cobra.Command {
	classicCmd := &cobra.Command{
		Use:   "classic",
		Short: "Work with classic r-addresses",
	}

	validateCmd := &cobra.Command{
		Use:   "validate [address]",
		Short: "Check that an address is a well formed classic address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, api.ValidateResponse{Valid: address.IsValidClassicAddress(args[0])})
		},
	}

	fromPubKeyCmd := &cobra.Command{
		Use:   "from-pubkey [hex-public-key]",
		Short: "Derive the classic address of a secp256k1 or ed25519 public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classicAddress, err := address.GetXRPAddress(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), classicAddress)
			return err
		},
	}

	classicCmd.AddCommand(validateCmd, fromPubKeyCmd)
	return classicCmd
}
