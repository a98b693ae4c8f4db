package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vultisig/addresscodec/address"
	"github.com/vultisig/addresscodec/api"
)

func newXAddressCmd(opts *rootOptions) *cobra.Command {
	xAddressCmd := &cobra.Command{
		Use:   "xaddress",
		Short: "Encode and decode X-addresses",
	}

	encodeCmd := &cobra.Command{
		Use:   "encode [classic-address]",
		Short: "Pack a classic address and an optional tag into an X-address",
		Long: `Pack a classic address and an optional destination tag into an X-address.
Without --test the configured network decides between X (mainnet) and T (testnet).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tagStr, _ := cmd.Flags().GetString("tag")
			tag, err := address.ParseTag(tagStr)
			if err != nil {
				return err
			}

			isTest := opts.config.DefaultNetwork().IsTest()
			if cmd.Flags().Changed("test") {
				isTest, _ = cmd.Flags().GetBool("test")
			}

			xAddress, err := address.ClassicAddressToXAddress(args[0], tag, isTest)
			if err != nil {
				return fmt.Errorf("failed to encode x-address: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), xAddress)
			return err
		},
	}
	encodeCmd.Flags().StringP("tag", "t", "", "Destination tag (0 to 4294967295)")
	encodeCmd.Flags().Bool("test", false, "Encode for testnet")

	decodeCmd := &cobra.Command{
		Use:   "decode [x-address]",
		Short: "Unpack an X-address into its classic address, tag and network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classic, err := address.DecodeXAddress(args[0])
			if err != nil {
				return fmt.Errorf("failed to decode x-address: %w", err)
			}
			return printJSON(cmd, api.DecodeXAddressResponse{
				Address: classic.Address,
				Tag:     classic.Tag,
				IsTest:  classic.IsTest,
				Network: classic.Network(),
			})
		},
	}

	xAddressCmd.AddCommand(encodeCmd, decodeCmd)
	return xAddressCmd
}
