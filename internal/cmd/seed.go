package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vultisig/addresscodec/address"
	"github.com/vultisig/addresscodec/api"
	"github.com/vultisig/addresscodec/common"
)

const seedEntropyLength = 16

func newSeedCmd() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Encode and decode family seeds",
	}

	encodeCmd := &cobra.Command{
		Use:   "encode [entropy-hex]",
		Short: "Encode 16 bytes of entropy as a seed",
		Long: `Encode 16 bytes of hex entropy as a family seed for the given key type.
Fresh random entropy is used when no argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyTypeStr, _ := cmd.Flags().GetString("key-type")
			keyType, err := common.KeyTypeFromString(keyTypeStr)
			if err != nil {
				return err
			}

			var entropy []byte
			if len(args) == 1 {
				entropy, err = hex.DecodeString(args[0])
				if err != nil {
					return fmt.Errorf("invalid entropy hex: %w", err)
				}
			} else {
				// 16 random bytes
				entropy = make([]byte, seedEntropyLength)
				if _, err := rand.Read(entropy); err != nil {
					return fmt.Errorf("failed to generate entropy: %w", err)
				}
				logrus.Debug("generated random seed entropy")
			}

			seed, err := address.EncodeSeed(entropy, keyType)
			if err != nil {
				return fmt.Errorf("failed to encode seed: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), seed)
			return err
		},
	}
	encodeCmd.Flags().StringP("key-type", "k", common.SECP256K1.String(), "Key type (secp256k1 or ed25519)")

	decodeCmd := &cobra.Command{
		Use:   "decode [seed]",
		Short: "Decode a seed into its entropy and key type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entropy, keyType, err := address.DecodeSeed(args[0])
			if err != nil {
				return fmt.Errorf("failed to decode seed: %w", err)
			}
			return printJSON(cmd, api.DecodeSeedResponse{
				EntropyHex: hex.EncodeToString(entropy),
				KeyType:    keyType,
			})
		},
	}

	seedCmd.AddCommand(encodeCmd, decodeCmd)
	return seedCmd
}
