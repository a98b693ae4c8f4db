package cmd

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vultisig/addresscodec/codec"
	"github.com/vultisig/addresscodec/internal/storage"
)

func newPrefixCmd(opts *rootOptions) *cobra.Command {
	prefixCmd := &cobra.Command{
		Use:   "prefix",
		Short: "Search for and keep version prefixes",
	}

	findCmd := &cobra.Command{
		Use:   "find",
		Short: "Find version bytes that make encodings start with a prefix",
		Long: `Search for version bytes V such that every payload of --length bytes,
check-encoded under V, starts with --prefix. This is an offline tool and can
take a while. Use --save to keep the result in the storage directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			length, _ := cmd.Flags().GetInt("length")
			desiredPrefix, _ := cmd.Flags().GetString("prefix")
			name, _ := cmd.Flags().GetString("save")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			logger := logrus.WithField("service", "prefix")
			logger.Infof("searching version bytes for prefix %q, payload length %d", desiredPrefix, length)
			start := time.Now()
			version, err := codec.FindPrefix(ctx, length, desiredPrefix)
			if err != nil {
				return fmt.Errorf("failed to find prefix: %w", err)
			}
			logger.Infof("found version %X in %s", version, time.Since(start))

			example, err := codec.EncodeVersioned(make([]byte, length),
				codec.NewVersion(desiredPrefix, version, length))
			if err != nil {
				return fmt.Errorf("failed to encode example: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version: %s\n", strings.ToUpper(hex.EncodeToString(version)))
			fmt.Fprintf(out, "Example: %s\n", example)

			if name == "" {
				return nil
			}
			store, err := storage.NewLocalVersionStorage(opts.config.Storage.Dir)
			if err != nil {
				return err
			}
			if err := store.SaveVersion(storage.MintedVersion{
				Name:          name,
				PrefixHex:     hex.EncodeToString(version),
				PayloadLength: length,
				DesiredPrefix: desiredPrefix,
				Example:       example,
			}); err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved as %s\n", name)
			return nil
		},
	}
	findCmd.Flags().IntP("length", "l", 0, "Payload length in bytes (required)")
	findCmd.Flags().StringP("prefix", "p", "", "Desired leading characters (required)")
	findCmd.Flags().String("save", "", "Save the result under this name")
	findCmd.Flags().Duration("timeout", 0, "Give up after this long (0 means no limit)")
	_ = findCmd.MarkFlagRequired("length")
	_ = findCmd.MarkFlagRequired("prefix")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved version prefixes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := opts.config.Storage.Dir
			store, err := storage.NewLocalVersionStorage(dir)
			if err != nil {
				return err
			}
			versions, err := store.ListVersions()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(versions) == 0 {
				fmt.Fprintln(out, "No versions found in", dir)
				return nil
			}

			fmt.Fprintf(out, "Found %d version(s) in %s:\n\n", len(versions), dir)
			for i, v := range versions {
				fmt.Fprintf(out, "%d. %s: %s/%d %q (%s)\n", i+1, v.Name,
					strings.ToUpper(v.PrefixHex), v.PayloadLength, v.DesiredPrefix, v.Example)
			}
			return nil
		},
	}

	prefixCmd.AddCommand(findCmd, listCmd)
	return prefixCmd
}
