package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vultisig/addresscodec/internal/config"
)

// rootOptions carries global flags and the loaded configuration to subcommands.
type rootOptions struct {
	configFile string
	viper      *viper.Viper
	config     *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{viper: config.New()}

	rootCmd := &cobra.Command{
		Use:   "addresscodec",
		Short: "XRP ledger address codec",
		Long: `addresscodec encodes and decodes XRP ledger base58 values: classic
addresses, X-addresses, seeds and node keys. It can also search for new
version prefixes and serve the codec over HTTP.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLogging(cmd)
			cfg, err := config.Load(opts.viper, opts.configFile)
			if err != nil {
				return err
			}
			opts.config = cfg
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Config file (yaml, json or toml)")

	rootCmd.AddCommand(
		newXAddressCmd(opts),
		newClassicCmd(),
		newSeedCmd(),
		newInspectCmd(),
		newPrefixCmd(opts),
		newServeCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func initLogging(cmd *cobra.Command) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetLevel(logrus.WarnLevel)

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
