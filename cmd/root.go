package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/frankyi-gh/aplcheck/internal/buildinfo"
	"github.com/frankyi-gh/aplcheck/internal/logging"
)

const (
	LogLevelKey   = "log.level"
	LogFormatKey  = "log.format"
	LogNoColorKey = "log.no_color"

	ServerAddrKey = "server"
	AdminTokenKey = "admin_token"
)

var rootCmd = &cobra.Command{
	Use:   "aplcheck",
	Short: fmt.Sprintf("APL conformance checker (version: %s, commit: %s)", buildinfo.Version, buildinfo.CommitHash),
	Long: `aplcheck evaluates combat logs against an Action Priority List (APL).
	Given a priority-ordered list of rules - optionally guarded by stateful
	conditions - and a chronological event stream, it reports for every cast
	whether the player followed the highest-priority applicable rule.`,
	Version: buildinfo.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logging.Options{
			Level:   viper.GetString(LogLevelKey),
			Format:  viper.GetString(LogFormatKey),
			NoColor: viper.GetBool(LogNoColorKey),
		})
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal().Err(err).Msg("execution failed")
		os.Exit(1)
	}
}

func init() {
	// setup pre-flag logger
	logging.InitDefault()

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	_ = viper.BindPFlag(LogLevelKey, rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().String("log-format", "console", "Log format (console, json)")
	_ = viper.BindPFlag(LogFormatKey, rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.PersistentFlags().Bool("no-color", false, "Disable color output")
	_ = viper.BindPFlag(LogNoColorKey, rootCmd.PersistentFlags().Lookup("no-color"))

	rootCmd.PersistentFlags().String("server", "", "Address of the remote aplcheck server")
	_ = viper.BindPFlag(ServerAddrKey, rootCmd.PersistentFlags().Lookup("server"))

	rootCmd.PersistentFlags().String("admin-token", "", "Admin token for server commands")
	_ = viper.BindPFlag(AdminTokenKey, rootCmd.PersistentFlags().Lookup("admin-token"))

	viper.SetEnvPrefix("APLCHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
	))
	viper.AutomaticEnv()
}
