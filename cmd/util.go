package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/frankyi-gh/aplcheck/pkg/client"
)

// bindAPLFlag registers the shared --apl flag for commands that work on a
// local APL definition.
func bindAPLFlag(flags *pflag.FlagSet, target *string) {
	flags.StringVarP(target, "apl", "f", "", "Path to the APL definition file")
}

// bindReportFlags registers the combat log flags shared by the evaluation
// commands.
func bindReportFlags(flags *pflag.FlagSet, logFile *string, player *int) {
	flags.StringVar(logFile, "log", "", "Path to the combat log JSON file")
	flags.IntVar(player, "player", 0, "Report-local id of the player to evaluate")
}

func getClient() (*client.Client, error) {
	addr := viper.GetString(ServerAddrKey)
	if addr == "" {
		return nil, fmt.Errorf("no server address configured (use --server or APLCHECK_SERVER)")
	}

	var opts []client.Option
	if token := viper.GetString(AdminTokenKey); token != "" {
		opts = append(opts, client.WithAuthToken(token))
	}

	return client.New(addr, opts...), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-1] + "…"
}
