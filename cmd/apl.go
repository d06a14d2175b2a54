package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/frankyi-gh/aplcheck/internal/config"
)

var aplCmd = &cobra.Command{
	Use:   "apl",
	Short: "Work with APL definitions",
}

var aplValidateFile string

var aplValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an APL definition file",
	Long: `Parses and builds the APL definition, reporting duplicate condition keys,
unknown condition references, bad condition configs and uncompilable
expressions without evaluating anything.`,
	Example: `  aplcheck apl validate --apl fire.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		apl, err := config.LoadAPL(aplValidateFile)
		if err != nil {
			log.Error().Err(err).Msg("APL definition is invalid")
			os.Exit(1)
		}
		log.Info().
			Int("rules", len(apl.Rules)).
			Int("conditions", len(apl.Conditions)).
			Msg("APL definition is valid")
	},
}

var aplPushFile string

var aplPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push an APL definition to a running server",
	Long: `Validates the APL definition locally, then makes it the server's active
APL. Running checks keep the APL they started with.

This command requires admin privileges on the server.`,
	Example: `  aplcheck apl push --apl fire.yaml --server http://localhost:8913 --admin-token $TOKEN`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// validate locally first for a better error than a 400
		if _, err := config.LoadAPL(aplPushFile); err != nil {
			return err
		}

		definition, err := os.ReadFile(aplPushFile)
		if err != nil {
			return err
		}

		cli, err := getClient()
		if err != nil {
			return err
		}

		if err := cli.UpdateAPL(cmd.Context(), definition); err != nil {
			return err
		}

		log.Info().Msg("APL updated")
		return nil
	},
}

func init() {
	bindAPLFlag(aplValidateCmd.Flags(), &aplValidateFile)
	_ = aplValidateCmd.MarkFlagRequired("apl")

	bindAPLFlag(aplPushCmd.Flags(), &aplPushFile)
	_ = aplPushCmd.MarkFlagRequired("apl")

	aplCmd.AddCommand(aplValidateCmd)
	aplCmd.AddCommand(aplPushCmd)
	rootCmd.AddCommand(aplCmd)
}
