package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/frankyi-gh/aplcheck/internal/config"
	"github.com/frankyi-gh/aplcheck/internal/core"
	"github.com/frankyi-gh/aplcheck/internal/engine"
	"github.com/frankyi-gh/aplcheck/internal/ingest"
)

var (
	checkAPLFile string
	checkLogFile string
	checkPlayer  int
	checkJSON    bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate a combat log against an APL",
	Long: `Loads an APL definition and a combat log, evaluates every cast of the
given player against the priority list, and prints successes and violations.

Exits with a non-zero status if any violation was found, so the command can
gate CI-style log reviews.`,
	Example: `  # check player 7 in a report export against the fire APL
  aplcheck check --apl fire.yaml --log report.json --player 7

  # machine-readable output
  aplcheck check --apl fire.yaml --log report.json --player 7 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apl, err := config.LoadAPL(checkAPLFile)
		if err != nil {
			return err
		}

		events, err := ingest.ReadFile(checkLogFile)
		if err != nil {
			return err
		}
		log.Debug().Msgf("loaded %d event(s) from %s", len(events), checkLogFile)

		result := engine.New(apl).Evaluate(events, checkPlayer)

		if checkJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
		} else {
			printResult(result)
		}

		if len(result.Violations) > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func printResult(result core.CheckResult) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Printf("%s success(es), %s violation(s)\n",
		green(len(result.Successes)),
		red(len(result.Violations)))

	if len(result.Violations) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Cast", "Expected", "Rule Condition"})

	for i, v := range result.Violations {
		condKey := ""
		if r, ok := v.Rule.(core.ConditionalRule); ok {
			condKey = r.Condition.Key()
		}
		t.AppendRow(table.Row{
			i + 1,
			fmt.Sprintf("%s (%d)", truncate(v.ActualCast.Name, 32), v.ActualCast.ID),
			fmt.Sprintf("%s (%d)", truncate(v.ExpectedCast.Name, 32), v.ExpectedCast.ID),
			condKey,
		})
	}
	t.Render()
}

func init() {
	bindAPLFlag(checkCmd.Flags(), &checkAPLFile)
	bindReportFlags(checkCmd.Flags(), &checkLogFile, &checkPlayer)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the raw result as JSON")
	_ = checkCmd.MarkFlagRequired("apl")
	_ = checkCmd.MarkFlagRequired("log")
	_ = checkCmd.MarkFlagRequired("player")

	rootCmd.AddCommand(checkCmd)
}
