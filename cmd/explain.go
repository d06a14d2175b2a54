package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/frankyi-gh/aplcheck/internal/config"
	"github.com/frankyi-gh/aplcheck/internal/core"
	"github.com/frankyi-gh/aplcheck/internal/engine"
	"github.com/frankyi-gh/aplcheck/internal/ingest"
)

var (
	explainAPLFile    string
	explainLogFile    string
	explainPlayer     int
	explainDumpEvents bool
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain every decision made for a combat log",
	Long: `Evaluates a combat log like 'check', but prints a per-cast trace showing
which rules were considered, why each qualified or was passed over, and the
resulting verdict. Casts no rule qualified for are shown too, even though
they never appear in check results.`,
	Example: `  aplcheck explain --apl fire.yaml --log report.json --player 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apl, err := config.LoadAPL(explainAPLFile)
		if err != nil {
			return err
		}

		events, err := ingest.ReadFile(explainLogFile)
		if err != nil {
			return err
		}

		if explainDumpEvents {
			spew.Dump(events)
		}

		trace := engine.New(apl).EvaluateTrace(events, explainPlayer)
		printTrace(trace)
		return nil
	},
}

func printTrace(trace core.CheckTrace) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Printf("\n%s for player %s: %d governed attempt(s)\n",
		bold("Check Trace"),
		bold(trace.PlayerID),
		len(trace.Attempts))

	fmt.Println(faint("---------------------------------------------------"))

	for _, attempt := range trace.Attempts {
		var icon, verdict string
		switch attempt.Verdict {
		case core.VerdictSuccess:
			icon, verdict = green("✔"), green("followed the priority list")
		case core.VerdictViolation:
			icon, verdict = red("✖"), red(fmt.Sprintf("should have cast %s", attempt.ExpectedCast.Name))
		default:
			icon, verdict = yellow("∅"), faint("no rule qualified, not counted")
		}

		fmt.Printf("%s [%8dms] Cast: %s - %s\n",
			icon,
			attempt.Timestamp,
			bold(attempt.ActualCast.Name),
			verdict)

		for _, rt := range attempt.Rules {
			ruleIcon := red("✖")
			if rt.Qualified {
				ruleIcon = green("✔")
			}

			label := rt.Action.Name
			if rt.ConditionKey != "" {
				label += faint(" [" + rt.ConditionKey + "]")
			}
			fmt.Printf("    %s %s\n", ruleIcon, label)

			if rt.Reason != "" {
				fmt.Printf("      ↳ %s\n", yellow(rt.Reason))
			}
		}

		fmt.Println()
	}
}

func init() {
	bindAPLFlag(explainCmd.Flags(), &explainAPLFile)
	bindReportFlags(explainCmd.Flags(), &explainLogFile, &explainPlayer)
	explainCmd.Flags().BoolVar(&explainDumpEvents, "dump-events", false, "Dump the parsed events before evaluating")
	_ = explainCmd.MarkFlagRequired("apl")
	_ = explainCmd.MarkFlagRequired("log")
	_ = explainCmd.MarkFlagRequired("player")

	rootCmd.AddCommand(explainCmd)
}
