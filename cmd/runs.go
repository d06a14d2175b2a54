package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List check runs stored on the server",
	Long: `Retrieves the most recent check runs stored by the server, newest first.

This command requires admin privileges on the server.`,
	Example: `  aplcheck runs --server http://localhost:8913 --admin-token $TOKEN`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := getClient()
		if err != nil {
			return err
		}

		log.Debug().Msg("Fetching check runs...")
		runs, err := cli.ListRuns(cmd.Context(), runsLimit)
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			log.Info().Msg("No check runs found")
			return nil
		}
		log.Debug().Msgf("Retrieved %d check run(s)", len(runs))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{
			"ID", "Created", "Player", "Events", "Successes", "Violations",
		})

		red := color.New(color.FgRed).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()

		for _, run := range runs {
			violations := faint("0")
			if n := len(run.Result.Violations); n > 0 {
				violations = red(fmt.Sprintf("%d", n))
			}
			t.AppendRow(table.Row{
				run.ID,
				run.CreatedAt.Format(time.RFC3339),
				run.PlayerID,
				run.Events,
				len(run.Result.Successes),
				violations,
			})
		}
		t.Render()
		return nil
	},
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum number of runs to list")

	rootCmd.AddCommand(runsCmd)
}
