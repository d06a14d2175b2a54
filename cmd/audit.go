package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/frankyi-gh/aplcheck/pkg/client"
)

var (
	auditLimit  int
	auditAction string
	auditRunID  string
	auditPlayer int
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Retrieve and display audit log entries from the server",
	Long: `Retrieves recent audit entries recorded by the server, such as check
runs and priority list updates.

This command requires admin privileges on the server and a server
configured with a queryable (in-memory) auditor.`,
	Example: `  aplcheck audit --limit 50
  aplcheck audit --action apl.update`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := getClient()
		if err != nil {
			return err
		}

		log.Debug().Msg("Fetching audit log...")
		entries, err := cli.ListAudits(cmd.Context(), client.ListAuditsOpts{
			Limit:    auditLimit,
			Action:   auditAction,
			RunID:    auditRunID,
			PlayerID: auditPlayer,
		})
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			log.Info().Msg("No audit entries found")
			return nil
		}
		log.Debug().Msgf("Retrieved %d audit entries", len(entries))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{
			"Time", "Action", "Player", "Run", "Violations", "Error",
		})

		red := color.New(color.FgRed).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()

		for _, e := range entries {
			violations := faint("0")
			if e.Violations > 0 {
				violations = red(fmt.Sprintf("%d", e.Violations))
			}
			t.AppendRow(table.Row{
				e.Time.Format(time.RFC3339),
				e.Action,
				e.PlayerID,
				truncate(e.RunID, 20),
				violations,
				e.Error,
			})
		}

		t.SetStyle(table.StyleLight)
		t.Render()
		return nil
	},
}

func init() {
	auditCmd.Flags().IntVarP(&auditLimit, "limit", "n", 25, "Number of audit entries to retrieve")
	auditCmd.Flags().StringVar(&auditAction, "action", "", "Only show entries with this action")
	auditCmd.Flags().StringVar(&auditRunID, "run", "", "Only show entries referencing this run id")
	auditCmd.Flags().IntVar(&auditPlayer, "player", 0, "Only show entries for this player id")

	rootCmd.AddCommand(auditCmd)
}
