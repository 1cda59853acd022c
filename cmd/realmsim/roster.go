// The roster command: print titles and biographies from the database.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/star-realms/internal/engine"
	"github.com/talgya/star-realms/internal/entropy"
	"github.com/talgya/star-realms/internal/narrative"
	"github.com/talgya/star-realms/internal/persistence"
)

func rosterCmd(configPath *string) *cobra.Command {
	var dead bool
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Print every realm's leaders with titles and biographies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			db, err := persistence.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			court, err := db.LoadCourt(entropy.NewDice(1))
			if err != nil {
				return fmt.Errorf("no saved game in %s: %w", cfg.DBPath, err)
			}
			printRoster(cmd.OutOrStdout(), court, dead)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dead, "dead", false, "Include dead leaders")
	return cmd
}

func printRoster(w io.Writer, c *engine.Court, dead bool) {
	fmt.Fprintf(w, "Turn %d\n", c.Turn)
	for _, r := range c.Realms {
		fmt.Fprintf(w, "\n%s (%s %s), %s credits, next recruit %s credits\n",
			r.EmpireName, r.Race, r.Government,
			humanize.Comma(int64(r.Credits)), humanize.Comma(int64(engine.RecruitCost(r))))
		fmt.Fprintln(w, strings.Repeat("-", len(r.EmpireName)))
		for _, l := range r.Leaders {
			if !l.IsAlive() && !dead {
				continue
			}
			fmt.Fprintf(w, "%s [%s, level %d, age %d]\n", l.CallName(), l.Job, l.Level, l.Age)
			fmt.Fprintf(w, "  %s\n", narrative.BuildBiography(l, r.Government))
		}
	}
}
