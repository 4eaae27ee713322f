package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/abhisek/mathtik/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer env.Close()

		limit, _ := cmd.Flags().GetInt("sessions")
		out := cmd.OutOrStdout()
		g := env.game
		p := g.Profile()
		ms := g.MasteryStats()

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Level\t%d (%d/10)\n", p.Level, p.LevelProgress)
		fmt.Fprintf(w, "Points\t%d\n", p.Points)
		fmt.Fprintf(w, "Streak\t%d (best %d)\n", p.Streak, p.BestStreak)
		fmt.Fprintf(w, "Answers\t%d (%.0f%% correct)\n", p.TotalAttempts, p.Accuracy()*100)
		fmt.Fprintf(w, "Rewards\t%v\n", p.Unlocked.Strings())
		fmt.Fprintf(w, "Champion\t%v\n", p.Champion)
		fmt.Fprintf(w, "Facts tracked\t%d (%d due, %d strong, %d weak)\n", ms.Tracked, ms.Due, ms.Strong, ms.Weak)
		fmt.Fprintf(w, "Mistakes queued\t%d\n", len(g.Mistakes()))
		if err := w.Flush(); err != nil {
			return err
		}

		sessions, err := env.store.EventRepo().QuerySessionEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			return nil
		}

		fmt.Fprintln(out)
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ENDED\tDURATION\tANSWERS\tCORRECT")
		for _, s := range sessions {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\n",
				s.Timestamp.Local().Format(time.DateTime),
				time.Duration(s.DurationSecs)*time.Second,
				s.Attempts, s.Correct)
		}
		return w.Flush()
	},
}

func init() {
	statsCmd.Flags().Int("sessions", 5, "Number of recent sessions to list")
}
