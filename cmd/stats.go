package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/versekeep/versekeep/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show memorization statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		verses, err := st.Verses().List(cmd.Context())
		if err != nil {
			return err
		}
		sessions, err := st.Sessions().List(cmd.Context(), time.Time{}, time.Time{})
		if err != nil {
			return err
		}

		o := stats.Compute(verses, sessions, time.Now())

		row := func(label, value string) {
			fmt.Printf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-20s", label)), valueStyle.Render(value))
		}

		row("Verses", fmt.Sprintf("%d (%d mastered)", o.TotalVerses, o.MasteredVerses))
		row("Due today", fmt.Sprintf("%d", o.DueToday))
		row("Accuracy", fmt.Sprintf("%.1f%%", o.Accuracy))
		if o.AverageEaseFactor > 0 {
			row("Average ease", fmt.Sprintf("%.2f", o.AverageEaseFactor))
		}
		row("Streak", fmt.Sprintf("%d day(s), longest %d", o.StreakDays, o.LongestStreak))

		fmt.Println()
		fmt.Println(labelStyle.Render("Last 7 days"))
		for _, d := range o.WeeklyProgress {
			bar := strings.Repeat("█", d.VersesReviewed)
			if d.VersesReviewed == 0 {
				bar = "·"
			}
			fmt.Printf("  %-9s %s\n", d.Weekday.String()[:3], bar)
		}
		return nil
	},
}
