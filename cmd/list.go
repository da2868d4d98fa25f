package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/versekeep/versekeep/internal/verse"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List memorized verses with their review status",
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

		tag, _ := cmd.Flags().GetString("tag")
		if tag != "" {
			verses = filterByTag(verses, tag)
		}
		if len(verses) == 0 {
			fmt.Println("No verses yet. Add one with: versekeep add")
			return nil
		}

		now := time.Now()
		fmt.Printf("%-36s  %-22s  %-9s  %8s  %6s  %s\n",
			"ID", "Reference", "Status", "Interval", "Streak", "Next review")
		fmt.Println(strings.Repeat("─", 100))
		for _, v := range verses {
			next := "today"
			if d := v.Scheduling.DaysUntilReview(now); d > 0 {
				next = fmt.Sprintf("in %dd", d)
			}
			fmt.Printf("%-36s  %-22s  %-9s  %7dd  %6d  %s\n",
				v.ID, v.Reference, v.Scheduling.ReviewStatus(now),
				v.Scheduling.IntervalDays, v.Scheduling.Streak, next)
		}
		return nil
	},
}

func filterByTag(verses []*verse.MemorizedVerse, tag string) []*verse.MemorizedVerse {
	var out []*verse.MemorizedVerse
	for _, v := range verses {
		if v.HasTag(tag) {
			out = append(out, v)
		}
	}
	return out
}

func init() {
	listCmd.Flags().String("tag", "", "Only list verses with this tag")
}
