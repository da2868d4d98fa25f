package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/versekeep/versekeep/internal/quiz"
	"github.com/versekeep/versekeep/internal/spacedrep"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review the verses that are due today",
	Long: `Run a quiz session over the verses due for review. Each verse is asked
in one of three modes (reference-to-text, text-to-reference or
fill-in-blanks); type your answer, compare it against the original,
then rate your recall from 0 (blackout) to 5 (perfect).

Quit with "q" at any prompt; verses already graded keep their updated
schedule, and no session record is written for an abandoned session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		// Not being able to read the due set is fatal to starting.
		due, err := st.Verses().ListDue(cmd.Context(), time.Now())
		if err != nil {
			return fmt.Errorf("load due verses: %w", err)
		}

		if tag, _ := cmd.Flags().GetString("tag"); tag != "" {
			due = filterByTag(due, tag)
		}
		if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(due) > limit {
			due = due[:limit]
		}
		if len(due) == 0 {
			fmt.Println("Nothing due. Well done!")
			return nil
		}

		modeName, _ := cmd.Flags().GetString("mode")
		orch := quiz.New(st.Verses(), st.Sessions())
		session, err := orch.Start(due, quiz.ParseMode(modeName))
		if err != nil {
			return err
		}

		fmt.Printf("%d verse(s) due.\n", len(due))
		in := bufio.NewScanner(os.Stdin)

		for !session.Done() {
			q := session.Current()
			fmt.Printf("\n[%d/%d] %s\n", len(due)-session.Remaining()+1, len(due), q.Mode)
			fmt.Println(promptStyle.Render(q.Prompt))

			fmt.Print("> ")
			if !in.Scan() {
				session.Abandon()
				return nil
			}
			answer := strings.TrimSpace(in.Text())
			if answer == "q" {
				session.Abandon()
				fmt.Println("Session abandoned.")
				return nil
			}
			if err := session.EnterAnswer(answer); err != nil {
				return err
			}

			expected, err := session.Reveal()
			if err != nil {
				return err
			}
			fmt.Println(revealStyle.Render("Answer: " + expected))

			result, err := askQuality(cmd.Context(), session, in)
			if err != nil {
				return err
			}
			if result == nil {
				fmt.Println("Session abandoned.")
				return nil
			}
			if result.Correct {
				fmt.Println(successStyle.Render(fmt.Sprintf("Correct (similarity %.0f%%)", result.Similarity*100)))
			} else {
				fmt.Println(failStyle.Render(fmt.Sprintf("Keep at it (similarity %.0f%%)", result.Similarity*100)))
			}
		}

		rec, err := session.Complete(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("\nSession done: %d reviewed, %d correct, avg quality %.1f, %.1f min.\n",
			rec.VersesReviewed, rec.CorrectAnswers, rec.AverageQuality, rec.TimeSpentMinutes)

		if failures := session.PersistFailures(); len(failures) > 0 {
			fmt.Fprintf(os.Stderr, "Warning: %d verse update(s) could not be saved and need a retry:\n", len(failures))
			for _, ferr := range failures {
				fmt.Fprintln(os.Stderr, "  -", ferr)
			}
		}
		return nil
	},
}

// askQuality prompts for a 0-5 rating until valid, grades the verse,
// and returns nil (without error) when the user quits.
func askQuality(ctx context.Context, session *quiz.Session, in *bufio.Scanner) (*quiz.ReviewResult, error) {
	for {
		fmt.Print("How well did you recall it? 0-5 (q to quit): ")
		if !in.Scan() {
			session.Abandon()
			return nil, nil
		}
		raw := strings.TrimSpace(in.Text())
		if raw == "q" {
			session.Abandon()
			return nil, nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil || !spacedrep.Quality(n).Valid() {
			fmt.Println("Please enter a number from 0 to 5.")
			continue
		}
		return session.Grade(ctx, spacedrep.Quality(n))
	}
}

func init() {
	reviewCmd.Flags().String("mode", "mixed", "Question mode: mixed, reference-to-text, text-to-reference, fill-in-blanks")
	reviewCmd.Flags().String("tag", "", "Only review due verses with this tag")
	reviewCmd.Flags().Int("limit", 0, "Cap the number of verses in the session (0 = all due)")
}
