package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/versekeep/versekeep/internal/verse"
)

var addCmd = &cobra.Command{
	Use:   "add <book> <chapter> <verse>",
	Short: "Add a verse to memorize",
	Long: `Add a verse to the memorization deck. The verse text is passed with
--text and is immutable once stored. A new verse is due for review
immediately.`,
	Example: `  versekeep add John 3 16 --text "For God so loved the world..." --tags gospel,love
  versekeep add Psalms 23 1 --text "The LORD is my shepherd; I shall not want."`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		chapter, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("chapter must be a number: %q", args[1])
		}
		num, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("verse must be a number: %q", args[2])
		}

		text, _ := cmd.Flags().GetString("text")
		tagList, _ := cmd.Flags().GetString("tags")
		var tags []string
		if tagList != "" {
			tags = strings.Split(tagList, ",")
		}

		v, err := verse.New(verse.Reference{Book: args[0], Chapter: chapter, Verse: num}, text, tags, time.Now())
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Verses().Create(cmd.Context(), v); err != nil {
			return err
		}

		fmt.Printf("Added %s (%d words). Due for review now.\n", v.Reference, v.WordCount())
		fmt.Printf("id: %s\n", v.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().String("text", "", "Verse text (required)")
	addCmd.Flags().String("tags", "", "Comma-separated tags")
	addCmd.MarkFlagRequired("text")
}
