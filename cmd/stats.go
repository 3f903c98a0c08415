package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		s, err := e.newClient().Dashboard(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch dashboard: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Day streak:     %d\n", s.DayStreak)
		fmt.Fprintf(out, "Notes created:  %d\n", s.NotesCreated)
		fmt.Fprintf(out, "Quizzes taken:  %d\n", s.QuizzesTaken)
		fmt.Fprintln(out, strings.Repeat("─", 40))
		fmt.Fprintf(out, "%d out of %d tasks completed. Keep it up! (%d%%)\n",
			s.TodayActions, s.DailyGoal, s.GoalProgress)
		return nil
	},
}
