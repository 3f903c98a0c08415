package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prepgenius/prepgenius/internal/api"
	"github.com/prepgenius/prepgenius/internal/submit"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the study assistant a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.TrimSpace(strings.Join(args, " "))
		if question == "" {
			return errors.New("question is empty")
		}

		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		sub := submit.New(e.newClient(), e.logger)
		res := sub.Chat(cmd.Context(), api.ChatRequest{Question: question})
		if !res.OK {
			return errors.New(res.Text)
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Text)
		return nil
	},
}
