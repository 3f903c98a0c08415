package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepgenius/prepgenius/internal/app"
	"github.com/prepgenius/prepgenius/internal/screens/welcome"
	"github.com/prepgenius/prepgenius/internal/session"
)

// runApp opens the store, loads the session, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	st, err := e.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	sess, err := session.Load(ctx, st.Prefs(), welcome.NewPrompter())
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	e.logger.Info("Starting", "user", sess.Username, "server", e.cfg.Server.BaseURL)

	return app.Run(ctx, app.Options{
		Backend:   e.newClient(),
		Session:   sess,
		Logger:    e.logger,
		ExportDir: e.cfg.Export.Dir,
	})
}
