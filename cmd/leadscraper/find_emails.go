package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var findEmailsCmd = &cobra.Command{
	Use:   "find-emails",
	Short: "Run one email discovery batch and exit",
	Long:  "Looks up contact emails for unique leads that have a website but no email yet. Meant for an external cron.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		limit, _ := cmd.Flags().GetInt("limit")

		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		pub, closePublisher, err := openPublisher()
		if err != nil {
			return err
		}
		defer closePublisher()

		locker, closeLocker, err := openLocker(ctx)
		if err != nil {
			return err
		}
		defer closeLocker()

		emailService := newEmailService(db, locker, pub)

		if limit <= 0 {
			limit = cfg.Email.CronLimit
		}
		stats, err := emailService.FindEmails(ctx, limit)
		if err != nil {
			return err
		}

		logger.Info("email batch done",
			"processed", stats.Processed,
			"found", stats.Found,
		)
		return nil
	},
}

func init() {
	findEmailsCmd.Flags().Int("limit", 0, "maximum leads to process (0 = email.cron_limit)")
	rootCmd.AddCommand(findEmailsCmd)
}
