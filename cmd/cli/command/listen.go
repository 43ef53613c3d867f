package command

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"stackit/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Print live notifications until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := session()
		if err != nil {
			return err
		}

		wsURL, err := client.NotificationURL(apiURL, creds.UserID, creds.AccessToken)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		color.HiBlack("🔌 Listening for notifications as %s (Ctrl+C to stop)", creds.Email)
		if err := client.Listen(ctx, wsURL, client.PrintEvent); err != nil {
			return err
		}
		color.HiBlack("Connection closed.")
		return nil
	},
}
