package command

import (
	"fmt"

	"stackit/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notif"},
	Short:   "List or clear your notifications",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show your notifications, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := session()
		if err != nil {
			return err
		}

		httpClient := client.NewHTTPClient(apiURL)
		httpClient.SetToken(creds.AccessToken)

		notifications, err := httpClient.ListNotifications()
		if err != nil {
			return err
		}
		if len(notifications) == 0 {
			fmt.Println("No notifications.")
			return nil
		}

		unreadOnly, _ := cmd.Flags().GetBool("unread")
		for _, n := range notifications {
			if unreadOnly && n.IsRead {
				continue
			}
			marker := " "
			if !n.IsRead {
				marker = color.HiYellowString("●")
			}
			fmt.Printf("%s %s %-17s %s\n", marker, n.Timestamp.Local().Format("2006-01-02 15:04"), n.Type, n.Message)
		}
		return nil
	},
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Mark all notifications as read",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := session()
		if err != nil {
			return err
		}

		httpClient := client.NewHTTPClient(apiURL)
		httpClient.SetToken(creds.AccessToken)

		result, err := httpClient.MarkNotificationsRead()
		if err != nil {
			return err
		}
		color.Green("✓ %s (%d of %d updated)", result.Message, result.Modified, result.Matched)
		return nil
	},
}

func init() {
	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsReadCmd)

	notificationsListCmd.Flags().Bool("unread", false, "Only show unread notifications")
}
