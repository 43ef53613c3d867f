package command

import (
	"fmt"
	"time"

	"stackit/cmd/cli/authentication"
	"stackit/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// auth.go handles authentication commands: login, register and logout.

// authCmd represents the auth command for authentication related subcommands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the StackIt API server. Supports login, registration, logout.`,
}

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new StackIt account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.RegisterRequest
		req.Name, _ = cmd.Flags().GetString("name")
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")

		response, err := client.NewHTTPClient(apiURL).Register(&req)
		if err != nil {
			return fmt.Errorf("registration process failed: %w", err)
		}

		color.Green("✓ Registration successful! Please login to continue.")
		fmt.Printf("UserID: %s\n", response.ID)
		return nil
	},
}

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to your StackIt account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.LoginRequest
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")

		response, err := client.NewHTTPClient(apiURL).Login(&req)
		if err != nil {
			return fmt.Errorf("login process failed: %w", err)
		}

		creds, err := authentication.CredentialsFromToken(response.AccessToken)
		if err != nil {
			return err
		}
		if err := authentication.StoreTokens(creds); err != nil {
			return fmt.Errorf("could not save token to keyring: %w", err)
		}

		color.Green("✓ Successfully logged in!")
		if creds.ExpiresAt != 0 {
			fmt.Printf("Session valid until %s\n", time.Unix(creds.ExpiresAt, 0).Format(time.RFC1123))
		}
		return nil
	},
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from your StackIt account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authentication.DeleteTokens(); err != nil {
			return err
		}
		color.Green("✓ Successfully logged out.")
		return nil
	},
}

func init() {
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)

	registerCmd.Flags().StringP("name", "n", "", "Display name for the new account")
	registerCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	registerCmd.Flags().StringP("password", "p", "", "Password for the new account")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringP("email", "e", "", "Email address of the account")
	loginCmd.Flags().StringP("password", "p", "", "Password for the account")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}

// session loads the stored credentials and refuses expired ones.
func session() (*authentication.StoredCredentials, error) {
	creds, err := authentication.GetTokens()
	if err != nil {
		return nil, err
	}
	if creds.Expired(time.Now()) {
		return nil, fmt.Errorf("session expired: %w", authentication.ErrNotLoggedIn)
	}
	return creds, nil
}
