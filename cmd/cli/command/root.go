package command

// root.go defines the root command for the stackit CLI and its global flags.

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var apiURL string // Global flag for API server URL

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stackit",
	Short: "stackit - StackIt Q&A command line client",
	Long: `stackit talks to the StackIt Q&A API. With it you can:
- Register and log in (the token is kept in your OS keyring)
- Read and clear your notifications
- Listen for live notifications about your questions and answers

Use "stackit command --help" to see all available commands.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err) // Print error to standard error
		os.Exit(1)
	}
}

func init() {
	defaultAPI := os.Getenv("STACKIT_API")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:8080"
	}

	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPI, "API server URL")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(listenCmd)
}
