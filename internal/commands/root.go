// Package commands provides CLI commands for chatkit.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "chatkit",
	Short: "Embeddable terminal chat widget",
	Long: `chatkit is an embeddable chat widget for the terminal. It renders
Markdown replies with syntax-highlighted code blocks and resolves them
through a configured HTTP endpoint, a canned sample mode, or a custom
handler when embedded as a library.

Examples:
  chatkit chat                          Open the widget (sample mode)
  chatkit chat --endpoint http://localhost:8080/api/chat
  chatkit serve                         Run the demo backend
  chatkit sample                        Print one canned reply`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("chatkit %s (built %s)\n", Version, BuildTime)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(sampleCmd)
}
