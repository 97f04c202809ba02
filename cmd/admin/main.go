// Command admin is the triage CLI. It drives the same HTTP API as the
// dashboard: list tickets, mark them resolved, download incident PDFs.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"nammareport/backend/internal/models"
)

var (
	flagAddr   string
	flagMobile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "admin",
		Short: "Triage CLI for the Namma Report backend",
	}
	rootCmd.PersistentFlags().StringVar(&flagAddr, "addr", "http://localhost:8080", "backend base URL")
	rootCmd.PersistentFlags().StringVar(&flagMobile, "mobile", "9999999999", "administrator mobile number")

	rootCmd.AddCommand(listCmd(), resolveCmd(), documentCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// adminClient logs in with the administrator number and returns the client.
func adminClient() (*apiClient, error) {
	c := newAPIClient(flagAddr)
	if err := c.login(flagMobile); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return c, nil
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the session's tickets",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := adminClient()
			if err != nil {
				return err
			}
			var out struct {
				Tickets []models.Ticket `json:"tickets"`
			}
			if err := c.do(http.MethodGet, "/admin/tickets", nil, &out); err != nil {
				return err
			}
			if len(out.Tickets) == 0 {
				fmt.Println("No tickets.")
				return nil
			}
			for _, t := range out.Tickets {
				fmt.Printf("%s  %-22s  %-6s  %-8s  %s\n",
					t.ID, t.Category, t.Priority, t.Status, t.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <ticket-id>",
		Short: "Mark a ticket resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := adminClient()
			if err != nil {
				return err
			}
			if err := c.do(http.MethodPost, "/admin/tickets/"+args[0]+"/resolve", nil, nil); err != nil {
				return err
			}
			fmt.Printf("Ticket %s resolved.\n", args[0])
			return nil
		},
	}
}

func documentCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "document <ticket-id>",
		Short: "Download the incident PDF for a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := adminClient()
			if err != nil {
				return err
			}
			data, err := c.download("/admin/tickets/" + args[0] + "/document")
			if err != nil {
				return err
			}
			if output == "" {
				output = args[0] + ".pdf"
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s (%d bytes).\n", output, len(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <ticket-id>.pdf)")
	return cmd
}
