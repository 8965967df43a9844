// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/glambook/salon-service/internal/types"
)

var (
	apiEndpoint string
	accessToken string
)

var salonCmd = &cobra.Command{
	Use:   "salon",
	Short: "Interact with a running salon service",
}

var signInCmd = &cobra.Command{
	Use:   "signin [email] [password]",
	Short: "Sign in and print an access token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Session struct {
				AccessToken string `json:"accessToken"`
			} `json:"session"`
		}
		err := callAPI(http.MethodPost, "/api/v0/auth/signin", map[string]string{
			"email":    args[0],
			"password": args[1],
		}, &resp)
		if err != nil {
			return fmt.Errorf("failed to sign in: %w", err)
		}

		fmt.Println(resp.Session.AccessToken)
		return nil
	},
}

var listAppointmentsCmd = &cobra.Command{
	Use:   "appointments",
	Short: "List appointments for the signed-in salon",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Appointments []types.Appointment `json:"appointments"`
		}
		if err := callAPI(http.MethodGet, "/api/v0/appointments", nil, &resp); err != nil {
			return fmt.Errorf("failed to list appointments: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tCLIENT\tSERVICE\tSTYLIST\tDATE\tTIME\tSTATUS")
		for _, a := range resp.Appointments {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", a.ID, a.ClientName, a.Service, a.StylistName, a.Date, a.Time, a.Status)
		}
		w.Flush()
		return nil
	},
}

var listStaffCmd = &cobra.Command{
	Use:   "staff",
	Short: "List staff for the signed-in salon",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Staff []types.StaffMember `json:"staff"`
		}
		if err := callAPI(http.MethodGet, "/api/v0/staff", nil, &resp); err != nil {
			return fmt.Errorf("failed to list staff: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSPECIALIZATION\tRATING\tAVAILABILITY")
		for _, m := range resp.Staff {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%s\n", m.ID, m.Name, m.Specialization, m.Rating, m.Availability)
		}
		w.Flush()
		return nil
	},
}

var listClientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List clients for the signed-in salon",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Clients []types.Client `json:"clients"`
		}
		if err := callAPI(http.MethodGet, "/api/v0/clients", nil, &resp); err != nil {
			return fmt.Errorf("failed to list clients: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTIER\tVISITS\tTOTAL_SPENT\tLAST_VISIT")
		for _, c := range resp.Clients {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%s\n", c.ID, c.Name, c.LoyaltyTier, c.Visits, c.TotalSpent, c.LastVisit)
		}
		w.Flush()
		return nil
	},
}

func callAPI(method, path string, body interface{}, out interface{}) error {
	endpoint := apiEndpoint
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}
	endpoint = strings.TrimSuffix(endpoint, "/")

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, endpoint+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(salonCmd)
	salonCmd.AddCommand(signInCmd)
	salonCmd.AddCommand(listAppointmentsCmd)
	salonCmd.AddCommand(listStaffCmd)
	salonCmd.AddCommand(listClientsCmd)

	salonCmd.PersistentFlags().StringVar(&apiEndpoint, "endpoint", "localhost:8080", "HTTP endpoint of the salon service")
	salonCmd.PersistentFlags().StringVar(&accessToken, "token", "", "Bearer token from signin")
}
