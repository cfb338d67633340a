package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(friendsCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(setProfileCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(clearCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Look up a player's stats by Epic name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/search?name=" + url.QueryEscape(args[0]))
	},
}

var friendsCmd = &cobra.Command{
	Use:   "friends [sort-key]",
	Short: "Show the friends leaderboard, optionally re-sorted by a key",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/friends"
		if len(args) == 1 {
			endpoint += "?sort=" + url.QueryEscape(args[0])
		}
		return performGetRequest(endpoint)
	},
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Look up a player and add them to the friends roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/friends/add?name=" + url.QueryEscape(args[0]))
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <username>",
	Short: "Remove a player from the friends roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/friends/remove?username=" + url.QueryEscape(args[0]))
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the designated profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/profile")
	},
}

var setProfileCmd = &cobra.Command{
	Use:   "set-profile",
	Short: "Designate the last searched player as your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/profile/set")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Wipe the roster, profile and persisted snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/clear")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
