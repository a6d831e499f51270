// scripts/gcal-auth/main.go
//
// Run this once locally to authorize Google Calendar access for installed
// app (desktop) credentials and write the token the server reads from
// google_calendar.token_path. Service account credentials need no token.
//
// Usage:
//
//	go run scripts/gcal-auth/main.go [credentials.json] [token.json]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"daycraft/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	tokenPath := "token.json"
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth desktop app credentials file.", err, credsPath)
	}

	authURL := config.AuthCodeURL("daycraft", oauth2.AccessTypeOffline)
	fmt.Println("Step 1: open this URL and sign in with the Google account that owns the calendar:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("Step 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("Failed to write %s: %v", tokenPath, err)
	}

	fmt.Printf("\nToken saved to %s.\n", tokenPath)

	// Read back through the same path the server uses to prove the token works.
	ctx := context.Background()
	client, err := gcalendar.NewClientFromCredentialsFile(ctx, credsPath, tokenPath)
	if err != nil {
		log.Fatalf("Failed to build calendar client: %v", err)
	}
	now := time.Now()
	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		TimeMin:    now,
		TimeMax:    now.AddDate(0, 0, 7),
		MaxResults: 5,
	})
	if err != nil {
		log.Fatalf("Token saved but listing events failed: %v", err)
	}
	fmt.Printf("Calendar reachable, %d upcoming event(s) this week:\n", len(events))
	for _, e := range events {
		fmt.Printf("  %s  %s\n", e.StartTime.Format("Mon 02 Jan 15:04"), e.Summary)
	}
	fmt.Println("Restart the server to enable calendar booking.")
}
