// scripts/gcal-auth/main.go
//
// Run this once locally to authorize read access to Google Calendar and
// generate token.json for OAuth desktop credentials.
//
// Usage:
//
//	go run scripts/gcal-auth/main.go [google-credentials.json]
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

	"eventask/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, gcalendar.Scope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("Step 1: open this URL in a browser and sign in with your Google account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("Step 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx := context.Background()
	tok, err := config.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(gcalendar.TokenFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", gcalendar.TokenFile, err)
	}
	if err := json.NewEncoder(f).Encode(tok); err != nil {
		f.Close()
		log.Fatalf("Failed to write %s: %v", gcalendar.TokenFile, err)
	}
	f.Close()
	fmt.Printf("\n%s saved.\n", gcalendar.TokenFile)

	// Smoke test: the same path the service uses at startup.
	client, err := gcalendar.NewClientFromCredentialsJSON(ctx, data)
	if err != nil {
		log.Fatalf("Token saved but client creation failed: %v", err)
	}
	now := time.Now()
	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		TimeMin:    now,
		TimeMax:    now.AddDate(0, 0, 7),
		MaxResults: 10,
	})
	if err != nil {
		log.Fatalf("Token saved but listing events failed: %v", err)
	}
	fmt.Printf("Found %d event(s) in the next 7 days. Restart the API to pick up the token.\n", len(events))
}
