// Command gcal-auth authorizes Google Calendar access for an OAuth Desktop App
// client and writes the token next to the service, where pkg/gcalendar reads it.
//
// Usage:
//
//	go run ./scripts/gcal-auth [-credentials google-credentials.json]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"voice-notes/pkg/gcalendar"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth Desktop App credentials file")
	flag.Parse()

	config, err := gcalendar.OAuthConfigFromFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to load credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	state := uuid.NewString()
	authURL := config.AuthCodeURL(state, oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: open this URL in a browser and sign in with your Google account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	if err := gcalendar.SaveToken(gcalendar.TokenFile, tok); err != nil {
		log.Fatalf("Failed to save token: %v", err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", gcalendar.TokenFile)
	fmt.Println("Restart the API so reminders are scheduled in Google Calendar.")
}
