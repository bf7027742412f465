// scripts/gcal-auth/main.go
//
// Run this ONCE locally to authorize Google Calendar access and
// generate token.json.
//
// Usage:
//   go run scripts/gcal-auth/main.go [credentials.json] [token.json]
//
// It prints a browser URL, you log in with your Google account,
// paste the authorization code, and token.json will be saved.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	calendar "google.golang.org/api/calendar/v3"

	"calendar-clipper/pkg/credential"
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

	provider, err := credential.NewOAuthProviderFromFile(credsPath, tokenPath, calendar.CalendarEventsScope)
	if err != nil {
		log.Fatalf("Failed to load credentials %q: %v\nMake sure it is an OAuth Desktop App credentials file.", credsPath, err)
	}

	ctx := context.Background()

	// Already authorized? Nothing to do.
	if _, err := provider.Token(ctx, false); err == nil {
		fmt.Printf("%s is already valid, nothing to do.\n", tokenPath)
		return
	}

	_, err = provider.Token(ctx, true)
	var authErr *credential.AuthorizationRequiredError
	if !errors.As(err, &authErr) {
		log.Fatalf("Failed to start authorization: %v", err)
	}

	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open the following URL in a browser and log in:")
	fmt.Println()
	fmt.Println(authErr.URL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	if err := provider.Exchange(ctx, code); err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", tokenPath)
	fmt.Println("Restart the service to pick it up.")
}
