package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "full":
		fullCmd(apiURL, args)
	case "sessions":
		sessionsCmd(apiURL, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Stats Seeder - Development tool for populating demo data

USAGE:
  seeder <command> [options]

COMMANDS:
  full      Create demo players and fill each with a history of sessions
  sessions  Log random sessions for an existing user
  help      Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)

EXAMPLES:
  # Create 4 demo players with 30 days of practice history each
  seeder full

  # Create 8 players with 90 days of history
  seeder full --players=8 --days=90

  # Add 14 days of sessions to an existing account
  seeder sessions --username=shooter --password=password123 --days=14`)
}

var demoNames = []string{
	"Ray Allen", "Steph Curry", "Reggie Miller", "Klay Thompson",
	"Damian Lillard", "Kyle Korver", "Diana Taurasi", "Sue Bird",
	"Sabrina Ionescu", "Trae Young",
}

func fullCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("full", flag.ExitOnError)
	players := fs.Int("players", 4, "Number of demo players to create")
	days := fs.Int("days", 30, "Days of practice history per player")
	fs.Parse(args)

	if *players < 1 || *players > len(demoNames) {
		fmt.Printf("Error: --players must be between 1 and %d\n", len(demoNames))
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)

	for i := 0; i < *players; i++ {
		name := demoNames[i]
		username := fmt.Sprintf("demo_%d_%d", time.Now().Unix(), i)

		auth, err := client.Register(username, "demopassword", name)
		if err != nil {
			fmt.Printf("Error: failed to register %s: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("Created %s (%s)\n", name, username)

		count, err := seedSessions(client, auth, *days)
		if err != nil {
			fmt.Printf("Error: failed to seed sessions for %s: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("  logged %d sessions over %d days\n", count, *days)
	}

	fmt.Println("\nDone. Hit /api/v1/stats/compare with the new user ids to see the leaderboard.")
}

func sessionsCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("sessions", flag.ExitOnError)
	username := fs.String("username", "", "Account username")
	password := fs.String("password", "", "Account password")
	days := fs.Int("days", 14, "Days of history to generate")
	fs.Parse(args)

	if *username == "" || *password == "" {
		fmt.Println("Error: --username and --password are required")
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)

	auth, err := client.Login(*username, *password)
	if err != nil {
		fmt.Printf("Error: login failed: %v\n", err)
		os.Exit(1)
	}

	count, err := seedSessions(client, auth, *days)
	if err != nil {
		fmt.Printf("Error: failed to seed sessions: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Logged %d sessions for %s\n", count, auth.User.DisplayName)
}

// seedSessions writes a randomized practice history ending today. Roughly
// two of every three days get a session, so trend charts have gaps.
func seedSessions(client *APIClient, auth *AuthResponse, days int) (int, error) {
	count := 0
	today := time.Now().UTC()

	for i := days - 1; i >= 0; i-- {
		if rand.Intn(3) == 0 {
			continue
		}

		ftAttempted := 10 + rand.Intn(40)
		tpAttempted := 10 + rand.Intn(30)

		_, err := client.CreateSession(auth.AccessToken, SessionRequest{
			UserID:                 auth.User.ID,
			SessionDate:            today.AddDate(0, 0, -i).Format("2006-01-02"),
			FreeThrowsMade:         int(float64(ftAttempted) * (0.6 + rand.Float64()*0.35)),
			FreeThrowsAttempted:    ftAttempted,
			ThreePointersMade:      int(float64(tpAttempted) * (0.25 + rand.Float64()*0.4)),
			ThreePointersAttempted: tpAttempted,
		})
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
