// Command devtoken prints a signed access token for local testing.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gymslot/internal/auth"
	"gymslot/internal/config"
	"gymslot/internal/directory"
)

func main() {
	userID := flag.String("user", "", "directory person id (required)")
	email := flag.String("email", "", "email claim")
	role := flag.String("role", string(directory.RoleMember), "member, training_staff, wellbeing_staff or admin")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	parsed, err := directory.ParseRole(*role)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	token, err := auth.GenerateAccessTokenWithTTL(*userID, *email, string(parsed), cfg.JWTSecret, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sign token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
