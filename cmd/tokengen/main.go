// Command tokengen issues an access token for an identity, signed with the
// server's secret. It stands in for an identity provider in development.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/stakemarket/internal/server/auth"
)

func main() {
	var (
		user   string
		secret string
		ttl    time.Duration
	)

	fs := flag.NewFlagSet("tokengen", flag.ExitOnError)
	fs.StringVar(&user, "u", "", "identity to issue the token for")
	fs.StringVar(&secret, "k", os.Getenv("STAKEMARKET_SECRET_KEY"), "signing secret (default $STAKEMARKET_SECRET_KEY)")
	fs.DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = fs.Parse(os.Args[1:])

	if user == "" || secret == "" {
		fs.Usage()
		os.Exit(2)
	}

	token, err := auth.GenerateToken(user, []byte(secret), ttl)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Println(token)
}
