// Command admintoken prints an admin JWT signed with JWT_SECRET.
//
//	admintoken [-ttl 12h] [-sub ops]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	jwtmw "stock_dashboard/internal/platform/jwt"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := jwtmw.LoadConfig()
	ttl := flag.Duration("ttl", cfg.Expiration, "token lifetime")
	sub := flag.String("sub", "admin", "subject claim")
	flag.Parse()

	if cfg.Secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
		os.Exit(1)
	}

	token, exp, err := jwtmw.NewGenerator(cfg.Secret, *ttl).GenerateToken(*sub)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", exp.Format("2006-01-02 15:04:05 MST"))
}
