package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-admin/config"
	"github.com/oksasatya/go-catalog-admin/pkg/helpers"
)

// token mints a bearer token for the admin API using JWT_ACCESS_SECRET.
//
//	go run ./cmd/token -sub ops@example.com -role admin -ttl 8h
func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()

	subject := flag.String("sub", "", "token subject (required)")
	role := flag.String("role", "admin", "role claim")
	ttl := flag.Duration("ttl", cfg.AccessTTL, "token lifetime")
	flag.Parse()

	if *subject == "" {
		flag.Usage()
		os.Exit(2)
	}

	token, exp, err := helpers.NewJWTManager(cfg.JWTAccessSecret, *ttl).GenerateAccessToken(*subject, *role)
	if err != nil {
		logrus.Fatalf("sign token: %v", err)
	}
	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", exp.UTC().Format(time.RFC3339))
}
