// Command admintoken issues bearer tokens for the lottery admin API.
package main

import (
	"fmt"
	"os"

	"weekly-lottery/config"
	"weekly-lottery/internal/adapter/http/middleware"
	"weekly-lottery/internal/service"

	"github.com/spf13/pflag"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "", "config file (defaults to ./config.yaml)")
		subject    = pflag.StringP("subject", "s", "", "operator name recorded in the admin audit log")
		role       = pflag.StringP("role", "r", middleware.RoleAdmin, "role claim")
		expiry     = pflag.DurationP("expiry", "e", 0, "token lifetime (defaults to jwt.expiry)")
	)
	pflag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "--subject is required")
		pflag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "jwt.secret is not set (LOTTERY_JWT_SECRET)")
		os.Exit(1)
	}
	if *expiry > 0 {
		cfg.JWT.Expiry = *expiry
	}

	tokens := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	token, expiresAt, err := tokens.Generate(*subject, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to issue token: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "token for %s (%s) expires %s\n", *subject, *role, expiresAt.Format("2006-01-02 15:04 MST"))
	fmt.Println(token)
}
