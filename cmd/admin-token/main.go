// Command admin-token mints a JWT for the admin submission routes.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/merlinjoyv/GlowUpAI/internal/config"
	"github.com/merlinjoyv/GlowUpAI/internal/middleware"
)

func main() {
	subject := flag.String("sub", "admin", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg := config.Load()
	if cfg.AdminJWTSecret == "" {
		log.Fatal("✗ ADMIN_JWT_SECRET is not set")
	}

	token, err := middleware.NewAdminAuth(cfg.AdminJWTSecret).GenerateToken(*subject, *ttl)
	if err != nil {
		log.Fatalf("✗ Failed to sign token: %v", err)
	}
	fmt.Println(token)
}
