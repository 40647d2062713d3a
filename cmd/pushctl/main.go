// Command pushctl provisions credentials for the push delivery engine.
//
//	pushctl vapid-keys          print a fresh VAPID key pair as env assignments
//	pushctl service-token NAME  mint a bearer token for an internal caller
package main

import (
	"fmt"
	"io"
	"os"

	"push-delivery-engine/config"
	"push-delivery-engine/internal/adapter/push"
	"push-delivery-engine/internal/core/ports"
	"push-delivery-engine/internal/service"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "pushctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: pushctl vapid-keys | service-token NAME")
	}

	switch args[0] {
	case "vapid-keys":
		pub, priv, err := push.GenerateVAPIDKeys()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "PDE_PUSH_VAPID_PUBLIC_KEY=%s\nPDE_PUSH_VAPID_PRIVATE_KEY=%s\n", pub, priv)
		return nil

	case "service-token":
		if len(args) != 2 || args[1] == "" {
			return fmt.Errorf("usage: pushctl service-token NAME")
		}
		cfg, err := config.Load(os.Getenv("PDE_CONFIG"))
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cfg.Auth.ServiceSecret == "" {
			return fmt.Errorf("auth.service_secret is not set")
		}
		var tokens ports.TokenService = service.NewJWTTokenService(cfg.Auth.ServiceSecret, cfg.Auth.TokenExpiry, cfg.Auth.Issuer)
		return printToken(tokens, args[1], out)

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printToken(tokens ports.TokenService, name string, out io.Writer) error {
	token, expiry, err := tokens.Generate(name)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}
	fmt.Fprintf(out, "%s\n# expires %s\n", token, expiry.UTC().Format("2006-01-02T15:04:05Z"))
	return nil
}
