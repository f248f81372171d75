package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/bitebranch/ordering/internal/apiclient"
	"github.com/bitebranch/ordering/internal/components/order"
	"github.com/bitebranch/ordering/internal/shared/config"
	"github.com/bitebranch/ordering/internal/shared/logging"
)

const usage = `Usage:
  orderctl login <email> <password>
  orderctl reset <email>
  orderctl verify <email> <otp>
  orderctl quote <cart.json>`

// orderctl is a terminal consumer of the API client, standing in for the
// mobile app's login and order review screens.
func main() {
	// Missing .env is fine, the config falls back to envDefault values.
	godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, _ := logging.NewLogger(cfg)
	log.Logger = logger

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	client := apiclient.NewClient(cfg, logger)
	ctx := context.Background()

	switch os.Args[1] {
	case "login":
		if len(os.Args) != 4 {
			fmt.Println(usage)
			os.Exit(1)
		}
		res := client.Login(ctx, os.Args[2], os.Args[3])
		if !res.OK() {
			fmt.Fprintln(os.Stderr, res.Message())
			os.Exit(1)
		}
		payload := res.Payload()
		fmt.Printf("Logged in as %s (%s, branch %s)\n", payload.User.Name, payload.User.Role, payload.User.BranchID)
		fmt.Printf("Token: %s\n", payload.Token)

	case "reset":
		if len(os.Args) != 3 {
			fmt.Println(usage)
			os.Exit(1)
		}
		res := client.ResetPassword(ctx, os.Args[2])
		if !res.OK() {
			fmt.Fprintln(os.Stderr, res.Message())
			os.Exit(1)
		}
		fmt.Println(res.Payload().Message)

	case "verify":
		if len(os.Args) != 4 {
			fmt.Println(usage)
			os.Exit(1)
		}
		res := client.VerifyOTP(ctx, os.Args[2], os.Args[3])
		if !res.OK() {
			fmt.Fprintln(os.Stderr, res.Message())
			os.Exit(1)
		}
		fmt.Println(res.Payload().Message)

	case "quote":
		if len(os.Args) != 3 {
			fmt.Println(usage)
			os.Exit(1)
		}
		if err := printQuote(os.Args[2], order.RatesFromConfig(cfg)); err != nil {
			fmt.Fprintf(os.Stderr, "quote: %v\n", err)
			os.Exit(1)
		}

	default:
		fmt.Println(usage)
		os.Exit(1)
	}
}

// printQuote summarizes a cart file locally, the same arithmetic the
// server applies on submission.
func printQuote(path string, rates order.Rates) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var items []order.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	summary := order.Summarize(items, rates)
	fmt.Printf("Items:          %d\n", summary.ItemCount)
	fmt.Printf("Subtotal:       %s\n", cents(summary.SubtotalCents))
	fmt.Printf("Service charge: %s\n", cents(summary.ServiceChargeCents))
	fmt.Printf("Delivery fee:   %s\n", cents(summary.DeliveryFeeCents))
	fmt.Printf("Total:          %s\n", cents(summary.TotalCents))
	return nil
}

func cents(v int64) string {
	return fmt.Sprintf("%d.%02d", v/100, v%100)
}
