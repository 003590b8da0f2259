// Command namesearch is the operator CLI: phonetic key inspection, template
// validation, offline index maintenance, API key management and load
// testing.
//
// Usage:
//
//	namesearch encode Catherine Kathryn
//	namesearch templates validate [--token Name=Value]
//	namesearch index inspect Person --first 5
//	namesearch index optimize Person
//	namesearch apikey create --name my-app --rate-limit 100 --expires-in 720h
//	namesearch loadtest --url http://localhost:8080 --concurrency 20 --duration 1m
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
