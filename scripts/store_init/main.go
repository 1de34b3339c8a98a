package main

import (
	"context"
	"fmt"
	"os"

	"staffdesk/internal/config"
	"staffdesk/internal/db"
	"staffdesk/internal/store"
)

// Force-seeds the default state tree, overwriting whatever is stored.
func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Init error: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	st, err := store.New(ctx, conn, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Init error: %v\n", err)
		os.Exit(1)
	}
	if _, err := st.Seed(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Init error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Store seeded with default state.")
}
