package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sazonapp/pos_backend/internal/platform/config"
)

// runsql executes one SQL file or literal statement against the configured
// database and prints the result rows. Operational one-offs only.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: runsql <file.sql | statement>")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.DatabaseURL == "" {
		logger.Error("PGSQL_URL is not set")
		os.Exit(1)
	}

	stmt := os.Args[1]
	if raw, err := os.ReadFile(stmt); err == nil {
		stmt = string(raw)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, stmt)
	if err != nil {
		logger.Error("Query failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	fmt.Println(strings.Join(names, "\t"))

	count := 0
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			logger.Error("Failed to read row", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cells := make([]string, len(values))
		for i, v := range values {
			if v == nil {
				cells[i] = "NULL"
				continue
			}
			cells[i] = fmt.Sprintf("%v", v)
		}
		fmt.Println(strings.Join(cells, "\t"))
		count++
	}
	if rows.Err() != nil {
		logger.Error("Row iteration failed", slog.String("error", rows.Err().Error()))
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "(%d rows)\n", count)
}
