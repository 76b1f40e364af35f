// CLI tool to bulk-import daily log entries into Postgres.
// Input lines are "YYYY-MM-DD weight_kg calories"; blank lines and lines
// starting with # are skipped. Later lines win for a repeated date.
// Usage: go run ./cmd/import-log [file]   (reads stdin without a file)
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"lg/adaptive-tdee-api/metabolism"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	in := io.Reader(os.Stdin)
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	entries, err := parseLog(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing log: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("Nothing to import.")
		return
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	if err := importEntries(ctx, conn, entries); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %d entries (%s to %s).\n",
		len(entries), entries[0].Date, entries[len(entries)-1].Date)

	if err := printStatus(ctx, conn); err != nil {
		fmt.Fprintf(os.Stderr, "Error computing status: %v\n", err)
		os.Exit(1)
	}
}

// parseLog reads entries from r and returns them normalized: ascending by date,
// one per date.
func parseLog(r io.Reader) ([]metabolism.DailyLogEntry, error) {
	var entries []metabolism.DailyLogEntry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return metabolism.NormalizeLog(entries), nil
}

func parseLine(line string) (metabolism.DailyLogEntry, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return metabolism.DailyLogEntry{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	if _, err := time.Parse(metabolism.DateLayout, fields[0]); err != nil {
		return metabolism.DailyLogEntry{}, fmt.Errorf("invalid date %q", fields[0])
	}
	weight, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || weight <= 0 {
		return metabolism.DailyLogEntry{}, fmt.Errorf("invalid weight %q", fields[1])
	}
	calories, err := strconv.Atoi(fields[2])
	if err != nil || calories < 0 {
		return metabolism.DailyLogEntry{}, fmt.Errorf("invalid calories %q", fields[2])
	}
	return metabolism.DailyLogEntry{Date: fields[0], WeightKG: weight, Calories: calories}, nil
}

// importEntries upserts every entry in one transaction.
func importEntries(ctx context.Context, conn *pgx.Conn, entries []metabolism.DailyLogEntry) error {
	return pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, e := range entries {
			batch.Queue(
				`INSERT INTO daily_log (date, weight_kg, calories)
				 VALUES (@date, @weightKG, @calories)
				 ON CONFLICT (date) DO UPDATE SET
					weight_kg  = EXCLUDED.weight_kg,
					calories   = EXCLUDED.calories,
					updated_at = now()`,
				pgx.NamedArgs{"date": e.Date, "weightKG": e.WeightKG, "calories": e.Calories})
		}
		return tx.SendBatch(ctx, batch).Close()
	})
}

// printStatus prints the metabolic status over the full stored log, or a hint
// when no profile has been saved yet.
func printStatus(ctx context.Context, conn *pgx.Conn) error {
	var p metabolism.UserProfile
	var sex, level string
	err := conn.QueryRow(ctx,
		`SELECT sex, age, height_cm, weight_kg, activity_level, heightened_needs
		 FROM user_profile WHERE id = 1`).
		Scan(&sex, &p.Age, &p.HeightCM, &p.WeightKG, &level, &p.HeightenedNeeds)
	if errors.Is(err, pgx.ErrNoRows) {
		fmt.Println("No profile saved yet; status will be available after onboarding.")
		return nil
	}
	if err != nil {
		return err
	}
	p.Sex = metabolism.Sex(sex)
	p.ActivityLevel = metabolism.ActivityLevel(level)

	rows, err := conn.Query(ctx,
		`SELECT to_char(date, 'YYYY-MM-DD'), weight_kg, calories FROM daily_log ORDER BY date ASC`)
	if err != nil {
		return err
	}
	log, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (metabolism.DailyLogEntry, error) {
		var e metabolism.DailyLogEntry
		err := row.Scan(&e.Date, &e.WeightKG, &e.Calories)
		return e, err
	})
	if err != nil {
		return err
	}

	s := metabolism.ComputeStatus(p, log)
	fmt.Printf("\n%s\n", s.Phase.Label())
	fmt.Printf("  Days of data:   %d\n", s.DaysOfData)
	fmt.Printf("  Predicted TDEE: %d kcal\n", s.PredictedExpenditure)
	fmt.Printf("  Actual TDEE:    %d kcal (gap %+d)\n", s.ActualExpenditure, s.Gap)
	fmt.Printf("  This week:      %s, target %d kcal\n",
		s.WeeklyRecommendation.Action.Label(), s.WeeklyRecommendation.TargetCalories)
	return nil
}
