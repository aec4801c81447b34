package main

import (
	"context"
	"errors"
	"facility-capacity-service/internal/adapters/repositories"
	"facility-capacity-service/internal/domain"
	"facility-capacity-service/internal/platform/db"
	"facility-capacity-service/internal/services"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// plantool runs a configuration search from a YAML scenario file and prints
// the ranked candidates. With DATABASE_URL set, the run is also persisted.
func main() {
	scenarioPath := flag.String("scenario", "", "path to a scenario YAML file (required)")
	top := flag.Int("top", services.DefaultMaxResults, "number of ranked candidates to print")
	schedule := flag.Bool("schedule", false, "print a day-by-day schedule for the best candidate")
	start := flag.String("start", "2025-12-01", "schedule start date (YYYY-MM-DD)")
	days := flag.Int("days", services.DefaultProbeHorizonDays, "schedule length in days")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if *scenarioPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	scenario, err := loadScenario(*scenarioPath)
	if err != nil {
		log.Fatal(err)
	}

	req := services.SearchRequest{
		Params:      scenario.facility(),
		Policy:      scenario.policy(),
		Bounds:      scenario.bounds(),
		HorizonDays: scenario.HorizonDays,
		MaxResults:  *top,
	}

	candidates, err := services.SearchConfigurations(context.Background(), req)
	if errors.Is(err, services.ErrNoViableConfiguration) {
		fmt.Println("No viable configuration within the given bounds. Widen the capacity or count range.")
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	printCandidates(candidates)

	if err := persistRun(req, candidates); err != nil {
		log.Printf("Persist run failed err=%v", err)
	}

	if *schedule {
		startDate, err := time.Parse("2006-01-02", *start)
		if err != nil {
			log.Fatalf("invalid -start date %q: %v", *start, err)
		}
		best := candidates[0]
		records, err := services.BuildSchedule(req.Params, req.Policy, best.CellCapacity, best.CellCount, startDate, *days)
		if err != nil {
			log.Fatal(err)
		}
		printSchedule(best, records)
	}
}

func printCandidates(candidates []domain.CandidateConfiguration) {
	fmt.Printf("%-4s %-10s %-7s %-7s %-11s %-10s %-10s %s\n",
		"#", "CellCap", "Cells", "Cycle", "MaxVol/day", "Headroom", "Idle", "Note")
	for i, c := range candidates {
		note := ""
		if c.NonMonotonic {
			note = "max volume is a lower bound"
		}
		fmt.Printf("%-4d %-10d %-7d %-7d %-11d %-10d %-10d %s\n",
			i+1, c.CellCapacity, c.CellCount, c.Cycle.TotalCalendarDays,
			c.MaxDailyVolume, c.Headroom, c.IdleDays, note)
	}
}

func printSchedule(best domain.CandidateConfiguration, records []domain.DayRecord) {
	fmt.Printf("\nSchedule for %d cells of %d (total capacity %d):\n",
		best.CellCount, best.CellCapacity, best.TotalCapacity())
	for _, rec := range records {
		cells := make([]string, 0, len(rec.Cells))
		for _, entry := range rec.Cells {
			label := entry.Label
			if label == "" {
				label = "-"
			}
			cells = append(cells, fmt.Sprintf("%d:%s", entry.CellNumber, label))
		}
		marker := ""
		if rec.Idle {
			marker = "  IDLE"
		}
		fmt.Printf("%s %-9s in=%-5d out=%-5d backlog=%-5d %s%s\n",
			rec.Date.Format("2006-01-02"), rec.DayName,
			rec.VolumeIn, rec.VolumeOut, rec.Backlog,
			strings.Join(cells, "  "), marker)
	}
}

// persistRun records the search when DATABASE_URL is configured and is a
// no-op otherwise.
func persistRun(req services.SearchRequest, candidates []domain.CandidateConfiguration) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		return nil
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		return fmt.Errorf("persist run: %w", err)
	}
	defer conn.Close()

	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("persist run: %w", err)
	}

	repo := repositories.NewPostgresRunRepository(conn)
	run := domain.NewOptimizationRun(req.Params, req.Bounds, req.HorizonDays, candidates)
	if err := repo.SaveRun(context.Background(), run); err != nil {
		return fmt.Errorf("persist run: %w", err)
	}

	log.Printf("Run persisted run_id=%s candidates=%d", run.RunID, len(candidates))
	return nil
}
