package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/2beens/fitplan/internal/logging"
	"github.com/2beens/fitplan/internal/plan"
	"github.com/2beens/fitplan/internal/subscription"

	log "github.com/sirupsen/logrus"
)

type previewParams struct {
	days   int
	tier   string
	seed   int64
	day    int
	pretty bool
}

func main() {
	days := flag.Int("days", 7, "plan duration in days (ignored when -tier is set)")
	tier := flag.String("tier", "", "subscription tier [trial | weekly | monthly | half_year | yearly]")
	seed := flag.Int64("seed", 0, "random seed, 0 picks a random one")
	day := flag.Int("day", 0, "print only this day of the plan")
	pretty := flag.Bool("pretty", true, "indent the JSON output")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	// stdout is reserved for the JSON
	log.SetOutput(os.Stderr)
	log.SetLevel(logging.GetLevel(*logLevel))

	if err := run(previewParams{
		days:   *days,
		tier:   *tier,
		seed:   *seed,
		day:    *day,
		pretty: *pretty,
	}, os.Stdout); err != nil {
		log.Fatalf("plan preview: %s", err)
	}
}

func run(params previewParams, out io.Writer) error {
	duration := params.days
	if params.tier != "" {
		tier, err := subscription.ParseTier(params.tier)
		if err != nil {
			return err
		}
		duration = subscription.GenerationDays(tier)
	}

	seed := params.seed
	if seed == 0 {
		var err error
		if seed, err = plan.NewSeed(); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	log.Debugf("generating %d days with seed %d", duration, seed)

	content, err := plan.NewGenerator(plan.NewRandomSource(seed)).Generate(
		duration,
		plan.DefaultExercisePool(),
		plan.DefaultMealPools(),
	)
	if err != nil {
		return err
	}

	var result any = content
	if params.day != 0 {
		p := &plan.Plan{Duration: duration, Workouts: content.Workouts, Meals: content.Meals}
		planDay, err := p.Day(params.day)
		if err != nil {
			if errors.Is(err, plan.ErrDayOutOfRange) {
				return fmt.Errorf("day %d not in 1..%d", params.day, duration)
			}
			return err
		}
		result = planDay
	}

	enc := json.NewEncoder(out)
	if params.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}
