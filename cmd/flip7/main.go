package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/CarterYancey/flip7/internal/config"
	"github.com/CarterYancey/flip7/internal/game"
	"github.com/CarterYancey/flip7/internal/randutil"
	"github.com/CarterYancey/flip7/internal/simulator"
	"github.com/CarterYancey/flip7/internal/strategy"
)

// Games, WinningScore, and Seed are pointers so an explicitly passed flag
// is distinguishable from its default and can override the config file.
type CLI struct {
	Games        *int     `help:"Number of games to run (default 1)"`
	Simulate     bool     `help:"Run quiet simulations and print a strategy summary (implied by --games > 1)"`
	Players      []string `help:"Player specs as Name:strategy (strategies: aggressive, conservative[=stay], flip7[=safe], perfect)"`
	WinningScore *int     `help:"Target total score to win the game (default 200)"`
	Seed         *int64   `help:"RNG seed (default time-based)"`
	Parallel     int      `default:"0" help:"Simulation workers (0 for one per CPU)"`
	Config       string   `type:"path" help:"HCL config file with roster and game settings (explicit flags override it)"`
	Verbose      bool     `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("flip7"),
		kong.Description("Flip 7 game and strategy simulation runner"),
		kong.UsageOnError(),
	)

	level := log.InfoLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	run, err := resolveSettings(cli)
	ctx.FatalIfErrorf(err)

	if cli.Simulate || run.games > 1 {
		runSimulation(ctx, run, cli.Parallel)
		return
	}
	runSingleGame(ctx, run, logger)
}

// settings is the merged view of defaults, config file, and flags
type settings struct {
	games        int
	winningScore int
	seed         int64
	seats        []game.Seat
}

// resolveSettings layers defaults, then the config file, then any flags
// the user actually passed. All strategy specs are parsed here, so a bad
// spec fails before any game state is created.
func resolveSettings(cli CLI) (settings, error) {
	s := settings{
		games:        1,
		winningScore: game.DefaultWinningScore,
	}

	var fileRoster []config.Player
	if cli.Config != "" {
		file, err := config.Load(cli.Config)
		if err != nil {
			return settings{}, err
		}
		if file.Games > 0 {
			s.games = file.Games
		}
		if file.WinningScore > 0 {
			s.winningScore = file.WinningScore
		}
		if file.Seed != 0 {
			s.seed = file.Seed
		}
		fileRoster = file.Players
	}

	if cli.Games != nil {
		s.games = *cli.Games
	}
	if cli.WinningScore != nil {
		s.winningScore = *cli.WinningScore
	}
	if cli.Seed != nil {
		s.seed = *cli.Seed
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}

	seats, err := buildRoster(cli.Players, fileRoster)
	if err != nil {
		return settings{}, err
	}
	s.seats = seats
	return s, nil
}

// buildRoster turns player specs into seats. --players wins over the
// config file roster; with neither, the default eight-player mix plays.
func buildRoster(flagSpecs []string, fileRoster []config.Player) ([]game.Seat, error) {
	if len(flagSpecs) > 0 {
		seats := make([]game.Seat, 0, len(flagSpecs))
		for _, spec := range flagSpecs {
			name, strategySpec, ok := strings.Cut(spec, ":")
			if !ok || name == "" {
				return nil, fmt.Errorf("player spec %q must be in the form Name:strategy", spec)
			}
			strat, err := strategy.Parse(strategySpec)
			if err != nil {
				return nil, fmt.Errorf("player %s: %w", name, err)
			}
			seats = append(seats, game.Seat{Name: name, Strategy: strat})
		}
		return seats, nil
	}

	if len(fileRoster) > 0 {
		seats := make([]game.Seat, 0, len(fileRoster))
		for _, p := range fileRoster {
			strat, err := strategy.Parse(p.Strategy)
			if err != nil {
				return nil, fmt.Errorf("player %s: %w", p.Name, err)
			}
			seats = append(seats, game.Seat{Name: p.Name, Strategy: strat})
		}
		return seats, nil
	}

	return defaultRoster()
}

// defaultRoster is the classic eight-player mix used when no roster is given
func defaultRoster() ([]game.Seat, error) {
	specs := []struct{ name, spec string }{
		{"Alice", "flip7"},
		{"Bob", "conservative=35"},
		{"Charlie", "aggressive"},
		{"Diana", "flip7=45"},
		{"Eugene", "conservative=30"},
		{"Frank", "conservative=27"},
		{"Georgina", "aggressive"},
		{"Pat", "perfect"},
	}
	seats := make([]game.Seat, 0, len(specs))
	for _, s := range specs {
		strat, err := strategy.Parse(s.spec)
		if err != nil {
			return nil, err
		}
		seats = append(seats, game.Seat{Name: s.name, Strategy: strat})
	}
	return seats, nil
}

func runSingleGame(ctx *kong.Context, s settings, logger *log.Logger) {
	g := game.New(game.Config{
		Seats:        s.seats,
		WinningScore: s.winningScore,
		Rand:         randutil.New(s.seed),
		Logger:       logger,
	})
	result, err := g.Play()
	ctx.FatalIfErrorf(err)

	fmt.Printf("\n%s wins with %d points after %d rounds\n",
		result.Winner.Name, result.Winner.Score, result.Rounds)
	for _, st := range result.Standings {
		fmt.Printf("  %-12s %-30s %4d\n", st.Name, st.Strategy, st.Score)
	}
}

func runSimulation(ctx *kong.Context, s settings, parallel int) {
	fmt.Printf("Simulating %d games to %d points (seed: %d)\n", s.games, s.winningScore, s.seed)

	start := time.Now()
	sim := simulator.New(simulator.Config{
		Games:        s.games,
		WinningScore: s.winningScore,
		Seed:         s.seed,
		Parallel:     parallel,
		Seats:        s.seats,
		Logger:       quietLogger(),
	})
	summary, err := sim.Run()
	ctx.FatalIfErrorf(err)

	fmt.Println(summary.Render())
	fmt.Printf("Completed in %v\n", time.Since(start).Round(time.Millisecond))
}

// quietLogger keeps per-game narration out of simulation runs
func quietLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
}
