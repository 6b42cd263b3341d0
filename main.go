package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/zonelife/driver"
	"github.com/sheikhrachel/zonelife/model"
	"github.com/sheikhrachel/zonelife/utils"
)

func main() {
	var (
		configPath  = flag.String("config", "config.json", "path to a JSON configuration file")
		patternName = flag.String("pattern", "", "built-in starting pattern")
		patternFile = flag.String("pattern-file", "", "pattern file (.json or plaintext), overrides -pattern")
		reverse     = flag.Int("reverse", 0, "reverse interval of the special zone (0 keeps the configured value)")
		interval    = flag.Duration("interval", 0, "time between generations (0 keeps the configured value)")
		generations = flag.Int("generations", -1, "stop after this many generations, 0 runs forever (-1 keeps the configured value)")
		headless    = flag.Bool("headless", false, "print status lines instead of drawing the board")
		every       = flag.Int("every", 10, "headless mode prints every N generations")
	)
	flag.Parse()

	config, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	applyFlags(&config, *patternName, *patternFile, *reverse, *interval, *generations)
	if err = config.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	pattern, err := config.LoadPattern()
	if err != nil {
		log.Fatalf("loading pattern: %v", err)
	}

	clock, err := model.NewClock(config.GridSize, config.ZoneSize, config.ReverseInterval)
	if err != nil {
		log.Fatalf("creating clock: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats := utils.NewStats()
	if *headless {
		displayGameInfo(os.Stdout, config, pattern)
		d := driver.New(clock, pattern, newStatusPrinter(os.Stdout, *every), driver.Options{
			Interval:       config.UpdateInterval,
			MaxGenerations: config.MaxGenerations,
			Logger:         log.New(os.Stderr, "zonelife: ", log.LstdFlags),
			Stats:          stats,
		})
		if err = d.Run(ctx, nil); err != nil {
			log.Fatal(err)
		}
		displayFinalStats(os.Stdout, clock, stats)
		return
	}

	if err = runInteractive(ctx, config, clock, pattern, stats); err != nil {
		log.Fatal(err)
	}
	displayFinalStats(os.Stdout, clock, stats)
}

// loadConfig falls back to the defaults only when the file does not exist
func loadConfig(path string) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			log.Printf("Using default configuration (%s not found)", path)
			return utils.DefaultConfig(), nil
		}
		return config, err
	}
	return config, nil
}

func applyFlags(config *utils.Config, patternName, patternFile string, reverse int, interval time.Duration, generations int) {
	if patternName != "" {
		config.Pattern = patternName
	}
	if patternFile != "" {
		config.PatternFile = patternFile
	}
	if reverse != 0 {
		config.ReverseInterval = reverse
	}
	if interval != 0 {
		config.UpdateInterval = interval
	}
	if generations >= 0 {
		config.MaxGenerations = generations
	}
}

// runInteractive draws on the terminal and reads keys until the driver stops
func runInteractive(ctx context.Context, config utils.Config, clock *model.Clock, pattern model.Pattern, stats *utils.Stats) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runInteractive] creating screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[runInteractive] initializing screen")
	}
	fini := sync.OnceFunc(screen.Fini)
	defer fini()

	renderer := model.NewTerminalRenderer(screen, config.Viewport)
	d := driver.New(clock, pattern, renderer, driver.Options{
		Interval:       config.UpdateInterval,
		MaxGenerations: config.MaxGenerations,
		Stats:          stats,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	commands := make(chan driver.Command)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return driver.PollCommands(ctx, screen, commands)
	})
	eg.Go(func() error {
		// finalizing the screen unblocks PollCommands
		defer fini()
		defer cancel()
		return d.Run(ctx, commands)
	})
	return eg.Wait()
}
