package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"demondeduce/internal/render"
	"demondeduce/internal/scenario"
	"demondeduce/internal/server"
	"demondeduce/internal/solver"
	"demondeduce/internal/watch"
)

var rootCmd = &cobra.Command{
	Use:   "demondeduce",
	Short: "Hidden-role deduction solver: enumerate every world consistent with the table",
}

var (
	flagWorkers         int
	flagMaxWorlds       int
	flagStrict          bool
	flagAssignmentsOnly bool
	flagNoColor         bool
	flagVerbose         bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [<deck> <villagers> <outcasts> <minions> <demons> [seat ...]]",
	Short: "Solve one scenario from arguments or a YAML file",
	RunE:  runSolve,
}

var flagScenarioFile string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the clipboard and re-solve pasted scenarios",
	RunE:  runWatch,
}

var flagInterval time.Duration

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the shared-table WebSocket server",
	RunE:  runServe,
}

var flagPort int

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagWorkers, "workers", 0, "solver goroutines (0 = one per CPU)")
	flags.IntVar(&flagMaxWorlds, "max-worlds", 0, "stop after this many worlds (0 = unlimited)")
	flags.BoolVar(&flagStrict, "strict", false, "fail on observations the solver cannot enforce")
	flags.BoolVar(&flagAssignmentsOnly, "assignments-only", false, "count assignments instead of ability resolutions")
	flags.BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	flags.BoolVar(&flagVerbose, "verbose", false, "debug logging")

	solveCmd.Flags().StringVar(&flagScenarioFile, "file", "", "YAML scenario file instead of arguments")
	watchCmd.Flags().DurationVar(&flagInterval, "interval", 500*time.Millisecond, "clipboard poll interval")
	serveCmd.Flags().IntVar(&flagPort, "port", 8080, "server port")

	rootCmd.AddCommand(solveCmd, watchCmd, serveCmd)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cobra.OnInitialize(func() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if flagVerbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	})

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("execute demondeduce command")
	}
}

func solverOptions() solver.Options {
	opts := solver.DefaultOptions()
	opts.Workers = flagWorkers
	opts.MaxWorlds = flagMaxWorlds
	opts.Strict = flagStrict
	opts.CountResolutions = !flagAssignmentsOnly
	return opts
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		p   *solver.Puzzle
		err error
	)
	if flagScenarioFile != "" {
		p, err = scenario.LoadFile(flagScenarioFile)
	} else {
		p, err = scenario.Parse(args)
	}
	if err != nil {
		return err
	}

	res, err := solver.Solve(ctx, p, solverOptions())
	if err != nil && res == nil {
		return err
	}

	rd := render.New(!flagNoColor)
	os.Stdout.WriteString(rd.Puzzle(p))
	os.Stdout.WriteString(rd.Result(res))
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := watch.New(flagInterval, solverOptions(), render.New(!flagNoColor), os.Stdout)
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(flagPort, solverOptions()).Start(ctx)
}
