package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/grovergo"
	"github.com/hupe1980/grovergo/alphabet"
	"github.com/hupe1980/grovergo/backend"
	"github.com/hupe1980/grovergo/simulator"
)

type rootFlags struct {
	shots    int
	shards   int
	seed     int64
	remote   bool
	verbose  bool
	alphabet string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "grovergo",
		Short: "Crack hashed passwords with Grover's quantum search",
		Long: `grovergo recovers short passwords from truncated MD5 digests,
racing a classical brute-force scan against a simulated quantum circuit
running Grover's algorithm.

Examples:
  grovergo crack                 # interactive prompt
  grovergo crack -p ab           # crack "ab" non-interactively
  grovergo crack -p ab --remote  # submit to a hardware gateway
  grovergo gates                 # single-gate behavior demos`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().IntVar(&flags.shots, "shots", grovergo.DefaultShots, "measurement shots per execution")
	cmd.PersistentFlags().IntVar(&flags.shards, "shards", 1, "goroutines for the classical scan")
	cmd.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "simulator seed, 0 for random")
	cmd.PersistentFlags().BoolVar(&flags.remote, "remote", false, "also run on the remote gateway from the environment")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "structured logs to stderr")
	cmd.PersistentFlags().StringVar(&flags.alphabet, "alphabet", alphabet.Default().String(), "candidate symbols")

	cmd.AddCommand(
		newCrackCmd(flags),
		newGatesCmd(flags),
	)

	return cmd
}

func (f *rootFlags) cracker() (*grovergo.Cracker, error) {
	a, err := alphabet.New(f.alphabet)
	if err != nil {
		return nil, err
	}

	opts := []grovergo.Option{
		grovergo.WithShots(f.shots),
		grovergo.WithClassicalShards(f.shards),
	}
	if f.verbose {
		opts = append(opts, grovergo.WithLogLevel(slog.LevelDebug))
	}

	return grovergo.New(a, opts...)
}

func (f *rootFlags) engine() *simulator.Engine {
	if f.seed != 0 {
		return simulator.New(simulator.WithSeed(f.seed))
	}
	return simulator.New()
}

func (f *rootFlags) executors(cmd *cobra.Command) ([]backend.Executor, error) {
	execs := []backend.Executor{backend.NewLocal(f.engine())}

	if f.remote {
		remote, err := backend.FromEnv(cmd.Context())
		if err != nil {
			return nil, err
		}
		execs = append(execs, remote)
	}

	return execs, nil
}
