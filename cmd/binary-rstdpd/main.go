// Command binary-rstdpd runs the tick-driven spiking network and its
// coupled world, emitting one line-delimited JSON snapshot per tick on
// stdout and reading start/pause/resume/stop/reset/speed commands from
// stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/evgenyagantaev/binary-rstdp/config"
	"github.com/evgenyagantaev/binary-rstdp/corelog"
	"github.com/evgenyagantaev/binary-rstdp/driver"
	"github.com/evgenyagantaev/binary-rstdp/snapshot"
	"github.com/spf13/cobra"
)

func newEncoder(w io.Writer, ringCap int) *snapshot.Encoder { return snapshot.NewEncoder(w, ringCap) }

var buildVersion = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "binary-rstdpd",
		Short: "Run the R-STDP spiking network simulator",
	}
	root.AddCommand(newRunCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), buildVersion)
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	var (
		configPath      string
		speed           int64
		seed            int64
		logFile         string
		debugAssertions bool
		snapshotRing    int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the simulation loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := config.Overrides{ConfigPath: configPath, LogFile: logFile}
			if cmd.Flags().Changed("speed") {
				overrides.Speed = &speed
			}
			if cmd.Flags().Changed("seed") {
				overrides.Seed = &seed
			}
			if cmd.Flags().Changed("debug-assertions") {
				overrides.DebugAssertions = &debugAssertions
			}

			cfg, err := config.Load(overrides)
			if err != nil {
				return err
			}
			return runSimulation(cfg, snapshotRing, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML file overriding default parameters")
	cmd.Flags().Int64Var(&speed, "speed", 0, "milliseconds to sleep between ticks")
	cmd.Flags().Int64Var(&seed, "seed", 0, "deterministic RNG seed (0 lets the run pick one from wall-clock time)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "path to append log lines to (default: stderr)")
	cmd.Flags().BoolVar(&debugAssertions, "debug-assertions", false, "run the O(N) invariant check after every tick")
	cmd.Flags().IntVar(&snapshotRing, "snapshot-ring", 64, "number of recent snapshots to retain for a fatal diagnostic dump")

	return cmd
}

func runSimulation(cfg config.Config, snapshotRing int, in io.Reader, out io.Writer) error {
	logWriter := io.Writer(os.Stderr)
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("binary-rstdpd: opening log file: %w", err)
		}
		defer f.Close()
		logWriter = f
	}
	return run(cfg, snapshotRing, in, out, corelog.New(logWriter))
}

func run(cfg config.Config, snapshotRing int, in io.Reader, out io.Writer, log *corelog.Sink) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctrl := driver.NewControl(cfg.DelayMS)
	enc := newEncoder(out, snapshotRing)

	go driver.ReadCommands(in, ctrl, log)

	log.Infof("binary-rstdpd: starting run %s, seed=%d, world_size=%d, brain_size=%d",
		log.RunID(), seed, cfg.Params.WorldSize, cfg.Params.BrainSize)

	if err := driver.Run(cfg.Params, seed, ctrl, enc, log); err != nil {
		for _, rec := range enc.Recent() {
			log.Fatalf("recent snapshot: tick=%d reward=%v penalty=%v", rec.T, rec.Reward, rec.Penalty)
		}
		return err
	}
	return nil
}
