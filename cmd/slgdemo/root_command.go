package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/abyssdigger/slg"
	"github.com/abyssdigger/slg/cputime"
)

// demoConfig mirrors the optional TOML configuration file. Every field can be
// overridden by the matching command-line flag.
type demoConfig struct {
	ConsoleDepth uint   `toml:"console_depth"`
	FileDepth    uint   `toml:"file_depth"`
	LogFile      string `toml:"log_file"`
	PrintTime    bool   `toml:"print_time"`
	Cycles       int    `toml:"cycles"`
}

func defaultConfig() demoConfig {
	return demoConfig{
		ConsoleDepth: slg.DEFAULT_CONSOLE_DEPTH,
		FileDepth:    slg.DEPTH_UNLIMITED,
		Cycles:       3,
	}
}

func newRootCommand() *cobra.Command {
	cfg := defaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "slgdemo",
		Short: "Narrate a fake nested solver run through an slg.LogStream",
		Long: "slgdemo drives a single slg.LogStream the way a host application would:\n" +
			"it nests scopes around a fake solver loop, keeps verbose inner-scope\n" +
			"lines off the console and retains them in an optional log file.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				raw, err := os.ReadFile(configPath)
				if err != nil {
					return fmt.Errorf("read config: %w", err)
				}
				fileCfg := defaultConfig()
				if err := toml.Unmarshal(raw, &fileCfg); err != nil {
					return fmt.Errorf("parse config %s: %w", configPath, err)
				}
				// Flags win over the file, the file wins over defaults.
				overlayFlags(cmd, &fileCfg, &cfg)
				cfg = fileCfg
			}
			if !cmd.Flags().Changed("console-depth") && configPath == "" &&
				!isatty.IsTerminal(os.Stderr.Fd()) {
				// Non-interactive console: keep only the outer narration.
				cfg.ConsoleDepth = 1
			}
			return runDemo(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().UintVar(&cfg.ConsoleDepth, "console-depth", cfg.ConsoleDepth, "max scope depth shown on the console")
	cmd.Flags().UintVar(&cfg.FileDepth, "file-depth", cfg.FileDepth, "max scope depth written to the log file")
	cmd.Flags().StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file to attach as the second sink")
	cmd.Flags().BoolVar(&cfg.PrintTime, "time", cfg.PrintTime, "prepend elapsed user CPU time to each line")
	cmd.Flags().IntVar(&cfg.Cycles, "cycles", cfg.Cycles, "number of outer solver cycles")
	return cmd
}

// overlayFlags copies every explicitly set flag value from flagCfg over dst.
func overlayFlags(cmd *cobra.Command, dst, flagCfg *demoConfig) {
	if cmd.Flags().Changed("console-depth") {
		dst.ConsoleDepth = flagCfg.ConsoleDepth
	}
	if cmd.Flags().Changed("file-depth") {
		dst.FileDepth = flagCfg.FileDepth
	}
	if cmd.Flags().Changed("log") {
		dst.LogFile = flagCfg.LogFile
	}
	if cmd.Flags().Changed("time") {
		dst.PrintTime = flagCfg.PrintTime
	}
	if cmd.Flags().Changed("cycles") {
		dst.Cycles = flagCfg.Cycles
	}
}

// runDemo builds the process-wide stream and narrates a nested fake solver.
// The log file is opened and closed here: sinks are owned by the host, never
// by the stream.
func runDemo(cfg demoConfig) error {
	log := slg.InitWithParams(os.Stderr, cfg.ConsoleDepth, slg.DEFAULT_FILE_DEPTH)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.Attach(f).SetFileDepth(cfg.FileDepth)
	}

	if cfg.PrintTime {
		src, err := cputime.Source()
		if err != nil {
			return fmt.Errorf("cpu time source: %w", err)
		}
		log.SetTimeSource(src).SetTimePrinting(true)
	}

	log.Println("solver demo starting")
	log.Push("solve")
	for cycle := 1; cycle <= cfg.Cycles; cycle++ {
		log.Print("cycle ", cycle, "/", cfg.Cycles).Endl()
		log.Push("inner")
		residual := 1.0
		for step := 1; residual > 1e-6; step++ {
			residual *= 0.1
			fmt.Fprintf(log, "step %d: residual=%g\n", step, residual)
		}
		if err := log.Pop(); err != nil {
			return err
		}
	}
	if err := log.Pop(); err != nil {
		return err
	}
	log.Println("solver demo finished, stream footprint ~", log.MemoryConsumption(), "bytes")
	return nil
}
