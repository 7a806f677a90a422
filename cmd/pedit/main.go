package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/itarato/peditor/internal/config"
	"github.com/itarato/peditor/internal/logger"
	"github.com/itarato/peditor/internal/textview"
)

var (
	configPath string
	debug      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "pedit <file>",
		Short:   "Open a file and report buffer stats",
		Long:    `pedit loads a file into a TextView and prints its buffer stats. It does not own terminal I/O; it exercises the editor core end-to-end.`,
		Args:    cobra.ExactArgs(1),
		RunE:    runOpen,
		Version: "dev",
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/pedit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runOpen(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfigFromPath(configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := logger.LevelInfo
	if debug || cfg.Debug {
		level = logger.LevelDebug
	}
	logger.InitLogger(level, cfg.LogFile)
	defer logger.Close()

	tv := textview.New(
		textview.WithTabSize(cfg.TabSize),
		textview.WithLogger(logger.Log),
	)

	path := args[0]
	if err := tv.LoadFile(path); err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}

	stats := tv.BufferStats()
	fmt.Printf("file:       %s\n", stats.FilePath)
	fmt.Printf("lines:      %d\n", stats.LineCount)
	fmt.Printf("cursor:     %d:%d\n", stats.CursorRow, stats.CursorCol)
	fmt.Printf("dirty:      %v\n", stats.Dirty)
	fmt.Printf("undo depth: %d\n", stats.UndoDepth)
	fmt.Printf("redo depth: %d\n", stats.RedoDepth)
	fmt.Printf("summary:    %s\n", stats.Summary())
	return nil
}
