package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"recrate/internal/deps"
	"recrate/internal/logging"
	"recrate/internal/menu"
	"recrate/internal/pipeline"
	"recrate/internal/services/ffmpeg"
	"recrate/internal/services/unrar"
)

// runInteractive wires the full session: config, logger, tool clients, batch
// runner, and the menu controller. An interrupt cancels the in-flight tool
// invocation; the deferred workspace cleanup still runs.
func runInteractive(cmd *cobra.Command, cmdCtx *commandContext) error {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:    cfg.Logging.Level,
		Format:   cfg.Logging.Format,
		FilePath: cfg.Paths.LogFile,
		Color:    logging.ColorEnabled(),
	})
	if err != nil {
		return err
	}

	if missing := deps.Missing(deps.CheckBinaries(deps.Requirements(cfg))); len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, status := range missing {
			names = append(names, status.Name)
		}
		fmt.Fprintf(cmd.OutOrStdout(),
			"Warning: missing tools: %s (see `recrate deps`). Conversion will fail until they are installed.\n",
			strings.Join(names, ", "))
	}

	extractor, err := unrar.New(cfg.Tools.Unrar)
	if err != nil {
		return err
	}
	transcoder, err := ffmpeg.New(cfg.Tools.FFmpeg)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(extractor, transcoder, logger,
		pipeline.WithArchiveExtension(cfg.Convert.ArchiveExtension),
		pipeline.WithAudioExtension(cfg.Convert.AudioExtension),
		pipeline.WithProgress(logging.ColorEnabled()),
	)

	session := pipeline.Session{
		InputDir:  cfg.Paths.InputDir,
		OutputDir: cfg.Paths.OutputDir,
		Preset:    cfg.DefaultPreset(),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	controller := menu.New(session, runner, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	return controller.Run(ctx)
}
