package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"recrate/internal/logging"
	"recrate/internal/preset"
	"recrate/internal/services"
	"recrate/internal/services/ffmpeg"
)

// lockFileName guards the output root so two batches cannot write into it
// concurrently.
const lockFileName = ".recrate.lock"

// Session is the mutable configuration owned by the menu controller for the
// lifetime of the process. The runner receives a copy per batch.
type Session struct {
	InputDir  string
	OutputDir string
	Preset    preset.Preset
}

// Extractor unpacks one archive into a destination directory.
type Extractor interface {
	Extract(ctx context.Context, archivePath, destDir string) error
}

// Transcoder encodes one audio file to MP3.
type Transcoder interface {
	Transcode(ctx context.Context, req ffmpeg.Request) error
}

// Option configures the runner.
type Option func(*Runner)

// WithArchiveExtension overrides the archive suffix matched in the input
// directory. The value is compared case-insensitively.
func WithArchiveExtension(ext string) Option {
	return func(r *Runner) {
		if strings.TrimSpace(ext) != "" {
			r.archiveExt = strings.ToLower(strings.TrimSpace(ext))
		}
	}
}

// WithAudioExtension overrides the audio suffix searched inside workspaces.
func WithAudioExtension(ext string) Option {
	return func(r *Runner) {
		if strings.TrimSpace(ext) != "" {
			r.audioExt = strings.ToLower(strings.TrimSpace(ext))
		}
	}
}

// WithProgress toggles the terminal progress bar. Tests and non-interactive
// runs disable it.
func WithProgress(show bool) Option {
	return func(r *Runner) {
		r.showProgress = show
	}
}

// Runner drives one batch of archive conversions.
type Runner struct {
	extractor    Extractor
	transcoder   Transcoder
	logger       *slog.Logger
	archiveExt   string
	audioExt     string
	showProgress bool
}

// NewRunner constructs a batch runner.
func NewRunner(extractor Extractor, transcoder Transcoder, logger *slog.Logger, opts ...Option) *Runner {
	r := &Runner{
		extractor:  extractor,
		transcoder: transcoder,
		logger:     logging.NewComponentLogger(logger, "pipeline"),
		archiveExt: ".rar",
		audioExt:   ".flac",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run enumerates qualifying archives in the session's input directory and
// processes each in turn. A failing archive is logged and skipped; the batch
// always continues to the next one. Zero qualifying archives is not an error
// and causes no directory creation. The returned error covers only batch
// preconditions (unreadable input directory, unwritable output root, a lock
// held by another batch), never individual archive failures.
func (r *Runner) Run(ctx context.Context, session Session) (Stats, error) {
	var stats Stats

	archives, err := r.discoverArchives(session.InputDir)
	if err != nil {
		return stats, err
	}
	if len(archives) == 0 {
		r.logger.Info("no archives found",
			logging.String("input_dir", session.InputDir),
			logging.String("extension", r.archiveExt),
		)
		return stats, nil
	}
	stats.Archives = len(archives)

	if err := os.MkdirAll(session.OutputDir, 0o755); err != nil {
		return stats, services.Wrap(services.ErrConfiguration, "pipeline", "run",
			fmt.Sprintf("create output directory %q", session.OutputDir), err)
	}

	lock := flock.New(filepath.Join(session.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return stats, services.Wrap(services.ErrConfiguration, "pipeline", "run", "acquire output lock", err)
	}
	if !locked {
		return stats, services.Wrap(services.ErrValidation, "pipeline", "run",
			fmt.Sprintf("another batch is already writing to %q", session.OutputDir), nil)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Warn("failed to release output lock", logging.Error(err))
		}
	}()

	runID := uuid.NewString()
	runLogger := r.logger.With(logging.String("run_id", runID))
	runLogger.Info("batch started",
		logging.Int("archives", len(archives)),
		logging.String("input_dir", session.InputDir),
		logging.String("output_dir", session.OutputDir),
		logging.String("preset", session.Preset.Name),
	)

	bar := progressbar.NewOptions(len(archives),
		progressbar.OptionSetDescription("Processing archives"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetVisibility(r.showProgress),
		progressbar.OptionClearOnFinish(),
	)

	start := time.Now()
	for _, archive := range archives {
		if ctx.Err() != nil {
			runLogger.Warn("batch interrupted", logging.Error(ctx.Err()))
			break
		}

		converted, err := r.processArchive(ctx, runLogger, archiveJob{
			archivePath: archive,
			outputRoot:  session.OutputDir,
			preset:      session.Preset,
		})
		switch {
		case err != nil:
			stats.Failed++
			runLogger.Error("archive failed",
				logging.String("archive", filepath.Base(archive)),
				logging.Error(err),
			)
		case converted == 0:
			stats.Skipped++
		default:
			stats.Converted += converted
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	runLogger.Info("batch complete",
		logging.Int("archives", stats.Archives),
		logging.Int("tracks_converted", stats.Converted),
		logging.Int("archives_skipped", stats.Skipped),
		logging.Int("archives_failed", stats.Failed),
		logging.Duration("elapsed", time.Since(start).Round(time.Second)),
	)
	return stats, nil
}

// discoverArchives lists direct entries of inputDir whose extension matches
// the archive suffix case-insensitively. The walk is non-recursive.
func (r *Runner) discoverArchives(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "pipeline", "discover",
			fmt.Sprintf("read input directory %q", inputDir), err)
	}

	var archives []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), r.archiveExt) {
			archives = append(archives, filepath.Join(inputDir, entry.Name()))
		}
	}
	sort.Strings(archives)
	return archives, nil
}
