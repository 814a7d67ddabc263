package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"recrate/internal/logging"
	"recrate/internal/naming"
	"recrate/internal/preset"
	"recrate/internal/services"
	"recrate/internal/services/ffmpeg"
	"recrate/internal/workspace"
)

// outputExtension is the suffix of every transcoded track.
const outputExtension = ".mp3"

// archiveJob is the transient unit of work for one archive.
type archiveJob struct {
	archivePath string
	outputRoot  string
	preset      preset.Preset
}

// processArchive runs the full workflow for one archive: derive the album
// directory name, extract into a workspace, discover audio files, transcode
// each, and clean up. The workspace is removed on every exit path via the
// deferred cleanup. The first failed transcode aborts the remaining tracks.
// Returns the number of tracks converted; zero with a nil error means the
// archive held no audio files.
func (r *Runner) processArchive(ctx context.Context, logger *slog.Logger, job archiveJob) (int, error) {
	name := filepath.Base(job.archivePath)
	albumDir := naming.DeriveAlbumDir(job.archivePath, job.preset.Name)

	ws, err := workspace.Create(job.archivePath)
	if err != nil {
		return 0, services.Wrap(services.ErrValidation, "pipeline", "workspace", name, err)
	}
	defer func() {
		if err := ws.Remove(); err != nil {
			logger.Warn("workspace removal failed",
				logging.String("path", ws.Path),
				logging.Error(err),
			)
		}
	}()

	logger.Info("extracting archive", logging.String("archive", name))
	if err := r.extractor.Extract(ctx, job.archivePath, ws.Path); err != nil {
		return 0, err
	}

	audio, err := ws.AudioFiles(r.audioExt)
	if err != nil {
		return 0, services.Wrap(services.ErrValidation, "pipeline", "discover audio", name, err)
	}
	if len(audio) == 0 {
		logger.Info("no audio files found, skipping conversion",
			logging.String("archive", name),
			logging.String("extension", r.audioExt),
		)
		return 0, nil
	}

	destDir := filepath.Join(job.outputRoot, albumDir)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return 0, services.Wrap(services.ErrConfiguration, "pipeline", "output",
			fmt.Sprintf("create album directory %q", destDir), err)
	}

	logger.Info("converting tracks",
		logging.String("archive", name),
		logging.Int("tracks", len(audio)),
		logging.String("album_dir", albumDir),
	)
	for i, input := range audio {
		output := filepath.Join(destDir, trackOutputName(input))
		if err := r.transcoder.Transcode(ctx, ffmpeg.Request{
			Input:        input,
			Output:       output,
			QualityFlag:  job.preset.QualityFlag,
			QualityValue: job.preset.QualityValue,
		}); err != nil {
			// i tracks finished before the failure; the rest are abandoned.
			return i, err
		}
	}

	logger.Info("archive converted",
		logging.String("archive", name),
		logging.Int("tracks", len(audio)),
		logging.String("album_dir", albumDir),
	)
	return len(audio), nil
}

// trackOutputName substitutes the audio extension with the MP3 one.
func trackOutputName(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + outputExtension
}
