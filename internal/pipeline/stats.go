package pipeline

// Stats aggregates the outcome of one batch run.
type Stats struct {
	// Archives is the number of qualifying archives discovered.
	Archives int
	// Converted is the total number of tracks transcoded across all archives.
	Converted int
	// Skipped counts archives that contained no audio files.
	Skipped int
	// Failed counts archives whose extraction or transcoding failed.
	Failed int
}
