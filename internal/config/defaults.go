package config

const (
	defaultInputDir         = "."
	defaultOutputDir        = "."
	defaultUnrarCommand     = "unrar"
	defaultFFmpegCommand    = "ffmpeg"
	defaultArchiveExtension = ".rar"
	defaultAudioExtension   = ".flac"
	defaultPresetName       = "MP3-v0"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			InputDir:  defaultInputDir,
			OutputDir: defaultOutputDir,
		},
		Tools: Tools{
			Unrar:  defaultUnrarCommand,
			FFmpeg: defaultFFmpegCommand,
		},
		Convert: Convert{
			ArchiveExtension: defaultArchiveExtension,
			AudioExtension:   defaultAudioExtension,
			DefaultPreset:    defaultPresetName,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
