// Command recrate is an interactive batch converter for RAR-archived FLAC
// albums. Running it with no arguments starts the menu session; the
// subcommands are read-only helpers for configuration and tool diagnostics.
package main
