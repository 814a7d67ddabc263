// Package pipeline orchestrates batch conversion: archive discovery,
// per-archive processing, and summary reporting.
//
// The runner isolates failures per archive so one bad archive never aborts
// the batch. Inside a single archive there is no per-track isolation: the
// first failed transcode aborts the remaining tracks of that archive.
package pipeline
