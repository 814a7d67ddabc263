// Package services holds the error taxonomy and process-execution plumbing
// shared by the external tool clients.
//
// Tool failures are tagged with sentinel errors so the pipeline can classify
// them at the batch boundary: an extraction or transcode failure carries
// ErrExternalTool, misconfiguration carries ErrConfiguration, and precondition
// problems carry ErrValidation. Wrap builds the chained error message that
// ends up in batch logs, including the component and operation that failed.
package services
