package crypt

// Phase identifies which pass produced a Result.
type Phase string

const (
	// PhaseManifest is the pass over manifest entries.
	PhaseManifest Phase = "manifest"
	// PhaseStray is the pass over files found on disk.
	PhaseStray Phase = "stray"
)

// Status is the outcome of a single file.
type Status string

const (
	// StatusProcessed means the keystream was applied.
	StatusProcessed Status = "processed"
	// StatusCopied means the file was copied verbatim.
	StatusCopied Status = "copied"
	// StatusSkipped means the file was not touched.
	StatusSkipped Status = "skipped"
	// StatusFailed means processing started but did not complete.
	StatusFailed Status = "failed"
)

// Result represents the outcome of processing a single file.
type Result struct {
	Phase  Phase
	Status Status

	// Input file path
	Input string

	// Output file path, empty when skipped
	Output string

	// Digest used as keystream seed or storage name
	Digest string

	// Output file size in bytes
	Size int64

	// Skip reason or failure
	Error error
}

// Summary aggregates the results of a run.
type Summary struct {
	Results []Result

	Processed int
	Copied    int
	Skipped   int
	Failed    int

	// Bytes is the total size of written outputs.
	Bytes int64
}

// Add records r and updates the counters.
func (s *Summary) Add(r Result) {
	s.Results = append(s.Results, r)

	switch r.Status {
	case StatusProcessed:
		s.Processed++
		s.Bytes += r.Size
	case StatusCopied:
		s.Copied++
		s.Bytes += r.Size
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
}

// Written returns the number of files that produced an output.
func (s *Summary) Written() int {
	return s.Processed + s.Copied
}
