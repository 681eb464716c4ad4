package shell

import "time"

// Transfer phases reported through ProgressCallback.
const (
	// PhasePreparing covers everything before payload bytes flow: clearing
	// state, creating the parent directory, entering capture mode
	PhasePreparing = "preparing"

	// PhaseStreaming is the payload transfer itself
	PhaseStreaming = "streaming"

	// PhaseVerifying is the post-write status check
	PhaseVerifying = "verifying"

	// PhaseComplete is reported once after a transfer succeeds
	PhaseComplete = "complete"
)

// Progress contains information about an in-flight file transfer.
// Passed to ProgressCallback during WriteFile.
type Progress struct {
	// Phase describes the current transfer phase:
	//   "preparing" - Entering raw capture mode
	//   "streaming" - Sending payload bytes
	//   "verifying" - Checking the written file's status
	//   "complete"  - Transfer finished successfully
	Phase string

	// BytesSent is the number of payload bytes sent so far
	BytesSent int

	// TotalBytes is the payload size
	TotalBytes int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// ElapsedTime is the time elapsed since the transfer started
	ElapsedTime time.Duration
}

// ProgressCallback is called during file transfers to report progress.
// Implementations should return quickly to avoid blocking the transfer.
//
// Example:
//
//	sess := shell.New(port,
//	    shell.WithProgressCallback(func(p shell.Progress) {
//	        fmt.Printf("[%s] %.1f%%\n", p.Phase, p.Percentage)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the session.
// This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	sess := shell.New(port, shell.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
