package shell

import (
	"fmt"
	"time"
)

// NotConnectedError indicates an operation was attempted on a session without
// an established connection.
type NotConnectedError struct {
	Op string
}

func (e *NotConnectedError) Error() string {
	return fmt.Sprintf("%s: not connected", e.Op)
}

// HandshakeError indicates the device never presented a CLI prompt while
// connecting.
type HandshakeError struct {
	Attempts int
}

func (e *HandshakeError) Error() string {
	return fmt.Sprintf("handshake failed after %d attempts: no prompt from device", e.Attempts)
}

// ReadTimeoutError indicates a response marker did not appear within its
// deadline. Buffer carries everything received up to the timeout, which
// usually shows what the device sent instead.
type ReadTimeoutError struct {
	Marker  string
	Buffer  string
	Timeout time.Duration
}

func (e *ReadTimeoutError) Error() string {
	return fmt.Sprintf("timed out after %v waiting for %q (%d bytes buffered)",
		e.Timeout, e.Marker, len(e.Buffer))
}

// CommandError indicates a CLI command could not be completed: the write
// failed, the echo never came back, or the prompt never returned.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// VerificationError indicates a storage operation's status check reported a
// missing or inaccessible path.
type VerificationError struct {
	Path     string
	Response string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification failed for %s: %s", e.Path, e.Response)
}

// LoaderError indicates the application loader rejected a command.
type LoaderError struct {
	Command  string
	Response string
}

func (e *LoaderError) Error() string {
	return fmt.Sprintf("loader command %q failed: %s", e.Command, e.Response)
}
