package shell

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNotConnectedError(t *testing.T) {
	err := &NotConnectedError{Op: "list directory"}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "not connected") {
		t.Errorf("error message should contain 'not connected', got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "list directory") {
		t.Errorf("error message should contain the operation, got: %s", errMsg)
	}
}

func TestHandshakeError(t *testing.T) {
	err := &HandshakeError{Attempts: 3}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "3 attempts") {
		t.Errorf("error message should contain the attempt count, got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "no prompt") {
		t.Errorf("error message should name the missing prompt, got: %s", errMsg)
	}
}

func TestReadTimeoutError(t *testing.T) {
	err := &ReadTimeoutError{
		Marker:  ">",
		Buffer:  "partial response",
		Timeout: 5 * time.Second,
	}

	errMsg := err.Error()

	if !strings.Contains(errMsg, `">"`) {
		t.Errorf("error message should contain the marker, got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "5s") {
		t.Errorf("error message should contain the timeout, got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "16 bytes") {
		t.Errorf("error message should contain the buffered size, got: %s", errMsg)
	}
}

func TestCommandError(t *testing.T) {
	inner := &ReadTimeoutError{Marker: ">", Timeout: time.Second}
	err := &CommandError{Command: "storage list /ext", Err: inner}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "storage list /ext") {
		t.Errorf("error message should contain the command, got: %s", errMsg)
	}

	var toErr *ReadTimeoutError
	if !errors.As(err, &toErr) {
		t.Error("CommandError should unwrap to the underlying timeout")
	}
}

func TestVerificationError(t *testing.T) {
	err := &VerificationError{
		Path:     "/ext/a.txt",
		Response: "Error: file/dir not exist",
	}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "/ext/a.txt") {
		t.Errorf("error message should contain the path, got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "not exist") {
		t.Errorf("error message should contain the device response, got: %s", errMsg)
	}
}

func TestLoaderErrorMessage(t *testing.T) {
	err := &LoaderError{
		Command:  `loader open "Ghost"`,
		Response: "Error: application not found",
	}

	errMsg := err.Error()

	if !strings.Contains(errMsg, `loader open "Ghost"`) {
		t.Errorf("error message should contain the command, got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "application not found") {
		t.Errorf("error message should contain the response, got: %s", errMsg)
	}
}
