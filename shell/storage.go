package shell

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/moffa90/go-flipper/protocol"
)

// parentDir returns the directory component of a device path, or "" when
// there is nothing worth creating.
func parentDir(p string) string {
	dir := path.Dir(p)
	if dir == "." || dir == "/" || dir == p {
		return ""
	}
	return dir
}

// WriteFile writes content to filePath on the device and verifies the result.
//
// The transfer runs over the CLI's raw capture mode: the storage write
// command switches the shell into capture, announced by a fixed banner; the
// payload streams verbatim; an interrupt byte ends the capture and the shell
// confirms with its post-capture prompt. The firmware needs settle pauses
// between these stages. Afterwards the file's status is queried, and failure
// keywords in the answer raise a VerificationError.
//
// Example:
//
//	err := sess.WriteFile(ctx, "/ext/badusb/demo.txt", []byte("hello"))
func (s *Session) WriteFile(ctx context.Context, filePath string, content []byte) error {
	dev, acc, err := s.handles("write file")
	if err != nil {
		return s.fail(err)
	}

	start := time.Now()
	s.logInfo("writing file", "path", filePath, "size", len(content))
	s.reportProgress(Progress{Phase: PhasePreparing, TotalBytes: len(content)})

	acc.clear()

	// The storage write command cannot create missing directories. The
	// mkdir response is ignored: it errors when the directory already
	// exists, and the verification below catches the case where the
	// parent could not be created at all.
	if parent := parentDir(filePath); parent != "" {
		if _, err := s.writeCommand(ctx, dev, acc, protocol.BuildStorageMkdirCmd(parent)); err != nil {
			return s.fail(err)
		}
		acc.clear()
	}

	writeCmd := protocol.BuildStorageWriteCmd(filePath)
	if err := s.write(ctx, dev, writeCmd+protocol.CRLF); err != nil {
		return s.fail(&CommandError{Command: writeCmd, Err: err})
	}
	if _, err := s.readUntil(ctx, acc, protocol.CaptureBanner, s.config.ReadTimeout); err != nil {
		return s.fail(&CommandError{Command: writeCmd, Err: err})
	}

	if err := s.setCapture(captureStreaming); err != nil {
		return s.fail(err)
	}
	if err := s.streamPayload(ctx, dev, content, start); err != nil {
		return s.fail(&CommandError{Command: writeCmd, Err: err})
	}
	if err := sleepCtx(ctx, s.delays.payloadSettle); err != nil {
		return s.fail(err)
	}

	if _, err := dev.Write([]byte(protocol.CRLF)); err != nil {
		return s.fail(&CommandError{Command: writeCmd, Err: err})
	}
	if err := sleepCtx(ctx, s.delays.terminatorGap); err != nil {
		return s.fail(err)
	}

	if err := s.setCapture(captureAwaitingPrompt); err != nil {
		return s.fail(err)
	}
	if _, err := dev.Write([]byte{protocol.InterruptByte}); err != nil {
		return s.fail(&CommandError{Command: writeCmd, Err: err})
	}
	if err := sleepCtx(ctx, s.delays.interruptGap); err != nil {
		return s.fail(err)
	}
	if _, err := s.readUntil(ctx, acc, protocol.PostCapturePrompt, s.config.ReadTimeout); err != nil {
		return s.fail(&CommandError{Command: writeCmd, Err: err})
	}
	if err := s.setCapture(captureIdle); err != nil {
		return s.fail(err)
	}
	if err := sleepCtx(ctx, s.delays.postCapture); err != nil {
		return s.fail(err)
	}

	s.reportProgress(Progress{
		Phase:       PhaseVerifying,
		BytesSent:   len(content),
		TotalBytes:  len(content),
		Percentage:  100,
		ElapsedTime: time.Since(start),
	})

	acc.clear()
	response, err := s.writeCommand(ctx, dev, acc, protocol.BuildStorageStatCmd(filePath))
	if err != nil {
		return s.fail(err)
	}
	if protocol.IsStorageFailure(response) {
		return s.fail(&VerificationError{Path: filePath, Response: response})
	}

	s.reportProgress(Progress{
		Phase:       PhaseComplete,
		BytesSent:   len(content),
		TotalBytes:  len(content),
		Percentage:  100,
		ElapsedTime: time.Since(start),
	})
	s.logInfo("file written", "path", filePath, "size", len(content))
	return nil
}

// streamPayload sends content while the shell is in capture mode, reporting
// progress per chunk. Chunking exists for progress granularity only; the
// chunks go out back to back.
func (s *Session) streamPayload(ctx context.Context, dev io.Writer, content []byte, start time.Time) error {
	if state := s.captureMode(); state != captureStreaming {
		return fmt.Errorf("payload write in capture state %s", state)
	}

	total := len(content)
	for sent := 0; sent < total; {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := sent + s.config.ChunkSize
		if end > total {
			end = total
		}
		if _, err := dev.Write(content[sent:end]); err != nil {
			return err
		}
		sent = end

		s.reportProgress(Progress{
			Phase:       PhaseStreaming,
			BytesSent:   sent,
			TotalBytes:  total,
			Percentage:  float64(sent) / float64(total) * 100,
			ElapsedTime: time.Since(start),
		})
	}
	return nil
}

// ReadFile returns the contents of the file at filePath, trimmed of
// surrounding whitespace. The device prints a size header line before the
// payload; the header is discarded.
//
// Example:
//
//	content, err := sess.ReadFile(ctx, "/ext/badusb/demo.txt")
func (s *Session) ReadFile(ctx context.Context, filePath string) (string, error) {
	dev, acc, err := s.handles("read file")
	if err != nil {
		return "", s.fail(err)
	}
	acc.clear()

	cmd := protocol.BuildStorageReadCmd(filePath)
	if err := s.write(ctx, dev, cmd+protocol.CRLF); err != nil {
		return "", s.fail(&CommandError{Command: cmd, Err: err})
	}

	// The echo marker includes the line terminator so that the next
	// extraction lands on the size header, not on the echo's own line end.
	if _, err := s.readUntil(ctx, acc, cmd+protocol.CRLF, s.config.EchoTimeout); err != nil {
		return "", s.fail(&CommandError{Command: cmd, Err: err})
	}
	if _, err := s.readUntil(ctx, acc, "\n", s.config.ReadTimeout); err != nil {
		return "", s.fail(&CommandError{Command: cmd, Err: err})
	}

	content, err := s.readUntil(ctx, acc, protocol.Prompt, s.config.ReadTimeout)
	if err != nil {
		return "", s.fail(&CommandError{Command: cmd, Err: err})
	}

	s.logDebug("file read", "path", filePath, "size", len(content))
	return content, nil
}

// ListDirectory lists the entries under dirPath. Lines the device prints
// that are not directory or file entries are dropped.
//
// Example:
//
//	entries, err := sess.ListDirectory(ctx, "/ext")
func (s *Session) ListDirectory(ctx context.Context, dirPath string) ([]protocol.FileInfo, error) {
	response, err := s.command(ctx, "list directory", protocol.BuildStorageListCmd(dirPath))
	if err != nil {
		return nil, s.fail(err)
	}

	entries := protocol.ParseListing(dirPath, response)
	s.logDebug("directory listed", "path", dirPath, "entries", len(entries))
	return entries, nil
}

// Stat returns the device's status line for the file or directory at
// filePath. A missing path raises a VerificationError.
func (s *Session) Stat(ctx context.Context, filePath string) (string, error) {
	response, err := s.command(ctx, "stat", protocol.BuildStorageStatCmd(filePath))
	if err != nil {
		return "", s.fail(err)
	}
	if protocol.IsStorageFailure(response) {
		return "", s.fail(&VerificationError{Path: filePath, Response: response})
	}
	return response, nil
}

// MkDir creates the directory at dirPath. The device rejects nested creation
// when intermediate components are missing.
func (s *Session) MkDir(ctx context.Context, dirPath string) error {
	response, err := s.command(ctx, "mkdir", protocol.BuildStorageMkdirCmd(dirPath))
	if err != nil {
		return s.fail(err)
	}
	if protocol.IsStorageFailure(response) {
		return s.fail(&VerificationError{Path: dirPath, Response: response})
	}
	return nil
}

// Delete removes the file or directory at filePath.
func (s *Session) Delete(ctx context.Context, filePath string) error {
	response, err := s.command(ctx, "delete", protocol.BuildStorageRemoveCmd(filePath))
	if err != nil {
		return s.fail(err)
	}
	if protocol.IsStorageFailure(response) {
		return s.fail(&VerificationError{Path: filePath, Response: response})
	}
	return nil
}
