package shell

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/moffa90/go-flipper/protocol"
)

// ingestBufferSize is the chunk size for reads off the device.
const ingestBufferSize = 512

// sessionDelays holds the fixed pauses the device's firmware needs between
// protocol stages. They are pinned to the wire protocol, not configurable.
type sessionDelays struct {
	// connectSettle follows the port open, while boot noise drains
	connectSettle time.Duration

	// handshakeGap separates the interrupt byte from the handshake CRLF
	handshakeGap time.Duration

	// payloadSettle follows the last payload byte of a file write
	payloadSettle time.Duration

	// terminatorGap separates the payload's trailing CRLF from the interrupt
	terminatorGap time.Duration

	// interruptGap lets the shell switch out of capture mode
	interruptGap time.Duration

	// postCapture follows the post-capture prompt before the next command
	postCapture time.Duration
}

func defaultDelays() sessionDelays {
	return sessionDelays{
		connectSettle: 500 * time.Millisecond,
		handshakeGap:  100 * time.Millisecond,
		payloadSettle: 500 * time.Millisecond,
		terminatorGap: 200 * time.Millisecond,
		interruptGap:  500 * time.Millisecond,
		postCapture:   200 * time.Millisecond,
	}
}

// Session is a client for one device's CLI. It owns the byte channel
// exclusively: a background ingest loop drains everything the device sends
// into an accumulator, and operations carve responses out of it by marker.
//
// Operations must not be interleaved. Two commands in flight would race on
// the accumulator and on which response belongs to which command.
type Session struct {
	mu         sync.Mutex
	device     io.ReadWriteCloser
	acc        *accumulator
	stop       chan struct{}
	ingestDone chan struct{}
	connected  bool
	capture    captureState

	port   string
	config Config
	delays sessionDelays
}

// New creates a Session for the serial port at the given path. The port is
// not opened until Connect.
//
// Example:
//
//	sess := shell.New("/dev/ttyACM0",
//	    shell.WithLogger(myLogger),
//	    shell.WithReadTimeout(10*time.Second),
//	)
func New(port string, opts ...Option) *Session {
	if port == "" {
		panic("port cannot be empty")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Session{
		port:   port,
		config: cfg,
		delays: defaultDelays(),
	}
}

// Connected reports whether the session holds an established connection.
func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Connect opens the port, starts the ingest loop and performs the CLI
// handshake: an interrupt byte to cancel whatever the shell was doing, a
// bare line terminator, then a wait for the prompt. The handshake is retried
// before giving up. Connect is a no-op when already connected, and any
// failure tears the session back down before the error is returned.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	if s.connected {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	s.logDebug("opening port", "port", s.port, "baud", s.config.BaudRate)

	dev, err := s.config.OpenPort(s.port, s.config.BaudRate)
	if err != nil {
		return s.fail(fmt.Errorf("open %s: %w", s.port, err))
	}

	acc := newAccumulator()
	stop := make(chan struct{})
	done := make(chan struct{})

	s.mu.Lock()
	s.device = dev
	s.acc = acc
	s.stop = stop
	s.ingestDone = done
	s.capture = captureIdle
	s.mu.Unlock()

	go ingest(dev, acc, stop, done)

	// The device prints boot noise right after the port opens. Let it
	// finish, then start from an empty buffer.
	if err := sleepCtx(ctx, s.delays.connectSettle); err != nil {
		return s.fail(err)
	}
	acc.clear()

	for attempt := 1; attempt <= s.config.HandshakeRetries; attempt++ {
		hsErr := s.handshake(ctx, dev, acc)
		if hsErr == nil {
			s.mu.Lock()
			s.connected = true
			s.mu.Unlock()
			s.logInfo("connected", "port", s.port, "attempt", attempt)
			return nil
		}
		s.logDebug("handshake attempt failed", "attempt", attempt, "error", hsErr)
		if ctx.Err() != nil {
			return s.fail(hsErr)
		}
	}

	return s.fail(&HandshakeError{Attempts: s.config.HandshakeRetries})
}

// handshake interrupts whatever the CLI is doing and asks for a fresh prompt.
func (s *Session) handshake(ctx context.Context, dev io.Writer, acc *accumulator) error {
	if _, err := dev.Write([]byte{protocol.InterruptByte}); err != nil {
		return err
	}
	if err := sleepCtx(ctx, s.delays.handshakeGap); err != nil {
		return err
	}
	if err := s.write(ctx, dev, protocol.CRLF); err != nil {
		return err
	}
	_, err := s.readUntil(ctx, acc, protocol.Prompt, s.config.HandshakeTimeout)
	return err
}

// Disconnect tears the session down: the connection is marked gone first,
// then the ingest loop is stopped and the port closed best-effort. Cleanup
// faults are discarded because the session state is already disconnected.
// Disconnect is idempotent and always returns nil.
func (s *Session) Disconnect() error {
	s.mu.Lock()
	dev := s.device
	stop := s.stop
	s.device = nil
	s.acc = nil
	s.stop = nil
	s.ingestDone = nil
	s.connected = false
	s.capture = captureIdle
	s.mu.Unlock()

	if stop != nil {
		close(stop)
	}
	if dev != nil {
		_ = dev.Close()
		s.logInfo("disconnected", "port", s.port)
	}
	return nil
}

// Send runs one raw CLI command and returns its response text, everything
// the device printed between the command's echo and the next prompt. It is
// the building block for the storage and loader operations, exported for
// callers that need commands this package does not wrap.
//
// Example:
//
//	response, err := sess.Send(ctx, "device_info")
func (s *Session) Send(ctx context.Context, cmd string) (string, error) {
	response, err := s.command(ctx, "send", cmd)
	if err != nil {
		return "", s.fail(err)
	}
	return response, nil
}

// ingest pumps bytes from the device into the accumulator until the session
// stops or the device errors out. Faults are not surfaced here: once the
// pump stops, pending extractions observe them as marker timeouts.
func ingest(dev io.Reader, acc *accumulator, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	buf := make([]byte, ingestBufferSize)
	for {
		select {
		case <-stop:
			return
		default:
		}

		n, err := dev.Read(buf)
		if n > 0 {
			acc.append(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// handles returns the device and accumulator for an operation, or a
// NotConnectedError. Operations work off these snapshots, so a concurrent
// Disconnect cannot leave them with nil references mid-flight.
func (s *Session) handles(op string) (io.ReadWriteCloser, *accumulator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected || s.device == nil {
		return nil, nil, &NotConnectedError{Op: op}
	}
	return s.device, s.acc, nil
}

// fail tears the session down before returning err. A failed exchange leaves
// the device mid-response or stuck in capture mode; the connection must not
// be reused in that state.
func (s *Session) fail(err error) error {
	s.logError("operation failed, disconnecting", "error", err)
	_ = s.Disconnect()
	return err
}

// command clears the accumulator and runs one CLI command.
func (s *Session) command(ctx context.Context, op, cmd string) (string, error) {
	dev, acc, err := s.handles(op)
	if err != nil {
		return "", err
	}
	acc.clear()
	return s.writeCommand(ctx, dev, acc, cmd)
}

// write sends text to the device and settles briefly afterwards so the
// firmware's line reader keeps up with consecutive writes.
func (s *Session) write(ctx context.Context, dev io.Writer, text string) error {
	if _, err := dev.Write([]byte(text)); err != nil {
		return err
	}
	return sleepCtx(ctx, s.config.SettleDelay)
}

// writeCommand sends cmd terminated with CRLF, waits for the device to echo
// it back, then waits for the prompt that marks completion. The text between
// echo and prompt is the command's response. Failures at any stage wrap as a
// CommandError carrying the command.
func (s *Session) writeCommand(ctx context.Context, dev io.Writer, acc *accumulator, cmd string) (string, error) {
	s.logDebug("sending command", "command", cmd)

	if err := s.write(ctx, dev, cmd+protocol.CRLF); err != nil {
		return "", &CommandError{Command: cmd, Err: err}
	}
	if _, err := s.readUntil(ctx, acc, cmd, s.config.EchoTimeout); err != nil {
		return "", &CommandError{Command: cmd, Err: err}
	}

	response, err := s.readUntil(ctx, acc, protocol.Prompt, s.config.PromptTimeout)
	if err != nil {
		return "", &CommandError{Command: cmd, Err: err}
	}
	return response, nil
}

// readUntil blocks until marker appears in the accumulated stream, then
// returns the trimmed text preceding it and consumes the buffer through the
// marker. The timeout spans the whole wait. On timeout the error carries the
// marker and a snapshot of the unmatched buffer.
func (s *Session) readUntil(ctx context.Context, acc *accumulator, marker string, timeout time.Duration) (string, error) {
	if marker == "" {
		return "", fmt.Errorf("marker cannot be empty")
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		// Grab the wake channel before checking, so an append landing
		// right after a miss still wakes the wait.
		wake := acc.pending()

		if text, ok := acc.extract(marker); ok {
			return text, nil
		}

		select {
		case <-wake:
		case <-deadline.C:
			return "", &ReadTimeoutError{Marker: marker, Buffer: acc.snapshot(), Timeout: timeout}
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

// sleepCtx pauses for d, or less if ctx is done first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// reportProgress calls the progress callback if configured.
func (s *Session) reportProgress(progress Progress) {
	if s.config.ProgressCallback != nil {
		s.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (s *Session) logDebug(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (s *Session) logInfo(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (s *Session) logError(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Error(msg, keysAndValues...)
	}
}
