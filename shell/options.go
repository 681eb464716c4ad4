package shell

import "time"

// Config holds the session configuration.
type Config struct {
	// ProgressCallback is called during file transfers to report progress (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// OpenPort opens the byte channel to the device.
	// Default opens a real serial port.
	OpenPort PortOpener

	// BaudRate is the serial line rate.
	// Default is 230400, the rate the device's CLI runs at.
	BaudRate int

	// ReadTimeout is the deadline for general response markers
	ReadTimeout time.Duration

	// EchoTimeout is the deadline for the device to echo a command back
	EchoTimeout time.Duration

	// PromptTimeout is the deadline for the prompt after a command's echo
	PromptTimeout time.Duration

	// HandshakeTimeout is the per-attempt deadline for the connect handshake
	HandshakeTimeout time.Duration

	// HandshakeRetries is the number of handshake attempts before Connect fails
	HandshakeRetries int

	// SettleDelay is the pause after each write, letting the firmware's
	// line reader keep up
	SettleDelay time.Duration

	// ChunkSize is the payload slice size per write during file transfers.
	// Chunking only affects progress reporting granularity.
	ChunkSize int
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		OpenPort:         openSerialPort,
		BaudRate:         230400,
		ReadTimeout:      5 * time.Second,
		EchoTimeout:      2 * time.Second,
		PromptTimeout:    3 * time.Second,
		HandshakeTimeout: 2 * time.Second,
		HandshakeRetries: 3,
		SettleDelay:      50 * time.Millisecond,
		ChunkSize:        512,
	}
}

// Option is a functional option for configuring the Session.
type Option func(*Config)

// WithProgressCallback sets a callback function to track file transfer progress.
//
// Example:
//
//	sess := shell.New(port,
//	    shell.WithProgressCallback(func(p shell.Progress) {
//	        fmt.Printf("%.1f%% complete\n", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the session operations.
//
// Example:
//
//	sess := shell.New(port, shell.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithPortOpener replaces how the byte channel to the device is opened.
// Useful for tests and for transports other than a local serial port.
//
// Example:
//
//	sess := shell.New("mem", shell.WithPortOpener(openMemoryPipe))
func WithPortOpener(open PortOpener) Option {
	return func(c *Config) {
		if open != nil {
			c.OpenPort = open
		}
	}
}

// WithBaudRate sets the serial line rate. Default is 230400.
//
// Example:
//
//	sess := shell.New(port, shell.WithBaudRate(115200))
func WithBaudRate(baud int) Option {
	return func(c *Config) {
		if baud > 0 {
			c.BaudRate = baud
		}
	}
}

// WithReadTimeout sets the deadline for general response markers.
//
// Example:
//
//	sess := shell.New(port, shell.WithReadTimeout(10*time.Second))
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.ReadTimeout = timeout
	}
}

// WithHandshakeRetries sets the number of handshake attempts before Connect fails.
//
// Example:
//
//	sess := shell.New(port, shell.WithHandshakeRetries(5))
func WithHandshakeRetries(retries int) Option {
	return func(c *Config) {
		if retries > 0 {
			c.HandshakeRetries = retries
		}
	}
}

// WithSettleDelay sets the pause inserted after each write.
//
// Example:
//
//	sess := shell.New(port, shell.WithSettleDelay(20*time.Millisecond))
func WithSettleDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.SettleDelay = delay
		}
	}
}

// WithChunkSize sets the payload slice size per write during file transfers.
//
// Example:
//
//	sess := shell.New(port, shell.WithChunkSize(128))
func WithChunkSize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.ChunkSize = size
		}
	}
}
