// Package shell provides a high-level client for the Flipper Zero serial CLI.
//
// # Overview
//
// This package drives the device's interactive command shell over a serial
// port and exposes its storage and application loader subsystems:
//   - Connecting with an interrupt-and-prompt handshake
//   - Running CLI commands and pairing them with their responses
//   - Writing files through the shell's raw text capture mode
//   - Reading files and parsing directory listings
//   - Launching, closing and signaling applications
//
// # Basic Usage
//
// The simplest way to talk to a device:
//
//	sess := shell.New("/dev/ttyACM0")
//
//	err := sess.Connect(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sess.Disconnect()
//
//	entries, err := sess.ListDirectory(context.Background(), "/ext")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range entries {
//	    fmt.Println(e.Path)
//	}
//
// # File Transfer
//
// Files are written through the CLI's raw capture mode and verified with a
// status query afterwards. Transfers report progress through a callback:
//
//	sess := shell.New("/dev/ttyACM0",
//	    shell.WithProgressCallback(func(p shell.Progress) {
//	        fmt.Printf("[%s] %.1f%% - %d/%d bytes\n",
//	            p.Phase, p.Percentage, p.BytesSent, p.TotalBytes)
//	    }),
//	)
//
// # Configuration Options
//
// Customize behavior with functional options:
//
//	sess := shell.New("/dev/ttyACM0",
//	    shell.WithBaudRate(230400),
//	    shell.WithReadTimeout(10*time.Second),
//	    shell.WithHandshakeRetries(5),
//	    shell.WithLogger(myLogger),
//	)
//
// # Logging
//
// Integrate with any logging framework:
//
//	type MyLogger struct {
//	    logger *log.Logger
//	}
//
//	func (l *MyLogger) Debug(msg string, kv ...interface{}) {
//	    l.logger.Println("DEBUG:", msg, kv)
//	}
//
//	func (l *MyLogger) Info(msg string, kv ...interface{}) {
//	    l.logger.Println("INFO:", msg, kv)
//	}
//
//	func (l *MyLogger) Error(msg string, kv ...interface{}) {
//	    l.logger.Println("ERROR:", msg, kv)
//	}
//
//	sess := shell.New("/dev/ttyACM0", shell.WithLogger(&MyLogger{...}))
//
// # Error Handling
//
// The package provides structured error types:
//   - NotConnectedError: operation attempted before a successful Connect
//   - HandshakeError: the device never presented a prompt
//   - ReadTimeoutError: a response marker did not arrive in time
//   - CommandError: a command's echo or completion prompt was not observed
//   - VerificationError: a written file failed its post-write status check
//   - LoaderError: a loader command was rejected by the device
//
// A failed operation tears the session down before its error is returned;
// the device may be mid-response or stuck in capture mode, so the connection
// is not reusable. Reconnect with Connect to continue.
//
// # Hardware Independence
//
// Connect opens a real serial port. Tests and exotic transports can
// substitute any io.ReadWriteCloser instead:
//
//	sess := shell.New("mem",
//	    shell.WithPortOpener(func(port string, baud int) (io.ReadWriteCloser, error) {
//	        return myDevice, nil
//	    }),
//	)
package shell
