package shell

import (
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

// PortOpener opens the byte channel to the device. Connect calls it with the
// session's port name and configured baud rate.
type PortOpener func(port string, baud int) (io.ReadWriteCloser, error)

// readPollInterval bounds how long a single serial Read blocks. The ingest
// loop needs Read to return periodically so it can notice a stop request.
const readPollInterval = 100 * time.Millisecond

// openSerialPort is the default PortOpener. The device's CLI runs over USB CDC
// with an 8N1 framing regardless of the requested rate.
func openSerialPort(port string, baud int) (io.ReadWriteCloser, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	p, err := serial.Open(port, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port: %w", err)
	}

	if err := p.SetReadTimeout(readPollInterval); err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("failed to set read timeout: %w", err)
	}

	// Drop whatever the device printed before we attached.
	_ = p.ResetInputBuffer()

	return p, nil
}
