package shell

import (
	"context"
	"strings"

	"github.com/moffa90/go-flipper/protocol"
)

// loader runs one loader command and applies the loader failure check. The
// loader prints free-form text, so failure detection is a case-insensitive
// "error" match on the response.
func (s *Session) loader(ctx context.Context, op, cmd string) (string, error) {
	response, err := s.command(ctx, op, cmd)
	if err != nil {
		return "", s.fail(err)
	}
	if protocol.IsLoaderFailure(response) {
		return "", s.fail(&LoaderError{Command: cmd, Response: response})
	}
	return response, nil
}

// LoaderList returns the names of the applications the loader can run.
func (s *Session) LoaderList(ctx context.Context) ([]string, error) {
	response, err := s.loader(ctx, "loader list", protocol.BuildLoaderListCmd())
	if err != nil {
		return nil, err
	}
	return protocol.ParseLoaderList(response), nil
}

// LoaderOpen launches the named application, passing along any arguments.
// Most applications take a file path to open with.
//
// Example:
//
//	err := sess.LoaderOpen(ctx, "Sub-GHz", "/ext/subghz/gate.sub")
func (s *Session) LoaderOpen(ctx context.Context, name string, args ...string) error {
	s.logInfo("opening application", "name", name)
	_, err := s.loader(ctx, "loader open", protocol.BuildLoaderOpenCmd(name, args...))
	return err
}

// LoaderClose closes the currently running application.
func (s *Session) LoaderClose(ctx context.Context) error {
	_, err := s.loader(ctx, "loader close", protocol.BuildLoaderCloseCmd())
	return err
}

// LoaderInfo returns the loader's status text, which names the running
// application or reports that none is running.
func (s *Session) LoaderInfo(ctx context.Context) (string, error) {
	return s.loader(ctx, "loader info", protocol.BuildLoaderInfoCmd())
}

// LoaderSignal sends a signal to the running application.
func (s *Session) LoaderSignal(ctx context.Context, signal string, args ...string) error {
	_, err := s.loader(ctx, "loader signal", protocol.BuildLoaderSignalCmd(signal, args...))
	return err
}

// OpenBadUSB launches the Bad USB application, closing whatever application
// is currently running first.
func (s *Session) OpenBadUSB(ctx context.Context) error {
	info, err := s.LoaderInfo(ctx)
	if err != nil {
		return err
	}
	if !strings.Contains(info, protocol.LoaderIdleSentinel) {
		s.logDebug("closing running application", "info", info)
		if err := s.LoaderClose(ctx); err != nil {
			return err
		}
	}
	return s.LoaderOpen(ctx, protocol.BadUSBAppName)
}
