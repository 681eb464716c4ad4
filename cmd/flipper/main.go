package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/moffa90/go-flipper/shell"
)

// globalOptions holds the flags shared by every subcommand.
type globalOptions struct {
	port    string
	baud    int
	verbose bool
	timeout time.Duration
}

// session builds a Session from the global flags.
func (o *globalOptions) session(extra ...shell.Option) *shell.Session {
	opts := []shell.Option{
		shell.WithBaudRate(o.baud),
		shell.WithReadTimeout(o.timeout),
		shell.WithLogger(newCLILogger(o.verbose)),
	}
	opts = append(opts, extra...)
	return shell.New(o.port, opts...)
}

// withSession connects, runs fn, and disconnects afterwards.
func (o *globalOptions) withSession(ctx context.Context, fn func(*shell.Session) error, extra ...shell.Option) error {
	sess := o.session(extra...)
	if err := sess.Connect(ctx); err != nil {
		return err
	}
	defer func() { _ = sess.Disconnect() }()
	return fn(sess)
}

// cliLogger adapts zerolog to the session's logging interface.
type cliLogger struct {
	log zerolog.Logger
}

func newCLILogger(verbose bool) *cliLogger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return &cliLogger{
		log: zerolog.New(out).Level(level).With().Timestamp().Logger(),
	}
}

func (l *cliLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l *cliLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info().Fields(keysAndValues).Msg(msg)
}

func (l *cliLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Error().Fields(keysAndValues).Msg(msg)
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "flipper",
		Short: "Talk to a Flipper Zero over its serial CLI",
		Long: `flipper drives a Flipper Zero's command line interface over USB serial.

It covers the storage subsystem (list, read, write, remove files), the
application loader (list, open, close, signal), and gives you a raw
interactive shell for everything else.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.port, "port", "p", "", "serial port of the device (e.g. /dev/ttyACM0)")
	cmd.PersistentFlags().IntVar(&opts.baud, "baud", 230400, "serial baud rate")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 5*time.Second, "response read timeout")
	_ = cmd.MarkPersistentFlagRequired("port")

	cmd.AddCommand(
		newLsCmd(opts),
		newReadCmd(opts),
		newWriteCmd(opts),
		newRmCmd(opts),
		newMkdirCmd(opts),
		newStatCmd(opts),
		newAppsCmd(opts),
		newOpenCmd(opts),
		newCloseCmd(opts),
		newInfoCmd(opts),
		newSignalCmd(opts),
		newBadusbCmd(opts),
		newSendCmd(opts),
		newShellCmd(opts),
		newRunCmd(opts),
	)

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
