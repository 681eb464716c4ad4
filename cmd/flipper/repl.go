package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/moffa90/go-flipper/script"
	"github.com/moffa90/go-flipper/shell"
)

// replCompletions seeds tab completion with the CLI's common command roots.
var replCompletions = []string{
	"device_info",
	"help",
	"loader close",
	"loader info",
	"loader list",
	"loader open ",
	"loader signal ",
	"power off",
	"ps",
	"storage list ",
	"storage mkdir ",
	"storage read ",
	"storage remove ",
	"storage stat ",
	"storage write ",
	"uptime",
	"vibro",
}

func newSendCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "send <command...>",
		Short: "Run one raw CLI command and print its response",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd.Context(), func(sess *shell.Session) error {
				response, err := sess.Send(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				if response != "" {
					fmt.Println(response)
				}
				return nil
			})
		},
	}
}

func newShellCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open an interactive session with the device's CLI",
		Long: `Open an interactive session with the device's CLI.

When stdin is a terminal this gives you a prompt with history and tab
completion. When stdin is a pipe, commands are read line by line and the
session exits on the first failure.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd.Context(), func(sess *shell.Session) error {
				if term.IsTerminal(int(os.Stdin.Fd())) {
					return runInteractive(cmd.Context(), sess)
				}
				return runBatch(cmd.Context(), sess, os.Stdin)
			})
		},
	}
}

func runInteractive(ctx context.Context, sess *shell.Session) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(input string) (c []string) {
		for _, candidate := range replCompletions {
			if strings.HasPrefix(candidate, strings.ToLower(input)) {
				c = append(c, candidate)
			}
		}
		return
	})

	fmt.Println(`Interactive mode. Type "exit" or press Ctrl-D to quit.`)
	for {
		input, err := line.Prompt("flipper> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == "exit" || input == "quit" {
			return nil
		}

		if err := execLine(ctx, sess, input); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			// A failed command tears the connection down. Reconnect so
			// one bad exchange does not end the whole shell.
			if !sess.Connected() {
				if err := sess.Connect(ctx); err != nil {
					return err
				}
			}
		}
	}
}

func runBatch(ctx context.Context, sess *shell.Session, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}
		if err := execLine(ctx, sess, input); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func execLine(ctx context.Context, sess *shell.Session, input string) error {
	response, err := sess.Send(ctx, input)
	if err != nil {
		return err
	}
	if response != "" {
		fmt.Println(response)
	}
	return nil
}

func newRunCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script>",
		Short: "Run a command script against the device",
		Long: `Run a command script against the device, stopping at the first failure.

Scripts hold one CLI command per line; blank lines and lines starting
with "#" are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := script.Parse(args[0])
			if err != nil {
				return err
			}

			return opts.withSession(cmd.Context(), func(sess *shell.Session) error {
				for _, c := range sc.Commands {
					response, err := sess.Send(cmd.Context(), c.Text)
					if err != nil {
						return fmt.Errorf("line %d (%s): %w", c.Line, c.Text, err)
					}
					if response != "" {
						fmt.Println(response)
					}
				}
				return nil
			})
		},
	}
}
