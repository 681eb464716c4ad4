package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-flipper/shell"
)

func newLsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ls <path>",
		Short: "List a directory on the device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd.Context(), func(sess *shell.Session) error {
				entries, err := sess.ListDirectory(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				for _, e := range entries {
					if e.IsDir {
						fmt.Printf("[D] %s\n", e.Name)
						continue
					}
					fmt.Printf("[F] %-36s %8d  %s\n", e.Name, e.Size, e.Type)
				}
				return nil
			})
		},
	}
}

func newReadCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "read <device-path> [local-file]",
		Short: "Read a file from the device",
		Long:  "Read a file from the device and print it to stdout, or save it to a local file when one is given.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd.Context(), func(sess *shell.Session) error {
				content, err := sess.ReadFile(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if len(args) == 2 {
					return os.WriteFile(args[1], []byte(content), 0o644)
				}
				fmt.Println(content)
				return nil
			})
		},
	}
}

func newWriteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "write <local-file> <device-path>",
		Short: "Write a local file to the device",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var extra []shell.Option
			if opts.verbose {
				extra = append(extra, shell.WithProgressCallback(func(p shell.Progress) {
					fmt.Fprintf(os.Stderr, "[%s] %.1f%% (%d/%d bytes)\n",
						p.Phase, p.Percentage, p.BytesSent, p.TotalBytes)
				}))
			}

			return opts.withSession(cmd.Context(), func(sess *shell.Session) error {
				if err := sess.WriteFile(cmd.Context(), args[1], content); err != nil {
					return err
				}
				fmt.Printf("wrote %d bytes to %s\n", len(content), args[1])
				return nil
			}, extra...)
		},
	}
}

func newRmCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>",
		Short: "Remove a file or directory on the device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd.Context(), func(sess *shell.Session) error {
				return sess.Delete(cmd.Context(), args[0])
			})
		},
	}
}

func newMkdirCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a directory on the device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd.Context(), func(sess *shell.Session) error {
				return sess.MkDir(cmd.Context(), args[0])
			})
		},
	}
}

func newStatCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stat <path>",
		Short: "Show a file or directory's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd.Context(), func(sess *shell.Session) error {
				status, err := sess.Stat(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Println(status)
				return nil
			})
		},
	}
}
