package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-flipper/shell"
)

func newAppsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "apps",
		Short: "List the applications the device can run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd.Context(), func(sess *shell.Session) error {
				apps, err := sess.LoaderList(cmd.Context())
				if err != nil {
					return err
				}
				for _, app := range apps {
					fmt.Println(app)
				}
				return nil
			})
		},
	}
}

func newOpenCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "open <application> [args...]",
		Short: "Launch an application on the device",
		Long:  "Launch an application on the device, optionally passing arguments such as a file to open.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd.Context(), func(sess *shell.Session) error {
				return sess.LoaderOpen(cmd.Context(), args[0], args[1:]...)
			})
		},
	}
}

func newCloseCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "close",
		Short: "Close the running application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd.Context(), func(sess *shell.Session) error {
				return sess.LoaderClose(cmd.Context())
			})
		},
	}
}

func newInfoCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show which application is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd.Context(), func(sess *shell.Session) error {
				info, err := sess.LoaderInfo(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Println(info)
				return nil
			})
		},
	}
}

func newSignalCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "signal <signal> [args...]",
		Short: "Send a signal to the running application",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd.Context(), func(sess *shell.Session) error {
				return sess.LoaderSignal(cmd.Context(), args[0], args[1:]...)
			})
		},
	}
}

func newBadusbCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "badusb",
		Short: "Launch the Bad USB application",
		Long:  "Launch the Bad USB application, closing whatever application is currently running first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd.Context(), func(sess *shell.Session) error {
				return sess.OpenBadUSB(cmd.Context())
			})
		},
	}
}
