package protocol

import "strings"

// BuildStorageWriteCmd constructs the storage write command for a path.
// Sending it switches the shell into raw-capture mode (see CaptureBanner);
// it does not follow the usual echo-then-prompt cycle.
func BuildStorageWriteCmd(path string) string {
	return "storage write " + path
}

// BuildStorageReadCmd constructs the storage read command for a path.
// The response is a size-prefix line followed by the file content.
func BuildStorageReadCmd(path string) string {
	return "storage read " + path
}

// BuildStorageStatCmd constructs the storage stat command for a path.
// The response describes the file, or contains the storage failure keywords
// when the path does not exist.
func BuildStorageStatCmd(path string) string {
	return "storage stat " + path
}

// BuildStorageListCmd constructs the storage list command for a directory.
// Response lines are parsed by ParseListing.
func BuildStorageListCmd(path string) string {
	return "storage list " + path
}

// BuildStorageMkdirCmd constructs the storage mkdir command for a path.
func BuildStorageMkdirCmd(path string) string {
	return "storage mkdir " + path
}

// BuildStorageRemoveCmd constructs the storage remove command for a path.
func BuildStorageRemoveCmd(path string) string {
	return "storage remove " + path
}

// BuildLoaderListCmd constructs the command that lists installed applications.
func BuildLoaderListCmd() string {
	return "loader list"
}

// BuildLoaderOpenCmd constructs the command that launches an application.
// The application name is always double-quoted because names contain spaces
// ("Bad USB"); extra arguments are passed through opaquely, space-joined, and
// never validated locally.
func BuildLoaderOpenCmd(name string, args ...string) string {
	cmd := `loader open "` + name + `"`
	if len(args) > 0 {
		cmd += " " + strings.Join(args, " ")
	}
	return cmd
}

// BuildLoaderCloseCmd constructs the command that closes the running
// application.
func BuildLoaderCloseCmd() string {
	return "loader close"
}

// BuildLoaderInfoCmd constructs the command that reports loader state.
// The response contains LoaderIdleSentinel when nothing is running.
func BuildLoaderInfoCmd() string {
	return "loader info"
}

// BuildLoaderSignalCmd constructs the command that delivers a signal to the
// running application. The signal name and optional argument are passed
// through opaquely.
func BuildLoaderSignalCmd(signal string, args ...string) string {
	cmd := "loader signal " + signal
	if len(args) > 0 {
		cmd += " " + strings.Join(args, " ")
	}
	return cmd
}
