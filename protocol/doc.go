// Package protocol implements the Flipper Zero CLI wire contract.
//
// This package provides the marker constants, command templates, and response
// parsers for the text protocol the device exposes over its serial CLI.
//
// # Protocol Overview
//
// The CLI is an unframed, echo-polluted text protocol:
//
//	Host:   <command text><CR><LF>
//	Device: <command text>            (echo of the typed input)
//	Device: <response lines...>
//	Device: >                         (prompt, marks completion)
//
// There are no message lengths and no correlation identifiers; the prompt is
// the only completion signal. An interrupt byte (0x03, Ctrl+C) cancels any
// pending operation and forces a fresh prompt.
//
// The storage write command is special: instead of echoing and prompting, the
// device switches into raw-capture mode, announced by a fixed banner. Every
// byte sent afterwards is file content, not a command. The mode is exited by
// the interrupt byte, after which the device prints the ">:" prompt variant
// rather than the bare ">".
//
// # Command Builders
//
// Use the Build* functions to create command text (without the trailing CRLF,
// which the session layer appends):
//
//	cmd := protocol.BuildStorageListCmd("/ext")
//	cmd := protocol.BuildLoaderOpenCmd("Bad USB")
//	// ... etc
//
// # Response Parsers
//
// Use ParseListing to turn a storage list response into structured entries:
//
//	entries := protocol.ParseListing("/ext", response)
//	for _, e := range entries {
//	    fmt.Printf("%s %s %d\n", e.Type, e.Path, e.Size)
//	}
//
// Loader responses are free-form text; ParseLoaderList extracts the
// application names and IsLoaderFailure detects the device's error replies:
//
//	if protocol.IsLoaderFailure(response) {
//	    // the device reported a loader error
//	}
//
// # Reference
//
// The command set and markers follow the CLI shipped with the official
// Flipper Zero firmware (applications/services/cli and the storage/loader
// apps).
package protocol
