package protocol

// Wire markers for the device's interactive CLI.
const (
	// CRLF is the line terminator appended to every outbound command
	CRLF = "\r\n"

	// Prompt is the character the shell re-prints to signal it is ready
	// for, or has completed, a command
	Prompt = ">"

	// PostCapturePrompt is the prompt variant printed after the shell
	// leaves raw-capture mode
	PostCapturePrompt = ">:"

	// InterruptByte (ETX, Ctrl+C) cancels any pending remote operation and
	// forces a fresh prompt; it is also the only way out of raw-capture mode
	InterruptByte byte = 0x03

	// CaptureBanner is the fixed text the shell prints when a storage write
	// command switches it into raw-capture mode
	CaptureBanner = "Just write your text data. New line by Ctrl+Enter, exit by Ctrl+C"
)

// Directory listing line markers. Every entry line starts with a
// MarkerWidth-character marker followed by a space.
const (
	// DirMarker prefixes directory lines in a storage list response
	DirMarker = "[D]"

	// FileMarker prefixes file lines in a storage list response
	FileMarker = "[F]"

	// MarkerWidth is the width of the listing line markers
	MarkerWidth = 3
)

// Storage failure keywords. The device reports storage problems as free-form
// text; these are the substrings a stat response contains on failure.
const (
	// StorageErrorKeyword appears in stat/remove/mkdir failure responses
	StorageErrorKeyword = "Error"

	// StorageMissingKeyword appears when the queried path does not exist
	StorageMissingKeyword = "not found"
)

// LoaderIdleSentinel is the phrase a loader info response contains when no
// application is currently running.
const LoaderIdleSentinel = "No application"

// BadUSBAppName is the application name the Bad USB convenience helper opens.
const BadUSBAppName = "Bad USB"
