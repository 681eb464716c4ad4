package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Constants for script parsing.
const (
	// MaxCommandLength is the longest command line the device's CLI accepts
	MaxCommandLength = 255

	// CommentPrefix marks a line as a comment
	CommentPrefix = "#"

	// DefaultCommandCapacity is the default initial capacity for the commands slice
	DefaultCommandCapacity = 64
)

// Parse parses a command script from the given file path.
// Returns the complete script or an error if parsing fails.
//
// Example:
//
//	sc, err := script.Parse("deploy.fcs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Commands: %d\n", len(sc.Commands))
func Parse(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a command script from any io.Reader.
// This is useful for testing and reading from non-file sources.
//
// Example:
//
//	sc, err := script.ParseReader(strings.NewReader(content))
func ParseReader(r io.Reader) (*Script, error) {
	scanner := bufio.NewScanner(r)

	sc := &Script{
		Commands: make([]*Command, 0, DefaultCommandCapacity),
	}

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}

		if err := validateCommand(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		sc.Commands = append(sc.Commands, &Command{
			Text: line,
			Line: lineNum,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	if len(sc.Commands) == 0 {
		return nil, fmt.Errorf("no commands found in script")
	}

	return sc, nil
}

// validateCommand rejects lines the device's line reader cannot take: the
// CLI buffers a bounded line and interprets control bytes instead of
// passing them through.
func validateCommand(cmd string) error {
	if len(cmd) > MaxCommandLength {
		return fmt.Errorf("command too long: %d bytes, maximum is %d", len(cmd), MaxCommandLength)
	}

	for i := 0; i < len(cmd); i++ {
		if cmd[i] < 0x20 || cmd[i] == 0x7F {
			return fmt.Errorf("command contains control character 0x%02X", cmd[i])
		}
	}

	return nil
}
