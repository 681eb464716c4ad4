package script

// Script represents a complete parsed command script.
type Script struct {
	// Commands holds the script's commands in file order
	Commands []*Command
}

// Command represents a single CLI command from a script.
type Command struct {
	// Text is the command line sent to the device
	Text string

	// Line is the 1-based line number the command came from
	Line int
}
