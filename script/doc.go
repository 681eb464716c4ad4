// Package script provides parsing for Flipper CLI command scripts.
//
// # Script Format
//
// A script is a plain text file with one CLI command per line, executed in
// order. Blank lines and comment lines are skipped.
//
// Example script:
//
//	# deploy the badusb payload
//	storage mkdir /ext/badusb
//	loader close
//	loader open "Bad USB" /ext/badusb/demo.txt
//
// Commands are passed to the device verbatim, so anything the CLI accepts is
// valid. Lines that the device's line reader cannot take are rejected at
// parse time: commands longer than 255 bytes and commands containing control
// characters.
//
// # Usage
//
// Parse a script from disk and run it over a session:
//
//	sc, err := script.Parse("deploy.fcs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, cmd := range sc.Commands {
//	    response, err := sess.Send(ctx, cmd.Text)
//	    if err != nil {
//	        log.Fatalf("line %d: %v", cmd.Line, err)
//	    }
//	    fmt.Println(response)
//	}
//
// Parse from an io.Reader:
//
//	sc, err := script.ParseReader(strings.NewReader(content))
//
// # Error Handling
//
// Parse returns detailed errors for invalid scripts:
//   - Commands over the CLI's line length limit
//   - Commands containing control characters
//   - Scripts with no commands at all
//
// Command errors carry the offending line number.
package script
