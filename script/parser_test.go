package script

import (
	"strings"
	"testing"
)

func TestParseReader(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCmds  []string
		wantLines []int
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "commands in order",
			input:     "loader close\nstorage list /ext\nloader open \"Clock\"\n",
			wantCmds:  []string{"loader close", "storage list /ext", `loader open "Clock"`},
			wantLines: []int{1, 2, 3},
		},
		{
			name:      "comments and blank lines skipped",
			input:     "# setup\n\nstorage mkdir /ext/demo\n   \n# done\nstorage list /ext/demo\n",
			wantCmds:  []string{"storage mkdir /ext/demo", "storage list /ext/demo"},
			wantLines: []int{3, 6},
		},
		{
			name:      "surrounding whitespace trimmed",
			input:     "   device_info   \n",
			wantCmds:  []string{"device_info"},
			wantLines: []int{1},
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
			errMsg:  "no commands",
		},
		{
			name:    "only comments",
			input:   "# nothing\n# to run\n",
			wantErr: true,
			errMsg:  "no commands",
		},
		{
			name:    "command too long",
			input:   "info\n" + strings.Repeat("x", 300) + "\n",
			wantErr: true,
			errMsg:  "line 2: command too long",
		},
		{
			name:    "control character",
			input:   "info\nbell\x07command\n",
			wantErr: true,
			errMsg:  "line 2: command contains control character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := ParseReader(strings.NewReader(tt.input))

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error = %v, want substring %q", err, tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(sc.Commands) != len(tt.wantCmds) {
				t.Fatalf("commands = %d, want %d", len(sc.Commands), len(tt.wantCmds))
			}
			for i, cmd := range sc.Commands {
				if cmd.Text != tt.wantCmds[i] {
					t.Errorf("command %d = %q, want %q", i, cmd.Text, tt.wantCmds[i])
				}
				if cmd.Line != tt.wantLines[i] {
					t.Errorf("command %d line = %d, want %d", i, cmd.Line, tt.wantLines[i])
				}
			}
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse("/nonexistent/deploy.fcs")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to open file") {
		t.Errorf("error = %v, want open failure", err)
	}
}
