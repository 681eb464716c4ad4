package protocol

import "testing"

func TestBuildStorageCommands(t *testing.T) {
	tests := []struct {
		name  string
		build func(string) string
		path  string
		want  string
	}{
		{
			name:  "write",
			build: BuildStorageWriteCmd,
			path:  "/ext/notes/todo.txt",
			want:  "storage write /ext/notes/todo.txt",
		},
		{
			name:  "read",
			build: BuildStorageReadCmd,
			path:  "/ext/notes/todo.txt",
			want:  "storage read /ext/notes/todo.txt",
		},
		{
			name:  "stat",
			build: BuildStorageStatCmd,
			path:  "/ext/notes/todo.txt",
			want:  "storage stat /ext/notes/todo.txt",
		},
		{
			name:  "list",
			build: BuildStorageListCmd,
			path:  "/ext",
			want:  "storage list /ext",
		},
		{
			name:  "mkdir",
			build: BuildStorageMkdirCmd,
			path:  "/ext/notes",
			want:  "storage mkdir /ext/notes",
		},
		{
			name:  "remove",
			build: BuildStorageRemoveCmd,
			path:  "/ext/notes/todo.txt",
			want:  "storage remove /ext/notes/todo.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build(tt.path); got != tt.want {
				t.Errorf("command = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildLoaderOpenCmd(t *testing.T) {
	tests := []struct {
		name string
		app  string
		args []string
		want string
	}{
		{
			name: "no arguments",
			app:  "Clock",
			want: `loader open "Clock"`,
		},
		{
			name: "name with spaces is quoted",
			app:  "Bad USB",
			want: `loader open "Bad USB"`,
		},
		{
			name: "single argument",
			app:  "Sub-GHz",
			args: []string{"/ext/subghz/gate.sub"},
			want: `loader open "Sub-GHz" /ext/subghz/gate.sub`,
		},
		{
			name: "multiple arguments",
			app:  "Loader",
			args: []string{"first", "second"},
			want: `loader open "Loader" first second`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildLoaderOpenCmd(tt.app, tt.args...); got != tt.want {
				t.Errorf("command = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildLoaderSignalCmd(t *testing.T) {
	tests := []struct {
		name   string
		signal string
		args   []string
		want   string
	}{
		{
			name:   "bare signal",
			signal: "back",
			want:   "loader signal back",
		},
		{
			name:   "signal with arguments",
			signal: "custom",
			args:   []string{"42"},
			want:   "loader signal custom 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildLoaderSignalCmd(tt.signal, tt.args...); got != tt.want {
				t.Errorf("command = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildLoaderSimpleCommands(t *testing.T) {
	if got := BuildLoaderListCmd(); got != "loader list" {
		t.Errorf("list command = %q, want %q", got, "loader list")
	}
	if got := BuildLoaderCloseCmd(); got != "loader close" {
		t.Errorf("close command = %q, want %q", got, "loader close")
	}
	if got := BuildLoaderInfoCmd(); got != "loader info" {
		t.Errorf("info command = %q, want %q", got, "loader info")
	}
}
