package task

import "testing"

func TestIsTaskLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"- [ ] open task", true},
		{"- [x] done task", true},
		{"- [X] done task", true},
		{"- [", true},
		{"# Task List", false},
		{"", false},
		{" - [ ] indented", false},
		{"-[ ] missing space", false},
		{"* [ ] wrong bullet", false},
	}

	for _, tt := range tests {
		if got := IsTaskLine(tt.line); got != tt.want {
			t.Errorf("IsTaskLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestIsDone(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"- [x] lower", true},
		{"- [X] upper", true},
		{"- [ ] open", false},
		{"- [x]no space after marker", true},
	}

	for _, tt := range tests {
		if got := isDone(tt.line); got != tt.want {
			t.Errorf("isDone(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestLineText(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"- [ ] buy milk", "buy milk"},
		{"- [x] call mom", "call mom"},
		{"- [X] shout", "shout"},
		{"- [ ]   padded   ", "padded"},
	}

	for _, tt := range tests {
		if got := lineText(tt.line); got != tt.want {
			t.Errorf("lineText(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}
