package tui

import (
	"strings"
	"testing"
	"time"
)

func TestParseCommand_Query(t *testing.T) {
	t.Parallel()
	cmd, err := ParseCommand("query start=2020-01-01 end=2020-01-31 max-distance=0.05 hazardous=true limit=5")
	if err != nil {
		t.Fatalf("ParseCommand() error: %v", err)
	}
	if cmd.Kind != CmdQuery {
		t.Fatalf("Kind = %v, want CmdQuery", cmd.Kind)
	}
	if cmd.Limit != 5 {
		t.Errorf("Limit = %d, want 5", cmd.Limit)
	}

	c := cmd.Criteria
	wantStart := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if c.StartDate == nil || !c.StartDate.Equal(wantStart) {
		t.Errorf("StartDate = %v, want %v", c.StartDate, wantStart)
	}
	if c.DistanceMax == nil || *c.DistanceMax != 0.05 {
		t.Errorf("DistanceMax = %v, want 0.05", c.DistanceMax)
	}
	if c.Hazardous == nil || !*c.Hazardous {
		t.Errorf("Hazardous = %v, want true", c.Hazardous)
	}
	if len(c.Build()) != 4 {
		t.Errorf("Build() = %d filters, want 4", len(c.Build()))
	}
}

func TestParseCommand_QueryZeroBound(t *testing.T) {
	t.Parallel()
	cmd, err := ParseCommand("query min-distance=0")
	if err != nil {
		t.Fatalf("ParseCommand() error: %v", err)
	}
	if cmd.Criteria.DistanceMin == nil || *cmd.Criteria.DistanceMin != 0 {
		t.Errorf("DistanceMin = %v, want active zero bound", cmd.Criteria.DistanceMin)
	}
}

func TestParseCommand_Forms(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		kind  CommandKind
		arg   string
	}{
		{"query", CmdQuery, ""},
		{"q max-velocity=30", CmdQuery, ""},
		{"inspect 433", CmdInspect, "433"},
		{"i 2020 AY1", CmdInspect, "2020 AY1"},
		{"help", CmdHelp, ""},
		{"?", CmdHelp, ""},
		{"quit", CmdQuit, ""},
		{"exit", CmdQuit, ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			cmd, err := ParseCommand(tt.input)
			if err != nil {
				t.Fatalf("ParseCommand(%q) error: %v", tt.input, err)
			}
			if cmd.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", cmd.Kind, tt.kind)
			}
			if cmd.Arg != tt.arg {
				t.Errorf("Arg = %q, want %q", cmd.Arg, tt.arg)
			}
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		wantErr string
	}{
		{"", "empty"},
		{"   ", "empty"},
		{"launch", "unknown command"},
		{"inspect", "missing designation"},
		{"query max-distance", "key=value"},
		{"query max-distance=", "key=value"},
		{"query warp=9", "unknown key"},
		{"query date=Jan-1", "YYYY-MM-DD"},
		{"query min-velocity=fast", "not a number"},
		{"query hazardous=maybe", "true/false"},
		{"query limit=-2", "non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			_, err := ParseCommand(tt.input)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseCommand(%q) error = %v, want containing %q", tt.input, err, tt.wantErr)
			}
		})
	}
}
