package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/orbitalmech/neoscope/internal/filter"
)

// CommandKind identifies what the explorer should do with a parsed command.
type CommandKind int

const (
	CmdQuery CommandKind = iota
	CmdInspect
	CmdHelp
	CmdQuit
)

// Command is one parsed explorer input line.
type Command struct {
	Kind     CommandKind
	Criteria filter.Criteria
	Limit    int    // 0 means use the session default
	Arg      string // inspect target (designation or name)
}

const dateLayout = "2006-01-02"

// ParseCommand parses an explorer input line. Supported forms:
//
//	query [key=value ...]
//	inspect <designation or name>
//	help
//	quit
//
// Query keys: date, start, end, min-distance, max-distance, min-velocity,
// max-velocity, min-diameter, max-diameter, hazardous, limit. Dates are
// YYYY-MM-DD, hazardous is true/false.
func ParseCommand(input string) (Command, error) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	switch fields[0] {
	case "query", "q":
		return parseQuery(fields[1:])
	case "inspect", "i":
		if len(fields) < 2 {
			return Command{}, fmt.Errorf("inspect: missing designation or name")
		}
		return Command{Kind: CmdInspect, Arg: strings.Join(fields[1:], " ")}, nil
	case "help", "?":
		return Command{Kind: CmdHelp}, nil
	case "quit", "exit":
		return Command{Kind: CmdQuit}, nil
	}
	return Command{}, fmt.Errorf("unknown command %q (try help)", fields[0])
}

func parseQuery(args []string) (Command, error) {
	cmd := Command{Kind: CmdQuery}

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || value == "" {
			return Command{}, fmt.Errorf("query: expected key=value, got %q", arg)
		}

		switch key {
		case "date":
			t, err := parseDate(key, value)
			if err != nil {
				return Command{}, err
			}
			cmd.Criteria.Date = t
		case "start":
			t, err := parseDate(key, value)
			if err != nil {
				return Command{}, err
			}
			cmd.Criteria.StartDate = t
		case "end":
			t, err := parseDate(key, value)
			if err != nil {
				return Command{}, err
			}
			cmd.Criteria.EndDate = t
		case "min-distance":
			if err := parseFloat(key, value, &cmd.Criteria.DistanceMin); err != nil {
				return Command{}, err
			}
		case "max-distance":
			if err := parseFloat(key, value, &cmd.Criteria.DistanceMax); err != nil {
				return Command{}, err
			}
		case "min-velocity":
			if err := parseFloat(key, value, &cmd.Criteria.VelocityMin); err != nil {
				return Command{}, err
			}
		case "max-velocity":
			if err := parseFloat(key, value, &cmd.Criteria.VelocityMax); err != nil {
				return Command{}, err
			}
		case "min-diameter":
			if err := parseFloat(key, value, &cmd.Criteria.DiameterMin); err != nil {
				return Command{}, err
			}
		case "max-diameter":
			if err := parseFloat(key, value, &cmd.Criteria.DiameterMax); err != nil {
				return Command{}, err
			}
		case "hazardous":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return Command{}, fmt.Errorf("query: hazardous: %q is not true/false", value)
			}
			cmd.Criteria.Hazardous = &b
		case "limit":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return Command{}, fmt.Errorf("query: limit: %q is not a non-negative integer", value)
			}
			cmd.Limit = n
		default:
			return Command{}, fmt.Errorf("query: unknown key %q", key)
		}
	}

	return cmd, nil
}

func parseDate(key, value string) (*time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("query: %s: %q is not a YYYY-MM-DD date", key, value)
	}
	return &t, nil
}

func parseFloat(key, value string, dest **float64) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("query: %s: %q is not a number", key, value)
	}
	*dest = &f
	return nil
}
