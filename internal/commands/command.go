package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeToggle Type = "toggle"
	TypeReset  Type = "reset"
	TypeAdjust Type = "adjust"
	TypeShow   Type = "show"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type ResetScope string

const (
	ResetChecklist ResetScope = "checklist"
	ResetInventory ResetScope = "inventory"
)

// ToggleArgs.Target is either a 1-based position in checklist order or a task id.
type ToggleArgs struct {
	Target string
}

type ResetArgs struct {
	Scope ResetScope
}

type AdjustArgs struct {
	Item  string
	Delta int
}

type ShowArgs struct {
	Tab string
}

type Command struct {
	Type   Type
	Raw    string
	Toggle *ToggleArgs
	Reset  *ResetArgs
	Adjust *AdjustArgs
	Show   *ShowArgs
}

var showAliases = map[string]string{
	"dashboard": "dashboard",
	"dash":      "dashboard",
	"inventory": "inventory",
	"inv":       "inventory",
	"checklist": "checklist",
	"omni":      "checklist",
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeToggle:
		return parseToggle(input, args)
	case TypeReset:
		return parseReset(input, args)
	case TypeAdjust:
		return parseAdjust(input, args)
	case TypeShow:
		return parseShow(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseToggle(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "toggle requires a task number or id"}
	}
	return Command{Type: TypeToggle, Raw: raw, Toggle: &ToggleArgs{Target: args[0]}}, nil
}

func parseReset(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "reset requires checklist or inventory"}
	}
	scope := ResetScope(strings.ToLower(args[0]))
	switch scope {
	case ResetChecklist, ResetInventory:
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("cannot reset %q", args[0])}
	}
	return Command{Type: TypeReset, Raw: raw, Reset: &ResetArgs{Scope: scope}}, nil
}

// parseAdjust takes the last field as the signed delta so item names may
// contain spaces: "adjust vr headsets -2".
func parseAdjust(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "adjust requires item and delta"}
	}
	last := args[len(args)-1]
	if !strings.HasPrefix(last, "+") && !strings.HasPrefix(last, "-") {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("delta must be signed, got %q", last)}
	}
	delta, err := strconv.Atoi(last)
	if err != nil || delta == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid delta %q", last)}
	}
	item := strings.Join(args[:len(args)-1], " ")
	return Command{Type: TypeAdjust, Raw: raw, Adjust: &AdjustArgs{Item: item, Delta: delta}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires dashboard, inventory or checklist"}
	}
	tab, ok := showAliases[strings.ToLower(args[0])]
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown tab: %s", args[0])}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Tab: tab}}, nil
}
