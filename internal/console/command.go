package console

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArity       = errors.New("invalid number of arguments")
	ErrBadArgument    = errors.New("invalid argument")
)

type Kind int8

const (
	NewGame Kind = iota
	Reveal
	Flag
	Question
	Help
	Quit
)

func (k Kind) String() string {
	switch k {
	case NewGame:
		return "new game"
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	case Question:
		return "question"
	case Help:
		return "help"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
}

type Command struct {
	Kind Kind
	Args []int
}

type commandSpec struct {
	kind             Kind
	minArgs, maxArgs int
}

// Maps known commands to their kind and number of arguments
var commandSpecs = map[string]commandSpec{
	"n":    {NewGame, 2, 3},
	"r":    {Reveal, 2, 2},
	"f":    {Flag, 2, 2},
	"q":    {Question, 2, 2},
	"h":    {Help, 0, 0},
	"help": {Help, 0, 0},
	"quit": {Quit, 0, 0},
	"exit": {Quit, 0, 0},
}

func commandNames() []string {
	return slices.Sorted(maps.Keys(commandSpecs))
}

var ordinals = []string{"first", "second", "third"}

// ParseCommand reads a single command such as "r 3 4". It only checks the
// shape of the command; coordinates are validated by the board.
func ParseCommand(s string) (Command, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty command", ErrUnknownCommand)
	}
	name, args := fields[0], fields[1:]
	spec, ok := commandSpecs[name]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}
	if len(args) < spec.minArgs || len(args) > spec.maxArgs {
		want := strconv.Itoa(spec.minArgs)
		if spec.maxArgs != spec.minArgs {
			want += " or " + strconv.Itoa(spec.maxArgs)
		}
		return Command{}, fmt.Errorf(
			"%w: %s takes %s, got %d", ErrBadArity, name, want, len(args),
		)
	}

	cmd := Command{Kind: spec.kind, Args: make([]int, len(args))}
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Command{}, fmt.Errorf(
				"%w: %s argument must be an int, got %q",
				ErrBadArgument, ordinals[i], arg,
			)
		}
		cmd.Args[i] = n
	}
	return cmd, nil
}

// splitCommands yields the non-blank ';'-separated commands of a line.
func splitCommands(line string) iter.Seq[string] {
	return func(yield func(string) bool) {
		found := true
		var piece string
		for found {
			piece, line, found = strings.Cut(line, ";")
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			if !yield(piece) {
				return
			}
		}
	}
}
