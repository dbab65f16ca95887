package console

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Command
	}{
		{"n 9 9", Command{Kind: NewGame, Args: []int{9, 9}}},
		{"n 16 30 99", Command{Kind: NewGame, Args: []int{16, 30, 99}}},
		{"r 0 1", Command{Kind: Reveal, Args: []int{0, 1}}},
		{"  f   2 3 ", Command{Kind: Flag, Args: []int{2, 3}}},
		{"q -1 4", Command{Kind: Question, Args: []int{-1, 4}}},
		{"help", Command{Kind: Help, Args: []int{}}},
		{"h", Command{Kind: Help, Args: []int{}}},
		{"quit", Command{Kind: Quit, Args: []int{}}},
		{"exit", Command{Kind: Quit, Args: []int{}}},
	}
	for _, test := range tests {
		cmd, err := ParseCommand(test.input)
		require.NoError(t, err, test.input)
		assert.Equal(t, test.want, cmd, test.input)
	}
}

func TestParseCommandErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		err   error
		msg   string
	}{
		{"", ErrUnknownCommand, "unknown command: empty command"},
		{"x 1 2", ErrUnknownCommand, `unknown command "x"`},
		{"debug", ErrUnknownCommand, `unknown command "debug"`},
		{"R 1 2", ErrUnknownCommand, `unknown command "R"`},
		{"r 1", ErrBadArity, "invalid number of arguments: r takes 2, got 1"},
		{"f 1 2 3", ErrBadArity, "invalid number of arguments: f takes 2, got 3"},
		{"n 9", ErrBadArity, "invalid number of arguments: n takes 2 or 3, got 1"},
		{"quit now", ErrBadArity, "invalid number of arguments: quit takes 0, got 1"},
		{"r a 1", ErrBadArgument, `invalid argument: first argument must be an int, got "a"`},
		{"q 1 1.5", ErrBadArgument, `invalid argument: second argument must be an int, got "1.5"`},
		{"n 9 9 many", ErrBadArgument, `invalid argument: third argument must be an int, got "many"`},
	}
	for _, test := range tests {
		_, err := ParseCommand(test.input)
		require.ErrorIs(t, err, test.err, test.input)
		assert.EqualError(t, err, test.msg)
	}
}

func TestSplitCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{"r 1 1", []string{"r 1 1"}},
		{"r 1 1; f 2 2 ;q 0 0", []string{"r 1 1", "f 2 2", "q 0 0"}},
		{";; r 1 1 ;  ; ", []string{"r 1 1"}},
		{"", nil},
		{"   ", nil},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, slices.Collect(splitCommands(test.input)),
			"%q", test.input)
	}
}

func TestSplitCommandsStops(t *testing.T) {
	t.Parallel()

	var got []string
	for piece := range splitCommands("a;b;c") {
		got = append(got, piece)
		if piece == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestCommandNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"exit", "f", "h", "help", "n", "q", "quit", "r"},
		commandNames())
}
