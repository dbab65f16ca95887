package console

import (
	"github.com/chzyer/readline"

	"github.com/vancomm/minesweeper-engine/internal/render"
)

const prompt = "mines> "

// NewReadline sets up the interactive prompt with tab completion of command
// names. Session output should go through the instance's Stdout so that it
// does not garble the prompt.
func NewReadline(r *render.Renderer) (*readline.Instance, error) {
	completer := readline.NewPrefixCompleter()
	for _, name := range commandNames() {
		completer.Children = append(completer.Children, readline.PcItem(name))
	}

	return readline.NewEx(&readline.Config{
		Prompt:          r.Prompt(prompt),
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
}
