// Where: internal/app/completion.go
// What: Shell completion command implementation.
// Why: Provide tab completion for bash, zsh, and fish.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
)

// CompletionCmd defines the structure for the completion command.
type CompletionCmd struct {
	Bash CompletionBashCmd `cmd:"" help:"Generate bash completion script"`
	Zsh  CompletionZshCmd  `cmd:"" help:"Generate zsh completion script"`
	Fish CompletionFishCmd `cmd:"" help:"Generate fish completion script"`
}

type (
	CompletionBashCmd struct{}
	CompletionZshCmd  struct{}
	CompletionFishCmd struct{}
)

// completionModel walks the Kong model and collects the visible commands and
// their subcommands.
func completionModel(cli CLI) ([]string, map[string][]string) {
	parser, _ := kong.New(&cli)

	var commands []string
	subcommands := make(map[string][]string)
	for _, node := range parser.Model.Children {
		if node.Hidden || strings.HasPrefix(node.Name, "__") {
			continue
		}
		commands = append(commands, node.Name)
		var subs []string
		for _, sub := range node.Children {
			if sub.Hidden || strings.HasPrefix(sub.Name, "__") {
				continue
			}
			subs = append(subs, sub.Name)
		}
		if len(subs) > 0 {
			subcommands[node.Name] = subs
		}
	}
	return commands, subcommands
}

func runCompletionBash(cli CLI, out io.Writer) int {
	commands, subcommands := completionModel(cli)

	var caseParts []string
	for cmd, subs := range subcommands {
		part := fmt.Sprintf(`        %s)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;`, cmd, strings.Join(subs, " "))
		caseParts = append(caseParts, part)
	}

	script := `_stackforge_completion() {
    local cur prev cmd sub opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    cmd="${COMP_WORDS[1]}"
    sub="${COMP_WORDS[2]}"
    opts="%s"

    if [[ "${prev}" == "--preset" ]]; then
        COMPREPLY=( $(compgen -W "$(_stackforge_complete preset)" -- "${cur}") )
        return 0
    fi
    if [[ "${cmd}" == "preset" && ( "${sub}" == "show" ) ]]; then
        COMPREPLY=( $(compgen -W "$(_stackforge_complete preset)" -- "${cur}") )
        return 0
    fi

    case "${prev}" in
%s
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
}
_stackforge_complete() {
    command stackforge __complete "$1" 2>/dev/null
}
complete -F _stackforge_completion stackforge
`
	fmt.Fprintf(out, script, strings.Join(commands, " "), strings.Join(caseParts, "\n"))
	return 0
}

func runCompletionZsh(cli CLI, out io.Writer) int {
	commands, _ := completionModel(cli)

	script := `#compdef stackforge
_stackforge_completion() {
    local -a commands
    commands=(
        %s
    )
    local prev="${words[$CURRENT-1]}"
    local cmd="${words[2]}"
    local sub="${words[3]}"
    if [[ "${prev}" == "--preset" ]]; then
        _values 'presets' ${(f)"$(command stackforge __complete preset 2>/dev/null)"}
        return
    fi
    if [[ "${cmd}" == "preset" && "${sub}" == "show" ]]; then
        _values 'presets' ${(f)"$(command stackforge __complete preset 2>/dev/null)"}
        return
    fi
    if (( CURRENT == 2 )); then
        _describe 'command' commands
        return
    fi
    case "${cmd}" in
        preset)
            _values 'subcommand' list show save
            ;;
        completion)
            _values 'shell' bash zsh fish
            ;;
    esac
}
_stackforge_completion "$@"
`
	fmt.Fprintf(out, script, strings.Join(commands, "\n        "))
	return 0
}

func runCompletionFish(cli CLI, out io.Writer) int {
	commands, subcommands := completionModel(cli)

	var lines []string
	lines = append(lines, fmt.Sprintf(
		`complete -c stackforge -f -n "__fish_use_subcommand" -a "%s"`,
		strings.Join(commands, " ")))
	for cmd, subs := range subcommands {
		lines = append(lines, fmt.Sprintf(
			`complete -c stackforge -f -n "__fish_seen_subcommand_from %s" -a "%s"`,
			cmd, strings.Join(subs, " ")))
	}
	lines = append(lines,
		`complete -c stackforge -f -l preset -a "(command stackforge __complete preset 2>/dev/null)"`,
		`complete -c stackforge -f -n "__fish_seen_subcommand_from preset; and __fish_seen_subcommand_from show" -a "(command stackforge __complete preset 2>/dev/null)"`)

	fmt.Fprintln(out, strings.Join(lines, "\n"))
	return 0
}
