package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(p.commands, 0)
}

func printCommands(commands map[string]*Command, indent int) {
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if printed[command] {
			continue
		}
		printed[command] = true

		names := append([]string{name}, command.Aliases...)
		fmt.Fprintf(os.Stderr, "%s%s",
			strings.Repeat("  ", indent),
			strings.Join(names, " | "),
		)
		if command.Description != "" {
			fmt.Fprintf(os.Stderr, "\t%s", command.Description)
		}
		fmt.Fprintf(os.Stderr, "\n")

		if len(command.Subs) > 0 {
			printCommands(command.Subs, indent+1)
		}
	}
}
