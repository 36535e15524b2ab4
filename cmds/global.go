package cmds

import "os"

// GlobalExecutor backs the package-level Define/Var/Switch/Collect helpers,
// so any package can register flags from an init function.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against the global executor. Errors print usage and
// terminate the process.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		GlobalExecutor.PrintUsage()
		os.Exit(1)
	}
}
