package shell

// Built-in verbs
const (
	CmdMkdir  = "mkdir"
	CmdCreat  = "creat"
	CmdRmdir  = "rmdir"
	CmdRm     = "rm"
	CmdCd     = "cd"
	CmdPwd    = "pwd"
	CmdLs     = "ls"
	CmdPrint  = "print"
	CmdFind   = "find"
	CmdSave   = "save"
	CmdReload = "reload"
	CmdClear  = "clear"
	CmdHelp   = "help"
	CmdQuit   = "quit"
)

var builtins = []Command{
	{Name: CmdMkdir, Usage: "<path>", Summary: "create a directory", MaxArgs: 1, Run: runMkdir},
	{Name: CmdCreat, Usage: "<path>", Summary: "create a file", MaxArgs: 1, Run: runCreat},
	{Name: CmdRmdir, Usage: "<path>", Summary: "remove an empty directory", MaxArgs: 1, Run: runRmdir},
	{Name: CmdRm, Usage: "<path>", Summary: "remove a file", MaxArgs: 1, Run: runRm},
	{Name: CmdCd, Usage: "[path]", Summary: "change directory, root when no path", MaxArgs: 1, Run: runCd},
	{Name: CmdPwd, Summary: "print the current directory", Run: runPwd},
	{Name: CmdLs, Usage: "[path]", Summary: "list a directory", MaxArgs: 1, Run: runLs},
	{Name: CmdPrint, Summary: "print the whole tree", Run: runPrint},
	{Name: CmdFind, Usage: "<pattern>", Summary: "list paths matching a glob, ** crosses directories", MaxArgs: 1, Run: runFind},
	{Name: CmdSave, Usage: "<file>", Summary: "write the tree to a file", MaxArgs: 1, Run: runSave},
	{Name: CmdReload, Usage: "<file>", Summary: "replace the tree with one read from a file", MaxArgs: 1, Run: runReload},
	{Name: CmdClear, Summary: "remove everything below the root", Run: runClear},
	{Name: CmdHelp, Summary: "list commands", Run: runHelp},
	{Name: CmdQuit, Summary: "clear the tree and exit", Run: runQuit},
}

// RegisterBuiltins registers all built-in commands by default
// or only the specific ones if verbs are provided
func RegisterBuiltins(r *Registry, verbs ...string) {
	want := map[string]bool{}
	for _, v := range verbs {
		want[v] = true
	}
	for _, cmd := range builtins {
		if len(verbs) > 0 && !want[cmd.Name] {
			continue
		}
		// duplicates keep the caller's registration
		_ = r.Register(cmd)
	}
}
