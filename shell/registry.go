package shell

import "github.com/pkg/errors"

// Handler runs one command. args excludes the verb and never holds more than
// the command's MaxArgs entries.
type Handler func(s *Session, args []string) error

// Command ties a verb to its handler
type Command struct {
	Name    string
	Usage   string // argument synopsis shown by help, e.g. "<path>"
	Summary string
	MaxArgs int
	Run     Handler
}

// Registry maps verbs to commands and remembers registration order for help
type Registry struct {
	cmds  map[string]Command
	order []string
}

func NewRegistry() *Registry {
	return &Registry{cmds: map[string]Command{}}
}

// Register adds cmd under cmd.Name. A verb that is already registered keeps
// its first handler and an error is returned.
func (r *Registry) Register(cmd Command) error {
	if cmd.Name == "" || cmd.Run == nil {
		return errors.New("command needs a name and a handler")
	}
	if _, ok := r.cmds[cmd.Name]; ok {
		return errors.Errorf("command %q already registered", cmd.Name)
	}
	r.cmds[cmd.Name] = cmd
	r.order = append(r.order, cmd.Name)
	return nil
}

// Lookup finds the command for verb
func (r *Registry) Lookup(verb string) (Command, bool) {
	cmd, ok := r.cmds[verb]
	return cmd, ok
}

// Commands returns every registered command in registration order
func (r *Registry) Commands() []Command {
	out := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.cmds[name])
	}
	return out
}
