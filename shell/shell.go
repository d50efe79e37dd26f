// Package shell is the line oriented command interpreter driving a
// [vtree.Tree]. Each input line is a verb followed by at most one pathname.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/brettbedarf/vtree"
	"github.com/brettbedarf/vtree/config"
	"github.com/brettbedarf/vtree/internal/util"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// errQuit is returned by the quit handler to end the session
var errQuit = errors.New("quit")

// Session holds one interpreter over a tree. It is not safe for concurrent use.
type Session struct {
	tree   vtree.Tree
	cfg    *config.Config
	reg    *Registry
	out    io.Writer
	id     uuid.UUID
	logger util.Logger
}

// New creates a session writing command output to out with every built-in
// command registered.
func New(tree vtree.Tree, cfg *config.Config, out io.Writer) *Session {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	reg := NewRegistry()
	RegisterBuiltins(reg)

	id := uuid.New()
	logger := util.GetLogger("Shell").With().Str("session", id.String()).Logger()
	return &Session{
		tree:   tree,
		cfg:    cfg,
		reg:    reg,
		out:    out,
		id:     id,
		logger: logger,
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Registry exposes the session's commands so callers can add their own
func (s *Session) Registry() *Registry {
	return s.reg
}

// Tree returns the tree the session operates on
func (s *Session) Tree() vtree.Tree {
	return s.tree
}

// Serve reads commands from in until quit or end of input. Either way the
// tree is cleared before returning. Command errors are printed and never end
// the session; only a read failure is returned.
func (s *Session) Serve(in io.Reader) error {
	s.logger.Info().Msg("Session started")
	scanner := bufio.NewScanner(in)
	for {
		if s.cfg.Prompt {
			fmt.Fprint(s.out, s.tree.Pwd()+s.cfg.PromptSuffix)
		}
		if !scanner.Scan() {
			break
		}
		if quit, _ := s.Exec(scanner.Text()); quit {
			s.logger.Info().Msg("Session ended by quit")
			return nil
		}
	}

	s.tree.Clear()
	if err := scanner.Err(); err != nil {
		s.logger.Error().Err(err).Msg("Failed reading commands")
		return errors.Wrap(vtree.ErrIOFailure, err.Error())
	}
	if s.cfg.Prompt {
		fmt.Fprintln(s.out)
	}
	s.logger.Info().Msg("Session ended at end of input")
	return nil
}

// Exec runs a single command line. Errors are printed as "<verb>: <error>"
// and returned. quit is true once the quit command has cleared the tree.
func (s *Session) Exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	verb, args := fields[0], fields[1:]
	s.logger.Trace().Str("verb", verb).Strs("args", args).Msg("Exec")

	err = s.run(verb, args)
	if errors.Is(err, errQuit) {
		s.tree.Clear()
		return true, nil
	}
	if err != nil {
		s.logger.Debug().Err(err).Str("verb", verb).Msg("Command failed")
		fmt.Fprintf(s.out, "%s: %v\n", verb, err)
	}
	return false, err
}

func (s *Session) run(verb string, args []string) error {
	cmd, ok := s.reg.Lookup(verb)
	if !ok {
		return vtree.ErrUnknownCommand
	}
	if len(args) > cmd.MaxArgs {
		return errors.Wrapf(vtree.ErrInvalidArgument, "too many arguments, usage: %s %s", cmd.Name, cmd.Usage)
	}
	return cmd.Run(s, args)
}

// arg returns args[i] or "" when absent
func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
