package shell

import (
	"os"
	"path/filepath"

	"github.com/brettbedarf/vtree"
	"github.com/pkg/errors"
)

func runMkdir(s *Session, args []string) error {
	_, err := s.tree.Create(vtree.NewDirRequest(arg(args, 0)))
	return err
}

func runCreat(s *Session, args []string) error {
	_, err := s.tree.Create(vtree.NewFileRequest(arg(args, 0)))
	return err
}

func runRmdir(s *Session, args []string) error {
	return s.tree.Delete(arg(args, 0), vtree.Directory)
}

func runRm(s *Session, args []string) error {
	return s.tree.Delete(arg(args, 0), vtree.File)
}

func runCd(s *Session, args []string) error {
	return s.tree.Chdir(arg(args, 0))
}

func runPwd(s *Session, _ []string) error {
	IndentedFprintln(s.out, 0, s.tree.Pwd())
	return nil
}

func runLs(s *Session, args []string) error {
	entries, err := s.tree.List(arg(args, 0))
	if err != nil {
		return err
	}
	IndentedFprintf(s.out, 1, "name%stype\n", indentation)
	for e := range entries {
		IndentedFprintf(s.out, 1, "%s%s%c\n", e.Name, indentation, e.Kind.Code())
	}
	return nil
}

func runPrint(s *Session, _ []string) error {
	return s.tree.Walk(func(n vtree.NodeInfo, depth int) error {
		IndentedFprintf(s.out, depth, "|---%s(%c)\n", n.Name(), n.Kind().Code())
		return nil
	})
}

func runFind(s *Session, args []string) error {
	found, err := s.tree.Find(arg(args, 0))
	if err != nil {
		return err
	}
	for _, n := range found {
		p, err := n.Path()
		if err != nil {
			return err
		}
		IndentedFprintln(s.out, 0, p)
	}
	return nil
}

// runSave writes to a temporary file next to the target and renames it into
// place, so a failed save leaves any previous file intact.
func runSave(s *Session, args []string) (err error) {
	name := arg(args, 0)
	if name == "" {
		return errors.Wrap(vtree.ErrInvalidArgument, "missing file name")
	}
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return errors.Wrap(vtree.ErrIOFailure, err.Error())
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err := s.tree.Save(f); err != nil {
		return err
	}
	if err := f.Chmod(os.FileMode(s.cfg.SaveFilePerm)); err != nil {
		return errors.Wrap(vtree.ErrIOFailure, err.Error())
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(vtree.ErrIOFailure, err.Error())
	}
	if err := os.Rename(f.Name(), name); err != nil {
		return errors.Wrap(vtree.ErrIOFailure, err.Error())
	}
	return nil
}

func runReload(s *Session, args []string) error {
	name := arg(args, 0)
	if name == "" {
		return errors.Wrap(vtree.ErrInvalidArgument, "missing file name")
	}
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(vtree.ErrIOFailure, err.Error())
	}
	defer f.Close()

	n, err := s.tree.Reload(f)
	s.logger.Info().Str("file", name).Int("nodes", n).Msg("Reloaded")
	return err
}

func runClear(s *Session, _ []string) error {
	s.tree.Clear()
	return nil
}

func runHelp(s *Session, _ []string) error {
	for _, cmd := range s.reg.Commands() {
		IndentedFprintf(s.out, 1, "%-20s %s\n", cmd.Name+" "+cmd.Usage, cmd.Summary)
	}
	return nil
}

func runQuit(*Session, []string) error {
	return errQuit
}
