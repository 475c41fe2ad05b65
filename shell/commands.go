package shell

import (
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/linkfs/render"
)

type command struct {
	names     []string
	usage     string
	help      string
	showsDisk bool
	quit      bool
	run       func(s *Shell, args string) error
}

var commands []*command

func init() {
	// the digits are the entries of the classic numbered menu
	// and take the same arguments as the named commands
	commands = []*command{
		{
			names:     []string{"create", "1"},
			usage:     "create NAME CONTENT",
			help:      "store CONTENT (rest of the line) as a new file",
			showsDisk: true,
			run:       (*Shell).create,
		},
		{
			names:     []string{"read", "cat", "2"},
			usage:     "read NAME",
			help:      "print the content of a file",
			showsDisk: true,
			run:       (*Shell).read,
		},
		{
			names:     []string{"delete", "rm", "3"},
			usage:     "delete NAME",
			help:      "delete a file and free its blocks",
			showsDisk: true,
			run:       (*Shell).delete,
		},
		{
			names: []string{"list", "ls", "4"},
			usage: "list",
			help:  "print the file table",
			run:   (*Shell).list,
		},
		{
			names: []string{"disk", "5"},
			usage: "disk",
			help:  "print every block of the disk",
			run:   (*Shell).disk,
		},
		{
			names: []string{"chain", "blocks"},
			usage: "chain NAME",
			help:  "print the blocks of a file in chain order",
			run:   (*Shell).chain,
		},
		{
			names: []string{"verify", "fsck"},
			usage: "verify",
			help:  "check the disk for inconsistencies",
			run:   (*Shell).verify,
		},
		{
			names: []string{"fingerprint", "sum"},
			usage: "fingerprint",
			help:  "print a SHA3-256 digest of the whole disk",
			run:   (*Shell).fingerprint,
		},
		{
			names: []string{"help", "?"},
			usage: "help",
			help:  "show this message",
			run:   (*Shell).help,
		},
		{
			names: []string{"exit", "quit", "6"},
			usage: "exit",
			help:  "leave the shell",
			quit:  true,
		},
	}
}

func lookup(name string) (*command, bool) {
	name = strings.ToLower(name)
	for _, c := range commands {
		for _, n := range c.names {
			if n == name {
				return c, true
			}
		}
	}
	return nil, false
}

func oneArg(args string) (string, error) {
	if args == "" || strings.ContainsAny(args, " \t") {
		return "", ErrUsage
	}
	return args, nil
}

func (s *Shell) create(args string) error {
	name, content := split(args)
	if name == "" || content == "" {
		return ErrUsage
	}
	if err := s.fs.Create(name, content); err != nil {
		return err
	}
	return render.Ok(s.out, "created '%v' (%d blocks, %d free)", name, len([]rune(content)), s.fs.FreeBlocks())
}

func (s *Shell) read(args string) error {
	name, err := oneArg(args)
	if err != nil {
		return err
	}
	content, err := s.fs.Read(name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.out, "content of '%v': %v\n", name, content)
	return err
}

func (s *Shell) delete(args string) error {
	name, err := oneArg(args)
	if err != nil {
		return err
	}
	if err := s.fs.Delete(name); err != nil {
		return err
	}
	return render.Ok(s.out, "deleted '%v' (%d free)", name, s.fs.FreeBlocks())
}

func (s *Shell) list(args string) error {
	if args != "" {
		return ErrUsage
	}
	return render.Files(s.out, s.fs.List())
}

func (s *Shell) disk(args string) error {
	if args != "" {
		return ErrUsage
	}
	return render.Disk(s.out, s.fs.Snapshot())
}

func (s *Shell) chain(args string) error {
	name, err := oneArg(args)
	if err != nil {
		return err
	}
	idxs, err := s.fs.Chain(name)
	if err != nil {
		return err
	}
	parts := make([]string, 0, len(idxs)+1)
	for _, i := range idxs {
		parts = append(parts, fmt.Sprint(i))
	}
	parts = append(parts, "nil")
	_, err = fmt.Fprintf(s.out, "%v: %v\n", name, strings.Join(parts, " -> "))
	return err
}

func (s *Shell) verify(args string) error {
	if args != "" {
		return ErrUsage
	}
	if err := s.fs.Verify(); err != nil {
		return err
	}
	return render.Ok(s.out, "ok: %d of %d blocks free", s.fs.FreeBlocks(), s.fs.Capacity())
}

func (s *Shell) fingerprint(args string) error {
	if args != "" {
		return ErrUsage
	}
	_, err := fmt.Fprintf(s.out, "%x\n", s.fs.Fingerprint())
	return err
}

func (s *Shell) help(args string) error {
	for _, c := range commands {
		if _, err := fmt.Fprintf(s.out, "  %-22v %v\n", c.usage, c.help); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(s.out, "  the digits 1-6 run the menu entries create, read, delete, list, disk and exit")
	return err
}
