package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

import (
	"github.com/timtadh/linkfs"
	"github.com/timtadh/linkfs/errors"
	"github.com/timtadh/linkfs/render"
)

var ErrUsage = errors.New("usage")

type Options struct {
	// Prompt is printed before each command when Interactive is set.
	Prompt      string
	Interactive bool
	// ShowDisk prints the disk after every create, read and delete.
	ShowDisk bool
}

// Shell reads commands one line at a time and runs them against a file
// system.
type Shell struct {
	fs   linkfs.FileSystem
	in   *bufio.Scanner
	out  io.Writer
	opts Options
}

func New(fs linkfs.FileSystem, in io.Reader, out io.Writer, opts Options) *Shell {
	if opts.Prompt == "" {
		opts.Prompt = "linkfs> "
	}
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), maxLine(fs))
	return &Shell{
		fs:   fs,
		in:   sc,
		out:  out,
		opts: opts,
	}
}

// lineSlack is the room left on a line for the command word and the file
// name next to the largest content the disk can hold.
const lineSlack = 64 * 1024

// maxLine is long enough for a create command filling the whole disk
// with the widest UTF-8 characters.
func maxLine(fs linkfs.FileSystem) int {
	return fs.Capacity()*utf8.UTFMax + lineSlack
}

// Run executes commands until the input ends or an exit command is
// read. Command failures are printed and do not stop the loop; only
// errors reading the input or writing the output are returned.
func (s *Shell) Run() error {
	for {
		if s.opts.Interactive {
			if _, err := fmt.Fprint(s.out, s.opts.Prompt); err != nil {
				return err
			}
		}
		if !s.in.Scan() {
			return s.in.Err()
		}
		quit, err := s.Exec(s.in.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Exec runs one command line. It reports whether the line asked the
// shell to stop.
func (s *Shell) Exec(line string) (quit bool, err error) {
	name, args := split(line)
	if name == "" {
		return false, nil
	}
	c, has := lookup(name)
	if !has {
		_, err := fmt.Fprintf(s.out, "unknown command '%v', try help\n", name)
		return false, err
	}
	if c.quit {
		_, err := fmt.Fprintln(s.out, "bye")
		return true, err
	}
	cerr := c.run(s, args)
	if errors.Is(cerr, ErrUsage) {
		_, err := fmt.Fprintf(s.out, "usage: %v\n", c.usage)
		return false, err
	} else if cerr != nil {
		if err := render.Error(s.out, cerr); err != nil {
			return false, err
		}
	}
	if c.showsDisk && s.opts.ShowDisk {
		return false, render.Disk(s.out, s.fs.Snapshot())
	}
	return false, nil
}

// split separates the command word from the rest of the line. The rest
// keeps its inner spaces since file content may contain them.
func split(line string) (string, string) {
	line = strings.TrimSpace(line)
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}
