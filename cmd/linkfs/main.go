package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strconv"
)

import (
	"github.com/timtadh/getopt"

	"github.com/timtadh/linkfs"
	"github.com/timtadh/linkfs/logger"
	"github.com/timtadh/linkfs/shell"
)

var ErrorCodes map[string]int = map[string]int{
	"usage":   0,
	"error":   1,
	"opts":    3,
	"badint":  5,
	"badfile": 7,
}

var UsageMessage string = "linkfs --help"
var ExtendedMessage string = `
linkfs -- a linked allocation file system on an in-memory disk

Reads commands from stdin (or a script) and runs them against a fresh
disk. Nothing is kept once the program exits. Type "help" at the prompt
for the list of commands.

Options
  -h, --help                view this message
  -s, --disk-size=<int>     number of blocks (default 32, or $LINKFS_DISK_SIZE)
  -f, --script=<path>       read commands from path instead of stdin
  --no-disk                 do not print the disk after create, read, delete
  --log=<path>              write a JSON log to path ("-" for stderr)
  -v, --verbose             log every operation, not only rejections

Example

  $ printf 'create a.txt hi\nread a.txt\nls\n' | linkfs -s 8
`

func Usage(code int) {
	fmt.Fprintln(os.Stderr, UsageMessage)
	if code == 0 {
		fmt.Fprintln(os.Stdout, ExtendedMessage)
		code = ErrorCodes["usage"]
	} else {
		fmt.Fprintln(os.Stderr, "Try -h or --help for help")
	}
	os.Exit(code)
}

func ParseInt(str string) int {
	i, err := strconv.Atoi(str)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected an int\n", str)
		Usage(ErrorCodes["badint"])
	}
	return i
}

func AssertFile(fname string) string {
	fname = path.Clean(fname)
	fi, err := os.Stat(fname)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["badfile"])
	} else if fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was a directory, %s\n", fname)
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

func main() {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"hs:f:v",
		[]string{
			"help", "disk-size=", "script=", "no-disk", "log=", "verbose",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}

	cfg, err := linkfs.DefaultConfig().FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["badint"])
	}
	scriptPath := ""
	showDisk := true
	logOpts := logger.Options{Level: slog.LevelInfo}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-s", "--disk-size":
			cfg.DiskSize = ParseInt(oa.Arg())
		case "-f", "--script":
			scriptPath = AssertFile(oa.Arg())
		case "--no-disk":
			showDisk = false
		case "--log":
			logOpts.Enabled = true
			logOpts.Path = oa.Arg()
		case "-v", "--verbose":
			logOpts.Level = slog.LevelDebug
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "Unexpected arguments %v\n", args)
		Usage(ErrorCodes["opts"])
	}

	closer, err := logger.Init(logOpts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["badfile"])
	}
	defer closer.Close()

	dev, err := linkfs.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}

	var in io.Reader = os.Stdin
	interactive := isTerminal(os.Stdin.Fd())
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			Usage(ErrorCodes["badfile"])
		}
		defer f.Close()
		in = f
		interactive = false
	}

	sh := shell.New(dev, in, os.Stdout, shell.Options{
		Interactive: interactive,
		ShowDisk:    showDisk,
	})
	if err := sh.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		closer.Close()
		os.Exit(ErrorCodes["error"])
	}
}
