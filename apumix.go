// This file is part of Apumix.
//
// Apumix is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Apumix is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Apumix.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/apumix/curated"
	"github.com/jetsetilly/apumix/gosrc"
	"github.com/jetsetilly/apumix/logger"
	"github.com/jetsetilly/apumix/modalflag"
	"github.com/jetsetilly/apumix/tables"
	"github.com/jetsetilly/apumix/tone"
	"github.com/jetsetilly/apumix/version"
	"github.com/jetsetilly/apumix/wavwriter"
)

// exit values.
const (
	exitSuccess    = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch parses the arguments and runs the selected mode. Normal output is
// sent to stdout. Errors and the echoed log are sent to stderr. The return
// value is the exit value for the program.
func launch(args []string, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("TABLES", "GOSRC", "WAV", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitSuccess

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "TABLES":
		err = printTables(md, stdout, stderr)

	case "GOSRC":
		err = writeSource(md, stdout, stderr)

	case "WAV":
		err = writeWav(md, stderr)

	case "VERSION":
		_, err = fmt.Fprintln(stdout, version.String())
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitSuccess
}

// setLog echoes the central log to output if echo is true.
func setLog(echo bool, output io.Writer) {
	if echo {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}

func printTables(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLog(*log, stderr)

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	logger.Logf(logger.Allow, "tables", "%d pulse and %d tnd entries", tables.Pulse.Count, tables.Tnd.Count)

	return tables.Run(stdout)
}

func writeSource(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) (rerr error) {
	md.NewMode()
	md.AdditionalHelp("Go source is written to the named file or to stdout if no file is named.")

	pkg := md.AddString("pkg", "apu", "package name of the generated source")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLog(*log, stderr)

	switch len(md.RemainingArgs()) {
	case 0:
		return gosrc.Write(stdout, *pkg)

	case 1:
		f, err := os.Create(md.GetArg(0))
		if err != nil {
			return curated.Errorf("gosrc: %v", err)
		}
		defer func() {
			err := f.Close()
			if err != nil && rerr == nil {
				rerr = curated.Errorf("gosrc: %v", err)
			}
		}()

		logger.Logf(logger.Allow, "gosrc", "writing to %s", md.GetArg(0))

		return gosrc.Write(f, *pkg)
	}

	return curated.Errorf("too many arguments for %s mode", md)
}

func writeWav(md *modalflag.Modes, stderr io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Records a sweep of the pulse channels through the mixer at every volume.")

	rate := md.AddInt("rate", 44100, "sample rate of the wav file")
	step := md.AddDuration("step", 250*time.Millisecond, "duration of each volume step")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLog(*log, stderr)

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("wav file required for %s mode", md)

	case 1:
		aw, err := wavwriter.New(md.GetArg(0), *rate)
		if err != nil {
			return err
		}

		err = tone.Sweep(aw, *rate, *step)
		if err != nil {
			return err
		}

		return aw.EndMixing()
	}

	return curated.Errorf("too many arguments for %s mode", md)
}
