// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command fifosim runs operation scripts against a simulated synchronous FIFO
// and prints the state of the FIFO after each tick.
//
// Usage:
//
//	fifosim [flags] [script file]
//
// Without a script, the built-in scenarios are run. A script file of "-"
// reads from stdin. See package internal/script for the script syntax.
//
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/db47h/fifosim"
	"github.com/db47h/fifosim/fifo"
	"github.com/db47h/fifosim/hwlib"
	"github.com/db47h/fifosim/internal/script"
	"github.com/db47h/fifosim/internal/xlog"
	"github.com/pkg/errors"
)

var scenarios = []struct {
	name string
	src  string
}{
	{"three writes", "w 1, w 10, w 100, r, r, r, r, nop"},
	{"fill and drain", "w 1, w 2, w 4, w 8, w 16, r, r, r, r, nop"},
}

type config struct {
	fifo    fifo.Config
	workers int
	expr    string
	file    string
}

func main() {
	var (
		cfg       config
		logLevel  string
		logFormat string
	)
	flag.IntVar(&cfg.fifo.Depth, "depth", 4, "FIFO depth, a power of two")
	flag.IntVar(&cfg.fifo.Width, "width", 32, "element width in bits (1-64)")
	flag.IntVar(&cfg.workers, "workers", 1, "simulation worker goroutines, 0 for GOMAXPROCS")
	flag.StringVar(&cfg.expr, "e", "", "run the given script instead of a file")
	flag.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flag.StringVar(&logFormat, "log-format", "text", "log format: text or json")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("fifosim: ")

	lvl, err := xlog.ParseLevel(logLevel)
	if err != nil {
		log.Fatal(err)
	}
	format, err := xlog.ParseFormat(logFormat)
	if err != nil {
		log.Fatal(err)
	}
	xlog.SetLevel(lvl)
	xlog.Setup(os.Stderr, format)

	if flag.NArg() > 1 {
		log.Fatal("too many arguments")
	}
	cfg.file = flag.Arg(0)

	if err := run(cfg, os.Stdout, os.Stdin); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(cfg config, w io.Writer, stdin io.Reader) error {
	if err := cfg.fifo.Validate(); err != nil {
		return err
	}

	var src string
	switch {
	case cfg.expr != "":
		src = cfg.expr
	case cfg.file == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return errors.Wrap(err, "read script")
		}
		src = string(b)
	case cfg.file != "":
		b, err := os.ReadFile(cfg.file)
		if err != nil {
			return errors.Wrap(err, "read script")
		}
		src = string(b)
	default:
		for _, s := range scenarios {
			fmt.Fprintf(w, "# %s\n", s.name)
			if err := runScript(cfg, w, s.name, s.src); err != nil {
				return err
			}
		}
		return nil
	}
	return runScript(cfg, w, cfg.file, src)
}

func runScript(cfg config, w io.Writer, name, src string) error {
	l := xlog.For(xlog.ComponentScript)

	ins, err := script.Parse(src)
	if err != nil {
		return errors.Wrapf(err, "script %s", name)
	}
	l.Info("script loaded", "name", name, "ticks", len(ins))

	f, err := fifo.New(cfg.fifo)
	if err != nil {
		return err
	}
	var cur fifo.Inputs
	part := hwlib.FIFO(f, func() fifo.Inputs { return cur })
	c, err := fifosim.NewCircuit(cfg.workers, part, hwlib.Monitor(name, f, nil))
	if err != nil {
		return errors.Wrap(err, "build circuit")
	}
	cl := xlog.For(xlog.ComponentCircuit).With("script", name)
	cl.Debug("circuit started", "components", c.Size(), "workers", cfg.workers)
	defer func() {
		c.Dispose()
		cl.Debug("circuit stopped", "ticks", c.Ticks())
	}()

	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintln(tw, "tick\tinputs\twrote\tread\tdata\tlen\tfull\tempty")
	for _, in := range ins {
		cur = in
		c.Tick()
		res, o := part.Last(), f.Outputs()
		fmt.Fprintf(tw, "%d\t%s\t%v\t%v\t%d\t%d\t%v\t%v\n", c.Ticks()-1, describe(in), res.Wrote, res.Read, o.Data, f.Len(), o.Full, o.Empty)
	}
	return tw.Flush()
}

func describe(in fifo.Inputs) string {
	var s string
	switch {
	case in.Reset:
		return "reset"
	case in.Write && in.Read:
		s = fmt.Sprintf("rw %d", in.Data)
	case in.Write:
		s = fmt.Sprintf("w %d", in.Data)
	case in.Read:
		s = "r"
	default:
		s = "nop"
	}
	if !in.Select {
		s = "deselect " + s
	}
	return s
}
