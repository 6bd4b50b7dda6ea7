// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/beevik/term"
	"github.com/nesguin/emu6502/host"
)

var (
	runFile string
)

func init() {
	flag.StringVar(&runFile, "r", "", "load and run a raw binary file, then exit")
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: emu6502 [-r file] [script] ..\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	h := host.New()

	// Break on Ctrl-C.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go handleInterrupt(h, c)

	// Run a program file to completion if requested.
	if runFile != "" {
		if err := h.RunProgram(runFile, os.Stdout); err != nil {
			exitOnError(err)
		}
		os.Exit(0)
	}

	// Run commands contained in command-line files.
	for _, filename := range flag.Args() {
		file, err := os.Open(filename)
		if err != nil {
			exitOnError(err)
		}
		h.RunCommands(file, os.Stdout, false)
		file.Close()
	}

	// Run commands from stdin, interactively when it is a terminal.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	h.RunCommands(os.Stdin, os.Stdout, interactive)
}

func handleInterrupt(h *host.Host, c chan os.Signal) {
	for {
		<-c
		h.Break()
	}
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
