// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"strings"

	"github.com/beevik/cmd"
)

// A command describes a host command and the handler that executes it.
type command struct {
	name        string
	brief       string
	description string
	usage       string
	handler     func(*Host, selection) error
}

// A selection is a command looked up from an input line along with the
// arguments that followed it.
type selection struct {
	Command *cmd.Command
	Args    []string
}

func (s selection) data() *command {
	return s.Command.Data.(*command)
}

func (c *command) descriptor() cmd.CommandDescriptor {
	return cmd.CommandDescriptor{
		Name:        c.name,
		Brief:       c.brief,
		Description: c.description,
		Usage:       c.usage,
		Data:        c,
	}
}

// A commandGroup is a set of commands sharing a leading keyword. The
// unnamed group holds the top-level commands.
type commandGroup struct {
	name     string
	brief    string
	commands []command
}

// Built by init, since the handlers refer back to the command groups.
var commandGroups []commandGroup

func newCommandGroups() []commandGroup {
	return []commandGroup{
		{
			commands: []command{
				{
					name:        "help",
					description: "Display help for a command.",
					usage:       "help [<command>]",
					handler:     (*Host).cmdHelp,
				},
				{
					name:  "assemble",
					brief: "Assemble an instruction",
					description: "Assemble a single instruction and store its machine" +
						" code in memory at the specified address. Use $ as the address" +
						" to continue after the previously assembled instruction.",
					usage:   "assemble <address> <instruction>",
					handler: (*Host).cmdAssemble,
				},
				{
					name:  "disassemble",
					brief: "Disassemble code",
					description: "Disassemble machine code starting at the requested" +
						" address. The number of instruction lines to disassemble may be" +
						" specified as an option. If no address is specified, the" +
						" disassembly continues from where the last disassembly left off.",
					usage:   "disassemble [<address>] [<lines>]",
					handler: (*Host).cmdDisassemble,
				},
				{
					name:  "evaluate",
					brief: "Evaluate an expression",
					description: "Evaluate a mathematical expression. Register names" +
						" (A, X, Y, SP, PC) may appear in the expression.",
					usage:   "evaluate <expression>",
					handler: (*Host).cmdEvaluate,
				},
				{
					name:  "load",
					brief: "Load a binary file",
					description: "Load the contents of a raw binary file into memory" +
						" at $8000, point the reset vector and the program counter at" +
						" it.",
					usage:   "load <filename>",
					handler: (*Host).cmdLoad,
				},
				{
					name:  "program",
					brief: "Load program bytes",
					description: "Load a program given as a series of space-separated" +
						" byte values into memory at $8000, point the reset vector and" +
						" the program counter at it.",
					usage:   "program <byte> [<byte> ...]",
					handler: (*Host).cmdProgram,
				},
				{
					name:        "quit",
					brief:       "Quit the program",
					description: "Quit the program.",
					usage:       "quit",
					handler:     (*Host).cmdQuit,
				},
				{
					name:  "register",
					brief: "View or change register values",
					description: "When used without arguments, this command displays the current" +
						" contents of the CPU registers. When used with arguments, this" +
						" command changes the value of a register or one of the CPU's status" +
						" flags. Allowed register names include A, X, Y, PC, SP and PS. Allowed" +
						" status flag names include N (Negative), V (Overflow), B (Break)," +
						" D (Decimal), I (InterruptDisable), Z (Zero) and C (Carry).",
					usage:   "register [<name> <value>]",
					handler: (*Host).cmdRegister,
				},
				{
					name:  "reset",
					brief: "Reset the CPU",
					description: "Reset the CPU. A, X and the status flags are cleared," +
						" the stack pointer is set to $FF and the program counter is" +
						" loaded from the reset vector at $FFFC.",
					usage:   "reset",
					handler: (*Host).cmdReset,
				},
				{
					name:  "run",
					brief: "Run the CPU",
					description: "Run the CPU until the program counter reaches $FFFF," +
						" a breakpoint is hit or the user types Ctrl-C. If an address is" +
						" given, execution starts there.",
					usage:   "run [<address>]",
					handler: (*Host).cmdRun,
				},
				{
					name:  "set",
					brief: "Set a configuration variable",
					description: "Set the value of a configuration variable. To see the" +
						" current values of all configuration variables, type set" +
						" without any arguments.",
					usage:   "set [<var> <value>]",
					handler: (*Host).cmdSet,
				},
				{
					name:  "step",
					brief: "Step the CPU",
					description: "Step the CPU by a single instruction. The number of" +
						" steps may be specified as an option.",
					usage:   "step [<count>]",
					handler: (*Host).cmdStep,
				},
			},
		},
		{
			name:  "breakpoint",
			brief: "Breakpoint commands",
			commands: []command{
				{
					name:        "list",
					brief:       "List breakpoints",
					description: "List all current breakpoints.",
					usage:       "breakpoint list",
					handler:     (*Host).cmdBreakpointList,
				},
				{
					name:  "add",
					brief: "Add a breakpoint",
					description: "Add a breakpoint at the specified address." +
						" The breakpoint starts enabled.",
					usage:   "breakpoint add <address>",
					handler: (*Host).cmdBreakpointAdd,
				},
				{
					name:        "remove",
					brief:       "Remove a breakpoint",
					description: "Remove a breakpoint at the specified address.",
					usage:       "breakpoint remove <address>",
					handler:     (*Host).cmdBreakpointRemove,
				},
				{
					name:        "enable",
					brief:       "Enable a breakpoint",
					description: "Enable a previously added breakpoint.",
					usage:       "breakpoint enable <address>",
					handler:     (*Host).cmdBreakpointEnable,
				},
				{
					name:  "disable",
					brief: "Disable a breakpoint",
					description: "Disable a previously added breakpoint. This" +
						" prevents the breakpoint from being hit when running the" +
						" CPU.",
					usage:   "breakpoint disable <address>",
					handler: (*Host).cmdBreakpointDisable,
				},
			},
		},
		{
			name:  "databreakpoint",
			brief: "Data breakpoint commands",
			commands: []command{
				{
					name:        "list",
					brief:       "List data breakpoints",
					description: "List all current data breakpoints.",
					usage:       "databreakpoint list",
					handler:     (*Host).cmdDataBreakpointList,
				},
				{
					name:  "add",
					brief: "Add a data breakpoint",
					description: "Add a new data breakpoint at the specified" +
						" memory address. When the CPU stores data at this address, the" +
						" breakpoint will stop the CPU. Optionally, a byte" +
						" value may be specified, and the CPU will stop only" +
						" when this value is stored. The data breakpoint starts" +
						" enabled.",
					usage:   "databreakpoint add <address> [<value>]",
					handler: (*Host).cmdDataBreakpointAdd,
				},
				{
					name:  "remove",
					brief: "Remove a data breakpoint",
					description: "Remove a previously added data breakpoint at" +
						" the specified memory address.",
					usage:   "databreakpoint remove <address>",
					handler: (*Host).cmdDataBreakpointRemove,
				},
				{
					name:        "enable",
					brief:       "Enable a data breakpoint",
					description: "Enable a previously added data breakpoint.",
					usage:       "databreakpoint enable <address>",
					handler:     (*Host).cmdDataBreakpointEnable,
				},
				{
					name:        "disable",
					brief:       "Disable a data breakpoint",
					description: "Disable a previously added data breakpoint.",
					usage:       "databreakpoint disable <address>",
					handler:     (*Host).cmdDataBreakpointDisable,
				},
			},
		},
		{
			name:  "memory",
			brief: "Memory commands",
			commands: []command{
				{
					name:  "dump",
					brief: "Dump memory at address",
					description: "Dump the contents of memory starting from the" +
						" specified address. The number of bytes to dump may be" +
						" specified as an option. If no address is specified, the" +
						" memory dump continues from where the last dump left off.",
					usage:   "memory dump [<address>] [<bytes>]",
					handler: (*Host).cmdMemoryDump,
				},
				{
					name:  "set",
					brief: "Set memory at address",
					description: "Set the contents of memory starting from the specified" +
						" address. The values to assign should be a series of" +
						" space-separated byte values. You may use an expression for each" +
						" byte value.",
					usage:   "memory set <address> <byte> [<byte> ...]",
					handler: (*Host).cmdMemorySet,
				},
			},
		},
	}
}

var cmds *cmd.Tree

var shortcuts = []struct {
	key, target string
}{
	{"a", "assemble"},
	{"ba", "breakpoint add"},
	{"br", "breakpoint remove"},
	{"bl", "breakpoint list"},
	{"be", "breakpoint enable"},
	{"bd", "breakpoint disable"},
	{"d", "disassemble"},
	{"dbl", "databreakpoint list"},
	{"dba", "databreakpoint add"},
	{"dbr", "databreakpoint remove"},
	{"dbe", "databreakpoint enable"},
	{"dbd", "databreakpoint disable"},
	{"e", "evaluate"},
	{"m", "memory dump"},
	{"ms", "memory set"},
	{"p", "program"},
	{"r", "register"},
	{"s", "step"},
	{"?", "help"},
	{".", "register"},
}

// Shortcuts for command groups. The command tree only attaches shortcuts
// to commands, so these are expanded before lookup.
var groupShortcuts = map[string]string{
	"b":   "breakpoint",
	"bp":  "breakpoint",
	"db":  "databreakpoint",
	"dbp": "databreakpoint",
}

func init() {
	commandGroups = newCommandGroups()

	root := cmd.NewTree(cmd.TreeDescriptor{Name: "emu6502"})
	for gi := range commandGroups {
		g := &commandGroups[gi]
		if g.name == "" {
			for ci := range g.commands {
				root.AddCommand(g.commands[ci].descriptor())
			}
			continue
		}

		sub := root.AddSubtree(cmd.TreeDescriptor{Name: g.name, Brief: g.brief, Data: g})
		for ci := range g.commands {
			sub.AddCommand(g.commands[ci].descriptor())
		}
	}

	for _, sc := range shortcuts {
		if err := root.AddShortcut(sc.key, sc.target); err != nil {
			panic(fmt.Sprintf("shortcut '%s' for '%s': %v", sc.key, sc.target, err))
		}
	}

	cmds = root
}

// Look up the command or command group named by the line. A group
// shortcut in the first field is expanded to the group's name.
func lookupCommand(line string) (n cmd.Node, args []string, err error) {
	line = strings.TrimSpace(line)
	first, rest := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		first, rest = line[:i], line[i:]
	}
	if g, ok := groupShortcuts[strings.ToLower(first)]; ok {
		line = g + rest
	}
	return cmds.Lookup(line)
}
