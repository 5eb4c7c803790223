// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"strings"

	"geoaux/conlog"
)

// PrintList returns a command that prints all command names, or only those
// starting with the first argument.
func (c *Commands) PrintList() Func {
	return func(a Arguments) error {
		args := a.Args()
		switch len(args) {
		default:
			printPartialCmdList(c.List(), args[1].String())
		case 0, 1:
			printFullCmdList(c.List())
		}
		return nil
	}
}

func printFullCmdList(cl []string) {
	for _, c := range cl {
		conlog.Printf("  %s\n", c)
	}
	conlog.Printf("%v commands\n", len(cl))
}

func printPartialCmdList(cl []string, part string) {
	count := 0
	for _, c := range cl {
		if strings.HasPrefix(c, part) {
			conlog.Printf("  %s\n", c)
			count++
		}
	}
	conlog.Printf("%v commands beginning with \"%v\"\n", count, part)
}
