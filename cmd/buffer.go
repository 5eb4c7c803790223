// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"log"

	"github.com/pkg/errors"

	"geoaux/conlog"
)

// Buffer holds script text that is waiting to be executed.
type Buffer struct {
	text string
	cmds *Commands
}

func NewBuffer(c *Commands) *Buffer {
	return &Buffer{cmds: c}
}

func (b *Buffer) AddText(text string) {
	b.text += text
}

// Execute runs the pending commands, separated by ';' or newlines outside
// of quotes and comments. It stops at the first failing command and drops
// the rest.
func (b *Buffer) Execute() error {
	for len(b.text) != 0 {
		i := 0
		quote := false
		comment := false
	LineLoop:
		for i = 0; i < len(b.text); i++ {
			switch c := b.text[i]; {
			case c == '\n':
				break LineLoop
			case comment:
			case c == '"':
				quote = !quote
			case quote:
			case c == '#':
				comment = true
			case c == '/' && i+1 < len(b.text) && b.text[i+1] == '/':
				comment = true
			case c == ';':
				break LineLoop
			}
		}
		// do not put ';' or '\n' in line
		line := b.text[:i]
		// but remove this char as well
		if i < len(b.text) {
			i++
		}
		b.text = b.text[i:]
		if err := b.execute(line); err != nil {
			b.text = ""
			return err
		}
	}
	return nil
}

func (b *Buffer) execute(line string) error {
	a := Parse(line)
	args := a.Args()
	if len(args) == 0 {
		return nil // no tokens
	}
	ok, err := b.cmds.Execute(a)
	if err != nil {
		return errors.Wrapf(err, "%q", a.Full())
	}
	if !ok {
		name := args[0].String()
		log.Printf("Unknown command \"%s\"", name)
		conlog.Printf("Unknown command \"%s\"\n", name)
	}
	return nil
}
