// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Func runs a command. args[0] is the command name.
type Func func(args Arguments) error

// Commands maps lower case command names to their functions.
type Commands map[string]Func

func New() *Commands {
	c := make(Commands)
	return &c
}

func (c *Commands) Add(name string, f Func) error {
	ln := strings.ToLower(name)
	if _, ok := (*c)[ln]; ok {
		return errors.Errorf("command %s already defined", ln)
	}
	(*c)[ln] = f
	return nil
}

func (c *Commands) Exists(cmdName string) bool {
	name := strings.ToLower(cmdName)
	_, ok := (*c)[name]
	return ok
}

// List returns the sorted command names.
func (c *Commands) List() []string {
	cmds := make([]string, 0, len(*c))
	for cmd := range *c {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return cmds
}

// Execute runs the command named by a's first word. It reports false if
// there is no such command.
func (c *Commands) Execute(a Arguments) (bool, error) {
	n := a.Args()
	if len(n) == 0 {
		return false, nil
	}
	name := strings.ToLower(n[0].String())
	if cmd, ok := (*c)[name]; ok {
		if err := cmd(a); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func Must(err error) {
	if err != nil {
		panic(err.Error())
	}
}
