// SPDX-License-Identifier: GPL-2.0-or-later

// Package calc is a small command interpreter over named auxiliary angles.
//
// Each command works on registers, e.g.
//
//	deg a 30; deg b 60
//	add a b
//	norm c a
//	print c
package calc

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"geoaux/auxangle"
	"geoaux/cmd"
)

// Session holds the registers and the commands operating on them.
// A Session is not safe for concurrent use.
type Session struct {
	cfg  Config
	out  io.Writer
	regs map[string]auxangle.Angle
	cmds *cmd.Commands
	buf  *cmd.Buffer
}

func New(cfg Config, out io.Writer) *Session {
	s := &Session{
		cfg:  cfg,
		out:  out,
		regs: make(map[string]auxangle.Angle),
		cmds: cmd.New(),
	}
	s.buf = cmd.NewBuffer(s.cmds)
	for _, c := range []struct {
		name string
		f    cmd.Func
	}{
		{"set", s.set},
		{"deg", s.fromScalar(auxangle.FromDegrees)},
		{"rad", s.fromScalar(auxangle.FromRadians)},
		{"nan", s.nan},
		{"norm", s.norm},
		{"quad", s.quad},
		{"add", s.add},
		{"print", s.print},
		{"dump", s.dump},
		{"list", s.cmds.PrintList()},
	} {
		cmd.Must(s.cmds.Add(c.name, c.f))
	}
	return s
}

// Run executes a script of commands separated by ';' or newlines.
func (s *Session) Run(script string) error {
	s.buf.AddText(script)
	return s.buf.Execute()
}

// Get returns the register name.
func (s *Session) Get(name string) (auxangle.Angle, bool) {
	a, ok := s.regs[name]
	return a, ok
}

// Names returns the sorted register names.
func (s *Session) Names() []string {
	n := make([]string, 0, len(s.regs))
	for k := range s.regs {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

func wantArgs(a cmd.Arguments, n int, usage string) error {
	if len(a.Args()) != n+1 {
		return errors.Errorf("usage: %s %s", a.Argv(0).String(), usage)
	}
	return nil
}

func (s *Session) reg(a cmd.Arg) (auxangle.Angle, error) {
	r, ok := s.regs[a.String()]
	if !ok {
		return auxangle.Angle{}, errors.Errorf("unknown register %q", a.String())
	}
	return r, nil
}

func (s *Session) set(a cmd.Arguments) error {
	if err := wantArgs(a, 3, "NAME Y X"); err != nil {
		return err
	}
	y, err := a.Argv(2).Float64()
	if err != nil {
		return err
	}
	x, err := a.Argv(3).Float64()
	if err != nil {
		return err
	}
	s.regs[a.Argv(1).String()] = auxangle.New(y, x)
	return nil
}

func (s *Session) fromScalar(f func(float64) auxangle.Angle) cmd.Func {
	return func(a cmd.Arguments) error {
		if err := wantArgs(a, 2, "NAME VALUE"); err != nil {
			return err
		}
		v, err := a.Argv(2).Float64()
		if err != nil {
			return err
		}
		s.regs[a.Argv(1).String()] = f(v)
		return nil
	}
}

func (s *Session) nan(a cmd.Arguments) error {
	if err := wantArgs(a, 1, "NAME"); err != nil {
		return err
	}
	s.regs[a.Argv(1).String()] = auxangle.NaN()
	return nil
}

func (s *Session) norm(a cmd.Arguments) error {
	if err := wantArgs(a, 2, "DST SRC"); err != nil {
		return err
	}
	src, err := s.reg(a.Argv(2))
	if err != nil {
		return err
	}
	s.regs[a.Argv(1).String()] = src.Normalized()
	return nil
}

func (s *Session) quad(a cmd.Arguments) error {
	if err := wantArgs(a, 3, "DST SRC REF"); err != nil {
		return err
	}
	src, err := s.reg(a.Argv(2))
	if err != nil {
		return err
	}
	ref, err := s.reg(a.Argv(3))
	if err != nil {
		return err
	}
	s.regs[a.Argv(1).String()] = src.CopyQuadrant(ref)
	return nil
}

func (s *Session) add(a cmd.Arguments) error {
	args := a.Args()
	if len(args) < 3 {
		return errors.Errorf("usage: %s DST SRC...", args[0].String())
	}
	name := args[1].String()
	for _, n := range args[1:] {
		if _, err := s.reg(n); err != nil {
			return err
		}
	}
	dst := s.regs[name]
	for _, n := range args[2:] {
		// a source naming the destination sees the sums so far
		p := s.regs[n.String()]
		if n.String() == name {
			p = dst
		}
		dst.Add(p)
	}
	s.regs[name] = dst
	return nil
}

func (s *Session) print(a cmd.Arguments) error {
	names := s.Names()
	if args := a.Args(); len(args) > 1 {
		names = names[:0]
		for _, n := range args[1:] {
			if _, err := s.reg(n); err != nil {
				return err
			}
			names = append(names, n.String())
		}
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(s.out, s.format(n, s.regs[n])); err != nil {
			return errors.Wrap(err, "print")
		}
	}
	return nil
}

func (s *Session) formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', s.cfg.Precision, 64)
}

func (s *Session) format(name string, r auxangle.Angle) string {
	if s.cfg.NormalizePrint {
		r = r.Normalized()
	}
	line := fmt.Sprintf("%s = (%s, %s)", name, s.formatFloat(r.Y()), s.formatFloat(r.X()))
	if r.IsNaN() {
		return line + " undefined"
	}
	if s.cfg.ShowDegrees {
		line += fmt.Sprintf(" %sd", s.formatFloat(r.Degrees()))
	}
	return line
}
