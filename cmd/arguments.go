// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Arg is a single word of a command line.
type Arg struct {
	a string
}

func (a Arg) String() string {
	return a.a
}

// Float64 parses the argument. Besides plain numbers it accepts inf, -inf,
// nan and -0.
func (a Arg) Float64() (float64, error) {
	r, err := strconv.ParseFloat(a.a, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "bad number %q", a.a)
	}
	return r, nil
}

type Arguments struct {
	// each arg on its own
	args []Arg
	// the trimmed line
	full string
}

func (c *Arguments) Argv(i int) Arg {
	if i < 0 || i >= len(c.args) {
		log.Printf("Got Argv out of bounds %v, %v", i, len(c.args))
		return Arg{""}
	}
	return c.args[i]
}

func (c *Arguments) Full() string {
	return c.full
}

func (c *Arguments) Args() []Arg {
	return c.args
}

// ArgumentString returns the line without the command name.
func (c *Arguments) ArgumentString() string {
	// args[0] is the cmd
	if len(c.args) < 2 {
		return ""
	}
	r := strings.TrimPrefix(c.full, c.args[0].String())
	r = strings.TrimLeftFunc(r, unicode.IsSpace)
	if len(r) > 1 && r[0] == '"' {
		r = strings.Trim(r, "\"\t\n\v\f\r ")
	}
	return r
}

// Parse splits a single command line into words. Double quotes group
// words, // and # start a comment.
func Parse(s string) (args Arguments) {
	args.full = strings.TrimFunc(s, unicode.IsSpace)
	args.args = []Arg{}

	l := lex(args.full)
	for {
		i := l.nextItem()

		switch i.typ {
		case itemWord:
			args.args = append(args.args, Arg{i.val})
		case itemString:
			s := i.val
			s = strings.TrimPrefix(s, `"`)
			s = strings.TrimSuffix(s, `"`)
			args.args = append(args.args, Arg{s})
		case itemSpace:
			continue
		case itemEOF:
			return
		default:
			log.Printf("got item %v in %q", i, args.full)
			return
		}
	}
}

type itemType int

const (
	itemError  itemType = iota
	itemEOF             // end of line or start of a comment
	itemString          // quoted string includes quotes
	itemSpace
	itemWord
)

const eof = -1

type item struct {
	typ itemType
	val string
}

func (i item) String() string {
	switch i.typ {
	case itemEOF:
		return "EOF"
	case itemError:
		return i.val
	}
	if len(i.val) > 10 {
		return fmt.Sprintf("%.10q...", i.val)
	}
	return fmt.Sprintf("%q", i.val)
}

type stateFn func(*lexer) stateFn

type lexer struct {
	input string
	start int
	pos   int
	width int
	items chan item
	state stateFn
}

func lex(input string) *lexer {
	return &lexer{
		input: input,
		items: make(chan item, 2),
		state: lexAction,
	}
}

func (l *lexer) nextItem() item {
	for {
		select {
		case item := <-l.items:
			return item
		default:
			l.state = l.state(l)
		}
	}
}

func (l *lexer) emit(t itemType) {
	l.items <- item{t, l.input[l.start:l.pos]}
	l.start = l.pos
}

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += l.width
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) errorf(format string, args ...interface{}) stateFn {
	l.items <- item{
		itemError,
		fmt.Sprintf(format, args...),
	}
	return nil
}

func lexAction(l *lexer) stateFn {
	switch r := l.next(); {
	case r == eof || isEndOfLine(r) || r == '#':
		l.emit(itemEOF)
		return nil
	case isSpace(r):
		return lexSpace
	case r == '"':
		return lexQuote
	case r == '/' && l.peek() == '/':
		l.emit(itemEOF)
		return nil
	case isWordRune(r):
		l.backup()
		return lexWord
	default:
		return l.errorf("unhandled char: %#U", r)
	}
}

func lexWord(l *lexer) stateFn {
	for isWordRune(l.peek()) {
		l.next()
	}
	l.emit(itemWord)
	return lexAction
}

func lexSpace(l *lexer) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	l.emit(itemSpace)
	return lexAction
}

func lexQuote(l *lexer) stateFn {
Loop:
	for {
		switch l.next() {
		case '"':
			break Loop
		case eof, '\n':
			return l.errorf("unterminated string")
		}
	}
	l.emit(itemString)
	return lexAction
}

func isWordRune(r rune) bool {
	return r > ' ' && r != '"' && r != '#'
}

func isEndOfLine(r rune) bool {
	return r == '\r' || r == '\n'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
