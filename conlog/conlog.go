// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog forwards console notices to a replaceable printf.
package conlog

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu sync.Mutex
	p  = func(format string, v ...interface{}) {
		fmt.Fprintf(os.Stdout, format, v...)
	}
)

func SetPrintf(f func(string, ...interface{})) {
	mu.Lock()
	p = f
	mu.Unlock()
}

// SetOutput sends all notices to w.
func SetOutput(w io.Writer) {
	SetPrintf(func(format string, v ...interface{}) {
		fmt.Fprintf(w, format, v...)
	})
}

func Printf(format string, v ...interface{}) {
	mu.Lock()
	f := p
	mu.Unlock()
	f(format, v...)
}
