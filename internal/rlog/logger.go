/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package rlog

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger is the operational logger every long-lived component (connection,
// shell session) is constructed with. One Logger is created per process and
// narrowed with With for each connection/session so log lines can be
// correlated by id.
type Logger struct {
	l  *logrus.Entry
	id string
}

// New builds a root Logger writing to w at the given level.
func New(w io.Writer, lvl Level) *Logger {
	base := logrus.New()
	base.SetOutput(w)
	base.SetLevel(lvl.Logrus())
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000000",
	})
	return &Logger{l: logrus.NewEntry(base)}
}

// NewStderr builds a root Logger writing to os.Stderr.
func NewStderr(lvl Level) *Logger {
	return New(os.Stderr, lvl)
}

// With returns a child logger carrying a correlation id and extra fields,
// for example one per accepted connection or shell session.
func (g *Logger) With(component string, fields logrus.Fields) *Logger {
	id := uuid.NewString()
	e := g.l.WithField("component", component).WithField("id", id)
	for k, v := range fields {
		e = e.WithField(k, v)
	}
	return &Logger{l: e, id: id}
}

// ID returns the correlation id assigned by With, or "" for the root logger.
func (g *Logger) ID() string {
	return g.id
}

func (g *Logger) Debug(msg string, args ...any) {
	if g == nil {
		return
	}
	g.l.WithFields(kv(args)).Debug(msg)
}
func (g *Logger) Info(msg string, args ...any) {
	if g == nil {
		return
	}
	g.l.WithFields(kv(args)).Info(msg)
}
func (g *Logger) Warn(msg string, args ...any) {
	if g == nil {
		return
	}
	g.l.WithFields(kv(args)).Warn(msg)
}
func (g *Logger) Error(msg string, args ...any) {
	if g == nil {
		return
	}
	g.l.WithFields(kv(args)).Error(msg)
}
func (g *Logger) Fatal(msg string, args ...any) {
	if g == nil {
		return
	}
	g.l.WithFields(kv(args)).Fatal(msg)
}

func kv(args []any) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			continue
		}
		f[k] = args[i+1]
	}
	return f
}
