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
	"log"
	"os"

	"github.com/hashicorp/go-hclog"
)

// AsHCLog bridges a Logger to the hclog.Logger interface so third-party
// components that expect hclog (such as retry/backoff helpers) log through
// the same sink as the rest of the process.
func (g *Logger) AsHCLog() hclog.Logger {
	return &hclogBridge{l: g}
}

type hclogBridge struct {
	l *Logger
}

func (h *hclogBridge) Log(level hclog.Level, msg string, args ...interface{}) {
	switch level {
	case hclog.Off, hclog.NoLevel:
		return
	case hclog.Trace, hclog.Debug:
		h.l.Debug(msg, args...)
	case hclog.Info:
		h.l.Info(msg, args...)
	case hclog.Warn:
		h.l.Warn(msg, args...)
	case hclog.Error:
		h.l.Error(msg, args...)
	}
}

func (h *hclogBridge) Trace(msg string, args ...interface{}) { h.l.Debug(msg, args...) }
func (h *hclogBridge) Debug(msg string, args ...interface{}) { h.l.Debug(msg, args...) }
func (h *hclogBridge) Info(msg string, args ...interface{})  { h.l.Info(msg, args...) }
func (h *hclogBridge) Warn(msg string, args ...interface{})  { h.l.Warn(msg, args...) }
func (h *hclogBridge) Error(msg string, args ...interface{}) { h.l.Error(msg, args...) }

func (h *hclogBridge) IsTrace() bool { return true }
func (h *hclogBridge) IsDebug() bool { return true }
func (h *hclogBridge) IsInfo() bool  { return true }
func (h *hclogBridge) IsWarn() bool  { return true }
func (h *hclogBridge) IsError() bool { return true }

func (h *hclogBridge) ImpliedArgs() []interface{} { return nil }

func (h *hclogBridge) With(args ...interface{}) hclog.Logger {
	return h
}

func (h *hclogBridge) Name() string { return "rudex" }

func (h *hclogBridge) Named(name string) hclog.Logger     { return h }
func (h *hclogBridge) ResetNamed(name string) hclog.Logger { return h }

func (h *hclogBridge) SetLevel(level hclog.Level) {}

func (h *hclogBridge) GetLevel() hclog.Level { return hclog.Info }

func (h *hclogBridge) StandardLogger(opts *hclog.StandardLoggerOptions) *log.Logger {
	return log.New(os.Stderr, "", log.LstdFlags)
}

func (h *hclogBridge) StandardWriter(opts *hclog.StandardLoggerOptions) io.Writer {
	return os.Stderr
}
