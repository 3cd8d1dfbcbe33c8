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

package main

import (
	"testing"

	"github.com/spf13/viper"
)

func TestArgsRejectsNoArgs(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Fatalf("expected an error for missing port")
	}
}

func TestArgsAcceptsPortOnly(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Args(cmd, []string{"9000"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestArgsAcceptsPortAndLossRate(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Args(cmd, []string{"9000", "0.1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResolveLossRateReadsSecondPositionalArg(t *testing.T) {
	v := viper.New()
	got := resolveLossRate(v, []string{"9000", "0.4"}, 1)
	if got != 0.4 {
		t.Fatalf("resolveLossRate() = %v, want 0.4", got)
	}
}
