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

// Command rudex-server accepts one RDX client connection and either
// receives a file or enters interactive chat mode.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nabbar/rudex/internal/rlog"
	"github.com/nabbar/rudex/rdx/conn"
	"github.com/nabbar/rudex/rdx/ftp"
	"github.com/nabbar/rudex/rdx/loss"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var chat bool

	v := viper.New()
	v.SetEnvPrefix("RUDEX")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "server <port> [loss_rate]",
		Short: "Accept one RDX client and receive a file, or chat with it",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return fmt.Errorf("usage: server <port> [--chat] [loss_rate]")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v, chat, args)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&chat, "chat", false, "enter interactive chat mode instead of receiving a file")
	return cmd
}

func run(v *viper.Viper, chat bool, args []string) error {
	port, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", args[0], err)
	}

	rate := resolveLossRate(v, args, 1)

	ev, err := rlog.OpenEventLog("server")
	if err != nil {
		return err
	}
	defer ev.Close()
	log := rlog.NewStderr(rlog.WarnLevel)

	sendLoss := loss.New(rate, 3)
	recvLoss := loss.New(rate, 4)

	c, err := conn.AcceptServer(port, sendLoss, recvLoss, log, ev)
	if err != nil {
		return fmt.Errorf("accept: %w", err)
	}
	defer c.Close()

	if chat {
		return c.Chat(os.Stdin, os.Stdout)
	}

	sink := ftp.NewFileSink("")
	defer sink.Close()

	if err := c.RecvFile(sink.Write); err != nil {
		return fmt.Errorf("receive file: %w", err)
	}
	if err := sink.Err(); err != nil {
		return err
	}
	fmt.Printf("MD5: %s\n", sink.MD5())
	return nil
}

// resolveLossRate mirrors the client's precedence: an explicit positional
// loss_rate argument or RUDEX_LOSS_RATE environment override wins over the
// transport default of 0.
func resolveLossRate(v *viper.Viper, args []string, idx int) float64 {
	if idx < len(args) {
		if r, err := strconv.ParseFloat(args[idx], 64); err == nil {
			return r
		}
	}
	if v.IsSet("LOSS_RATE") {
		return v.GetFloat64("LOSS_RATE")
	}
	return 0
}
