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

// Command rudex-client dials an RDX server and either transfers one file
// or enters interactive chat mode.
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
		Use:   "client <server_ip> <server_port> <input_file> <output_file_name> [loss_rate]",
		Short: "Transfer a file to, or chat with, an RDX server",
		Args: func(cmd *cobra.Command, args []string) error {
			if chat {
				if len(args) < 2 || len(args) > 3 {
					return fmt.Errorf("usage: client <server_ip> <server_port> --chat [loss_rate]")
				}
				return nil
			}
			if len(args) < 4 || len(args) > 5 {
				return fmt.Errorf("usage: client <server_ip> <server_port> <input_file> <output_file_name> [loss_rate]")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v, chat, args)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&chat, "chat", false, "enter interactive chat mode instead of transferring a file")
	return cmd
}

func run(v *viper.Viper, chat bool, args []string) error {
	ip := args[0]
	port, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid server port %q: %w", args[1], err)
	}

	var inputFile, outputFile string
	lossArgIdx := 2
	if !chat {
		inputFile, outputFile = args[2], args[3]
		lossArgIdx = 4
	}

	rate := resolveLossRate(v, args, lossArgIdx)

	ev, err := rlog.OpenEventLog("client")
	if err != nil {
		return err
	}
	defer ev.Close()
	log := rlog.NewStderr(rlog.WarnLevel)

	sendLoss := loss.New(rate, 1)
	recvLoss := loss.New(rate, 2)

	c, err := conn.DialClient(ip, port, sendLoss, recvLoss, log, ev)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer c.Close()

	if chat {
		return c.Chat(os.Stdin, os.Stdout)
	}

	content, _, err := ftp.ReadSource(inputFile)
	if err != nil {
		return err
	}
	// The wire-embedded name is the destination name, per the first-packet
	// contract: the receiver has no filename argument of its own and must
	// learn what to call the file from the stream.
	stream := ftp.BuildStream(outputFile, content)
	if err := c.SendFile(stream); err != nil {
		return fmt.Errorf("send file: %w", err)
	}
	fmt.Printf("MD5: %s\n", ftp.MD5Hex(content))
	return nil
}

// resolveLossRate honours the positional-arg/environment precedence: a
// parseable positional loss_rate argument wins, then the RUDEX_LOSS_RATE
// environment override, then the transport default of 0.
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
