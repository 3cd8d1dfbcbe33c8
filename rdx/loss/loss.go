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

// Package loss injects deterministic, seeded packet loss for testing the
// transport's retransmission and reassembly logic against a lossy channel.
package loss

import "math/rand"

// Injector runs a Bernoulli trial against a configured drop rate. It holds
// its own *rand.Rand so sender-side and receiver-side injectors can be
// seeded independently and reproducibly, rather than sharing the package
// global generator.
type Injector struct {
	rate float64
	rng  *rand.Rand
}

// New builds an Injector for the given loss rate, clamped to [0,1], seeded
// with seed. Two Injectors built with the same rate and seed make the same
// sequence of drop decisions.
func New(rate float64, seed int64) *Injector {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	return &Injector{rate: rate, rng: rand.New(rand.NewSource(seed))}
}

// ShouldDrop reports whether the next datagram should be dropped.
// rate<=0 never drops; rate>=1 always drops.
func (i *Injector) ShouldDrop() bool {
	if i.rate <= 0 {
		return false
	}
	if i.rate >= 1 {
		return true
	}
	return i.rng.Float64() < i.rate
}

// Rate returns the configured loss rate.
func (i *Injector) Rate() float64 {
	return i.rate
}
