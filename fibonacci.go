// Copyright 2026 The nutsdb Author. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nutshash

// FibonacciMultiplier is the odd integer nearest to 2^64/φ.
const FibonacciMultiplier uint64 = 11400714819323198549

// Fibonacci returns x multiplied by FibonacciMultiplier modulo 2^64.
//
// The product spreads the low bits of small or sequential integers into the
// high bits of the result.
func Fibonacci(x uint64) uint64 {
	return x * FibonacciMultiplier
}

// FibonacciIndex returns the top bits bits of Fibonacci(x), which is the slot
// of x in a table of 2^bits entries.
func FibonacciIndex(x uint64, bits uint8) uint64 {
	switch {
	case bits == 0:
		return 0
	case bits >= 64:
		return Fibonacci(x)
	}
	return Fibonacci(x) >> (64 - bits)
}
