// Copyright 2023 The PromiseDB Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testutils

import (
	"encoding/binary"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GetTestKey returns "key-" followed by i as 9 zero-padded digits.
func GetTestKey(i int) string {
	buf := make([]byte, 13)
	copy(buf, "key-")
	for j := 12; j >= 4; j-- {
		buf[j] = byte('0' + i%10)
		i /= 10
	}
	return string(buf)
}

func GetRandomBytes(length int) []byte {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return b
}

// AssertErr requires err to match expectErr with errors.Is, or to be nil
// when expectErr is nil.
func AssertErr(t *testing.T, err error, expectErr error) {
	t.Helper()
	if expectErr != nil {
		require.True(t, errors.Is(err, expectErr), "got %v, want %v", err, expectErr)
	} else {
		require.NoError(t, err)
	}
}

// SkipIfBigEndian skips tests whose pinned digests read words in
// little-endian order.
func SkipIfBigEndian(t *testing.T) {
	t.Helper()
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], 1)
	if buf[0] != 1 {
		t.Skip("pinned digests are for little-endian hosts")
	}
}
