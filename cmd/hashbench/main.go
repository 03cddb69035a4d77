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

// Command hashbench compares the nutshash algorithms as hashmap hashers and
// prints single digests.
package main

import (
	"fmt"
	"os"
)

func main() {
	env, err := loadEnv(os.Getenv("HASHBENCH_ENV_FILE"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := newRootCmd(env).Execute(); err != nil {
		os.Exit(1)
	}
}
