// Copyright 2025 go-lightmat Authors
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

package simd

import "fmt"

func assertAligned[T any](s []T, align int, op string) {
	if len(s) == 0 {
		panic(fmt.Sprintf("simd: %s on empty slice", op))
	}
	if !IsAligned(s, align) {
		panic(fmt.Sprintf("simd: %s requires %d-byte alignment", op, align))
	}
}

func assertPart(n, width int, op string) {
	if n < 0 || n >= width {
		panic(fmt.Sprintf("simd: %s n=%d out of range [0, %d)", op, n, width))
	}
}
