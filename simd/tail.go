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

// ProcessWithTail splits size elements into chunks of width lanes.
//
// It calls:
//   - fullFn(offset) for each full chunk (offset is the starting index)
//   - tailFn(offset, count) once for the remainder, if size is not a
//     multiple of width; count is in [1, width)
//
// Example:
//
//	var z simd.Float32x4
//	simd.ProcessWithTail(len(data), z.Width(),
//	    func(offset int) {
//	        z.LoadU(data[offset:]).Abs().StoreU(out[offset:])
//	    },
//	    func(offset, count int) {
//	        z.LoadPart(count, data[offset:]).Abs().StorePart(count, out[offset:])
//	    },
//	)
func ProcessWithTail(size, width int, fullFn func(offset int), tailFn func(offset, count int)) {
	fullChunks := size / width
	for i := range fullChunks {
		fullFn(i * width)
	}

	remaining := size % width
	if remaining > 0 {
		tailFn(fullChunks*width, remaining)
	}
}

// AlignedSize rounds size up to the next multiple of width.
func AlignedSize(size, width int) int {
	if width == 0 {
		return size
	}
	return ((size + width - 1) / width) * width
}

// IsMultiple reports whether size is a multiple of width.
func IsMultiple(size, width int) bool {
	if width == 0 {
		return true
	}
	return size%width == 0
}
