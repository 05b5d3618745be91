// Copyright 2025 Naren Yellavula
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

package main

import (
	"github.com/willf/bloom"
)

// keyFilter answers "definitely absent" for keys that were never inserted,
// letting lookups skip the tree walk. Removed keys stay in the filter and
// only cost a normal lookup.
type keyFilter struct {
	bloom *bloom.BloomFilter
	added int
}

func newKeyFilter(size, hashes uint) *keyFilter {
	return &keyFilter{bloom: bloom.New(size, hashes)}
}

func (f *keyFilter) Add(key string) {
	f.bloom.AddString(key)
	f.added++
}

// MayContain is false only for keys never passed to Add since the last Reset.
func (f *keyFilter) MayContain(key string) bool {
	return f.bloom.TestString(key)
}

func (f *keyFilter) Reset() {
	f.bloom.ClearAll()
	f.added = 0
}

// Added counts keys passed to Add since the last Reset.
func (f *keyFilter) Added() int {
	return f.added
}
