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
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFilterHasNoFalseNegatives(t *testing.T) {
	f := newKeyFilter(4096, 4)
	for i := 0; i < 500; i++ {
		f.Add(strconv.Itoa(i))
	}
	for i := 0; i < 500; i++ {
		assert.True(t, f.MayContain(strconv.Itoa(i)), "key %d", i)
	}
	assert.Equal(t, 500, f.Added())
}

func TestKeyFilterReset(t *testing.T) {
	f := newKeyFilter(1024, 3)
	f.Add("apple")
	assert.True(t, f.MayContain("apple"))

	f.Reset()
	assert.False(t, f.MayContain("apple"))
	assert.Zero(t, f.Added())
}

func TestKeyFilterEmpty(t *testing.T) {
	f := newKeyFilter(1024, 3)
	assert.False(t, f.MayContain("anything"))
}
