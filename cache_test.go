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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheQueryResultAndGetQueryResult(t *testing.T) {
	c := NewQueryCache(time.Minute, time.Minute)

	_, ok := GetQueryResult(c, "in")
	assert.False(t, ok, "missing query should not be cached")

	CacheQueryResult(c, "in", "1 2 3")
	got, ok := GetQueryResult(c, "in")
	assert.True(t, ok)
	assert.Equal(t, "1 2 3", got)

	CacheQueryResult(c, "in", "1 2")
	got, _ = GetQueryResult(c, "in")
	assert.Equal(t, "1 2", got, "re-caching overwrites")
}

func TestInvalidateQueries(t *testing.T) {
	c := NewQueryCache(time.Minute, time.Minute)
	CacheQueryResult(c, "pre", "2 1 3")
	CacheQueryResult(c, "height", "2")

	InvalidateQueries(c)

	_, ok := GetQueryResult(c, "pre")
	assert.False(t, ok)
	_, ok = GetQueryResult(c, "height")
	assert.False(t, ok)
}

func TestQueryCacheExpiration(t *testing.T) {
	// A very short lifetime so the entry expires within the test.
	c := NewQueryCache(100*time.Millisecond, 50*time.Millisecond)
	CacheQueryResult(c, "bfs", "5 3 8")

	got, ok := GetQueryResult(c, "bfs")
	assert.True(t, ok)
	assert.Equal(t, "5 3 8", got)

	time.Sleep(150 * time.Millisecond)

	_, ok = GetQueryResult(c, "bfs")
	assert.False(t, ok, "entry should have expired")
}
