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
	"time"

	"github.com/patrickmn/go-cache"
)

// NewQueryCache creates the cache holding rendered results of read-only
// session queries (traversals, balance, height).
func NewQueryCache(ttl, cleanup time.Duration) *cache.Cache {
	return cache.New(ttl, cleanup)
}

func CacheQueryResult(c *cache.Cache, query string, result string) {
	// Set rather than Add: a query re-run after a flush overwrites freely
	c.Set(query, result, cache.DefaultExpiration)
}

func GetQueryResult(c *cache.Cache, query string) (string, bool) {
	val, ok := c.Get(query)
	if !ok {
		return "", false
	}
	return val.(string), true
}

// InvalidateQueries drops every cached result. Call after any mutation.
func InvalidateQueries(c *cache.Cache) {
	c.Flush()
}
