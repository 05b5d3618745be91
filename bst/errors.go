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

package bst

import "errors"

// Tree operations report failure through their boolean results. These
// sentinels are for callers that need to surface those outcomes as errors.
var (
	ErrDuplicateKey = errors.New("bst: key already present")
	ErrKeyNotFound  = errors.New("bst: key not found")
	ErrEmptyTree    = errors.New("bst: tree is empty")
	ErrTooFewKeys   = errors.New("bst: fewer than two keys")
)
