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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **bstree %s**

Build a binary search tree from the command line and inspect its shape.
Keys are inserted exactly in the order given; the tree never rebalances.

Built with Go %s

# 1. Commands
* **show** KEYS... : print every traversal, balance, height and a diagram
* **show** --from FILE : read keys from a file (# starts a comment)
* **shell** : interactive session, the default when no command is given
* **shell** --script FILE : replay session commands from a file
* **usage** : print this guide
* **settings** : print (and create) ~/.bstree.yaml
* **version** : print the version

# 2. Global flags
* --config FILE : read settings from FILE instead of ~/.bstree.yaml
* --type int|string : key type, overrides keys.type
* --log-level LEVEL : debug, info, warn or error, overrides log.level

# 3. Session commands
* insert, insert-rec, find, find-rec, remove
* pre, in, post, bfs, range LO HI
* balanced, height, size, min, max, second, dump, clear

# 4. Key types
* int (default) or string, chosen with --type or keys.type in the config
* quote string keys containing spaces or ; & | < > : insert 'git status' 'a;b'

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
