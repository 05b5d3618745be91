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
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/bstree/bst"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

var errUnknownCommand = errors.New("unknown command")

// command is one parsed session line.
type command struct {
	Verb string
	Args []string
}

func newCommand(parts []string) command {
	if len(parts) == 0 {
		return command{}
	}
	return command{Verb: strings.ToLower(parts[0]), Args: parts[1:]}
}

// session applies commands to a single tree and writes results to out.
// Domain outcomes such as a missing key are results, not errors; Exec only
// fails on input it cannot interpret.
type session[K cmp.Ordered] struct {
	tree    *bst.Tree[K]
	parse   keyParser[K]
	out     io.Writer
	queries *cache.Cache
	filter  *keyFilter
	log     zerolog.Logger
	st      styles
}

func newSession[K cmp.Ordered](cfg *Config, parse keyParser[K], out io.Writer, logger zerolog.Logger, st styles) *session[K] {
	return &session[K]{
		tree:    bst.New[K](),
		parse:   parse,
		out:     out,
		queries: NewQueryCache(cfg.Cache.TTL, cfg.Cache.Cleanup),
		filter:  newKeyFilter(cfg.Filter.Size, cfg.Filter.Hashes),
		log:     logger,
		st:      st,
	}
}

// Run executes every line from r. Errors are reported inline and do not stop
// the session. prompt, when non-empty, is written before each line is read.
func (s *session[K]) Run(r io.Reader, prompt string) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for {
		if prompt != "" {
			fmt.Fprint(s.out, s.st.prompt(prompt))
		}
		if !scanner.Scan() {
			if prompt != "" {
				fmt.Fprintln(s.out)
			}
			break
		}
		lineNo++

		quit, err := s.Exec(scanner.Text())
		if err != nil {
			s.log.Debug().Int("line", lineNo).Err(err).Msg("command failed")
			fmt.Fprintln(s.out, s.st.error("error: "+err.Error()))
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Exec runs one line. It reports quit=true for quit and exit.
func (s *session[K]) Exec(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}

	parts, err := splitLine(line)
	if err != nil {
		return false, err
	}
	cmd := newCommand(parts)
	if cmd.Verb == "" {
		return false, nil
	}

	switch cmd.Verb {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprint(s.out, sessionHelp)
		return false, nil
	case "insert", "insert-rec":
		return false, s.insert(cmd)
	case "find", "find-rec":
		return false, s.find(cmd)
	case "remove":
		return false, s.remove(cmd)
	case "range":
		return false, s.rangeKeys(cmd)
	case "clear":
		if err := requireArgs(cmd, 0); err != nil {
			return false, err
		}
		s.reset()
		fmt.Fprintln(s.out, s.st.success("cleared"))
		return false, nil
	case "pre", "in", "post", "bfs", "balanced", "height", "size", "min", "max", "second", "dump":
		if err := requireArgs(cmd, 0); err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, s.query(cmd.Verb))
		return false, nil
	}
	return false, fmt.Errorf("%w %q (try help)", errUnknownCommand, cmd.Verb)
}

func requireArgs(cmd command, n int) error {
	if len(cmd.Args) != n {
		return fmt.Errorf("%s takes %d argument(s), got %d", cmd.Verb, n, len(cmd.Args))
	}
	return nil
}

func (s *session[K]) keys(cmd command) ([]K, error) {
	if len(cmd.Args) == 0 {
		return nil, fmt.Errorf("%s needs at least one key", cmd.Verb)
	}
	return parseKeys(cmd.Args, s.parse)
}

func (s *session[K]) insert(cmd command) error {
	keys, err := s.keys(cmd)
	if err != nil {
		return err
	}

	insert := s.tree.Insert
	if cmd.Verb == "insert-rec" {
		insert = s.tree.InsertRecursively
	}
	for _, key := range keys {
		s.insertKey(key, insert)
	}
	return nil
}

func (s *session[K]) insertKey(key K, insert func(K) (*bst.Tree[K], bool)) bool {
	if _, ok := insert(key); !ok {
		fmt.Fprintln(s.out, s.st.notice(fmt.Sprintf("%v: %s", bst.ErrDuplicateKey, formatKey(key))))
		return false
	}
	s.filter.Add(fmt.Sprint(key))
	InvalidateQueries(s.queries)
	fmt.Fprintln(s.out, s.st.success("inserted "+formatKey(key)))
	return true
}

func (s *session[K]) find(cmd command) error {
	if err := requireArgs(cmd, 1); err != nil {
		return err
	}
	key, err := s.parse(cmd.Args[0])
	if err != nil {
		return err
	}

	var found bool
	if !s.filter.MayContain(fmt.Sprint(key)) {
		s.log.Debug().Str("key", formatKey(key)).Int("filtered", s.filter.Added()).Msg("filter ruled out key")
	} else if cmd.Verb == "find-rec" {
		_, found = s.tree.FindRecursively(key)
	} else {
		_, found = s.tree.Find(key)
	}

	if !found {
		fmt.Fprintln(s.out, s.st.notice(fmt.Sprintf("%v: %s", bst.ErrKeyNotFound, formatKey(key))))
		return nil
	}
	fmt.Fprintln(s.out, s.st.success("found "+formatKey(key)))
	return nil
}

func (s *session[K]) remove(cmd command) error {
	keys, err := s.keys(cmd)
	if err != nil {
		return err
	}
	for _, key := range keys {
		removed, ok := s.tree.Remove(key)
		if !ok {
			fmt.Fprintln(s.out, s.st.notice(fmt.Sprintf("%v: %s", bst.ErrKeyNotFound, formatKey(key))))
			continue
		}
		InvalidateQueries(s.queries)
		fmt.Fprintln(s.out, s.st.success("removed "+formatKey(removed.Key())))
	}
	return nil
}

func (s *session[K]) rangeKeys(cmd command) error {
	if err := requireArgs(cmd, 2); err != nil {
		return err
	}
	bounds, err := parseKeys(cmd.Args, s.parse)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, formatKeys(s.tree.Range(bounds[0], bounds[1])))
	return nil
}

func (s *session[K]) reset() {
	s.tree.Clear()
	s.filter.Reset()
	InvalidateQueries(s.queries)
}

// query answers a read-only verb, serving repeat calls from the cache until
// the next mutation.
func (s *session[K]) query(verb string) string {
	if result, ok := GetQueryResult(s.queries, verb); ok {
		s.log.Debug().Str("query", verb).Msg("cache hit")
		return result
	}

	result := s.evaluate(verb)
	CacheQueryResult(s.queries, verb, result)
	return result
}

func (s *session[K]) evaluate(verb string) string {
	switch verb {
	case "pre":
		return formatKeys(s.tree.DFSPreOrder())
	case "in":
		return formatKeys(s.tree.DFSInOrder())
	case "post":
		return formatKeys(s.tree.DFSPostOrder())
	case "bfs":
		return formatKeys(s.tree.BFS())
	case "balanced":
		return fmt.Sprint(s.tree.IsBalanced())
	case "height":
		return fmt.Sprint(s.tree.Height())
	case "size":
		return fmt.Sprint(s.tree.Len())
	case "min":
		return keyOrError(s.tree.Min())
	case "max":
		return keyOrError(s.tree.Max())
	case "second":
		key, ok := s.tree.FindSecondHighest()
		if !ok {
			return bst.ErrTooFewKeys.Error()
		}
		return formatKey(key)
	case "dump":
		return strings.TrimRight(s.tree.String(), "\n")
	}
	return ""
}

func keyOrError[K cmp.Ordered](key K, ok bool) string {
	if !ok {
		return bst.ErrEmptyTree.Error()
	}
	return formatKey(key)
}

// Load inserts keys in order. Duplicates are logged and skipped. It returns
// the number of keys added.
func (s *session[K]) Load(raw []string) (int, error) {
	keys, err := parseKeys(raw, s.parse)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, key := range keys {
		if _, ok := s.tree.Insert(key); !ok {
			s.log.Warn().Str("key", formatKey(key)).Msg("skipping duplicate key")
			continue
		}
		s.filter.Add(fmt.Sprint(key))
		added++
	}
	InvalidateQueries(s.queries)
	s.log.Debug().
		Int("added", added).
		Int("given", len(keys)).
		Int("filtered", s.filter.Added()).
		Msg("keys loaded")
	return added, nil
}

// Report prints every query for the current tree.
func (s *session[K]) Report() {
	sections := []struct {
		title string
		verb  string
	}{
		{"pre-order", "pre"},
		{"in-order", "in"},
		{"post-order", "post"},
		{"breadth-first", "bfs"},
		{"size", "size"},
		{"height", "height"},
		{"balanced", "balanced"},
		{"min", "min"},
		{"max", "max"},
		{"second highest", "second"},
	}
	for _, sec := range sections {
		fmt.Fprintf(s.out, "%s %s\n", s.st.label(sec.title+":"), s.query(sec.verb))
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.st.heading("tree"))
	fmt.Fprintln(s.out, s.query("dump"))
}

const sessionHelp = `commands:
  insert K...       insert keys (iterative)
  insert-rec K...   insert keys (recursive)
  find K            look up a key (iterative)
  find-rec K        look up a key (recursive)
  remove K...       remove keys
  range LO HI       keys k with LO <= k < HI
  pre | in | post   depth-first traversals
  bfs               breadth-first traversal
  balanced          height-balanced check
  height | size     tree height, key count
  min | max         smallest, largest key
  second            second highest key
  dump              draw the tree
  clear             remove every key
  quit | exit       leave the session
`
