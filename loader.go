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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// readKeysFromFile reads whitespace separated keys from path. Lines starting
// with '#' are comments. Progress is drawn on progress unless it is nil.
func readKeysFromFile(path string, progress io.Writer) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("key file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	var size int64 = -1
	if stat, err := file.Stat(); err == nil {
		size = stat.Size()
	}
	return readKeys(file, size, progress)
}

// readKeys scans keys from r. size is the input length in bytes, or -1 when
// unknown.
func readKeys(r io.Reader, size int64, progress io.Writer) ([]string, error) {
	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions64(size,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("Loading keys..."),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowBytes(true),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(progress)
			}),
		)
	}

	var keys []string
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if bar != nil {
			bar.Add(len(line) + 1)
		}

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keys = append(keys, strings.Fields(line)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if bar != nil {
		bar.Finish()
	}
	return keys, nil
}
