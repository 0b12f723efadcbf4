// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package discover

import (
	"context"
	"os"
	"runtime"
	"sync"
	"unicode/utf8"
)

// ReadFiles reads the given absolute paths concurrently and returns
// their content keyed by root-relative file identifier. Files that
// cannot be read are logged and dropped. Content that is not valid
// UTF-8 is reinterpreted as Latin-1 so a stray binary-ish file does
// not poison downstream parsing.
func (d *Discoverer) ReadFiles(ctx context.Context, paths []string, concurrency int) map[string]string {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	if concurrency > len(paths) {
		concurrency = len(paths)
	}

	type result struct {
		id      string
		content string
	}

	jobs := make(chan string)
	results := make(chan result)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				data, err := os.ReadFile(path)
				if err != nil {
					d.log.Debug().Err(err).Str("path", path).Msg("skipping unreadable file")
					continue
				}
				select {
				case results <- result{id: d.Rel(path), content: decode(data)}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, p := range paths {
			select {
			case jobs <- p:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	files := make(map[string]string, len(paths))
	for r := range results {
		files[r.id] = r.content
	}
	return files
}

// decode returns data as a string, treating invalid UTF-8 as Latin-1.
func decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
