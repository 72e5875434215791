// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package notes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

const initialTailCap = 64

// Tail returns the last n lines of r in their original order. It reads r
// once from the start and never holds more than n lines.
func Tail(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}

	// Grows with the lines read; n may be far larger than the file.
	ring := make([]string, 0, min(n, initialTailCap))
	seen := 0
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if len(ring) < n {
				ring = append(ring, line)
			} else {
				ring[seen%n] = line
			}
			seen++
		}
		if err == io.EOF {
			break
		}
	}

	if seen <= n {
		return ring, nil
	}
	out := make([]string, 0, n)
	start := seen % n
	out = append(out, ring[start:]...)
	out = append(out, ring[:start]...)
	return out, nil
}

// TailFile returns the last n lines of the file at path.
func TailFile(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening note file %s: %w", path, err)
	}
	defer f.Close()

	lines, err := Tail(f, n)
	if err != nil {
		return nil, fmt.Errorf("reading note file %s: %w", path, err)
	}
	return lines, nil
}

// TailFileAllowMissing is TailFile for the print path: a missing file is
// reported through found == false rather than an error.
func TailFileAllowMissing(path string, n int) (lines []string, found bool, err error) {
	lines, err = TailFile(path, n)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, true, err
	}
	return lines, true, nil
}
