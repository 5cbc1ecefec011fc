package main

import (
	"bufio"
	"fmt"
	"io"
)

// eachLine calls fn with the single line given as argument, or with every
// line read from r when no argument is given.
func eachLine(args []string, r io.Reader, fn func(line string) error) error {
	if len(args) > 0 {
		return fn(args[0])
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if err := fn(sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
