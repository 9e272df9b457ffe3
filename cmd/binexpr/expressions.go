package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// expressionLine is one expression read from a file or stdin, with its
// 1-based line number for error reporting.
type expressionLine struct {
	Number int
	Text   string
}

// readExpressionLines reads one expression per line, skipping blank lines
// and # comments.
func readExpressionLines(r io.Reader) ([]expressionLine, error) {
	var lines []expressionLine

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, expressionLine{Number: n, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expressions: %w", err)
	}

	return lines, nil
}

// readExpressionFile reads expressions from a file, one per line.
func readExpressionFile(path string) ([]expressionLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	return readExpressionLines(f)
}
