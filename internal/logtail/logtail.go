package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Severity classifies a headway log line.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
)

// Line is one log line with its classification.
type Line struct {
	Text     string
	Severity Severity
}

// Tail returns at most maxLines classified lines from the end of the file at
// path. A missing file yields no lines.
func Tail(path string, maxLines int) ([]Line, error) {
	raw, err := read(path, maxLines)
	if err != nil {
		return nil, err
	}
	lines := make([]Line, len(raw))
	for i, text := range raw {
		lines[i] = Line{Text: text, Severity: Classify(text)}
	}
	return lines, nil
}

// Classify maps a log line to a severity using the events the countdown
// pipeline and poller emit.
func Classify(text string) Severity {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "failed"), strings.Contains(lower, "resolved nothing"):
		return SeverityError
	case strings.Contains(lower, "suspicious"), strings.Contains(lower, "skipped"):
		return SeverityWarn
	default:
		return SeverityInfo
	}
}

// Problems returns the lines at or above SeverityWarn, oldest first.
func Problems(lines []Line) []Line {
	var out []Line
	for _, l := range lines {
		if l.Severity >= SeverityWarn {
			out = append(out, l)
		}
	}
	return out
}

// read keeps the last maxLines lines in a ring so large files are scanned
// once without being held in memory. maxLines <= 0 reads everything.
func read(path string, maxLines int) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var all []string
		for scanner.Scan() {
			all = append(all, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return all, nil
	}

	ring := make([]string, maxLines)
	count, next := 0, 0
	for scanner.Scan() {
		ring[next] = scanner.Text()
		next = (next + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if count < maxLines {
		return ring[:count:count], nil
	}
	lines := make([]string, 0, count)
	lines = append(lines, ring[next:]...)
	return append(lines, ring[:next]...), nil
}
