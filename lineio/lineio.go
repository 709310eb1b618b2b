// Package lineio provides the line-oriented file I/O shared by every
// feedmill entry point: reading a whole file (or stdin) into memory,
// streaming it line by line, and writing output (or discarding it),
// honoring the "-" stdin/stdout and "null" discard path sentinels.
package lineio

import (
	"bufio"
	"io"
	"os"

	"github.com/libraz/suzume-feedmill/errs"
	"github.com/libraz/suzume-feedmill/progress"
)

// StdinPath is the sentinel path meaning "read from standard input"
// (or, for an output path, "write to standard output").
const StdinPath = "-"

// DiscardPath is the sentinel output path meaning "discard output
// entirely" — useful for benchmarking a pipeline's processing cost
// without paying for the write.
const DiscardPath = "null"

// maxBufferLine bounds a single scanned line, generous enough for any
// realistic corpus row while still catching a corrupt/binary input
// file quickly instead of exhausting memory.
const maxBufferLine = 16 * 1024 * 1024

// Open resolves path to a readable io.ReadCloser, honoring StdinPath.
// The caller must Close the result even when it wraps os.Stdin (Close
// on os.Stdin is a harmless no-op from the caller's point of view).
func Open(path string) (io.ReadCloser, error) {
	if path == StdinPath {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.New("lineio.Open", errs.NotFound, path, err)
		}
		if os.IsPermission(err) {
			return nil, errs.NewIO("lineio.Open", errs.Permission, path, err)
		}
		return nil, errs.NewIO("lineio.Open", errs.Generic, path, err)
	}
	return f, nil
}

// Create resolves path to a writable io.WriteCloser, honoring
// StdinPath (meaning stdout) and DiscardPath.
func Create(path string) (io.WriteCloser, error) {
	switch path {
	case StdinPath:
		return nopWriteCloser{os.Stdout}, nil
	case DiscardPath:
		return nopWriteCloser{io.Discard}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, errs.NewIO("lineio.Create", errs.Permission, path, err)
		}
		if os.IsNotExist(err) {
			return nil, errs.NewIO("lineio.Create", errs.DirectoryMissing, path, err)
		}
		return nil, errs.NewIO("lineio.Create", errs.Generic, path, err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// ReadAllLines reads every line of path into memory, honoring
// StdinPath. Lines are returned without their trailing newline. If
// tracker is non-nil, it receives progress.Reading events as the file
// is consumed.
func ReadAllLines(path string, tracker *progress.Tracker) ([]string, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	total, _ := fileSize(path)

	var lines []string
	var read int64
	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), maxBufferLine)
	for scanner.Scan() {
		line := scanner.Text()
		lines = append(lines, line)
		read += int64(len(line)) + 1
		if tracker != nil && total > 0 {
			tracker.Update(progress.Reading, float64(read)/float64(total), "")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.NewIO("lineio.ReadAllLines", errs.Generic, path, err)
	}

	return lines, nil
}

// ProcessLineByLine streams path one line at a time, invoking fn for
// each line without buffering the whole file in memory. fn returning
// an error stops the scan and that error is returned.
func ProcessLineByLine(path string, fn func(line string) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), maxBufferLine)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errs.NewIO("lineio.ProcessLineByLine", errs.Generic, path, err)
	}
	return nil
}

// WriteLines writes lines to path, one per line, honoring StdinPath
// and DiscardPath.
func WriteLines(path string, lines []string, tracker *progress.Tracker) error {
	wc, err := Create(path)
	if err != nil {
		return err
	}
	defer wc.Close()

	w := bufio.NewWriter(wc)
	for i, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return errs.NewIO("lineio.WriteLines", errs.Generic, path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return errs.NewIO("lineio.WriteLines", errs.Generic, path, err)
		}
		if tracker != nil && len(lines) > 0 {
			tracker.Update(progress.Writing, float64(i+1)/float64(len(lines)), "")
		}
	}
	if err := w.Flush(); err != nil {
		return errs.NewIO("lineio.WriteLines", errs.Generic, path, err)
	}
	return nil
}

func fileSize(path string) (int64, error) {
	if path == StdinPath {
		return 0, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
