// Package ntriples implements a streaming reader for the N-Triples subset
// described in spec §4.1: one triple per line, gzip-aware, UTF-8 plus
// \uXXXX/\UXXXXXXXX escape decoding, malformed lines skipped silently.
package ntriples

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/logging"
)

// Triple is a single well-formed statement read from an N-Triples file.
// Origin carries the source file path for progress reporting only.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
	Origin    string
}

// Reader lazily streams well-formed triples from a list of files, opening
// each in turn. Blank-node subjects/objects are dropped (spec §4.1, the
// acknowledged blank-node gap).
type Reader struct {
	paths  []string
	idx    int
	cur    *bufio.Scanner
	closer io.Closer
	logger *logging.Logger
	origin string
}

// NewReader constructs a Reader over paths, which must be a non-empty list
// of *.nt or *.nt.gz file paths. An empty or nil paths value is an
// input-shape condition the caller should reject before constructing a
// Reader; this constructor itself never errors.
func NewReader(paths []string, logger *logging.Logger) *Reader {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{Level: logging.ErrorLevel})
	}
	return &Reader{paths: paths, logger: logger}
}

// Next returns the next well-formed triple, advancing across files as
// needed. It returns (Triple{}, false, nil) once all files are exhausted.
// I/O errors propagate; malformed lines are skipped internally and never
// returned as errors.
func (r *Reader) Next() (Triple, bool, error) {
	for {
		if r.cur == nil {
			if !r.openNext() {
				return Triple{}, false, nil
			}
		}

		for r.cur.Scan() {
			line := r.cur.Text()
			t, ok := parseLine(line)
			if !ok {
				continue
			}
			t.Origin = r.origin
			return t, true, nil
		}

		if err := r.cur.Err(); err != nil {
			return Triple{}, false, fmt.Errorf("reading %s: %w", r.origin, err)
		}

		r.closeCurrent()
	}
}

// Close releases any file handle currently open.
func (r *Reader) Close() error {
	r.closeCurrent()
	return nil
}

func (r *Reader) openNext() bool {
	for r.idx < len(r.paths) {
		path := r.paths[r.idx]
		r.idx++

		f, err := os.Open(path)
		if err != nil {
			r.logger.Warn("skipping unreadable nt file", map[string]interface{}{
				"path": path, "error": err.Error(),
			})
			continue
		}

		var rd io.Reader = f
		var closer io.Closer = f
		if strings.HasSuffix(path, ".gz") {
			gz, err := gzip.NewReader(f)
			if err != nil {
				r.logger.Warn("skipping unreadable gzip nt file", map[string]interface{}{
					"path": path, "error": err.Error(),
				})
				f.Close()
				continue
			}
			rd = gz
			closer = multiCloser{gz, f}
		}

		r.cur = bufio.NewScanner(rd)
		r.cur.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		r.closer = closer
		r.origin = path
		return true
	}
	return false
}

func (r *Reader) closeCurrent() {
	if r.closer != nil {
		r.closer.Close()
		r.closer = nil
	}
	r.cur = nil
}

type multiCloser struct {
	a, b io.Closer
}

func (m multiCloser) Close() error {
	err1 := m.a.Close()
	err2 := m.b.Close()
	if err1 != nil {
		return err1
	}
	return err2
}

// parseLine parses a single N-Triples line per the subset grammar in
// spec §4.1: a valid line ends with " .\n" (the scanner has already
// stripped the trailing newline). After stripping the " ." trailer, the
// line is split on single spaces; the first token is the subject, the
// second the predicate, the remainder (rejoined on single spaces) is the
// object. Subject and predicate must each be wrapped in <...>.
func parseLine(line string) (Triple, bool) {
	line = strings.TrimSuffix(line, "\r")
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Triple{}, false
	}

	if !strings.HasSuffix(line, " .") {
		return Triple{}, false
	}
	body := line[:len(line)-2]

	parts := strings.SplitN(body, " ", 3)
	if len(parts) != 3 {
		return Triple{}, false
	}
	subject, predicate, object := parts[0], parts[1], parts[2]

	if !isIRI(subject) || !isIRI(predicate) {
		return Triple{}, false
	}
	if strings.HasPrefix(subject, "_:") || strings.HasPrefix(object, "_:") {
		return Triple{}, false
	}

	return Triple{
		Subject:   DecodeUnicodeEscapes(subject),
		Predicate: DecodeUnicodeEscapes(predicate),
		Object:    DecodeUnicodeEscapes(object),
	}, true
}

func isIRI(s string) bool {
	return len(s) >= 2 && s[0] == '<' && s[len(s)-1] == '>'
}
