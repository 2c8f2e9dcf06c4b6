package layer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/thoreinstein/kiplot/internal/errors"
)

// Unused marks a table slot the board does not declare.
const Unused = "-"

var (
	sectionStart = regexp.MustCompile(`\s+\(layers`)
	layerEntry   = regexp.MustCompile(`^\s+\((\d+)\s+(\S+)`)
	sectionEnd   = regexp.MustCompile(`^\s+\)$`)
)

// Table maps layer slots to the names declared in a board file.
type Table struct {
	names [Count]string
}

// Entry is one declared slot of a Table.
type Entry struct {
	ID   int
	Name string
}

// TableError reports a board file that could not be read.
type TableError struct {
	Path string
	Err  error
}

func (e *TableError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("reading layer table: %v", e.Err)
	}
	return fmt.Sprintf("reading layer table from %s: %v", e.Path, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// NewTable returns a table with every slot unused.
func NewTable() *Table {
	t := &Table{}
	for i := range t.names {
		t.names[i] = Unused
	}
	return t
}

// LoadTable extracts the layer table from the board file at path.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &TableError{Path: path, Err: err}
	}
	defer f.Close()

	t, err := Extract(f)
	if err != nil {
		return nil, &TableError{Path: path, Err: err}
	}
	return t, nil
}

// Extract scans board text for the first layers section and records each
// "(N name ...)" line. Scanning stops at the first line holding only a
// closing parenthesis. A board without a layers section yields an all
// unused table.
func Extract(r io.Reader) (*Table, error) {
	t := NewTable()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	collecting := false
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if !collecting {
			collecting = sectionStart.MatchString(line)
			continue
		}
		if m := layerEntry.FindStringSubmatch(line); m != nil {
			id, err := strconv.Atoi(m[1])
			// Slots past the table are skipped.
			if err != nil || id >= Count {
				continue
			}
			t.names[id] = strings.Trim(m[2], `"`)
			continue
		}
		if sectionEnd.MatchString(line) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning board")
	}
	return t, nil
}

// Name returns the name declared for id, or Unused.
func (t *Table) Name(id int) string {
	if id < 0 || id >= Count {
		return Unused
	}
	return t.names[id]
}

// Index returns the first slot declaring name.
func (t *Table) Index(name string) (int, bool) {
	if name == Unused {
		return 0, false
	}
	for i, n := range t.names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// Entries returns the declared slots in id order.
func (t *Table) Entries() []Entry {
	var entries []Entry
	for i, n := range t.names {
		if n != Unused {
			entries = append(entries, Entry{ID: i, Name: n})
		}
	}
	return entries
}

// Empty reports whether no slot is declared.
func (t *Table) Empty() bool {
	for _, n := range t.names {
		if n != Unused {
			return false
		}
	}
	return true
}
