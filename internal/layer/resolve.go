package layer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/thoreinstein/kiplot/internal/errors"
)

var innerName = regexp.MustCompile(`^Inner\.([0-9]+)$`)

// Descriptor is a layer name resolved to its board id.
type Descriptor struct {
	ID    int    `json:"id" yaml:"id" msgpack:"id"`
	Inner bool   `json:"inner" yaml:"inner" msgpack:"inner"`
	Name  string `json:"name" yaml:"name" msgpack:"name"`
}

// Strategy resolves a name or reports that it does not apply. A non-nil
// error stops resolution.
type Strategy func(name string) (Descriptor, bool, error)

// Resolver resolves layer names by trying its strategies in order.
type Resolver struct {
	table      *Table
	strategies []Strategy
}

// NewResolver creates a Resolver over table. A nil table behaves as one
// with every slot unused.
func NewResolver(table *Table) *Resolver {
	if table == nil {
		table = NewTable()
	}
	r := &Resolver{table: table}
	r.strategies = []Strategy{
		resolveWellKnown,
		r.resolveDeclared,
		resolveNumberedInner,
	}
	return r
}

// Table returns the table the resolver consults.
func (r *Resolver) Table() *Table {
	return r.table
}

// Resolve maps name to its Descriptor. Well-known names win over names the
// board declares, which win over Inner.N names.
func (r *Resolver) Resolve(name string) (Descriptor, error) {
	for _, s := range r.strategies {
		d, ok, err := s(name)
		if err != nil {
			return Descriptor{}, err
		}
		if ok {
			return d, nil
		}
	}
	return Descriptor{}, errors.Mark(errors.Newf("unknown layer name: %s", name), errors.ErrUnknownType)
}

func resolveWellKnown(name string) (Descriptor, bool, error) {
	id, ok := wellKnown[name]
	if !ok {
		return Descriptor{}, false, nil
	}
	return Descriptor{ID: id, Name: name}, true, nil
}

func (r *Resolver) resolveDeclared(name string) (Descriptor, bool, error) {
	id, ok := r.table.Index(name)
	if !ok {
		return Descriptor{}, false, nil
	}
	// Any declared slot below back copper counts as inner, front copper included.
	return Descriptor{ID: id, Inner: id < BCu, Name: name}, true, nil
}

func resolveNumberedInner(name string) (Descriptor, bool, error) {
	if !strings.HasPrefix(name, "Inner") {
		return Descriptor{}, false, nil
	}
	m := innerName.FindStringSubmatch(name)
	if m == nil {
		return Descriptor{}, false, errors.Mark(errors.Newf(
			"malformed inner layer name: %s, use Inner.N", name), errors.ErrMalformedName)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Descriptor{}, false, errors.Mark(errors.Newf(
			"inner layer number out of range: %s", name), errors.ErrMalformedName)
	}
	return Descriptor{ID: n, Inner: true, Name: name}, true, nil
}
