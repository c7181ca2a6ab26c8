package ordered

import (
	"github.com/ValentinKolb/dRec/lib/db"
	"slices"
)

// orderedImpl keeps the values in a map and the insertion order in a separate key slice
type orderedImpl[V any] struct {
	values map[string]V
	keys   []string
}

// NewOrderedTable creates a new, empty insertion-ordered table.
//
// Thread-safety: the table is not safe for concurrent use.
func NewOrderedTable[V any]() db.Table[V] {
	return &orderedImpl[V]{
		values: make(map[string]V),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see db.Table)
// --------------------------------------------------------------------------

func (o *orderedImpl[V]) Set(key string, value V) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o *orderedImpl[V]) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	if idx := slices.Index(o.keys, key); idx >= 0 {
		o.keys = slices.Delete(o.keys, idx, idx+1)
	}
}

func (o *orderedImpl[V]) Get(key string) (V, bool) {
	val, ok := o.values[key]
	return val, ok
}

func (o *orderedImpl[V]) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

func (o *orderedImpl[V]) Keys() []string {
	return slices.Clone(o.keys)
}

func (o *orderedImpl[V]) Range(fn func(key string, value V) bool) {
	for _, key := range o.keys {
		if !fn(key, o.values[key]) {
			return
		}
	}
}

func (o *orderedImpl[V]) Len() int {
	return len(o.keys)
}

func (o *orderedImpl[V]) GetInfo() db.DatabaseInfo {
	return db.DatabaseInfo{
		Entries: len(o.keys),
		DbType:  db.ImplOrdered,
	}
}
