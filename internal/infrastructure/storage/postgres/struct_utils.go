package postgres

import (
	"reflect"
	"sync"
)

// columnInfo describes one "db"-tagged field reachable from a struct type.
// path is the chain of field indices, so embedded structs are flattened.
type columnInfo struct {
	name string
	path []int
}

var columnCache sync.Map // map[reflect.Type][]columnInfo

// columnsOf returns the flattened column list of t, computing it once per type.
func columnsOf(t reflect.Type) []columnInfo {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := columnCache.Load(t); ok {
		return cached.([]columnInfo)
	}

	var cols []columnInfo
	if t.Kind() == reflect.Struct {
		cols = collectColumns(t, nil)
	}
	columnCache.Store(t, cols)
	return cols
}

func collectColumns(t reflect.Type, prefix []int) []columnInfo {
	var cols []columnInfo
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		path := append(append([]int(nil), prefix...), i)

		// Embedded structs (entity.Catalog, entity.Timestamps, contact blocks)
		if field.Anonymous {
			ft := field.Type
			if ft.Kind() == reflect.Ptr {
				continue
			}
			if ft.Kind() == reflect.Struct {
				cols = append(cols, collectColumns(ft, path)...)
			}
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		cols = append(cols, columnInfo{name: tag, path: path})
	}
	return cols
}

// ExtractDBColumns lists the column names of T from its "db" tags,
// descending into embedded structs.
//
//	columns := ExtractDBColumns[supplier.Supplier]()
//	// ["id", "name", "created_on", "updated_on", "phone", ...]
func ExtractDBColumns[T any]() []string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	cols := columnsOf(t)
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names
}

// StructToMap converts a struct (or pointer to struct) to a column map
// using "db" tags. Embedded structs are flattened into the same map.
func StructToMap(v any) map[string]any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	cols := columnsOf(rv.Type())
	res := make(map[string]any, len(cols))
	for _, c := range cols {
		res[c.name] = rv.FieldByIndex(c.path).Interface()
	}
	return res
}
