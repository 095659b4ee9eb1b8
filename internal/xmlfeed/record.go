package xmlfeed

import "github.com/beevik/etree"

// FieldMapping pairs a feed element's local name with an output field name.
type FieldMapping struct {
	Element string
	Field   string
}

// Table is an ordered field mapping for one resource kind. Its order is the
// field order of every record extracted with it.
type Table []FieldMapping

// Fields returns the output field names in table order.
func (t Table) Fields() []string {
	fields := make([]string, len(t))
	for i, m := range t {
		fields[i] = m.Field
	}
	return fields
}

// Record is one extracted record element: every field of its table, in table
// order, holding trimmed text or nil.
type Record struct {
	fields []string
	values map[string]*string
}

// Fields returns the record's field names in table order.
func (r Record) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Get returns the text of field, or nil when the field is null or unknown.
func (r Record) Get(field string) *string {
	return r.values[field]
}

// Has reports whether field is one of the record's declared fields.
func (r Record) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Extract builds a record from the direct children of el. Each table entry
// takes the text of the first child whose qualified tag matches; later
// children with the same tag are ignored. Entries with no matching child
// are null. Extract never fails.
func (ns Namespace) Extract(el *etree.Element, table Table) Record {
	first := make(map[string]*etree.Element)
	for _, child := range el.ChildElements() {
		tag := "{" + child.NamespaceURI() + "}" + child.Tag
		if _, seen := first[tag]; !seen {
			first[tag] = child
		}
	}

	rec := Record{
		fields: table.Fields(),
		values: make(map[string]*string, len(table)),
	}
	for _, m := range table {
		var value *string
		if child, ok := first[ns.Qualify(m.Element)]; ok {
			text := child.Text()
			value = Text(&text)
		}
		rec.values[m.Field] = value
	}
	return rec
}

// ExtractAll extracts every direct child of root, in document order.
func (ns Namespace) ExtractAll(root *etree.Element, table Table) []Record {
	children := root.ChildElements()
	records := make([]Record, 0, len(children))
	for _, child := range children {
		records = append(records, ns.Extract(child, table))
	}
	return records
}
