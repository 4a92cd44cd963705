package incident

// Table is an ordered, immutable collection of incident records.
// A Table is never modified after construction, so it is safe to share
// across goroutines.
type Table struct {
	records []Record
}

// NewTable builds a table from deep copies of records.
func NewTable(records []Record) *Table {
	cp := make([]Record, len(records))
	for i, r := range records {
		cp[i] = r.clone()
	}
	return &Table{records: cp}
}

// Len returns the number of records. A nil table is empty.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// At returns a copy of the record at index i.
func (t *Table) At(i int) Record {
	return t.records[i].clone()
}

// Each calls fn for every record in table order. Iteration stops early if
// fn returns false. The records passed to fn share coordinate pointers with
// the table and must not be modified through them.
func (t *Table) Each(fn func(i int, r Record) bool) {
	if t == nil {
		return
	}
	for i, r := range t.records {
		if !fn(i, r) {
			return
		}
	}
}

// Filter returns a new table holding the records for which keep is true.
func (t *Table) Filter(keep func(Record) bool) *Table {
	out := &Table{}
	t.Each(func(_ int, r Record) bool {
		if keep(r) {
			out.records = append(out.records, r)
		}
		return true
	})
	return out
}

// ByCountry returns the records whose country matches exactly.
func (t *Table) ByCountry(country string) *Table {
	return t.Filter(func(r Record) bool { return r.Country == country })
}
