package records

// Column positions of a contact export row.
const (
	ColFirstName = iota
	ColLastName
	ColStreet1
	ColStreet2
	ColCity
	ColState
	ColCountryCode // unused
	ColCountry
	ColEmail
	ColPhone
	ColModel
	ColComments
)

// MinFields is the number of columns a row needs to be processed.
// The comments column is optional.
const MinFields = ColModel + 1

// Record is one data row of the input CSV
type Record struct {
	Row    int      // 1-based, header excluded
	Fields []string // in column order
}

// Valid reports whether the row carries enough columns to be processed.
func (r Record) Valid() bool {
	return len(r.Fields) >= MinFields
}

// Field returns the value at column i, or "" if the row is shorter.
func (r Record) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// Map returns a copy of the record with fn applied to every field.
func (r Record) Map(fn func(string) string) Record {
	fields := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		fields[i] = fn(f)
	}
	return Record{Row: r.Row, Fields: fields}
}

func (r Record) FirstName() string { return r.Field(ColFirstName) }
func (r Record) LastName() string  { return r.Field(ColLastName) }
func (r Record) Street1() string   { return r.Field(ColStreet1) }
func (r Record) Street2() string   { return r.Field(ColStreet2) }
func (r Record) City() string      { return r.Field(ColCity) }
func (r Record) State() string     { return r.Field(ColState) }
func (r Record) Country() string   { return r.Field(ColCountry) }
func (r Record) Email() string     { return r.Field(ColEmail) }
func (r Record) Phone() string     { return r.Field(ColPhone) }
func (r Record) Model() string     { return r.Field(ColModel) }

// Comments returns the free-text story, "" when the column is absent.
func (r Record) Comments() string { return r.Field(ColComments) }
