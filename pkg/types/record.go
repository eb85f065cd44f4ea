package types

// Record is one mod's manifest entry in a profile's list.
//
// Name is the primary key within a list: case-sensitive, unique, enforced
// by the list manager rather than the codec. Every other decoded field is
// carried opaquely in Fields and round-tripped untouched; modstack never
// inspects them.
type Record struct {
	Name   string                 `yaml:"name"`
	Fields map[string]interface{} `yaml:",inline"`
}

// NewRecord builds a Record from a loosely-typed decoded object. The name
// key is lifted out; everything else stays in Fields as-is.
func NewRecord(raw map[string]interface{}) Record {
	rec := Record{Fields: make(map[string]interface{}, len(raw))}
	for k, v := range raw {
		if k == "name" {
			if s, ok := v.(string); ok {
				rec.Name = s
			}
			continue
		}
		rec.Fields[k] = v
	}
	return rec
}

// Field returns an opaque field value and whether it was present.
func (r Record) Field(key string) (interface{}, bool) {
	v, ok := r.Fields[key]
	return v, ok
}

// SetField sets an opaque field value, allocating Fields on first use.
func (r *Record) SetField(key string, value interface{}) {
	if r.Fields == nil {
		r.Fields = make(map[string]interface{})
	}
	r.Fields[key] = value
}

// ModList is the ordered, duplicate-free sequence of Records for one
// profile. Order is user-visible and activation-relevant.
type ModList []Record

// IndexOf returns the index of the first record with the given name, or -1.
func (l ModList) IndexOf(name string) int {
	for i, rec := range l {
		if rec.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the record names in list order.
func (l ModList) Names() []string {
	names := make([]string, len(l))
	for i, rec := range l {
		names[i] = rec.Name
	}
	return names
}
