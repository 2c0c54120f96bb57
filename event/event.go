// Package event models one decoded row mutation from the change-data-capture
// stream and the Debezium-style envelope it arrives in. It is the shared
// vocabulary between the stream consumer, the transformation engine, and the
// validation stages.
package event

// Operation is the row mutation kind carried by a change message.
type Operation string

// Debezium-style operation codes.
const (
	OpCreate Operation = "c"
	OpUpdate Operation = "u"
	OpDelete Operation = "d"
)

// Name returns the human-readable operation name for logs.
func (o Operation) Name() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	}
	return string(o)
}

// Field is one payload column in source order.
type Field struct {
	Name  string
	Value any
}

// Payload is the ordered field set of a change event. A field may be present
// with a nil value (explicit SQL NULL), which is distinct from absent.
type Payload struct {
	fields []Field
	index  map[string]int
}

// NewPayload builds a payload preserving the given field order. A repeated
// field name keeps the last value but its original position.
func NewPayload(fields []Field) *Payload {
	p := &Payload{index: make(map[string]int, len(fields))}
	for _, f := range fields {
		if i, ok := p.index[f.Name]; ok {
			p.fields[i].Value = f.Value
			continue
		}
		p.index[f.Name] = len(p.fields)
		p.fields = append(p.fields, f)
	}
	return p
}

// Get returns a field value and whether the field is present.
func (p *Payload) Get(name string) (any, bool) {
	i, ok := p.index[name]
	if !ok {
		return nil, false
	}
	return p.fields[i].Value, true
}

// Has reports whether the field is present, null or not.
func (p *Payload) Has(name string) bool {
	_, ok := p.index[name]
	return ok
}

// Fields returns the fields in source order.
func (p *Payload) Fields() []Field {
	return p.fields
}

// Len returns the number of fields.
func (p *Payload) Len() int {
	return len(p.fields)
}

// ChangeEvent is one decoded row mutation. It is immutable once decoded;
// the consumer owns it until the transformation engine consumes it.
type ChangeEvent struct {
	Op         Operation
	EntityType string
	PrimaryKey string
	Payload    *Payload
	Position   string
}
