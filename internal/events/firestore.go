package events

import (
	"strings"
	"time"
)

// FirestoreEvent is the payload delivered for document create/update
// triggers. OldValue is zero for creates; both values are set for updates.
type FirestoreEvent struct {
	OldValue   FirestoreValue `json:"oldValue"`
	Value      FirestoreValue `json:"value"`
	UpdateMask struct {
		FieldPaths []string `json:"fieldPaths"`
	} `json:"updateMask"`
}

// FirestoreValue is a document snapshot as it appears on the wire: the full
// resource name plus fields encoded in the protobuf JSON union format.
type FirestoreValue struct {
	Name       string                `json:"name"`
	Fields     map[string]FieldValue `json:"fields"`
	CreateTime time.Time             `json:"createTime"`
	UpdateTime time.Time             `json:"updateTime"`
}

// FieldValue is the wire encoding of a single document field. Exactly one
// of the value members is set.
type FieldValue struct {
	StringValue    *string    `json:"stringValue,omitempty"`
	BooleanValue   *bool      `json:"booleanValue,omitempty"`
	IntegerValue   *string    `json:"integerValue,omitempty"`
	TimestampValue *time.Time `json:"timestampValue,omitempty"`
}

// IsZero reports whether the snapshot carries no document, which happens on
// malformed events and on the missing side of a create/delete pair.
func (v FirestoreValue) IsZero() bool {
	return v.Name == "" && len(v.Fields) == 0
}

// Has reports whether the document contains the named field at all,
// regardless of its type.
func (v FirestoreValue) Has(field string) bool {
	_, ok := v.Fields[field]
	return ok
}

// Timestamp returns the named field as a timestamp. ok is false when the
// field is absent or not a timestamp.
func (v FirestoreValue) Timestamp(field string) (time.Time, bool) {
	fv, ok := v.Fields[field]
	if !ok || fv.TimestampValue == nil {
		return time.Time{}, false
	}
	return *fv.TimestampValue, true
}

// DocumentID returns the last segment of the document resource name, e.g.
// "abc123" for ".../documents/users/abc123".
func (v FirestoreValue) DocumentID() string {
	if v.Name == "" {
		return ""
	}
	parts := strings.Split(v.Name, "/")
	return parts[len(parts)-1]
}
