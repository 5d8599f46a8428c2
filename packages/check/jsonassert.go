package check

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// JSONAssert is the assertion family for JSON (and YAML) documents. Paths
// use gjson syntax, e.g. "items.0.name".
type JSONAssert interface {
	As(format string, args ...any) JSONAssert
	WithFailMessage(format string, args ...any) JSONAssert
	UsingComparator(scope string, eq Comparator) JSONAssert

	Exists(path string) JSONAssert
	DoesNotExist(path string) JSONAssert
	IsObject() JSONAssert
	IsArray() JSONAssert
	EqualsValue(expected any) JSONAssert
	MatchesSchema(schema string) JSONAssert
	HasLength(n int) JSONAssert

	Get(path string) JSONAssert
	AsValue() ValueAssert
	AsString() StringAssert
	AsNumber() NumberAssert
	AsSlice() SliceAssert

	Raw() string
	MustGet(path string) any
}

type jsonAssert struct {
	base
	doc gjson.Result
}

// JSON builds a JSONAssert over a JSON document. An invalid document fails
// at construction.
func JSON(src string, opts ...Option) JSONAssert {
	b := newBase(opts...)
	if !jsonValid(src) {
		b.fail("expected valid JSON, got %s", b.repr(src))
	}
	return newJSONAssert(b, src)
}

// YAML builds a JSONAssert over a YAML document by converting it to JSON
// first, so the full gjson path syntax applies.
func YAML(src string, opts ...Option) JSONAssert {
	b := newBase(opts...)
	var v any
	if err := yaml.Unmarshal([]byte(src), &v); err != nil {
		b.failCause(err, "invalid YAML: %v", err)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		b.failCause(err, "cannot convert YAML to JSON: %v", err)
	}
	return newJSONAssert(b, string(raw))
}

func newJSONAssert(b base, src string) *jsonAssert {
	return &jsonAssert{base: b, doc: gjson.Parse(src)}
}

func jsonValid(s string) bool {
	return gjson.Valid(s)
}

func (a *jsonAssert) As(format string, args ...any) JSONAssert {
	a.setLabel(format, args...)
	return a
}

func (a *jsonAssert) WithFailMessage(format string, args ...any) JSONAssert {
	a.setOverride(format, args...)
	return a
}

func (a *jsonAssert) UsingComparator(scope string, eq Comparator) JSONAssert {
	a.comps.Register(scope, eq)
	return a
}

func (a *jsonAssert) Exists(path string) JSONAssert {
	if !a.doc.Get(path).Exists() {
		a.fail("expected path %q to exist", path)
	}
	return a
}

func (a *jsonAssert) DoesNotExist(path string) JSONAssert {
	if a.doc.Get(path).Exists() {
		a.fail("expected path %q not to exist", path)
	}
	return a
}

func (a *jsonAssert) IsObject() JSONAssert {
	if !a.doc.IsObject() {
		a.fail("expected a JSON object, got %s", a.repr(a.doc.String()))
	}
	return a
}

func (a *jsonAssert) IsArray() JSONAssert {
	if !a.doc.IsArray() {
		a.fail("expected a JSON array, got %s", a.repr(a.doc.String()))
	}
	return a
}

func (a *jsonAssert) EqualsValue(expected any) JSONAssert {
	if !a.equal(a.doc.Value(), expected) {
		a.fail("expected %s, got %s", a.repr(expected), a.repr(a.doc.Value()))
	}
	return a
}

// MatchesSchema validates the document against a JSON Schema source.
func (a *jsonAssert) MatchesSchema(schema string) JSONAssert {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(a.doc.Raw),
	)
	if err != nil {
		a.failCause(err, "schema validation error: %v", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		a.fail("schema validation failed: %s", strings.Join(msgs, "; "))
	}
	return a
}

func (a *jsonAssert) HasLength(n int) JSONAssert {
	var length int
	switch {
	case a.doc.IsArray():
		length = len(a.doc.Array())
	case a.doc.IsObject():
		length = len(a.doc.Map())
	case a.doc.Type == gjson.String:
		length = len(a.doc.String())
	default:
		a.fail("cannot get length of %s", a.repr(a.doc.String()))
	}
	if length != n {
		a.fail("expected length %d, got %d", n, length)
	}
	return a
}

// Get navigates to the value at path; a missing path is a navigation
// failure.
func (a *jsonAssert) Get(path string) JSONAssert {
	res := a.doc.Get(path)
	if !res.Exists() {
		a.fail("no value at path %q", path)
	}
	return &jsonAssert{base: a.child(), doc: res}
}

func (a *jsonAssert) AsValue() ValueAssert {
	return &valueAssert{base: a.child(), actual: a.doc.Value()}
}

func (a *jsonAssert) AsString() StringAssert {
	if a.doc.Type != gjson.String {
		a.fail("expected a JSON string, got %s", a.repr(a.doc.String()))
	}
	return &stringAssert{base: a.child(), actual: a.doc.String()}
}

func (a *jsonAssert) AsNumber() NumberAssert {
	if a.doc.Type != gjson.Number {
		a.fail("expected a JSON number, got %s", a.repr(a.doc.String()))
	}
	return &numberAssert{base: a.child(), actual: a.doc.Float()}
}

func (a *jsonAssert) AsSlice() SliceAssert {
	if !a.doc.IsArray() {
		a.fail("expected a JSON array, got %s", a.repr(a.doc.String()))
	}
	items, _ := toSlice(a.doc.Value())
	return &sliceAssert{base: a.child(), actual: items}
}

func (a *jsonAssert) Raw() string {
	return a.doc.Raw
}

// MustGet returns the raw value at path directly. Unlike Get, it is not a
// chained assertion: on a missing path the raised failure is not deferrable.
func (a *jsonAssert) MustGet(path string) any {
	res := a.doc.Get(path)
	if !res.Exists() {
		Raise("no value at path %q", path)
	}
	return res.Value()
}
