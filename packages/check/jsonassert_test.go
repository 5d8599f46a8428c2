package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userDoc = `{
	"user": {"name": "ana", "age": 30},
	"tags": ["admin", "ops"]
}`

func TestJSONAssert(t *testing.T) {
	assert.NoError(t, Capture(func() {
		JSON(userDoc).
			IsObject().
			Exists("user.name").
			DoesNotExist("user.email").
			HasLength(2)
	}))

	err := failureOf(t, func() { JSON(userDoc).Exists("user.email") })
	assert.Equal(t, `expected path "user.email" to exist`, err.Error())
}

func TestJSONAssertInvalidDocument(t *testing.T) {
	err := failureOf(t, func() { JSON("{nope") })
	assert.Contains(t, err.Error(), "expected valid JSON")
}

func TestJSONAssertNavigation(t *testing.T) {
	assert.NoError(t, Capture(func() {
		JSON(userDoc).Get("user").Get("name").AsString().IsEqualTo("ana")
	}))
	assert.NoError(t, Capture(func() {
		JSON(userDoc).Get("user.age").AsNumber().IsEqualTo(30)
	}))
	assert.NoError(t, Capture(func() {
		JSON(userDoc).Get("tags").IsArray().AsSlice().Contains("ops")
	}))
	assert.NoError(t, Capture(func() {
		JSON(userDoc).Get("tags.0").AsValue().IsEqualTo("admin")
	}))

	err := failureOf(t, func() { JSON(userDoc).Get("user.missing") })
	assert.Equal(t, `no value at path "user.missing"`, err.Error())

	err = failureOf(t, func() { JSON(userDoc).Get("user.name").AsNumber() })
	assert.Contains(t, err.Error(), "expected a JSON number")
}

func TestJSONAssertMatchesSchema(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": {
			"user": {
				"type": "object",
				"required": ["name", "age"]
			}
		},
		"required": ["user"]
	}`

	assert.NoError(t, Capture(func() { JSON(userDoc).MatchesSchema(schema) }))

	strict := `{"type": "array"}`
	err := failureOf(t, func() { JSON(userDoc).MatchesSchema(strict) })
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestJSONAssertMustGet(t *testing.T) {
	assert.Equal(t, "ana", JSON(userDoc).MustGet("user.name"))
	require.Panics(t, func() { JSON(userDoc).MustGet("user.missing") })
}

func TestYAMLAssert(t *testing.T) {
	doc := `
user:
  name: ana
  age: 30
tags:
  - admin
  - ops
`
	assert.NoError(t, Capture(func() {
		YAML(doc).
			IsObject().
			Get("user.name").
			AsString().
			IsEqualTo("ana")
	}))
	assert.NoError(t, Capture(func() {
		YAML(doc).Get("tags").AsSlice().HasSize(2)
	}))

	err := failureOf(t, func() { YAML("{b:a, a") })
	assert.Contains(t, err.Error(), "invalid YAML")
}

func TestStringAsJSON(t *testing.T) {
	assert.NoError(t, Capture(func() {
		Str(`{"ok": true}`).AsJSON().Get("ok").AsValue().IsEqualTo(true)
	}))

	err := failureOf(t, func() { Str("plain text").AsJSON() })
	assert.Contains(t, err.Error(), "expected valid JSON")
}
