// ABOUTME: Tests for the table and JSON output helpers
// ABOUTME: Covers bare arrays, the items envelope, and missing fields

package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

var testColumns = []column{
	{"ID", "id"},
	{"NAME", "name"},
	{"STATUS", "status"},
}

func TestRenderListArray(t *testing.T) {
	raw := json.RawMessage(`[
		{"id": 1, "name": "first", "status": "active"},
		{"id": 2, "name": "second"}
	]`)

	var out bytes.Buffer
	renderList(&out, raw, testColumns)

	got := out.String()
	for _, want := range []string{"ID", "NAME", "STATUS", "first", "second", "(2 rows)"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if !strings.Contains(got, "-") {
		t.Errorf("expected placeholder for missing status:\n%s", got)
	}
}

func TestRenderListItemsEnvelope(t *testing.T) {
	raw := json.RawMessage(`{"items": [{"id": 9, "name": "wrapped", "status": "ok"}], "total": 1}`)

	var out bytes.Buffer
	renderList(&out, raw, testColumns)

	got := out.String()
	if !strings.Contains(got, "wrapped") {
		t.Errorf("expected row from items envelope:\n%s", got)
	}
	if !strings.Contains(got, "(1 rows)") {
		t.Errorf("expected row count:\n%s", got)
	}
}

func TestRenderListEmpty(t *testing.T) {
	var out bytes.Buffer
	renderList(&out, json.RawMessage(`[]`), testColumns)

	if !strings.Contains(out.String(), "(0 rows)") {
		t.Errorf("expected zero row count:\n%s", out.String())
	}
}

func TestRenderFields(t *testing.T) {
	raw := json.RawMessage(`{"id": 3, "name": "one", "status": "active"}`)

	var out bytes.Buffer
	renderFields(&out, raw, testColumns)

	got := out.String()
	if !strings.Contains(got, "ID:") || !strings.Contains(got, "one") {
		t.Errorf("unexpected field output:\n%s", got)
	}
}

func TestPrintJSONPrettyPrints(t *testing.T) {
	var out bytes.Buffer
	printJSON(&out, json.RawMessage(`{"a":1,"b":"x"}`))

	got := out.String()
	if !strings.Contains(got, "  \"a\": 1") {
		t.Errorf("expected indented output:\n%s", got)
	}
}

func TestPrintJSONPassesThroughInvalid(t *testing.T) {
	var out bytes.Buffer
	printJSON(&out, json.RawMessage(`not-json`))

	if !strings.Contains(out.String(), "not-json") {
		t.Errorf("expected raw passthrough:\n%s", out.String())
	}
}
