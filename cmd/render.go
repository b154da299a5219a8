// ABOUTME: Output helpers for command results
// ABOUTME: Renders opaque JSON payloads as tables via gjson field extraction

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tidwall/gjson"
)

// column maps a table header to a gjson path inside each list element.
type column struct {
	header string
	path   string
}

// printJSON pretty-prints a raw payload.
func printJSON(w io.Writer, raw json.RawMessage) {
	var buf []byte
	var v any
	if err := json.Unmarshal(raw, &v); err == nil {
		buf, _ = json.MarshalIndent(v, "", "  ")
	} else {
		buf = raw
	}
	fmt.Fprintln(w, string(buf))
}

// renderList writes one table row per element of a list payload. The
// backend returns either a bare array or an object wrapping it under
// "items"; entity shapes are otherwise opaque to this layer.
func renderList(w io.Writer, raw json.RawMessage, cols []column) {
	parsed := gjson.ParseBytes(raw)
	list := parsed
	if !parsed.IsArray() {
		list = parsed.Get("items")
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, c := range cols {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c.header)
	}
	fmt.Fprintln(tw)

	count := 0
	list.ForEach(func(_, row gjson.Result) bool {
		for i, c := range cols {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell(row.Get(c.path)))
		}
		fmt.Fprintln(tw)
		count++
		return true
	})
	tw.Flush()
	fmt.Fprintf(w, "(%d rows)\n", count)
}

// renderFields writes a single entity as aligned key/value lines.
func renderFields(w io.Writer, raw json.RawMessage, cols []column) {
	row := gjson.ParseBytes(raw)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range cols {
		fmt.Fprintf(tw, "%s:\t%s\n", c.header, cell(row.Get(c.path)))
	}
	tw.Flush()
}

func cell(v gjson.Result) string {
	if !v.Exists() {
		return "-"
	}
	return v.String()
}
