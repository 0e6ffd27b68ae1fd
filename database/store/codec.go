package store

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Encode converts a tagged model into a Document.
func Encode(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return doc, nil
}

// Decode fills v from doc.
func Decode(doc Document, v any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

// Clone deep-copies maps and slices so callers never share state with the store.
func Clone(doc Document) Document {
	if doc == nil {
		return nil
	}
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case Document:
		return Clone(t)
	case map[string]interface{}:
		return map[string]interface{}(Clone(Document(t)))
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// merge applies partial onto dst. Top-level keys replace whole values; a
// dotted key such as "verification.adminApproved" sets a single nested field.
func merge(dst, partial Document) Document {
	if dst == nil {
		dst = Document{}
	}
	for k, v := range partial {
		path := strings.Split(k, ".")
		target := map[string]interface{}(dst)
		for _, p := range path[:len(path)-1] {
			next, ok := target[p].(map[string]interface{})
			if !ok {
				if d, isDoc := target[p].(Document); isDoc {
					next = d
				} else {
					next = map[string]interface{}{}
				}
				target[p] = next
			}
			target = next
		}
		target[path[len(path)-1]] = cloneValue(v)
	}
	return dst
}
