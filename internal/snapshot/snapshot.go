// Package snapshot extracts normalized metadata out of instrument station
// snapshots produced by the QH metadata manager.
//
// A snapshot is a nested, backend-specific mapping of instrument and
// experiment state at a point in time. The metadata lives at a fixed path
// (station.instruments.qh_meta.parameters) but the attribute values are
// inconsistently shaped: scalars are stored either directly or wrapped in a
// mapping carrying provenance next to a "value" field. Extract normalizes
// both shapes into a flat label list and attribute mapping.
package snapshot

import (
	"errors"
	"fmt"
)

// ErrExtractMetadata is returned when a snapshot cannot be interpreted.
// Callers get all-or-nothing output: no partial labels or attributes
// accompany this error.
var ErrExtractMetadata = errors.New("could not extract labels and attributes from snapshot")

// Extract walks a snapshot and returns the dataset labels and attributes
// found under station.instruments.qh_meta.parameters. Missing intermediate
// levels yield empty results rather than an error; only a malformed value
// shape fails the extraction as a whole.
func Extract(snap map[string]any) ([]string, map[string]any, error) {
	params := walk(snap, "station", "instruments", "qh_meta", "parameters")

	labels, err := stringSlice(params["labels"])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrExtractMetadata, err)
	}

	raw, err := mapping(params["attributes"])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrExtractMetadata, err)
	}

	// no good support for wrapped parameters on the server side yet,
	// flatten {"value": x, ...} entries to the string form of x
	attrs := make(map[string]any, len(raw))
	for key, value := range raw {
		if nested, ok := value.(map[string]any); ok {
			if inner, ok := nested["value"]; ok {
				attrs[key] = fmt.Sprintf("%v", inner)
			}
			continue
		}
		attrs[key] = value
	}

	return labels, attrs, nil
}

// walk follows a chain of keys through nested mappings, returning an empty
// mapping as soon as a level is missing or not itself a mapping. This is
// the single declared missing-level behavior of the extractor.
func walk(m map[string]any, keys ...string) map[string]any {
	current := m
	for _, key := range keys {
		next, ok := current[key].(map[string]any)
		if !ok {
			return map[string]any{}
		}
		current = next
	}
	return current
}

// stringSlice coerces a labels value into a string slice. Absent values
// yield an empty slice; present values of the wrong shape are an error.
func stringSlice(v any) ([]string, error) {
	if v == nil {
		return []string{}, nil
	}
	switch labels := v.(type) {
	case []string:
		return labels, nil
	case []any:
		out := make([]string, 0, len(labels))
		for _, label := range labels {
			s, ok := label.(string)
			if !ok {
				return nil, fmt.Errorf("label %v is not a string", label)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("labels have unexpected type %T", v)
	}
}

// mapping coerces an attributes value into a mapping. Absent values yield
// an empty mapping; present values of the wrong shape are an error.
func mapping(v any) (map[string]any, error) {
	if v == nil {
		return map[string]any{}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("attributes have unexpected type %T", v)
	}
	return m, nil
}
