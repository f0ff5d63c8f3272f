// Package projection implements optional field selection for read responses.
// Clients pass ?fields=a,b,c to receive only those fields of a resource;
// unknown names are silently ignored.
package projection

import (
	"encoding/json"
	"strings"

	apperrors "paisa/internal/errors"
)

// View describes the projectable fields of one resource: the set returned
// when no fields are requested, plus any extras that may be asked for.
type View struct {
	Default []string
	Allowed []string
}

// ParseFields splits a raw ?fields= value on commas, trimming whitespace and
// dropping empty entries.
func ParseFields(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}

// Select resolves the requested field names against the view: no request
// means the default set, otherwise the requested names restricted to those
// the view knows about, in request order.
func (v View) Select(requested []string) []string {
	if len(requested) == 0 {
		return v.Default
	}
	known := make(map[string]struct{}, len(v.Default)+len(v.Allowed))
	for _, f := range v.Default {
		known[f] = struct{}{}
	}
	for _, f := range v.Allowed {
		known[f] = struct{}{}
	}
	selected := make([]string, 0, len(requested))
	for _, f := range requested {
		if _, ok := known[f]; ok {
			selected = append(selected, f)
		}
	}
	return selected
}

// Project serializes obj through its JSON tags and keeps only the given
// fields. All-unknown requests yield an empty object rather than an error.
func Project(obj interface{}, fields []string) (map[string]interface{}, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var full map[string]interface{}
	if err := json.Unmarshal(data, &full); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	out := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		if v, ok := full[f]; ok {
			out[f] = v
		}
	}
	return out, nil
}

// ProjectSlice applies Project to each element of a slice.
func ProjectSlice[T any](objs []T, fields []string) ([]map[string]interface{}, error) {
	out := make([]map[string]interface{}, 0, len(objs))
	for i := range objs {
		m, err := Project(objs[i], fields)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
