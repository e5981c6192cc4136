package buildconfig

import (
	"bytes"
	"encoding/json"
)

// JSON field names owned by each block; anything else lands in Rest.
var (
	hostKeys    = []string{"resolve", "module", "env", "distDir", "sassOptions", "source"}
	resolveKeys = []string{"alias", "extensions"}
	moduleKeys  = []string{"rules"}
)

type (
	hostFields    HostConfig
	resolveFields Resolve
	moduleFields  Module
)

func (h HostConfig) MarshalJSON() ([]byte, error) {
	return marshalWithRest(hostFields(h), h.Rest, hostKeys)
}

func (h *HostConfig) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, (*hostFields)(h)); err != nil {
		return err
	}
	rest, err := remainder(data, hostKeys)
	h.Rest = rest
	return err
}

func (r Resolve) MarshalJSON() ([]byte, error) {
	return marshalWithRest(resolveFields(r), r.Rest, resolveKeys)
}

func (r *Resolve) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, (*resolveFields)(r)); err != nil {
		return err
	}
	rest, err := remainder(data, resolveKeys)
	r.Rest = rest
	return err
}

func (m Module) MarshalJSON() ([]byte, error) {
	return marshalWithRest(moduleFields(m), m.Rest, moduleKeys)
}

func (m *Module) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, (*moduleFields)(m)); err != nil {
		return err
	}
	rest, err := remainder(data, moduleKeys)
	m.Rest = rest
	return err
}

// marshalWithRest encodes known and adds the rest entries whose keys are
// not owned by known.
func marshalWithRest(known any, rest map[string]any, owned []string) ([]byte, error) {
	data, err := encodeJSON(known)
	if err != nil || len(rest) == 0 {
		return data, err
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for k, v := range rest {
		if contains(owned, k) {
			continue
		}
		raw, err := encodeJSON(v)
		if err != nil {
			return nil, err
		}
		fields[k] = raw
	}
	return encodeJSON(fields)
}

// remainder returns the members of the JSON object data not named in owned.
// Numbers are kept as json.Number so they are written back unchanged.
func remainder(data []byte, owned []string) (map[string]any, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for _, k := range owned {
		delete(fields, k)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	rest := make(map[string]any, len(fields))
	for k, raw := range fields {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		rest[k] = v
	}
	return rest, nil
}

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
