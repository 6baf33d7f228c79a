package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// maxArrayIndex is the largest key JSON.stringify orders numerically (2^32 - 2)
const maxArrayIndex = 1<<32 - 2

// Registry maps a chain ID (decimal string key) to the adapter addresses deployed on it.
// Values are kept as raw JSON, so entries this tool never touches are written back as they were read.
type Registry struct {
	values map[string]json.RawMessage
	order  []string // keys in first-seen order
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{values: make(map[string]json.RawMessage)}
}

// ChainKey formats a chain ID the way it is keyed in the registry file
func ChainKey(chainID uint64) string {
	return strconv.FormatUint(chainID, 10)
}

func (r *Registry) set(key string, raw json.RawMessage) {
	if _, ok := r.values[key]; !ok {
		r.order = append(r.order, key)
	}
	r.values[key] = raw
}

// Append adds an address to the end of the chain's list. A missing entry, or one holding
// null, false, 0 or "", starts a new list. Any other non-list value is an ErrInvalidRegistry.
func (r *Registry) Append(chainID uint64, address string) error {
	key := ChainKey(chainID)

	var items []json.RawMessage
	if raw, ok := r.values[key]; ok && !isFalsy(raw) {
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("%w: entry %q is not a list", ErrInvalidRegistry, key)
		}
	}

	var encoded bytes.Buffer
	if err := writeJSON(&encoded, address); err != nil {
		return err
	}
	items = append(items, encoded.Bytes())

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(item)
	}
	buf.WriteByte(']')

	r.set(key, buf.Bytes())
	return nil
}

// Addresses returns the addresses recorded for a chain
func (r *Registry) Addresses(chainID uint64) []string {
	return r.List(ChainKey(chainID))
}

// List returns the entries under key. Non-string elements are shown as their JSON text;
// a value that is not a list yields nil.
func (r *Registry) List(key string) []string {
	if r == nil {
		return nil
	}
	raw, ok := r.values[key]
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			s = string(item)
		}
		out[i] = s
	}
	return out
}

// Len returns the number of keys
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.values)
}

// Clone returns a copy of the registry
func (r *Registry) Clone() *Registry {
	out := NewRegistry()
	for _, key := range r.order {
		out.set(key, r.values[key])
	}
	return out
}

// Filter returns a registry holding only the chain's entry, if any
func (r *Registry) Filter(chainID uint64) *Registry {
	out := NewRegistry()
	key := ChainKey(chainID)
	if raw, ok := r.values[key]; ok {
		out.set(key, raw)
	}
	return out
}

// Keys returns the registry keys in file order: array-index keys ascending,
// followed by the other keys in the order they were first seen.
func (r *Registry) Keys() []string {
	if r == nil {
		return nil
	}
	var numeric []uint64
	var other []string
	for _, k := range r.order {
		if id, ok := parseChainKey(k); ok && id <= maxArrayIndex {
			numeric = append(numeric, id)
		} else {
			other = append(other, k)
		}
	}
	slices.Sort(numeric)

	keys := make([]string, 0, len(r.order))
	for _, id := range numeric {
		keys = append(keys, ChainKey(id))
	}
	return append(keys, other...)
}

// ChainIDs returns the numeric chain IDs present in the registry, ascending
func (r *Registry) ChainIDs() []uint64 {
	if r == nil {
		return nil
	}
	var ids []uint64
	for _, k := range r.order {
		if id, ok := parseChainKey(k); ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Total returns the number of recorded addresses across all chains
func (r *Registry) Total() int {
	n := 0
	for _, key := range r.Keys() {
		n += len(r.List(key))
	}
	return n
}

// MarshalJSON writes keys in Keys() order with every value as it was read
func (r *Registry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		buf.Write(r.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode returns the registry as JSON indented with two spaces and no trailing newline
func (r *Registry) Encode() ([]byte, error) {
	data, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecodeRegistry parses registry JSON. The top level must be an object; a JSON null
// yields an empty registry. Values are not inspected.
func DecodeRegistry(data []byte) (*Registry, error) {
	reg := NewRegistry()
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return reg, expectEOF(dec)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("registry must be a JSON object")
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		reg.set(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return reg, expectEOF(dec)
}

func expectEOF(dec *json.Decoder) error {
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after registry object")
	}
	return nil
}

// isFalsy reports whether a JSON value is null, false, zero or the empty string
func isFalsy(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	}
	return false
}

func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}

func parseChainKey(key string) (uint64, bool) {
	id, err := strconv.ParseUint(key, 10, 64)
	if err != nil || strconv.FormatUint(id, 10) != key {
		return 0, false
	}
	return id, true
}
