// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Option is a single named parameter of a plugin or loader.
type Option struct {
	Key   string
	Value any
}

// Options is an ordered parameter record. Unlike a map it keeps insertion
// order, so encoded configurations list parameters the same way every time
// and in the order they were declared.
//
// Values are expected to be JSON-compatible scalars, []any, []string or
// nested Options.
type Options []Option

// Opts builds an [Options] value from alternating key/value pairs.
// It panics if kv has an odd length or a key is not a string; it is only
// meant for literal declarations.
func Opts(kv ...any) Options {
	if len(kv)%2 != 0 {
		panic("models.Opts: odd number of arguments")
	}

	opts := make(Options, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("models.Opts: key %v is not a string", kv[i]))
		}
		opts = append(opts, Option{Key: key, Value: kv[i+1]})
	}

	return opts
}

// Get returns the value stored under key.
func (o Options) Get(key string) (any, bool) {
	for _, opt := range o {
		if opt.Key == key {
			return opt.Value, true
		}
	}

	return nil, false
}

// Set returns a copy of o with key set to value. An existing key keeps its
// position; a new key is appended.
func (o Options) Set(key string, value any) Options {
	out := o.Clone()
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}

	return append(out, Option{Key: key, Value: value})
}

// Keys returns the option names in order.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for _, opt := range o {
		keys = append(keys, opt.Key)
	}

	return keys
}

// Clone returns a deep copy of o.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}

	out := make(Options, len(o))
	for i, opt := range o {
		out[i] = Option{Key: opt.Key, Value: cloneValue(opt.Value)}
	}

	return out
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case Options:
		return value.Clone()
	case []string:
		return append([]string(nil), value...)
	case []any:
		out := make([]any, len(value))
		for i := range value {
			out[i] = cloneValue(value[i])
		}
		return out
	default:
		return v
	}
}

// MarshalJSON encodes o as a JSON object preserving key order.
func (o Options) MarshalJSON() ([]byte, error) {
	keys := o.Keys()
	values := make([]any, len(o))
	for i, opt := range o {
		values[i] = opt.Value
	}

	return marshalOrderedJSON(keys, values)
}

// MarshalYAML encodes o as a YAML mapping preserving key order.
func (o Options) MarshalYAML() (any, error) {
	values := make([]any, len(o))
	for i, opt := range o {
		values[i] = opt.Value
	}

	return orderedYAMLNode(o.Keys(), values)
}

// marshalOrderedJSON writes keys and values as a JSON object in the given order.
func marshalOrderedJSON(keys []string, values []any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := marshalJSONValue(key)
		if err != nil {
			return nil, fmt.Errorf("error encoding key %q: %w", key, err)
		}
		v, err := marshalJSONValue(values[i])
		if err != nil {
			return nil, fmt.Errorf("error encoding value of %q: %w", key, err)
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// marshalJSONValue is json.Marshal without HTML escaping, so loader queries
// such as "a=1&b=2" stay readable.
func marshalJSONValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// orderedYAMLNode builds a YAML mapping node with keys in the given order.
func orderedYAMLNode(keys []string, values []any) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, key := range keys {
		valueNode := new(yaml.Node)
		if err := valueNode.Encode(values[i]); err != nil {
			return nil, fmt.Errorf("error encoding value of %q: %w", key, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			valueNode,
		)
	}

	return node, nil
}
