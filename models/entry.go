// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Entry is a named bundle root and the modules it starts from, in load order.
type Entry struct {
	Name    string
	Modules []string
}

// EntryMap is the ordered set of bundle entries.
type EntryMap []Entry

// Get returns the modules of the entry called name.
func (e EntryMap) Get(name string) ([]string, bool) {
	for _, entry := range e {
		if entry.Name == name {
			return entry.Modules, true
		}
	}

	return nil, false
}

// Set returns a copy of e where the entry called name has the given modules.
// A new name is appended after the existing entries.
func (e EntryMap) Set(name string, modules ...string) EntryMap {
	out := e.Clone()
	for i := range out {
		if out[i].Name == name {
			out[i].Modules = append([]string(nil), modules...)
			return out
		}
	}

	return append(out, Entry{Name: name, Modules: append([]string(nil), modules...)})
}

// Names returns the entry names in order.
func (e EntryMap) Names() []string {
	names := make([]string, 0, len(e))
	for _, entry := range e {
		names = append(names, entry.Name)
	}

	return names
}

// Clone returns a deep copy of e.
func (e EntryMap) Clone() EntryMap {
	if e == nil {
		return nil
	}

	out := make(EntryMap, len(e))
	for i, entry := range e {
		out[i] = Entry{Name: entry.Name, Modules: append([]string(nil), entry.Modules...)}
	}

	return out
}

// MarshalJSON encodes e as an object keyed by entry name, in entry order.
func (e EntryMap) MarshalJSON() ([]byte, error) {
	return marshalOrderedJSON(e.Names(), e.values())
}

// MarshalYAML encodes e as a mapping keyed by entry name, in entry order.
func (e EntryMap) MarshalYAML() (any, error) {
	return orderedYAMLNode(e.Names(), e.values())
}

func (e EntryMap) values() []any {
	values := make([]any, len(e))
	for i, entry := range e {
		values[i] = entry.Modules
	}

	return values
}
