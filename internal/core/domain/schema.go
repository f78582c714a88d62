package domain

import (
	"strings"
	"time"
)

// Schema is an immutable snapshot of an external database's property
// definitions. A fresh fetch always produces a new Schema instance;
// nothing mutates a snapshot after creation.
type Schema struct {
	// SourceID identifies the external database.
	SourceID string `json:"source_id"`

	// Properties holds the property definitions, unique by name.
	Properties []SchemaProperty `json:"properties"`

	// FetchedAt is when this snapshot was taken.
	FetchedAt time.Time `json:"fetched_at"`
}

// Property looks up a property by name, trying an exact match first and
// falling back to a case-insensitive match.
func (s *Schema) Property(name string) (SchemaProperty, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range s.Properties {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return SchemaProperty{}, false
}

// TitleProperty returns the snapshot's title-type property, if any.
func (s *Schema) TitleProperty() (SchemaProperty, bool) {
	for _, p := range s.Properties {
		if p.Type == PropertyTypeTitle {
			return p, true
		}
	}
	return SchemaProperty{}, false
}

// PropertyChange records a type change for a single property between
// two snapshots.
type PropertyChange struct {
	Name    string       `json:"name"`
	OldType PropertyType `json:"old_type"`
	NewType PropertyType `json:"new_type"`
}

// SchemaDiff reports the differences between two schema snapshots.
// A property appears in at most one of the three lists.
type SchemaDiff struct {
	Added   []SchemaProperty `json:"added"`
	Removed []SchemaProperty `json:"removed"`
	Changed []PropertyChange `json:"changed"`
}

// HasDiff returns true if any property was added, removed or changed.
func (d SchemaDiff) HasDiff() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0 || len(d.Changed) > 0
}

// DiffSchemas compares a previously accepted snapshot against a freshly
// fetched one. A nil previous snapshot reports every current property as
// added. Option-list changes alone do not count as a change; only a type
// change does. Output order follows the input snapshots' property order,
// so the result is stable for a given pair.
func DiffSchemas(previous *Schema, current *Schema) SchemaDiff {
	var diff SchemaDiff

	if previous == nil {
		diff.Added = append(diff.Added, current.Properties...)
		return diff
	}

	prevByName := make(map[string]SchemaProperty, len(previous.Properties))
	for _, p := range previous.Properties {
		prevByName[p.Name] = p
	}
	curNames := make(map[string]bool, len(current.Properties))

	for _, p := range current.Properties {
		curNames[p.Name] = true
		old, ok := prevByName[p.Name]
		if !ok {
			diff.Added = append(diff.Added, p)
			continue
		}
		if old.Type != p.Type {
			diff.Changed = append(diff.Changed, PropertyChange{
				Name:    p.Name,
				OldType: old.Type,
				NewType: p.Type,
			})
		}
	}

	for _, p := range previous.Properties {
		if !curNames[p.Name] {
			diff.Removed = append(diff.Removed, p)
		}
	}

	return diff
}
