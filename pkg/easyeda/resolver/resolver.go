// Package resolver carries renames from a channel's schematic pass to its PCB
// pass.
//
// The schematic pass records which fresh unique id replaced each component id
// and which net names were renamed. The PCB pass then looks those up to keep
// footprints and copper tied to their schematic counterparts. Component ids
// are case-sensitive; net names are compared upper-cased, the way EasyEDA
// itself folds PCB net names.
package resolver

import "strings"

// Resolver holds the rename maps of one channel instance. It is not safe for
// concurrent use; every instance gets its own.
type Resolver struct {
	components map[string]string
	order      []string
	nets       map[string]string
}

// New returns an empty resolver
func New() *Resolver {
	return &Resolver{
		components: make(map[string]string),
		nets:       make(map[string]string),
	}
}

// RecordComponent stores oldID → newID. The first mapping for an id wins;
// false is returned for a repeated id.
func (r *Resolver) RecordComponent(oldID, newID string) bool {
	if _, ok := r.components[oldID]; ok {
		return false
	}
	r.components[oldID] = newID
	r.order = append(r.order, oldID)
	return true
}

// RecordNet stores the upper-cased oldName → newName. The first mapping for a
// name wins; false is returned for a repeated name.
func (r *Resolver) RecordNet(oldName, newName string) bool {
	key := strings.ToUpper(oldName)
	if _, ok := r.nets[key]; ok {
		return false
	}
	r.nets[key] = strings.ToUpper(newName)
	return true
}

// ResolveComponent returns the new id for oldID and marks it consumed.
func (r *Resolver) ResolveComponent(oldID string) (string, bool) {
	newID, ok := r.components[oldID]
	if !ok {
		return "", false
	}
	delete(r.components, oldID)
	return newID, true
}

// ResolveNet returns the renamed, upper-cased net. Empty names mean "no net"
// and resolve to themselves. On a miss the upper-cased input is returned with
// ok false.
func (r *Resolver) ResolveNet(name string) (string, bool) {
	if name == "" {
		return "", true
	}
	key := strings.ToUpper(name)
	if newName, ok := r.nets[key]; ok {
		return newName, true
	}
	return key, false
}

// Unmatched returns the component ids never consumed by ResolveComponent, in
// the order they were recorded.
func (r *Resolver) Unmatched() []string {
	var ids []string
	for _, id := range r.order {
		if _, ok := r.components[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Components returns the number of unconsumed component mappings
func (r *Resolver) Components() int {
	return len(r.components)
}

// Nets returns the number of net mappings
func (r *Resolver) Nets() int {
	return len(r.nets)
}
