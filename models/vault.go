// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Group is a named node of a vault tree. Child entries and child groups
// keep the order in which they were created.
type Group struct {
	// ID is the vault-local identifier of the group (UUIDv7 string).
	ID string

	GroupFields

	// Entries are the leaf records that live directly in this group.
	Entries []*Entry

	// Groups are the direct subgroups of this group.
	Groups []*Group
}

// GroupFields holds the user-visible attributes of a [Group].
type GroupFields struct {
	Name  string `json:"name"`
	Icon  int    `json:"icon"`
	Notes string `json:"notes"`
}

// Entry is a single credential record. Within one parent group an entry is
// identified by the (Title, Username) pair.
type Entry struct {
	// ID is the vault-local identifier of the entry (UUIDv7 string).
	ID string

	EntryFields
}

// EntryFields holds the user-visible attributes of an [Entry].
type EntryFields struct {
	Title    string `json:"title"`
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url"`
	Notes    string `json:"notes"`
	Icon     int    `json:"icon"`
}

// CountEntries returns the number of entries in g and all of its
// descendants.
func (g *Group) CountEntries() int {
	if g == nil {
		return 0
	}

	count := 0
	stack := []*Group{g}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		count += len(current.Entries)
		stack = append(stack, current.Groups...)
	}

	return count
}

// Subgroup returns the first direct subgroup of g named name, or nil.
func (g *Group) Subgroup(name string) *Group {
	for _, child := range g.Groups {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// Entry returns the first direct entry of g matching title and username,
// or nil.
func (g *Group) Entry(title, username string) *Entry {
	for _, e := range g.Entries {
		if e.Title == title && e.Username == username {
			return e
		}
	}
	return nil
}
