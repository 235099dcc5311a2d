package models

import "time"

// Directory is an immutable snapshot of every loaded contact. Reloads build a
// new Directory instead of editing this one.
type Directory struct {
	contacts []*Contact
	source   string
	loadedAt time.Time
}

// NewDirectory snapshots contacts. The slice is copied; the contacts are not.
func NewDirectory(contacts []*Contact, source string, loadedAt time.Time) *Directory {
	cp := make([]*Contact, len(contacts))
	copy(cp, contacts)
	return &Directory{contacts: cp, source: source, loadedAt: loadedAt}
}

// Contacts returns the contacts in load order. The returned slice is a copy,
// so callers may reorder it freely.
func (d *Directory) Contacts() []*Contact {
	if d == nil {
		return nil
	}
	cp := make([]*Contact, len(d.contacts))
	copy(cp, d.contacts)
	return cp
}

func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.contacts)
}

func (d *Directory) Source() string {
	if d == nil {
		return ""
	}
	return d.source
}

func (d *Directory) LoadedAt() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.loadedAt
}
