package work

import "time"

// Entry represents a single work item.
type Entry struct {
	// ID is the entry's path in the tree.
	ID EntryID `json:"id"`

	// Name is the short summary of the entry (max 28 characters).
	Name string `json:"name"`

	// Description provides additional context. Empty means none.
	Description string `json:"description,omitempty"`

	// CreatedAt is when the entry was added.
	CreatedAt time.Time `json:"created_at"`

	// ModifiedAt is when the entry was last changed or reprioritized.
	ModifiedAt time.Time `json:"modified_at"`

	// Status is the lifecycle state of the entry.
	Status Status `json:"status"`

	// Children are the entry's sub-entries in insertion order.
	Children []Entry `json:"children"`
}

// ChildSummary is the part of a sub-entry shown in an entry's detail view.
type ChildSummary struct {
	ID     EntryID `json:"id"`
	Name   string  `json:"name"`
	Status Status  `json:"status"`
}

// NewEntry creates an entry in the created state with no children.
func NewEntry(id EntryID, name, description string, now time.Time) Entry {
	return Entry{
		ID:          id,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		ModifiedAt:  now,
		Status:      StatusCreated,
		Children:    []Entry{},
	}
}

// Complete marks the entry completed. Children are left as they are.
func (e *Entry) Complete(now time.Time) {
	e.Status = StatusCompleted
	e.touch(now)
}

// IsCompleted reports whether the entry is in the terminal state.
func (e Entry) IsCompleted() bool {
	return e.Status == StatusCompleted
}

// HasDescription reports whether the entry carries a description.
func (e Entry) HasDescription() bool {
	return e.Description != ""
}

// DescriptionOr returns the description, or placeholder when there is none.
func (e Entry) DescriptionOr(placeholder string) string {
	if e.Description == "" {
		return placeholder
	}
	return e.Description
}

// ChildSummaries returns the ID and name of each direct child.
func (e Entry) ChildSummaries() []ChildSummary {
	summaries := make([]ChildSummary, 0, len(e.Children))
	for _, child := range e.Children {
		summaries = append(summaries, ChildSummary{ID: child.ID, Name: child.Name, Status: child.Status})
	}
	return summaries
}

// touch sets ModifiedAt, never moving it before CreatedAt.
func (e *Entry) touch(now time.Time) {
	if now.Before(e.CreatedAt) {
		now = e.CreatedAt
	}
	e.ModifiedAt = now
}
