package model

import "time"

// Item is a soft-deletable record. A nil Deleted means the item is active.
type Item struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Price   int64      `json:"price"`
	Created time.Time  `json:"created"`
	Updated time.Time  `json:"updated"`
	Deleted *time.Time `json:"deleted"`
}

func (i Item) IsDeleted() bool {
	return i.Deleted != nil
}

// View selects a partition of the item table by the nullability of deleted.
type View int

const (
	ViewAll View = iota
	ViewActive
	ViewDeleted
)

func (v View) Contains(item Item) bool {
	switch v {
	case ViewActive:
		return !item.IsDeleted()
	case ViewDeleted:
		return item.IsDeleted()
	default:
		return true
	}
}

func (v View) String() string {
	switch v {
	case ViewActive:
		return "active"
	case ViewDeleted:
		return "deleted"
	default:
		return "all"
	}
}

type ItemQuery struct {
	Page  int
	Limit int
	Sort  string
	Order string
}

type ItemList struct {
	View  string `json:"view"`
	Items []Item `json:"items"`
}

type BulkResult struct {
	Affected int64 `json:"affected"`
}
