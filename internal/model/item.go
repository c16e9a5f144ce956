package model

// Item is the domain model for a shopping-list entry.
// ID is assigned by the remote store on creation.
type Item struct {
	ID       string
	Name     string
	Quantity int
	Category Category
}
