package library

import "fmt"

// Book represents one record in the catalog and its current circulation status.
// ID is assigned by the Catalog and never changes; Issued is the only field
// mutated after creation.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Issued bool   `json:"issued"`
}

// Status reports the book's availability as shown in listings.
func (b Book) Status() string {
	if b.Issued {
		return "Issued"
	}
	return "Available"
}

func (b Book) String() string {
	return fmt.Sprintf("ID: %d | Title: %s | Author: %s | Status: %s", b.ID, b.Title, b.Author, b.Status())
}
