package domain

import "time"

// StockItem is a single inventory position. Item names are unique within
// their category; the Category field is joined in on every read.
type StockItem struct {
	ID                   int64        `json:"id" db:"id"`
	Name                 string       `json:"name" db:"name"`
	Description          *string      `json:"description" db:"description"`
	Quantity             int          `json:"quantity" db:"quantity"`
	CreationDate         time.Time    `json:"creation_date" db:"creation_date"`
	LastModificationDate time.Time    `json:"last_modification_date" db:"last_modification_date"`
	CategoryID           int64        `json:"-" db:"category_id"`
	Category             ItemCategory `json:"category" db:"category"`
}
