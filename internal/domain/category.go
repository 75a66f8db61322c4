package domain

import "time"

// ItemCategory groups stock items. Category names are unique.
type ItemCategory struct {
	ID                   int64     `json:"id" db:"id"`
	Name                 string    `json:"name" db:"name"`
	CreationDate         time.Time `json:"creation_date" db:"creation_date"`
	LastModificationDate time.Time `json:"last_modification_date" db:"last_modification_date"`
}
