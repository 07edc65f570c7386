package models

// Room is the only persisted entity. Coordinates stay null until a
// position is first reported, so both are pointers.
type Room struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	RoomNumber     string   `gorm:"not null" json:"room_number"`
	RoomCategoryID int      `gorm:"not null" json:"room_category_id"`
	FloorID        int      `gorm:"index;not null" json:"floor_id"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}
