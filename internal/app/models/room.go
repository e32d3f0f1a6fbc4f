package models

// Room represents an examination room. A room is identified by its label
// within a campus; the pair is unique.
type Room struct {
	ID       int64    `json:"id" db:"id"`
	Label    string   `json:"label" db:"label"`
	Campus   string   `json:"campus" db:"campus"`
	RoomType RoomType `json:"roomType" db:"room_type"`
	Capacity int      `json:"capacity" db:"capacity"`
	Block    string   `json:"block" db:"block"`
}
