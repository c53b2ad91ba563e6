package entity

import "time"

// Ward groups beds of one type (general, ICU, maternity, ...).
type Ward struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Type      string    `gorm:"type:varchar(50)" json:"type"`
	Capacity  int       `gorm:"not null;default:0" json:"capacity"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Beds []Bed `gorm:"foreignKey:WardID" json:"beds,omitempty"`
}

func (Ward) TableName() string {
	return "wards"
}

// BedStatus represents the occupancy status of a bed.
type BedStatus string

const (
	BedStatusAvailable   BedStatus = "available"
	BedStatusOccupied    BedStatus = "occupied"
	BedStatusMaintenance BedStatus = "maintenance"
)

// Bed belongs to a ward. At most one active admission may occupy a bed.
type Bed struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BedNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"bed_number"`
	WardID    uint      `gorm:"not null;index" json:"ward_id"`
	Status    BedStatus `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Ward Ward `gorm:"foreignKey:WardID" json:"ward,omitempty"`
}

func (Bed) TableName() string {
	return "beds"
}

func (b *Bed) IsAvailable() bool {
	return b.Status == BedStatusAvailable
}

func (b *Bed) IsOccupied() bool {
	return b.Status == BedStatusOccupied
}
