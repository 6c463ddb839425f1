package models

// Keg is a tracked beer container. IDs are assigned by the tracker and
// never reused; Size is fixed at creation.
type Keg struct {
	ID            uint    `gorm:"primaryKey;autoIncrement"`
	BeerType      string  `gorm:"size:128"`
	Size          float64 `gorm:"not null"`
	CurrentVolume float64 `gorm:"not null"`
	Location      string  `gorm:"size:128"`
	LastUpdated   int64   `gorm:"not null"`
}

// Remaining returns the unfilled headroom of the keg.
func (k Keg) Remaining() float64 {
	return k.Size - k.CurrentVolume
}

// Empty reports whether the keg has been fully poured out.
func (k Keg) Empty() bool {
	return k.CurrentVolume == 0
}
