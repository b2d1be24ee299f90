package model

// Read-model rows mirrored from emitted events. The indexer owns these
// tables; the core engine never reads them.

type IdentityView struct {
	IdentityId       uint64 `gorm:"primaryKey"`
	Owner            string `gorm:"index"`
	Username         string `gorm:"uniqueIndex"`
	PrimarySkill     string
	ReputationScore  int64
	SkillLevel       uint32
	AchievementCount uint32
	IsVerified       bool
	CurrentPrice     uint64
}

type ListingView struct {
	IdentityId uint64 `gorm:"primaryKey"`
	Seller     string
	Price      uint64
	IsListed   bool `gorm:"index"`
}
