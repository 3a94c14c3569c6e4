package models

type Comment struct {
	BaseModel

	Body     string `gorm:"type:text;not null"`
	AuthorID uint   `gorm:"not null;index"`
	PostID   uint   `gorm:"not null;index"`

	// Relationships
	Author User     `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Post   BlogPost `gorm:"foreignKey:PostID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
