package models

type BlogPost struct {
	BaseModel

	Title    string `gorm:"uniqueIndex;not null"`
	Subtitle string `gorm:"not null"`
	Date     string `gorm:"not null"` // display date, e.g. "August 31, 2026"
	Body     string `gorm:"type:text;not null"`
	ImgURL   string `gorm:"not null"`
	AuthorID uint   `gorm:"not null;index"`

	// Relationships
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
