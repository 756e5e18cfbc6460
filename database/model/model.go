// Package model defines the database models for the portfolio panel.
package model

import "time"

// User is a panel administrator. There is no signup route; accounts are
// created by the database seed or the CLI.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-"` // bcrypt hash
}

// Project is a portfolio project card.
type Project struct {
	Id          int       `json:"id" form:"-" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" form:"title"`
	ImgURL      string    `json:"imgUrl" form:"imageURL" gorm:"column:img_url"`
	Description string    `json:"description" form:"description"`
	ProjectLink string    `json:"projectLink" form:"projectLink" gorm:"column:project_link"`
	CreatedAt   time.Time `json:"createdAt" form:"-" gorm:"column:created_at;autoCreateTime"`
}

// Book is a reading-list entry. ISBN is unique; inserting a duplicate fails.
// Rating stays text because it arrives from a form field where an empty
// submission means "keep the stored value" and "0" is a real rating.
type Book struct {
	Id         int       `json:"id" form:"-" gorm:"column:book_id;primaryKey;autoIncrement"`
	Title      string    `json:"title" form:"title"`
	Author     string    `json:"author" form:"author"`
	Rating     string    `json:"rating" form:"rating"`
	MyThoughts string    `json:"myThoughts" form:"my_thoughts" gorm:"column:my_thoughts"`
	ISBN       string    `json:"isbn" form:"isbn" gorm:"column:isbn;uniqueIndex;not null"`
	CreatedAt  time.Time `json:"createdAt" form:"-" gorm:"column:created_at;autoCreateTime"`
}

// GalleryImage is a photo in the gallery section.
type GalleryImage struct {
	Id          int       `json:"id" form:"-" gorm:"column:img_id;primaryKey;autoIncrement"`
	ImgURL      string    `json:"imgUrl" form:"img_url" gorm:"column:img_url"`
	Description string    `json:"description" form:"img_description" gorm:"column:img_description"`
	CreatedAt   time.Time `json:"createdAt" form:"-" gorm:"column:created_at;autoCreateTime"`
}

// TableName keeps the original table name.
func (GalleryImage) TableName() string {
	return "gallery"
}

// Skill is an entry in the skills section, grouped by type.
type Skill struct {
	Id        int       `json:"id" form:"-" gorm:"column:skill_id;primaryKey;autoIncrement"`
	Name      string    `json:"name" form:"skill_name" gorm:"column:skill_name"`
	Type      string    `json:"type" form:"skill_type" gorm:"column:skill_type"`
	CreatedAt time.Time `json:"createdAt" form:"-" gorm:"column:created_at;autoCreateTime"`
}
