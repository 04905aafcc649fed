package models

import "time"

// Chapter is a part of a novel. Chapters are only ever appended.
type Chapter struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`

	// ChapterNumber orders chapters inside a novel. Duplicates are allowed.
	ChapterNumber int `json:"chapter_number"`

	// CreatedAt is assigned by the database on insert.
	CreatedAt time.Time `json:"created_at"`

	NovelID int64 `json:"novel_id"`
}

// TableName returns the name of the database table
// associated with the Chapter model.
func (c Chapter) TableName() string {
	return "chapters"
}

// ChapterInput is the body of a chapter create call.
type ChapterInput struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content"`

	// ChapterNumber is a pointer so that chapter 0 is distinguishable from a missing field.
	ChapterNumber *int `json:"chapter_number" validate:"required"`
}
