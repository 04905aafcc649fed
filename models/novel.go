package models

// DefaultNovelStatus is the publication status a novel gets when none is given.
const DefaultNovelStatus = "Ongoing"

// Novel is a work owned by the user who created it.
type Novel struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Author      *string `json:"author"`
	Genre       *string `json:"genre"`

	// Status is a free-form publication label such as "Ongoing" or "Completed".
	// It is unrelated to a reader's [ReadingStatus].
	Status string  `json:"status"`
	Rating float64 `json:"rating"`

	// OwnerID references the creating user and never changes.
	OwnerID int64 `json:"owner_id"`

	// Chapters are ordered by chapter number.
	Chapters []Chapter `json:"chapters"`
}

// TableName returns the name of the database table
// associated with the Novel model.
func (n Novel) TableName() string {
	return "novels"
}

// NovelInput is the body of novel create and update calls.
// An update replaces every field, so omitted optional fields are reset
// to their defaults.
type NovelInput struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description *string  `json:"description"`
	Author      *string  `json:"author" validate:"omitempty,max=255"`
	Genre       *string  `json:"genre" validate:"omitempty,max=255"`
	Status      *string  `json:"status" validate:"omitempty,max=64"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0"`
}

// WithDefaults returns a copy of the input where the missing status and rating
// are replaced by their defaults.
func (n NovelInput) WithDefaults() NovelInput {
	if n.Status == nil {
		status := DefaultNovelStatus
		n.Status = &status
	}
	if n.Rating == nil {
		var rating float64
		n.Rating = &rating
	}
	return n
}
