package models

// ReadingStatus is the label a user attaches to a novel on their shelf.
type ReadingStatus string

const (
	Reading   ReadingStatus = "reading"
	WillRead  ReadingStatus = "will_read"
	Completed ReadingStatus = "completed"
	Dropped   ReadingStatus = "dropped"
	Liked     ReadingStatus = "liked"
)

// ReadingStatuses lists every recognised label.
var ReadingStatuses = []ReadingStatus{Reading, WillRead, Completed, Dropped, Liked}

// IsValid reports whether s is one of [ReadingStatuses].
func (s ReadingStatus) IsValid() bool {
	for _, status := range ReadingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// UserNovelStatus is the single status record of a (user, novel) pair.
type UserNovelStatus struct {
	ID      int64         `json:"id"`
	UserID  int64         `json:"user_id"`
	NovelID int64         `json:"novel_id"`
	Status  ReadingStatus `json:"status"`
}

// TableName returns the name of the database table
// associated with the UserNovelStatus model.
func (s UserNovelStatus) TableName() string {
	return "user_novel_status"
}

// StatusInput is the body of a status set call.
type StatusInput struct {
	Status ReadingStatus `json:"status" validate:"required,reading_status"`
}

// NovelStatusEntry is one element of the caller's status list.
type NovelStatusEntry struct {
	NovelID int64         `json:"novel_id"`
	Status  ReadingStatus `json:"status"`
}
