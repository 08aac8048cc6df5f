package models

import "time"

// Comment author types
const (
	AuthorTypeUser  = "user"
	AuthorTypeAdmin = "admin"
)

// Comment is one entry of the discussion thread attached to a
// submission. ParentID points at another comment on the same
// submission; replies are removed together with their parent.
type Comment struct {
	CommentID    string     `gorm:"primaryKey;column:comment_id" json:"comment_id"`
	SubmissionID string     `gorm:"column:submission_id;index" json:"submission_id"`
	AuthorEmail  string     `gorm:"column:author_email" json:"author_email"`
	AuthorType   string     `gorm:"column:author_type" json:"author_type"` // user|admin
	Text         string     `gorm:"column:text;type:text" json:"text"`
	ParentID     *string    `gorm:"column:parent_id;index" json:"parent_id,omitempty"`
	CreateAt     time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`

	Submission Submission `gorm:"foreignKey:SubmissionID;references:SubmissionID;constraint:OnDelete:CASCADE" json:"-"`
	Parent     *Comment   `gorm:"foreignKey:ParentID;references:CommentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string { return "comments" }

// IsValidAuthorType reports whether t is a known comment author type.
func IsValidAuthorType(t string) bool {
	return t == AuthorTypeUser || t == AuthorTypeAdmin
}
