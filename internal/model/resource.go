package model

import "time"

type ResourceType string

const (
	Notes        ResourceType = "Notes"
	QuestionBank ResourceType = "Question Bank"
	Cheatsheet   ResourceType = "Cheatsheet"
	LabReport    ResourceType = "Lab Report"
	Solution     ResourceType = "Solution"
)

// ResourceTypes lists every accepted resource type; writes with any other
// value are rejected at the service boundary.
var ResourceTypes = []ResourceType{Notes, QuestionBank, Cheatsheet, LabReport, Solution}

func (t ResourceType) Valid() bool {
	for _, rt := range ResourceTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// Resource is a shared academic artifact with an embedded comment thread.
// courseCode and slot are always stored upper-cased.
// swagger:model Resource
type Resource struct {
	UUIDBase
	Title        string       `gorm:"size:255;not null" json:"title"`
	CourseCode   string       `gorm:"size:20;not null;index" json:"courseCode"`
	Slot         string       `gorm:"size:10;not null;index" json:"slot"`
	Type         ResourceType `gorm:"type:enum('Notes','Question Bank','Cheatsheet','Lab Report','Solution');not null" json:"type"`
	Topics       []string     `gorm:"serializer:json" json:"topics"`
	QualityScore int          `gorm:"default:0" json:"qualityScore"`
	Completeness int          `gorm:"default:50" json:"completeness"`
	Upvotes      int          `gorm:"default:0" json:"upvotes"` // downvotes subtract, may go negative
	Downloads    int          `gorm:"default:0" json:"downloads"`
	Views        int          `gorm:"default:0" json:"views"`
	Author       string       `gorm:"size:100;not null;default:'Anonymous'" json:"author"`
	Professor    string       `gorm:"size:100" json:"professor,omitempty"`
	Semester     string       `gorm:"size:20" json:"semester,omitempty"`
	Year         string       `gorm:"size:10" json:"year,omitempty"`
	Description  string       `gorm:"type:text" json:"description,omitempty"`
	PDFURL       string       `gorm:"size:255;not null" json:"pdfUrl"`
	Comments     []Comment    `gorm:"foreignKey:ResourceID" json:"comments"`
}

func (Resource) TableName() string {
	return "resources"
}

// Comment belongs to exactly one resource. The id is derived from creation
// time; iteration order over a resource's comments is newest first.
// swagger:model Comment
type Comment struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ResourceID string    `gorm:"index;type:varchar(36)" json:"-"`
	Author     string    `gorm:"size:100;not null" json:"author"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	Timestamp  time.Time `gorm:"index" json:"timestamp"`
	Upvotes    int       `gorm:"default:0" json:"upvotes"`
	IsOp       bool      `gorm:"default:false" json:"isOp"`
}

func (Comment) TableName() string {
	return "comments"
}
