package model

// TopicCoverage is one entry of a course's per-topic coverage breakdown.
type TopicCoverage struct {
	Topic    string `json:"topic"`
	Coverage int    `json:"coverage"`
}

// CourseStats is a precomputed per-course coverage snapshot. It is populated
// by the seeding process and read-only from the API's perspective.
// swagger:model CourseStats
type CourseStats struct {
	BaseModel    `json:"-"`
	CourseCode   string          `gorm:"size:20;not null;uniqueIndex" json:"courseCode"`
	Completeness int             `gorm:"default:0" json:"completeness"`
	QualityAvg   int             `gorm:"default:0" json:"qualityAvg"`
	TotalRes     int             `gorm:"column:total_resources;default:0" json:"totalResources"`
	TopicCov     []TopicCoverage `gorm:"column:topic_coverage;serializer:json" json:"topicCoverage"`
	ActivityGrid []int           `gorm:"serializer:json" json:"activityGrid"`
}

func (CourseStats) TableName() string {
	return "course_stats"
}

// SlotAggregate is the transient per-slot rollup computed on each stats
// request by grouping live resources. Never persisted.
type SlotAggregate struct {
	Slot       string  `gorm:"column:slot"`
	Resources  int64   `gorm:"column:resources"`
	AvgQuality float64 `gorm:"column:avg_quality"`
}
