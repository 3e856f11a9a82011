package service

import (
	"math"

	"uni_archive_backend/internal/model"
)

// SlotAggregator produces the per-slot rollup from live resources.
type SlotAggregator interface {
	TopSlots(limit int) ([]model.SlotAggregate, error)
}

// CourseStatsStore reads the precomputed per-course snapshots.
type CourseStatsStore interface {
	FindAll() ([]model.CourseStats, error)
}

// TopSlotLimit caps the slot rollup served to the dashboard.
const TopSlotLimit = 5

type StatsService struct {
	Slots   SlotAggregator
	Courses CourseStatsStore
}

func NewStatsService(slots SlotAggregator, courses CourseStatsStore) *StatsService {
	return &StatsService{Slots: slots, Courses: courses}
}

// TopSlot is one entry of the dashboard's slot rollup.
type TopSlot struct {
	Name      string `json:"name"`
	Resources int64  `json:"resources"`
	Score     int    `json:"score"`
}

type DashboardStats struct {
	CourseStats []model.CourseStats `json:"courseStats"`
	TopSlots    []TopSlot           `json:"topSlots"`
}

// GetDashboard computes the stats payload fresh on every call: course stats
// straight from their collection, top slots grouped from live resources
// (count desc, slot name asc on ties).
func (s *StatsService) GetDashboard() (*DashboardStats, error) {
	courseStats, err := s.Courses.FindAll()
	if err != nil {
		return nil, err
	}
	if courseStats == nil {
		courseStats = []model.CourseStats{}
	}

	aggs, err := s.Slots.TopSlots(TopSlotLimit)
	if err != nil {
		return nil, err
	}

	topSlots := make([]TopSlot, 0, len(aggs))
	for _, agg := range aggs {
		topSlots = append(topSlots, TopSlot{
			Name:      agg.Slot,
			Resources: agg.Resources,
			Score:     int(math.Round(agg.AvgQuality)),
		})
	}

	return &DashboardStats{
		CourseStats: courseStats,
		TopSlots:    topSlots,
	}, nil
}
