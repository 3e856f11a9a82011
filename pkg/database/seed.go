package database

import (
	"log"
	"math/rand"
	"time"

	"uni_archive_backend/internal/model"

	"gorm.io/gorm"
)

const placeholderPDF = "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf"

// SeedIfEmpty inserts demo resources and per-course stats snapshots when the
// respective tables are empty. Course stats have no mutating endpoint, so
// seeding is their only population path.
func SeedIfEmpty(db *gorm.DB) error {
	var count int64
	db.Model(&model.Resource{}).Count(&count)
	if count == 0 {
		for i := range demoResources {
			if err := db.Create(&demoResources[i]).Error; err != nil {
				return err
			}
		}
		log.Printf("Seeded %d demo resources", len(demoResources))
	}

	var csCount int64
	db.Model(&model.CourseStats{}).Count(&csCount)
	if csCount == 0 {
		for i := range demoCourseStats {
			demoCourseStats[i].ActivityGrid = generateActivityGrid()
			if err := db.Create(&demoCourseStats[i]).Error; err != nil {
				return err
			}
		}
		log.Printf("Seeded %d course stats snapshots", len(demoCourseStats))
	}

	return nil
}

// generateActivityGrid produces 364 daily intensity levels (0-4) for the
// contribution heatmap.
func generateActivityGrid() []int {
	grid := make([]int, 364)
	for i := range grid {
		if rand.Float64() > 0.7 {
			grid[i] = rand.Intn(5)
		}
	}
	return grid
}

var demoResources = []model.Resource{
	{
		Title:        "BMAT202L - Probability Handwritten Complete",
		CourseCode:   "BMAT202L",
		Slot:         "B1",
		Type:         model.Notes,
		Topics:       []string{"Probability", "Bayes Theorem", "Random Variables"},
		QualityScore: 94,
		Completeness: 88,
		Upvotes:      147,
		Downloads:    289,
		Views:        1205,
		Author:       "stat_god_99",
		Professor:    "Prof. Sharma",
		Semester:     "Winter",
		Year:         "2024",
		Description:  "Extremely detailed handwritten notes covering Module 1-3. Diagrams are high clarity.",
		PDFURL:       placeholderPDF,
		Comments: []model.Comment{
			{ID: "seed-c1", Author: "grad_student_22", Text: "The derivation on page 4 is slightly off, check the standard Kreyzig book.", Timestamp: time.Now().Add(-2 * time.Hour), Upvotes: 12},
			{ID: "seed-c2", Author: "stat_god_99", Text: "Thanks for pointing that out! Will update v2.", Timestamp: time.Now().Add(-time.Hour), Upvotes: 5, IsOp: true},
			{ID: "seed-c3", Author: "struggling_freshman", Text: "This saved my life for the CAT2 exam. Bless you.", Timestamp: time.Now().Add(-30 * time.Minute), Upvotes: 24},
		},
	},
	{
		Title:        "Unit 4: Hypothesis Testing Cheatsheet",
		CourseCode:   "BMAT202L",
		Slot:         "G2",
		Type:         model.Cheatsheet,
		Topics:       []string{"Hypothesis Testing", "T-Test", "Chi-Square"},
		QualityScore: 89,
		Completeness: 45,
		Upvotes:      67,
		Downloads:    150,
		Views:        560,
		Author:       "cram_master",
		Professor:    "Prof. Gupta",
		Semester:     "Fall",
		Year:         "2023",
		Description:  "Concise formula sheet. Missing derivations but excellent for quick revision.",
		PDFURL:       placeholderPDF,
	},
	{
		Title:        "Physics Wave Optics Solutions",
		CourseCode:   "PHY101",
		Slot:         "A1",
		Type:         model.Solution,
		Topics:       []string{"Interference", "Diffraction", "Polarization"},
		QualityScore: 76,
		Completeness: 100,
		Upvotes:      23,
		Downloads:    45,
		Views:        120,
		Author:       "physics_enthusiast",
		Professor:    "Dr. Ray",
		Semester:     "Winter",
		Year:         "2023",
		Description:  "Solved past papers for Wave Optics module. Steps are included.",
		PDFURL:       placeholderPDF,
	},
	{
		Title:        "Full Semester 3 Review",
		CourseCode:   "CSE3001",
		Slot:         "C2",
		Type:         model.Notes,
		Topics:       []string{"Software Eng", "Agile", "UML", "Testing"},
		QualityScore: 98,
		Completeness: 95,
		Upvotes:      310,
		Downloads:    890,
		Views:        3400,
		Author:       "topper_supreme",
		Professor:    "Prof. Anitha",
		Semester:     "Fall",
		Year:         "2023",
		Description:  "Gold standard notes. Includes previous year questions integrated into topics.",
		PDFURL:       placeholderPDF,
	},
	{
		Title:        "Lab Exp 4-8 Observations",
		CourseCode:   "EEE2002",
		Slot:         "L4",
		Type:         model.LabReport,
		Topics:       []string{"Circuits", "Oscilloscope", "KVL/KCL"},
		QualityScore: 65,
		Completeness: 60,
		Upvotes:      12,
		Downloads:    30,
		Views:        89,
		Author:       "sparky",
		Professor:    "Dr. Kumar",
		Semester:     "Winter",
		Year:         "2024",
		Description:  "Raw observations for experiments 4 through 8. Verify calculations.",
		PDFURL:       placeholderPDF,
	},
	{
		Title:        "Module 5 Question Bank",
		CourseCode:   "BMAT202L",
		Slot:         "F1",
		Type:         model.QuestionBank,
		Topics:       []string{"ANOVA", "Regression", "Correlation"},
		QualityScore: 92,
		Completeness: 100,
		Upvotes:      56,
		Downloads:    210,
		Views:        890,
		Author:       "math_wizard",
		Professor:    "Prof. Sharma",
		Semester:     "Winter",
		Year:         "2024",
		Description:  "Comprehensive question set with answer keys for regression analysis.",
		PDFURL:       placeholderPDF,
	},
	{
		Title:        "Operating Systems - Process Scheduling",
		CourseCode:   "CSE3003",
		Slot:         "D1",
		Type:         model.Notes,
		Topics:       []string{"Scheduling", "Process", "Threads", "Deadlock"},
		QualityScore: 88,
		Completeness: 70,
		Upvotes:      89,
		Downloads:    120,
		Views:        450,
		Author:       "kernel_panic",
		Professor:    "Prof. Chandran",
		Semester:     "Fall",
		Year:         "2023",
		Description:  "Detailed breakdown of RR, SJF, and FCFS algorithms with Gantt charts.",
		PDFURL:       placeholderPDF,
	},
}

var demoCourseStats = []model.CourseStats{
	{
		CourseCode:   "BMAT202L",
		Completeness: 78,
		QualityAvg:   91,
		TotalRes:     3,
		TopicCov: []model.TopicCoverage{
			{Topic: "Probability", Coverage: 95},
			{Topic: "Hypothesis Testing", Coverage: 60},
			{Topic: "Regression", Coverage: 85},
		},
	},
	{
		CourseCode:   "PHY101",
		Completeness: 55,
		QualityAvg:   76,
		TotalRes:     1,
		TopicCov: []model.TopicCoverage{
			{Topic: "Wave Optics", Coverage: 70},
			{Topic: "Quantum Basics", Coverage: 20},
		},
	},
	{
		CourseCode:   "CSE3001",
		Completeness: 90,
		QualityAvg:   98,
		TotalRes:     1,
		TopicCov: []model.TopicCoverage{
			{Topic: "Software Eng", Coverage: 95},
			{Topic: "Agile", Coverage: 92},
			{Topic: "Testing", Coverage: 80},
		},
	},
	{
		CourseCode:   "EEE2002",
		Completeness: 40,
		QualityAvg:   65,
		TotalRes:     1,
		TopicCov: []model.TopicCoverage{
			{Topic: "Circuits", Coverage: 55},
		},
	},
}
