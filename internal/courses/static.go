package courses

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/skill-advisor/internal/skills"
	"github.com/jonathan/skill-advisor/internal/types"
)

// StaticSource serves candidates from a fixed catalog. When the request names
// missing skills, the catalog is filtered to courses teaching a related skill;
// otherwise the whole catalog is returned.
type StaticSource struct {
	catalog []types.Course
}

// NewStaticSource creates a source over the built-in curated catalog.
func NewStaticSource() *StaticSource {
	return &StaticSource{catalog: builtinCatalog()}
}

// NewStaticSourceFromFile creates a source over a catalog loaded from a JSON
// file holding an array of courses. Entries without an ID get one assigned.
func NewStaticSourceFromFile(path string) (*StaticSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog []types.Course
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	for i := range catalog {
		if catalog[i].ID == "" {
			catalog[i].ID = uuid.NewString()
		}
	}

	return &StaticSource{catalog: catalog}, nil
}

// Candidates returns catalog courses relevant to the requested gap.
func (s *StaticSource) Candidates(_ context.Context, req CandidateRequest) ([]types.Course, error) {
	if len(req.MissingSkills) == 0 {
		out := make([]types.Course, len(s.catalog))
		copy(out, s.catalog)
		return out, nil
	}

	matched := make([]types.Course, 0, len(s.catalog))
	for _, course := range s.catalog {
		if coversAny(course, req.MissingSkills) {
			matched = append(matched, course)
		}
	}
	return matched, nil
}

// coversAny reports whether the course teaches a skill related to any missing skill.
func coversAny(course types.Course, missing []string) bool {
	for _, taught := range course.Skills {
		for _, gap := range missing {
			if skills.Related(taught, gap) {
				return true
			}
		}
	}
	return false
}

// builtinCatalog is the curated default catalog. IDs are stable so repeated
// runs recommend the same course under the same identity.
func builtinCatalog() []types.Course {
	return []types.Course{
		{
			ID:          "c2b4f6d8-0a1c-4e3f-9b5d-7e9f1a3c5e7f",
			Title:       "Grokking System Design",
			Description: "Design scalable systems through worked interview-style problems covering load balancing, caching, and data partitioning.",
			Platform:    "Educative",
			Difficulty:  types.DifficultyAdvanced,
			Duration:    "40 hours",
			Skills:      []string{"System Design", "Architecture", "Scalability"},
			URL:         "https://www.educative.io/courses/grokking-the-system-design-interview",
			Price:       "$59",
			Rating:      4.7,
		},
		{
			ID:          "a1c3e5f7-2b4d-4f6a-8c0e-1d3f5a7b9c1d",
			Title:       "Kubernetes for Developers",
			Description: "Deploy, scale, and operate containerized applications with Kubernetes, covering pods, services, and Helm.",
			Platform:    "Udemy",
			Difficulty:  types.DifficultyIntermediate,
			Duration:    "18 hours",
			Skills:      []string{"Kubernetes", "Docker", "DevOps"},
			URL:         "https://www.udemy.com/course/kubernetes-for-developers/",
			Price:       "$19.99",
			Rating:      4.6,
		},
		{
			ID:          "b2d4f6a8-3c5e-4a7b-9d1f-2e4a6c8e0f2a",
			Title:       "The Complete JavaScript Course",
			Description: "Modern JavaScript from fundamentals through async programming, modules, and tooling.",
			Platform:    "Udemy",
			Difficulty:  types.DifficultyBeginner,
			Duration:    "69 hours",
			Skills:      []string{"JavaScript", "Frontend", "Node"},
			URL:         "https://www.udemy.com/course/the-complete-javascript-course/",
			Price:       "$24.99",
			Rating:      4.7,
		},
		{
			ID:          "d4f6a8c0-5e7f-4b9d-1a3c-3f5b7d9f1b3c",
			Title:       "SQL and Database Design",
			Description: "Relational modeling, advanced SQL queries, indexing, and query performance tuning.",
			Platform:    "Coursera",
			Difficulty:  types.DifficultyIntermediate,
			Duration:    "25 hours",
			Skills:      []string{"SQL", "Database", "Postgres"},
			URL:         "https://www.coursera.org/learn/database-design",
			Price:       "Free",
			Rating:      4.5,
		},
		{
			ID:          "e5a7c9e1-6f8a-4c0e-2b4d-4a6c8e0a2c4d",
			Title:       "AWS Certified Solutions Architect",
			Description: "Core AWS services, resilient architectures, and cost-optimized cloud design for the associate exam.",
			Platform:    "A Cloud Guru",
			Difficulty:  types.DifficultyIntermediate,
			Duration:    "30 hours",
			Skills:      []string{"AWS", "Cloud", "Architecture"},
			URL:         "https://www.pluralsight.com/cloud-guru/courses/aws-certified-solutions-architect-associate",
			Price:       "$35/month",
			Rating:      4.8,
		},
		{
			ID:          "f6b8d0f2-7a9b-4d1f-3c5e-5b7d9f1b3d5e",
			Title:       "Machine Learning Specialization",
			Description: "Supervised learning, neural networks, and practical model evaluation with hands-on labs.",
			Platform:    "Coursera",
			Difficulty:  types.DifficultyAdvanced,
			Duration:    "94 hours",
			Skills:      []string{"Machine Learning", "Python", "Data Analysis"},
			URL:         "https://www.coursera.org/specializations/machine-learning-introduction",
			Price:       "$49/month",
			Rating:      4.9,
		},
		{
			ID:          "a7c9e1b3-8b0c-4e2a-4d6f-6c8e0a2c4e6f",
			Title:       "Engineering Leadership Fundamentals",
			Description: "Transitioning from individual contributor to leading teams: delegation, feedback, and technical strategy.",
			Platform:    "LinkedIn Learning",
			Difficulty:  types.DifficultyBeginner,
			Duration:    "8 hours",
			Skills:      []string{"Leadership", "Communication", "Mentoring"},
			URL:         "https://www.linkedin.com/learning/engineering-leadership",
			Price:       "$29.99",
			Rating:      4.4,
		},
		{
			ID:          "b8d0f2c4-9c1d-4f3b-5e7a-7d9f1b3d5f7a",
			Title:       "Testing JavaScript Applications",
			Description: "Unit, integration, and end-to-end testing with Jest and Cypress, including CI integration.",
			Platform:    "TestingJavaScript",
			Difficulty:  types.DifficultyIntermediate,
			Duration:    "12 hours",
			Skills:      []string{"Testing", "Jest", "Cypress"},
			URL:         "https://www.testingjavascript.com/",
			Price:       "$132",
			Rating:      4.6,
		},
	}
}
