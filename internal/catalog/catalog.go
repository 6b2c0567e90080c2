// Package catalog holds the built-in reading topics shown on the learning
// pages. Each topic belongs to a grade band and carries a markdown lesson.
package catalog

import (
	"strings"
)

// Band is a range of grades that share the same reading topics.
type Band string

const (
	BandEarly  Band = "1-3"
	BandMiddle Band = "4-5"
	BandUpper  Band = "6-7"
)

// Topic is one reading lesson.
type Topic struct {
	Title       string
	Subject     string
	Band        Band
	Description string
	Content     string
}

// BandForGrade maps a grade level ("4", "Grade 4") to its band.
func BandForGrade(grade string) (Band, bool) {
	g := strings.TrimSpace(grade)
	if len(g) > len("grade") && strings.EqualFold(g[:len("grade")], "grade") {
		g = strings.TrimSpace(g[len("grade"):])
	}
	switch g {
	case "1", "2", "3":
		return BandEarly, true
	case "4", "5":
		return BandMiddle, true
	case "6", "7":
		return BandUpper, true
	}
	return "", false
}

// TopicsForGrade returns the topics for the grade's band. Unknown grades
// have no topics. The returned slice is a copy.
func TopicsForGrade(grade string) []Topic {
	band, ok := BandForGrade(grade)
	if !ok {
		return nil
	}
	var out []Topic
	for _, t := range topics {
		if t.Band == band {
			out = append(out, t)
		}
	}
	return out
}

// All returns every topic in catalog order.
func All() []Topic {
	out := make([]Topic, len(topics))
	copy(out, topics)
	return out
}
