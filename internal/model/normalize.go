package model

import (
	"strings"

	"portfolio-builder/internal/domain"
)

// Normalize coerces an arbitrary decoded JSON value into a fully-shaped
// PortfolioDocument. It never fails: anything that does not match the
// expected shape is replaced with a type-appropriate zero value. Element
// objects inside array fields are coerced field-by-field, not replaced
// wholesale. Purely structural; no semantic validation happens here.
func Normalize(v interface{}) domain.PortfolioDocument {
	doc := domain.NewPortfolioDocument()

	m, ok := v.(map[string]interface{})
	if !ok {
		return doc
	}

	doc.Name = asString(m["name"])
	doc.Email = asString(m["email"])
	doc.Phone = asString(m["phone"])
	doc.ProfileImage = asString(m["profileImage"])

	if links, ok := m["portfolioLinks"].(map[string]interface{}); ok {
		doc.PortfolioLinks = domain.PortfolioLinks{
			PortfolioWebsite: asString(links["portfolioWebsite"]),
			LinkedIn:         asString(links["linkedin"]),
			GitHub:           asString(links["github"]),
			LeetCode:         asString(links["leetcode"]),
			HackerRank:       asString(links["hackerrank"]),
		}
	}

	if arr, ok := m["workExperience"].([]interface{}); ok {
		for _, it := range arr {
			exp, ok := it.(map[string]interface{})
			if !ok {
				doc.WorkExperience = append(doc.WorkExperience, domain.NewExperience())
				continue
			}
			doc.WorkExperience = append(doc.WorkExperience, domain.Experience{
				Company:     asString(exp["company"]),
				Position:    asString(exp["position"]),
				Duration:    asString(exp["duration"]),
				Description: asString(exp["description"]),
			})
		}
	}

	if arr, ok := m["projects"].([]interface{}); ok {
		for _, it := range arr {
			proj, ok := it.(map[string]interface{})
			if !ok {
				doc.Projects = append(doc.Projects, domain.NewProject())
				continue
			}
			doc.Projects = append(doc.Projects, domain.Project{
				Title:       asString(proj["title"]),
				TechStack:   asStringList(proj["techStack"]),
				Description: asString(proj["description"]),
				GitHub:      asString(proj["github"]),
				LiveDemo:    asString(proj["liveDemo"]),
			})
		}
	}

	if arr, ok := m["education"].([]interface{}); ok {
		for _, it := range arr {
			edu, ok := it.(map[string]interface{})
			if !ok {
				doc.Education = append(doc.Education, domain.NewEducation())
				continue
			}
			doc.Education = append(doc.Education, domain.Education{
				Degree:      asString(edu["degree"]),
				Institution: asString(edu["institution"]),
				Duration:    asString(edu["duration"]),
				Score:       asString(edu["score"]),
			})
		}
	}

	if skills, ok := m["skills"].(map[string]interface{}); ok {
		doc.Skills.Languages = asStringList(skills["languages"])
		doc.Skills.Tools = asStringList(skills["tools"])
	}

	if arr, ok := m["certifications"].([]interface{}); ok {
		for _, it := range arr {
			cert, ok := it.(map[string]interface{})
			if !ok {
				doc.Certifications = append(doc.Certifications, domain.NewCertification())
				continue
			}
			doc.Certifications = append(doc.Certifications, domain.Certification{
				Title:           asString(cert["title"]),
				Year:            asString(cert["year"]),
				Provider:        asString(cert["provider"]),
				CertificateLink: asString(cert["certificateLink"]),
			})
		}
	}

	return doc
}

// NormalizeDocument re-runs structural coercion over an existing document,
// restoring any nil slices. Useful after JSON round-trips that drop empty
// arrays.
func NormalizeDocument(doc domain.PortfolioDocument) domain.PortfolioDocument {
	if doc.WorkExperience == nil {
		doc.WorkExperience = []domain.Experience{}
	}
	if doc.Projects == nil {
		doc.Projects = []domain.Project{}
	}
	for i := range doc.Projects {
		if doc.Projects[i].TechStack == nil {
			doc.Projects[i].TechStack = []string{}
		}
	}
	if doc.Education == nil {
		doc.Education = []domain.Education{}
	}
	if doc.Skills.Languages == nil {
		doc.Skills.Languages = []string{}
	}
	if doc.Skills.Tools == nil {
		doc.Skills.Tools = []string{}
	}
	if doc.Certifications == nil {
		doc.Certifications = []domain.Certification{}
	}
	return doc
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// asStringList accepts an array of anything (non-string members dropped),
// or a single comma-separated string, and always returns a non-nil slice.
func asStringList(v interface{}) []string {
	out := []string{}
	switch t := v.(type) {
	case []interface{}:
		for _, it := range t {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = append(out, t...)
	case string:
		out = append(out, SplitList(t)...)
	}
	return out
}

// SplitList turns a comma-separated display string into a trimmed slice,
// dropping empty segments. The form layer uses the same rule for skills and
// tech-stack inputs.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
