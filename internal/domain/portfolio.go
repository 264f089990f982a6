package domain

import "time"

// PortfolioDocument is the canonical portfolio schema, keyed by Email.
// All slice fields are always non-nil and all nested objects fully shaped;
// model.Normalize is the only constructor for untrusted input.
type PortfolioDocument struct {
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	PortfolioLinks PortfolioLinks  `json:"portfolioLinks"`
	WorkExperience []Experience    `json:"workExperience"`
	Projects       []Project       `json:"projects"`
	Education      []Education     `json:"education"`
	Skills         Skills          `json:"skills"`
	Certifications []Certification `json:"certifications"`
	ProfileImage   string          `json:"profileImage,omitempty"`
	CreatedAt      time.Time       `json:"createdAt,omitempty"`
	UpdatedAt      time.Time       `json:"updatedAt,omitempty"`
}

// PortfolioLinks holds the five fixed profile link slots.
type PortfolioLinks struct {
	PortfolioWebsite string `json:"portfolioWebsite"`
	LinkedIn         string `json:"linkedin"`
	GitHub           string `json:"github"`
	LeetCode         string `json:"leetcode"`
	HackerRank       string `json:"hackerrank"`
}

type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Project struct {
	Title       string   `json:"title"`
	TechStack   []string `json:"techStack"`
	Description string   `json:"description"`
	GitHub      string   `json:"github"`
	LiveDemo    string   `json:"liveDemo"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Duration    string `json:"duration"`
	Score       string `json:"score"`
}

type Skills struct {
	Languages []string `json:"languages"`
	Tools     []string `json:"tools"`
}

type Certification struct {
	Title           string `json:"title"`
	Year            string `json:"year"`
	Provider        string `json:"provider"`
	CertificateLink string `json:"certificateLink"`
}

// NewPortfolioDocument returns an empty document satisfying the shape
// invariants (no nil slices, all sub-objects present).
func NewPortfolioDocument() PortfolioDocument {
	return PortfolioDocument{
		WorkExperience: []Experience{},
		Projects:       []Project{},
		Education:      []Education{},
		Skills:         Skills{Languages: []string{}, Tools: []string{}},
		Certifications: []Certification{},
	}
}

// NewExperience, NewProject, NewEducation and NewCertification return
// blank-shaped elements for form append operations.
func NewExperience() Experience { return Experience{} }

func NewProject() Project { return Project{TechStack: []string{}} }

func NewEducation() Education { return Education{} }

func NewCertification() Certification { return Certification{} }
