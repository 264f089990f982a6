package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"portfolio-builder/internal/domain"
	"portfolio-builder/internal/model"
	"portfolio-builder/pkg/ai"
	"portfolio-builder/pkg/logger"
)

var (
	// ErrNoJSONFound means the model response contained no {...} substring.
	ErrNoJSONFound = errors.New("extract: no JSON object found in AI response")
	// ErrMalformedJSON means a {...} substring was found but did not parse.
	ErrMalformedJSON = errors.New("extract: AI response contained malformed JSON")
)

// Extractor turns raw resume text into a normalized PortfolioDocument via
// one AI call. It does not persist anything.
type Extractor struct {
	ai    ai.Completer
	model string
	log   *zap.Logger
}

func NewExtractor(client ai.Completer, model string) *Extractor {
	return &Extractor{ai: client, model: model, log: logger.L()}
}

// ParseResume builds the parsing prompt, calls the gateway, recovers the
// embedded JSON object and normalizes it. The returned document is always
// fully shaped, even when the model answered with a partial object.
func (e *Extractor) ParseResume(ctx context.Context, rawText string) (domain.PortfolioDocument, error) {
	prompt := buildParsePrompt(rawText)

	content, err := e.ai.Complete(ctx, ai.Request{Model: e.model, Prompt: prompt})
	if err != nil {
		return domain.PortfolioDocument{}, fmt.Errorf("extract: %w", err)
	}

	sub, ok := extractJSONObject(content)
	if !ok {
		e.log.Warn("no JSON in AI response", zap.Int("responseLen", len(content)))
		return domain.PortfolioDocument{}, ErrNoJSONFound
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(sub), &parsed); err != nil {
		return domain.PortfolioDocument{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	return model.Normalize(parsed), nil
}

// extractJSONObject returns the substring from the first '{' through the
// last '}'. Greedy on purpose: models often wrap the object in preamble and
// trailing commentary.
func extractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// buildParsePrompt embeds the resume text together with the exact target
// JSON shape and a strict only-JSON instruction.
func buildParsePrompt(rawText string) string {
	return `Please parse the following resume text and extract structured information. Return the data in the exact JSON format specified below.

Resume Text:
` + rawText + `

Please extract and return the following information in this exact JSON format:
{
  "name": "Full Name",
  "email": "email@example.com",
  "phone": "phone number",
  "portfolioLinks": {
    "portfolioWebsite": "https://portfolio-website.com",
    "linkedin": "https://linkedin.com/in/username",
    "github": "https://github.com/username",
    "leetcode": "https://leetcode.com/username",
    "hackerrank": "https://hackerrank.com/username"
  },
  "workExperience": [
    {
      "company": "Company Name",
      "position": "Job Title",
      "duration": "Duration (e.g., 2020 - Present)",
      "description": "Job description and achievements"
    }
  ],
  "projects": [
    {
      "title": "Project Name",
      "techStack": ["Technology1", "Technology2"],
      "description": "Project description",
      "github": "https://github.com/username/project",
      "liveDemo": "https://project-demo.com"
    }
  ],
  "education": [
    {
      "degree": "Degree Name",
      "institution": "Institution Name",
      "duration": "Duration (e.g., 2018 - 2022)",
      "score": "GPA or Score"
    }
  ],
  "skills": {
    "languages": ["Language1", "Language2"],
    "tools": ["Tool1", "Tool2"]
  },
  "certifications": [
    {
      "title": "Certification Name",
      "year": "Year",
      "provider": "Provider Name",
      "certificateLink": "https://certificate-link.com"
    }
  ]
}

Important:
1. Extract all available information from the resume
2. If any field is not found, use empty string or empty array
3. For skills, separate programming languages and tools/technologies
4. For portfolio links, extract URLs if available
5. For work experience and projects, extract as much detail as possible
6. Return only valid JSON, no additional text or explanations`
}
