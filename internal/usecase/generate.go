package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"portfolio-builder/internal/domain"
	"portfolio-builder/pkg/ai"
	"portfolio-builder/pkg/logger"
)

// ErrGenerationInFlight is returned when a generation request arrives while
// another one is still outstanding. The caller should not treat it as a
// failure of the first request.
var ErrGenerationInFlight = errors.New("generate: site generation already in flight")

// GenerationError wraps any failure to produce usable site markup.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return "generate: " + e.Err.Error() }
func (e *GenerationError) Unwrap() error { return e.Err }

const generateSystemMessage = "You are a professional web developer specializing in creating modern, responsive portfolio websites."

// Generator produces a complete self-contained site document from a
// finalized portfolio. One outstanding gateway call at a time; duplicate
// triggers are suppressed, not queued.
type Generator struct {
	ai       ai.Completer
	model    string
	inFlight atomic.Bool
	log      *zap.Logger
}

func NewGenerator(client ai.Completer, model string) *Generator {
	return &Generator{ai: client, model: model, log: logger.L()}
}

// GenerateSite builds the generation prompt, calls the gateway once and
// returns the raw response verbatim. No sanitization and no validation that
// every field actually appears in the markup.
func (g *Generator) GenerateSite(ctx context.Context, doc domain.PortfolioDocument) (string, error) {
	if !g.inFlight.CompareAndSwap(false, true) {
		return "", ErrGenerationInFlight
	}
	defer g.inFlight.Store(false)

	content, err := g.ai.Complete(ctx, ai.Request{
		Model: g.model,
		Messages: []ai.Message{
			{Role: "system", Content: generateSystemMessage},
			{Role: "user", Content: buildGeneratePrompt(doc)},
		},
	})
	if err != nil {
		return "", &GenerationError{Err: err}
	}
	if strings.TrimSpace(content) == "" {
		return "", &GenerationError{Err: errors.New("empty response from gateway")}
	}

	g.log.Info("site generated", zap.String("email", doc.Email), zap.Int("markupLen", len(content)))
	return content, nil
}

// buildGeneratePrompt enumerates every document field by name together with
// the fixed layout guidance. Data must never be omitted by the model, so the
// prompt spells out each section explicitly.
func buildGeneratePrompt(doc domain.PortfolioDocument) string {
	var b strings.Builder

	b.WriteString(`You are a professional front-end developer. Your task is to create a fully responsive, modern, visually appealing personal portfolio website using only HTML, Tailwind CSS, and JavaScript. Use every single data field provided below.

### Design Requirements:

**Color Scheme:**
- Use any modern gradient color combination in backgrounds.

**Typography:**
- Clean, readable fonts
- Bold headings, medium subheadings, regular body text

**Layout & Style:**
- Spacious sections with clear hierarchy
- Subtle shadows, glassmorphism, animated floating elements

### Section-Specific Guidelines:

**Header:**
- Fixed top nav bar with backdrop blur, gradient logo text
- Smooth scroll, active section highlight
- Mobile hamburger menu with slide-down

**Hero:**
- Full-screen with animated gradient
- Floating shapes, large bold name/title
- Animated CTA buttons, fade/slide-in intro

**About:**
- Two-column layout
- Avatar with gradient border
- Contact cards + social icons
- Professional bio

**Experience:**
- Timeline or card format
- Company, position, duration, description
- Tech tags, border accents, hover lift animation

**Projects:**
- 3-column responsive grid
- Cards with gradient image area, title, tech badges
- GitHub/live demo buttons
- Transform hover effects

**Skills:**
- 2-column layout
- Progress bars with animated gradient fill
- Tool icons in grid with hover effects

**Education:**
- Timeline or card layout
- Degree, institution, duration, score
- Animated on scroll with stagger delays

**Certifications:**
- Grid of cards with icons, titles, issuer, link
- Hover animations

**Contact:**
- Two-column layout
- Styled contact form with validation
- Contact details panel with gradient background

### Personal Information:
`)
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nPhone: %s\n\n", doc.Name, doc.Email, doc.Phone)

	if doc.ProfileImage != "" {
		img := doc.ProfileImage
		if len(img) > 100 {
			img = img[:100]
		}
		fmt.Fprintf(&b, "### Profile Image (Base64):\n%s... (truncated)\n\nUse this image as the user's avatar or profile picture in the portfolio.\n\n", img)
	}

	b.WriteString("### Portfolio Links:\n")
	fmt.Fprintf(&b, "portfolioWebsite: %s | linkedin: %s | github: %s | leetcode: %s | hackerrank: %s\n\n",
		doc.PortfolioLinks.PortfolioWebsite, doc.PortfolioLinks.LinkedIn, doc.PortfolioLinks.GitHub,
		doc.PortfolioLinks.LeetCode, doc.PortfolioLinks.HackerRank)

	b.WriteString("### Work Experience:\n")
	for i, exp := range doc.WorkExperience {
		fmt.Fprintf(&b, "%d) %s at %s\nDuration: %s\nDescription: %s\n\n", i+1, exp.Position, exp.Company, exp.Duration, exp.Description)
	}

	b.WriteString("### Projects:\n")
	for i, proj := range doc.Projects {
		fmt.Fprintf(&b, "%d) %s\nTech Stack: %s\nDescription: %s\nGitHub: %s | Live Demo: %s\n\n",
			i+1, proj.Title, strings.Join(proj.TechStack, ", "), proj.Description, proj.GitHub, proj.LiveDemo)
	}

	b.WriteString("### Education:\n")
	for i, edu := range doc.Education {
		fmt.Fprintf(&b, "%d) %s\nInstitution: %s\nDuration: %s\nScore: %s\n\n", i+1, edu.Degree, edu.Institution, edu.Duration, edu.Score)
	}

	b.WriteString("### Skills:\n")
	fmt.Fprintf(&b, "Languages: %s\nTools: %s\n\n", strings.Join(doc.Skills.Languages, ", "), strings.Join(doc.Skills.Tools, ", "))

	b.WriteString("### Certifications:\n")
	if len(doc.Certifications) == 0 {
		b.WriteString("None\n")
	}
	for i, cert := range doc.Certifications {
		fmt.Fprintf(&b, "%d) %s - %s\nProvider: %s\nCertificate: %s\n\n", i+1, cert.Title, cert.Year, cert.Provider, cert.CertificateLink)
	}

	b.WriteString(`
### Output Instructions:
Return a single code block with a complete, production-ready portfolio website.
Only output HTML, Tailwind CSS, and JavaScript (no markdown or explanations).
All required styles must be inline Tailwind classes, and JavaScript should be within script tags.
Ensure every section is styled as per the design specs and that no data is omitted.
`)

	return b.String()
}
