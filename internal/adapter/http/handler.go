package http

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-builder/internal/adapter/repository"
	"portfolio-builder/internal/model"
	"portfolio-builder/internal/pdf"
	"portfolio-builder/internal/usecase"
	"portfolio-builder/pkg/ai"
	"portfolio-builder/pkg/logger"
)

// Previewer captures a rendered preview of generated site markup.
type Previewer interface {
	CapturePreview(ctx context.Context, html string) ([]byte, error)
}

type Handler struct {
	extractor *usecase.Extractor
	generator *usecase.Generator
	store     usecase.Store
	completer ai.Completer
	pdfText   pdf.TextExtractor
	previewer Previewer
	uploadDir string
	log       *zap.Logger
}

func NewHandler(
	extractor *usecase.Extractor,
	generator *usecase.Generator,
	store usecase.Store,
	completer ai.Completer,
	pdfText pdf.TextExtractor,
	previewer Previewer,
	uploadDir string,
) *Handler {
	return &Handler{
		extractor: extractor,
		generator: generator,
		store:     store,
		completer: completer,
		pdfText:   pdfText,
		previewer: previewer,
		uploadDir: uploadDir,
		log:       logger.L(),
	}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")
	api.Post("/parse-resume", h.ParseResume)
	api.Post("/save-portfolio", h.SavePortfolio)
	api.Get("/get-portfolio/:email", h.GetPortfolio)
	api.Post("/completions", h.Completions)
	api.Post("/generate-portfolio", h.GeneratePortfolio)
	api.Post("/preview-portfolio", h.PreviewPortfolio)
	api.Post("/export-portfolio", h.ExportPortfolio)
	api.Post("/deploy-portfolio", h.DeployPortfolio)
}

func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}

// ParseResume accepts a multipart PDF upload, extracts its text and runs AI
// parsing. The temporary upload is removed on success and failure alike.
func (h *Handler) ParseResume(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "No file uploaded")
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return fail(c, fiber.StatusInternalServerError, "Error processing resume")
	}
	tmpPath := filepath.Join(h.uploadDir, uuid.New().String()+".pdf")
	if err := c.SaveFile(file, tmpPath); err != nil {
		return fail(c, fiber.StatusInternalServerError, "Error processing resume")
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			h.log.Warn("failed to remove uploaded file", zap.String("path", tmpPath), zap.Error(err))
		}
	}()

	fileBytes, err := os.ReadFile(tmpPath)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Error processing resume")
	}

	rawText, err := h.pdfText.ExtractText(c.Context(), fileBytes)
	if err != nil {
		if errors.Is(err, pdf.ErrUnreadablePDF) {
			return fail(c, fiber.StatusBadRequest, "Uploaded file is not a readable PDF")
		}
		return fail(c, fiber.StatusInternalServerError, "Error processing resume")
	}

	doc, err := h.extractor.ParseResume(c.Context(), rawText)
	if err != nil {
		h.log.Error("resume parsing failed", zap.Error(err))
		switch {
		case errors.Is(err, usecase.ErrNoJSONFound), errors.Is(err, usecase.ErrMalformedJSON):
			return fail(c, fiber.StatusInternalServerError, "AI response could not be parsed, please try again")
		case errors.Is(err, ai.ErrNotConfigured):
			return fail(c, fiber.StatusInternalServerError, "AI service is not configured")
		default:
			return fail(c, fiber.StatusInternalServerError, "Error processing resume")
		}
	}

	return ok(c, doc)
}

// SavePortfolio normalizes the request body and upserts it by email.
func (h *Handler) SavePortfolio(c *fiber.Ctx) error {
	var raw map[string]interface{}
	if err := c.BodyParser(&raw); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}

	doc := model.Normalize(raw)
	if doc.Email == "" {
		return fail(c, fiber.StatusBadRequest, "Email is required")
	}

	stored, err := h.store.Save(c.Context(), doc)
	if err != nil {
		var vErr *model.ValidationError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Validation error",
				"details": vErr.Fields,
			})
		case errors.Is(err, repository.ErrDuplicateEmail):
			return fail(c, fiber.StatusBadRequest, "A portfolio with this email already exists")
		default:
			h.log.Error("save portfolio failed", zap.Error(err))
			return fail(c, fiber.StatusInternalServerError, "Error saving portfolio data")
		}
	}

	return ok(c, stored)
}

// GetPortfolio fetches the stored document for an email.
func (h *Handler) GetPortfolio(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return fail(c, fiber.StatusBadRequest, "Email is required")
	}

	doc, err := h.store.Fetch(c.Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "Portfolio not found")
		}
		h.log.Error("fetch portfolio failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error fetching portfolio data")
	}

	return ok(c, doc)
}

type completionsReq struct {
	Prompt       string            `json:"prompt"`
	Model        string            `json:"model"`
	Messages     []ai.Message      `json:"messages"`
	ExtraHeaders map[string]string `json:"extraHeaders"`
}

// Completions is the thin passthrough to the chat-completions gateway.
func (h *Handler) Completions(c *fiber.Ctx) error {
	var req completionsReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	if req.Prompt == "" && len(req.Messages) == 0 {
		return fail(c, fiber.StatusBadRequest, "Prompt or messages are required.")
	}

	content, err := h.completer.Complete(c.Context(), ai.Request{
		Model:        req.Model,
		Prompt:       req.Prompt,
		Messages:     req.Messages,
		ExtraHeaders: req.ExtraHeaders,
	})
	if err != nil {
		h.log.Error("completions call failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error processing completions request.")
	}

	return ok(c, content)
}

// GeneratePortfolio runs site generation for a finalized document.
func (h *Handler) GeneratePortfolio(c *fiber.Ctx) error {
	var raw map[string]interface{}
	if err := c.BodyParser(&raw); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}

	doc := model.Normalize(raw)
	siteHTML, err := h.generator.GenerateSite(c.Context(), doc)
	if err != nil {
		if errors.Is(err, usecase.ErrGenerationInFlight) {
			return fail(c, fiber.StatusConflict, "Site generation already in progress")
		}
		h.log.Error("site generation failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error generating portfolio, please try again")
	}

	return ok(c, siteHTML)
}

type siteReq struct {
	HTML string `json:"html"`
}

// PreviewPortfolio renders the generated markup in an isolated browser
// context and returns a PNG screenshot.
func (h *Handler) PreviewPortfolio(c *fiber.Ctx) error {
	var req siteReq
	if err := c.BodyParser(&req); err != nil || req.HTML == "" {
		return fail(c, fiber.StatusBadRequest, "Site markup is required")
	}

	shot, err := h.previewer.CapturePreview(c.Context(), req.HTML)
	if err != nil {
		h.log.Error("preview capture failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error rendering preview")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(shot)
}

// ExportPortfolio packages the markup into the downloadable archive.
func (h *Handler) ExportPortfolio(c *fiber.Ctx) error {
	var req siteReq
	if err := c.BodyParser(&req); err != nil || req.HTML == "" {
		return fail(c, fiber.StatusBadRequest, "Site markup is required")
	}

	archive, err := usecase.ExportArchive(req.HTML)
	if err != nil {
		h.log.Error("export failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error creating download file. Please try again.")
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="portfolio-website.zip"`)
	return c.Send(archive)
}

// DeployPortfolio reports the not-implemented deploy action.
func (h *Handler) DeployPortfolio(c *fiber.Ctx) error {
	err := usecase.Deploy()
	return fail(c, fiber.StatusNotImplemented, err.Error())
}
