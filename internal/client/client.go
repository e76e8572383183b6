// Package client calls the analyze API on behalf of a workflow.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/linkedin-analyzer/internal/models"
	"alfredoptarigan/linkedin-analyzer/internal/schemas"
	"alfredoptarigan/linkedin-analyzer/internal/workflow"
)

const (
	AnalyzePath    = "/api/v1/analyze"
	DefaultTimeout = 3 * time.Minute
)

type Client struct {
	baseURL string
	timeout time.Duration
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// Analyze implements workflow.Analyzer.
func (c *Client) Analyze(ctx context.Context, req workflow.Request) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, &workflow.TransportError{Err: err}
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	args := fiber.AcquireArgs()
	args.Set("objective", string(req.Objective))
	args.Set("skipBanner", strconv.FormatBool(req.SkipBanner))
	args.Set("skipPhoto", strconv.FormatBool(req.SkipPhoto))
	args.Set("lang", string(req.Language))
	if req.Token != "" {
		args.Set("turnstileToken", req.Token)
	}

	files := []*fiber.FormFile{formFile("pdf", "profile.pdf", req.PDF)}
	if req.Banner != nil && !req.SkipBanner {
		files = append(files, formFile("banner", "banner", *req.Banner))
	}
	if req.Photo != nil && !req.SkipPhoto {
		files = append(files, formFile("photo", "photo", *req.Photo))
	}

	agent := fiber.Post(c.baseURL + AnalyzePath).
		Timeout(timeout).
		FileData(files...).
		MultipartForm(args)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, &workflow.TransportError{Err: errors.Join(errs...)}
	}

	if code < 200 || code > 299 {
		var errResp models.ErrorResponse
		_ = json.Unmarshal(body, &errResp)
		return nil, &workflow.ServiceError{Status: code, Message: errResp.Error}
	}

	if !json.Valid(body) {
		return nil, &workflow.MalformedResponseError{Err: fmt.Errorf("response body is not JSON")}
	}
	if err := schemas.ValidateAnalysis(body); err != nil {
		return nil, &workflow.MalformedResponseError{Err: err}
	}
	return json.RawMessage(body), nil
}

func formFile(field, fallbackName string, f workflow.File) *fiber.FormFile {
	name := f.Name
	if name == "" {
		name = fallbackName
	}
	return &fiber.FormFile{
		Fieldname: field,
		Name:      name,
		Content:   f.Data,
	}
}
