package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"

	"agrodoctor/internal/domain/entity"
	"agrodoctor/internal/domain/service"

	"github.com/pkg/errors"
)

// AnalyzePlant submits a leaf image as multipart form data and returns the
// vision model's verdict.
func (c *Client) AnalyzePlant(ctx context.Context, filename string, image io.Reader) (*entity.Analysis, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, errors.Wrap(err, "create form file")
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, errors.Wrap(err, "copy image")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "close multipart writer")
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/analyze-plant/", nil,
		writer.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}

	var analysis entity.Analysis
	if err := c.do(req, &analysis); err != nil {
		return nil, err
	}

	return &analysis, nil
}

// LogDiagnosis persists one geo-tagged diagnosis record.
func (c *Client) LogDiagnosis(ctx context.Context, input *service.DiagnosisInput) error {
	return c.postJSON(ctx, "/log-diagnosis/", input, nil)
}

// History lists the current user's diagnosis records.
func (c *Client) History(ctx context.Context) ([]entity.Diagnosis, error) {
	var records []entity.Diagnosis
	if err := c.getJSON(ctx, "/history/me/", nil, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// CalculateImpact fetches the economic-loss estimate for a disease at a
// severity. The severity travels exactly as given; the backend owns bounds.
func (c *Client) CalculateImpact(ctx context.Context, diseaseName string, severity float64) (*entity.ImpactReport, error) {
	query := url.Values{}
	query.Set("disease_name", diseaseName)
	query.Set("severity", strconv.FormatFloat(severity, 'f', -1, 64))

	var report entity.ImpactReport
	if err := c.getJSON(ctx, "/calculate-impact/", query, &report); err != nil {
		return nil, err
	}

	return &report, nil
}
