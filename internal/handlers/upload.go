package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"lindash/internal/archive"
	"lindash/internal/config"
	"lindash/internal/ingest"
	"lindash/internal/models"
	"lindash/internal/stats"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// UploadHandler ingests an uploaded export archive
// @Summary Upload an export archive
// @Description Upload a LinkedIn data export zip. The archive is extracted, all five record kinds are parsed (missing files are tolerated), the dataset is persisted, and records plus full-dataset statistics are returned.
// @Tags upload
// @Accept mpfd
// @Produce json
// @Param file formData file true "Export zip archive"
// @Success 200 {object} models.UploadResponse
// @Failure 400 {object} models.UploadResponse
// @Failure 500 {object} models.UploadResponse
// @Router /api/upload [post]
func UploadHandler(svc *ingest.Service, cfg *config.Config, logger zerolog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		file, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.UploadResponse{
				Error: "No file provided",
			})
		}

		if cfg.MaxUploadMB > 0 && file.Size > int64(cfg.MaxUploadMB)*1024*1024 {
			return c.JSON(http.StatusBadRequest, models.UploadResponse{
				Error: fmt.Sprintf("File exceeds the %d MB upload limit", cfg.MaxUploadMB),
			})
		}

		// The archive name usually carries the export date; a run id stands in
		// when it does not, keeping repeated same-day uploads distinct.
		exportID, ok := archive.ExportDate(file.Filename)
		if !ok {
			exportID = uuid.NewString()
		}

		if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
			logger.Error().Err(err).Msg("Failed to create uploads dir")
			return c.JSON(http.StatusInternalServerError, models.UploadResponse{
				Error: "Failed to process file",
			})
		}

		tempZip := filepath.Join(cfg.UploadsDir, "temp_"+uuid.NewString()+".zip")
		if err := saveUpload(file, tempZip); err != nil {
			logger.Error().Err(err).Msg("Failed to save uploaded archive")
			return c.JSON(http.StatusInternalServerError, models.UploadResponse{
				Error: "Failed to process file",
			})
		}
		defer func() { _ = os.Remove(tempZip) }()

		extractDir := filepath.Join(cfg.UploadsDir, "Basic_LinkedInDataExport_"+exportID)
		if err := os.RemoveAll(extractDir); err != nil {
			logger.Error().Err(err).Str("dir", extractDir).Msg("Failed to replace extraction dir")
			return c.JSON(http.StatusInternalServerError, models.UploadResponse{
				Error: "Failed to process file",
			})
		}
		if err := archive.Extract(tempZip, extractDir); err != nil {
			logger.Warn().Err(err).Msg("Failed to extract archive")
			return c.JSON(http.StatusBadRequest, models.UploadResponse{
				Error: "The uploaded file is not a readable zip archive",
			})
		}

		dataset, err := svc.Ingest(extractDir, exportID)
		if errors.Is(err, ingest.ErrNoSources) {
			return c.JSON(http.StatusBadRequest, models.UploadResponse{
				Error: "No valid CSV files found in the ZIP archive. Please re-upload a LinkedIn export containing at least one CSV file.",
			})
		}
		if err != nil {
			logger.Error().Err(err).Msg("Ingestion failed")
			return c.JSON(http.StatusInternalServerError, models.UploadResponse{
				Error: "Failed to process file",
			})
		}

		logger.Info().
			Str("export_id", exportID).
			Int("invitations", len(dataset.Invitations)).
			Int("jobs", len(dataset.Jobs)).
			Int("messages", len(dataset.Messages)).
			Int("rich_media", len(dataset.RichMedia)).
			Int("connections", len(dataset.Connections)).
			Msg("Export ingested")

		full := stats.Aggregate(dataset)
		return c.JSON(http.StatusOK, models.UploadResponse{
			Success:    true,
			Message:    "File processed successfully",
			ExportDate: exportID,
			Data:       dataset,
			Stats:      &full,
		})
	}
}

func saveUpload(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { _ = src.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	return nil
}
