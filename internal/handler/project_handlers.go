package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"origo-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *GeneratorHandler) listProjects(c *gin.Context) {
	projects, err := h.generator.ListProjects(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if projects == nil {
		projects = []models.ProjectSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *GeneratorHandler) getProject(c *gin.Context) {
	projectID := c.Param("project_id")

	artifact, err := h.generator.GetProject(c.Request.Context(), projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifact)
}

func (h *GeneratorHandler) deleteProject(c *gin.Context) {
	projectID := c.Param("project_id")

	if err := h.generator.DeleteProject(c.Request.Context(), projectID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GeneratorHandler) downloadProject(c *gin.Context) {
	projectID := c.Param("project_id")

	var buf bytes.Buffer
	if err := h.archive.WriteArchive(c.Request.Context(), projectID, &buf); err != nil {
		handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("project-%s.zip", projectID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

func (h *GeneratorHandler) cleanup(c *gin.Context) {
	olderThanDays := 0
	if raw := c.Query("older_than_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "older_than_days must be an integer"}
			c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
			return
		}
		olderThanDays = parsed
	}
	dryRun := c.Query("dry_run") == "true"

	report, err := h.generator.Cleanup(c.Request.Context(), olderThanDays, dryRun)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.logger.Info("Cleanup requested via API",
		zap.Int("olderThanDays", olderThanDays),
		zap.Bool("dryRun", dryRun),
		zap.Int("affected", len(report.Deleted)))
	c.JSON(http.StatusOK, report)
}
