package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dentrack/internal/model"
)

const appVersion = "1.2.0"

// GetStatus 시스템 상태
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	total, err := h.store.CountTreatments(model.TreatmentQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	implant := model.CategoryImplant
	implantCount, err := h.store.CountTreatments(model.TreatmentQueryOptions{Category: &implant})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	bone := model.CategoryBoneGraft
	boneCount, err := h.store.CountTreatments(model.TreatmentQueryOptions{Category: &bone})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	clinic, _ := h.clinicSnapshot()
	c.JSON(http.StatusOK, gin.H{
		"version":          appVersion,
		"branch":           clinic.Branch,
		"totalRecords":     total,
		"implantRecords":   implantCount,
		"boneGraftRecords": boneCount,
	})
}
