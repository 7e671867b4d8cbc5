package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"dentrack/internal/config"
	"dentrack/internal/importer"
	"dentrack/internal/parser"
)

// ConfigPatch 설정 변경 요청 (넘어온 필드만 반영)
type ConfigPatch struct {
	Branch          *string                `json:"branch"`
	PrimarySheet    *string                `json:"primarySheet"`
	InsuranceSheet  *string                `json:"insuranceSheet"`
	SupplierAliases []parser.SupplierAlias `json:"supplierAliases"`
}

// GetConfig 현재 설정 조회
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	clinic, _ := h.clinicSnapshot()
	c.JSON(http.StatusOK, gin.H{
		"branch":          clinic.Branch,
		"primarySheet":    clinic.PrimarySheet,
		"insuranceSheet":  clinic.InsuranceSheet,
		"supplierAliases": clinic.SupplierAliases,
	})
}

// UpdateConfig 설정 변경
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var patch ConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청 본문입니다"})
		return
	}

	h.mu.Lock()
	if patch.Branch != nil {
		h.cfg.Clinic.Branch = *patch.Branch
	}
	if patch.PrimarySheet != nil {
		h.cfg.Clinic.PrimarySheet = *patch.PrimarySheet
	}
	if patch.InsuranceSheet != nil {
		h.cfg.Clinic.InsuranceSheet = *patch.InsuranceSheet
	}
	if patch.SupplierAliases != nil {
		h.cfg.Clinic.SupplierAliases = patch.SupplierAliases
		// 별칭 표가 바뀌면 분류기도 새로 만든다
		h.coordinator = importer.NewCoordinator(h.store,
			parser.NewSupplierClassifier(h.cfg.Clinic.SupplierAliases))
	}
	if err := config.SaveConfig(h.cfg); err != nil {
		log.Printf("설정 저장 실패: %v", err)
	}
	h.mu.Unlock()

	h.GetConfig(c)
}
