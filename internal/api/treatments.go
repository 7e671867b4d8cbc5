package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dentrack/internal/model"
)

// ListTreatments 시술 레코드 조회
// GET /api/treatments?branch=&category=&supplier=&chartNo=&patient=&from=&to=&insurance=&limit=&offset=
func (h *Handler) ListTreatments(c *gin.Context) {
	opts := model.TreatmentQueryOptions{
		Limit:  100,
		Offset: 0,
	}

	if v := c.Query("branch"); v != "" {
		opts.Branch = &v
	}
	if v := c.Query("category"); v != "" {
		cat := model.TreatmentCategory(v)
		if cat != model.CategoryImplant && cat != model.CategoryBoneGraft {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category 는 implant 또는 bone 이어야 합니다"})
			return
		}
		opts.Category = &cat
	}
	if v := c.Query("supplier"); v != "" {
		opts.Supplier = &v
	}
	if v := c.Query("chartNo"); v != "" {
		opts.ChartNo = &v
	}
	if v := c.Query("patient"); v != "" {
		opts.PatientName = &v
	}
	if v := c.Query("from"); v != "" {
		opts.DateFrom = &v
	}
	if v := c.Query("to"); v != "" {
		opts.DateTo = &v
	}
	if v := c.Query("insurance"); v != "" {
		ins := v == "true"
		opts.IsInsurance = &ins
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	records, err := h.store.QueryTreatments(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total, err := h.store.CountTreatments(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if records == nil {
		records = []*model.TreatmentRecord{}
	}
	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"total":   total,
		"limit":   opts.Limit,
		"offset":  opts.Offset,
	})
}

// ListSuppliers 저장된 레코드의 공급업체 목록
// GET /api/treatments/suppliers
func (h *Handler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.store.ListSuppliers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if suppliers == nil {
		suppliers = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
}
