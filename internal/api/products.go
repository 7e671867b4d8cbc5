package api

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"dentrack/internal/model"
)

// ImportCatalog 재고 내보내기 파일에서 제품 카탈로그 가져오기
// POST /api/catalog/import
func (h *Handler) ImportCatalog(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 업로드 요청입니다"})
		return
	}
	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "업로드 파일이 없습니다"})
		return
	}
	uploadedFile := files[0]

	tempFilePath := tempUploadPath("dentrack_catalog", uploadedFile.Filename)
	if err := c.SaveUploadedFile(uploadedFile, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "파일 저장에 실패했습니다"})
		return
	}
	defer os.Remove(tempFilePath)

	_, coordinator := h.clinicSnapshot()
	report, err := coordinator.ImportCatalog(tempFilePath, uploadedFile.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// ListProducts 제품 카탈로그 조회
// GET /api/products?supplier=&q=&limit=&offset=
func (h *Handler) ListProducts(c *gin.Context) {
	opts := model.ProductQueryOptions{Limit: 100}

	if v := c.Query("supplier"); v != "" {
		opts.Supplier = &v
	}
	if v := c.Query("q"); v != "" {
		opts.Keyword = &v
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

	products, err := h.store.QueryProducts(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if products == nil {
		products = []*model.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// ListImports 최근 가져오기 이력
// GET /api/imports?limit=
func (h *Handler) ListImports(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	logs, err := h.store.ListImportLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if logs == nil {
		logs = []*model.ImportLog{}
	}
	c.JSON(http.StatusOK, gin.H{"imports": logs})
}
