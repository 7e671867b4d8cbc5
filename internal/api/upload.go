package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dentrack/internal/importer"
)

// Upload 수술기록 워크북 업로드 (SSE 스트림 응답)
// POST /api/upload
func (h *Handler) Upload(c *gin.Context) {
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

	tempFilePath := tempUploadPath("dentrack_upload", uploadedFile.Filename)
	if err := c.SaveUploadedFile(uploadedFile, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "파일 저장에 실패했습니다"})
		return
	}
	defer os.Remove(tempFilePath)

	clinic, coordinator := h.clinicSnapshot()
	branch := c.DefaultPostForm("branch", clinic.Branch)
	clearExisting := c.DefaultPostForm("clearExisting", "false") == "true"

	// SSE 응답 헤더
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "스트림 응답을 지원하지 않습니다"})
		return
	}

	progressChan := coordinator.Import(importer.ImportOptions{
		FilePath:       tempFilePath,
		SourceFile:     uploadedFile.Filename,
		Branch:         branch,
		PrimarySheet:   clinic.PrimarySheet,
		InsuranceSheet: clinic.InsuranceSheet,
		ClearExisting:  clearExisting,
	})

	for event := range progressChan {
		eventData, err := json.Marshal(event)
		if err != nil {
			continue
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		flusher.Flush()
	}
}

// tempUploadPath 업로드 파일을 저장할 임시 경로를 만든다
// 클라이언트가 보낸 파일명은 경로 성분을 떼고 이름만 쓴다
func tempUploadPath(prefix, filename string) string {
	return filepath.Join(os.TempDir(),
		fmt.Sprintf("%s_%s_%s", prefix, uuid.New().String()[:8], filepath.Base(filename)))
}
