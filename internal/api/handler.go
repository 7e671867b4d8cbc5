package api

import (
	"sync"

	"github.com/gin-gonic/gin"

	"dentrack/internal/config"
	"dentrack/internal/importer"
	"dentrack/internal/parser"
	"dentrack/internal/store"
)

// Handler API 처리기
type Handler struct {
	store *store.Store

	// mu 는 cfg 와 coordinator 를 함께 지킨다. 설정 변경이
	// 분류기 교체를 동반하므로 둘을 한 잠금 아래에서 읽고 쓴다.
	mu          sync.RWMutex
	cfg         *config.AppConfig
	coordinator *importer.Coordinator
}

// NewHandler API 처리기를 만든다
func NewHandler(store *store.Store, cfg *config.AppConfig) *Handler {
	classifier := parser.NewSupplierClassifier(cfg.Clinic.SupplierAliases)
	return &Handler{
		store:       store,
		cfg:         cfg,
		coordinator: importer.NewCoordinator(store, classifier),
	}
}

// clinicSnapshot 현재 진료 설정과 코디네이터를 잠금 아래에서 읽는다
func (h *Handler) clinicSnapshot() (config.ClinicConfig, *importer.Coordinator) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg.Clinic, h.coordinator
}

// RegisterRoutes API 라우트 등록
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 시스템 상태
	router.GET("/status", h.GetStatus)

	// 수술기록 업로드
	router.POST("/upload", h.Upload)

	// 시술 레코드 조회
	router.GET("/treatments", h.ListTreatments)
	router.GET("/treatments/suppliers", h.ListSuppliers)

	// 제품 카탈로그
	router.POST("/catalog/import", h.ImportCatalog)
	router.GET("/products", h.ListProducts)

	// 가져오기 이력
	router.GET("/imports", h.ListImports)

	// 설정
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)
}
