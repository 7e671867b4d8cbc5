package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

type configResponse struct {
	Branch         string `json:"branch"`
	PrimarySheet   string `json:"primarySheet"`
	InsuranceSheet string `json:"insuranceSheet"`
}

func TestUpdateConfig_PatchApplies(t *testing.T) {
	r, _ := newTestRouter(t)

	body := strings.NewReader(`{"branch":"분점","primarySheet":"기록시트"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/config", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var resp configResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Branch != "분점" || resp.PrimarySheet != "기록시트" {
		t.Fatalf("patch not applied: %+v", resp)
	}

	// 이어지는 조회에도 반영되어 있어야 한다
	req = httptest.NewRequest(http.MethodGet, "/api/config", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Branch != "분점" {
		t.Fatalf("patch lost on re-read: %+v", resp)
	}
}

func TestConfig_ConcurrentReadWrite(t *testing.T) {
	r, _ := newTestRouter(t)

	// 조회와 변경이 겹쳐도 응답이 일관되어야 한다
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
			r.ServeHTTP(httptest.NewRecorder(), req)
		}()
		go func() {
			defer wg.Done()
			body := strings.NewReader(`{"branch":"분점","supplierAliases":[{"key":"IZEN","name":"이젠"}]}`)
			req := httptest.NewRequest(http.MethodPatch, "/api/config", body)
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(httptest.NewRecorder(), req)
		}()
	}
	wg.Wait()

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var resp configResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Branch != "분점" {
		t.Fatalf("final read: %+v", resp)
	}
}

func TestTempUploadPath_StripsClientPath(t *testing.T) {
	t.Parallel()

	p := tempUploadPath("dentrack_upload", "../../etc/passwd")
	if filepath.Dir(p) != filepath.Clean(os.TempDir()) {
		t.Fatalf("path escapes temp dir: %q", p)
	}
	if !strings.HasSuffix(p, "_passwd") {
		t.Fatalf("base name must be kept: %q", p)
	}
}
