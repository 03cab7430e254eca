package server

import (
	"encoding/json"
	"net/http"

	"github.com/shouni/gemini-photo-kit/internal/runner"
	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

type editRequest struct {
	Image   string          `json:"image"`
	Prompt  string          `json:"prompt"`
	Hotspot *domain.Hotspot `json:"hotspot,omitempty"`
}

type imageResponse struct {
	Image    string `json:"image"`
	MimeType string `json:"mimeType"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Health は死活監視用のエンドポイントです。
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Edit はホットスポット周辺の局所編集を行います。
func (s *Server) Edit(w http.ResponseWriter, r *http.Request) {
	s.handle(w, r, domain.ModeEdit)
}

// Filter はスタイルフィルターを適用します。
func (s *Server) Filter(w http.ResponseWriter, r *http.Request) {
	s.handle(w, r, domain.ModeFilter)
}

// Adjust は画像全体の補正を適用します。
func (s *Server) Adjust(w http.ResponseWriter, r *http.Request) {
	s.handle(w, r, domain.ModeAdjustment)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request, mode domain.EditMode) {
	if s.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	}

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid payload: " + err.Error(), Kind: domain.KindInvalidRequest})
		return
	}
	if req.Image == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "image is required", Kind: domain.KindInvalidRequest})
		return
	}

	resp, err := s.runner.Run(r.Context(), runner.EditJob{
		Mode:    mode,
		Source:  req.Image,
		Prompt:  req.Prompt,
		Hotspot: req.Hotspot,
	})
	if err != nil {
		kind := domain.Kind(err)
		writeJSON(w, statusFor(kind), errorResponse{Error: err.Error(), Kind: kind})
		return
	}

	writeJSON(w, http.StatusOK, imageResponse{Image: resp.DataURL(), MimeType: resp.MimeType})
}

// statusFor はエラー種別を HTTP ステータスに変換します。
func statusFor(kind string) int {
	switch kind {
	case domain.KindInvalidRequest, domain.KindEncoding, domain.KindCanvas:
		return http.StatusBadRequest
	case domain.KindMissingCredential:
		return http.StatusUnauthorized
	case domain.KindBlocked, domain.KindAbnormalFinish, domain.KindNoImage:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
