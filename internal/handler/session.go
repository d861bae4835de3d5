package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"huffman_codec_go/internal/model"
	"huffman_codec_go/internal/repo"
	"huffman_codec_go/internal/service"
	"huffman_codec_go/pkg/huffman"
)

type SessionHandler struct {
	svc *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{svc: s}
}

type createSessionReq struct {
	Name string `json:"name" binding:"required"`
	Text string `json:"text" binding:"required"`
}

type decodeReq struct {
	Bits *string `json:"bits"`
}

type frequencyView struct {
	Char  string `json:"char"`
	Count int    `json:"count"`
}

type codeView struct {
	Char string `json:"char"`
	Code string `json:"code"`
}

type sessionView struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	CreatedAt   time.Time       `json:"created_at"`
	Total       int             `json:"total"`
	Encoded     bool            `json:"encoded"`
	InOrder     string          `json:"inorder"`
	Frequencies []frequencyView `json:"frequencies"`
	Codes       []codeView      `json:"codes"`
}

type encodeView struct {
	Bits     string `json:"bits"`
	BitCount int    `json:"bit_count"`
	Packed   []byte `json:"packed"`
	Checksum string `json:"checksum"`
}

func newSessionView(s *model.Session, encoded bool) sessionView {
	freqs := s.Codec.Frequencies()
	v := sessionView{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		Total:     freqs.Total(),
		Encoded:   encoded,
		InOrder:   s.Codec.InOrder(),
	}
	for _, f := range freqs.Entries() {
		v.Frequencies = append(v.Frequencies, frequencyView{Char: string(f.Char), Count: f.Count})
	}
	for _, e := range s.Codec.Codes().Entries() {
		v.Codes = append(v.Codes, codeView{Char: string(e.Char), Code: e.Code.String()})
	}
	return v
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDecodeBeforeEncode):
		return http.StatusConflict
	case errors.Is(err, huffman.ErrMalformedBitStream), errors.Is(err, huffman.ErrInvalidBits):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrEmptyText), errors.Is(err, huffman.ErrEmptyInput):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}

func (h *SessionHandler) Create(c *gin.Context) {
	var req createSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.svc.Create(req.Name, req.Text)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSessionView(s, false))
}

func (h *SessionHandler) GetByID(c *gin.Context) {
	s, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionView(s, h.svc.IsEncoded(s)))
}

func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]sessionView, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, newSessionView(s, h.svc.IsEncoded(s)))
	}
	c.JSON(http.StatusOK, out)
}

func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) Encode(c *gin.Context) {
	a, err := h.svc.Encode(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	bits, err := huffman.NewBits(a.Packed, a.BitCount)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, encodeView{
		Bits:     bits.String(),
		BitCount: a.BitCount,
		Packed:   a.Packed,
		Checksum: strconv.FormatUint(a.Checksum, 16),
	})
}

// Decode decodes {"bits": "0101..."} against the session tree, or the
// session's own stream when no body is sent.
func (h *SessionHandler) Decode(c *gin.Context) {
	var req decodeReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	var bits *huffman.Bits
	if req.Bits != nil {
		b, err := huffman.ParseBits(*req.Bits)
		if err != nil {
			fail(c, err)
			return
		}
		bits = &b
	}
	text, err := h.svc.Decode(c.Request.Context(), c.Param("id"), bits)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (h *SessionHandler) Archive(c *gin.Context) {
	id := c.Param("id")
	b, err := h.svc.Archive(id)
	if err != nil {
		fail(c, err)
		return
	}
	s, err := h.svc.GetByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": s.Name + ".huffpack"}))
	c.Data(http.StatusOK, "application/octet-stream", b)
}
