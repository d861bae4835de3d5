package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"huffman_codec_go/internal/repo"
	"huffman_codec_go/internal/service"
	"huffman_codec_go/pkg/huffman"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{repo.ErrNotFound, http.StatusNotFound},
		{service.ErrDecodeBeforeEncode, http.StatusConflict},
		{fmt.Errorf("%w: truncated", huffman.ErrMalformedBitStream), http.StatusUnprocessableEntity},
		{huffman.ErrInvalidBits, http.StatusUnprocessableEntity},
		{service.ErrEmptyText, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := errorStatus(tt.err); got != tt.want {
			t.Errorf("errorStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
