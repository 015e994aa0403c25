package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

func echoEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Next()
		if len(c.Errors) > 0 {
			c.String(http.StatusBadRequest, c.Errors.Last().Error())
		}
	})
	r.Use(NewDecompress().Handler())
	r.POST("/echo", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})
	return r
}

func post(r *gin.Engine, encoding string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if encoding != "" {
		req.Header.Set("Content-Encoding", encoding)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDecompressEncodings(t *testing.T) {
	payload := []byte(`{"employeeIds":["a","b"],"category":"arbeiders"}`)
	r := echoEngine()

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	var br bytes.Buffer
	bw := brotli.NewWriter(&br)
	_, err = bw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, bw.Close())

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zs := enc.EncodeAll(payload, nil)
	require.NoError(t, enc.Close())

	for name, body := range map[string][]byte{"": payload, "gzip": gz.Bytes(), "br": br.Bytes(), "zstd": zs} {
		w := post(r, name, body)
		require.Equal(t, http.StatusOK, w.Code, name)
		require.Equal(t, string(payload), w.Body.String(), name)
	}
}

func TestDecompressRejectsBadBodies(t *testing.T) {
	r := echoEngine()

	w := post(r, "gzip", []byte("plain text"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = post(r, "compress", []byte("x"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "bad-request")
}
