package middleware

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	cErr "socialelections/internal/pkg/error"
	"socialelections/internal/pkg/response"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// 解壓後 body 上限，bulk-add 數千個 id 也遠低於此
const maxDecodedBody = 8 << 20

// Decompress 讓 client 能以 Content-Encoding 壓縮大型 bulk / reorder payload
type Decompress struct{}

func NewDecompress() *Decompress {
	return &Decompress{}
}

func (m *Decompress) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		enc := strings.ToLower(strings.TrimSpace(c.GetHeader("Content-Encoding")))
		if enc == "" || enc == "identity" || c.Request.Body == nil {
			c.Next()
			return
		}

		reader, closeFn, err := decoderFor(enc, c.Request.Body)
		if err != nil {
			response.AbortWithError(c, cErr.BadRequest(fmt.Sprintf("cannot decode %s body: %v", enc, err), cErr.BAD_REQUEST_HEADERS))
			return
		}
		decoded, err := io.ReadAll(io.LimitReader(reader, maxDecodedBody+1))
		closeFn()
		if err != nil {
			response.AbortWithError(c, cErr.BadRequest(fmt.Sprintf("cannot decode %s body: %v", enc, err), cErr.BAD_REQUEST_HEADERS))
			return
		}
		if len(decoded) > maxDecodedBody {
			response.AbortWithError(c, cErr.New(http.StatusRequestEntityTooLarge, cErr.BAD_REQUEST_BODY, "payload too large", "decoded body exceeds limit"))
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(decoded))
		c.Request.ContentLength = int64(len(decoded))
		c.Request.Header.Set("Content-Length", strconv.Itoa(len(decoded)))
		c.Request.Header.Del("Content-Encoding")
		c.Next()
	}
}

func decoderFor(enc string, body io.Reader) (io.Reader, func(), error) {
	switch enc {
	case "gzip", "x-gzip":
		zr, err := gzip.NewReader(body)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case "deflate":
		zr, err := zlib.NewReader(body)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case "zstd":
		dec, err := zstd.NewReader(body)
		if err != nil {
			return nil, nil, err
		}
		return dec, dec.Close, nil
	case "br":
		return brotli.NewReader(body), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported content-encoding %q", enc)
	}
}
