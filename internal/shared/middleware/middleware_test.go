package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAdminRouter(secret string) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/admin", AdminKey(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAdminKey(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		header string
		want   int
	}{
		{name: "correct key", secret: "s3cret", header: "s3cret", want: http.StatusOK},
		{name: "wrong key", secret: "s3cret", header: "guess", want: http.StatusUnauthorized},
		{name: "missing key", secret: "s3cret", header: "", want: http.StatusUnauthorized},
		{name: "case matters", secret: "s3cret", header: "S3CRET", want: http.StatusUnauthorized},
		{name: "guard disabled, no key", secret: "", header: "", want: http.StatusOK},
		{name: "guard disabled, any key", secret: "", header: "whatever", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers[AdminKeyHeader] = tt.header
			}

			rec := doGet(newAdminRouter(tt.secret), "/admin", headers)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newAdminRouter("")

	generated := doGet(r, "/admin", nil)
	assert.Len(t, generated.Header().Get(RequestIDHeader), 36)

	echoed := doGet(r, "/admin", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", echoed.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://shop.example"}))
	r.GET("/api/rates", func(c *gin.Context) { c.Status(http.StatusOK) })

	allowed := doGet(r, "/api/rates", map[string]string{"Origin": "https://shop.example"})
	assert.Equal(t, "https://shop.example", allowed.Header().Get("Access-Control-Allow-Origin"))

	denied := doGet(r, "/api/rates", map[string]string{"Origin": "https://evil.example"})
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/api/rates", nil)
	req.Header.Set("Origin", "https://shop.example")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	rec := doGet(r, "/boom", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
