package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchBody struct {
	Notes *string `json:"notes"`
}

func bind(t *testing.T, body string) (patchBody, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var dst patchBody
	err := BindJSON(c, &dst)
	return dst, err
}

func TestBindJSON(t *testing.T) {
	got, err := bind(t, `{"notes":"ok"}`)
	require.NoError(t, err)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "ok", *got.Notes)

	got, err = bind(t, "")
	require.NoError(t, err)
	assert.Nil(t, got.Notes)

	got, err = bind(t, "null")
	require.NoError(t, err)
	assert.Nil(t, got.Notes)

	_, err = bind(t, `{"notes":`)
	assert.Error(t, err)

	_, err = bind(t, `{"notes":5}`)
	assert.Error(t, err)
}
