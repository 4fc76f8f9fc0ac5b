package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildReferenceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewReferenceHandler()
	router.GET("/reference/provinces", h.Provinces)
	router.GET("/reference/districts", h.Districts)
	router.GET("/reference/zones", h.Zones)
	router.GET("/reference/options", h.Options)
	return router
}

func performRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeData(t *testing.T, body []byte) interface{} {
	t.Helper()
	var envelope struct {
		Data interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Data
}

func TestReferenceProvinces(t *testing.T) {
	router := buildReferenceRouter()
	req, _ := http.NewRequest(http.MethodGet, "/reference/provinces", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)
	data := decodeData(t, resp.Body.Bytes()).([]interface{})
	require.Len(t, data, 9)
	assert.Equal(t, "Western", data[0])
}

func TestReferenceDistricts(t *testing.T) {
	router := buildReferenceRouter()

	req, _ := http.NewRequest(http.MethodGet, "/reference/districts?province=Central", nil)
	resp := performRequest(router, req)
	require.Equal(t, http.StatusOK, resp.Code)
	data := decodeData(t, resp.Body.Bytes()).([]interface{})
	assert.Equal(t, []interface{}{"Kandy", "Matale", "Nuwara Eliya"}, data)

	// Unknown province yields an empty list, not an error.
	req, _ = http.NewRequest(http.MethodGet, "/reference/districts?province=Atlantis", nil)
	resp = performRequest(router, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, decodeData(t, resp.Body.Bytes()))
}

func TestReferenceZones(t *testing.T) {
	router := buildReferenceRouter()

	req, _ := http.NewRequest(http.MethodGet, "/reference/zones?province=Western&district=Colombo", nil)
	resp := performRequest(router, req)
	require.Equal(t, http.StatusOK, resp.Code)
	data := decodeData(t, resp.Body.Bytes()).([]interface{})
	assert.Contains(t, data, "Homagama")

	req, _ = http.NewRequest(http.MethodGet, "/reference/zones?province=Western&district=Kandy", nil)
	resp = performRequest(router, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, decodeData(t, resp.Body.Bytes()))
}

func TestReferenceOptions(t *testing.T) {
	router := buildReferenceRouter()
	req, _ := http.NewRequest(http.MethodGet, "/reference/options", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)
	data := decodeData(t, resp.Body.Bytes()).(map[string]interface{})
	assert.Contains(t, data, "subjects")
	assert.Contains(t, data, "grades")
	assert.Contains(t, data, "mediums")
	assert.Contains(t, data, "school_types")
}
