package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(write func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	write(c)
	return w
}

func TestData_WireFormat(t *testing.T) {
	w := record(func(c *gin.Context) {
		Data(c, http.StatusOK, "ok", gin.H{"email": "a@b.com"})
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"estado":1,"mensaje":"ok","data":{"email":"a@b.com"}}`, w.Body.String())
}

func TestDatos_WireFormat(t *testing.T) {
	w := record(func(c *gin.Context) {
		Datos(c, http.StatusCreated, "creado", gin.H{"email": "a@b.com"})
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"estado":1,"mensaje":"creado","datos":{"email":"a@b.com"}}`, w.Body.String())
}

func TestPage_IncludesPaginationMeta(t *testing.T) {
	w := record(func(c *gin.Context) {
		Page(c, "ok", []string{}, 3, 1)
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"estado":1,"mensaje":"ok","data":[],"totalDePaginas":3,"currentPage":1}`, w.Body.String())
}

// Failure envelopes must carry an explicit null payload, matching the legacy
// wire format clients parse.
func TestFailData_ExplicitNull(t *testing.T) {
	w := record(func(c *gin.Context) {
		FailData(c, http.StatusNotFound, "no encontrado")
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"estado":0,"mensaje":"no encontrado","data":null}`, w.Body.String())
}

func TestFailDatos_ExplicitNull(t *testing.T) {
	w := record(func(c *gin.Context) {
		FailDatos(c, http.StatusBadRequest, "faltan datos")
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"estado":0,"mensaje":"faltan datos","datos":null}`, w.Body.String())
}

func TestFail_NoPayloadField(t *testing.T) {
	w := record(func(c *gin.Context) {
		Fail(c, http.StatusInternalServerError, "error")
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"estado":0,"mensaje":"error"}`, w.Body.String())
}
