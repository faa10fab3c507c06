package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope field names follow the wire format of the legacy users service:
// "estado" (1 success, 0 failure), "mensaje", and a payload under "data" on
// read and delete endpoints or "datos" on create and update endpoints. The
// data/datos split is historical; existing clients depend on the exact keys,
// so it is preserved here.

const (
	Exito = 1
	Fallo = 0
)

// Data writes a success envelope with the payload under "data".
func Data(c *gin.Context, status int, mensaje string, payload any) {
	c.JSON(status, gin.H{"estado": Exito, "mensaje": mensaje, "data": payload})
}

// Datos writes a success envelope with the payload under "datos".
func Datos(c *gin.Context, status int, mensaje string, payload any) {
	c.JSON(status, gin.H{"estado": Exito, "mensaje": mensaje, "datos": payload})
}

// Page writes a paginated list envelope. The payload travels under "data"
// together with totalDePaginas and currentPage.
func Page(c *gin.Context, mensaje string, payload any, totalPages, currentPage int) {
	c.JSON(http.StatusOK, gin.H{
		"estado":         Exito,
		"mensaje":        mensaje,
		"data":           payload,
		"totalDePaginas": totalPages,
		"currentPage":    currentPage,
	})
}

// FailData writes a failure envelope with an explicit null "data" field.
func FailData(c *gin.Context, status int, mensaje string) {
	c.JSON(status, gin.H{"estado": Fallo, "mensaje": mensaje, "data": nil})
}

// FailDatos writes a failure envelope with an explicit null "datos" field.
func FailDatos(c *gin.Context, status int, mensaje string) {
	c.JSON(status, gin.H{"estado": Fallo, "mensaje": mensaje, "datos": nil})
}

// Fail writes a bare failure envelope with no payload field, used for
// internal errors where the legacy format carried none.
func Fail(c *gin.Context, status int, mensaje string) {
	c.JSON(status, gin.H{"estado": Fallo, "mensaje": mensaje})
}
