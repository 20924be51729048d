package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, diarioHandler *DiarioHandler) {
	server.POST("/api/v1/imports/diario", diarioHandler.ConvertDiario)
}
