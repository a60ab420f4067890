package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/go-nextapp/assets"
)

// SetupAssets configures static asset serving for the Gin router
func SetupAssets(r *gin.Engine) {
	r.StaticFS("/assets", http.FS(assets.Assets))
}
