package handlers

import (
	"github.com/gin-gonic/gin"

	"idcard/internal/auth"
	"idcard/internal/middleware"
	"idcard/internal/storage"
	"idcard/internal/store"
)

// Handler bundles the dependencies every route handler needs. Everything is
// injected once at startup; there is no global state to look up.
type Handler struct {
	Store  store.EmployeeStore
	Tokens *auth.TokenService
	Photos *storage.PhotoStore
}

func NewHandler(s store.EmployeeStore, tokens *auth.TokenService, photos *storage.PhotoStore) *Handler {
	return &Handler{
		Store:  s,
		Tokens: tokens,
		Photos: photos,
	}
}

// Routes registers every endpoint on the router. The signin/signup naming is
// inherited from the original API: /signin registers, /signup logs in.
func (h *Handler) Routes(r *gin.Engine) {
	r.POST("/signin", h.RegisterEmployee)
	r.POST("/signup", h.Login)

	r.PUT("/update-id-card", middleware.AuthRequired(h.Tokens), h.UpdateIDCard)

	r.GET("/profile/:empNumber", h.GetProfile)
	r.GET("/user/:prno", h.GetEmployee)
	r.GET("/search", h.SearchEmployees)
	r.GET("/api/users", h.ListEmployees)
}
