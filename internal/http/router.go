package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/working2003/breedingo/internal/http/handlers"
)

// BuildRouter assembles the HTTP surface. /login is open; everything under
// /user, /cattle and /pregEasy requires a bearer token.
func BuildRouter(
	ah *handlers.AuthHandlers,
	uh *handlers.UserHandlers,
	lh *handlers.ListingHandlers,
	bh *handlers.BreedingHandlers,
	authMW gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "Welcome to Breedingo App Service") })
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "Healthy") })

	login := r.Group("/login")
	login.POST("", ah.Login)
	login.POST("/verify", ah.Verify)

	user := r.Group("/user").Use(authMW)
	user.GET("", uh.Me)
	user.POST("/register", uh.Register)
	user.PUT("/update", uh.Update)
	user.POST("/getContact", uh.GetContact)
	user.GET("/transactions", uh.Transactions)
	user.GET("/cattle/sell", lh.Mine)

	cattle := r.Group("/cattle").Use(authMW)
	cattle.GET("/sell", lh.List)
	cattle.GET("/sell/save", lh.Saved)
	cattle.POST("/sell/save", lh.Save)
	cattle.DELETE("/sell/save/:cattleSellId", lh.Unsave)
	cattle.GET("/sell/:id", lh.Get)
	cattle.POST("/sell", lh.Create)
	cattle.DELETE("/sell/:cattleId", lh.Delete)

	preg := r.Group("/pregEasy").Use(authMW)
	preg.POST("/add", bh.Add)
	preg.GET("/getAll", bh.GetAll)

	return r
}
