package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"devconnect/internal/auth"
	"devconnect/internal/config"
	apperrors "devconnect/internal/errors"
	"devconnect/internal/handler"
)

// TokenHeader is the request header carrying the identity token.
const TokenHeader = "x-auth-token"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	postHandler *handler.PostHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// The authorization gate: verifies the x-auth-token header and attaches
	// the parsed claims to the request context. Any failure is a 401.
	gate := echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + TokenHeader,
		ContextKey:  auth.ContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "missing or invalid token",
				Code:  "UNAUTHENTICATED",
			})
		},
	})

	api := e.Group("/api")

	// Users and auth
	api.POST("/users", authHandler.Register)
	api.POST("/auth", authHandler.Login)
	api.GET("/auth", authHandler.Me, gate)

	// Profiles
	profile := api.Group("/profile")
	profile.GET("", profileHandler.List)
	profile.GET("/user/:userId", profileHandler.GetByUser)
	profile.GET("/github/:username", profileHandler.GithubRepos)
	profile.GET("/me", profileHandler.Me, gate)
	profile.POST("", profileHandler.Upsert, gate)
	profile.DELETE("", profileHandler.DeleteAccount, gate)
	profile.PUT("/experience", profileHandler.AddExperience, gate)
	profile.DELETE("/experience/:expId", profileHandler.RemoveExperience, gate)
	profile.PUT("/education", profileHandler.AddEducation, gate)
	profile.DELETE("/education/:eduId", profileHandler.RemoveEducation, gate)

	// Posts
	posts := api.Group("/posts", gate)
	posts.POST("", postHandler.Create)
	posts.GET("", postHandler.List)
	posts.GET("/:postId", postHandler.Get)
	posts.DELETE("/:postId", postHandler.Delete)
	posts.PUT("/like/:postId", postHandler.Like)
	posts.PUT("/unlike/:postId", postHandler.Unlike)
	posts.POST("/comment/:postId", postHandler.AddComment)
	posts.DELETE("/comment/:postId/:commentId", postHandler.RemoveComment)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
