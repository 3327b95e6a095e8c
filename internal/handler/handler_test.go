package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"familytree/backend/internal/auth"
	"familytree/backend/internal/config"
	"familytree/backend/internal/database"
	"familytree/backend/internal/models"
	"familytree/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest wires an in-memory database and a router mirroring the real
// route table. Each test gets its own named shared-cache database so
// gorm's connection pool sees one store.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FamilyMember{},
		&models.FamilyRelationship{},
		&models.FamilyMedia{},
		&models.FamilyRequest{},
	))
	database.DB = db

	router := gin.New()
	apiV1 := router.Group("/api/v1")

	authRoutes := apiV1.Group("/auth")
	authRoutes.POST("/register", RegisterUser)
	authRoutes.POST("/login", LoginUser)

	treeRoutes := apiV1.Group("")
	treeRoutes.Use(auth.OptionalAuthMiddleware())
	treeRoutes.GET("/tree", GetFamilyTree)
	treeRoutes.GET("/timeline", GetTimeline)

	userRoutes := apiV1.Group("/users")
	userRoutes.Use(auth.AuthMiddleware())
	userRoutes.GET("/me", GetMe)

	memberRoutes := apiV1.Group("/members")
	memberRoutes.Use(auth.AuthMiddleware())
	memberRoutes.GET("", SearchMembers)
	memberRoutes.POST("", CreateMember)
	memberRoutes.GET("/:id", GetMemberByID)
	memberRoutes.GET("/:id/media", GetMemberMedia)
	memberRoutes.POST("/:id/media", AddMemberMedia)

	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
	adminRoutes.GET("/requests", ListRequests)
	adminRoutes.POST("/requests/:id/approve", ApproveRequest)
	adminRoutes.POST("/requests/:id/reject", RejectRequest)
	adminRoutes.PUT("/members/:id", UpdateMember)

	return router
}

func createUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, database.DB.Create(&user).Error)

	token, err := jwt.GenerateToken(user.ID)
	require.NoError(t, err)
	return user, token
}

func seedMember(t *testing.T, first, last string, gender models.Gender) models.FamilyMember {
	t.Helper()

	member := models.FamilyMember{
		FirstName: first,
		LastName:  last,
		Gender:    gender,
	}
	require.NoError(t, database.DB.Create(&member).Error)
	return member
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.DB.Model(model).Count(&count).Error)
	return count
}
