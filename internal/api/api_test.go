package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"recipe_api/internal/domain"
	"recipe_api/internal/middleware"
	"recipe_api/internal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	rdb    *redis.Client
}

// setupTestEnv wires the full router against a throwaway sqlite database and
// a miniredis instance, mirroring the route table in cmd/server.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Tag{}, &domain.Ingredient{}, &domain.Recipe{}))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	r := gin.New()
	auth := middleware.JWTAuthMiddleware(testSecret)

	r.POST("/user", RegisterHandler(db))
	r.POST("/user/login", LoginHandler(db, testSecret, time.Hour))
	me := r.Group("/user/me", auth)
	me.GET("", MeHandler(db))
	me.PATCH("", UpdateMeHandler(db))

	recipes := r.Group("/recipes", auth)
	recipes.POST("", CreateRecipeHandler(db, rdb))
	recipes.GET("", ListRecipesHandler(db, rdb))
	recipes.GET("/:id", GetRecipeHandler(db))
	recipes.PATCH("/:id", UpdateRecipeHandler(db, rdb))
	recipes.DELETE("/:id", DeleteRecipeHandler(db, rdb))

	tags := r.Group("/tags", auth)
	tags.GET("", ListTagsHandler(db, rdb))
	tags.PATCH("/:id", UpdateTagHandler(db, rdb))
	tags.DELETE("/:id", DeleteTagHandler(db, rdb))

	ingredients := r.Group("/ingredients", auth)
	ingredients.GET("", ListIngredientsHandler(db, rdb))
	ingredients.PATCH("/:id", UpdateIngredientHandler(db, rdb))
	ingredients.DELETE("/:id", DeleteIngredientHandler(db, rdb))

	admin := r.Group("/admin", auth, middleware.StaffOnlyMiddleware(db))
	admin.GET("/users", ListUsersHandler(db, rdb))

	return &testEnv{router: r, db: db, rdb: rdb}
}

// authUser inserts a user directly and returns it with a valid token
func (e *testEnv) authUser(t *testing.T, email string) (*domain.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("testpass123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{Email: email, Password: string(hash), Name: "Test User"}
	require.NoError(t, e.db.Create(user).Error)
	token, err := utils.GenerateJWT(user.ID, testSecret, time.Hour)
	require.NoError(t, err)
	return user, token
}

// do performs a request against the test router
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
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
	e.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a recorder body into dest
func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}
