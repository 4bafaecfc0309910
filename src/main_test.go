package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gobhraman/src/admin"
	"gobhraman/src/db"
	"gobhraman/src/middlewares"
	"gobhraman/src/types"

	"github.com/golang-jwt/jwt/v5"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}
	return gormDB, mock
}

type TestSuite struct {
	suite.Suite
	DB   *gorm.DB
	Mock sqlmock.Sqlmock
}

func (s *TestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("traveldate", travelDateValidatorFunc)
	}

	d, mock := NewMockDB()
	db.NewDB(d)
	s.DB = d
	s.Mock = mock
	// admin LoadAll issues its two queries concurrently
	s.Mock.MatchExpectationsInOrder(false)
}

func asAdmin(ctx *gin.Context) {
	ctx.Set("id", "admin-1")
	ctx.Set("email", "admin@example.com")
	ctx.Set("role", "admin")
}

func asUser(ctx *gin.Context) {
	ctx.Set("id", "user-1")
	ctx.Set("email", "someone@example.com")
	ctx.Set("role", "user")
}

func (s *TestSuite) TestListTrips() {
	router := setupRouter()
	publicRoutes(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/trips", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
	rbytes, err := io.ReadAll(w.Body)
	assert.Nil(s.T(), err)
	sjson := string(rbytes)
	assert.Equal(s.T(), int64(7), gjson.Get(sjson, "data.#").Int())
	assert.Equal(s.T(), "malvan-bhraman-001", gjson.Get(sjson, "data.0.trip_id").String())
}

func (s *TestSuite) TestTripDetail() {
	router := setupRouter()
	publicRoutes(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/trips/malvan-bhraman-001", nil)
	router.ServeHTTP(w, req)
	assert.Equal(s.T(), 200, w.Code)

	rbytes, _ := io.ReadAll(w.Body)
	sjson := string(rbytes)
	assert.Equal(s.T(), "Malvan Escape — Bhraman", gjson.Get(sjson, "data.trip_name").String())
	assert.Equal(s.T(), int64(6399), gjson.Get(sjson, "data.price.from_pune").Int())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/trips/no-such-trip", nil)
	router.ServeHTTP(w, req)
	assert.Equal(s.T(), 404, w.Code)
}

func (s *TestSuite) TestQuote() {
	router := setupRouter()
	publicRoutes(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/trips/malvan-bhraman-001/quote?pickup=pune&travelers=2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	sjson := string(rbytes)
	assert.Equal(s.T(), int64(6399), gjson.Get(sjson, "data.unit_price").Int())
	assert.Equal(s.T(), int64(12798), gjson.Get(sjson, "data.total").Int())
	assert.Equal(s.T(), int64(4000), gjson.Get(sjson, "data.advance").Int())
	assert.Equal(s.T(), int64(8798), gjson.Get(sjson, "data.balance").Int())

	s.Run("Should reject out-of-range travelers", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/trips/malvan-bhraman-001/quote?travelers=11", nil)
		router.ServeHTTP(w, req)
		assert.Equal(s.T(), 400, w.Code)
	})
}

func (s *TestSuite) TestCreateBooking() {
	router := setupRouter()
	publicRoutes(router)

	s.Run("Should reject zero travelers with 400", func() {
		jbody := map[string]any{
			"trip_id":   "malvan-bhraman-001",
			"full_name": "Priya Sharma",
			"email":     "priya@example.com",
			"phone":     "9876543210",
			"travelers": 0,
		}
		sbody, _ := json.Marshal(&jbody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.NotEmpty(s.T(), gjson.Get(string(rbytes), "error").String())
	})

	s.Run("Should return 404 for unknown trip", func() {
		jbody := map[string]any{
			"trip_id":   "no-such-trip",
			"full_name": "Priya Sharma",
			"email":     "priya@example.com",
			"phone":     "9876543210",
			"travelers": 2,
		}
		sbody, _ := json.Marshal(&jbody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 404, w.Code)
	})

	s.Run("Should persist a valid booking with 201", func() {
		s.Mock.ExpectBegin()
		s.Mock.ExpectExec(`INSERT INTO "bookings"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		s.Mock.ExpectCommit()

		jbody := map[string]any{
			"trip_id":   "malvan-bhraman-001",
			"full_name": "Priya Sharma",
			"email":     "priya@example.com",
			"phone":     "9876543210",
			"travelers": 2,
			"pickup":    "pune",
		}
		sbody, _ := json.Marshal(&jbody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 201, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		sjson := string(rbytes)
		assert.Equal(s.T(), int64(12798), gjson.Get(sjson, "data.amount").Int())
		assert.Equal(s.T(), "pending", gjson.Get(sjson, "data.status").String())
		assert.Equal(s.T(), int64(4000), gjson.Get(sjson, "advance").Int())
		assert.True(s.T(), strings.HasPrefix(gjson.Get(sjson, "upi_deeplink").String(), "upi://pay?"))
	})

	s.Run("Should surface a failed insert as 422", func() {
		s.Mock.ExpectBegin()
		s.Mock.ExpectExec(`INSERT INTO "bookings"`).
			WillReturnError(fmt.Errorf("connection reset"))
		s.Mock.ExpectRollback()

		jbody := map[string]any{
			"trip_id":   "ratnagiri-beaches-003",
			"full_name": "Rahul Desai",
			"email":     "rahul@example.com",
			"phone":     "9123456780",
			"travelers": 1,
		}
		sbody, _ := json.Marshal(&jbody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 422, w.Code)
	})
}

func (s *TestSuite) TestAdminRoutesRequireAdminRole() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	apiv1.Use(asUser, middlewares.AdminMiddleware)
	adminHandlers(apiv1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/admin/bookings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 403, w.Code)
}

func (s *TestSuite) TestAdminBookings() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	apiv1.Use(asAdmin, middlewares.AdminMiddleware)
	adminHandlers(apiv1)

	s.Mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE .+ ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_name", "full_name", "email", "phone", "num_travelers", "amount", "status"}).
			AddRow("b1", "Malvan Escape — Bhraman", "Priya Sharma", "priya@example.com", "9876543210", 2, 12798, "pending").
			AddRow("b2", "Ratnagiri Beaches & Sunset Forts", "Rahul Desai", "rahul@example.com", "9123456780", 1, 9999, "confirmed"))
	s.Mock.ExpectQuery(`SELECT \* FROM "interested_users" WHERE .+ ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "mobile", "trip_name", "status"}))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/admin/bookings?search=priya", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	sjson := string(rbytes)
	assert.Equal(s.T(), int64(1), gjson.Get(sjson, "count").Int())
	assert.Equal(s.T(), "Priya Sharma", gjson.Get(sjson, "data.0.full_name").String())
}

type failingPresigner struct{}

func (failingPresigner) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return "", errors.New("denied")
}

func (s *TestSuite) TestAdminBookingDetailDegradesOnPresignFailure() {
	prev := reconService
	reconService = func() *admin.Service {
		return admin.NewService(db.GetDb(), failingPresigner{})
	}
	defer func() { reconService = prev }()

	s.Mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "trip_name", "full_name", "num_travelers", "amount", "status", "payment_screenshot_key"}).
			AddRow("b1", "malvan-bhraman-001", "Malvan Escape — Bhraman", "Priya Sharma", 2, 12798, "confirmed", "screenshots/b1/shot.jpeg"))

	router := setupRouter()
	apiv1 := apiv1Group(router)
	apiv1.Use(asAdmin, middlewares.AdminMiddleware)
	adminHandlers(apiv1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/admin/bookings/b1", nil)
	router.ServeHTTP(w, req)

	// the detail view still renders; only the screenshot link degrades
	assert.Equal(s.T(), 200, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	sjson := string(rbytes)
	assert.Equal(s.T(), "Priya Sharma", gjson.Get(sjson, "data.full_name").String())
	url := gjson.Get(sjson, "screenshot_url")
	assert.True(s.T(), url.Exists())
	assert.Equal(s.T(), gjson.Null, url.Type)
	assert.Equal(s.T(), "cannot load", gjson.Get(sjson, "screenshot_error").String())
}

func (s *TestSuite) TestBookingQRForRetiredTrip() {
	s.Mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "trip_name", "num_travelers", "amount", "status"}).
			AddRow("b9", "retired-trip-099", "Retired Trip", 2, 9999, "pending"))

	router := setupRouter()
	publicRoutes(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/bookings/b9/qr", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 422, w.Code)
}

func (s *TestSuite) TestAdminUpdateBookingStatusValidation() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	apiv1.Use(asAdmin, middlewares.AdminMiddleware)
	adminHandlers(apiv1)

	// pending is not a reachable transition target
	jbody := types.UpdateBookingStatusRequestBody{Status: types.BOOKING_PENDING}
	sbody, _ := json.Marshal(&jbody)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/v1/admin/bookings/b1/status", strings.NewReader(string(sbody)))
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 422, w.Code)
}

func (s *TestSuite) TestAuthMiddlewareRejectsMissingToken() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	apiv1.Use(middlewares.AuthMiddleware)
	myBookingHandlers(apiv1)

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic dXNlcg==", "Bearer not-a-jwt"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/my/bookings", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 401, w.Code, "header %q", header)
	}
}

func (s *TestSuite) TestAuthMiddlewareResolvesUser() {
	s.T().Setenv("JWT_SECRET", "test-secret")

	claims := types.Claims{
		Email: "someone@example.com",
		Role:  "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.Nil(s.T(), err)

	s.Mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role"}).
			AddRow("user-1", "Test User", "someone@example.com", "user"))
	s.Mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	router := setupRouter()
	apiv1 := apiv1Group(router)
	apiv1.Use(middlewares.AuthMiddleware)
	myBookingHandlers(apiv1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/my/bookings", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", signed))
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	assert.Equal(s.T(), int64(0), gjson.Get(string(rbytes), "count").Int())
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
