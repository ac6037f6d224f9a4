package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"foodbridge/internal/config"
	"foodbridge/internal/models"
	"foodbridge/internal/repository"
	"foodbridge/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer builds a Server over an in-memory database with real
// repositories and services, suitable for exercising handlers end to end.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Donation{},
		&models.PickupRequest{},
	))

	s := &Server{
		config:       &config.Config{JWTSecret: "test_secret_test_secret_test_1234"},
		db:           db,
		userRepo:     repository.NewUserRepository(db),
		donationRepo: repository.NewDonationRepository(db),
		requestRepo:  repository.NewRequestRepository(db),
	}
	s.donationService = service.NewDonationService(
		s.donationRepo, s.requestRepo, service.NopPublisher{})
	s.requestService = service.NewRequestService(
		s.requestRepo, s.donationRepo, service.NopPublisher{})
	return s
}

// authAs fakes the auth middleware by injecting the user ID directly.
func authAs(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}

func seedUser(t *testing.T, s *Server, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, s.db.Create(user).Error)
	return user
}

func seedDonation(t *testing.T, s *Server, donorID uint, status models.DonationStatus) *models.Donation {
	t.Helper()
	donation := &models.Donation{
		FoodType:       "Cooked meals",
		Quantity:       "20 portions",
		Description:    "Leftover catering from an office event",
		ExpiryDate:     time.Now().Add(24 * time.Hour),
		PickupLocation: "3 Office Park",
		Status:         status,
		DonorID:        donorID,
	}
	require.NoError(t, s.db.Create(donation).Error)
	return donation
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// --- parsePagination ---

func TestParsePagination_Defaults(t *testing.T) {
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		p := parsePagination(c, 50)
		return c.JSON(fiber.Map{"limit": p.Limit, "offset": p.Offset})
	})

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var body map[string]float64
	decodeBody(t, resp, &body)

	assert.Equal(t, float64(50), body["limit"])
	assert.Equal(t, float64(0), body["offset"])
}

func TestParsePagination_Custom(t *testing.T) {
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		p := parsePagination(c, 50)
		return c.JSON(fiber.Map{"limit": p.Limit, "offset": p.Offset})
	})

	req := httptest.NewRequest(http.MethodGet, "/items?limit=10&offset=30", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var body map[string]float64
	decodeBody(t, resp, &body)

	assert.Equal(t, float64(10), body["limit"])
	assert.Equal(t, float64(30), body["offset"])
}

func TestParsePagination_ClampsExcessiveLimit(t *testing.T) {
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		p := parsePagination(c, 50)
		return c.JSON(fiber.Map{"limit": p.Limit})
	})

	req := httptest.NewRequest(http.MethodGet, "/items?limit=5000", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var body map[string]float64
	decodeBody(t, resp, &body)

	assert.Equal(t, float64(maxPaginationLimit), body["limit"])
}

func TestParsePagination_NegativeValues(t *testing.T) {
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		p := parsePagination(c, 50)
		return c.JSON(fiber.Map{"limit": p.Limit, "offset": p.Offset})
	})

	req := httptest.NewRequest(http.MethodGet, "/items?limit=-1&offset=-5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var body map[string]float64
	decodeBody(t, resp, &body)

	assert.Equal(t, float64(50), body["limit"])
	assert.Equal(t, float64(0), body["offset"])
}

// --- parseID ---

func TestParseID_Valid(t *testing.T) {
	app := fiber.New()
	s := &Server{}
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		id, err := s.parseID(c, "id")
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"id": id})
	})

	req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestParseID_Invalid(t *testing.T) {
	app := fiber.New()
	s := &Server{}
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		_, _ = s.parseID(c, "id")
		return nil
	})

	for _, path := range []string{"/items/abc", "/items/0", "/items/-3"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		_ = resp.Body.Close()
	}
}

// --- respondServiceError ---

func TestRespondServiceError_Mapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"validation", models.NewValidationError("bad input"), http.StatusBadRequest},
		{"unauthorized", models.NewUnauthorizedError("no token"), http.StatusUnauthorized},
		{"forbidden", models.NewForbiddenError("not yours"), http.StatusForbidden},
		{"not found", models.NewNotFoundError("Donation", 42), http.StatusNotFound},
		{"conflict", models.NewConflictError("already claimed"), http.StatusConflict},
		{"plain error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/fail", func(c *fiber.Ctx) error {
				return respondServiceError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/fail", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}
