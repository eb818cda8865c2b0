package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hotel-api/controllers"
	"hotel-api/models"
	"hotel-api/repository"
	"hotel-api/routes"
	"hotel-api/services"
)

// chdir switches the working directory for the duration of the test,
// restoring the original one on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.RoomImage{}, &models.Transaction{}, &models.Payment{}))

	store := repository.New(db)
	rc := controllers.NewRoomController(services.NewRoomService(store))
	tc := controllers.NewTransactionController(services.NewTransactionService(store))
	return routes.SetupRouter(rc, tc), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

func seedRoom(t *testing.T, db *gorm.DB, number string) *models.Room {
	t.Helper()
	room := &models.Room{RoomNumber: number, Status: models.RoomStatusAvailable, Price: 1200}
	require.NoError(t, db.Create(room).Error)
	return room
}

func TestCreateRoom(t *testing.T) {
	r, db := setupAPI(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/rooms", gin.H{
		"room_number": "301",
		"status":      "available",
		"price":       "1500.50",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "Successfully created a new room", env.Message)

	var created models.Room
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "301", created.RoomNumber)
	assert.Equal(t, 1500.50, created.Price)

	var count int64
	require.NoError(t, db.Model(&models.Room{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateRoom_ValidationFailures(t *testing.T) {
	r, db := setupAPI(t)
	seedRoom(t, db, "101")

	t.Run("missing fields", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/api/rooms", gin.H{})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "errors", env.Status)

		var fieldErrs map[string]string
		require.NoError(t, json.Unmarshal(env.Errors, &fieldErrs))
		assert.Contains(t, fieldErrs, "room_number")
		assert.Contains(t, fieldErrs, "status")
		assert.Contains(t, fieldErrs, "price")
	})

	t.Run("invalid status", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/api/rooms", gin.H{
			"room_number": "102",
			"status":      "maintenance",
			"price":       "900",
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var fieldErrs map[string]string
		require.NoError(t, json.Unmarshal(env.Errors, &fieldErrs))
		assert.Equal(t, "The selected status is invalid.", fieldErrs["status"])
	})

	t.Run("non-numeric price", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/api/rooms", gin.H{
			"room_number": "102",
			"status":      "available",
			"price":       "cheap",
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var fieldErrs map[string]string
		require.NoError(t, json.Unmarshal(env.Errors, &fieldErrs))
		assert.Equal(t, "The price field must be a number.", fieldErrs["price"])
	})

	t.Run("duplicate room number", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/api/rooms", gin.H{
			"room_number": "101",
			"status":      "available",
			"price":       "900",
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var fieldErrs map[string]string
		require.NoError(t, json.Unmarshal(env.Errors, &fieldErrs))
		assert.Equal(t, "The room_number has already been taken.", fieldErrs["room_number"])

		var count int64
		require.NoError(t, db.Model(&models.Room{}).Count(&count).Error)
		assert.EqualValues(t, 1, count, "no row may be created on validation failure")
	})
}

func TestCreateRoom_WithImages(t *testing.T) {
	r, db := setupAPI(t)
	chdir(t, t.TempDir())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("room_number", "401"))
	require.NoError(t, mw.WriteField("status", "available"))
	require.NoError(t, mw.WriteField("price", "2000"))

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="images[]"; filename="front view.png"`)
	h.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\nfake image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/rooms", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	var created models.Room
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Len(t, created.Images, 1)
	assert.Equal(t, "rooms/front-view.png", created.Images[0].Image)

	// file landed under the uploads dir
	_, err = os.Stat(filepath.Join("uploads", "rooms", "front-view.png"))
	assert.NoError(t, err)

	var imgCount int64
	require.NoError(t, db.Model(&models.RoomImage{}).Where("room_id = ?", created.ID).Count(&imgCount).Error)
	assert.EqualValues(t, 1, imgCount)
}

func TestCreateRoom_RejectsBadImage(t *testing.T) {
	r, db := setupAPI(t)
	chdir(t, t.TempDir())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("room_number", "402"))
	require.NoError(t, mw.WriteField("status", "available"))
	require.NoError(t, mw.WriteField("price", "2000"))

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="images[]"; filename="notes.txt"`)
	h.Set("Content-Type", "text/plain")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("not an image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/rooms", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Room{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetRooms(t *testing.T) {
	r, db := setupAPI(t)
	seedRoom(t, db, "101")
	seedRoom(t, db, "102")

	w, env := doJSON(t, r, http.MethodGet, "/api/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", env.Status)
	assert.Equal(t, "Successfully fetched rooms", env.Message)

	var rooms []models.Room
	require.NoError(t, json.Unmarshal(env.Data, &rooms))
	assert.Len(t, rooms, 2)
}

func TestGetRoom(t *testing.T) {
	r, db := setupAPI(t)
	room := seedRoom(t, db, "101")
	require.NoError(t, db.Create(&models.RoomImage{RoomID: room.ID, Image: "rooms/101.jpg"}).Error)

	t.Run("found with images", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/rooms/%d", room.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", env.Status)

		var fetched models.Room
		require.NoError(t, json.Unmarshal(env.Data, &fetched))
		require.Len(t, fetched.Images, 1)
		assert.Equal(t, "rooms/101.jpg", fetched.Images[0].Image)
	})

	t.Run("missing", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodGet, "/api/rooms/999", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "errors", env.Status)
		assert.Equal(t, "Room data not found.", env.Message)
	})
}

func TestUpdateRoom(t *testing.T) {
	r, db := setupAPI(t)
	room := seedRoom(t, db, "101")
	seedRoom(t, db, "102")

	t.Run("keeps own number", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/rooms/%d", room.ID), gin.H{
			"room_number": "101",
			"status":      "occupied",
			"price":       "1800",
		})
		require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
		assert.Equal(t, "success", env.Status)

		var updated models.Room
		require.NoError(t, json.Unmarshal(env.Data, &updated))
		assert.Equal(t, models.RoomStatusOccupied, updated.Status)
		assert.Equal(t, 1800.0, updated.Price)
	})

	t.Run("another room's number is rejected", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/rooms/%d", room.ID), gin.H{
			"room_number": "102",
			"status":      "available",
			"price":       "1200",
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var fieldErrs map[string]string
		require.NoError(t, json.Unmarshal(env.Errors, &fieldErrs))
		assert.Equal(t, "The room_number has already been taken.", fieldErrs["room_number"])
	})

	t.Run("missing room", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPut, "/api/rooms/999", gin.H{
			"room_number": "501",
			"status":      "available",
			"price":       "1200",
		})
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Room data not found.", env.Message)
	})
}

func TestDeleteRoom(t *testing.T) {
	r, db := setupAPI(t)
	room := seedRoom(t, db, "101")

	t.Run("returns last-known data", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/rooms/%d", room.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", env.Status)
		assert.Equal(t, "Successfully deleted a room data", env.Message)

		var deleted models.Room
		require.NoError(t, json.Unmarshal(env.Data, &deleted))
		assert.Equal(t, "101", deleted.RoomNumber)
	})

	t.Run("already gone", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/rooms/%d", room.ID), nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "errors", env.Status)
		assert.Equal(t, "Room data not found.", env.Message)
	})
}

func TestHealth(t *testing.T) {
	r, _ := setupAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `"status":"ok"`))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
