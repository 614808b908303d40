package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-backend/internal/domains/animal"
	"shelter-backend/internal/domains/animal/repository"
	"shelter-backend/internal/domains/animal/service"
	"shelter-backend/internal/infrastructure/storage"
)

const fido57 = `{"name":"Fido57","breed":"Golden Retriever","arrivalDate":"2022-03-23","gender":"MALE","age":5,` +
	`"vaccinated":true,"castrated":false,"wormed":true,"electronicChip":"1234567890","illness":"None",` +
	`"notes":"","isAvailable":true}`

type stubImages struct {
	mu      sync.Mutex
	n       int
	deleted []string
}

func (s *stubImages) SaveImage(_ context.Context, r io.Reader, filename string) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return "http://minio:9000/shelter/animals/" + strconv.Itoa(s.n) + "." + storage.ExtensionFromFilename(filename), nil
}

func (s *stubImages) DeleteImage(_ context.Context, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, url)
}

type listEnvelope struct {
	Data []animal.AnimalDTO `json:"data"`
}

type itemEnvelope struct {
	Data  animal.AnimalDTO `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	images := &stubImages{}
	bg := storage.NewBackgroundDeleter(images, time.Second)
	t.Cleanup(bg.Wait)

	h := NewAnimalHandler(service.NewAnimalService(repository.NewMemoryRepository(), images, bg))

	r := gin.New()
	g := r.Group("/api/animals")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/available", h.ListByAvailability)
	g.GET("/export", h.Export)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

func multipartBody(t *testing.T, data string, imageName string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("data", data))
	if imageName != "" {
		fw, err := mw.CreateFormFile("imageData", imageName)
		require.NoError(t, err)
		_, err = fw.Write([]byte("\x89PNG fake"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func send(r http.Handler, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestCreateAnimal_Fido57(t *testing.T) {
	r := newRouter(t)

	body, ct := multipartBody(t, fido57, "fido.png")
	w := send(r, http.MethodPost, "/api/animals", body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	got := decode[itemEnvelope](t, w).Data
	assert.Equal(t, "Fido57", got.Name)
	assert.Equal(t, 5, got.Age)
	assert.Equal(t, "Golden Retriever", got.Breed)
	assert.True(t, got.IsAvailable)
	assert.NotEmpty(t, got.Code)
	assert.NotEmpty(t, got.ImageURL)
	assert.Equal(t, "2022-03-23", got.ArrivalDate)
	assert.Equal(t, animal.GenderMale, got.Gender)
}

func TestAvailableAnimalsAppearUnchanged(t *testing.T) {
	r := newRouter(t)

	body, ct := multipartBody(t, fido57, "fido.png")
	w := send(r, http.MethodPost, "/api/animals", body, ct)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[itemEnvelope](t, w).Data

	body, ct = multipartBody(t, `{"name":"Shy","isAvailable":false}`, "")
	require.Equal(t, http.StatusCreated, send(r, http.MethodPost, "/api/animals", body, ct).Code)

	w = send(r, http.MethodGet, "/api/animals/available?isAvailable=true", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[listEnvelope](t, w).Data
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])

	w = send(r, http.MethodGet, "/api/animals/available", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAnimal_Partial(t *testing.T) {
	r := newRouter(t)

	body, ct := multipartBody(t, fido57, "fido.png")
	created := decode[itemEnvelope](t, send(r, http.MethodPost, "/api/animals", body, ct)).Data

	body, ct = multipartBody(t, `{"name":"Fido58","age":6}`, "")
	w := send(r, http.MethodPut, "/api/animals/"+strconv.FormatInt(created.ID, 10), body, ct)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated := decode[itemEnvelope](t, w).Data
	assert.Equal(t, "Fido58", updated.Name)
	assert.Equal(t, 6, updated.Age)
	assert.Equal(t, created.Breed, updated.Breed)
	assert.Equal(t, created.Illness, updated.Illness)
	assert.Equal(t, created.Notes, updated.Notes)
	assert.Equal(t, created.ImageURL, updated.ImageURL)

	// PUT JSON thuần cũng được
	w = send(r, http.MethodPut, "/api/animals/"+strconv.FormatInt(created.ID, 10),
		strings.NewReader(`{"hasBeenAdopted":true}`), "application/json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[itemEnvelope](t, w).Data.HasBeenAdopted)
}

func TestDeleteAnimal_ThenNotFound(t *testing.T) {
	r := newRouter(t)

	body, ct := multipartBody(t, fido57, "")
	created := decode[itemEnvelope](t, send(r, http.MethodPost, "/api/animals", body, ct)).Data
	path := "/api/animals/" + strconv.FormatInt(created.ID, 10)

	w := send(r, http.MethodDelete, path, nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = send(r, http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ANIMAL_NOT_FOUND", decode[itemEnvelope](t, w).Error.Code)

	w = send(r, http.MethodDelete, path, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAnimal_ValidationErrors(t *testing.T) {
	r := newRouter(t)

	body, ct := multipartBody(t, `{"age":-1}`, "")
	w := send(r, http.MethodPost, "/api/animals", body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decode[itemEnvelope](t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "name")
	assert.Contains(t, env.Error.Details, "age")
}

func TestCreateAnimal_MissingDataPart(t *testing.T) {
	r := newRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("imageData", "a.png")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("x"))
	require.NoError(t, mw.Close())

	w := send(r, http.MethodPost, "/api/animals", &buf, mw.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ANIMAL_DATA", decode[itemEnvelope](t, w).Error.Code)
}

func TestExportAnimals(t *testing.T) {
	r := newRouter(t)

	w := send(r, http.MethodGet, "/api/animals/export", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "animals.xlsx")
	assert.NotZero(t, w.Body.Len())
}
