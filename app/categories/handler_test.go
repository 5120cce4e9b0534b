package categories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/product-catalog/catalog-api/models"
)

// --- Mock Service ---

type MockCategoryService struct {
	Categories []CategoryResponse
	Err        error

	LastID      uint
	LastRequest *CategoryRequest
	Deleted     []uint
}

func (m *MockCategoryService) CreateCategory(_ context.Context, req *CategoryRequest) (*CategoryResponse, error) {
	m.LastRequest = req
	if m.Err != nil {
		return nil, m.Err
	}
	return &CategoryResponse{ID: 1, Name: req.Name}, nil
}

func (m *MockCategoryService) GetAllCategories(context.Context) ([]CategoryResponse, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories, nil
}

func (m *MockCategoryService) GetCategoryByID(_ context.Context, id uint) (CategoryResponse, bool, error) {
	m.LastID = id
	if m.Err != nil {
		return CategoryResponse{}, false, m.Err
	}
	for _, c := range m.Categories {
		if c.ID == id {
			return c, true, nil
		}
	}
	return CategoryResponse{}, false, nil
}

func (m *MockCategoryService) UpdateCategory(_ context.Context, id uint, req *CategoryRequest) (*CategoryResponse, error) {
	m.LastID = id
	m.LastRequest = req
	if m.Err != nil {
		return nil, m.Err
	}
	return &CategoryResponse{ID: id, Name: req.Name}, nil
}

func (m *MockCategoryService) DeleteCategory(_ context.Context, id uint) error {
	m.LastID = id
	if m.Err != nil {
		return m.Err
	}
	m.Deleted = append(m.Deleted, id)
	return nil
}

func serve(svc CategoryProvider, method, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Route("/categories", NewCategoryHandler(svc, zap.NewNop()).Routes)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var errResp map[string]any
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	msg, _ := errResp["error"].(string)
	return msg
}

// --- Tests: GET /categories ---

func TestHandleGetAll(t *testing.T) {
	testCases := []struct {
		name               string
		mockSetup          func() *MockCategoryService
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Success with multiple categories",
			mockSetup: func() *MockCategoryService {
				return &MockCategoryService{
					Categories: []CategoryResponse{
						{ID: 1, Name: "Clothing"},
						{ID: 2, Name: "Shoes"},
					},
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []CategoryResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 2)
				assert.Equal(t, uint(1), resp[0].ID)
				assert.Equal(t, "Shoes", resp[1].Name)
			},
		},
		{
			name: "Success with empty list",
			mockSetup: func() *MockCategoryService {
				return &MockCategoryService{Categories: []CategoryResponse{}}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `[]`, rec.Body.String())
			},
		},
		{
			name: "Service error",
			mockSetup: func() *MockCategoryService {
				return &MockCategoryService{Err: errors.New("db down")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "internal server error", decodeError(t, rec))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(tc.mockSetup(), http.MethodGet, "/categories", "")

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

// --- Tests: GET /categories/{id} ---

func TestHandleGet(t *testing.T) {
	testCases := []struct {
		name               string
		target             string
		mockSetup          func() *MockCategoryService
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:   "Found",
			target: "/categories/2",
			mockSetup: func() *MockCategoryService {
				return &MockCategoryService{Categories: []CategoryResponse{{ID: 2, Name: "Shoes"}}}
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"id":2,"name":"Shoes"}`,
		},
		{
			name:               "Not found",
			target:             "/categories/9",
			mockSetup:          func() *MockCategoryService { return &MockCategoryService{} },
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       `{"error":"Category not found"}`,
		},
		{
			name:               "Non numeric id",
			target:             "/categories/abc",
			mockSetup:          func() *MockCategoryService { return &MockCategoryService{} },
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Zero id",
			target:             "/categories/0",
			mockSetup:          func() *MockCategoryService { return &MockCategoryService{} },
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(tc.mockSetup(), http.MethodGet, tc.target, "")

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rec.Body.String())
			}
		})
	}
}

// --- Tests: POST /categories ---

func TestHandleCreate(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		mockSetup          func() *MockCategoryService
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkServiceCall   func(t *testing.T, svc *MockCategoryService)
	}{
		{
			name:               "Success",
			requestBody:        `{"name":"Accessories"}`,
			mockSetup:          func() *MockCategoryService { return &MockCategoryService{} },
			expectedStatusCode: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"id":1,"name":"Accessories"}`, rec.Body.String())
			},
			checkServiceCall: func(t *testing.T, svc *MockCategoryService) {
				assert.NotNil(t, svc.LastRequest)
				assert.Equal(t, "Accessories", svc.LastRequest.Name)
			},
		},
		{
			name:               "Invalid JSON body",
			requestBody:        `{invalid json`,
			mockSetup:          func() *MockCategoryService { return &MockCategoryService{} },
			expectedStatusCode: http.StatusBadRequest,
			checkServiceCall: func(t *testing.T, svc *MockCategoryService) {
				assert.Nil(t, svc.LastRequest, "CreateCategory should not be called with invalid JSON")
			},
		},
		{
			name:               "Missing name",
			requestBody:        `{}`,
			mockSetup:          func() *MockCategoryService { return &MockCategoryService{} },
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"error":"validation failed","fields":{"name":"name is required"}}`, rec.Body.String())
			},
			checkServiceCall: func(t *testing.T, svc *MockCategoryService) {
				assert.Nil(t, svc.LastRequest, "CreateCategory should not be called with missing fields")
			},
		},
		{
			name:               "Blank name",
			requestBody:        `{"name":"   "}`,
			mockSetup:          func() *MockCategoryService { return &MockCategoryService{} },
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"error":"validation failed","fields":{"name":"name must not be blank"}}`, rec.Body.String())
			},
			checkServiceCall: func(t *testing.T, svc *MockCategoryService) {
				assert.Nil(t, svc.LastRequest, "CreateCategory should not be called with a blank name")
			},
		},
		{
			name:               "Name too short",
			requestBody:        `{"name":"A"}`,
			mockSetup:          func() *MockCategoryService { return &MockCategoryService{} },
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "Duplicate name",
			requestBody: `{"name":"Toys"}`,
			mockSetup: func() *MockCategoryService {
				return &MockCategoryService{Err: models.ErrDuplicateCategoryName}
			},
			expectedStatusCode: http.StatusConflict,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "category name already exists", decodeError(t, rec))
			},
		},
		{
			name:        "Service error on create",
			requestBody: `{"name":"Toys"}`,
			mockSetup: func() *MockCategoryService {
				return &MockCategoryService{Err: errors.New("insert failed")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "internal server error", decodeError(t, rec))
			},
			checkServiceCall: func(t *testing.T, svc *MockCategoryService) {
				assert.NotNil(t, svc.LastRequest, "CreateCategory should have been called")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := tc.mockSetup()

			rec := serve(svc, http.MethodPost, "/categories", tc.requestBody)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
			if tc.checkServiceCall != nil {
				tc.checkServiceCall(t, svc)
			}
		})
	}
}

// --- Tests: PUT /categories/{id} ---

func TestHandleUpdate(t *testing.T) {
	testCases := []struct {
		name               string
		target             string
		requestBody        string
		serviceErr         error
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "Success",
			target:             "/categories/3",
			requestBody:        `{"name":"Comics"}`,
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"id":3,"name":"Comics"}`,
		},
		{
			name:               "Unknown category",
			target:             "/categories/3",
			requestBody:        `{"name":"Comics"}`,
			serviceErr:         models.CategoryNotFound(3),
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       `{"error":"category not found with id: 3"}`,
		},
		{
			name:               "Invalid id",
			target:             "/categories/-1",
			requestBody:        `{"name":"Comics"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Validation failure",
			target:             "/categories/3",
			requestBody:        `{"name":""}`,
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &MockCategoryService{Err: tc.serviceErr}

			rec := serve(svc, http.MethodPut, tc.target, tc.requestBody)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rec.Body.String())
			}
		})
	}
}

// --- Tests: DELETE /categories/{id} ---

func TestHandleDelete(t *testing.T) {
	testCases := []struct {
		name               string
		serviceErr         error
		expectedStatusCode int
		expectedDeleted    []uint
	}{
		{
			name:               "Success",
			expectedStatusCode: http.StatusNoContent,
			expectedDeleted:    []uint{5},
		},
		{
			name:               "Unknown category",
			serviceErr:         models.CategoryNotFound(5),
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "Category still has products",
			serviceErr:         models.ErrCategoryInUse,
			expectedStatusCode: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &MockCategoryService{Err: tc.serviceErr}

			rec := serve(svc, http.MethodDelete, "/categories/5", "")

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.Equal(t, uint(5), svc.LastID)
			assert.Equal(t, tc.expectedDeleted, svc.Deleted)
			if tc.expectedStatusCode == http.StatusNoContent {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}
