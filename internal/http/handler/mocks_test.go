package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"

	"travelsuite.app/api/internal/auth"
	"travelsuite.app/api/internal/http/middleware"
	"travelsuite.app/api/internal/model"
	"travelsuite.app/api/internal/service"
)

type mockAuthService struct {
	signupFn      func(ctx context.Context, input service.SignupInput) (*model.User, error)
	signinFn      func(ctx context.Context, email, password string) (auth.Token, error)
	currentUserFn func(ctx context.Context, userID int64) (*model.User, error)
}

func (m *mockAuthService) Signup(ctx context.Context, input service.SignupInput) (*model.User, error) {
	if m.signupFn != nil {
		return m.signupFn(ctx, input)
	}
	return nil, nil
}

func (m *mockAuthService) Signin(ctx context.Context, email, password string) (auth.Token, error) {
	if m.signinFn != nil {
		return m.signinFn(ctx, email, password)
	}
	return auth.Token{}, nil
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	if m.currentUserFn != nil {
		return m.currentUserFn(ctx, userID)
	}
	return nil, nil
}

type mockUserService struct {
	getFn            func(ctx context.Context, userID int64) (*model.User, error)
	updateProfileFn  func(ctx context.Context, userID int64, input service.ProfileInput) (*model.User, error)
	changePasswordFn func(ctx context.Context, userID int64, current, next string) error
}

func (m *mockUserService) Get(ctx context.Context, userID int64) (*model.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID int64, input service.ProfileInput) (*model.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, input)
	}
	return nil, nil
}

func (m *mockUserService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	if m.changePasswordFn != nil {
		return m.changePasswordFn(ctx, userID, current, next)
	}
	return nil
}

type mockOrganizationService struct {
	getForUserFn func(ctx context.Context, userID int64) (*model.Organization, error)
	createFn     func(ctx context.Context, userID int64, input service.OrganizationInput) (*model.Organization, error)
	updateFn     func(ctx context.Context, userID int64, input service.OrganizationInput) (*model.Organization, error)
}

func (m *mockOrganizationService) GetForUser(ctx context.Context, userID int64) (*model.Organization, error) {
	if m.getForUserFn != nil {
		return m.getForUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockOrganizationService) Create(ctx context.Context, userID int64, input service.OrganizationInput) (*model.Organization, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, input)
	}
	return nil, nil
}

func (m *mockOrganizationService) Update(ctx context.Context, userID int64, input service.OrganizationInput) (*model.Organization, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, input)
	}
	return nil, nil
}

type mockTourService struct {
	createFn func(ctx context.Context, userID int64, tourID string, data json.RawMessage) (*model.Tour, error)
	getFn    func(ctx context.Context, userID int64, tourID string) (*model.Tour, error)
	updateFn func(ctx context.Context, userID int64, tourID string, data json.RawMessage) (*model.Tour, error)
	deleteFn func(ctx context.Context, userID int64, tourID string) error
	listFn   func(ctx context.Context, userID int64) ([]model.Tour, error)
}

func (m *mockTourService) Create(ctx context.Context, userID int64, tourID string, data json.RawMessage) (*model.Tour, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, tourID, data)
	}
	return nil, nil
}

func (m *mockTourService) Get(ctx context.Context, userID int64, tourID string) (*model.Tour, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, tourID)
	}
	return nil, nil
}

func (m *mockTourService) Update(ctx context.Context, userID int64, tourID string, data json.RawMessage) (*model.Tour, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, tourID, data)
	}
	return nil, nil
}

func (m *mockTourService) Delete(ctx context.Context, userID int64, tourID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, tourID)
	}
	return nil
}

func (m *mockTourService) List(ctx context.Context, userID int64) ([]model.Tour, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

// asUser stands in for RequireAuth by placing userID on the request context.
func asUser(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(middleware.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		Expect(err).NotTo(HaveOccurred())
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(w *httptest.ResponseRecorder) envelope {
	var env envelope
	Expect(json.Unmarshal(w.Body.Bytes(), &env)).To(Succeed())
	return env
}

func strPtr(s string) *string {
	return &s
}
