package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"travelsuite.app/api/internal/http/handler"
	"travelsuite.app/api/internal/model"
	"travelsuite.app/api/internal/service"
)

var _ = Describe("UserHandler", func() {
	var (
		router *gin.Engine
		svc    *mockUserService
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockUserService{}
		h := handler.NewUserHandler(svc)
		router.GET("/v1/user/me", asUser(3), h.Get)
		router.PUT("/v1/user/me", asUser(3), h.Update)
		router.PUT("/v1/user/me/password", asUser(3), h.ChangePassword)
		router.GET("/unauthenticated", h.Get)
	})

	It("returns the caller's profile", func() {
		orgID := int64(55)
		svc.getFn = func(_ context.Context, userID int64) (*model.User, error) {
			return &model.User{ID: userID, Email: "a@x.com", OrganizationID: &orgID}, nil
		}

		w := doJSON(router, http.MethodGet, "/v1/user/me", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(string(decodeEnvelope(w).Data)).To(ContainSubstring(`"organizationId":"55"`))
	})

	It("refuses requests that bypassed authentication", func() {
		w := doJSON(router, http.MethodGet, "/unauthenticated", nil)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("updates the profile", func() {
		svc.updateProfileFn = func(_ context.Context, userID int64, input service.ProfileInput) (*model.User, error) {
			Expect(userID).To(Equal(int64(3)))
			Expect(input.Phone).To(Equal("555"))
			return &model.User{ID: userID, Email: input.Email, Phone: &input.Phone}, nil
		}

		w := doJSON(router, http.MethodPut, "/v1/user/me", map[string]string{
			"email":     "a@x.com",
			"firstName": "Ada",
			"lastName":  "Lovelace",
			"phone":     "555",
		})

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("requires every profile field", func() {
		w := doJSON(router, http.MethodPut, "/v1/user/me", map[string]string{
			"email":     "a@x.com",
			"firstName": "Ada",
		})

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 401 when the current password is wrong", func() {
		svc.changePasswordFn = func(context.Context, int64, string, string) error {
			return service.ErrAuthFailed
		}

		w := doJSON(router, http.MethodPut, "/v1/user/me/password", map[string]string{
			"currentPassword": "nope",
			"newPassword":     "pw2",
		})

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("acknowledges a password change without data", func() {
		w := doJSON(router, http.MethodPut, "/v1/user/me/password", map[string]string{
			"currentPassword": "pw1",
			"newPassword":     "pw2",
		})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).NotTo(ContainSubstring(`"data"`))
	})
})
