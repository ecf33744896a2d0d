package auth_test

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"travelsuite.app/api/internal/auth"
)

var _ = Describe("TokenManager", func() {
	const secret = "test-secret-that-is-long-enough-for-hs256"

	var (
		now     time.Time
		clock   func() time.Time
		manager *auth.TokenManager
	)

	BeforeEach(func() {
		now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		clock = func() time.Time { return now }

		var err error
		manager, err = auth.NewTokenManager(secret, "travelsuite", time.Hour, auth.WithClock(clock))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("NewTokenManager", func() {
		It("rejects an empty secret", func() {
			_, err := auth.NewTokenManager("", "travelsuite", time.Hour)
			Expect(err).To(HaveOccurred())
		})

		It("rejects a non-positive ttl", func() {
			_, err := auth.NewTokenManager(secret, "travelsuite", 0)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Issue", func() {
		It("returns a token expiring after the ttl", func() {
			token, err := manager.Issue(42)

			Expect(err).NotTo(HaveOccurred())
			Expect(token.Value).NotTo(BeEmpty())
			Expect(token.ExpiresAt).To(Equal(now.Add(time.Hour)))
		})

		It("refuses non-positive user ids", func() {
			_, err := manager.Issue(0)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Verify", func() {
		It("accepts a token until it expires", func() {
			token, err := manager.Issue(42)
			Expect(err).NotTo(HaveOccurred())

			now = now.Add(59 * time.Minute)
			userID, err := manager.Verify(token.Value)

			Expect(err).NotTo(HaveOccurred())
			Expect(userID).To(Equal(int64(42)))
		})

		It("rejects an expired token", func() {
			token, err := manager.Issue(42)
			Expect(err).NotTo(HaveOccurred())

			now = now.Add(61 * time.Minute)
			_, err = manager.Verify(token.Value)

			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})

		It("rejects a token signed with another secret", func() {
			other, err := auth.NewTokenManager("a-completely-different-secret-value", "travelsuite", time.Hour, auth.WithClock(clock))
			Expect(err).NotTo(HaveOccurred())
			token, err := other.Issue(42)
			Expect(err).NotTo(HaveOccurred())

			_, err = manager.Verify(token.Value)

			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})

		It("rejects a token from another issuer", func() {
			other, err := auth.NewTokenManager(secret, "someone-else", time.Hour, auth.WithClock(clock))
			Expect(err).NotTo(HaveOccurred())
			token, err := other.Issue(42)
			Expect(err).NotTo(HaveOccurred())

			_, err = manager.Verify(token.Value)

			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})

		It("rejects malformed input", func() {
			for _, raw := range []string{"", "garbage", "a.b.c"} {
				_, err := manager.Verify(raw)
				Expect(err).To(MatchError(auth.ErrInvalidToken), "input %q", raw)
			}
		})

		It("rejects unsigned tokens", func() {
			claims := auth.Claims{
				UserID: 42,
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "42",
					Issuer:    "travelsuite",
					ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				},
			}
			raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
			Expect(err).NotTo(HaveOccurred())

			_, err = manager.Verify(raw)

			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})

		It("rejects tokens signed with a different HMAC algorithm", func() {
			claims := auth.Claims{
				UserID: 42,
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "42",
					Issuer:    "travelsuite",
					ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				},
			}
			raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(secret))
			Expect(err).NotTo(HaveOccurred())

			_, err = manager.Verify(raw)

			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})

		It("rejects tokens without an expiry", func() {
			claims := auth.Claims{
				UserID: 42,
				RegisteredClaims: jwt.RegisteredClaims{
					Subject: "42",
					Issuer:  "travelsuite",
				},
			}
			raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
			Expect(err).NotTo(HaveOccurred())

			_, err = manager.Verify(raw)

			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})

		It("rejects a non-positive user id", func() {
			claims := auth.Claims{
				UserID: 0,
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "0",
					Issuer:    "travelsuite",
					ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				},
			}
			raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
			Expect(err).NotTo(HaveOccurred())

			_, err = manager.Verify(raw)

			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})
	})
})
