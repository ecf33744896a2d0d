package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"travelsuite.app/api/common/id"
	"travelsuite.app/api/internal/model"
	"travelsuite.app/api/internal/queue"
	"travelsuite.app/api/internal/service"
	"travelsuite.app/api/internal/store"
)

const defaultLogo = "https://placehold.co/600x400.png"

var _ = Describe("OrganizationService", func() {
	var (
		svc       service.OrganizationService
		userStore *mockUserStore
		orgStore  *mockOrganizationStore
		events    *recordingProducer
		txCalls   int
		ctx       context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		txCalls = 0
		userStore = &mockUserStore{
			getByIDFn: func(_ context.Context, id int64) (*model.User, error) {
				return &model.User{ID: id, Email: "a@x.com"}, nil
			},
		}
		orgStore = &mockOrganizationStore{}
		events = &recordingProducer{}
		svc = service.NewOrganizationService(orgStore, &mockTxRunner{
			withTxFn: func(ctx context.Context, fn func(stores service.StoreProvider) error) error {
				txCalls++
				return fn(&mockStoreProvider{users: userStore, orgs: orgStore})
			},
		}, &id.Sequence{}, events, defaultLogo)
	})

	Describe("Create", func() {
		It("creates the organization and links the caller in one transaction", func() {
			var linkedUser, linkedOrg int64
			userStore.setOrganizationFn = func(_ context.Context, userID, orgID int64) error {
				linkedUser, linkedOrg = userID, orgID
				return nil
			}

			org, err := svc.Create(ctx, 10, service.OrganizationInput{
				Name:    "Acme Travel",
				Website: strPtr("https://acme.example"),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(txCalls).To(Equal(1))
			Expect(orgStore.createCalls).To(Equal(1))
			Expect(org.Slug).To(Equal("acme-travel"))
			Expect(org.CreatedBy).To(Equal(int64(10)))
			Expect(*org.LogoURL).To(Equal(defaultLogo))
			Expect(*org.Website).To(Equal("https://acme.example"))
			Expect(linkedUser).To(Equal(int64(10)))
			Expect(linkedOrg).To(Equal(org.ID))
			Expect(events.types()).To(Equal([]queue.EventType{queue.EventOrganizationCreated}))
		})

		It("adds a numeric suffix when the slug is taken", func() {
			orgStore.getBySlugFn = func(_ context.Context, slug string) (*model.Organization, error) {
				if slug == "acme" {
					return &model.Organization{}, nil
				}
				return nil, store.ErrNotFound
			}

			org, err := svc.Create(ctx, 10, service.OrganizationInput{Name: "Acme"})

			Expect(err).NotTo(HaveOccurred())
			Expect(org.Slug).To(Equal("acme-1"))
		})

		It("refuses a second organization for the same user", func() {
			userStore.getByIDFn = func(_ context.Context, id int64) (*model.User, error) {
				return &model.User{ID: id, OrganizationID: int64Ptr(99)}, nil
			}

			_, err := svc.Create(ctx, 10, service.OrganizationInput{Name: "Acme"})

			Expect(err).To(MatchError(service.ErrOrganizationExists))
			Expect(orgStore.createCalls).To(BeZero())
			Expect(events.types()).To(BeEmpty())
		})

		It("requires a name", func() {
			_, err := svc.Create(ctx, 10, service.OrganizationInput{Name: "  "})

			Expect(service.KindOf(err)).To(Equal(service.KindInvalidInput))
			Expect(txCalls).To(BeZero())
		})

		It("returns the link failure so the transaction rolls back", func() {
			userStore.setOrganizationFn = func(context.Context, int64, int64) error {
				return errDatabase
			}

			_, err := svc.Create(ctx, 10, service.OrganizationInput{Name: "Acme"})

			Expect(errors.Is(err, errDatabase)).To(BeTrue())
			Expect(service.KindOf(err)).To(Equal(service.KindInternal))
			Expect(events.types()).To(BeEmpty())
		})

		It("rolls back when a concurrent request linked the user first", func() {
			userStore.setOrganizationFn = func(context.Context, int64, int64) error {
				return store.ErrAlreadyExists
			}

			_, err := svc.Create(ctx, 10, service.OrganizationInput{Name: "Acme"})

			Expect(err).To(MatchError(service.ErrOrganizationExists))
			Expect(txCalls).To(Equal(1))
			Expect(events.types()).To(BeEmpty())
		})

		It("retries with a fresh slug when a concurrent insert took it", func() {
			taken := map[string]bool{}
			orgStore.getBySlugFn = func(_ context.Context, slug string) (*model.Organization, error) {
				if taken[slug] {
					return &model.Organization{Slug: slug}, nil
				}
				return nil, store.ErrNotFound
			}
			orgStore.createFn = func(_ context.Context, org *model.Organization) error {
				if orgStore.createCalls == 1 {
					taken[org.Slug] = true
					return store.ErrAlreadyExists
				}
				return nil
			}

			org, err := svc.Create(ctx, 10, service.OrganizationInput{Name: "Acme"})

			Expect(err).NotTo(HaveOccurred())
			Expect(txCalls).To(Equal(2))
			Expect(org.Slug).To(Equal("acme-1"))
			Expect(events.types()).To(Equal([]queue.EventType{queue.EventOrganizationCreated}))
		})

		It("reports a busy name, not an existing organization, after repeated slug clashes", func() {
			orgStore.createFn = func(context.Context, *model.Organization) error {
				return store.ErrAlreadyExists
			}

			_, err := svc.Create(ctx, 10, service.OrganizationInput{Name: "Acme"})

			Expect(err).To(MatchError(service.ErrOrganizationNameBusy))
			Expect(err).NotTo(MatchError(service.ErrOrganizationExists))
			Expect(service.KindOf(err)).To(Equal(service.KindConflict))
			Expect(txCalls).To(Equal(3))
			Expect(events.types()).To(BeEmpty())
		})

		It("does not fail when the event cannot be published", func() {
			events.err = errors.New("redis down")

			_, err := svc.Create(ctx, 10, service.OrganizationInput{Name: "Acme"})

			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("GetForUser", func() {
		It("returns ErrOrganizationNotFound for a user without an organization", func() {
			_, err := svc.GetForUser(ctx, 10)

			Expect(err).To(MatchError(service.ErrOrganizationNotFound))
			Expect(service.MessageOf(err)).To(Equal("Organization not found"))
		})
	})

	Describe("Update", func() {
		BeforeEach(func() {
			orgStore.getByUserIDFn = func(context.Context, int64) (*model.Organization, error) {
				return &model.Organization{
					ID:      50,
					Name:    "Acme",
					Slug:    "acme",
					Address: strPtr("1 Main St"),
					LogoURL: strPtr(defaultLogo),
				}, nil
			}
		})

		It("replaces provided fields and keeps the rest", func() {
			var saved *model.Organization
			orgStore.updateFn = func(_ context.Context, org *model.Organization) error {
				saved = org
				return nil
			}

			org, err := svc.Update(ctx, 10, service.OrganizationInput{
				Name:  "Acme Tours",
				Phone: strPtr("555-0100"),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(org.Name).To(Equal("Acme Tours"))
			Expect(org.Slug).To(Equal("acme"))
			Expect(*saved.Phone).To(Equal("555-0100"))
			Expect(*saved.Address).To(Equal("1 Main St"))
			Expect(*saved.UpdatedBy).To(Equal(int64(10)))
			Expect(events.types()).To(Equal([]queue.EventType{queue.EventOrganizationUpdated}))
		})

		It("returns ErrOrganizationNotFound when the caller has none", func() {
			orgStore.getByUserIDFn = nil

			_, err := svc.Update(ctx, 10, service.OrganizationInput{Name: "Acme"})

			Expect(err).To(MatchError(service.ErrOrganizationNotFound))
		})
	})
})
