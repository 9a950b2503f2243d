package usecase

import (
	"context"
	"errors"
	"testing"

	"go-appointment-booking/internal/delivery/dto"
	"go-appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type providerFixture struct {
	usecase      *providerUsecase
	providerID   uuid.UUID
	offeringRepo *offeringRepoStub
}

func newProviderFixture() *providerFixture {
	providerID := uuid.New()
	providerRepo := &providerRepoStub{
		providers: []entity.Provider{{
			ID:                     providerID,
			Name:                   "Dr. Example",
			Email:                  "provider@example.com",
			Timezone:               "UTC",
			DefaultBookingDuration: 30,
		}},
	}
	offeringRepo := &offeringRepoStub{}

	return &providerFixture{
		usecase: &providerUsecase{
			db:           nil,
			log:          newTestLogger(),
			providerRepo: providerRepo,
			eventRepo:    &eventRepoStub{},
			offeringRepo: offeringRepo,
		},
		providerID:   providerID,
		offeringRepo: offeringRepo,
	}
}

func TestAddServiceOffering(t *testing.T) {
	f := newProviderFixture()
	ctx := context.Background()

	offering, err := f.usecase.AddServiceOffering(ctx, f.providerID, &dto.CreateServiceOfferingRequest{
		Name:            "Initial Consultation",
		Description:     "First visit",
		Price:           decimal.NewFromFloat(89.50),
		DurationMinutes: 45,
	})
	if err != nil {
		t.Fatalf("AddServiceOffering() error = %v", err)
	}
	if !offering.Price.Equal(decimal.NewFromFloat(89.50)) {
		t.Errorf("price = %s, want 89.50", offering.Price)
	}
	if offering.DurationMinutes != 45 {
		t.Errorf("duration = %d, want 45", offering.DurationMinutes)
	}
	if !offering.IsActive {
		t.Error("new offerings should be active")
	}

	// Omitted duration falls back to the provider default.
	second, err := f.usecase.AddServiceOffering(ctx, f.providerID, &dto.CreateServiceOfferingRequest{
		Name:  "Follow-up",
		Price: decimal.NewFromInt(40),
	})
	if err != nil {
		t.Fatal(err)
	}
	if second.DurationMinutes != 30 {
		t.Errorf("duration = %d, want provider default 30", second.DurationMinutes)
	}

	list, err := f.usecase.GetServiceOfferings(ctx, f.providerID)
	if err != nil {
		t.Fatal(err)
	}
	if list.Total != 2 {
		t.Errorf("total = %d, want 2", list.Total)
	}
}

func TestAddServiceOfferingRejectsNegativePrice(t *testing.T) {
	f := newProviderFixture()

	_, err := f.usecase.AddServiceOffering(context.Background(), f.providerID, &dto.CreateServiceOfferingRequest{
		Name:  "Refund Magnet",
		Price: decimal.NewFromInt(-10),
	})
	if !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("error = %v, want ErrInvalidPrice", err)
	}
}

func TestAddServiceOfferingDuplicateName(t *testing.T) {
	f := newProviderFixture()
	ctx := context.Background()

	req := &dto.CreateServiceOfferingRequest{
		Name:  "Initial Consultation",
		Price: decimal.NewFromInt(80),
	}
	if _, err := f.usecase.AddServiceOffering(ctx, f.providerID, req); err != nil {
		t.Fatal(err)
	}
	if _, err := f.usecase.AddServiceOffering(ctx, f.providerID, req); !errors.Is(err, ErrOfferingNameTaken) {
		t.Errorf("error = %v, want ErrOfferingNameTaken", err)
	}
}

func TestUpdateServiceOffering(t *testing.T) {
	f := newProviderFixture()
	ctx := context.Background()

	created, err := f.usecase.AddServiceOffering(ctx, f.providerID, &dto.CreateServiceOfferingRequest{
		Name:  "Initial Consultation",
		Price: decimal.NewFromInt(80),
	})
	if err != nil {
		t.Fatal(err)
	}

	newPrice := decimal.NewFromInt(95)
	inactive := false
	updated, err := f.usecase.UpdateServiceOffering(ctx, created.ID, &dto.UpdateServiceOfferingRequest{
		Price:    &newPrice,
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("UpdateServiceOffering() error = %v", err)
	}
	if !updated.Price.Equal(newPrice) {
		t.Errorf("price = %s, want 95", updated.Price)
	}
	if updated.IsActive {
		t.Error("offering should be inactive")
	}

	if _, err := f.usecase.UpdateServiceOffering(ctx, 999, &dto.UpdateServiceOfferingRequest{}); !errors.Is(err, ErrOfferingNotFound) {
		t.Errorf("error = %v, want ErrOfferingNotFound", err)
	}
}

func TestAddServiceOfferingUnknownProvider(t *testing.T) {
	f := newProviderFixture()

	_, err := f.usecase.AddServiceOffering(context.Background(), uuid.New(), &dto.CreateServiceOfferingRequest{
		Name:  "Orphan",
		Price: decimal.NewFromInt(10),
	})
	if !errors.Is(err, ErrProviderNotFound) {
		t.Errorf("error = %v, want ErrProviderNotFound", err)
	}
}
