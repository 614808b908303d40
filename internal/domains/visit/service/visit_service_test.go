package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"shelter-backend/internal/domains/adopter"
	adopterrepo "shelter-backend/internal/domains/adopter/repository"
	"shelter-backend/internal/domains/animal"
	animalrepo "shelter-backend/internal/domains/animal/repository"
	"shelter-backend/internal/domains/schedule"
	schedulerepo "shelter-backend/internal/domains/schedule/repository"
	"shelter-backend/internal/domains/visit"
	"shelter-backend/internal/domains/visit/repository"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixture struct {
	svc       visit.Service
	visits    *repository.MemoryRepository
	schedules *schedulerepo.MemoryRepository
	animals   *animalrepo.MemoryRepository
	adopters  *adopterrepo.MemoryRepository

	scheduleID, animalID, adopterID int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		visits:    repository.NewMemoryRepository(),
		schedules: schedulerepo.NewMemoryRepository(),
		animals:   animalrepo.NewMemoryRepository(),
		adopters:  adopterrepo.NewMemoryRepository(),
	}
	f.svc = NewVisitService(f.visits, f.schedules, f.animals, f.adopters)

	sc, err := f.schedules.Create(ctx, &schedule.Schedule{Days: []time.Weekday{time.Saturday}, StartHour: 10, EndHour: 11})
	require.NoError(t, err)
	an, err := f.animals.Create(ctx, &animal.Animal{Name: "Fido", Code: "1234"})
	require.NoError(t, err)
	ad, err := f.adopters.Create(ctx, &adopter.Adopter{Name: "Ana"})
	require.NoError(t, err)

	f.scheduleID, f.animalID, f.adopterID = sc.ID, an.ID, ad.ID
	return f
}

func (f *fixture) request() visit.ShelterVisitRequest {
	return visit.ShelterVisitRequest{
		Schedule: &visit.ScheduleRef{ScheduleID: f.scheduleID},
		Animal:   &visit.EntityRef{ID: f.animalID},
		Adopter:  &visit.EntityRef{ID: f.adopterID},
	}
}

func TestSave_InsertComposesAllThree(t *testing.T) {
	f := newFixture(t)

	dto, err := f.svc.Save(context.Background(), f.request())
	require.NoError(t, err)

	assert.NotZero(t, dto.ID)
	assert.Equal(t, f.scheduleID, dto.Schedule.ScheduleID)
	assert.Equal(t, "Hours: SAT from 10:00 to 11:00", dto.Schedule.ScheduleString)
	assert.Equal(t, "Fido", dto.Animal.Name)
	assert.Equal(t, "Ana", dto.Adopter.Name)
}

func TestSave_InsertRequiresAllReferences(t *testing.T) {
	f := newFixture(t)

	req := f.request()
	req.Adopter = nil
	_, err := f.svc.Save(context.Background(), req)
	require.Error(t, err)

	all, _ := f.visits.List(context.Background())
	assert.Empty(t, all)
}

func TestSave_MissingReferenceIsNotWritten(t *testing.T) {
	f := newFixture(t)

	req := f.request()
	req.Animal = &visit.EntityRef{ID: 999}
	_, err := f.svc.Save(context.Background(), req)
	assert.ErrorIs(t, err, visit.ErrBrokenReference)
	assert.ErrorIs(t, err, animal.ErrAnimalNotFound)

	all, _ := f.visits.List(context.Background())
	assert.Empty(t, all)
}

func TestSave_UpdateMergesPresentReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Save(ctx, f.request())
	require.NoError(t, err)

	other, err := f.animals.Create(ctx, &animal.Animal{Name: "Rex", Code: "4321"})
	require.NoError(t, err)

	id := created.ID
	updated, err := f.svc.Save(ctx, visit.ShelterVisitRequest{ID: &id, Animal: &visit.EntityRef{ID: other.ID}})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Rex", updated.Animal.Name)
	assert.Equal(t, created.Adopter, updated.Adopter)
	assert.Equal(t, created.Schedule, updated.Schedule)
}

func TestSave_UpdateUnknownID(t *testing.T) {
	f := newFixture(t)

	id := int64(77)
	_, err := f.svc.Save(context.Background(), visit.ShelterVisitRequest{ID: &id})
	assert.ErrorIs(t, err, visit.ErrVisitNotFound)
}

func TestGetByID_FailsWhenAnyReferenceIsGone(t *testing.T) {
	cases := []struct {
		name   string
		remove func(f *fixture) error
		cause  error
	}{
		{"schedule", func(f *fixture) error { return f.schedules.Delete(context.Background(), f.scheduleID) }, schedule.ErrScheduleNotFound},
		{"animal", func(f *fixture) error { return f.animals.Delete(context.Background(), f.animalID) }, animal.ErrAnimalNotFound},
		{"adopter", func(f *fixture) error { return f.adopters.Delete(context.Background(), f.adopterID) }, adopter.ErrAdopterNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			created, err := f.svc.Save(ctx, f.request())
			require.NoError(t, err)
			require.NoError(t, tc.remove(f))

			got, err := f.svc.GetByID(ctx, created.ID)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, visit.ErrBrokenReference)
			assert.ErrorIs(t, err, tc.cause)

			// row vẫn còn, không cascade
			_, err = f.visits.GetByID(ctx, created.ID)
			assert.NoError(t, err)
		})
	}
}

type failingAdopters struct{}

func (failingAdopters) GetByID(context.Context, int64) (*adopter.Adopter, error) {
	return nil, errors.New("connection reset")
}

func TestCompose_LookupFailureIsNotBrokenReference(t *testing.T) {
	f := newFixture(t)
	svc := NewVisitService(f.visits, f.schedules, f.animals, failingAdopters{})

	_, err := svc.Save(context.Background(), f.request())
	require.Error(t, err)
	assert.NotErrorIs(t, err, visit.ErrBrokenReference)
}

func TestList_SkipsBrokenVisits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Save(ctx, f.request())
	require.NoError(t, err)

	lonely, err := f.animals.Create(ctx, &animal.Animal{Name: "Lonely", Code: "1000"})
	require.NoError(t, err)
	req := f.request()
	req.Animal = &visit.EntityRef{ID: lonely.ID}
	second, err := f.svc.Save(ctx, req)
	require.NoError(t, err)

	require.NoError(t, f.animals.Delete(ctx, lonely.ID))

	got, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, first.ID, got[0].ID)
	assert.NotEqual(t, second.ID, got[0].ID)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Save(ctx, f.request())
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, f.svc.Delete(ctx, created.ID), visit.ErrVisitNotFound)
}
