package pet

import (
	"context"
	"github.com/heartmarshall/miaudota/internal/domain"
	"sync"
)

var _ petAPI = &petAPIMock{}

type petAPIMock struct {
	CreatePetFunc func(ctx context.Context, draft domain.PetDraft) (domain.Candidate, error)
	DeletePetFunc func(ctx context.Context, id string) error
	GetPetFunc    func(ctx context.Context, id string) (map[string]any, error)
	UpdatePetFunc func(ctx context.Context, id string, draft domain.PetDraft) error

	calls struct {
		CreatePet []struct {
			Ctx   context.Context
			Draft domain.PetDraft
		}
		DeletePet []struct {
			Ctx context.Context
			ID  string
		}
		GetPet []struct {
			Ctx context.Context
			ID  string
		}
		UpdatePet []struct {
			Ctx   context.Context
			ID    string
			Draft domain.PetDraft
		}
	}
	lockCreatePet sync.RWMutex
	lockDeletePet sync.RWMutex
	lockGetPet    sync.RWMutex
	lockUpdatePet sync.RWMutex
}

func (mock *petAPIMock) CreatePet(ctx context.Context, draft domain.PetDraft) (domain.Candidate, error) {
	if mock.CreatePetFunc == nil {
		panic("petAPIMock.CreatePetFunc: method is nil but petAPI.CreatePet was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Draft domain.PetDraft
	}{Ctx: ctx, Draft: draft}
	mock.lockCreatePet.Lock()
	mock.calls.CreatePet = append(mock.calls.CreatePet, callInfo)
	mock.lockCreatePet.Unlock()
	return mock.CreatePetFunc(ctx, draft)
}

func (mock *petAPIMock) CreatePetCalls() []struct {
	Ctx   context.Context
	Draft domain.PetDraft
} {
	mock.lockCreatePet.RLock()
	calls := mock.calls.CreatePet
	mock.lockCreatePet.RUnlock()
	return calls
}

func (mock *petAPIMock) DeletePet(ctx context.Context, id string) error {
	if mock.DeletePetFunc == nil {
		panic("petAPIMock.DeletePetFunc: method is nil but petAPI.DeletePet was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDeletePet.Lock()
	mock.calls.DeletePet = append(mock.calls.DeletePet, callInfo)
	mock.lockDeletePet.Unlock()
	return mock.DeletePetFunc(ctx, id)
}

func (mock *petAPIMock) DeletePetCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDeletePet.RLock()
	calls := mock.calls.DeletePet
	mock.lockDeletePet.RUnlock()
	return calls
}

func (mock *petAPIMock) GetPet(ctx context.Context, id string) (map[string]any, error) {
	if mock.GetPetFunc == nil {
		panic("petAPIMock.GetPetFunc: method is nil but petAPI.GetPet was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetPet.Lock()
	mock.calls.GetPet = append(mock.calls.GetPet, callInfo)
	mock.lockGetPet.Unlock()
	return mock.GetPetFunc(ctx, id)
}

func (mock *petAPIMock) GetPetCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetPet.RLock()
	calls := mock.calls.GetPet
	mock.lockGetPet.RUnlock()
	return calls
}

func (mock *petAPIMock) UpdatePet(ctx context.Context, id string, draft domain.PetDraft) error {
	if mock.UpdatePetFunc == nil {
		panic("petAPIMock.UpdatePetFunc: method is nil but petAPI.UpdatePet was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    string
		Draft domain.PetDraft
	}{Ctx: ctx, ID: id, Draft: draft}
	mock.lockUpdatePet.Lock()
	mock.calls.UpdatePet = append(mock.calls.UpdatePet, callInfo)
	mock.lockUpdatePet.Unlock()
	return mock.UpdatePetFunc(ctx, id, draft)
}

func (mock *petAPIMock) UpdatePetCalls() []struct {
	Ctx   context.Context
	ID    string
	Draft domain.PetDraft
} {
	mock.lockUpdatePet.RLock()
	calls := mock.calls.UpdatePet
	mock.lockUpdatePet.RUnlock()
	return calls
}
