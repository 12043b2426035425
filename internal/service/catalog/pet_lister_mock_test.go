package catalog

import (
	"context"
	"github.com/heartmarshall/miaudota/internal/domain"
	"sync"
)

var _ petLister = &petListerMock{}

type petListerMock struct {
	ListPetsFunc func(ctx context.Context) ([]domain.Candidate, error)

	calls struct {
		ListPets []struct {
			Ctx context.Context
		}
	}
	lockListPets sync.RWMutex
}

func (mock *petListerMock) ListPets(ctx context.Context) ([]domain.Candidate, error) {
	if mock.ListPetsFunc == nil {
		panic("petListerMock.ListPetsFunc: method is nil but petLister.ListPets was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListPets.Lock()
	mock.calls.ListPets = append(mock.calls.ListPets, callInfo)
	mock.lockListPets.Unlock()
	return mock.ListPetsFunc(ctx)
}

func (mock *petListerMock) ListPetsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListPets.RLock()
	calls := mock.calls.ListPets
	mock.lockListPets.RUnlock()
	return calls
}
