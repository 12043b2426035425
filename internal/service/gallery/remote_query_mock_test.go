package gallery

import (
	"context"
	"github.com/heartmarshall/miaudota/internal/domain"
	"sync"
)

var _ RemoteQuery = &remoteQueryMock{}

type remoteQueryMock struct {
	SearchPetsFunc func(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Candidate, error)

	calls struct {
		SearchPets []struct {
			Ctx      context.Context
			Criteria domain.FilterCriteria
		}
	}
	lockSearchPets sync.RWMutex
}

func (mock *remoteQueryMock) SearchPets(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Candidate, error) {
	if mock.SearchPetsFunc == nil {
		panic("remoteQueryMock.SearchPetsFunc: method is nil but RemoteQuery.SearchPets was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Criteria domain.FilterCriteria
	}{Ctx: ctx, Criteria: criteria}
	mock.lockSearchPets.Lock()
	mock.calls.SearchPets = append(mock.calls.SearchPets, callInfo)
	mock.lockSearchPets.Unlock()
	return mock.SearchPetsFunc(ctx, criteria)
}

func (mock *remoteQueryMock) SearchPetsCalls() []struct {
	Ctx      context.Context
	Criteria domain.FilterCriteria
} {
	mock.lockSearchPets.RLock()
	calls := mock.calls.SearchPets
	mock.lockSearchPets.RUnlock()
	return calls
}
