package adoption

import (
	"context"
	"github.com/heartmarshall/miaudota/internal/domain"
	"sync"
)

var _ shelterAPI = &shelterAPIMock{}

type shelterAPIMock struct {
	CreateAdoptionFunc       func(ctx context.Context, req domain.AdoptionRequest) (domain.Adoption, error)
	DeleteAdoptionFunc       func(ctx context.Context, id string) error
	GetAdoptionFunc          func(ctx context.Context, id string) (domain.Adoption, error)
	ListAdoptionsFunc        func(ctx context.Context) ([]domain.Adoption, error)
	ListPetsFunc             func(ctx context.Context) ([]domain.Candidate, error)
	UpdateAdoptionStatusFunc func(ctx context.Context, id string, status domain.AdoptionStatus) (domain.Adoption, error)

	calls struct {
		CreateAdoption []struct {
			Ctx context.Context
			Req domain.AdoptionRequest
		}
		DeleteAdoption []struct {
			Ctx context.Context
			ID  string
		}
		GetAdoption []struct {
			Ctx context.Context
			ID  string
		}
		ListAdoptions []struct {
			Ctx context.Context
		}
		ListPets []struct {
			Ctx context.Context
		}
		UpdateAdoptionStatus []struct {
			Ctx    context.Context
			ID     string
			Status domain.AdoptionStatus
		}
	}
	lockCreateAdoption       sync.RWMutex
	lockDeleteAdoption       sync.RWMutex
	lockGetAdoption          sync.RWMutex
	lockListAdoptions        sync.RWMutex
	lockListPets             sync.RWMutex
	lockUpdateAdoptionStatus sync.RWMutex
}

func (mock *shelterAPIMock) CreateAdoption(ctx context.Context, req domain.AdoptionRequest) (domain.Adoption, error) {
	if mock.CreateAdoptionFunc == nil {
		panic("shelterAPIMock.CreateAdoptionFunc: method is nil but shelterAPI.CreateAdoption was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.AdoptionRequest
	}{Ctx: ctx, Req: req}
	mock.lockCreateAdoption.Lock()
	mock.calls.CreateAdoption = append(mock.calls.CreateAdoption, callInfo)
	mock.lockCreateAdoption.Unlock()
	return mock.CreateAdoptionFunc(ctx, req)
}

func (mock *shelterAPIMock) CreateAdoptionCalls() []struct {
	Ctx context.Context
	Req domain.AdoptionRequest
} {
	mock.lockCreateAdoption.RLock()
	calls := mock.calls.CreateAdoption
	mock.lockCreateAdoption.RUnlock()
	return calls
}

func (mock *shelterAPIMock) DeleteAdoption(ctx context.Context, id string) error {
	if mock.DeleteAdoptionFunc == nil {
		panic("shelterAPIMock.DeleteAdoptionFunc: method is nil but shelterAPI.DeleteAdoption was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDeleteAdoption.Lock()
	mock.calls.DeleteAdoption = append(mock.calls.DeleteAdoption, callInfo)
	mock.lockDeleteAdoption.Unlock()
	return mock.DeleteAdoptionFunc(ctx, id)
}

func (mock *shelterAPIMock) DeleteAdoptionCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDeleteAdoption.RLock()
	calls := mock.calls.DeleteAdoption
	mock.lockDeleteAdoption.RUnlock()
	return calls
}

func (mock *shelterAPIMock) GetAdoption(ctx context.Context, id string) (domain.Adoption, error) {
	if mock.GetAdoptionFunc == nil {
		panic("shelterAPIMock.GetAdoptionFunc: method is nil but shelterAPI.GetAdoption was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetAdoption.Lock()
	mock.calls.GetAdoption = append(mock.calls.GetAdoption, callInfo)
	mock.lockGetAdoption.Unlock()
	return mock.GetAdoptionFunc(ctx, id)
}

func (mock *shelterAPIMock) GetAdoptionCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetAdoption.RLock()
	calls := mock.calls.GetAdoption
	mock.lockGetAdoption.RUnlock()
	return calls
}

func (mock *shelterAPIMock) ListAdoptions(ctx context.Context) ([]domain.Adoption, error) {
	if mock.ListAdoptionsFunc == nil {
		panic("shelterAPIMock.ListAdoptionsFunc: method is nil but shelterAPI.ListAdoptions was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListAdoptions.Lock()
	mock.calls.ListAdoptions = append(mock.calls.ListAdoptions, callInfo)
	mock.lockListAdoptions.Unlock()
	return mock.ListAdoptionsFunc(ctx)
}

func (mock *shelterAPIMock) ListAdoptionsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAdoptions.RLock()
	calls := mock.calls.ListAdoptions
	mock.lockListAdoptions.RUnlock()
	return calls
}

func (mock *shelterAPIMock) ListPets(ctx context.Context) ([]domain.Candidate, error) {
	if mock.ListPetsFunc == nil {
		panic("shelterAPIMock.ListPetsFunc: method is nil but shelterAPI.ListPets was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListPets.Lock()
	mock.calls.ListPets = append(mock.calls.ListPets, callInfo)
	mock.lockListPets.Unlock()
	return mock.ListPetsFunc(ctx)
}

func (mock *shelterAPIMock) ListPetsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListPets.RLock()
	calls := mock.calls.ListPets
	mock.lockListPets.RUnlock()
	return calls
}

func (mock *shelterAPIMock) UpdateAdoptionStatus(ctx context.Context, id string, status domain.AdoptionStatus) (domain.Adoption, error) {
	if mock.UpdateAdoptionStatusFunc == nil {
		panic("shelterAPIMock.UpdateAdoptionStatusFunc: method is nil but shelterAPI.UpdateAdoptionStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     string
		Status domain.AdoptionStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockUpdateAdoptionStatus.Lock()
	mock.calls.UpdateAdoptionStatus = append(mock.calls.UpdateAdoptionStatus, callInfo)
	mock.lockUpdateAdoptionStatus.Unlock()
	return mock.UpdateAdoptionStatusFunc(ctx, id, status)
}

func (mock *shelterAPIMock) UpdateAdoptionStatusCalls() []struct {
	Ctx    context.Context
	ID     string
	Status domain.AdoptionStatus
} {
	mock.lockUpdateAdoptionStatus.RLock()
	calls := mock.calls.UpdateAdoptionStatus
	mock.lockUpdateAdoptionStatus.RUnlock()
	return calls
}
