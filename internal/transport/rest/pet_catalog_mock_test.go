package rest

import (
	"context"
	"github.com/heartmarshall/miaudota/internal/domain"
	"github.com/heartmarshall/miaudota/internal/service/gallery"
	"sync"
)

var _ petCatalog = &petCatalogMock{}

type petCatalogMock struct {
	GetFunc    func(ctx context.Context, id string) (domain.Candidate, error)
	SearchFunc func(ctx context.Context, criteria domain.FilterCriteria, page int, limit int) (gallery.Page, error)

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  string
		}
		Search []struct {
			Ctx      context.Context
			Criteria domain.FilterCriteria
			Page     int
			Limit    int
		}
	}
	lockGet    sync.RWMutex
	lockSearch sync.RWMutex
}

func (mock *petCatalogMock) Get(ctx context.Context, id string) (domain.Candidate, error) {
	if mock.GetFunc == nil {
		panic("petCatalogMock.GetFunc: method is nil but petCatalog.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *petCatalogMock) GetCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *petCatalogMock) Search(ctx context.Context, criteria domain.FilterCriteria, page int, limit int) (gallery.Page, error) {
	if mock.SearchFunc == nil {
		panic("petCatalogMock.SearchFunc: method is nil but petCatalog.Search was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Criteria domain.FilterCriteria
		Page     int
		Limit    int
	}{Ctx: ctx, Criteria: criteria, Page: page, Limit: limit}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, criteria, page, limit)
}

func (mock *petCatalogMock) SearchCalls() []struct {
	Ctx      context.Context
	Criteria domain.FilterCriteria
	Page     int
	Limit    int
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
