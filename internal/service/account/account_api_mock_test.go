package account

import (
	"context"
	"github.com/heartmarshall/miaudota/internal/domain"
	"sync"
)

var _ accountAPI = &accountAPIMock{}

type accountAPIMock struct {
	RegisterFunc func(ctx context.Context, reg domain.Registration) (domain.Account, error)

	calls struct {
		Register []struct {
			Ctx context.Context
			Reg domain.Registration
		}
	}
	lockRegister sync.RWMutex
}

func (mock *accountAPIMock) Register(ctx context.Context, reg domain.Registration) (domain.Account, error) {
	if mock.RegisterFunc == nil {
		panic("accountAPIMock.RegisterFunc: method is nil but accountAPI.Register was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Reg domain.Registration
	}{Ctx: ctx, Reg: reg}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, reg)
}

func (mock *accountAPIMock) RegisterCalls() []struct {
	Ctx context.Context
	Reg domain.Registration
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}
