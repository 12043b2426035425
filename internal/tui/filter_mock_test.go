package tui

import (
	"sync"

	"github.com/heartmarshall/miaudota/internal/service/gallery"
)

var _ Filter = &filterMock{}

type filterMock struct {
	StateFunc func() gallery.State

	mu      sync.Mutex
	queries []string
	status  []string
	species []string
	sex     []string
	clears  int
	applies int
	closes  int
}

func (m *filterMock) SetQuery(q string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, q)
}

func (m *filterMock) SetStatus(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = append(m.status, s)
}

func (m *filterMock) SetSpecies(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.species = append(m.species, s)
}

func (m *filterMock) SetSex(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sex = append(m.sex, s)
}

func (m *filterMock) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
}

func (m *filterMock) Apply() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applies++
}

func (m *filterMock) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closes++
}

func (m *filterMock) State() gallery.State {
	if m.StateFunc == nil {
		return gallery.StateIdle
	}
	return m.StateFunc()
}
