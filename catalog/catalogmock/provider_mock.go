// Package catalogmock is a hand-authored gomock-style double for
// catalog.Provider, in the shape go.uber.org/mock's mockgen would generate
// (a Mock type plus a MockRecorder exposing one method-call expectation
// builder per interface method), written by hand since the Go toolchain
// (and so mockgen) is never invoked for this module. Tests that need exact
// call-count assertions on catalog lookups use this instead of
// catalog.StaticProvider.
package catalogmock

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/shardwake/battlesim/catalog"
)

// MockProvider is a mock of the catalog.Provider interface.
type MockProvider struct {
	ctrl     *gomock.Controller
	recorder *MockProviderMockRecorder
}

// MockProviderMockRecorder is the mock recorder for MockProvider.
type MockProviderMockRecorder struct {
	mock *MockProvider
}

// NewMockProvider builds a new mock instance.
func NewMockProvider(ctrl *gomock.Controller) *MockProvider {
	mock := &MockProvider{ctrl: ctrl}
	mock.recorder = &MockProviderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProvider) EXPECT() *MockProviderMockRecorder {
	return m.recorder
}

// Move mocks base method.
func (m *MockProvider) Move(id string) (catalog.MoveData, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Move", id)
	ret0, _ := ret[0].(catalog.MoveData)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Move indicates an expected call of Move.
func (mr *MockProviderMockRecorder) Move(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Move", reflect.TypeOf((*MockProvider)(nil).Move), id)
}

// Species mocks base method.
func (m *MockProvider) Species(id string, gen int) (catalog.SpeciesData, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Species", id, gen)
	ret0, _ := ret[0].(catalog.SpeciesData)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Species indicates an expected call of Species.
func (mr *MockProviderMockRecorder) Species(id, gen any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Species", reflect.TypeOf((*MockProvider)(nil).Species), id, gen)
}

// Ability mocks base method.
func (m *MockProvider) Ability(id string) (catalog.AbilityData, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Ability", id)
	ret0, _ := ret[0].(catalog.AbilityData)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Ability indicates an expected call of Ability.
func (mr *MockProviderMockRecorder) Ability(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Ability", reflect.TypeOf((*MockProvider)(nil).Ability), id)
}

// Item mocks base method.
func (m *MockProvider) Item(id string) (catalog.ItemData, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Item", id)
	ret0, _ := ret[0].(catalog.ItemData)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Item indicates an expected call of Item.
func (mr *MockProviderMockRecorder) Item(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Item", reflect.TypeOf((*MockProvider)(nil).Item), id)
}

// TypeChart mocks base method.
func (m *MockProvider) TypeChart() *catalog.TypeChart {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TypeChart")
	ret0, _ := ret[0].(*catalog.TypeChart)
	return ret0
}

// TypeChart indicates an expected call of TypeChart.
func (mr *MockProviderMockRecorder) TypeChart() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TypeChart", reflect.TypeOf((*MockProvider)(nil).TypeChart))
}

var _ catalog.Provider = (*MockProvider)(nil)
