//	mockgen -source=filter/filter.go -destination=filter/mocks/mock_filter.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"

	ledger "github.com/iho/beanfilter/ledger"
	gomock "go.uber.org/mock/gomock"
)

// MockCondition is a mock of Condition interface.
type MockCondition struct {
	ctrl     *gomock.Controller
	recorder *MockConditionMockRecorder
	isgomock struct{}
}

// MockConditionMockRecorder is the mock recorder for MockCondition.
type MockConditionMockRecorder struct {
	mock *MockCondition
}

// NewMockCondition creates a new mock instance.
func NewMockCondition(ctrl *gomock.Controller) *MockCondition {
	mock := &MockCondition{ctrl: ctrl}
	mock.recorder = &MockConditionMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCondition) EXPECT() *MockConditionMockRecorder {
	return m.recorder
}

// Match mocks base method.
func (m *MockCondition) Match(entry ledger.Directive) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Match", entry)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Match indicates an expected call of Match.
func (mr *MockConditionMockRecorder) Match(entry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Match", reflect.TypeOf((*MockCondition)(nil).Match), entry)
}

// MockEntryFilter is a mock of EntryFilter interface.
type MockEntryFilter struct {
	ctrl     *gomock.Controller
	recorder *MockEntryFilterMockRecorder
	isgomock struct{}
}

// MockEntryFilterMockRecorder is the mock recorder for MockEntryFilter.
type MockEntryFilterMockRecorder struct {
	mock *MockEntryFilter
}

// NewMockEntryFilter creates a new mock instance.
func NewMockEntryFilter(ctrl *gomock.Controller) *MockEntryFilter {
	mock := &MockEntryFilter{ctrl: ctrl}
	mock.recorder = &MockEntryFilterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEntryFilter) EXPECT() *MockEntryFilterMockRecorder {
	return m.recorder
}

// Name mocks base method.
func (m *MockEntryFilter) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(string)
	return ret0
}

// Name indicates an expected call of Name.
func (mr *MockEntryFilterMockRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*MockEntryFilter)(nil).Name))
}

// Filter mocks base method.
func (m *MockEntryFilter) Filter(entries ledger.Entries) ledger.Entries {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Filter", entries)
	ret0, _ := ret[0].(ledger.Entries)
	return ret0
}

// Filter indicates an expected call of Filter.
func (mr *MockEntryFilterMockRecorder) Filter(entries any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Filter", reflect.TypeOf((*MockEntryFilter)(nil).Filter), entries)
}
