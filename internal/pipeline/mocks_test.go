package pipeline_test

import (
	"context"

	"github.com/kurochkinivan/port_assigner/internal/domain"
	"github.com/kurochkinivan/port_assigner/internal/report"
	"github.com/stretchr/testify/mock"
)

type mockT interface {
	mock.TestingT
	Cleanup(func())
}

// MockGroupsSource

type MockGroupsSource struct {
	mock.Mock
}

type MockGroupsSource_Expecter struct {
	mock *mock.Mock
}

func NewMockGroupsSource(t mockT) *MockGroupsSource {
	m := &MockGroupsSource{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockGroupsSource) EXPECT() *MockGroupsSource_Expecter {
	return &MockGroupsSource_Expecter{mock: &_m.Mock}
}

func (_m *MockGroupsSource) LoadGroups(ctx context.Context, rep *report.Report) ([]*domain.AssignmentGroup, error) {
	ret := _m.Called(ctx, rep)

	if rf, ok := ret.Get(0).(func(context.Context, *report.Report) ([]*domain.AssignmentGroup, error)); ok {
		return rf(ctx, rep)
	}

	var r0 []*domain.AssignmentGroup
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.AssignmentGroup)
	}

	return r0, ret.Error(1)
}

type MockGroupsSource_LoadGroups_Call struct {
	*mock.Call
}

func (_e *MockGroupsSource_Expecter) LoadGroups(ctx any, rep any) *MockGroupsSource_LoadGroups_Call {
	return &MockGroupsSource_LoadGroups_Call{Call: _e.mock.On("LoadGroups", ctx, rep)}
}

func (_c *MockGroupsSource_LoadGroups_Call) Return(groups []*domain.AssignmentGroup, err error) *MockGroupsSource_LoadGroups_Call {
	_c.Call.Return(groups, err)
	return _c
}

// MockPropertiesSource

type MockPropertiesSource struct {
	mock.Mock
}

type MockPropertiesSource_Expecter struct {
	mock *mock.Mock
}

func NewMockPropertiesSource(t mockT) *MockPropertiesSource {
	m := &MockPropertiesSource{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockPropertiesSource) EXPECT() *MockPropertiesSource_Expecter {
	return &MockPropertiesSource_Expecter{mock: &_m.Mock}
}

func (_m *MockPropertiesSource) LoadProperties(ctx context.Context, rep *report.Report) ([]*domain.Device, error) {
	ret := _m.Called(ctx, rep)

	var r0 []*domain.Device
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Device)
	}

	return r0, ret.Error(1)
}

type MockPropertiesSource_LoadProperties_Call struct {
	*mock.Call
}

func (_e *MockPropertiesSource_Expecter) LoadProperties(ctx any, rep any) *MockPropertiesSource_LoadProperties_Call {
	return &MockPropertiesSource_LoadProperties_Call{Call: _e.mock.On("LoadProperties", ctx, rep)}
}

func (_c *MockPropertiesSource_LoadProperties_Call) Return(devices []*domain.Device, err error) *MockPropertiesSource_LoadProperties_Call {
	_c.Call.Return(devices, err)
	return _c
}

// MockResultSaver

type MockResultSaver struct {
	mock.Mock
}

type MockResultSaver_Expecter struct {
	mock *mock.Mock
}

func NewMockResultSaver(t mockT) *MockResultSaver {
	m := &MockResultSaver{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockResultSaver) EXPECT() *MockResultSaver_Expecter {
	return &MockResultSaver_Expecter{mock: &_m.Mock}
}

func (_m *MockResultSaver) SaveResult(ctx context.Context, table *domain.ResultTable) error {
	ret := _m.Called(ctx, table)
	return ret.Error(0)
}

type MockResultSaver_SaveResult_Call struct {
	*mock.Call
}

func (_e *MockResultSaver_Expecter) SaveResult(ctx any, table any) *MockResultSaver_SaveResult_Call {
	return &MockResultSaver_SaveResult_Call{Call: _e.mock.On("SaveResult", ctx, table)}
}

func (_c *MockResultSaver_SaveResult_Call) Run(run func(ctx context.Context, table *domain.ResultTable)) *MockResultSaver_SaveResult_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*domain.ResultTable))
	})
	return _c
}

func (_c *MockResultSaver_SaveResult_Call) Return(err error) *MockResultSaver_SaveResult_Call {
	_c.Call.Return(err)
	return _c
}

// MockSlotsSaver

type MockSlotsSaver struct {
	mock.Mock
}

type MockSlotsSaver_Expecter struct {
	mock *mock.Mock
}

func NewMockSlotsSaver(t mockT) *MockSlotsSaver {
	m := &MockSlotsSaver{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockSlotsSaver) EXPECT() *MockSlotsSaver_Expecter {
	return &MockSlotsSaver_Expecter{mock: &_m.Mock}
}

func (_m *MockSlotsSaver) DeleteSlots(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

func (_m *MockSlotsSaver) SaveSlots(ctx context.Context, slots ...domain.Slot) error {
	ret := _m.Called(ctx, slots)
	return ret.Error(0)
}

type MockSlotsSaver_DeleteSlots_Call struct {
	*mock.Call
}

func (_e *MockSlotsSaver_Expecter) DeleteSlots(ctx any) *MockSlotsSaver_DeleteSlots_Call {
	return &MockSlotsSaver_DeleteSlots_Call{Call: _e.mock.On("DeleteSlots", ctx)}
}

func (_c *MockSlotsSaver_DeleteSlots_Call) Return(err error) *MockSlotsSaver_DeleteSlots_Call {
	_c.Call.Return(err)
	return _c
}

type MockSlotsSaver_SaveSlots_Call struct {
	*mock.Call
}

func (_e *MockSlotsSaver_Expecter) SaveSlots(ctx any, slots any) *MockSlotsSaver_SaveSlots_Call {
	return &MockSlotsSaver_SaveSlots_Call{Call: _e.mock.On("SaveSlots", ctx, slots)}
}

func (_c *MockSlotsSaver_SaveSlots_Call) Return(err error) *MockSlotsSaver_SaveSlots_Call {
	_c.Call.Return(err)
	return _c
}

// MockTransactor

type MockTransactor struct {
	mock.Mock
}

type MockTransactor_Expecter struct {
	mock *mock.Mock
}

func NewMockTransactor(t mockT) *MockTransactor {
	m := &MockTransactor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockTransactor) EXPECT() *MockTransactor_Expecter {
	return &MockTransactor_Expecter{mock: &_m.Mock}
}

func (_m *MockTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ret := _m.Called(ctx, fn)

	if rf, ok := ret.Get(0).(func(context.Context, func(context.Context) error) error); ok {
		return rf(ctx, fn)
	}

	return ret.Error(0)
}

type MockTransactor_WithTransaction_Call struct {
	*mock.Call
}

func (_e *MockTransactor_Expecter) WithTransaction(ctx any, fn any) *MockTransactor_WithTransaction_Call {
	return &MockTransactor_WithTransaction_Call{Call: _e.mock.On("WithTransaction", ctx, fn)}
}

func (_c *MockTransactor_WithTransaction_Call) RunAndReturn(
	run func(ctx context.Context, fn func(ctx context.Context) error) error,
) *MockTransactor_WithTransaction_Call {
	_c.Call.Return(run)
	return _c
}
