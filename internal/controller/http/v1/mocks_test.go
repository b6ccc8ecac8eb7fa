package v1_test

import (
	"context"

	"github.com/kurochkinivan/port_assigner/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPortsRepository struct {
	mock.Mock
}

type MockPortsRepository_Expecter struct {
	mock *mock.Mock
}

func NewMockPortsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPortsRepository {
	m := &MockPortsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockPortsRepository) EXPECT() *MockPortsRepository_Expecter {
	return &MockPortsRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockPortsRepository) Racks(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}

	return r0, ret.Error(1)
}

func (_m *MockPortsRepository) SlotsByRack(ctx context.Context, rack string, limit, offset uint64) ([]*domain.Slot, int, error) {
	ret := _m.Called(ctx, rack, limit, offset)

	var r0 []*domain.Slot
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Slot)
	}

	return r0, ret.Int(1), ret.Error(2)
}

type MockPortsRepository_Racks_Call struct {
	*mock.Call
}

func (_e *MockPortsRepository_Expecter) Racks(ctx any) *MockPortsRepository_Racks_Call {
	return &MockPortsRepository_Racks_Call{Call: _e.mock.On("Racks", ctx)}
}

func (_c *MockPortsRepository_Racks_Call) Return(racks []string, err error) *MockPortsRepository_Racks_Call {
	_c.Call.Return(racks, err)
	return _c
}

type MockPortsRepository_SlotsByRack_Call struct {
	*mock.Call
}

func (_e *MockPortsRepository_Expecter) SlotsByRack(ctx any, rack any, limit any, offset any) *MockPortsRepository_SlotsByRack_Call {
	return &MockPortsRepository_SlotsByRack_Call{Call: _e.mock.On("SlotsByRack", ctx, rack, limit, offset)}
}

func (_c *MockPortsRepository_SlotsByRack_Call) Return(slots []*domain.Slot, total int, err error) *MockPortsRepository_SlotsByRack_Call {
	_c.Call.Return(slots, total, err)
	return _c
}
