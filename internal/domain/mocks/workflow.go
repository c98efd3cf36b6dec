// Package mocks provides testify mocks for domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"gooze.dev/pkg/calculo/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

var _ domain.Workflow = (*MockWorkflow)(nil)

// NewMockWorkflow creates a MockWorkflow whose expectations are asserted on test cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Demo provides a mock function.
func (_m *MockWorkflow) Demo(ctx context.Context, args domain.DemoArgs) error {
	return _m.Called(ctx, args).Error(0)
}

// Eval provides a mock function.
func (_m *MockWorkflow) Eval(ctx context.Context, args domain.EvalArgs) error {
	return _m.Called(ctx, args).Error(0)
}

// Batch provides a mock function.
func (_m *MockWorkflow) Batch(ctx context.Context, args domain.BatchArgs) error {
	return _m.Called(ctx, args).Error(0)
}

// Play provides a mock function.
func (_m *MockWorkflow) Play(ctx context.Context, args domain.PlayArgs) error {
	return _m.Called(ctx, args).Error(0)
}
