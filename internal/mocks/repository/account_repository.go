// Package repository contains testify mocks for the persistence interfaces.
package repository

import (
	"context"

	"loginapi/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	ret := m.Called(ctx, email)

	var account *entity.Account
	if ret.Get(0) != nil {
		account = ret.Get(0).(*entity.Account)
	}

	return account, ret.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	ret := m.Called(ctx, account)

	return ret.Error(0)
}

// NewMockAccountRepository creates a new mock and registers expectation
// assertions with the test's cleanup.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
