// Package service contains testify mocks for the domain service interfaces.
package service

import (
	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	ret := m.Called(password, hash)

	return ret.Bool(0)
}

func NewMockPasswordHasher(t mockConstructorTestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPasswordPolicy is a mock of service.PasswordPolicy.
type MockPasswordPolicy struct {
	mock.Mock
}

func (m *MockPasswordPolicy) Validate(password string) error {
	ret := m.Called(password)

	return ret.Error(0)
}

func NewMockPasswordPolicy(t mockConstructorTestingT) *MockPasswordPolicy {
	m := &MockPasswordPolicy{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTokenCodec is a mock of service.TokenCodec.
type MockTokenCodec struct {
	mock.Mock
}

func (m *MockTokenCodec) Issue(subject string) (string, error) {
	ret := m.Called(subject)

	return ret.String(0), ret.Error(1)
}

func (m *MockTokenCodec) Validate(token string) (string, error) {
	ret := m.Called(token)

	return ret.String(0), ret.Error(1)
}

func NewMockTokenCodec(t mockConstructorTestingT) *MockTokenCodec {
	m := &MockTokenCodec{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
