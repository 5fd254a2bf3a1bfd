package mocks

import (
	"github.com/stretchr/testify/mock"

	"employee-portal/internal/domain"
	"employee-portal/internal/realtime"
)

type Broadcaster struct {
	mock.Mock
}

func (m *Broadcaster) Broadcast(name domain.EventName, record any, scope realtime.Scope) {
	m.Called(name, record, scope)
}
