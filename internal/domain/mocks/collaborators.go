package mocks

import (
	"context"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/stretchr/testify/mock"
)

// NotifierMock мок domain.Notifier
type NotifierMock struct{ mock.Mock }

func NewNotifierMock(t testingT) *NotifierMock {
	m := &NotifierMock{}
	setup(&m.Mock, t)
	return m
}

type NotifierExpecter struct{ m *mock.Mock }

func (m *NotifierMock) EXPECT() *NotifierExpecter { return &NotifierExpecter{&m.Mock} }

func (e *NotifierExpecter) Notify(ctx, userID, title, message, kind any) *mock.Call {
	return e.m.On("Notify", ctx, userID, title, message, kind)
}

func (m *NotifierMock) Notify(ctx context.Context, userID int64, title, message, kind string) error {
	return m.Called(ctx, userID, title, message, kind).Error(0)
}

// AlertSenderMock мок domain.AlertSender
type AlertSenderMock struct{ mock.Mock }

func NewAlertSenderMock(t testingT) *AlertSenderMock {
	m := &AlertSenderMock{}
	setup(&m.Mock, t)
	return m
}

type AlertSenderExpecter struct{ m *mock.Mock }

func (m *AlertSenderMock) EXPECT() *AlertSenderExpecter { return &AlertSenderExpecter{&m.Mock} }

func (e *AlertSenderExpecter) Send(ctx, alert any) *mock.Call {
	return e.m.On("Send", ctx, alert)
}

func (m *AlertSenderMock) Send(ctx context.Context, alert *domain.OperatorAlert) error {
	return m.Called(ctx, alert).Error(0)
}

// AlertDispatcherMock мок domain.AlertDispatcher
type AlertDispatcherMock struct{ mock.Mock }

func NewAlertDispatcherMock(t testingT) *AlertDispatcherMock {
	m := &AlertDispatcherMock{}
	setup(&m.Mock, t)
	return m
}

type AlertDispatcherExpecter struct{ m *mock.Mock }

func (m *AlertDispatcherMock) EXPECT() *AlertDispatcherExpecter { return &AlertDispatcherExpecter{&m.Mock} }

func (e *AlertDispatcherExpecter) Dispatch(alert any) *mock.Call {
	return e.m.On("Dispatch", alert)
}

func (m *AlertDispatcherMock) Dispatch(alert *domain.OperatorAlert) bool {
	return m.Called(alert).Bool(0)
}
