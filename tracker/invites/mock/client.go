package mock

import (
	reflect "reflect"

	discord "github.com/disgoorg/disgo/discord"
	rest "github.com/disgoorg/disgo/rest"
	snowflake "github.com/disgoorg/snowflake/v2"
	gomock "go.uber.org/mock/gomock"
)

// MockClient is a mock of Client interface.
type MockClient struct {
	ctrl     *gomock.Controller
	recorder *MockClientMockRecorder
	isgomock struct{}
}

// MockClientMockRecorder is the mock recorder for MockClient.
type MockClientMockRecorder struct {
	mock *MockClient
}

// NewMockClient creates a new mock instance.
func NewMockClient(ctrl *gomock.Controller) *MockClient {
	mock := &MockClient{ctrl: ctrl}
	mock.recorder = &MockClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockClient) EXPECT() *MockClientMockRecorder {
	return m.recorder
}

// DeleteInvite mocks base method.
func (m *MockClient) DeleteInvite(code string, opts ...rest.RequestOpt) (*discord.Invite, error) {
	m.ctrl.T.Helper()
	varargs := []any{code}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "DeleteInvite", varargs...)
	ret0, _ := ret[0].(*discord.Invite)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteInvite indicates an expected call of DeleteInvite.
func (mr *MockClientMockRecorder) DeleteInvite(code any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{code}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteInvite", reflect.TypeOf((*MockClient)(nil).DeleteInvite), varargs...)
}

// GetGuildInvites mocks base method.
func (m *MockClient) GetGuildInvites(guildID snowflake.ID, opts ...rest.RequestOpt) ([]discord.Invite, error) {
	m.ctrl.T.Helper()
	varargs := []any{guildID}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "GetGuildInvites", varargs...)
	ret0, _ := ret[0].([]discord.Invite)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetGuildInvites indicates an expected call of GetGuildInvites.
func (mr *MockClientMockRecorder) GetGuildInvites(guildID any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{guildID}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetGuildInvites", reflect.TypeOf((*MockClient)(nil).GetGuildInvites), varargs...)
}
