// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package repository_mocks is a generated GoMock package.
package repository_mocks

import (
	models "flipdar-api/internal/models"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
)

// MockTransactionRepositoryInterface is a mock of TransactionRepositoryInterface interface.
type MockTransactionRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionRepositoryInterfaceMockRecorder
}

// MockTransactionRepositoryInterfaceMockRecorder is the mock recorder for MockTransactionRepositoryInterface.
type MockTransactionRepositoryInterfaceMockRecorder struct {
	mock *MockTransactionRepositoryInterface
}

// NewMockTransactionRepositoryInterface creates a new mock instance.
func NewMockTransactionRepositoryInterface(ctrl *gomock.Controller) *MockTransactionRepositoryInterface {
	mock := &MockTransactionRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockTransactionRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionRepositoryInterface) EXPECT() *MockTransactionRepositoryInterfaceMockRecorder {
	return m.recorder
}

// CountByUserID mocks base method.
func (m *MockTransactionRepositoryInterface) CountByUserID(userID uuid.UUID) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountByUserID", userID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountByUserID indicates an expected call of CountByUserID.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) CountByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountByUserID", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).CountByUserID), userID)
}

// Create mocks base method.
func (m *MockTransactionRepositoryInterface) Create(transaction *models.Transaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", transaction)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) Create(transaction interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).Create), transaction)
}

// CreateBatch mocks base method.
func (m *MockTransactionRepositoryInterface) CreateBatch(transactions []*models.Transaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBatch", transactions)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBatch indicates an expected call of CreateBatch.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) CreateBatch(transactions interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBatch", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).CreateBatch), transactions)
}

// Delete mocks base method.
func (m *MockTransactionRepositoryInterface) Delete(id, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) Delete(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).Delete), id, userID)
}

// DeleteByUserID mocks base method.
func (m *MockTransactionRepositoryInterface) DeleteByUserID(userID uuid.UUID) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteByUserID", userID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteByUserID indicates an expected call of DeleteByUserID.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) DeleteByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteByUserID", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).DeleteByUserID), userID)
}

// GetByDateRange mocks base method.
func (m *MockTransactionRepositoryInterface) GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByDateRange", userID, startDate, endDate)
	ret0, _ := ret[0].([]models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByDateRange indicates an expected call of GetByDateRange.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) GetByDateRange(userID, startDate, endDate interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByDateRange", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).GetByDateRange), userID, startDate, endDate)
}

// GetByID mocks base method.
func (m *MockTransactionRepositoryInterface) GetByID(id uuid.UUID) (*models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).GetByID), id)
}

// GetByUserID mocks base method.
func (m *MockTransactionRepositoryInterface) GetByUserID(userID uuid.UUID) ([]models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID)
	ret0, _ := ret[0].([]models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) GetByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).GetByUserID), userID)
}

// GetDistinctConditions mocks base method.
func (m *MockTransactionRepositoryInterface) GetDistinctConditions(userID uuid.UUID) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDistinctConditions", userID)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDistinctConditions indicates an expected call of GetDistinctConditions.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) GetDistinctConditions(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDistinctConditions", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).GetDistinctConditions), userID)
}

// GetDistinctItems mocks base method.
func (m *MockTransactionRepositoryInterface) GetDistinctItems(userID uuid.UUID) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDistinctItems", userID)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDistinctItems indicates an expected call of GetDistinctItems.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) GetDistinctItems(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDistinctItems", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).GetDistinctItems), userID)
}

// GetDistinctPlatforms mocks base method.
func (m *MockTransactionRepositoryInterface) GetDistinctPlatforms(userID uuid.UUID) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDistinctPlatforms", userID)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDistinctPlatforms indicates an expected call of GetDistinctPlatforms.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) GetDistinctPlatforms(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDistinctPlatforms", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).GetDistinctPlatforms), userID)
}

// GetWithFilters mocks base method.
func (m *MockTransactionRepositoryInterface) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetWithFilters", filters)
	ret0, _ := ret[0].([]models.Transaction)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetWithFilters indicates an expected call of GetWithFilters.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) GetWithFilters(filters interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetWithFilters", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).GetWithFilters), filters)
}

// Update mocks base method.
func (m *MockTransactionRepositoryInterface) Update(transaction *models.Transaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", transaction)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) Update(transaction interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).Update), transaction)
}

// MockSearchHistoryRepositoryInterface is a mock of SearchHistoryRepositoryInterface interface.
type MockSearchHistoryRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSearchHistoryRepositoryInterfaceMockRecorder
}

// MockSearchHistoryRepositoryInterfaceMockRecorder is the mock recorder for MockSearchHistoryRepositoryInterface.
type MockSearchHistoryRepositoryInterfaceMockRecorder struct {
	mock *MockSearchHistoryRepositoryInterface
}

// NewMockSearchHistoryRepositoryInterface creates a new mock instance.
func NewMockSearchHistoryRepositoryInterface(ctrl *gomock.Controller) *MockSearchHistoryRepositoryInterface {
	mock := &MockSearchHistoryRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockSearchHistoryRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSearchHistoryRepositoryInterface) EXPECT() *MockSearchHistoryRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockSearchHistoryRepositoryInterface) Create(record *models.SearchRecord) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", record)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockSearchHistoryRepositoryInterfaceMockRecorder) Create(record interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockSearchHistoryRepositoryInterface)(nil).Create), record)
}

// Delete mocks base method.
func (m *MockSearchHistoryRepositoryInterface) Delete(id, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockSearchHistoryRepositoryInterfaceMockRecorder) Delete(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockSearchHistoryRepositoryInterface)(nil).Delete), id, userID)
}

// GetAnalytics mocks base method.
func (m *MockSearchHistoryRepositoryInterface) GetAnalytics(userID uuid.UUID) (int64, string, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAnalytics", userID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(string)
	ret2, _ := ret[2].(int64)
	ret3, _ := ret[3].(error)
	return ret0, ret1, ret2, ret3
}

// GetAnalytics indicates an expected call of GetAnalytics.
func (mr *MockSearchHistoryRepositoryInterfaceMockRecorder) GetAnalytics(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAnalytics", reflect.TypeOf((*MockSearchHistoryRepositoryInterface)(nil).GetAnalytics), userID)
}

// GetByID mocks base method.
func (m *MockSearchHistoryRepositoryInterface) GetByID(id uuid.UUID) (*models.SearchRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.SearchRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockSearchHistoryRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockSearchHistoryRepositoryInterface)(nil).GetByID), id)
}

// GetRecentByUserID mocks base method.
func (m *MockSearchHistoryRepositoryInterface) GetRecentByUserID(userID uuid.UUID, limit int) ([]models.SearchRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecentByUserID", userID, limit)
	ret0, _ := ret[0].([]models.SearchRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecentByUserID indicates an expected call of GetRecentByUserID.
func (mr *MockSearchHistoryRepositoryInterfaceMockRecorder) GetRecentByUserID(userID, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecentByUserID", reflect.TypeOf((*MockSearchHistoryRepositoryInterface)(nil).GetRecentByUserID), userID, limit)
}
