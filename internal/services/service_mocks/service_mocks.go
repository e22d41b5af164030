// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package service_mocks is a generated GoMock package.
package service_mocks

import (
	models "flipdar-api/internal/models"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
	decimal "github.com/shopspring/decimal"
)

// MockTransactionServiceInterface is a mock of TransactionServiceInterface interface.
type MockTransactionServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionServiceInterfaceMockRecorder
}

// MockTransactionServiceInterfaceMockRecorder is the mock recorder for MockTransactionServiceInterface.
type MockTransactionServiceInterfaceMockRecorder struct {
	mock *MockTransactionServiceInterface
}

// NewMockTransactionServiceInterface creates a new mock instance.
func NewMockTransactionServiceInterface(ctrl *gomock.Controller) *MockTransactionServiceInterface {
	mock := &MockTransactionServiceInterface{ctrl: ctrl}
	mock.recorder = &MockTransactionServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionServiceInterface) EXPECT() *MockTransactionServiceInterfaceMockRecorder {
	return m.recorder
}

// CreateTransaction mocks base method.
func (m *MockTransactionServiceInterface) CreateTransaction(userID uuid.UUID, txn *models.Transaction) (*models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTransaction", userID, txn)
	ret0, _ := ret[0].(*models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateTransaction indicates an expected call of CreateTransaction.
func (mr *MockTransactionServiceInterfaceMockRecorder) CreateTransaction(userID, txn interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTransaction", reflect.TypeOf((*MockTransactionServiceInterface)(nil).CreateTransaction), userID, txn)
}

// DeleteTransaction mocks base method.
func (m *MockTransactionServiceInterface) DeleteTransaction(id, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTransaction", id, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTransaction indicates an expected call of DeleteTransaction.
func (mr *MockTransactionServiceInterfaceMockRecorder) DeleteTransaction(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTransaction", reflect.TypeOf((*MockTransactionServiceInterface)(nil).DeleteTransaction), id, userID)
}

// GetTransaction mocks base method.
func (m *MockTransactionServiceInterface) GetTransaction(id, userID uuid.UUID) (*models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTransaction", id, userID)
	ret0, _ := ret[0].(*models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTransaction indicates an expected call of GetTransaction.
func (mr *MockTransactionServiceInterfaceMockRecorder) GetTransaction(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTransaction", reflect.TypeOf((*MockTransactionServiceInterface)(nil).GetTransaction), id, userID)
}

// ImportTransactions mocks base method.
func (m *MockTransactionServiceInterface) ImportTransactions(userID uuid.UUID, txns []*models.Transaction) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ImportTransactions", userID, txns)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ImportTransactions indicates an expected call of ImportTransactions.
func (mr *MockTransactionServiceInterfaceMockRecorder) ImportTransactions(userID, txns interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ImportTransactions", reflect.TypeOf((*MockTransactionServiceInterface)(nil).ImportTransactions), userID, txns)
}

// ListTransactions mocks base method.
func (m *MockTransactionServiceInterface) ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTransactions", filters)
	ret0, _ := ret[0].([]models.Transaction)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListTransactions indicates an expected call of ListTransactions.
func (mr *MockTransactionServiceInterfaceMockRecorder) ListTransactions(filters interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTransactions", reflect.TypeOf((*MockTransactionServiceInterface)(nil).ListTransactions), filters)
}

// UpdateTransaction mocks base method.
func (m *MockTransactionServiceInterface) UpdateTransaction(id, userID uuid.UUID, updates map[string]interface{}) (*models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateTransaction", id, userID, updates)
	ret0, _ := ret[0].(*models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateTransaction indicates an expected call of UpdateTransaction.
func (mr *MockTransactionServiceInterfaceMockRecorder) UpdateTransaction(id, userID, updates interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateTransaction", reflect.TypeOf((*MockTransactionServiceInterface)(nil).UpdateTransaction), id, userID, updates)
}

// MockLedgerAnalyticsServiceInterface is a mock of LedgerAnalyticsServiceInterface interface.
type MockLedgerAnalyticsServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerAnalyticsServiceInterfaceMockRecorder
}

// MockLedgerAnalyticsServiceInterfaceMockRecorder is the mock recorder for MockLedgerAnalyticsServiceInterface.
type MockLedgerAnalyticsServiceInterfaceMockRecorder struct {
	mock *MockLedgerAnalyticsServiceInterface
}

// NewMockLedgerAnalyticsServiceInterface creates a new mock instance.
func NewMockLedgerAnalyticsServiceInterface(ctrl *gomock.Controller) *MockLedgerAnalyticsServiceInterface {
	mock := &MockLedgerAnalyticsServiceInterface{ctrl: ctrl}
	mock.recorder = &MockLedgerAnalyticsServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedgerAnalyticsServiceInterface) EXPECT() *MockLedgerAnalyticsServiceInterfaceMockRecorder {
	return m.recorder
}

// GetBestFlip mocks base method.
func (m *MockLedgerAnalyticsServiceInterface) GetBestFlip(userID uuid.UUID) (*models.BestFlip, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBestFlip", userID)
	ret0, _ := ret[0].(*models.BestFlip)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBestFlip indicates an expected call of GetBestFlip.
func (mr *MockLedgerAnalyticsServiceInterfaceMockRecorder) GetBestFlip(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBestFlip", reflect.TypeOf((*MockLedgerAnalyticsServiceInterface)(nil).GetBestFlip), userID)
}

// GetSummary mocks base method.
func (m *MockLedgerAnalyticsServiceInterface) GetSummary(userID uuid.UUID, startDate, endDate *time.Time) (*models.LedgerSummary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSummary", userID, startDate, endDate)
	ret0, _ := ret[0].(*models.LedgerSummary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSummary indicates an expected call of GetSummary.
func (mr *MockLedgerAnalyticsServiceInterfaceMockRecorder) GetSummary(userID, startDate, endDate interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSummary", reflect.TypeOf((*MockLedgerAnalyticsServiceInterface)(nil).GetSummary), userID, startDate, endDate)
}

// GetTopItems mocks base method.
func (m *MockLedgerAnalyticsServiceInterface) GetTopItems(userID uuid.UUID, limit int) ([]models.ItemProfit, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTopItems", userID, limit)
	ret0, _ := ret[0].([]models.ItemProfit)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTopItems indicates an expected call of GetTopItems.
func (mr *MockLedgerAnalyticsServiceInterfaceMockRecorder) GetTopItems(userID, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTopItems", reflect.TypeOf((*MockLedgerAnalyticsServiceInterface)(nil).GetTopItems), userID, limit)
}

// GetTrendSeries mocks base method.
func (m *MockLedgerAnalyticsServiceInterface) GetTrendSeries(userID uuid.UUID, startDate, endDate *time.Time) ([]models.TrendPoint, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTrendSeries", userID, startDate, endDate)
	ret0, _ := ret[0].([]models.TrendPoint)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTrendSeries indicates an expected call of GetTrendSeries.
func (mr *MockLedgerAnalyticsServiceInterfaceMockRecorder) GetTrendSeries(userID, startDate, endDate interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTrendSeries", reflect.TypeOf((*MockLedgerAnalyticsServiceInterface)(nil).GetTrendSeries), userID, startDate, endDate)
}

// MockSearchHistoryServiceInterface is a mock of SearchHistoryServiceInterface interface.
type MockSearchHistoryServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSearchHistoryServiceInterfaceMockRecorder
}

// MockSearchHistoryServiceInterfaceMockRecorder is the mock recorder for MockSearchHistoryServiceInterface.
type MockSearchHistoryServiceInterfaceMockRecorder struct {
	mock *MockSearchHistoryServiceInterface
}

// NewMockSearchHistoryServiceInterface creates a new mock instance.
func NewMockSearchHistoryServiceInterface(ctrl *gomock.Controller) *MockSearchHistoryServiceInterface {
	mock := &MockSearchHistoryServiceInterface{ctrl: ctrl}
	mock.recorder = &MockSearchHistoryServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSearchHistoryServiceInterface) EXPECT() *MockSearchHistoryServiceInterfaceMockRecorder {
	return m.recorder
}

// DeleteSearch mocks base method.
func (m *MockSearchHistoryServiceInterface) DeleteSearch(id, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteSearch", id, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteSearch indicates an expected call of DeleteSearch.
func (mr *MockSearchHistoryServiceInterfaceMockRecorder) DeleteSearch(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteSearch", reflect.TypeOf((*MockSearchHistoryServiceInterface)(nil).DeleteSearch), id, userID)
}

// GetRecentSearches mocks base method.
func (m *MockSearchHistoryServiceInterface) GetRecentSearches(userID uuid.UUID, limit int) ([]models.SearchRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecentSearches", userID, limit)
	ret0, _ := ret[0].([]models.SearchRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecentSearches indicates an expected call of GetRecentSearches.
func (mr *MockSearchHistoryServiceInterfaceMockRecorder) GetRecentSearches(userID, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecentSearches", reflect.TypeOf((*MockSearchHistoryServiceInterface)(nil).GetRecentSearches), userID, limit)
}

// GetSearchAnalytics mocks base method.
func (m *MockSearchHistoryServiceInterface) GetSearchAnalytics(userID uuid.UUID) (*models.SearchAnalytics, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSearchAnalytics", userID)
	ret0, _ := ret[0].(*models.SearchAnalytics)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSearchAnalytics indicates an expected call of GetSearchAnalytics.
func (mr *MockSearchHistoryServiceInterfaceMockRecorder) GetSearchAnalytics(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSearchAnalytics", reflect.TypeOf((*MockSearchHistoryServiceInterface)(nil).GetSearchAnalytics), userID)
}

// RecordSearch mocks base method.
func (m *MockSearchHistoryServiceInterface) RecordSearch(userID uuid.UUID, record *models.SearchRecord) (*models.SearchRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordSearch", userID, record)
	ret0, _ := ret[0].(*models.SearchRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecordSearch indicates an expected call of RecordSearch.
func (mr *MockSearchHistoryServiceInterfaceMockRecorder) RecordSearch(userID, record interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordSearch", reflect.TypeOf((*MockSearchHistoryServiceInterface)(nil).RecordSearch), userID, record)
}

// MockSuggestionServiceInterface is a mock of SuggestionServiceInterface interface.
type MockSuggestionServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSuggestionServiceInterfaceMockRecorder
}

// MockSuggestionServiceInterfaceMockRecorder is the mock recorder for MockSuggestionServiceInterface.
type MockSuggestionServiceInterfaceMockRecorder struct {
	mock *MockSuggestionServiceInterface
}

// NewMockSuggestionServiceInterface creates a new mock instance.
func NewMockSuggestionServiceInterface(ctrl *gomock.Controller) *MockSuggestionServiceInterface {
	mock := &MockSuggestionServiceInterface{ctrl: ctrl}
	mock.recorder = &MockSuggestionServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSuggestionServiceInterface) EXPECT() *MockSuggestionServiceInterfaceMockRecorder {
	return m.recorder
}

// GetSuggestions mocks base method.
func (m *MockSuggestionServiceInterface) GetSuggestions(userID uuid.UUID, prefix string) (*models.SuggestionSet, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSuggestions", userID, prefix)
	ret0, _ := ret[0].(*models.SuggestionSet)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSuggestions indicates an expected call of GetSuggestions.
func (mr *MockSuggestionServiceInterfaceMockRecorder) GetSuggestions(userID, prefix interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSuggestions", reflect.TypeOf((*MockSuggestionServiceInterface)(nil).GetSuggestions), userID, prefix)
}

// MockMetricsRecorderInterface is a mock of MetricsRecorderInterface interface.
type MockMetricsRecorderInterface struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsRecorderInterfaceMockRecorder
}

// MockMetricsRecorderInterfaceMockRecorder is the mock recorder for MockMetricsRecorderInterface.
type MockMetricsRecorderInterfaceMockRecorder struct {
	mock *MockMetricsRecorderInterface
}

// NewMockMetricsRecorderInterface creates a new mock instance.
func NewMockMetricsRecorderInterface(ctrl *gomock.Controller) *MockMetricsRecorderInterface {
	mock := &MockMetricsRecorderInterface{ctrl: ctrl}
	mock.recorder = &MockMetricsRecorderInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetricsRecorderInterface) EXPECT() *MockMetricsRecorderInterfaceMockRecorder {
	return m.recorder
}

// IncrementCounter mocks base method.
func (m *MockMetricsRecorderInterface) IncrementCounter(name string, tags map[string]string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "IncrementCounter", name, tags)
}

// IncrementCounter indicates an expected call of IncrementCounter.
func (mr *MockMetricsRecorderInterfaceMockRecorder) IncrementCounter(name, tags interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementCounter", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).IncrementCounter), name, tags)
}

// RecordGauge mocks base method.
func (m *MockMetricsRecorderInterface) RecordGauge(name string, value float64, tags map[string]string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordGauge", name, value, tags)
}

// RecordGauge indicates an expected call of RecordGauge.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordGauge(name, value, tags interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordGauge", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordGauge), name, value, tags)
}

// RecordProcessingTime mocks base method.
func (m *MockMetricsRecorderInterface) RecordProcessingTime(name string, duration time.Duration) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordProcessingTime", name, duration)
}

// RecordProcessingTime indicates an expected call of RecordProcessingTime.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordProcessingTime(name, duration interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordProcessingTime", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordProcessingTime), name, duration)
}

// MockTokenServiceInterface is a mock of TokenServiceInterface interface.
type MockTokenServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTokenServiceInterfaceMockRecorder
}

// MockTokenServiceInterfaceMockRecorder is the mock recorder for MockTokenServiceInterface.
type MockTokenServiceInterfaceMockRecorder struct {
	mock *MockTokenServiceInterface
}

// NewMockTokenServiceInterface creates a new mock instance.
func NewMockTokenServiceInterface(ctrl *gomock.Controller) *MockTokenServiceInterface {
	mock := &MockTokenServiceInterface{ctrl: ctrl}
	mock.recorder = &MockTokenServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTokenServiceInterface) EXPECT() *MockTokenServiceInterfaceMockRecorder {
	return m.recorder
}

// ExtractTokenFromHeader mocks base method.
func (m *MockTokenServiceInterface) ExtractTokenFromHeader(authHeader string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExtractTokenFromHeader", authHeader)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExtractTokenFromHeader indicates an expected call of ExtractTokenFromHeader.
func (mr *MockTokenServiceInterfaceMockRecorder) ExtractTokenFromHeader(authHeader interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExtractTokenFromHeader", reflect.TypeOf((*MockTokenServiceInterface)(nil).ExtractTokenFromHeader), authHeader)
}

// GenerateAccessToken mocks base method.
func (m *MockTokenServiceInterface) GenerateAccessToken(userID uuid.UUID, email string) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateAccessToken", userID, email)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(time.Time)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GenerateAccessToken indicates an expected call of GenerateAccessToken.
func (mr *MockTokenServiceInterfaceMockRecorder) GenerateAccessToken(userID, email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateAccessToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).GenerateAccessToken), userID, email)
}

// GetTokenExpiry mocks base method.
func (m *MockTokenServiceInterface) GetTokenExpiry(tokenString string) (time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTokenExpiry", tokenString)
	ret0, _ := ret[0].(time.Time)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTokenExpiry indicates an expected call of GetTokenExpiry.
func (mr *MockTokenServiceInterfaceMockRecorder) GetTokenExpiry(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTokenExpiry", reflect.TypeOf((*MockTokenServiceInterface)(nil).GetTokenExpiry), tokenString)
}

// ValidateAccessToken mocks base method.
func (m *MockTokenServiceInterface) ValidateAccessToken(tokenString string) (*models.CustomClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateAccessToken", tokenString)
	ret0, _ := ret[0].(*models.CustomClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ValidateAccessToken indicates an expected call of ValidateAccessToken.
func (mr *MockTokenServiceInterfaceMockRecorder) ValidateAccessToken(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateAccessToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).ValidateAccessToken), tokenString)
}

// MockTransactionGeneratorInterface is a mock of TransactionGeneratorInterface interface.
type MockTransactionGeneratorInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionGeneratorInterfaceMockRecorder
}

// MockTransactionGeneratorInterfaceMockRecorder is the mock recorder for MockTransactionGeneratorInterface.
type MockTransactionGeneratorInterfaceMockRecorder struct {
	mock *MockTransactionGeneratorInterface
}

// NewMockTransactionGeneratorInterface creates a new mock instance.
func NewMockTransactionGeneratorInterface(ctrl *gomock.Controller) *MockTransactionGeneratorInterface {
	mock := &MockTransactionGeneratorInterface{ctrl: ctrl}
	mock.recorder = &MockTransactionGeneratorInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionGeneratorInterface) EXPECT() *MockTransactionGeneratorInterfaceMockRecorder {
	return m.recorder
}

// GenerateFlipPairs mocks base method.
func (m *MockTransactionGeneratorInterface) GenerateFlipPairs(userID uuid.UUID, startDate, endDate time.Time, pairCount int) []*models.Transaction {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateFlipPairs", userID, startDate, endDate, pairCount)
	ret0, _ := ret[0].([]*models.Transaction)
	return ret0
}

// GenerateFlipPairs indicates an expected call of GenerateFlipPairs.
func (mr *MockTransactionGeneratorInterfaceMockRecorder) GenerateFlipPairs(userID, startDate, endDate, pairCount interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateFlipPairs", reflect.TypeOf((*MockTransactionGeneratorInterface)(nil).GenerateFlipPairs), userID, startDate, endDate, pairCount)
}

// GenerateHistoricalTransactions mocks base method.
func (m *MockTransactionGeneratorInterface) GenerateHistoricalTransactions(userID uuid.UUID, startDate, endDate time.Time, count int) []*models.Transaction {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateHistoricalTransactions", userID, startDate, endDate, count)
	ret0, _ := ret[0].([]*models.Transaction)
	return ret0
}

// GenerateHistoricalTransactions indicates an expected call of GenerateHistoricalTransactions.
func (mr *MockTransactionGeneratorInterfaceMockRecorder) GenerateHistoricalTransactions(userID, startDate, endDate, count interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateHistoricalTransactions", reflect.TypeOf((*MockTransactionGeneratorInterface)(nil).GenerateHistoricalTransactions), userID, startDate, endDate, count)
}

// GeneratePurchasePrice mocks base method.
func (m *MockTransactionGeneratorInterface) GeneratePurchasePrice(item string) decimal.Decimal {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GeneratePurchasePrice", item)
	ret0, _ := ret[0].(decimal.Decimal)
	return ret0
}

// GeneratePurchasePrice indicates an expected call of GeneratePurchasePrice.
func (mr *MockTransactionGeneratorInterfaceMockRecorder) GeneratePurchasePrice(item interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GeneratePurchasePrice", reflect.TypeOf((*MockTransactionGeneratorInterface)(nil).GeneratePurchasePrice), item)
}

// GenerateSalePrice mocks base method.
func (m *MockTransactionGeneratorInterface) GenerateSalePrice(purchasePrice decimal.Decimal) decimal.Decimal {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateSalePrice", purchasePrice)
	ret0, _ := ret[0].(decimal.Decimal)
	return ret0
}

// GenerateSalePrice indicates an expected call of GenerateSalePrice.
func (mr *MockTransactionGeneratorInterfaceMockRecorder) GenerateSalePrice(purchasePrice interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateSalePrice", reflect.TypeOf((*MockTransactionGeneratorInterface)(nil).GenerateSalePrice), purchasePrice)
}

// GenerateTimestamp mocks base method.
func (m *MockTransactionGeneratorInterface) GenerateTimestamp(startDate, endDate time.Time) time.Time {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateTimestamp", startDate, endDate)
	ret0, _ := ret[0].(time.Time)
	return ret0
}

// GenerateTimestamp indicates an expected call of GenerateTimestamp.
func (mr *MockTransactionGeneratorInterfaceMockRecorder) GenerateTimestamp(startDate, endDate interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateTimestamp", reflect.TypeOf((*MockTransactionGeneratorInterface)(nil).GenerateTimestamp), startDate, endDate)
}

// SelectRandomItem mocks base method.
func (m *MockTransactionGeneratorInterface) SelectRandomItem() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SelectRandomItem")
	ret0, _ := ret[0].(string)
	return ret0
}

// SelectRandomItem indicates an expected call of SelectRandomItem.
func (mr *MockTransactionGeneratorInterfaceMockRecorder) SelectRandomItem() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SelectRandomItem", reflect.TypeOf((*MockTransactionGeneratorInterface)(nil).SelectRandomItem))
}
