package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gstnote/gstnote_backend/internal/core/domain"
)

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompanyWithAdmin(ctx context.Context, company domain.Company, admin domain.UserProfile) (*domain.Company, *domain.User, error) {
	args := m.Called(ctx, company, admin)
	var c *domain.Company
	var u *domain.User
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Company)
	}
	if args.Get(1) != nil {
		u = args.Get(1).(*domain.User)
	}
	return c, u, args.Error(2)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, companyID int64, profile domain.UserProfile) (*domain.User, error) {
	args := m.Called(ctx, companyID, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, companyID int64, userID string) (*domain.User, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsersByCompany(ctx context.Context, companyID int64) ([]domain.User, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, companyID int64, userID string) error {
	args := m.Called(ctx, companyID, userID)
	return args.Error(0)
}

// --- Mock VendorRepository ---
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) SaveVendor(ctx context.Context, companyID int64, profile domain.VendorProfile) (*domain.Vendor, error) {
	args := m.Called(ctx, companyID, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindVendorByID(ctx context.Context, companyID, vendorID int64) (*domain.Vendor, error) {
	args := m.Called(ctx, companyID, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindVendorsByCompany(ctx context.Context, companyID int64) ([]domain.Vendor, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) DeleteVendor(ctx context.Context, companyID, vendorID int64) error {
	args := m.Called(ctx, companyID, vendorID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, companyID, vendorID int64, noteType domain.NoteType, details domain.NoteDetails) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, vendorID, noteType, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, companyID int64, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByCompany(ctx context.Context, companyID int64) ([]domain.TransactionListing, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionListing), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransactionDetails(ctx context.Context, companyID int64, transactionID string, details domain.NoteDetails) error {
	args := m.Called(ctx, companyID, transactionID, details)
	return args.Error(0)
}

func (m *MockTransactionRepository) SetTransactionStatus(ctx context.Context, companyID int64, transactionID string, status string) error {
	args := m.Called(ctx, companyID, transactionID, status)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, companyID int64, transactionID string) error {
	args := m.Called(ctx, companyID, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindItemGroup(ctx context.Context, companyID int64, transactionID string) (*domain.ItemGroup, error) {
	args := m.Called(ctx, companyID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemGroup), args.Error(1)
}

func (m *MockTransactionRepository) SaveItemGroup(ctx context.Context, companyID int64, transactionID string, items []domain.NoteItem) error {
	args := m.Called(ctx, companyID, transactionID, items)
	return args.Error(0)
}
