package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gstnote/gstnote_backend/internal/apperrors"
	"github.com/gstnote/gstnote_backend/internal/core/domain"
	"github.com/gstnote/gstnote_backend/internal/core/services"
	"github.com/gstnote/gstnote_backend/internal/dto"
)

type VendorServiceTestSuite struct {
	suite.Suite
	mockRepo *MockVendorRepository
	service  *services.VendorService
}

func (suite *VendorServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockVendorRepository)
	suite.service = services.NewVendorService(suite.mockRepo)
}

func TestVendorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VendorServiceTestSuite))
}

func (suite *VendorServiceTestSuite) TestCreateVendor_CodeComesFromRepository() {
	ctx := context.Background()
	companyID := int64(7)
	req := dto.CreateVendorRequest{
		VendorName: "Acme Traders",
		Address:    "14 MG Road, Pune",
		GSTIN:      "27AAPFU0939F1ZV",
	}

	suite.mockRepo.On("SaveVendor", ctx, companyID, mock.MatchedBy(func(p domain.VendorProfile) bool {
		// the service must not invent a code; allocation happens in the repo
		return p.VendorName == "Acme Traders" && p.VendorCode == ""
	})).Return(&domain.Vendor{
		VendorID:  11,
		CompanyID: companyID,
		Profile:   domain.VendorProfile{VendorName: "Acme Traders", VendorCode: "VDR003"},
	}, nil).Once()

	vendor, err := suite.service.CreateVendor(ctx, companyID, req)

	suite.Require().NoError(err)
	suite.Equal(int64(11), vendor.VendorID)
	suite.Equal("VDR003", vendor.Profile.VendorCode)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestUpdateVendor_PreservesVendorCode() {
	ctx := context.Background()
	companyID := int64(7)
	newName := "Acme Traders Pvt Ltd"

	suite.mockRepo.On("FindVendorByID", ctx, companyID, int64(11)).Return(&domain.Vendor{
		VendorID:  11,
		CompanyID: companyID,
		Profile:   domain.VendorProfile{VendorName: "Acme Traders", VendorCode: "VDR003", GSTIN: "27AAPFU0939F1ZV"},
	}, nil).Once()
	suite.mockRepo.On("UpdateVendor", ctx, mock.MatchedBy(func(v domain.Vendor) bool {
		return v.Profile.VendorName == newName && v.Profile.VendorCode == "VDR003" && v.Profile.GSTIN == "27AAPFU0939F1ZV"
	})).Return(nil).Once()

	vendor, err := suite.service.UpdateVendor(ctx, companyID, 11, dto.UpdateVendorRequest{VendorName: &newName})

	suite.Require().NoError(err)
	suite.Equal("VDR003", vendor.Profile.VendorCode)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestUpdateVendor_NotFoundPassesThrough() {
	ctx := context.Background()
	newName := "Anyone"

	suite.mockRepo.On("FindVendorByID", ctx, int64(7), int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateVendor(ctx, 7, 404, dto.UpdateVendorRequest{VendorName: &newName})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateVendor", mock.Anything, mock.Anything)
}

func (suite *VendorServiceTestSuite) TestDeleteVendor_NotFoundPassesThrough() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteVendor", ctx, int64(7), int64(404)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteVendor(ctx, 7, 404)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}
