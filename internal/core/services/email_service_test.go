package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/latadairy/dairy_backend/internal/apperrors"
	portssvc "github.com/latadairy/dairy_backend/internal/core/ports/services"
	"github.com/latadairy/dairy_backend/internal/core/services"
	"github.com/stretchr/testify/suite"
)

// The mock must satisfy the same sender port the services are wired with.
var _ portssvc.EmailSender = (*MockEmailSender)(nil)

type EmailServiceTestSuite struct {
	suite.Suite
	mockSender *MockEmailSender
	service    portssvc.EmailSvcFacade
}

func (suite *EmailServiceTestSuite) SetupTest() {
	suite.mockSender = new(MockEmailSender)
	suite.service = services.NewEmailService(suite.mockSender)
}

func (suite *EmailServiceTestSuite) TestSendEmail_ReturnsProviderMessageID() {
	ctx := context.Background()
	suite.mockSender.On("Send", ctx, "anita@example.com", "Hello", "<p>Hi</p>").
		Return("msg-123", nil).Once()

	messageID, err := suite.service.SendEmail(ctx, "anita@example.com", "Hello", "<p>Hi</p>")

	suite.Require().NoError(err)
	suite.Equal("msg-123", messageID)
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *EmailServiceTestSuite) TestSendEmail_WrapsSenderFailure() {
	ctx := context.Background()
	suite.mockSender.On("Send", ctx, "anita@example.com", "Hello", "<p>Hi</p>").
		Return("", errors.New("provider rejected")).Once()

	messageID, err := suite.service.SendEmail(ctx, "anita@example.com", "Hello", "<p>Hi</p>")

	suite.Require().Error(err)
	suite.Empty(messageID)
	suite.Contains(err.Error(), "anita@example.com")
}

func (suite *EmailServiceTestSuite) TestSendEmail_NotConfigured() {
	ctx := context.Background()
	suite.mockSender.On("Send", ctx, "anita@example.com", "Hello", "<p>Hi</p>").
		Return("", apperrors.ErrEmailNotConfigured).Once()

	_, err := suite.service.SendEmail(ctx, "anita@example.com", "Hello", "<p>Hi</p>")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrEmailNotConfigured)
}

func TestEmailServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmailServiceTestSuite))
}
