package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	domainerr "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/dto"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/johnjerry8749/Affiliate-Academy-sub000/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func multipartRequest(t *testing.T, fields map[string]string, filename, contentType string, data []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+ProofFormField+`"; filename="`+filename+`"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/payments/crypto/submit", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func newCryptoRouter(t *testing.T) (*gin.Engine, *usecasemocks.MockCryptoPaymentUseCase) {
	gin.SetMode(gin.TestMode)
	crypto := usecasemocks.NewMockCryptoPaymentUseCase(t)
	h := NewPaymentHandler(usecasemocks.NewMockGatewayPaymentUseCase(t), crypto, logger.NewNoopLogger())

	router := gin.New()
	router.POST("/api/payments/crypto/submit", h.SubmitCrypto)
	return router, crypto
}

var registrationFields = map[string]string{
	"fullName":      "Ada Obi",
	"email":         "ada@example.com",
	"password":      "secret-pass",
	"phoneNumber":   "+2348000000000",
	"country":       "Nigeria",
	"agreedToTerms": "true",
	"walletName":    "USDT",
	"walletAddress": "TXabc",
}

func TestSubmitCrypto(t *testing.T) {
	t.Run("passes the form and file to the use case", func(t *testing.T) {
		router, crypto := newCryptoRouter(t)
		crypto.On("SubmitProof", mock.Anything, mock.MatchedBy(func(s usecase.CryptoSubmission) bool {
			return s.Registration.PaymentMethod == string(entity.PaymentMethodCrypto) &&
				s.Registration.AgreedToTerms &&
				s.Registration.Email == "ada@example.com" &&
				s.WalletName == "USDT" &&
				s.File.Filename == "proof.png" &&
				s.File.ContentType == "image/png" &&
				bytes.Equal(s.File.Data, pngHeader)
		})).Return(&usecase.ProofSubmission{
			Account: &entity.Account{ID: "u1", Email: "ada@example.com"},
			Proof:   &entity.PaymentProof{ID: "p1", UserID: "u1", Status: entity.ProofStatusPending},
			Message: "Registration received",
		}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, registrationFields, "proof.png", "image/png", pngHeader))

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.ProofSubmissionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, LoginRedirect, resp.Redirect)
		assert.Equal(t, "pending", resp.Proof.Status)
		assert.False(t, resp.User.Paid)
	})

	t.Run("missing file", func(t *testing.T) {
		router, _ := newCryptoRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, registrationFields, "", "", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("oversized file never reaches the use case", func(t *testing.T) {
		router, _ := newCryptoRouter(t)
		data := make([]byte, entity.MaxProofSize+1)
		copy(data, pngHeader)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, registrationFields, "proof.png", "image/png", data))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), domainerr.ErrFileTooLarge.Error())
	})

	t.Run("use case rejects a non-image", func(t *testing.T) {
		router, crypto := newCryptoRouter(t)
		crypto.On("SubmitProof", mock.Anything, mock.Anything).Return(nil, domainerr.ErrInvalidFile)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, registrationFields, "proof.pdf", "application/pdf", []byte("%PDF-1.4")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReferralStatus(t *testing.T) {
	assert.Empty(t, referralStatus(nil))
	assert.Equal(t, "credited", referralStatus(&usecase.FollowUpOutcome{Name: "referral", Attempts: 1}))
	assert.Equal(t, "failed", referralStatus(&usecase.FollowUpOutcome{Name: "referral", Err: domainerr.ErrAccountNotFound}))
}
