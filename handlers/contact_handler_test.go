package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"orgsite-cms/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactService struct {
	err  error
	sent []models.ContactRequest
}

func (s *fakeContactService) Send(req models.ContactRequest) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, req)
	return nil
}

type contactResponse struct {
	Code    int    `json:"code"`
	Message string `json:"code_message"`
	Data    struct {
		Delivered bool `json:"delivered"`
	} `json:"data"`
}

func postContact(t *testing.T, svc *fakeContactService, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/contact", NewContactHandler(svc).SubmitContact)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitContactDelivers(t *testing.T) {
	svc := &fakeContactService{}

	w := postContact(t, svc, models.ContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello there",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp contactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Delivered)
	assert.Equal(t, "Your message has been sent", resp.Message)

	require.Len(t, svc.sent, 1)
	assert.Equal(t, "visitor@example.com", svc.sent[0].Email)
}

func TestSubmitContactSoftensDeliveryFailure(t *testing.T) {
	svc := &fakeContactService{err: errors.New("smtp: connection refused")}

	w := postContact(t, svc, models.ContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello there",
	})

	// A failed send never fails the request: still 200, with a
	// retry-later message and delivered set to false.
	require.Equal(t, http.StatusOK, w.Code)

	var resp contactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Delivered)
	assert.Equal(t, "We could not send your message right now. Please try again later.", resp.Message)
}

func TestSubmitContactRejectsInvalidPayload(t *testing.T) {
	svc := &fakeContactService{}

	w := postContact(t, svc, map[string]string{
		"name":    "Visitor",
		"email":   "not-an-email",
		"message": "Hello there",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.sent)
}
