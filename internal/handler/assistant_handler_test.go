package handler_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"termsheet/internal/domain"
	"termsheet/internal/handler"
	"termsheet/mocks"
)

func newAssistantRouter(svc *mocks.MockAssistantService) *gin.Engine {
	h := handler.NewAssistantHandler(svc)
	r := gin.New()
	r.POST("/assistant", h.Ask)
	return r
}

func postQuery(r *gin.Engine, body string) *http.Request {
	req, _ := http.NewRequest(http.MethodPost, "/assistant", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAssistantHandler_Ask(t *testing.T) {
	svc := new(mocks.MockAssistantService)
	r := newAssistantRouter(svc)

	svc.On("Ask", mock.Anything, "What is a SAFE?").Return("A simple agreement for future equity.", nil)

	w := serve(r, postQuery(r, `{"query": "What is a SAFE?"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A simple agreement for future equity.", decodeResponse(t, w).Data.(map[string]interface{})["answer"])
}

func TestAssistantHandler_Ask_MissingQuery(t *testing.T) {
	svc := new(mocks.MockAssistantService)
	r := newAssistantRouter(svc)

	w := serve(r, postQuery(r, `{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeResponse(t, w).Error.Code)
}

func TestAssistantHandler_Ask_BlankQuery(t *testing.T) {
	svc := new(mocks.MockAssistantService)
	r := newAssistantRouter(svc)

	svc.On("Ask", mock.Anything, "   ").Return("", domain.ErrEmptyQuery)

	w := serve(r, postQuery(r, `{"query": "   "}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EMPTY_QUERY", decodeResponse(t, w).Error.Code)
}

func TestAssistantHandler_Ask_CompletionFailure(t *testing.T) {
	svc := new(mocks.MockAssistantService)
	r := newAssistantRouter(svc)

	svc.On("Ask", mock.Anything, "hello").Return("", errors.New("asking assistant: 503"))

	w := serve(r, postQuery(r, `{"query": "hello"}`))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "ASSISTANT_UNAVAILABLE", decodeResponse(t, w).Error.Code)
}
