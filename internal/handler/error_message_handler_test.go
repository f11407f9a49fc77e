package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resource-converter/internal/domain"
	"resource-converter/internal/export"
	"resource-converter/internal/mocks"
	"resource-converter/internal/service"
	"resource-converter/internal/validator"
)

func newErrorMessageRouter(svc *mocks.MockErrorMessageServiceInterface) *gin.Engine {
	h := NewErrorMessageHandler(svc, validator.NewValidator())
	router := gin.New()
	router.GET("/api/error-messages", h.ListDefault)
	router.GET("/api/error-messages/xml", h.DefaultXML)
	router.POST("/api/error-messages/fetch", h.Fetch)
	router.POST("/api/error-messages/fetch/ids", h.FetchIDs)
	router.POST("/api/error-messages/fetch/by-ids", h.FetchByIDs)
	router.POST("/api/error-messages/xml/download", h.DownloadXML)
	return router
}

func TestErrorMessageFetch(t *testing.T) {
	svc := mocks.NewMockErrorMessageServiceInterface(t)
	svc.EXPECT().Fetch(mock.Anything, domain.FetchRequest{
		ConnectionConfig: testConfig,
		Filter:           domain.Filter{ErrorNo: "42"},
	}).Return(domain.PagedResult[domain.ErrorMessageRow]{
		Content:       []domain.ErrorMessageRow{{ObjectID: "ERR042", ErrorNo: "42", ErrorType: "2"}},
		TotalElements: 1,
	}, nil)

	w := doJSON(t, newErrorMessageRouter(svc), http.MethodPost, "/api/error-messages/fetch", domain.FetchRequest{
		ConnectionConfig: testConfig,
		Filter:           domain.Filter{ErrorNo: "42"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"errorNo":"42"`)
	assert.Contains(t, w.Body.String(), `"totalElements":1`)
}

func TestErrorMessageFetchIDs_DatabaseError(t *testing.T) {
	svc := mocks.NewMockErrorMessageServiceInterface(t)
	svc.EXPECT().FetchIDs(mock.Anything, mock.Anything).
		Return(nil, &service.DatabaseError{Op: "fetch error message ids", Err: errors.New("ORA-00942: table or view does not exist")})

	w := doJSON(t, newErrorMessageRouter(svc), http.MethodPost, "/api/error-messages/fetch/ids", domain.IDsRequest{ConnectionConfig: testConfig})

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, decodeError(t, w).Error, "ORA-00942")
}

func TestErrorMessageFetchByIDs(t *testing.T) {
	svc := mocks.NewMockErrorMessageServiceInterface(t)
	svc.EXPECT().FetchByIDs(mock.Anything, domain.ByIDsRequest{DBConfig: testConfig, ObjectIDs: []string{"ERR001", "ERR002"}}).
		Return([]domain.ErrorMessageRow{{ObjectID: "ERR001"}, {ObjectID: "ERR002"}}, nil)

	w := doJSON(t, newErrorMessageRouter(svc), http.MethodPost, "/api/error-messages/fetch/by-ids",
		domain.ByIDsRequest{DBConfig: testConfig, ObjectIDs: []string{"ERR001", "ERR002"}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"objectID":"ERR002"`)
}

func TestErrorMessageDownloadXML(t *testing.T) {
	t.Run("renders attachment", func(t *testing.T) {
		svc := mocks.NewMockErrorMessageServiceInterface(t)
		req := domain.ErrorDownloadRequest{
			Messages: []domain.ErrorMessageRow{{ObjectID: "ERR042", ErrorNo: "42", ErrorType: "2", LocalizedText: domain.LocalizedText{Country1: "careful"}}},
		}
		xml := export.ErrorXML(req.Messages, domain.SlotCountry1)
		svc.EXPECT().RenderXML(mock.Anything, req).Return(xml, nil)

		w := doJSON(t, newErrorMessageRouter(svc), http.MethodPost, "/api/error-messages/xml/download", req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, ContentTypeXML, w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="output.xml"`, w.Header().Get("Content-Disposition"))
		assert.Contains(t, w.Body.String(), `<error code="42"><type>warning</type><message>careful</message></error>`)
	})

	t.Run("render failure", func(t *testing.T) {
		svc := mocks.NewMockErrorMessageServiceInterface(t)
		svc.EXPECT().RenderXML(mock.Anything, mock.Anything).Return("", errors.New("xml: unsupported character"))

		w := doJSON(t, newErrorMessageRouter(svc), http.MethodPost, "/api/error-messages/xml/download",
			domain.ErrorDownloadRequest{Messages: []domain.ErrorMessageRow{}})

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("missing messages", func(t *testing.T) {
		svc := mocks.NewMockErrorMessageServiceInterface(t)

		w := doJSON(t, newErrorMessageRouter(svc), http.MethodPost, "/api/error-messages/xml/download", `{"lang":"country1"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Fields, "messages")
	})
}

func TestErrorMessageDefaultXML(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		slot         domain.Slot
		wantFilename string
	}{
		{name: "defaults", query: "", slot: "", wantFilename: "output.xml"},
		{name: "custom filename gets extension", query: "?filename=errors_de&lang=country2", slot: domain.SlotCountry2, wantFilename: "errors_de.xml"},
		{name: "extension kept", query: "?filename=Errors.XML", slot: "", wantFilename: "Errors.XML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockErrorMessageServiceInterface(t)
			svc.EXPECT().DefaultXML(mock.Anything, tt.slot).Return(export.XMLHeader+"<error-messages>\n</error-messages>", nil)

			w := doJSON(t, newErrorMessageRouter(svc), http.MethodGet, "/api/error-messages/xml"+tt.query, nil)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, `attachment; filename="`+tt.wantFilename+`"`, w.Header().Get("Content-Disposition"))
			assert.Contains(t, w.Body.String(), "<error-messages>")
		})
	}

	t.Run("unknown slot", func(t *testing.T) {
		svc := mocks.NewMockErrorMessageServiceInterface(t)

		w := doJSON(t, newErrorMessageRouter(svc), http.MethodGet, "/api/error-messages/xml?lang=fr", nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		svc := mocks.NewMockErrorMessageServiceInterface(t)
		svc.EXPECT().DefaultXML(mock.Anything, domain.Slot("")).Return("", service.ErrDefaultCatalogDisabled)

		w := doJSON(t, newErrorMessageRouter(svc), http.MethodGet, "/api/error-messages/xml", nil)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, service.ErrDefaultCatalogDisabled.Error(), decodeError(t, w).Error)
	})
}

func TestErrorMessageListDefault(t *testing.T) {
	svc := mocks.NewMockErrorMessageServiceInterface(t)
	svc.EXPECT().ListDefault(mock.Anything).Return([]domain.ErrorMessageRow{{ObjectID: "ERR001"}}, nil)

	w := doJSON(t, newErrorMessageRouter(svc), http.MethodGet, "/api/error-messages", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"objectID":"ERR001"`)
}
