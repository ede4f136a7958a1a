package upload_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	otelMocks "chefbook/infras/otel/mocks"
	"chefbook/internal/domains/upload/mocks"
	"chefbook/internal/domains/upload/model/dto"
	"chefbook/internal/handlers/upload"
	"chefbook/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (http.Handler, *mocks.MockUpload) {
	t.Helper()

	svc := mocks.NewMockUpload(gomock.NewController(t))
	handler := upload.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestUploadFile(t *testing.T) {
	router, svc := setup(t)

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="plate.png"`)
	header.Set("Content-Type", "image/png")

	part, err := form.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("png"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	svc.EXPECT().Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.UploadRequest) (dto.UploadResponse, error) {
			assert.Equal(t, "plate.png", req.File.Filename)

			return dto.UploadResponse{URL: "https://cdn.example.com/uploads/x.png"}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/uploads/", body)
	req.Header.Set("Content-Type", form.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "cdn.example.com")
}

func TestUploadFile_NotMultipart(t *testing.T) {
	router, _ := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/uploads/", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteFiles_StorageDown(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().Delete(gomock.Any(), dto.DeleteRequest{URLs: []string{"https://cdn.example.com/uploads/x.png"}}).
		Return(failure.ExternalService(errors.New("bucket unavailable")))

	req := httptest.NewRequest(http.MethodDelete, "/uploads/", strings.NewReader(`{"urls":["https://cdn.example.com/uploads/x.png"]}`))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
