package service_test

import (
	"context"
	stdBase64 "encoding/base64"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	otelMocks "chefbook/infras/otel/mocks"
	s3Mocks "chefbook/infras/s3/mocks"
	"chefbook/internal/domains/upload/model/dto"
	"chefbook/internal/domains/upload/service"
	"chefbook/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (service.Upload, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)
	storage := s3Mocks.NewMockS3(ctrl)

	return service.New(storage, otelMocks.NewOtel()), storage
}

func TestUpload_Store(t *testing.T) {
	svc, storage := setup(t)

	storage.EXPECT().UploadFile(gomock.Any(), "uploads", "a.png", "image/png", gomock.Any()).
		Return("https://cdn.example.com/uploads/a.png", nil)

	url, err := svc.Store(context.Background(), "a.png", "image/png", strings.NewReader("png"))

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/a.png", url)
}

func TestUpload_StoreFailureIsExternal(t *testing.T) {
	svc, storage := setup(t)

	storage.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("bucket gone"))

	_, err := svc.Store(context.Background(), "a.png", "image/png", strings.NewReader("png"))

	assert.True(t, failure.IsKind(err, failure.KindExternalService))
}

func TestUpload_Multipart(t *testing.T) {
	svc, storage := setup(t)

	header := &multipart.FileHeader{
		Filename: "plate.png",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
		Size:     3,
	}

	storage.EXPECT().UploadFile(gomock.Any(), "uploads", gomock.Any(), "image/png", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, name, _ string, body io.Reader) (string, error) {
			data, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, "png", string(data))
			assert.True(t, strings.HasSuffix(name, ".png"))

			return "https://cdn.example.com/uploads/" + name, nil
		})

	res, err := svc.Upload(context.Background(), dto.UploadRequest{File: header, FileBody: nopFile{strings.NewReader("png")}})

	require.NoError(t, err)
	assert.Equal(t, "image/png", res.ContentType)
	assert.Contains(t, res.URL, res.FileName)
}

func TestUpload_MultipartRejectsType(t *testing.T) {
	svc, _ := setup(t)

	header := &multipart.FileHeader{
		Filename: "menu.pdf",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/pdf"}},
		Size:     3,
	}

	_, err := svc.Upload(context.Background(), dto.UploadRequest{File: header})

	assert.True(t, failure.IsKind(err, failure.KindValidation))
}

func TestUpload_Inline(t *testing.T) {
	svc, storage := setup(t)

	uri := "data:image/jpeg;base64," + stdBase64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))

	storage.EXPECT().UploadFileBytes(gomock.Any(), "uploads", gomock.Any(), "image/jpeg", []byte("jpeg-bytes")).
		Return("https://cdn.example.com/uploads/x.jpg", nil)

	res, err := svc.UploadInline(context.Background(), dto.InlineUploadRequest{Name: "x.jpg", Data: uri})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/x.jpg", res.URL)
	assert.Equal(t, "image/jpeg", res.ContentType)
}

func TestUpload_InlineRejectsType(t *testing.T) {
	svc, _ := setup(t)

	uri := "data:text/plain;base64," + stdBase64.StdEncoding.EncodeToString([]byte("hi"))

	_, err := svc.UploadInline(context.Background(), dto.InlineUploadRequest{Data: uri})

	assert.True(t, failure.IsKind(err, failure.KindValidation))
}

func TestUpload_Delete(t *testing.T) {
	svc, storage := setup(t)

	storage.EXPECT().GetObjectNameFromURL("https://cdn.example.com/uploads/a.png").Return("a.png")
	storage.EXPECT().GetObjectNameFromURL("https://elsewhere.example.com/b.png").Return("")
	storage.EXPECT().GetObjectNameFromURL("https://cdn.example.com/uploads/c.png").Return("c.png")
	storage.EXPECT().DeleteFile(gomock.Any(), "uploads", "a.png").Return(nil)
	storage.EXPECT().DeleteFile(gomock.Any(), "uploads", "c.png").Return(errors.New("denied"))

	err := svc.Delete(context.Background(), dto.DeleteRequest{URLs: []string{
		"https://cdn.example.com/uploads/a.png",
		"https://elsewhere.example.com/b.png",
		"https://cdn.example.com/uploads/c.png",
	}})

	assert.True(t, failure.IsKind(err, failure.KindExternalService))
	assert.ErrorContains(t, err, "1 files")
}

type nopFile struct {
	*strings.Reader
}

func (nopFile) Close() error { return nil }
