package s3_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	otelMocks "chefbook/infras/otel/mocks"
	"chefbook/infras/s3"
	"chefbook/infras/s3/mocks"

	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const domain = "https://cdn.chefbook.test"

func TestUploadFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockobjectAPI(ctrl)
	storage := s3.NewWithClient(api, "photos", domain, otelMocks.NewOtel())

	api.EXPECT().
		PutObject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *awsS3.PutObjectInput, _ ...func(*awsS3.Options)) (*awsS3.PutObjectOutput, error) {
			assert.Equal(t, "photos", *in.Bucket)
			assert.Equal(t, "chef/c-1.png", *in.Key)
			assert.Equal(t, "image/png", *in.ContentType)
			assert.Equal(t, int64(4), *in.ContentLength)

			body, err := io.ReadAll(in.Body)
			require.NoError(t, err)
			assert.Equal(t, "data", string(body))

			return &awsS3.PutObjectOutput{}, nil
		})

	url, err := storage.UploadFile(context.Background(), "chef", "c-1.png", "image/png", strings.NewReader("data"))

	require.NoError(t, err)
	assert.Equal(t, domain+"/chef/c-1.png", url)
}

func TestUploadFileBytes_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockobjectAPI(ctrl)
	storage := s3.NewWithClient(api, "photos", domain, otelMocks.NewOtel())

	api.EXPECT().PutObject(gomock.Any(), gomock.Any()).Return(nil, errors.New("denied"))

	_, err := storage.UploadFileBytes(context.Background(), "chef", "x.png", "image/png", []byte("x"))

	assert.ErrorContains(t, err, "denied")
}

func TestDeleteFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockobjectAPI(ctrl)
	storage := s3.NewWithClient(api, "photos", domain, otelMocks.NewOtel())

	api.EXPECT().
		DeleteObject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *awsS3.DeleteObjectInput, _ ...func(*awsS3.Options)) (*awsS3.DeleteObjectOutput, error) {
			assert.Equal(t, "chef/c-1.png", *in.Key)

			return &awsS3.DeleteObjectOutput{}, nil
		})

	require.NoError(t, storage.DeleteFile(context.Background(), "chef", "c-1.png"))
}

func TestGetObjectNameFromURL(t *testing.T) {
	storage := s3.NewWithClient(nil, "photos", domain, otelMocks.NewOtel())

	assert.Equal(t, "c-1.png", storage.GetObjectNameFromURL(domain+"/chef/c-1.png"))
	assert.Empty(t, storage.GetObjectNameFromURL("https://elsewhere.test/chef/c-1.png"))
}
