package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"chefbook/config"
	"chefbook/infras/otel"
	"chefbook/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrFileName = "file_name"
	otelAttrBucket   = "bucket"
	defaultRegion    = "auto"
)

type S3 interface {
	UploadFile(ctx context.Context, directory, fileName, contentType string, body io.Reader) (url string, err error)
	UploadFileBytes(ctx context.Context, directory, fileName, contentType string, fileData []byte) (url string, err error)
	DeleteFile(ctx context.Context, directory, objectName string) error
	GetObjectNameFromURL(url string) (objectName string)
}

type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3Impl struct {
	client objectAPI
	bucket string
	domain string
	otel   otel.Otel
}

func (svc *s3Impl) UploadFile(ctx context.Context, directory, fileName, contentType string, body io.Reader) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadFile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrFileName: fileName,
		otelAttrBucket:   svc.bucket,
	})

	data, err := io.ReadAll(body)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to read file: %w", err)
	}

	return svc.upload(ctx, directory, fileName, contentType, data)
}

func (svc *s3Impl) UploadFileBytes(ctx context.Context, directory, fileName, contentType string, fileData []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadFileBytes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrFileName: fileName,
		otelAttrBucket:   svc.bucket,
	})

	return svc.upload(ctx, directory, fileName, contentType, fileData)
}

func (svc *s3Impl) DeleteFile(ctx context.Context, directory, objectName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteFile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrFileName: objectName,
		otelAttrBucket:   svc.bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(path.Join(directory, objectName)),
	})
	if err != nil {
		log.Error().Err(err).Str("object", objectName).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// GetObjectNameFromURL returns the object name relative to the public domain, or "" for foreign URLs.
func (svc *s3Impl) GetObjectNameFromURL(url string) string {
	prefix := strings.TrimSuffix(svc.domain, "/") + "/"

	objectKey, found := strings.CutPrefix(url, prefix)
	if !found {
		return constant.Empty
	}

	return path.Base(objectKey)
}

func (svc *s3Impl) upload(ctx context.Context, directory, fileName, contentType string, data []byte) (string, error) {
	objectKey := path.Join(directory, fileName)

	_, err := svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", strings.TrimSuffix(svc.domain, "/"), objectKey), nil
}

// NewWithClient builds the storage over an existing object API client.
func NewWithClient(client objectAPI, bucket, publicDomain string, ot otel.Otel) S3 {
	return &s3Impl{
		client: client,
		bucket: bucket,
		domain: publicDomain,
		otel:   ot,
	}
}

func New(config *config.Config, ot otel.Otel) S3 {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(defaultRegion),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.External.S3.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(config.External.S3.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return NewWithClient(client, config.External.S3.BucketName, config.External.S3.PublicDomain, ot)
}
