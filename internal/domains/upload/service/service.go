package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"

	"chefbook/infras/otel"
	"chefbook/infras/s3"
	"chefbook/internal/domains/upload/model"
	"chefbook/internal/domains/upload/model/dto"
	"chefbook/shared/base64"
	"chefbook/shared/constant"
	"chefbook/shared/failure"
	"chefbook/shared/validator"

	"github.com/rs/zerolog/log"
)

var ErrDeleteUploads = errors.New("failed to delete uploads")

// Upload stores signup photos and other user images and hands back their public URLs.
type Upload interface {
	Store(ctx context.Context, name, contentType string, body io.Reader) (string, error)
	Upload(ctx context.Context, req dto.UploadRequest) (dto.UploadResponse, error)
	UploadInline(ctx context.Context, req dto.InlineUploadRequest) (dto.UploadResponse, error)
	Delete(ctx context.Context, req dto.DeleteRequest) error
}

type serviceImpl struct {
	s3   s3.S3
	otel otel.Otel
}

func New(s3 s3.S3, otel otel.Otel) Upload {
	return &serviceImpl{
		s3:   s3,
		otel: otel,
	}
}

func (s *serviceImpl) Store(ctx context.Context, name, contentType string, body io.Reader) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Store")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	url, err = s.s3.UploadFile(ctx, model.Directory, name, contentType, body)
	if err != nil {
		log.Error().Err(err).Str("file_name", name).Msg("failed to upload file to S3")

		return constant.Empty, failure.ExternalService(err) //nolint:wrapcheck
	}

	return url, nil
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadRequest) (res dto.UploadResponse, err error) {
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	contentType := req.File.Header.Get(constant.RequestHeaderContentType)
	if err = model.CheckImage(contentType, req.File.Size); err != nil {
		return res, err //nolint:wrapcheck
	}

	name := model.ObjectName(req.File.Filename, contentType)

	url, err := s.Store(ctx, name, contentType, req.FileBody)
	if err != nil {
		return res, err
	}

	return dto.UploadResponse{URL: url, FileName: name, ContentType: contentType}, nil
}

func (s *serviceImpl) UploadInline(ctx context.Context, req dto.InlineUploadRequest) (res dto.UploadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadInline")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	contentType, data, err := base64.Decode(req.Data)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	name := model.ObjectName(req.Name, contentType)

	url, err := s.s3.UploadFileBytes(ctx, model.Directory, name, contentType, data)
	if err != nil {
		log.Error().Err(err).Str("file_name", name).Msg("failed to upload file to S3")

		return res, failure.ExternalService(err) //nolint:wrapcheck
	}

	return dto.UploadResponse{URL: url, FileName: name, ContentType: contentType}, nil
}

// Delete removes every listed object it can; URLs outside the public domain are skipped.
func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	failed := 0

	for _, url := range req.URLs {
		objectName := s.s3.GetObjectNameFromURL(url)
		if objectName == constant.Empty {
			log.Warn().Str("url", url).Msg("failed to extract object name from URL")

			continue
		}

		if err := s.s3.DeleteFile(ctx, model.Directory, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")

			failed++
		}
	}

	if failed > 0 {
		return failure.ExternalService(fmt.Errorf("%w: %d files", ErrDeleteUploads, failed)) //nolint:wrapcheck
	}

	return nil
}
