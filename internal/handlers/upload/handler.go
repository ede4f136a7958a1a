package upload

import (
	"net/http"

	"chefbook/infras/otel"
	"chefbook/internal/domains/upload/model/dto"
	"chefbook/internal/domains/upload/service"
	"chefbook/shared/constant"
	"chefbook/shared/failure"
	"chefbook/shared/validator"
	"chefbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Upload
	otel    otel.Otel
}

func New(service service.Upload, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/uploads", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadFile)
		routerGroup.Post("/inline", handler.UploadInline)
		routerGroup.Delete("/", handler.DeleteFiles)
	})
}

// UploadFile stores a multipart image.
// @Summary Upload an image
// @Description Stores a profile or gallery photo and returns its public URL.
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Success 201 {object} response.Data[dto.UploadResponse] "Stored file"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/uploads [post]
func (handler *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadFile")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	req := dto.UploadRequest{
		File:     fileHeader,
		FileBody: file,
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload file")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("File " + res.FileName + " uploaded by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// UploadInline stores a base64 data URI image.
// @Summary Upload an inline image
// @Tags Upload
// @Accept json
// @Produce json
// @Param request body dto.InlineUploadRequest true "Data URI"
// @Success 201 {object} response.Data[dto.UploadResponse] "Stored file"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/uploads/inline [post]
func (handler *Handler) UploadInline(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadInline")
	defer scope.End()

	req := dto.InlineUploadRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadInline(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload inline file")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// DeleteFiles removes stored files by URL.
// @Summary Delete uploaded files
// @Tags Upload
// @Accept json
// @Produce json
// @Param request body dto.DeleteRequest true "File URLs"
// @Success 200 {object} response.Message "Files deleted"
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/uploads [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFiles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFiles")
	defer scope.End()

	req := dto.DeleteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete files")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Files deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Files deleted successfully")
}
