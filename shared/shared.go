package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"chefbook/shared/cache"
	"chefbook/shared/constant"
	"chefbook/shared/dto"
	"chefbook/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero db-tagged fields of a struct into a map of updated fields.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a cache prefix with identifying parts.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from pagination and filter arguments.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	encodedArgs, err := json.Marshal(args)
	if err != nil {
		encodedArgs = fmt.Appendf(nil, "%v", args)
	}

	raw := fmt.Sprintf("%d|%d|%s|%s|%s|%s", params.Page, params.Limit, params.SortBy, params.SortDir, where, encodedArgs)
	sum := sha256.Sum256([]byte(raw))

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches drops every cached entry under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// Actor returns the authenticated user id and role stored on ctx by the auth middleware.
func Actor(ctx context.Context) (id, role string) {
	id, _ = ctx.Value(constant.ContextKeyUserID).(string)
	role, _ = ctx.Value(constant.ContextKeyUserRole).(string)

	return id, role
}

// IsUniqueViolation reports whether err carries a postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	return pqCode(err) == constant.PqErrorCodeUniqueViolation
}

// IsForeignKeyViolation reports whether err carries a postgres foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return pqCode(err) == constant.PqErrorCodeFkViolation
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}
