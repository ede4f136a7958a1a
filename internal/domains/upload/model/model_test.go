package model_test

import (
	"path"
	"testing"

	"chefbook/internal/domains/upload/model"
	"chefbook/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	a := model.ObjectName("Dinner Plate.JPG", "image/jpeg")
	b := model.ObjectName("Dinner Plate.JPG", "image/jpeg")

	assert.Equal(t, ".jpg", path.Ext(a))
	assert.NotEqual(t, a, b)

	assert.Equal(t, ".png", path.Ext(model.ObjectName("", "image/png")))
	assert.Empty(t, path.Ext(model.ObjectName("", "application/x-unknown")))
}

func TestCheckImage(t *testing.T) {
	assert.NoError(t, model.CheckImage("image/webp", 1024))
	assert.NoError(t, model.CheckImage("image/png", 5<<20))

	err := model.CheckImage("application/pdf", 10)
	assert.True(t, failure.IsKind(err, failure.KindValidation))

	err = model.CheckImage("image/jpeg", 5<<20+1)
	assert.ErrorContains(t, err, "5 MB")
}
