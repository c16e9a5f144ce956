package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seblw/grocli/internal/model"
)

func TestCategoryID(t *testing.T) {
	id, err := categoryID("fruit")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryFruit, id)

	// Flag input is normalized before matching.
	id, err = categoryID("  Dairy ")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryDairy, id)

	_, err = categoryID("gadgets")
	var ue *usageError
	require.ErrorAs(t, err, &ue)
}

func TestUsageErrorMessage(t *testing.T) {
	err := &usageError{msg: "rm: not a number: x"}
	assert.Equal(t, "rm: not a number: x", err.Error())
}
