package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The image field is a bare URL string in some deployments and a metadata
// object in others; both forms must load and persist unchanged.
func TestImagePolymorphicJSON(t *testing.T) {
	var fromURL Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","image":"/uploads/images/a.jpg"}`), &fromURL))
	assert.Equal(t, "/uploads/images/a.jpg", fromURL.Image.URL)
	assert.Nil(t, fromURL.Image.Meta)

	out, err := json.Marshal(fromURL.Image)
	require.NoError(t, err)
	assert.JSONEq(t, `"/uploads/images/a.jpg"`, string(out))

	var fromMeta Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p2","image":{"filename":"a.jpg","path":"uploads/images/a.jpg","url":"/uploads/images/a.jpg","fileType":"image/jpeg","fileSize":123,"uploadedDate":"2026-01-01 10:00:00","entityId":"p2"}}`), &fromMeta))
	require.NotNil(t, fromMeta.Image.Meta)
	assert.Equal(t, "a.jpg", fromMeta.Image.Meta.Filename)
	assert.Equal(t, int64(123), fromMeta.Image.Meta.FileSize)
	assert.Equal(t, "/uploads/images/a.jpg", fromMeta.Image.URL)

	out, err = json.Marshal(fromMeta.Image)
	require.NoError(t, err)
	var roundTrip ImageMetadata
	require.NoError(t, json.Unmarshal(out, &roundTrip))
	assert.Equal(t, *fromMeta.Image.Meta, roundTrip)
}

func TestImageNull(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p3","image":null}`), &p))
	assert.True(t, p.Image.IsZero())

	out, err := json.Marshal(p.Image)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
