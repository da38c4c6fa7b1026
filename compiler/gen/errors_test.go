package gen

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	t.Parallel()

	err := NewConfigError("languages", "cobol", "no language config for requested target language")
	assert.Contains(t, err.Error(), `"languages"`)
	assert.Contains(t, err.Error(), "cobol")
	assert.ErrorIs(t, err, ErrMissingConfig)
	assert.True(t, IsConfigError(err))
	assert.False(t, IsTemplateError(err))

	t.Run("nil value omitted", func(t *testing.T) {
		err := NewConfigError("output_dir", nil, "missing")
		assert.NotContains(t, err.Error(), "value:")
	})
}

func TestTemplateError(t *testing.T) {
	t.Parallel()

	cause := fs.ErrNotExist
	err := NewTemplateError("rust", "custom.tmpl", "load custom template", cause)
	assert.Contains(t, err.Error(), "for language rust")
	assert.Contains(t, err.Error(), "custom.tmpl")
	assert.ErrorIs(t, err, ErrTemplateFailed)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.True(t, IsTemplateError(err))
}

func TestRenderError(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	err := NewRenderError("users", "models/go/users.go", "write generated file", cause)
	assert.Contains(t, err.Error(), "on table users")
	assert.Contains(t, err.Error(), "models/go/users.go")
	assert.ErrorIs(t, err, ErrRenderFailed)
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, IsRenderError(err))
	assert.False(t, IsConfigError(err))
}
