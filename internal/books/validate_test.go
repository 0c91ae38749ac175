package books

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCreateBody = `{
	"isbn": "0691161518",
	"amazon_url": "http://a.co/eobPtX2",
	"author": "Matthew Lane",
	"language": "english",
	"pages": 264,
	"publisher": "Princeton University Press",
	"title": "Power-Up",
	"year": 2017
}`

func decodeCreate(t *testing.T, body string) (*CreateBookRequest, error) {
	t.Helper()
	req := httptest.NewRequest("POST", "/books", bytes.NewReader([]byte(body)))
	var dst CreateBookRequest
	err := DecodeRequest(req, &dst)
	return &dst, err
}

func TestDecodeRequest_Valid(t *testing.T) {
	dst, err := decodeCreate(t, validCreateBody)
	require.NoError(t, err)

	require.NotNil(t, dst.ISBN)
	assert.Equal(t, "0691161518", *dst.ISBN)
	require.NotNil(t, dst.Pages)
	assert.Equal(t, 264, *dst.Pages)
}

func TestDecodeRequest_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantCode   ErrorCode
		wantDetail string
	}{
		{
			name:       "unknown field",
			body:       `{"isbn": "1", "badField": true}`,
			wantCode:   ErrCodeValidation,
			wantDetail: "badField is not a valid field",
		},
		{
			name:       "wrong type for pages",
			body:       `{"isbn": "1", "pages": "264"}`,
			wantCode:   ErrCodeValidation,
			wantDetail: "pages must be of type integer",
		},
		{
			name:       "wrong type for title",
			body:       `{"title": 42}`,
			wantCode:   ErrCodeValidation,
			wantDetail: "title must be of type string",
		},
		{
			name:     "empty body",
			body:     "",
			wantCode: ErrCodeMalformedRequest,
		},
		{
			name:     "syntax error",
			body:     `{not json`,
			wantCode: ErrCodeMalformedRequest,
		},
		{
			name:     "trailing document",
			body:     `{"isbn": "1"}{"isbn": "2"}`,
			wantCode: ErrCodeMalformedRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeCreate(t, tt.body)
			require.Error(t, err)

			var bookErr *Error
			require.True(t, errors.As(err, &bookErr))
			assert.Equal(t, tt.wantCode, bookErr.Code())

			if tt.wantDetail != "" {
				require.Len(t, bookErr.Details(), 1)
				assert.Equal(t, tt.wantDetail, bookErr.Details()[0])
			}
		})
	}
}

func TestValidateRequest_Create(t *testing.T) {
	t.Run("complete payload passes", func(t *testing.T) {
		dst, err := decodeCreate(t, validCreateBody)
		require.NoError(t, err)
		assert.NoError(t, ValidateRequest(dst))
	})

	requiredFields := []string{"isbn", "amazon_url", "author", "language", "pages", "publisher", "title", "year"}

	for _, field := range requiredFields {
		t.Run("missing "+field, func(t *testing.T) {
			// drop one field from the valid body
			body := validCreateBody
			lines := []string{}
			for _, line := range strings.Split(body, "\n") {
				if strings.Contains(line, `"`+field+`"`) {
					continue
				}
				lines = append(lines, line)
			}
			body = strings.Join(lines, "\n")
			// repair any trailing comma before the closing brace
			body = strings.Replace(body, ",\n}", "\n}", 1)

			dst, err := decodeCreate(t, body)
			require.NoError(t, err)

			err = ValidateRequest(dst)
			require.Error(t, err)

			var bookErr *Error
			require.True(t, errors.As(err, &bookErr))
			assert.Equal(t, ErrCodeValidation, bookErr.Code())
			require.Len(t, bookErr.Details(), 1)
			assert.Equal(t, field+" is required", bookErr.Details()[0])
		})
	}

	t.Run("pages must be positive", func(t *testing.T) {
		body := strings.Replace(validCreateBody, `"pages": 264`, `"pages": 0`, 1)
		dst, err := decodeCreate(t, body)
		require.NoError(t, err)

		err = ValidateRequest(dst)
		require.Error(t, err)

		var bookErr *Error
		require.True(t, errors.As(err, &bookErr))
		require.Len(t, bookErr.Details(), 1)
		assert.Equal(t, "pages must be greater than 0", bookErr.Details()[0])
	})

	t.Run("every missing field is reported", func(t *testing.T) {
		dst, err := decodeCreate(t, `{}`)
		require.NoError(t, err)

		err = ValidateRequest(dst)
		require.Error(t, err)

		var bookErr *Error
		require.True(t, errors.As(err, &bookErr))
		assert.Len(t, bookErr.Details(), 8)
	})
}

func TestValidateRequest_Update(t *testing.T) {
	t.Run("isbn is optional", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/books/0691161518",
			bytes.NewReader([]byte(strings.Replace(validCreateBody, `"isbn": "0691161518",`, "", 1))))

		var dst UpdateBookRequest
		require.NoError(t, DecodeRequest(req, &dst))
		assert.Nil(t, dst.ISBN)
		assert.NoError(t, ValidateRequest(&dst))
	})

	t.Run("other fields stay required", func(t *testing.T) {
		var dst UpdateBookRequest
		req := httptest.NewRequest("PUT", "/books/0691161518", bytes.NewReader([]byte(`{"title": "only a title"}`)))
		require.NoError(t, DecodeRequest(req, &dst))

		err := ValidateRequest(&dst)
		require.Error(t, err)

		var bookErr *Error
		require.True(t, errors.As(err, &bookErr))
		assert.Len(t, bookErr.Details(), 6)
	})
}
