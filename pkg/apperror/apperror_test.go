package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("project", "abc"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("delete project failed: %w", NewNotFound("project", "abc")), http.StatusNotFound},
		{"invalid input", NewInvalidInput("title is required", nil), http.StatusBadRequest},
		{"store", NewStore("get profiles/main_profile", errors.New("connection refused")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToHTTPStatus(tc.err))
		})
	}
}

func TestDetailHidesCause(t *testing.T) {
	err := fmt.Errorf("get profile failed: %w", NewStore("get profiles/main_profile", errors.New("dial tcp 10.0.0.1:5432")))

	assert.Equal(t, "Document store unavailable", Detail(err))
	assert.NotContains(t, Detail(err), "10.0.0.1")
	assert.Equal(t, "An internal server error occurred", Detail(errors.New("nil pointer")))
}

func TestNotFoundMessage(t *testing.T) {
	err := NewNotFound("Experience", "42")

	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Experience not found", err.Message)
	assert.Contains(t, err.Error(), "'42'")
}
