package stores

import (
	"net/http"

	"github.com/Leestalion/quittance/internal/client"
)

func notFound() error {
	return &client.APIError{Method: http.MethodGet, Path: "/", Status: http.StatusNotFound, Message: "Not found"}
}

func ptr[T any](v T) *T { return &v }
