package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMembersDecodesRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/members", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":2,"name":"B","age":"30","created_at":"2026-01-02T00:00:00Z"},
			{"id":1,"name":"A","email":"a@example.com","created_at":"2026-01-01T00:00:00Z"}
		]`))
	}))
	defer server.Close()

	items, err := New(server.URL + "/api/").ListMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, "30", items[0].Age)
	assert.Equal(t, "a@example.com", items[1].Email)
	assert.Equal(t, "2026-01-01T00:00:00Z", items[1].CreatedAt)
}

func TestCreateMemberSendsAllFields(t *testing.T) {
	var got map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/members", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success":true,"id":7}`))
	}))
	defer server.Close()

	id, err := New(server.URL+"/api").CreateMember(context.Background(), MemberInput{
		Name:           "Kai",
		Email:          "kai@example.com",
		MembershipType: "Monthly",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	assert.Len(t, got, 19)
	assert.Equal(t, "Kai", got["name"])
	assert.Equal(t, "", got["payment_type"])
	assert.NotContains(t, got, "id")
	assert.NotContains(t, got, "created_at")
}

func TestUpdateAndDeleteReturnChanges(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/api/members/3":
			_, _ = w.Write([]byte(`{"success":true,"changes":1}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/members/9":
			_, _ = w.Write([]byte(`{"success":true,"changes":0}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := New(server.URL + "/api")

	changes, err := c.UpdateMember(context.Background(), 3, MemberInput{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	changes, err = c.DeleteMember(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(0), changes)
}

func TestServerErrorBecomesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"delete failed"}`))
	}))
	defer server.Close()

	_, err := New(server.URL+"/api").DeleteMember(context.Background(), 1)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "delete failed", apiErr.Message)
	assert.Equal(t, "api: status 500: delete failed", apiErr.Error())
}

func TestTransportErrorIsReturned(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := New(url).ListMembers(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
