package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmitContact(t *testing.T) {
	g, _ := newTestAPI(t)

	w := doRequest(g, http.MethodPost, "/api/contact", `{"full_name":"Ada Lovelace","email":"ada@example.com","message":"hello"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	require.NotEmpty(t, resp["id"])

	// messages expose visitor PII; listing them needs the admin credential
	w = doRequest(g, http.MethodGet, "/api/admin/contact-messages", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(g, http.MethodGet, "/api/admin/contact-messages", "", adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeList(t, w), 1)
}

func TestSubmitContact_Validation(t *testing.T) {
	g, _ := newTestAPI(t)

	w := doRequest(g, http.MethodPost, "/api/contact", `{"full_name":"Ada","message":"hi"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(g, http.MethodPost, "/api/contact", `{"full_name":"Ada","email":"bad","message":"hi"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactMessages_NewestFirst(t *testing.T) {
	g, _ := newTestAPI(t)

	for _, body := range []string{
		`{"full_name":"First","email":"a@b.com","message":"one"}`,
		`{"full_name":"Second","email":"a@b.com","message":"two"}`,
	} {
		w := doRequest(g, http.MethodPost, "/api/contact", body, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(g, http.MethodGet, "/api/admin/contact-messages", "", adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	docs := decodeList(t, w)
	require.Len(t, docs, 2)
}

func TestContactMessages_UpdateAndDelete(t *testing.T) {
	g, _ := newTestAPI(t)

	w := doRequest(g, http.MethodPost, "/api/contact", `{"full_name":"Ada","email":"a@b.com","message":"hi"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = doRequest(g, http.MethodPut, "/api/admin/contact-messages/"+id, `{"read":true}`, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(g, http.MethodDelete, "/api/admin/contact-messages/"+id, "", adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(g, http.MethodDelete, "/api/admin/contact-messages/"+id, "", adminToken)
	require.Equal(t, http.StatusNotFound, w.Code)
}
