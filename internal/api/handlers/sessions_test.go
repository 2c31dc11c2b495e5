package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/agarza/hoopstats/internal/api/handlers"
	"github.com/agarza/hoopstats/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionListResponse struct {
	Sessions []handlers.SessionResponse `json:"sessions"`
}

func sessionPayload(userID string) map[string]interface{} {
	return map[string]interface{}{
		"userId":                 userID,
		"sessionDate":            "2024-06-10",
		"freeThrowsMade":         8,
		"freeThrowsAttempted":    10,
		"threePointersMade":      2,
		"threePointersAttempted": 5,
		"notes":                  "morning shootaround",
	}
}

func TestSessions_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)

	auth := testutil.RegisterUser(t, ts, "shooter", "password123", "Shooter")

	resp := testutil.AuthenticatedRequest(t, http.MethodPost,
		ts.APIURL("/sessions"), auth.AccessToken, sessionPayload(auth.User.ID))
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	var created handlers.SessionResponse
	testutil.AssertJSONResponse(t, resp, &created)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, auth.User.ID, created.UserID)
	assert.Equal(t, "2024-06-10", created.SessionDate)
	assert.Equal(t, 8, created.FreeThrowsMade)
	require.NotNil(t, created.Notes)
	assert.Equal(t, "morning shootaround", *created.Notes)
}

func TestSessions_Create_RequiresAuth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	auth := testutil.RegisterUser(t, ts, "shooter", "password123", "Shooter")

	resp := testutil.AuthenticatedRequest(t, http.MethodPost,
		ts.APIURL("/sessions"), "", sessionPayload(auth.User.ID))
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
}

func TestSessions_Create_Validation(t *testing.T) {
	ts := testutil.NewTestServer(t)

	auth := testutil.RegisterUser(t, ts, "shooter", "password123", "Shooter")

	tests := []struct {
		name   string
		mutate func(payload map[string]interface{})
	}{
		{
			name: "made exceeds attempted",
			mutate: func(p map[string]interface{}) {
				p["freeThrowsMade"] = 11
				p["freeThrowsAttempted"] = 10
			},
		},
		{
			name: "missing user id",
			mutate: func(p map[string]interface{}) {
				p["userId"] = ""
			},
		},
		{
			name: "missing session date",
			mutate: func(p map[string]interface{}) {
				p["sessionDate"] = ""
			},
		},
		{
			name: "malformed session date",
			mutate: func(p map[string]interface{}) {
				p["sessionDate"] = "10/06/2024"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := sessionPayload(auth.User.ID)
			tt.mutate(payload)

			resp := testutil.AuthenticatedRequest(t, http.MethodPost,
				ts.APIURL("/sessions"), auth.AccessToken, payload)
			defer resp.Body.Close()

			testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
		})
	}
}

func TestSessions_List(t *testing.T) {
	ts := testutil.NewTestServer(t)

	auth := testutil.RegisterUser(t, ts, "shooter", "password123", "Shooter")
	other := testutil.RegisterUser(t, ts, "rival", "password123", "Rival")

	for _, day := range []string{"2024-06-09", "2024-06-10"} {
		payload := sessionPayload(auth.User.ID)
		payload["sessionDate"] = day
		resp := testutil.AuthenticatedRequest(t, http.MethodPost,
			ts.APIURL("/sessions"), auth.AccessToken, payload)
		resp.Body.Close()
	}
	resp := testutil.AuthenticatedRequest(t, http.MethodPost,
		ts.APIURL("/sessions"), other.AccessToken, sessionPayload(other.User.ID))
	resp.Body.Close()

	// Listing is public, no token needed
	resp, err := http.Get(ts.APIURL("/sessions?period=all"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var list sessionListResponse
	testutil.AssertJSONResponse(t, resp, &list)
	require.Len(t, list.Sessions, 3)

	// Newest session date first, owner display names attached
	assert.Equal(t, "2024-06-10", list.Sessions[0].SessionDate)
	assert.Equal(t, "2024-06-09", list.Sessions[2].SessionDate)
	assert.NotEmpty(t, list.Sessions[0].UserDisplayName)

	// Filter by user
	resp, err = http.Get(ts.APIURL("/sessions?period=all&userId=" + auth.User.ID))
	require.NoError(t, err)
	defer resp.Body.Close()

	list = sessionListResponse{}
	testutil.AssertJSONResponse(t, resp, &list)
	require.Len(t, list.Sessions, 2)
	for _, s := range list.Sessions {
		assert.Equal(t, auth.User.ID, s.UserID)
	}
}

func TestSessions_List_InvalidUserID(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/sessions?userId=not-a-uuid"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Invalid user ID")
}

func TestSessions_Update(t *testing.T) {
	ts := testutil.NewTestServer(t)

	auth := testutil.RegisterUser(t, ts, "shooter", "password123", "Shooter")

	resp := testutil.AuthenticatedRequest(t, http.MethodPost,
		ts.APIURL("/sessions"), auth.AccessToken, sessionPayload(auth.User.ID))
	var created handlers.SessionResponse
	testutil.AssertJSONResponse(t, resp, &created)
	resp.Body.Close()

	payload := sessionPayload(auth.User.ID)
	payload["freeThrowsMade"] = 10

	resp = testutil.AuthenticatedRequest(t, http.MethodPut,
		ts.APIURL("/sessions/"+created.ID), auth.AccessToken, payload)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var updated handlers.SessionResponse
	testutil.AssertJSONResponse(t, resp, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 10, updated.FreeThrowsMade)
}

func TestSessions_Update_NotFound(t *testing.T) {
	ts := testutil.NewTestServer(t)

	auth := testutil.RegisterUser(t, ts, "shooter", "password123", "Shooter")

	resp := testutil.AuthenticatedRequest(t, http.MethodPut,
		ts.APIURL("/sessions/"+uuid.New().String()), auth.AccessToken, sessionPayload(auth.User.ID))
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Session not found")
}

func TestSessions_Delete(t *testing.T) {
	ts := testutil.NewTestServer(t)

	auth := testutil.RegisterUser(t, ts, "shooter", "password123", "Shooter")

	resp := testutil.AuthenticatedRequest(t, http.MethodPost,
		ts.APIURL("/sessions"), auth.AccessToken, sessionPayload(auth.User.ID))
	var created handlers.SessionResponse
	testutil.AssertJSONResponse(t, resp, &created)
	resp.Body.Close()

	resp = testutil.AuthenticatedRequest(t, http.MethodDelete,
		ts.APIURL("/sessions/"+created.ID), auth.AccessToken, nil)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result map[string]bool
	testutil.AssertJSONResponse(t, resp, &result)
	assert.True(t, result["success"])

	// Deleting the same id again still succeeds
	resp = testutil.AuthenticatedRequest(t, http.MethodDelete,
		ts.APIURL("/sessions/"+created.ID), auth.AccessToken, nil)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)
}

func TestSessions_List_LimitCap(t *testing.T) {
	ts := testutil.NewTestServer(t)

	auth := testutil.RegisterUser(t, ts, "shooter", "password123", "Shooter")

	for i := 1; i <= 3; i++ {
		payload := sessionPayload(auth.User.ID)
		payload["sessionDate"] = fmt.Sprintf("2024-06-%02d", i)
		resp := testutil.AuthenticatedRequest(t, http.MethodPost,
			ts.APIURL("/sessions"), auth.AccessToken, payload)
		resp.Body.Close()
	}

	resp, err := http.Get(ts.APIURL("/sessions?period=all&limit=2"))
	require.NoError(t, err)
	defer resp.Body.Close()

	var list sessionListResponse
	testutil.AssertJSONResponse(t, resp, &list)
	assert.Len(t, list.Sessions, 2)
}
