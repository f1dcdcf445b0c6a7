package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginAndProfile(t *testing.T) {
	r, _ := setupRouter(t)

	token := registerUser(t, r, "apiuser")

	// duplicate registration rejected
	w := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{"username": "apiuser", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")

	// wrong password rejected
	w = doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{"username": "apiuser", "password": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Credentials")

	// profile carries default goals and hides the password
	w = doJSON(t, r, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "apiuser", profile["username"])
	assert.EqualValues(t, 2000, profile["dailyCalorieGoal"])
	assert.NotContains(t, profile, "password")
}

func TestUpdateProfileGoals(t *testing.T) {
	r, _ := setupRouter(t)
	token := registerUser(t, r, "goalsuser")

	w := doJSON(t, r, http.MethodPut, "/api/profile", token, gin.H{"dailyCalorieGoal": 1800})
	require.Equal(t, http.StatusOK, w.Code)

	var profile map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.EqualValues(t, 1800, profile["dailyCalorieGoal"])
	assert.EqualValues(t, 150, profile["dailyProteinGoal"])
}

func TestPublicCatalogEndpoints(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/doctors", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var doctors []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctors))
	assert.Len(t, doctors, 3)

	w = doJSON(t, r, http.MethodGet, "/api/store/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/recipes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAppointmentFlow(t *testing.T) {
	r, _ := setupRouter(t)
	token := registerUser(t, r, "appts")

	w := doJSON(t, r, http.MethodGet, "/api/doctors", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var doctors []struct {
		ID uint `json:"ID"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctors))
	require.NotEmpty(t, doctors)

	w = doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"doctorId": doctors[0].ID,
		"date":     "2026-09-15T10:00:00Z",
		"reason":   "diet plan review",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "scheduled")

	w = doJSON(t, r, http.MethodGet, "/api/appointments/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var appts []struct {
		Reason string `json:"reason"`
		Doctor struct {
			Name string `json:"name"`
		} `json:"doctor"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appts))
	require.Len(t, appts, 1)
	assert.Equal(t, "diet plan review", appts[0].Reason)
	assert.NotEmpty(t, appts[0].Doctor.Name)
}
