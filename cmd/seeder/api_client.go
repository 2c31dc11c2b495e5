package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching backend

type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Session struct {
	ID                     string `json:"id"`
	UserID                 string `json:"userId"`
	SessionDate            string `json:"sessionDate"`
	FreeThrowsMade         int    `json:"freeThrowsMade"`
	FreeThrowsAttempted    int    `json:"freeThrowsAttempted"`
	ThreePointersMade      int    `json:"threePointersMade"`
	ThreePointersAttempted int    `json:"threePointersAttempted"`
}

type SessionRequest struct {
	UserID                 string `json:"userId"`
	SessionDate            string `json:"sessionDate"`
	FreeThrowsMade         int    `json:"freeThrowsMade"`
	FreeThrowsAttempted    int    `json:"freeThrowsAttempted"`
	ThreePointersMade      int    `json:"threePointersMade"`
	ThreePointersAttempted int    `json:"threePointersAttempted"`
}

// Register creates a new user account and returns the auth tokens
func (c *APIClient) Register(username, password, displayName string) (*AuthResponse, error) {
	payload := map[string]string{
		"username":    username,
		"password":    password,
		"displayName": displayName,
	}

	var resp AuthResponse
	if err := c.post("/auth/register", "", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates an existing user
func (c *APIClient) Login(username, password string) (*AuthResponse, error) {
	payload := map[string]string{
		"username": username,
		"password": password,
	}

	var resp AuthResponse
	if err := c.post("/auth/login", "", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateSession logs a shooting session for the authenticated user
func (c *APIClient) CreateSession(token string, req SessionRequest) (*Session, error) {
	var session Session
	if err := c.post("/sessions", token, req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *APIClient) post(path, token string, payload, result interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, string(msg))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
