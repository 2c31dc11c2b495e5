package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/agarza/hoopstats/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username    string
	displayName string
	password    string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username:    fmt.Sprintf("testuser_%s", suffix),
		displayName: fmt.Sprintf("Test User %s", suffix),
		password:    "testpassword123",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithDisplayName sets the display name
func (b *UserBuilder) WithDisplayName(name string) *UserBuilder {
	b.displayName = name
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     b.username,
		DisplayName:  b.displayName,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// SessionBuilder creates test shooting sessions with a builder pattern
type SessionBuilder struct {
	userID      uuid.UUID
	sessionDate time.Time
	ftMade      int
	ftAttempted int
	tpMade      int
	tpAttempted int
	notes       *string
}

// NewSessionBuilder creates a new SessionBuilder with default values
func NewSessionBuilder(userID uuid.UUID) *SessionBuilder {
	return &SessionBuilder{
		userID:      userID,
		sessionDate: time.Now().UTC(),
	}
}

// OnDate sets the session date
func (b *SessionBuilder) OnDate(date time.Time) *SessionBuilder {
	b.sessionDate = date
	return b
}

// WithFreeThrows sets the free-throw line
func (b *SessionBuilder) WithFreeThrows(made, attempted int) *SessionBuilder {
	b.ftMade = made
	b.ftAttempted = attempted
	return b
}

// WithThreePointers sets the three-pointer line
func (b *SessionBuilder) WithThreePointers(made, attempted int) *SessionBuilder {
	b.tpMade = made
	b.tpAttempted = attempted
	return b
}

// WithNotes sets the notes
func (b *SessionBuilder) WithNotes(notes string) *SessionBuilder {
	b.notes = &notes
	return b
}

// Build creates the session in the database
func (b *SessionBuilder) Build(t *testing.T, db *gorm.DB) *domain.ShootingSession {
	t.Helper()

	session := &domain.ShootingSession{
		ID:                     uuid.New(),
		UserID:                 b.userID,
		SessionDate:            datatypes.Date(b.sessionDate),
		FreeThrowsMade:         b.ftMade,
		FreeThrowsAttempted:    b.ftAttempted,
		ThreePointersMade:      b.tpMade,
		ThreePointersAttempted: b.tpAttempted,
		Notes:                  b.notes,
		CreatedAt:              time.Now(),
		UpdatedAt:              time.Now(),
	}

	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create shooting session: %v", err)
	}

	return session
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID          string `json:"id"`
		Username    string `json:"username"`
		DisplayName string `json:"displayName"`
	} `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RegisterUser registers a user through the API and returns the auth response
func RegisterUser(t *testing.T, ts *TestServer, username, password, displayName string) *AuthResponse {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"username":    username,
		"password":    password,
		"displayName": displayName,
	})

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected register status: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode auth response: %v", err)
	}

	return &authResp
}

// AuthenticatedRequest performs an HTTP request with a bearer token
func AuthenticatedRequest(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	return resp
}
