// Package mockapi is a self-contained stand-in for the AgroDoctor backend.
// It serves the same wire contract from in-memory state so the terminal
// client can be developed and demoed without the hosted service.
package mockapi

import (
	"sync"
	"time"

	"agrodoctor/internal/domain/entity"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	errUsernameTaken = errors.New("username already registered")
	errEmailTaken    = errors.New("email already registered")
	errUserNotFound  = errors.New("user not found")
)

// account is one registered user with their stored records.
type account struct {
	Name         string
	Email        string
	Username     string
	PasswordHash string

	Diagnoses []entity.Diagnosis
}

// feedbackEntry is one submitted feedback message.
type feedbackEntry struct {
	Name    string
	Email   string
	Message string
}

// Store holds all mock state behind one lock. Echo serves requests
// concurrently, so every access goes through it.
type Store struct {
	mu sync.RWMutex

	users    map[string]*account // keyed by username
	otps     map[string]string   // keyed by email
	feedback []feedbackEntry
	hotspots []entity.Hotspot

	nextDiagnosisID int64
}

// NewStore seeds the mock with one known account and a handful of regional
// hotspots, so the client has data to render on first run.
func NewStore() (*Store, error) {
	store := &Store{
		users:           make(map[string]*account),
		otps:            make(map[string]string),
		nextDiagnosisID: 1,
		hotspots: []entity.Hotspot{
			{DiseaseName: "Tomato Late Blight", Severity: 78.4, Latitude: 26.1445, Longitude: 91.7362},
			{DiseaseName: "Rice Blast", Severity: 55.0, Latitude: 26.1833, Longitude: 91.7500},
			{DiseaseName: "Wheat Leaf Rust", Severity: 32.6, Latitude: 26.1100, Longitude: 91.7050},
			{DiseaseName: "Potato Early Blight", Severity: 48.9, Latitude: 26.2000, Longitude: 91.6900},
		},
	}

	if err := store.CreateUser("Farmer One", "farmer@example.com", "farmer1", "secret"); err != nil {
		return nil, errors.Wrap(err, "seed user")
	}

	return store, nil
}

// CreateUser registers an account, rejecting duplicate usernames and emails.
func (s *Store) CreateUser(name, email, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return errUsernameTaken
	}
	for _, user := range s.users {
		if user.Email == email {
			return errEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	s.users[username] = &account{
		Name:         name,
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
	}

	return nil
}

// Authenticate checks a username and password pair.
func (s *Store) Authenticate(username, password string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[username]
	if !exists {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// Profile returns the public profile for username.
func (s *Store) Profile(username string) (*entity.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[username]
	if !exists {
		return nil, errUserNotFound
	}

	return &entity.UserProfile{Name: user.Name, Email: user.Email, Username: user.Username}, nil
}

// IssueOTP stores a one-time password for the account behind email.
func (s *Store) IssueOTP(email, otp string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByEmailLocked(email) == nil {
		return errUserNotFound
	}
	s.otps[email] = otp

	return nil
}

// ResetPassword consumes the OTP and replaces the account password.
func (s *Store) ResetPassword(email, otp, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.otps[email]
	if !exists || stored != otp {
		return errors.New("invalid otp")
	}

	user := s.findByEmailLocked(email)
	if user == nil {
		return errUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	user.PasswordHash = string(hash)
	delete(s.otps, email)

	return nil
}

// AppendDiagnosis logs a record into the user's history and feeds the
// hotspot aggregate, mirroring what the real backend derives from reports.
func (s *Store) AppendDiagnosis(username string, diagnosis entity.Diagnosis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[username]
	if !exists {
		return errUserNotFound
	}

	diagnosis.ID = s.nextDiagnosisID
	s.nextDiagnosisID++
	if diagnosis.Timestamp.IsZero() {
		diagnosis.Timestamp = time.Now().UTC()
	}
	user.Diagnoses = append(user.Diagnoses, diagnosis)

	s.hotspots = append(s.hotspots, entity.Hotspot{
		DiseaseName: diagnosis.DiseaseName,
		Severity:    diagnosis.Severity,
		Latitude:    diagnosis.Latitude,
		Longitude:   diagnosis.Longitude,
	})

	return nil
}

// History returns the user's records in insertion order; the client sorts.
func (s *Store) History(username string) ([]entity.Diagnosis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[username]
	if !exists {
		return nil, errUserNotFound
	}

	out := make([]entity.Diagnosis, len(user.Diagnoses))
	copy(out, user.Diagnoses)

	return out, nil
}

// Hotspots returns the current outbreak aggregates.
func (s *Store) Hotspots() []entity.Hotspot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Hotspot, len(s.hotspots))
	copy(out, s.hotspots)

	return out
}

// AddFeedback records a submitted message.
func (s *Store) AddFeedback(name, email, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.feedback = append(s.feedback, feedbackEntry{Name: name, Email: email, Message: message})
}

// FeedbackCount reports how many messages were received.
func (s *Store) FeedbackCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.feedback)
}

func (s *Store) findByEmailLocked(email string) *account {
	for _, user := range s.users {
		if user.Email == email {
			return user
		}
	}

	return nil
}
