package meetings

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrMeetingTypeNotFound is returned when a type lookup finds no match for
// the user
var ErrMeetingTypeNotFound = errors.New("meeting type not found")

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a display name into its URL slug, e.g.
// "30 Minute Intro Call" -> "30-minute-intro-call"
func Slugify(name string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// Service is an in-memory meeting type store, keyed per user.
// Guarded by a mutex; handler goroutines share one instance.
type Service struct {
	mu     sync.Mutex
	byUser map[string][]*MeetingType
}

// NewService creates the store
func NewService() *Service {
	return &Service{byUser: make(map[string][]*MeetingType)}
}

// defaultTypes seeds a new user's list so the dashboard has something to show
func defaultTypes() []*MeetingType {
	seeds := []struct {
		name     string
		duration int
		color    string
	}{
		{"30 Minute Intro Call", 30, "#667eea"},
		{"Product Demo", 45, "#f5576c"},
		{"Strategy Session", 60, "#00f2fe"},
	}

	types := make([]*MeetingType, 0, len(seeds))
	for _, s := range seeds {
		types = append(types, &MeetingType{
			ID:       uuid.NewString(),
			Name:     s.name,
			Duration: s.duration,
			Color:    s.color,
			Slug:     Slugify(s.name),
		})
	}
	return types
}

// List returns the user's meeting types, seeding defaults on first access
func (s *Service) List(userID string) []*MeetingType {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUser[userID]; !ok {
		s.byUser[userID] = defaultTypes()
	}

	// Copy the slice so callers can't race the store
	types := make([]*MeetingType, len(s.byUser[userID]))
	copy(types, s.byUser[userID])
	return types
}

// Create adds a meeting type for the user
func (s *Service) Create(userID string, req CreateMeetingTypeRequest) (*MeetingType, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	mt := &MeetingType{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(req.Name),
		Duration: req.Duration,
		Color:    req.Color,
		Slug:     Slugify(req.Name),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUser[userID]; !ok {
		s.byUser[userID] = defaultTypes()
	}
	s.byUser[userID] = append(s.byUser[userID], mt)

	return mt, nil
}

// Update replaces the named fields of an existing type
func (s *Service) Update(userID, id string, req CreateMeetingTypeRequest) (*MeetingType, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, mt := range s.byUser[userID] {
		if mt.ID == id {
			mt.Name = strings.TrimSpace(req.Name)
			mt.Duration = req.Duration
			mt.Color = req.Color
			mt.Slug = Slugify(req.Name)
			return mt, nil
		}
	}

	return nil, ErrMeetingTypeNotFound
}

// Delete removes a type by ID
func (s *Service) Delete(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	types := s.byUser[userID]
	for i, mt := range types {
		if mt.ID == id {
			s.byUser[userID] = append(types[:i], types[i+1:]...)
			return nil
		}
	}

	return ErrMeetingTypeNotFound
}

func validate(req CreateMeetingTypeRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if req.Duration <= 0 || req.Duration > 8*60 {
		return fmt.Errorf("duration must be between 1 and 480 minutes")
	}
	return nil
}
