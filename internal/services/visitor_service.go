package services

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"

	"newsd/internal/models"
	"newsd/internal/providers"
	"newsd/internal/store"
)

// Pattern order matters: CrOS user agents also contain "Linux", iOS ones
// contain "Macintosh"-adjacent tokens, so the more specific entries come
// first.
var osPatterns = []struct {
	Name    string
	Pattern *regexp.Regexp
}{
	{"ChromeOS", regexp.MustCompile(`CrOS`)},
	{"iOS", regexp.MustCompile(`iPhone|iPad|iPod`)},
	{"Android", regexp.MustCompile(`Android`)},
	{"Windows", regexp.MustCompile(`Windows`)},
	{"macOS", regexp.MustCompile(`Macintosh|Mac OS X`)},
	{"Linux", regexp.MustCompile(`Linux`)},
}

func DetectOS(userAgent string) string {
	if userAgent == "" {
		return "Other"
	}
	for _, p := range osPatterns {
		if p.Pattern.MatchString(userAgent) {
			return p.Name
		}
	}
	return "Other"
}

// VisitResult reports the outcome of one visit and the cookie state the
// client should carry forward.
type VisitResult struct {
	Counted   bool
	VisitorID string
	Today     string
	OS        string
	Total     int
	ByOS      map[string]int
}

type VisitorServiceInterface interface {
	RecordVisit(visitorID, lastVisit, userAgent string) (*VisitResult, error)
	Stats() (*models.VisitorStats, error)
}

type VisitorService struct {
	docs   store.DocumentStore
	logger providers.Logger
	now    func() time.Time
}

func NewVisitorService(docs *store.VisitorStore, logger providers.Logger) VisitorServiceInterface {
	return &VisitorService{
		docs:   docs,
		logger: logger,
		now:    time.Now,
	}
}

// RecordVisit counts one visit per visitor per calendar day. The pair of
// client markers decides: a matching date marker means the visit was already
// counted today.
func (vs *VisitorService) RecordVisit(visitorID, lastVisit, userAgent string) (*VisitResult, error) {
	today := vs.now().Format("2006-01-02")

	if visitorID != "" && lastVisit == today {
		stats, err := vs.Stats()
		if err != nil {
			return nil, err
		}
		return &VisitResult{
			Counted:   false,
			VisitorID: visitorID,
			Today:     today,
			Total:     stats.Total,
			ByOS:      stats.ByOS,
		}, nil
	}

	if visitorID == "" {
		visitorID = uuid.NewString()
	}
	osName := DetectOS(userAgent)

	stats := models.NewVisitorStats()
	err := vs.docs.Update(stats, func() error {
		stats.Record(osName, today)
		return nil
	})
	if err != nil {
		return nil, err
	}

	vs.logger.Debugf(providers.TypeApp, "Counted visit from %s (%s)", visitorID, osName)
	return &VisitResult{
		Counted:   true,
		VisitorID: visitorID,
		Today:     today,
		OS:        osName,
		Total:     stats.Total,
		ByOS:      stats.ByOS,
	}, nil
}

func (vs *VisitorService) Stats() (*models.VisitorStats, error) {
	stats := models.NewVisitorStats()
	if err := vs.docs.Read(stats); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.NewVisitorStats(), nil
		}
		return nil, err
	}
	return stats, nil
}
