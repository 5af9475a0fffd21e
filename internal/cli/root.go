package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/trainlog/internal/activity"
	"github.com/julianstephens/trainlog/internal/blob"
	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/remote"
	"github.com/julianstephens/trainlog/internal/repository"
	"github.com/julianstephens/trainlog/internal/schedule"
)

// Context carries the injected collaborators every command runs against.
type Context struct {
	Session models.Session
	Store   remote.Store
	Repo    *repository.Repository
	Cache   *schedule.Cache
	Blobs   blob.Storage
}

// resolveDate accepts "today" or a YYYY-MM-DD date.
func resolveDate(s string) (string, error) {
	if s == "" || s == "today" {
		return time.Now().Format(constants.DateFormat), nil
	}
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return s, nil
}

// resolveActivity matches the given name against the known activity types,
// case-insensitively. Unknown names pass through unchanged; the registry
// degrades them to the segments slot rather than failing.
func resolveActivity(name string) models.ActivityType {
	for _, t := range activity.Types() {
		if strings.EqualFold(string(t), name) {
			return t
		}
	}
	return models.ActivityType(name)
}

// parseAttrs turns repeated key=value flags into an attribute bag.
func parseAttrs(pairs []string) (map[string]string, error) {
	attrs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid attribute %q, use key=value", pair)
		}
		attrs[key] = value
	}
	return attrs, nil
}

// loadProfile reads the locally cached athlete profile, if any.
func loadProfile(store blob.Storage) (*models.Profile, error) {
	data, err := store.Load(constants.BlobKeyProfile)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile cache: %w", err)
	}
	return &p, nil
}
