package materializer

import (
	"strings"

	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/normalizer"
	"github.com/julianstephens/trainlog/internal/parser"
)

// Materializer converts a schedule day, or a single line of one, into a
// brand-new unsaved entry. The caller hands the result to the repository;
// materialization never mutates the schedule cache and never checks whether
// the day was imported before, so repeated imports create duplicate entries.
type Materializer struct {
	session models.Session
	parser  parser.Parser
}

func New(session models.Session, p parser.Parser) *Materializer {
	return &Materializer{session: session, parser: p}
}

// Materialize builds a strength entry dated day.Date from every main-set
// line. A day without a main set still needs a loggable representation, so
// it falls back to a Run entry carrying the warm-up and cool-down text as
// notes.
func (m *Materializer) Materialize(day models.ScheduleDay) (models.Entry, error) {
	if len(day.MainSet) == 0 {
		entry, err := normalizer.Normalize(models.ActivityRun, day.Date, nil, nil)
		if err != nil {
			return models.Entry{}, err
		}
		entry.OwnerID = m.session.UserID
		entry.Notes = strings.Join(append(append([]string{}, day.WarmUp...), day.CoolDown...), ", ")
		return entry, nil
	}

	exercises := normalizer.ExercisesFromLines(m.parser, day.MainSet)
	entry, err := normalizer.Normalize(models.ActivityGym, day.Date, nil, exercises)
	if err != nil {
		return models.Entry{}, err
	}
	entry.OwnerID = m.session.UserID
	entry.Notes = strings.Join(day.MainSet, ", ")
	return entry, nil
}

// MaterializeLine builds a single-exercise strength entry dated day.Date
// from one main-set line.
func (m *Materializer) MaterializeLine(day models.ScheduleDay, line string) (models.Entry, error) {
	rec := m.parser.Parse(line)
	entry, err := normalizer.Normalize(models.ActivityGym, day.Date, nil, []models.ExerciseRecord{rec})
	if err != nil {
		return models.Entry{}, err
	}
	entry.OwnerID = m.session.UserID
	entry.Notes = line
	return entry, nil
}
