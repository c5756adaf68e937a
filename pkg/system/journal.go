package system

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/coreos/go-systemd/v22/journal"
	"github.com/sirupsen/logrus"
)

const journalIdentifier = "accesspoints"

// JournalHook forwards log entries to journald, turning logrus fields into
// journal fields (`variant` -> `VARIANT`).
type JournalHook struct {
	send func(message string, priority journal.Priority, vars map[string]string) error
}

// NewJournalHook returns nil when journald is not reachable.
func NewJournalHook() *JournalHook {
	if !journal.Enabled() {
		return nil
	}
	return &JournalHook{send: journal.Send}
}

func (h *JournalHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *JournalHook) Fire(entry *logrus.Entry) error {
	vars := map[string]string{"SYSLOG_IDENTIFIER": journalIdentifier}
	for k, v := range entry.Data {
		vars[journalField(k)] = fmt.Sprint(v)
	}
	return h.send(entry.Message, journalPriority(entry.Level), vars)
}

func journalPriority(level logrus.Level) journal.Priority {
	switch level {
	case logrus.PanicLevel:
		return journal.PriEmerg
	case logrus.FatalLevel:
		return journal.PriCrit
	case logrus.ErrorLevel:
		return journal.PriErr
	case logrus.WarnLevel:
		return journal.PriWarning
	case logrus.InfoLevel:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}

// journalField maps a logrus field name onto journald's [A-Z0-9_] alphabet.
// Names may not start with an underscore, those are trusted fields.
func journalField(name string) string {
	field := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return unicode.ToUpper(r)
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
	field = strings.TrimLeft(field, "_")
	if field == "" || (field[0] >= '0' && field[0] <= '9') {
		field = "F_" + field
	}
	return field
}
