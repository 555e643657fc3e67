package todo

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// TitleIndex answers whether a case-folded title is already taken. The
// repository implements it; the validator only uses it as a pre-check and the
// repository's unique constraint stays authoritative.
type TitleIndex interface {
	// ExistsByNormalizedTitle reports whether a live todo other than
	// excludeID has the given TitleKey. Pass 0 to exclude nothing.
	ExistsByNormalizedTitle(ctx context.Context, key string, excludeID int64) (bool, error)
}

var (
	errTitleRequired  = domain.NewError(domain.ErrMissingField, FieldTitle, "title is required")
	errNothingToPatch = domain.NewError(domain.ErrNothingToUpdate, "", "At least one field must be provided")
	errTitleType      = domain.NewError(domain.ErrTypeMismatch, FieldTitle, "title must be a string")
	errCompletedType  = domain.NewError(domain.ErrTypeMismatch, FieldCompleted, "completed must be a boolean")
	errTitleBlank     = domain.NewError(domain.ErrBlankValue, FieldTitle, "title must not be blank")
	errTitleLength    = domain.NewError(domain.ErrLengthExceeded, FieldTitle,
		fmt.Sprintf("title must be %d characters or fewer", MaxTitleLength))
)

// normalized is the rule engine's output before it is narrowed to the
// per-mode payload type.
type normalized struct {
	titlePresent     bool
	title            string
	completedPresent bool
	completed        bool
}

// ValidateCreate runs the create rules and returns the trimmed title.
func ValidateCreate(ctx context.Context, raw RawPayload, idx TitleIndex) (CreatePayload, error) {
	n, err := validate(ctx, ModeCreate, raw, idx, 0)
	if err != nil {
		return CreatePayload{}, err
	}
	return CreatePayload{Title: n.title}, nil
}

// ValidateReplace runs the full-replace rules for todo id. An omitted
// completed resets to false.
func ValidateReplace(ctx context.Context, raw RawPayload, idx TitleIndex, id int64) (ReplacePayload, error) {
	n, err := validate(ctx, ModeReplace, raw, idx, id)
	if err != nil {
		return ReplacePayload{}, err
	}
	return ReplacePayload{Title: n.title, Completed: n.completed}, nil
}

// ValidatePatch runs the partial-update rules for todo id.
func ValidatePatch(ctx context.Context, raw RawPayload, idx TitleIndex, id int64) (PatchPayload, error) {
	n, err := validate(ctx, ModePatch, raw, idx, id)
	if err != nil {
		return PatchPayload{}, err
	}
	return PatchPayload{
		TitlePresent:     n.titlePresent,
		Title:            n.title,
		CompletedPresent: n.completedPresent,
		Completed:        n.completed,
	}, nil
}

// validate applies the rules in priority order and stops at the first
// failure: missing, type (all fields), blank, length, uniqueness.
func validate(ctx context.Context, mode Mode, raw RawPayload, idx TitleIndex, excludeID int64) (normalized, error) {
	if mode == ModeCreate {
		// Create never reads completed, even if a caller forgot to project.
		raw.Completed = Field{}
	}

	if err := checkPresence(mode, raw); err != nil {
		return normalized{}, err
	}

	n, err := checkTypes(raw)
	if err != nil {
		return normalized{}, err
	}

	if !n.titlePresent {
		return n, nil
	}

	n.title = strings.TrimSpace(n.title)
	if n.title == "" {
		return normalized{}, errTitleBlank
	}
	if utf8.RuneCountInString(n.title) > MaxTitleLength {
		return normalized{}, errTitleLength
	}

	taken, err := idx.ExistsByNormalizedTitle(ctx, TitleKey(n.title), excludeID)
	if err != nil {
		return normalized{}, fmt.Errorf("checking title uniqueness: %w", err)
	}
	if taken {
		return normalized{}, ErrDuplicateTitle
	}

	return n, nil
}

func checkPresence(mode Mode, raw RawPayload) error {
	switch mode {
	case ModePatch:
		if raw.Empty() {
			return errNothingToPatch
		}
	default:
		if !raw.Title.Present {
			return errTitleRequired
		}
	}
	return nil
}

// checkTypes verifies every present field before any value rule runs, so a
// malformed completed is reported even when the title is also blank.
func checkTypes(raw RawPayload) (normalized, error) {
	var n normalized

	if raw.Title.Present {
		s, ok := raw.Title.Value.(string)
		if !ok {
			return normalized{}, errTitleType
		}
		n.titlePresent = true
		n.title = s
	}

	if raw.Completed.Present {
		b, ok := raw.Completed.Value.(bool)
		if !ok {
			return normalized{}, errCompletedType
		}
		n.completedPresent = true
		n.completed = b
	}

	return n, nil
}
