package todo

import (
	"errors"
	"strconv"
	"testing"

	"pgregory.net/rapid"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "one", raw: "1", want: 1},
		{name: "large", raw: "123456789", want: 123456789},
		{name: "max int64", raw: "9223372036854775807", want: MaxID},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-4", wantErr: true},
		{name: "decimal", raw: "1.5", wantErr: true},
		{name: "word", raw: "abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "overflow", raw: "9223372036854775808", wantErr: true},
		{name: "huge", raw: "99999999999999999999999", wantErr: true},
		{name: "hex", raw: "0x10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseID(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidIdentifier) {
					t.Fatalf("ParseID(%q) error = %v, want ErrInvalidIdentifier", tt.raw, err)
				}
				if err.Error() != "id must be a positive integer" {
					t.Errorf("ParseID(%q) detail = %q", tt.raw, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) error = %v, want nil", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseID(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseID_RoundTripsPositiveIntegers(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		id := rapid.Int64Range(1, MaxID).Draw(t, "id")

		got, err := ParseID(strconv.FormatInt(id, 10))
		if err != nil {
			t.Fatalf("ParseID(%d) error = %v", id, err)
		}
		if got != id {
			t.Fatalf("ParseID(%d) = %d", id, got)
		}
	})
}

func TestTitleKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Buy milk", "buy milk"},
		{"  Buy MILK  ", "buy milk"},
		{"ÉCOLE", "école"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := TitleKey(tt.in); got != tt.want {
				t.Errorf("TitleKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPatchPayload_Apply(t *testing.T) {
	t.Parallel()

	base := Todo{ID: 7, Title: "Old", Completed: true}

	got := PatchPayload{TitlePresent: true, Title: "New"}.Apply(base)
	if got.Title != "New" || !got.Completed || got.ID != 7 {
		t.Errorf("Apply(title only) = %+v", got)
	}

	got = PatchPayload{CompletedPresent: true, Completed: false}.Apply(base)
	if got.Title != "Old" || got.Completed {
		t.Errorf("Apply(completed only) = %+v", got)
	}
}

func TestReplacePayload_Apply(t *testing.T) {
	t.Parallel()

	got := ReplacePayload{Title: "Fresh"}.Apply(Todo{ID: 3, Title: "Stale", Completed: true})
	if got.ID != 3 || got.Title != "Fresh" || got.Completed {
		t.Errorf("Apply() = %+v, want id 3, title Fresh, completed false", got)
	}
}
