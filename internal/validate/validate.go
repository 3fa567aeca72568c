package validate

import (
	"context"
	"fmt"
	"math"
	"net/mail"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"

	"github.com/roach88/ward/internal/model"
)

// DefaultRegion is used to parse phone numbers written without a country code.
const DefaultRegion = "US"

// Errors maps a field key to a human-readable problem with that field.
// An empty map means the input is valid.
type Errors map[string]string

// OK reports whether no field failed.
func (e Errors) OK() bool {
	return len(e) == 0
}

// Fields returns the failing field keys in sorted order.
func (e Errors) Fields() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// add records msg for field unless an earlier rule already failed it.
func (e Errors) add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// References answers existence questions for foreign keys.
// *store.Store satisfies it.
type References interface {
	PatientExists(ctx context.Context, id int64) (bool, error)
	StaffExists(ctx context.Context, id int64) (bool, error)
}

// Rules holds the context every validator needs.
type Rules struct {
	// Region is the default phone region (ISO 3166 alpha-2).
	Region string

	// Now supplies today's date for date-of-birth checks.
	Now func() time.Time

	// Refs resolves patient and staff ids. Nil skips existence checks.
	Refs References
}

// NewRules returns Rules with the given region and lookups, using the wall clock.
func NewRules(region string, refs References) Rules {
	return Rules{Region: region, Now: time.Now, Refs: refs}
}

func (r Rules) region() string {
	if r.Region == "" {
		return DefaultRegion
	}
	return r.Region
}

func (r Rules) today() time.Time {
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func required(errs Errors, field, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.add(field, "is required")
	}
	return value
}

func date(errs Errors, field, value string) (string, time.Time) {
	value = required(errs, field, value)
	if value == "" {
		return "", time.Time{}
	}
	t, err := time.Parse(model.DateLayout, value)
	if err != nil {
		errs.add(field, "must be a date in YYYY-MM-DD format")
		return value, time.Time{}
	}
	return value, t
}

func (r Rules) phone(errs Errors, field, value string) string {
	value = required(errs, field, value)
	if value == "" {
		return ""
	}
	num, err := phonenumbers.Parse(value, r.region())
	if err != nil || !phonenumbers.IsPossibleNumber(num) {
		errs.add(field, "is not a valid phone number")
		return value
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

func email(errs Errors, field, value string) *string {
	opt := model.Optional(value)
	if opt == nil {
		return nil
	}
	addr, err := mail.ParseAddress(*opt)
	if err != nil || addr.Address != *opt {
		errs.add(field, "is not a valid email address")
	}
	return opt
}

// choice resolves value against choices, accepting a full name in any case
// or an unambiguous first letter.
func choice(errs Errors, field, value string, choices []string) string {
	value = required(errs, field, value)
	if value == "" {
		return ""
	}
	if c := ResolveChoice(choices, value); c != "" {
		return c
	}
	errs.add(field, "must be one of "+strings.Join(choices, ", "))
	return ""
}

// ResolveChoice matches in against choices by full name (case-insensitive)
// or by a single first letter that identifies exactly one choice.
// Returns "" when nothing matches.
func ResolveChoice(choices []string, in string) string {
	if c := model.MatchChoice(choices, in); c != "" {
		return c
	}
	in = strings.TrimSpace(in)
	if len(in) != 1 {
		return ""
	}
	match := ""
	for _, c := range choices {
		if strings.EqualFold(c[:1], in) {
			if match != "" {
				return ""
			}
			match = c
		}
	}
	return match
}

func id(errs Errors, field, value string) (int64, bool) {
	value = required(errs, field, value)
	if value == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		errs.add(field, "must be a positive numeric id")
		return 0, false
	}
	return n, true
}

func (r Rules) patientRef(ctx context.Context, errs Errors, field, value string) (int64, error) {
	n, ok := id(errs, field, value)
	if !ok || r.Refs == nil {
		return n, nil
	}
	exists, err := r.Refs.PatientExists(ctx, n)
	if err != nil {
		return n, fmt.Errorf("check patient %d: %w", n, err)
	}
	if !exists {
		errs.add(field, fmt.Sprintf("no patient with id %d", n))
	}
	return n, nil
}

func (r Rules) staffRef(ctx context.Context, errs Errors, field, value string) (int64, error) {
	n, ok := id(errs, field, value)
	if !ok || r.Refs == nil {
		return n, nil
	}
	exists, err := r.Refs.StaffExists(ctx, n)
	if err != nil {
		return n, fmt.Errorf("check staff %d: %w", n, err)
	}
	if !exists {
		errs.add(field, fmt.Sprintf("no staff member with id %d", n))
	}
	return n, nil
}

func quantity(errs Errors, field, value string) int64 {
	value = required(errs, field, value)
	if value == "" {
		return 0
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		errs.add(field, "must be a whole number greater than 0")
		return 0
	}
	return n
}

func cost(errs Errors, field, value string) float64 {
	value = required(errs, field, value)
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		errs.add(field, "must be a number greater than or equal to 0")
		return 0
	}
	return f
}
