package harness

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/roach88/ward/internal/auth"
	"github.com/roach88/ward/internal/engine"
	"github.com/roach88/ward/internal/model"
	"github.com/roach88/ward/internal/screens"
	"github.com/roach88/ward/internal/store"
	"github.com/roach88/ward/internal/testutil"
	"github.com/roach88/ward/internal/validate"
)

// Harness is the test execution engine.
// It runs scenarios with a frozen clock and fixed session tokens.
type Harness struct {
	store *store.Store
	auth  *auth.Service
	rules validate.Rules
	nav   *engine.Navigator
}

// Run executes a test scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
//
// Execution flow:
// 1. Create fresh in-memory database
// 2. Execute setup steps
// 3. Start the navigator on the login screen
// 4. Execute flow steps with expect validation
// 5. Evaluate assertions against the trace and the store
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	now := time.Time{}
	if scenario.Today != "" {
		now, err = time.Parse(model.DateLayout, scenario.Today)
		if err != nil {
			return nil, fmt.Errorf("parse today: %w", err)
		}
	}
	clock := testutil.NewFixedClock(now)

	svc := auth.NewService(st,
		auth.WithCost(bcrypt.MinCost),
		auth.WithIDGenerator(auth.NewSequenceGenerator("user")),
		auth.WithTokenGenerator(testutil.NewFixedSessionGenerator(scenario.SessionToken)),
		auth.WithNow(clock.Now),
	)
	rules := validate.Rules{Region: validate.DefaultRegion, Now: clock.Now, Refs: st}

	h := &Harness{
		store: st,
		auth:  svc,
		rules: rules,
		nav:   engine.NewNavigator(engine.Env{Store: st, Auth: svc, Rules: rules}, screens.NewLogin),
	}

	ctx := context.Background()

	if err := h.executeSetup(ctx, scenario.Setup); err != nil {
		return nil, fmt.Errorf("failed to execute setup: %w", err)
	}

	result := NewResult()
	h.nav.Start(ctx)
	if err := h.executeFlow(ctx, scenario.Flow, result); err != nil {
		return nil, fmt.Errorf("failed to execute flow: %w", err)
	}

	actx := &AssertionContext{
		Store: st,
		Ctx:   ctx,
	}
	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions, actx) {
		result.AddError(errMsg)
	}

	return result, nil
}

// executeSetup seeds accounts and entities. Entity fields go through the
// same validators the forms use, so setup cannot create rows the UI
// would reject.
func (h *Harness) executeSetup(ctx context.Context, setup []SetupStep) error {
	for i, step := range setup {
		if step.Register != nil {
			if _, err := h.auth.Register(ctx, step.Register.Username, step.Register.Password); err != nil {
				return fmt.Errorf("setup step %d: register %s: %w", i, step.Register.Username, err)
			}
			continue
		}

		id, err := h.createEntity(ctx, step.Entity, step.Fields)
		if err != nil {
			return fmt.Errorf("setup step %d: %w", i, err)
		}
		slog.Debug("setup step completed", "step", i, "entity", step.Entity, "id", id)
	}
	return nil
}

func (h *Harness) createEntity(ctx context.Context, entity string, f map[string]string) (int64, error) {
	var (
		errs validate.Errors
		err  error
		id   int64
	)

	switch entity {
	case SetupPatient:
		var p model.Patient
		p, errs = h.rules.Patient(validate.PatientInput{
			FirstName:          f[validate.FieldFirstName],
			LastName:           f[validate.FieldLastName],
			DateOfBirth:        f[validate.FieldDateOfBirth],
			Gender:             f[validate.FieldGender],
			Address:            f[validate.FieldAddress],
			PhoneNumber:        f[validate.FieldPhoneNumber],
			Email:              f[validate.FieldEmail],
			MedicalHistory:     f[validate.FieldMedicalHistory],
			Allergies:          f[validate.FieldAllergies],
			CurrentMedications: f[validate.FieldCurrentMedications],
		})
		if errs.OK() {
			id, err = h.store.CreatePatient(ctx, p)
		}
	case SetupStaff:
		var m model.Staff
		m, errs = h.rules.Staff(validate.StaffInput{
			Name:        f[validate.FieldName],
			Role:        f[validate.FieldRole],
			PhoneNumber: f[validate.FieldPhoneNumber],
			Email:       f[validate.FieldEmail],
			Address:     f[validate.FieldAddress],
		})
		if errs.OK() {
			id, err = h.store.CreateStaff(ctx, m)
		}
	case SetupShift:
		var sh model.Shift
		sh, errs, err = h.rules.Shift(ctx, validate.ShiftInput{
			StaffID: f[validate.FieldStaff],
			Date:    f[validate.FieldDate],
			Shift:   f[validate.FieldShift],
		})
		if err == nil && errs.OK() {
			id, err = h.store.CreateShift(ctx, sh)
		}
	case SetupMedicalRecord:
		var r model.MedicalRecord
		r, errs, err = h.rules.MedicalRecord(ctx, validate.RecordInput{
			PatientID:    f[validate.FieldPatient],
			DoctorNotes:  f[validate.FieldDoctorNotes],
			NurseNotes:   f[validate.FieldNurseNotes],
			Diagnosis:    f[validate.FieldDiagnosis],
			Prescription: f[validate.FieldPrescription],
		})
		if err == nil && errs.OK() {
			id, err = h.store.CreateMedicalRecord(ctx, r)
		}
	case SetupInvoice:
		var inv model.Invoice
		inv, errs, err = h.rules.Invoice(ctx, validate.InvoiceInput{
			PatientID: f[validate.FieldPatient],
			Item:      f[validate.FieldItem],
			Quantity:  f[validate.FieldQuantity],
			Cost:      f[validate.FieldCost],
		})
		if err == nil && errs.OK() {
			id, err = h.store.CreateInvoice(ctx, inv)
		}
	default:
		return 0, fmt.Errorf("unknown entity %q", entity)
	}

	if err != nil {
		return 0, fmt.Errorf("create %s: %w", entity, err)
	}
	if !errs.OK() {
		return 0, fmt.Errorf("invalid %s: %s", entity, formatErrors(errs))
	}
	return id, nil
}

func formatErrors(errs validate.Errors) string {
	parts := make([]string, 0, len(errs))
	for _, k := range errs.Fields() {
		parts = append(parts, k+": "+errs[k])
	}
	return strings.Join(parts, "; ")
}

// executeFlow dispatches each step's events and validates expect clauses.
func (h *Harness) executeFlow(ctx context.Context, flow []FlowStep, result *Result) error {
	for i, step := range flow {
		var (
			out   engine.Outcome
			input string
		)

		if step.Type != "" {
			input = "type " + step.Type
			for _, ev := range engine.Runes(step.Type) {
				out = h.nav.Dispatch(ctx, ev)
			}
		} else {
			input = "press " + strings.Join(step.Press, " ")
			for _, name := range step.Press {
				ev, err := engine.ParseKey(name)
				if err != nil {
					return fmt.Errorf("flow step %d: %w", i, err)
				}
				out = h.nav.Dispatch(ctx, ev)
			}
		}

		ev := h.snapshot(input, out)
		result.AddTrace(ev)

		if step.Expect != nil {
			for _, msg := range h.checkExpect(step.Expect, ev) {
				result.AddError(fmt.Sprintf("flow[%d] (%s): %s", i, input, msg))
			}
		}

		slog.Debug("flow step completed",
			"step", i,
			"input", input,
			"outcome", ev.Outcome,
			"screen", ev.Screen,
			"seq", ev.Seq,
		)
	}

	return nil
}

// snapshot records the navigator state after a step.
func (h *Harness) snapshot(input string, out engine.Outcome) TraceEvent {
	layout := h.nav.Layout()
	ev := TraceEvent{
		Seq:     h.nav.Seq(),
		Input:   input,
		Outcome: out.Kind.String(),
		Screen:  h.nav.Active().Name(),
		Depth:   h.nav.Depth(),
		Banner:  layout.Banner,
		Notice:  layout.Notice,
	}
	if sess := h.nav.Session(); sess != nil {
		ev.Session = sess.Username
	}
	for _, f := range layout.Fields {
		if f.Error != "" {
			ev.Errors = append(ev.Errors, f.Key)
		}
	}
	return ev
}

// checkExpect compares the state after a step with exp and returns one
// message per mismatch.
func (h *Harness) checkExpect(exp *ExpectClause, ev TraceEvent) []string {
	var msgs []string
	mismatch := func(what string, want, got any) {
		msgs = append(msgs, fmt.Sprintf("expected %s %v, got %v", what, want, got))
	}

	if exp.Outcome != "" && exp.Outcome != ev.Outcome {
		mismatch("outcome", exp.Outcome, ev.Outcome)
	}
	if exp.Screen != "" && exp.Screen != ev.Screen {
		mismatch("screen", exp.Screen, ev.Screen)
	}
	if exp.Depth != 0 && exp.Depth != ev.Depth {
		mismatch("depth", exp.Depth, ev.Depth)
	}
	if exp.Session != nil && *exp.Session != ev.Session {
		mismatch("session", fmt.Sprintf("%q", *exp.Session), fmt.Sprintf("%q", ev.Session))
	}
	if exp.Banner != nil && *exp.Banner != ev.Banner {
		mismatch("banner", fmt.Sprintf("%q", *exp.Banner), fmt.Sprintf("%q", ev.Banner))
	}
	if exp.Notice != nil && *exp.Notice != ev.Notice {
		mismatch("notice", fmt.Sprintf("%q", *exp.Notice), fmt.Sprintf("%q", ev.Notice))
	}

	if exp.Errors != nil {
		got := make(map[string]string)
		for _, f := range h.nav.Layout().Fields {
			if f.Error != "" {
				got[f.Key] = f.Error
			}
		}
		for key, want := range exp.Errors {
			if got[key] != want {
				mismatch("error on "+key, fmt.Sprintf("%q", want), fmt.Sprintf("%q", got[key]))
			}
		}
		for key, msg := range got {
			if _, ok := exp.Errors[key]; !ok {
				msgs = append(msgs, fmt.Sprintf("unexpected error on %s: %q", key, msg))
			}
		}
	}

	if exp.Rows != nil {
		table := h.nav.Layout().Table
		if table == nil {
			msgs = append(msgs, fmt.Sprintf("expected %d rows, but %s has no table", *exp.Rows, ev.Screen))
		} else if len(table.Rows) != *exp.Rows {
			mismatch("rows", *exp.Rows, len(table.Rows))
		}
	}

	return msgs
}
