package harness

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/ward/internal/engine"
	"github.com/roach88/ward/internal/model"
)

// Scenario defines a scripted session against the application.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// SessionToken is issued for every login. Defaults to "test-session-default".
	SessionToken string `yaml:"session_token,omitempty"`

	// Today is the date (YYYY-MM-DD) validators treat as the current day.
	// Defaults to testutil.DefaultNow.
	Today string `yaml:"today,omitempty"`

	// Setup seeds users and entities before the first key is pressed.
	// Setup steps must succeed.
	Setup []SetupStep `yaml:"setup,omitempty"`

	// Flow is the key script.
	Flow []FlowStep `yaml:"flow"`

	// Assertions validate the final trace and state.
	// Supported types: screen_visited, screen_order, screen_count, row_count, final_state
	Assertions []Assertion `yaml:"assertions"`
}

// SetupStep seeds one account or entity. Exactly one of Register and
// Entity is set.
type SetupStep struct {
	// Register creates an account through the auth service.
	Register *Credentials `yaml:"register,omitempty"`

	// Entity is one of the Setup* entity names. Fields uses the same keys
	// as the corresponding form and passes through the same validation.
	Entity string            `yaml:"entity,omitempty"`
	Fields map[string]string `yaml:"fields,omitempty"`
}

// Credentials is a username and password pair.
type Credentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Setup entity names.
const (
	SetupPatient       = "patient"
	SetupStaff         = "staff"
	SetupShift         = "shift"
	SetupMedicalRecord = "medical_record"
	SetupInvoice       = "invoice"
)

var setupEntities = map[string]bool{
	SetupPatient:       true,
	SetupStaff:         true,
	SetupShift:         true,
	SetupMedicalRecord: true,
	SetupInvoice:       true,
}

// FlowStep types text or presses keys, then optionally checks the result.
// Exactly one of Type and Press is set.
type FlowStep struct {
	// Type sends one rune event per character.
	Type string `yaml:"type,omitempty"`

	// Press sends named keys in order.
	Press []string `yaml:"press,omitempty"`

	// Expect specifies the state after the step. Nil skips validation.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected state after a flow step.
// Only the fields that are set are checked.
type ExpectClause struct {
	// Outcome is the kind of the last applied Outcome ("stay", "push", ...).
	Outcome string `yaml:"outcome,omitempty"`

	// Screen is the active screen name.
	Screen string `yaml:"screen,omitempty"`

	// Depth is the stack depth.
	Depth int `yaml:"depth,omitempty"`

	// Session is the signed-in username; "" means signed out.
	Session *string `yaml:"session,omitempty"`

	// Errors maps field keys to their inline error text. Fields not listed
	// must have no error.
	Errors map[string]string `yaml:"errors,omitempty"`

	// Banner and Notice are matched exactly; "" means none is shown.
	Banner *string `yaml:"banner,omitempty"`
	Notice *string `yaml:"notice,omitempty"`

	// Rows is the number of visible table rows.
	Rows *int `yaml:"rows,omitempty"`
}

// Assertion validates trace or final state.
type Assertion struct {
	// Type specifies the assertion type:
	// - "screen_visited": Screen was active after some step
	// - "screen_order": Screens were first active in this order
	// - "screen_count": Screen was entered exactly Count times
	// - "row_count": Table holds exactly Count rows
	// - "final_state": Query table and verify expected values
	Type string `yaml:"type"`

	// Screen is the screen name (used by screen_visited, screen_count).
	Screen string `yaml:"screen,omitempty"`

	// Screens is the expected screen order (used by screen_order).
	Screens []string `yaml:"screens,omitempty"`

	// Count is the expected number (used by screen_count, row_count).
	Count int `yaml:"count,omitempty"`

	// Table is the store table name (used by row_count, final_state).
	Table string `yaml:"table,omitempty"`

	// Where specifies query filters (used by final_state).
	// All fields must match exactly.
	Where map[string]interface{} `yaml:"where,omitempty"`

	// Expect contains expected column values (used by final_state).
	// Subset match - only specified columns are validated.
	Expect map[string]interface{} `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertScreenVisited = "screen_visited"
	AssertScreenOrder   = "screen_order"
	AssertScreenCount   = "screen_count"
	AssertRowCount      = "row_count"
	AssertFinalState    = "final_state"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Parse YAML with strict field validation (catches typos like "assertion:" vs "assertions:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Today != "" {
		if _, err := time.Parse(model.DateLayout, s.Today); err != nil {
			return fmt.Errorf("today must be a YYYY-MM-DD date: %q", s.Today)
		}
	}

	if len(s.Flow) == 0 {
		return fmt.Errorf("flow list is required and must be non-empty")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, step := range s.Setup {
		if err := validateSetupStep(i, step); err != nil {
			return err
		}
	}

	for i, step := range s.Flow {
		if err := validateFlowStep(i, step); err != nil {
			return err
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

func validateSetupStep(i int, step SetupStep) error {
	switch {
	case step.Register != nil && step.Entity != "":
		return fmt.Errorf("setup[%d]: register and entity are mutually exclusive", i)
	case step.Register != nil:
		if step.Register.Username == "" || step.Register.Password == "" {
			return fmt.Errorf("setup[%d]: register needs username and password", i)
		}
	case step.Entity != "":
		if !setupEntities[step.Entity] {
			return fmt.Errorf("setup[%d]: unknown entity %q", i, step.Entity)
		}
		if len(step.Fields) == 0 {
			return fmt.Errorf("setup[%d]: fields is required", i)
		}
	default:
		return fmt.Errorf("setup[%d]: register or entity is required", i)
	}
	return nil
}

func validateFlowStep(i int, step FlowStep) error {
	switch {
	case step.Type != "" && len(step.Press) > 0:
		return fmt.Errorf("flow[%d]: type and press are mutually exclusive", i)
	case step.Type == "" && len(step.Press) == 0:
		return fmt.Errorf("flow[%d]: type or press is required", i)
	}

	for _, name := range step.Press {
		if _, err := engine.ParseKey(name); err != nil {
			return fmt.Errorf("flow[%d]: %w", i, err)
		}
	}

	if step.Expect != nil && step.Expect.Outcome != "" && !validOutcome(step.Expect.Outcome) {
		return fmt.Errorf("flow[%d].expect: unknown outcome %q", i, step.Expect.Outcome)
	}
	return nil
}

func validOutcome(name string) bool {
	for k := engine.KindStay; k <= engine.KindError; k++ {
		if k.String() == name {
			return true
		}
	}
	return false
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertScreenVisited:
		if a.Screen == "" {
			return fmt.Errorf("assertions[%d]: screen_visited requires screen field", index)
		}
	case AssertScreenOrder:
		if len(a.Screens) < 2 {
			return fmt.Errorf("assertions[%d]: screen_order requires at least 2 screens", index)
		}
	case AssertScreenCount:
		if a.Screen == "" {
			return fmt.Errorf("assertions[%d]: screen_count requires screen field", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: screen_count count must be non-negative", index)
		}
	case AssertRowCount:
		if a.Table == "" {
			return fmt.Errorf("assertions[%d]: row_count requires table field", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: row_count count must be non-negative", index)
		}
	case AssertFinalState:
		if a.Table == "" {
			return fmt.Errorf("assertions[%d]: final_state requires table field", index)
		}
		if len(a.Expect) == 0 {
			return fmt.Errorf("assertions[%d]: final_state requires expect field", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
