package screens

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/roach88/ward/internal/auth"
	"github.com/roach88/ward/internal/engine"
	"github.com/roach88/ward/internal/model"
	"github.com/roach88/ward/internal/store"
	"github.com/roach88/ward/internal/testutil"
	"github.com/roach88/ward/internal/validate"
)

// app drives a Navigator the way a terminal would.
type app struct {
	t   *testing.T
	ctx context.Context
	nav *engine.Navigator
	st  *store.Store
	svc *auth.Service
}

func newApp(t *testing.T) *app {
	t.Helper()
	st := testutil.OpenStore(t)
	clock := testutil.NewFixedClock(time.Time{})

	svc := auth.NewService(st, auth.WithCost(bcrypt.MinCost), auth.WithNow(clock.Now))
	rules := validate.Rules{Region: "US", Now: clock.Now, Refs: st}
	nav := engine.NewNavigator(engine.Env{Store: st, Auth: svc, Rules: rules}, NewLogin)

	a := &app{t: t, ctx: context.Background(), nav: nav, st: st, svc: svc}
	nav.Start(a.ctx)
	return a
}

func (a *app) typeText(s string) {
	for _, ev := range engine.Runes(s) {
		a.nav.Dispatch(a.ctx, ev)
	}
}

// press dispatches keys in order and returns the last applied Outcome.
func (a *app) press(keys ...engine.Key) engine.Outcome {
	var out engine.Outcome
	for _, k := range keys {
		out = a.nav.Dispatch(a.ctx, engine.Press(k))
	}
	return out
}

// fill types one value per field, tabbing between them, and leaves focus
// on the last field.
func (a *app) fill(values ...string) {
	for i, v := range values {
		if i > 0 {
			a.press(engine.KeyTab)
		}
		a.typeText(v)
	}
}

func (a *app) screen() string {
	return a.nav.Active().Name()
}

func (a *app) layout() engine.Layout {
	return a.nav.Layout()
}

func (a *app) fieldError(key string) string {
	for _, f := range a.layout().Fields {
		if f.Key == key {
			return f.Error
		}
	}
	a.t.Fatalf("no field %q on %s", key, a.screen())
	return ""
}

func (a *app) fieldValue(key string) string {
	for _, f := range a.layout().Fields {
		if f.Key == key {
			return f.Value
		}
	}
	a.t.Fatalf("no field %q on %s", key, a.screen())
	return ""
}

// login registers username through the service and signs in through the UI.
func (a *app) login(username, password string) {
	a.t.Helper()
	_, err := a.svc.Register(a.ctx, username, password)
	require.NoError(a.t, err)

	require.Equal(a.t, "login", a.screen())
	a.fill(username, password)
	a.press(engine.KeyEnter)
	require.Equal(a.t, "home", a.screen(), "banner: %s", a.layout().Banner)
}

// open selects a home menu item by label and opens it.
func (a *app) open(label string) {
	a.t.Helper()
	require.Equal(a.t, "home", a.screen())
	menu := a.layout().Menu
	require.NotNil(a.t, menu)

	idx := 0
	for _, sec := range menu.Sections {
		for _, item := range sec.Items {
			if item == label {
				for menu.Selected != idx {
					a.press(engine.KeyDown)
					menu = a.layout().Menu
				}
				a.press(engine.KeyEnter)
				return
			}
			idx++
		}
	}
	a.t.Fatalf("no menu item %q", label)
}

func (a *app) rows() [][]string {
	tbl := a.layout().Table
	require.NotNil(a.t, tbl, "screen %s has no table", a.screen())
	return tbl.Rows
}

func (a *app) addPatient(first, last string) int64 {
	a.t.Helper()
	id, err := a.st.CreatePatient(a.ctx, model.Patient{
		FirstName:   first,
		LastName:    last,
		DateOfBirth: "1990-01-01",
		Gender:      model.GenderFemale,
		Address:     "1 Main St",
		PhoneNumber: "+14155552671",
	})
	require.NoError(a.t, err)
	return id
}

func (a *app) addStaff(name string, role model.StaffRole) int64 {
	a.t.Helper()
	id, err := a.st.CreateStaff(a.ctx, model.Staff{
		Name:        name,
		Role:        role,
		PhoneNumber: "+14155552671",
		Address:     "2 Side St",
	})
	require.NoError(a.t, err)
	return id
}

func (a *app) count(table string) int {
	n, err := a.st.Count(a.ctx, table)
	require.NoError(a.t, err)
	return n
}
