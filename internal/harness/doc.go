// Package harness replays scripted key sequences against a real Navigator.
//
// A scenario seeds a fresh in-memory store, drives the login screen and
// everything after it with the same events a terminal would send, and
// checks where the navigation stack ended up and what was written.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	session_token: test-session-1
//	today: 2024-05-01
//	setup:
//	  - register: { username: alice, password: pw123 }
//	  - entity: patient
//	    fields: { first_name: Ada, last_name: Lovelace, ... }
//	flow:
//	  - type: alice
//	  - press: [tab]
//	  - type: pw123
//	  - press: [enter]
//	    expect:
//	      outcome: replace
//	      screen: home
//	      session: alice
//	assertions:
//	  - type: screen_order
//	    screens: [login, home]
//	  - type: row_count
//	    table: patients
//	    count: 1
//	  - type: final_state
//	    table: patients
//	    where: { id: 1 }
//	    expect: { first_name: Ada }
//
// Each flow step either types text (one rune event per character) or
// presses named keys ("tab", "shift+tab", "enter", "esc", "up", "down",
// "left", "right", "backspace", "space", "ctrl+c"). After every step the
// harness records a TraceEvent describing the active screen.
//
// # Golden Files
//
// RunWithGolden compares the trace against testdata/golden/<name>.golden.
// Regenerate with:
//
//	go test ./internal/harness -update
package harness
