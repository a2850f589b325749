// Package harness provides conformance testing for the baktools commands.
//
// The harness loads scenario files, runs each step's command in-process
// exactly as its main package would, and checks exit code and output.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	steps:
//	  - command: eventoffset
//	    args: ["100"]
//	    expect:
//	      exit_code: 0
//	      stdout: "Event: 100 byte: 6ee bit: 4\n"
//	  - command: tickconv
//	    args: []
//	    expect:
//	      exit_code: 2
//	      stdout: ""
//	      stderr_contains: "missing tick count argument"
//
// Unknown fields are rejected so typos surface as load errors.
//
// # Golden Snapshots
//
// RunWithGolden records every step (command, args, exit code, stdout,
// stderr) as canonical JSON and compares it with
// testdata/golden/{scenario.Name}.golden. To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
